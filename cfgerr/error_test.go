package cfgerr

import (
	"errors"
	"strings"
	"testing"
)

func TestErrorIsUnwraps(t *testing.T) {
	e := AtToken(ErrNoParse, 3, "*")
	if !errors.Is(e, ErrNoParse) {
		t.Fatalf("errors.Is should see through the wrapper to the sentinel cause")
	}
	if got := e.Error(); got == "" {
		t.Fatalf("Error() must not be empty")
	}
}

func TestAtLineRendersSource(t *testing.T) {
	e := AtLine(ErrInvalidGrammarText, 2, "sum sum '+' prod")
	got := e.Error()
	if !strings.Contains(got, "line 2") || !strings.Contains(got, "sum sum '+' prod") {
		t.Fatalf("expected line number and source text in %q", got)
	}
}

func TestAtTokenRendersPosition(t *testing.T) {
	e := AtToken(ErrNoParse, 3, "*")
	got := e.Error()
	if !strings.Contains(got, "position 3") || !strings.Contains(got, "*") {
		t.Fatalf("expected token and position in %q", got)
	}
}
