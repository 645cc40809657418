package cfg

import (
	"errors"
	"testing"

	"github.com/nihei9/cfgearley/cfgerr"
	"github.com/nihei9/cfgearley/symbol"
)

func arithmeticGrammar(t *testing.T) *Grammar {
	t.Helper()
	g := NewGrammar()
	rules := []string{
		`sum -> sum '+' prod`,
		`sum -> prod`,
		`prod -> prod '*' factor`,
		`prod -> factor`,
		`factor -> '(' sum ')'`,
		`factor -> /\d+/`,
	}
	for _, spec := range rules {
		if _, err := g.AddRuleString(spec); err != nil {
			t.Fatalf("AddRuleString(%q): %v", spec, err)
		}
	}
	return g
}

func TestAddRuleStringBuildsSymbolsAndTerminals(t *testing.T) {
	g := arithmeticGrammar(t)

	if len(g.Rules()) != 6 {
		t.Fatalf("expected 6 rules, got %v", len(g.Rules()))
	}

	syms, err := g.Symbols()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, name := range []string{"sum", "prod", "factor"} {
		if _, ok := syms[name]; !ok {
			t.Fatalf("expected symbol %q to be registered", name)
		}
	}

	terms := g.Terminals() // '+', '*', '(', ')', /\d+/
	if len(terms) != 5 {
		t.Fatalf("expected 5 distinct terminals, got %v", len(terms))
	}
}

func TestAddRuleStringRejectsMissingArrow(t *testing.T) {
	g := NewGrammar()
	_, err := g.AddRuleString("sum prod")
	if !errors.Is(err, cfgerr.ErrInvalidGrammarText) {
		t.Fatalf("expected ErrInvalidGrammarText, got %v", err)
	}
}

func TestAddRuleStringRejectsEmptySide(t *testing.T) {
	g := NewGrammar()
	if _, err := g.AddRuleString("-> prod"); !errors.Is(err, cfgerr.ErrInvalidGrammarText) {
		t.Fatalf("expected ErrInvalidGrammarText for empty lhs, got %v", err)
	}
	if _, err := g.AddRuleString("sum ->"); !errors.Is(err, cfgerr.ErrInvalidGrammarText) {
		t.Fatalf("expected ErrInvalidGrammarText for empty rhs, got %v", err)
	}
}

func TestAddRuleStringReusesSymbolsAcrossCalls(t *testing.T) {
	g := NewGrammar()
	_, _ = g.AddRuleString(`sum -> prod`)
	_, _ = g.AddRuleString(`prod -> /\d+/`)

	syms, err := g.Symbols()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// "prod" used as rhs in rule 1 and lhs in rule 2 must be the same identity.
	r0 := g.Rules()[0]
	prodFromRHS := r0.RHS[0].(SymbolElem).Sym
	if !prodFromRHS.Is(syms["prod"]) {
		t.Fatalf("expected the rhs occurrence of prod to be the same identity as the lhs occurrence")
	}
}

func TestSymbolsDetectsDuplicateNameAcrossDistinctIdentities(t *testing.T) {
	g := NewGrammar()
	a := symbol.New("expr")
	b := symbol.New("expr")
	r1, _ := NewRule(a, []RHSElem{Literal{Value: "x"}}, nil)
	r2, _ := NewRule(b, []RHSElem{Literal{Value: "y"}}, nil)
	g.AddRule(r1)
	g.AddRule(r2)

	_, err := g.Symbols()
	if !errors.Is(err, cfgerr.ErrDuplicateSymbolName) {
		t.Fatalf("expected ErrDuplicateSymbolName, got %v", err)
	}
}

func TestPatternTerminalFullMatch(t *testing.T) {
	g := NewGrammar()
	_, err := g.AddRuleString(`num -> /\d+/`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	term := g.Rules()[0].RHS[0].(Pattern)
	if !term.Matches("123") {
		t.Fatalf("expected full match on \"123\"")
	}
	if term.Matches("12a") {
		t.Fatalf("did not expect a full match on \"12a\"")
	}
}
