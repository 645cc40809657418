package token

import (
	"reflect"
	"testing"

	"github.com/nihei9/cfgearley/cfg"
)

func arithmeticGrammar(t *testing.T) *cfg.Grammar {
	t.Helper()
	g := cfg.NewGrammar()
	for _, r := range []string{
		`sum -> sum '+' prod`,
		`sum -> prod`,
		`prod -> prod '*' factor`,
		`prod -> factor`,
		`factor -> '(' sum ')'`,
		`factor -> /\d+/`,
	} {
		if _, err := g.AddRuleString(r); err != nil {
			t.Fatalf("AddRuleString(%q): %v", r, err)
		}
	}
	return g
}

func TestTokenizeArithmetic(t *testing.T) {
	g := arithmeticGrammar(t)

	tests := []struct {
		in   string
		want []string
	}{
		{"2 * 3", []string{"2", "*", "3"}},
		{"23 + (32 * 46)", []string{"23", "+", "(", "32", "*", "46", ")"}},
		{"((12))", []string{"(", "(", "12", ")", ")"}},
	}
	for _, tt := range tests {
		got, err := Tokenize(tt.in, g)
		if err != nil {
			t.Fatalf("Tokenize(%q): %v", tt.in, err)
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Fatalf("Tokenize(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestTokenizeDropsEmptyAndTrims(t *testing.T) {
	g := arithmeticGrammar(t)
	got, err := Tokenize("  2   +    3  ", g)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"2", "+", "3"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}
