package cfg

import (
	"regexp"
	"strings"

	"github.com/nihei9/cfgearley/cfgerr"
	"github.com/nihei9/cfgearley/symbol"
)

var (
	reRuleSides    = regexp.MustCompile(`->`)
	rePatternToken = regexp.MustCompile(`^/(.*)/([gimy]*)$`)
	reSingleQuoted = regexp.MustCompile(`^'(.*)'$`)
	reDoubleQuoted = regexp.MustCompile(`^"(.*)"$`)
)

// AddRuleString parses a declarative production of the form
// "LHS -> S1 S2 ... Sk", builds the corresponding Rule, adds it to the
// grammar, and returns it.
//
// Sides are split on "->" exactly once; either side empty is a syntax
// error. Right-hand-side tokens are whitespace-separated. A token matching
// /^\/(.*)\/([gimy]*)$/ becomes a regex terminal; a token matching
// /^'(.*)'$/ or /^"(.*)"$/ becomes a string terminal. Any other token is
// looked up by name in the grammar's symbol table; on miss, a fresh symbol
// is created and registered there.
func (g *Grammar) AddRuleString(spec string) (*Rule, error) {
	if g.byName == nil {
		g.byName = map[string]symbol.Symbol{}
	}

	sides := reRuleSides.Split(spec, 2)
	if len(sides) != 2 {
		return nil, cfgerr.New(cfgerr.ErrInvalidGrammarText)
	}
	lhsText := strings.TrimSpace(sides[0])
	rhsText := strings.TrimSpace(sides[1])
	if lhsText == "" || rhsText == "" {
		return nil, cfgerr.New(cfgerr.ErrInvalidGrammarText)
	}
	if strings.Fields(lhsText) == nil || len(strings.Fields(lhsText)) != 1 {
		return nil, cfgerr.New(cfgerr.ErrInvalidGrammarText)
	}

	lhs := g.symbolFor(lhsText)

	var rhs []RHSElem
	for _, tok := range strings.Fields(rhsText) {
		elem, err := g.rhsElemFor(tok)
		if err != nil {
			return nil, err
		}
		rhs = append(rhs, elem)
	}

	r, err := NewRule(lhs, rhs, nil)
	if err != nil {
		return nil, err
	}
	g.AddRule(r)
	return r, nil
}

// symbolFor returns the symbol registered under name, creating and
// registering a fresh one on miss.
func (g *Grammar) symbolFor(name string) symbol.Symbol {
	if s, ok := g.byName[name]; ok {
		return s
	}
	s := symbol.New(name)
	g.byName[name] = s
	return s
}

func (g *Grammar) rhsElemFor(tok string) (RHSElem, error) {
	if m := rePatternToken.FindStringSubmatch(tok); m != nil {
		body := applyJSFlags(m[1], m[2])
		p, err := NewPattern(body)
		if err != nil {
			return nil, cfgerr.AtLine(cfgerr.ErrInvalidGrammarText, 0, tok)
		}
		return p, nil
	}
	if m := reSingleQuoted.FindStringSubmatch(tok); m != nil {
		return Literal{Value: m[1]}, nil
	}
	if m := reDoubleQuoted.FindStringSubmatch(tok); m != nil {
		return Literal{Value: m[1]}, nil
	}
	return SymbolElem{Sym: g.symbolFor(tok)}, nil
}

// applyJSFlags translates the subset of JavaScript regex flags that have a
// Go RE2 equivalent into a leading inline-flag group. "g" (global) and "y"
// (sticky) have no meaning for a single full-match test and are dropped.
func applyJSFlags(body, flags string) string {
	var inline string
	if strings.Contains(flags, "i") {
		inline += "i"
	}
	if strings.Contains(flags, "m") {
		inline += "m"
	}
	if inline == "" {
		return body
	}
	return "(?" + inline + ")" + body
}
