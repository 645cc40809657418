// Package cfg implements the grammar container and its declarative textual
// rule-builder: an ordered sequence of rules over the symbol/terminal model,
// with symbol-lookup helpers used by the recognizer, the extractor, and the
// default tokenizer.
package cfg

import (
	"github.com/nihei9/cfgearley/cfgerr"
	"github.com/nihei9/cfgearley/symbol"
)

// Grammar is an ordered sequence of rules. Rule order is observable: the
// recognizer seeds its initial chart state with rules in grammar order, and
// the extractor prefers earlier-added rules when resolving ambiguity.
type Grammar struct {
	rules []*Rule

	// byName is the symbol table the textual rule-builder reads from and
	// writes to. It persists across AddRuleString calls on the same
	// Grammar so that later rules can refer back to symbols introduced
	// by earlier ones.
	byName map[string]symbol.Symbol
}

// NewGrammar returns a grammar seeded with the given rules, in order.
func NewGrammar(rules ...*Rule) *Grammar {
	g := &Grammar{
		byName: map[string]symbol.Symbol{},
	}
	for _, r := range rules {
		g.AddRule(r)
	}
	return g
}

// AddRule appends r to the grammar.
func (g *Grammar) AddRule(r *Rule) {
	g.rules = append(g.rules, r)
}

// Rules returns the grammar's rules in insertion order. The caller must not
// mutate the returned slice.
func (g *Grammar) Rules() []*Rule {
	return g.rules
}

// Symbols returns a name -> symbol mapping built by scanning every rule's
// lhs and every symbol-valued rhs element. It fails with
// cfgerr.ErrDuplicateSymbolName if two distinct symbol identities share the
// same name: that would silently alias them for any caller keying off names,
// such as the textual rule-builder.
func (g *Grammar) Symbols() (map[string]symbol.Symbol, error) {
	out := map[string]symbol.Symbol{}
	see := func(s symbol.Symbol) error {
		name := s.Name()
		if name == "" {
			return nil
		}
		if existing, ok := out[name]; ok && !existing.Is(s) {
			return cfgerr.New(cfgerr.ErrDuplicateSymbolName)
		}
		out[name] = s
		return nil
	}
	for _, r := range g.rules {
		if err := see(r.LHS); err != nil {
			return nil, err
		}
		for _, e := range r.RHS {
			if se, ok := e.(SymbolElem); ok {
				if err := see(se.Sym); err != nil {
					return nil, err
				}
			}
		}
	}
	return out, nil
}

// Terminals returns every distinct terminal appearing in any rule's
// right-hand side, in first-seen order. The default tokenizer uses this to
// build its delimiter pattern.
func (g *Grammar) Terminals() []Terminal {
	var out []Terminal
	seen := map[string]bool{}
	for _, r := range g.rules {
		for _, e := range r.RHS {
			t, ok := e.(Terminal)
			if !ok {
				continue
			}
			key := t.Source()
			if _, isPattern := t.(Pattern); isPattern {
				key = "/" + key
			} else {
				key = "'" + key
			}
			if seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, t)
		}
	}
	return out
}
