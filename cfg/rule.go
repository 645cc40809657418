package cfg

import (
	"github.com/nihei9/cfgearley/cfgerr"
	"github.com/nihei9/cfgearley/symbol"
)

// Valuator is a user-supplied callback invoked externally, after a tree is
// built, to fold a node's child values into one value. The recognizer and
// extractor never call it.
type Valuator func(values []interface{}) (interface{}, error)

// NoValue is returned by Rule.Evaluate when the rule carries no valuator.
var NoValue interface{} = nil

// Rule is one production: lhs -> rhs[0] rhs[1] ... rhs[n-1].
type Rule struct {
	LHS      symbol.Symbol
	RHS      []RHSElem
	valuator Valuator
}

// NewRule validates rhs and returns a rule. rhs must be non-empty: a rule
// that produces nothing is rejected at construction.
func NewRule(lhs symbol.Symbol, rhs []RHSElem, valuator Valuator) (*Rule, error) {
	if len(rhs) == 0 {
		return nil, cfgerr.New(cfgerr.ErrInvalidRule)
	}
	return &Rule{
		LHS:      lhs,
		RHS:      append([]RHSElem{}, rhs...),
		valuator: valuator,
	}, nil
}

// WithValuator attaches v to r, replacing any valuator set at construction
// time, and returns r for chaining onto the result of AddRuleString.
func (r *Rule) WithValuator(v Valuator) *Rule {
	r.valuator = v
	return r
}

// Len returns the number of right-hand-side positions.
func (r *Rule) Len() int {
	return len(r.RHS)
}

// At returns the right-hand-side element at position i.
func (r *Rule) At(i int) RHSElem {
	return r.RHS[i]
}

// Evaluate forwards values positionally to the rule's valuator, or returns
// NoValue if none was supplied. It fails if values is not a positional
// sequence.
func (r *Rule) Evaluate(values interface{}) (interface{}, error) {
	seq, ok := values.([]interface{})
	if !ok {
		return nil, cfgerr.New(cfgerr.ErrEvaluateInput)
	}
	if r.valuator == nil {
		return NoValue, nil
	}
	return r.valuator(seq)
}

func (r *Rule) String() string {
	s := r.LHS.String() + " ->"
	for _, e := range r.RHS {
		switch v := e.(type) {
		case SymbolElem:
			s += " " + v.Sym.String()
		case Terminal:
			s += " '" + v.Source() + "'"
		}
	}
	return s
}
