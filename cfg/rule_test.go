package cfg

import (
	"errors"
	"testing"

	"github.com/nihei9/cfgearley/cfgerr"
	"github.com/nihei9/cfgearley/symbol"
)

func TestNewRuleRejectsEmptyRHS(t *testing.T) {
	lhs := symbol.New("sum")
	_, err := NewRule(lhs, nil, nil)
	if !errors.Is(err, cfgerr.ErrInvalidRule) {
		t.Fatalf("expected ErrInvalidRule, got %v", err)
	}
}

func TestNewRulePreservesRHSOrder(t *testing.T) {
	lhs := symbol.New("sum")
	prod := symbol.New("prod")
	rhs := []RHSElem{SymbolElem{Sym: prod}, Literal{Value: "+"}, SymbolElem{Sym: prod}}
	r, err := NewRule(lhs, rhs, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Len() != 3 {
		t.Fatalf("expected 3 rhs elements, got %v", r.Len())
	}
	if _, ok := r.At(1).(Literal); !ok {
		t.Fatalf("expected position 1 to be a literal")
	}
}

func TestEvaluateWithoutValuatorReturnsNoValue(t *testing.T) {
	lhs := symbol.New("sum")
	r, _ := NewRule(lhs, []RHSElem{Literal{Value: "x"}}, nil)
	v, err := r.Evaluate([]interface{}{"x"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != NoValue {
		t.Fatalf("expected NoValue, got %v", v)
	}
}

func TestEvaluateForwardsPositionally(t *testing.T) {
	lhs := symbol.New("sum")
	r, _ := NewRule(lhs, []RHSElem{Literal{Value: "x"}}, func(values []interface{}) (interface{}, error) {
		return values[0], nil
	})
	v, err := r.Evaluate([]interface{}{42})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 42 {
		t.Fatalf("expected 42, got %v", v)
	}
}

func TestEvaluateRejectsNonSequence(t *testing.T) {
	lhs := symbol.New("sum")
	r, _ := NewRule(lhs, []RHSElem{Literal{Value: "x"}}, nil)
	_, err := r.Evaluate("not a sequence")
	if !errors.Is(err, cfgerr.ErrEvaluateInput) {
		t.Fatalf("expected ErrEvaluateInput, got %v", err)
	}
}
