// Package symbol implements the identity-based non-terminal symbols used
// throughout the grammar, recognizer, and extractor.
//
// Symbol equality is by identity, not by name: two symbols created with the
// same name are distinct and must never be treated as interchangeable by the
// recognizer or the extractor. A Symbol's name exists only for debugging and
// tree labeling.
package symbol

import "fmt"

// data is the allocation a Symbol's identity is pinned to. Two Symbols are
// the same non-terminal iff their pointers are equal; the name carried here
// is never consulted for equality.
type data struct {
	name string
}

// Symbol is a non-terminal identity. The zero value is not a valid symbol;
// symbols are created with New.
type Symbol struct {
	d *data
}

// New allocates and returns a fresh symbol. name may be empty; it is purely
// cosmetic and never used to deduplicate against an existing symbol, so
// New("expr") called twice returns two distinct, non-interchangeable
// symbols.
func New(name string) Symbol {
	return Symbol{d: &data{name: name}}
}

// IsNil reports whether s is the zero value, i.e. was never produced by New.
func (s Symbol) IsNil() bool {
	return s.d == nil
}

// Name returns the human-readable name the symbol was created with, which
// may be empty and may collide with another symbol's name.
func (s Symbol) Name() string {
	if s.d == nil {
		return ""
	}
	return s.d.name
}

// Is reports whether s and o are the same symbol identity.
func (s Symbol) Is(o Symbol) bool {
	return s.d == o.d
}

func (s Symbol) String() string {
	if s.IsNil() {
		return "<nil-symbol>"
	}
	if s.d.name != "" {
		return fmt.Sprintf("%v@%p", s.d.name, s.d)
	}
	return fmt.Sprintf("@%p", s.d)
}
