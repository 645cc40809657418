// Package earley implements the Earley recognizer, the chart transformer
// that re-indexes completed items by origin, and the depth-first tree
// extractor that turns a transformed chart into a single parse tree.
package earley

import (
	"fmt"

	"github.com/nihei9/cfgearley/cfg"
)

// Item is a tuple (rule, dot position, origin): "a prefix of rule.RHS of
// length Dot has been matched starting at state Origin." After the
// transformer runs, Origin is repurposed to mean "end state" — see
// Transform.
type Item struct {
	Rule   *cfg.Rule
	Dot    int
	Origin int
}

// Complete reports whether the item's dot has reached the end of the
// rule's right-hand side.
func (it *Item) Complete() bool {
	return it.Dot == it.Rule.Len()
}

func (it *Item) String() string {
	return fmt.Sprintf("[%v, dot=%v, origin=%v]", it.Rule, it.Dot, it.Origin)
}

// itemKey identifies an item for duplicate suppression. Two items are
// duplicates when all three fields are pairwise equal; rule equality is by
// identity, which a pointer comparison gives for free.
type itemKey struct {
	rule   *cfg.Rule
	dot    int
	origin int
}

func keyOf(it *Item) itemKey {
	return itemKey{rule: it.Rule, dot: it.Dot, origin: it.Origin}
}
