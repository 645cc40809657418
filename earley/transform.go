package earley

// Transform rewrites a recognized chart from "completed-at" to
// "originated-at" indexing, in two passes:
//
//  1. Drop incomplete items from every state.
//  2. Re-index by origin: an item x originally located in state i with
//     origin o moves into state o, and its Origin field is rewritten to i.
//
// Afterward, Origin means "end state" and the item's chart index means
// "start state." This inversion lets Extract walk left-to-right: to match
// a non-terminal A starting at position p, it searches the transformed
// chart's state p for complete items with that lhs, each carrying its end
// position in Origin.
func Transform(c *Chart) *Chart {
	out := newChart(c.Len() - 1)
	for i, items := range c.States {
		for _, it := range items {
			if !it.Complete() {
				continue
			}
			out.States[it.Origin] = append(out.States[it.Origin], &Item{
				Rule:   it.Rule,
				Dot:    it.Dot,
				Origin: i,
			})
		}
	}
	return out
}
