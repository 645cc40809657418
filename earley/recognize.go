package earley

import (
	"strconv"

	"github.com/nihei9/cfgearley/cfg"
	"github.com/nihei9/cfgearley/cfgerr"
)

// Recognize builds the Earley chart for tokens against g. It never fails on
// a malformed or unrecognizable input — an empty or incorrect chart is a
// normal result that Extract later reports as cfgerr.ErrNoParse. The only
// failure mode here is the optional grammar-too-explosive guard set with
// WithMaxItemsPerState.
func Recognize(tokens []string, g *cfg.Grammar, opts ...Option) (*Chart, error) {
	cfgOpt := buildConfig(opts)
	n := len(tokens)
	chart := newChart(n)

	predicted := make([]map[*cfg.Rule]bool, n+1)
	completedSeen := make([]map[itemKey]bool, n+1)
	for i := 0; i <= n; i++ {
		predicted[i] = map[*cfg.Rule]bool{}
		completedSeen[i] = map[itemKey]bool{}
	}

	// Initialization: seed state 0 with every rule of g, in grammar order.
	for _, r := range g.Rules() {
		chart.States[0] = append(chart.States[0], &Item{Rule: r, Dot: 0, Origin: 0})
		predicted[0][r] = true
	}

	for i := 0; i <= n; i++ {
		// Items appended during this state's processing must be visited
		// before the loop advances i, so re-read the length every pass.
		for j := 0; j < len(chart.States[i]); j++ {
			if cfgOpt.maxItemsPerState > 0 && len(chart.States[i]) > cfgOpt.maxItemsPerState {
				return nil, cfgerr.AtToken(cfgerr.ErrChartExploded, i, strconv.Itoa(len(chart.States[i])))
			}

			it := chart.States[i][j]
			if it.Complete() {
				completeItem(chart, i, it, completedSeen)
				continue
			}

			switch e := it.Rule.At(it.Dot).(type) {
			case cfg.SymbolElem:
				predict(chart, g, i, e, predicted)
			case cfg.Terminal:
				if i < n && e.Matches(tokens[i]) {
					chart.States[i+1] = append(chart.States[i+1], &Item{
						Rule:   it.Rule,
						Dot:    it.Dot + 1,
						Origin: it.Origin,
					})
				}
			}
		}
	}

	return chart, nil
}

// predict appends, for every rule whose lhs is the predicted symbol, a
// fresh item (rule, 0, i) to state i, unless that rule has already been
// predicted (or, in state 0, seeded) into state i. Items for the same rule
// that reached state i by scanning or completion do not block prediction.
//
// Predicted items always have dot 0 and origin i, so checking the full
// (rule, dot, origin) triple would collapse to checking rule identity
// alone; this implementation does that directly, which also prevents
// infinite expansion of self-left-recursive productions.
func predict(chart *Chart, g *cfg.Grammar, i int, e cfg.SymbolElem, predicted []map[*cfg.Rule]bool) {
	for _, rp := range g.Rules() {
		if !rp.LHS.Is(e.Sym) {
			continue
		}
		if predicted[i][rp] {
			continue
		}
		predicted[i][rp] = true
		chart.States[i] = append(chart.States[i], &Item{Rule: rp, Dot: 0, Origin: i})
	}
}

// completeItem implements the Complete inference rule: for the completed
// item's lhs A, advance every item in state it.Origin whose dotted element
// is A, appending the advanced item to state i unless its full
// (rule, dot, origin) triple is already present there.
func completeItem(chart *Chart, i int, it *Item, completedSeen []map[itemKey]bool) {
	A := it.Rule.LHS
	for _, cand := range chart.States[it.Origin] {
		if cand.Complete() {
			continue
		}
		se, ok := cand.Rule.At(cand.Dot).(cfg.SymbolElem)
		if !ok || !se.Sym.Is(A) {
			continue
		}
		advanced := &Item{Rule: cand.Rule, Dot: cand.Dot + 1, Origin: cand.Origin}
		key := keyOf(advanced)
		if completedSeen[i][key] {
			continue
		}
		completedSeen[i][key] = true
		chart.States[i] = append(chart.States[i], advanced)
	}
}
