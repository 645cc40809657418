package earley

import (
	"github.com/nihei9/cfgearley/cfg"
	"github.com/nihei9/cfgearley/cfgerr"
	"github.com/nihei9/cfgearley/symbol"
	"github.com/sirupsen/logrus"
)

// Extract walks a transformed chart top-down and emits a single parse tree,
// applying §4.6's ambiguity-resolution rule: when more than one derivation
// matches, the extractor picks the first successful candidate in
// enumeration order (grammar-insertion order) and, if the competing
// derivations actually differ, logs a diagnostic rather than failing.
//
// c must already have been produced by Transform; g and tokens must be the
// same grammar and token sequence Recognize was called with.
func Extract(c *Chart, g *cfg.Grammar, tokens []string, opts ...Option) (*Tree, error) {
	cfgOpt := buildConfig(opts)
	n := len(tokens)

	// There is no distinguished start symbol in this model: any symbol
	// whose rule completes over the widest span starting at 0 is a
	// candidate root. Ties are broken by taking the first one
	// encountered, in grammar-insertion/completion order.
	var root *Item
	bestOrigin := -1
	for _, it := range c.States[0] {
		if it.Origin > bestOrigin {
			bestOrigin = it.Origin
			root = it
		}
	}
	if root == nil {
		return nil, cfgerr.AtToken(cfgerr.ErrNoParse, 0, firstTokenOrEOF(tokens))
	}
	if root.Origin != n {
		tok := "<eof>"
		if root.Origin < n {
			tok = tokens[root.Origin]
		}
		return nil, cfgerr.AtToken(cfgerr.ErrNoParse, root.Origin, tok)
	}

	ex := &extractor{chart: c, tokens: tokens, logger: *cfgOpt.logger}
	children, ok := ex.expand(root, 0, 0)
	if !ok {
		return nil, cfgerr.AtToken(cfgerr.ErrNoParse, 0, firstTokenOrEOF(tokens))
	}
	return &Tree{Rule: root.Rule, Children: children}, nil
}

func firstTokenOrEOF(tokens []string) string {
	if len(tokens) == 0 {
		return "<no input>"
	}
	return tokens[0]
}

type extractor struct {
	chart  *Chart
	tokens []string
	logger logrus.FieldLogger
}

// expand returns the children that match item.Rule.RHS[depth:], consuming
// tokens from start to item.Origin (the item's end position, post-Transform).
func (ex *extractor) expand(item *Item, start, depth int) ([]interface{}, bool) {
	if depth == item.Rule.Len() {
		if start == item.Origin {
			return []interface{}{}, true
		}
		return nil, false
	}

	switch e := item.Rule.At(depth).(type) {
	case cfg.Terminal:
		if start >= len(ex.tokens) || !e.Matches(ex.tokens[start]) {
			return nil, false
		}
		rest, ok := ex.expand(item, start+1, depth+1)
		if !ok {
			return nil, false
		}
		return append([]interface{}{ex.tokens[start]}, rest...), true

	case cfg.SymbolElem:
		return ex.expandSymbol(item, e.Sym, start, depth)
	}

	return nil, false
}

// candidateResult is one successful way to match the non-terminal at this
// depth: a subtree for the non-terminal itself, plus the children matching
// the rest of the outer item's right-hand side.
type candidateResult struct {
	full []interface{} // subtree prepended to the outer continuation's children
	ser  string         // serialization of this alternative, for ambiguity detection
}

func (ex *extractor) expandSymbol(item *Item, A symbol.Symbol, start, depth int) ([]interface{}, bool) {
	var results []candidateResult

	for _, cand := range ex.chart.States[start] {
		if !cand.Rule.LHS.Is(A) {
			continue
		}

		// The rest of the outer rule is matched before the candidate's
		// own subtree is built. This ordering matters: a left-recursive
		// rule's own just-completed item is itself a legal candidate
		// for matching its own leading non-terminal at the same start
		// position, and would recurse into itself forever if its
		// subtree were expanded eagerly. Checking the continuation
		// first lets a candidate that can't possibly fit (like that
		// self-reference, whose continuation has nothing left to
		// consume) fail before any recursion into the candidate itself.
		cont, ok := ex.expand(item, cand.Origin, depth+1)
		if !ok {
			continue
		}

		subChildren, ok := ex.expand(cand, start, 0)
		if !ok {
			continue
		}
		sub := &Tree{Rule: cand.Rule, Children: subChildren}

		full := append([]interface{}{sub}, cont...)
		results = append(results, candidateResult{full: full, ser: sub.serialize()})
	}

	if len(results) == 0 {
		return nil, false
	}
	if len(results) > 1 && ambiguous(results) {
		ex.logger.WithFields(logrus.Fields{
			"symbol":     A.String(),
			"start":      start,
			"candidates": len(results),
		}).Warn("ambiguous parse: multiple derivations matched; picking the first")
	}
	return results[0].full, true
}

// ambiguous reports whether results contains more than one structurally
// distinct derivation.
func ambiguous(results []candidateResult) bool {
	first := results[0].ser
	for _, r := range results[1:] {
		if r.ser != first {
			return true
		}
	}
	return false
}
