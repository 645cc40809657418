package earley

import (
	"fmt"
	"io"
	"strings"

	"github.com/nihei9/cfgearley/cfg"
)

// Tree is a parse tree node: the rule applied, and one child per
// right-hand-side position. A child is a *Tree for a non-terminal
// position, or the literal matched token string for a terminal position.
type Tree struct {
	Rule     *cfg.Rule
	Children []interface{}
}

// Yield returns the left-to-right concatenation of t's leaf tokens.
func (t *Tree) Yield() []string {
	var out []string
	var walk func(*Tree)
	walk = func(n *Tree) {
		for _, c := range n.Children {
			switch v := c.(type) {
			case string:
				out = append(out, v)
			case *Tree:
				walk(v)
			}
		}
	}
	walk(t)
	return out
}

func (t *Tree) serialize() string {
	var b strings.Builder
	var walk func(*Tree)
	walk = func(n *Tree) {
		fmt.Fprintf(&b, "(%p", n.Rule)
		for _, c := range n.Children {
			switch v := c.(type) {
			case string:
				fmt.Fprintf(&b, " %q", v)
			case *Tree:
				b.WriteByte(' ')
				walk(v)
			}
		}
		b.WriteByte(')')
	}
	walk(t)
	return b.String()
}

// Evaluate folds t bottom-up: each child subtree is evaluated first, each
// matched token contributes itself as a string, and the resulting values are
// passed positionally to t.Rule.Evaluate. A rule with no valuator attached
// contributes cfg.NoValue without error.
func Evaluate(t *Tree) (interface{}, error) {
	values := make([]interface{}, len(t.Children))
	for i, c := range t.Children {
		switch v := c.(type) {
		case string:
			values[i] = v
		case *Tree:
			folded, err := Evaluate(v)
			if err != nil {
				return nil, err
			}
			values[i] = folded
		}
	}
	return t.Rule.Evaluate(values)
}

// PrintTree pretty-prints t, indented by depth with box-drawing connectors.
func PrintTree(w io.Writer, t *Tree) {
	printTree(w, t, "", "")
}

func printTree(w io.Writer, t *Tree, ruledLine, childPrefix string) {
	if t == nil {
		return
	}
	fmt.Fprintf(w, "%v%v\n", ruledLine, t.Rule)

	num := len(t.Children)
	for i, c := range t.Children {
		var line string
		if i < num-1 {
			line = "├─ "
		} else {
			line = "└─ "
		}
		var prefix string
		if i == num-1 {
			prefix = "   "
		} else {
			prefix = "│  "
		}

		switch v := c.(type) {
		case string:
			fmt.Fprintf(w, "%v%v%#v\n", childPrefix, line, v)
		case *Tree:
			printTree(w, v, childPrefix+line, childPrefix+prefix)
		}
	}
}
