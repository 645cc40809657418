package cfg

import (
	"regexp"

	"github.com/nihei9/cfgearley/symbol"
)

// RHSElem is one position of a production's right-hand side: either a
// non-terminal symbol or a terminal. This is a tagged variant rather than a
// single runtime-typed value, so the recognizer and extractor can switch on
// it exhaustively.
type RHSElem interface {
	rhsElem()
}

// SymbolElem is a non-terminal position in a rule's right-hand side.
type SymbolElem struct {
	Sym symbol.Symbol
}

func (SymbolElem) rhsElem() {}

// Terminal is a terminal position in a rule's right-hand side: a literal
// string matched by exact equality, or a pattern matched by full-match
// regular expression. A terminal has no identity beyond its value, unlike a
// Symbol.
type Terminal interface {
	RHSElem
	// Matches reports whether token satisfies this terminal.
	Matches(token string) bool
	// Source returns the terminal's textual form, as it would appear on
	// the right-hand side of a textual rule.
	Source() string
}

// Literal is a terminal matched by exact string equality.
type Literal struct {
	Value string
}

func (Literal) rhsElem() {}

func (l Literal) Matches(token string) bool {
	return l.Value == token
}

func (l Literal) Source() string {
	return l.Value
}

// Pattern is a terminal matched by a full-match regular expression.
type Pattern struct {
	expr string
	re   *regexp.Regexp
}

// NewPattern compiles source as a regular expression and returns a Pattern
// terminal that full-matches a token against it.
func NewPattern(source string) (Pattern, error) {
	re, err := regexp.Compile(`^(?:` + source + `)$`)
	if err != nil {
		return Pattern{}, err
	}
	return Pattern{expr: source, re: re}, nil
}

func (Pattern) rhsElem() {}

func (p Pattern) Matches(token string) bool {
	return p.re.MatchString(token)
}

func (p Pattern) Source() string {
	return p.expr
}
