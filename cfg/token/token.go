// Package token implements the default tokenizer: splitting a raw sentence
// by every terminal that appears anywhere in a grammar. The recognizer's
// only contract with a tokenizer is that it returns a sequence of strings;
// any function with the Tokenizer signature may be substituted.
package token

import (
	"regexp"
	"strings"

	"github.com/nihei9/cfgearley/cfg"
)

// Tokenizer splits sentence into tokens using g's terminals. The default
// implementation, Tokenize, may be replaced by any function of this
// signature.
type Tokenizer func(sentence string, g *cfg.Grammar) ([]string, error)

// Tokenize collects every terminal (string or pattern) from every rule of
// g, escapes the string terminals as regex literals, joins all of them into
// one alternation delimiter pattern with a capturing group, splits sentence
// on that delimiter while keeping the delimiters, trims each piece, and
// drops empty pieces.
//
// Overlapping terminals are resolved by the underlying regex engine's
// leftmost-first alternation semantics, in the order the terminals were
// first seen in the grammar.
func Tokenize(sentence string, g *cfg.Grammar) ([]string, error) {
	terms := g.Terminals()
	if len(terms) == 0 {
		return splitAndTrim([]string{sentence}), nil
	}

	alts := make([]string, 0, len(terms))
	for _, t := range terms {
		if _, isPattern := t.(cfg.Pattern); isPattern {
			alts = append(alts, t.Source())
		} else {
			alts = append(alts, regexp.QuoteMeta(t.Source()))
		}
	}
	delim, err := regexp.Compile("(" + strings.Join(alts, "|") + ")")
	if err != nil {
		return nil, err
	}

	pieces := splitKeepDelimiters(delim, sentence)
	return splitAndTrim(pieces), nil
}

// splitKeepDelimiters behaves like JavaScript's String.prototype.split
// called with a regex that has a capturing group: the text between matches
// and the matched delimiters themselves are interleaved in the result, in
// the order they appear in the input.
func splitKeepDelimiters(re *regexp.Regexp, s string) []string {
	matches := re.FindAllStringIndex(s, -1)
	if matches == nil {
		return []string{s}
	}

	var out []string
	last := 0
	for _, m := range matches {
		if m[0] > last {
			out = append(out, s[last:m[0]])
		}
		out = append(out, s[m[0]:m[1]])
		last = m[1]
	}
	if last < len(s) {
		out = append(out, s[last:])
	}
	return out
}

func splitAndTrim(pieces []string) []string {
	var out []string
	for _, p := range pieces {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}
