package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/nihei9/cfgearley/cfg"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var rootFlags = struct {
	grammar   *string
	maxItems  *int
	tokenizer *string
	logLevel  *string
}{}

var rootCmd = &cobra.Command{
	Use:   "cfgparse",
	Short: "Recognize and parse sentences against a context-free grammar",
	Long: `cfgparse provides three features:
- Parses a single sentence against a textual grammar and prints its tree.
- Runs a REPL that parses one sentence per line until EOF.
- Tokenizes a text stream according to the grammar.
  This feature is primarily aimed at debugging the grammar.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	rootFlags.grammar = rootCmd.PersistentFlags().StringP("grammar", "g", "", "path to a textual grammar file (required)")
	rootFlags.maxItems = rootCmd.PersistentFlags().Int("max-items", 0, "per-state chart item cap; 0 means unbounded")
	rootFlags.tokenizer = rootCmd.PersistentFlags().String("tokenizer", "default", "tokenizer to use (reserved for future pluggable tokenizers)")
	rootFlags.logLevel = rootCmd.PersistentFlags().String("log-level", "warn", "log level: debug, info, warn, error")
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return err
	}
	return nil
}

func setupLogger() (*logrus.Logger, error) {
	l := logrus.New()
	lv, err := logrus.ParseLevel(*rootFlags.logLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", *rootFlags.logLevel, err)
	}
	l.SetLevel(lv)
	l.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	return l, nil
}

// loadGrammar reads a textual grammar from path, one rule per line, via
// cfg.Grammar.AddRuleString. Blank lines and lines whose first non-space
// character is '#' are skipped.
func loadGrammar(path string) (*cfg.Grammar, error) {
	if path == "" {
		return nil, fmt.Errorf("--grammar is required")
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open grammar file %s: %w", path, err)
	}
	defer f.Close()

	g := cfg.NewGrammar()
	s := bufio.NewScanner(f)
	row := 0
	for s.Scan() {
		row++
		line := strings.TrimSpace(s.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if _, err := g.AddRuleString(line); err != nil {
			return nil, fmt.Errorf("%s:%d: %w", path, row, err)
		}
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return g, nil
}
