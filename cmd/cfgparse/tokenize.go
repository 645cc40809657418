package main

import (
	"fmt"
	"os"

	"github.com/nihei9/cfgearley/cfg/token"
	"github.com/spf13/cobra"
)

var tokenizeFlags = struct {
	source *string
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "tokenize",
		Short:   "Tokenize a text stream according to the grammar and print one token per line",
		Example: `  echo "2 * 3" | cfgparse tokenize --grammar arithmetic.cfg`,
		Args:    cobra.NoArgs,
		RunE:    runTokenize,
	}
	tokenizeFlags.source = cmd.Flags().StringP("source", "s", "", "source file path (default stdin)")
	rootCmd.AddCommand(cmd)
}

func runTokenize(cmd *cobra.Command, args []string) error {
	g, err := loadGrammar(*rootFlags.grammar)
	if err != nil {
		return err
	}
	sentence, err := readSentence(*tokenizeFlags.source)
	if err != nil {
		return err
	}

	tokens, err := token.Tokenize(sentence, g)
	if err != nil {
		return err
	}
	for _, tok := range tokens {
		fmt.Fprintln(os.Stdout, tok)
	}
	return nil
}
