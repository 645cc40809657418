package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/nihei9/cfgearley/earley"
	"github.com/spf13/cobra"
)

var replFlags = struct {
	evaluate *bool
}{}

func init() {
	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Read sentences from stdin, one per line, and print each tree",
		Args:  cobra.NoArgs,
		RunE:  runRepl,
	}
	replFlags.evaluate = cmd.Flags().Bool("evaluate", false, "fold each tree with the grammar's rule valuators and print the value")
	rootCmd.AddCommand(cmd)
}

func runRepl(cmd *cobra.Command, args []string) error {
	g, err := loadGrammar(*rootFlags.grammar)
	if err != nil {
		return err
	}
	logger, err := setupLogger()
	if err != nil {
		return err
	}

	opts := []earley.Option{earley.WithLogger(logger)}
	if *rootFlags.maxItems > 0 {
		opts = append(opts, earley.WithMaxItemsPerState(*rootFlags.maxItems))
	}

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		sentence := strings.TrimSpace(scanner.Text())
		if sentence == "" {
			continue
		}

		tree, err := earley.Parse(sentence, g, opts...)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			continue
		}
		earley.PrintTree(os.Stdout, tree)

		if *replFlags.evaluate {
			v, err := earley.Evaluate(tree)
			if err != nil {
				fmt.Fprintf(os.Stderr, "evaluate: %v\n", err)
				continue
			}
			fmt.Fprintf(os.Stdout, "= %v\n", v)
		}
	}
	return scanner.Err()
}
