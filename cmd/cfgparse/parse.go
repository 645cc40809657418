package main

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"strings"

	"github.com/nihei9/cfgearley/earley"
	"github.com/spf13/cobra"
)

var parseFlags = struct {
	source   *string
	evaluate *bool
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "parse",
		Short:   "Parse one sentence and print its tree",
		Example: `  echo "2 * 3" | cfgparse parse --grammar arithmetic.cfg`,
		Args:    cobra.NoArgs,
		RunE:    runParse,
	}
	parseFlags.source = cmd.Flags().StringP("source", "s", "", "source file path (default stdin)")
	parseFlags.evaluate = cmd.Flags().Bool("evaluate", false, "fold the tree with the grammar's rule valuators and print the value")
	rootCmd.AddCommand(cmd)
}

func runParse(cmd *cobra.Command, args []string) (retErr error) {
	defer func() {
		if v := recover(); v != nil {
			err, ok := v.(error)
			if !ok {
				err = fmt.Errorf("an unexpected error occurred: %v", v)
			}
			fmt.Fprintf(os.Stderr, "%v:\n%v", err, string(debug.Stack()))
			retErr = err
		}
	}()

	g, err := loadGrammar(*rootFlags.grammar)
	if err != nil {
		return err
	}

	logger, err := setupLogger()
	if err != nil {
		return err
	}

	sentence, err := readSentence(*parseFlags.source)
	if err != nil {
		return err
	}

	opts := []earley.Option{earley.WithLogger(logger)}
	if *rootFlags.maxItems > 0 {
		opts = append(opts, earley.WithMaxItemsPerState(*rootFlags.maxItems))
	}

	tree, err := earley.Parse(sentence, g, opts...)
	if err != nil {
		return err
	}

	earley.PrintTree(os.Stdout, tree)

	if *parseFlags.evaluate {
		v, err := earley.Evaluate(tree)
		if err != nil {
			return fmt.Errorf("evaluate: %w", err)
		}
		fmt.Fprintf(os.Stdout, "= %v\n", v)
	}

	return nil
}

func readSentence(sourcePath string) (string, error) {
	src := io.Reader(os.Stdin)
	if sourcePath != "" {
		f, err := os.Open(sourcePath)
		if err != nil {
			return "", fmt.Errorf("cannot open the source file %s: %w", sourcePath, err)
		}
		defer f.Close()
		src = f
	}
	data, err := io.ReadAll(src)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}
