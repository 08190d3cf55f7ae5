package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cwbudde/go-jscore/pkg/jscore"
)

var (
	lexExprFlag string
	lexModule   bool
)

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize ECMAScript source and print the resulting token stream",
	Long: `Tokenize ECMAScript source code and print one line per token:
kind, source span, and line:column.

If no file is provided, reads from stdin. Use -e to tokenize a single
expression given on the command line.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLex,
}

func init() {
	rootCmd.AddCommand(lexCmd)
	lexCmd.Flags().StringVarP(&lexExprFlag, "expression", "e", "", "tokenize an expression given on the command line")
	lexCmd.Flags().BoolVar(&lexModule, "module", false, "tokenize as Module source (always strict)")
}

func runLex(c *cobra.Command, args []string) error {
	source, err := readInput(lexExprFlag, lexExprFlag != "", args)
	if err != nil {
		return err
	}

	result := jscore.Lex(source, jscore.LexOptions{Module: lexModule})
	for _, t := range result.Tokens {
		fmt.Fprintln(os.Stdout, t.String())
	}
	for _, d := range result.Errors {
		fmt.Fprintln(os.Stderr, d.Format(true))
	}
	if len(result.Errors) > 0 {
		return fmt.Errorf("%d lex error(s)", len(result.Errors))
	}
	return nil
}
