package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cwbudde/go-jscore/pkg/jscore"
)

var (
	scopeExprFlag string
	scopeModule   bool
	scopeFormat   string
)

var scopeCmd = &cobra.Command{
	Use:   "scope [file]",
	Short: "Parse ECMAScript source and dump its scope tree",
	Long: `Parse ECMAScript source code and print the scope tree built
alongside the AST: every function scope's parameters, flags, hoisted
var names, and its nested block scopes' lexical/using names.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScope,
}

func init() {
	rootCmd.AddCommand(scopeCmd)
	scopeCmd.Flags().StringVarP(&scopeExprFlag, "expression", "e", "", "parse an expression from the command line")
	scopeCmd.Flags().BoolVar(&scopeModule, "module", false, "parse as Module source")
	scopeCmd.Flags().StringVar(&scopeFormat, "dump-format", "json", "dump format: json or yaml")
}

func runScope(c *cobra.Command, args []string) error {
	source, err := readInput(scopeExprFlag, scopeExprFlag != "", args)
	if err != nil {
		return err
	}

	mode := jscore.Script
	if scopeModule {
		mode = jscore.Module
	}
	result := jscore.Parse(source, jscore.ParseOptions{Mode: mode})

	for _, d := range result.Errors {
		fmt.Fprintln(os.Stderr, d.Format(true))
	}
	if !result.OK() {
		return fmt.Errorf("%d parse error(s)", len(result.Errors))
	}

	data, err := jscore.DumpScopeTree(result.Scope, jscore.DumpFormat(scopeFormat))
	if err != nil {
		return err
	}
	fmt.Fprintln(os.Stdout, string(data))
	return nil
}
