package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cwbudde/go-jscore/pkg/jscore"
)

var (
	parseExprFlag  string
	parseModule    bool
	parseFormat    string
	parseSelect    string
	parseRecords   bool
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse ECMAScript source and dump the resulting AST",
	Long: `Parse ECMAScript source code and print its Abstract Syntax Tree.

If no file is provided, reads from stdin. Use -e to parse a single
expression from the command line. --dump-format selects json (default),
yaml, or text (an indented JSON fallback). --select runs a gjson path
query against the dumped JSON before printing it, e.g.
--select "body.0.type".`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().StringVarP(&parseExprFlag, "expression", "e", "", "parse an expression from the command line")
	parseCmd.Flags().BoolVar(&parseModule, "module", false, "parse as Module source (import/export, always strict)")
	parseCmd.Flags().StringVar(&parseFormat, "dump-format", "json", "dump format: text, json, or yaml")
	parseCmd.Flags().StringVar(&parseSelect, "select", "", "gjson path query against the dumped JSON")
	parseCmd.Flags().BoolVar(&parseRecords, "records", false, "dump the module's import/export records instead of the AST (implies --module)")
}

func runParse(c *cobra.Command, args []string) error {
	source, err := readInput(parseExprFlag, parseExprFlag != "", args)
	if err != nil {
		return err
	}

	mode := jscore.Script
	if parseModule || parseRecords {
		mode = jscore.Module
	}
	result := jscore.Parse(source, jscore.ParseOptions{Mode: mode})

	for _, d := range result.Errors {
		fmt.Fprintln(os.Stderr, d.Format(true))
	}
	if !result.OK() {
		return fmt.Errorf("%d parse error(s)", len(result.Errors))
	}

	var data []byte
	if parseRecords {
		data, err = jscore.DumpModuleRecords(result.Records, jscore.DumpFormat(parseFormat))
	} else {
		data, err = jscore.DumpAST(result.Node(), jscore.DumpFormat(parseFormat), parseSelect)
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(os.Stdout, string(data))
	return nil
}
