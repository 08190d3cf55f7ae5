package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version information, set by build flags.
var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "jscore",
	Short: "ECMAScript front-end core: scanner, parser, and AST/scope tooling",
	Long: `jscore exposes this repository's ECMAScript engine core as a
command-line tool: the lexical scanner, the recursive-descent parser and
its scope builder, and inspection of the resulting AST/scope tree.

There is no interpreter behind this CLI (the bytecode emitter and
execution loop are out of this core's scope) — these subcommands only
drive the front end through to its AST/scope-tree output.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))
}
