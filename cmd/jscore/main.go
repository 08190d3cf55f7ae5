// Command jscore is a thin CLI wrapper around pkg/jscore. It exists
// purely as debugging/tooling surface for this repository's front end;
// the engine core itself exposes a library API only.
package main

import (
	"fmt"
	"os"

	"github.com/cwbudde/go-jscore/cmd/jscore/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
