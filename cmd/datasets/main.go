// Command datasets stores schema-less JSON records and serves group-by and
// sort-by queries over them.
package main

import (
	"fmt"
	"os"

	"github.com/roach88/datasets/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		if !cli.IsReported(err) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(cli.GetExitCode(err))
	}
}
