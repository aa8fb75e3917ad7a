// Command lsys generates plane and space curves from Lindenmayer systems.
package main

import (
	"fmt"
	"os"

	"github.com/curvelab/lsys/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(cli.GetExitCode(err))
	}
}
