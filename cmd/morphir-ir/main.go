// Command morphir-ir reads, validates and migrates Morphir IR documents.
package main

import (
	"fmt"
	"os"

	"github.com/roach88/morphir-ir/internal/cli"
)

func main() {
	err := cli.NewRootCommand().Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
	os.Exit(cli.GetExitCode(err))
}
