package main

import (
	"fmt"
	"os"

	"github.com/asadandasad/openrw-editor/cmd/buildtest/commands"
	"github.com/asadandasad/openrw-editor/cmd/buildtest/internal/clierr"
)

func main() {
	if err := commands.NewRootCmd().Execute(); err != nil {
		if msg := err.Error(); msg != "" {
			fmt.Fprintln(os.Stderr, msg)
		}
		os.Exit(clierr.ExitCodeOf(err))
	}
}
