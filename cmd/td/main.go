// Package main provides td, the command-line companion of the todo console.
package main

import (
	"fmt"
	"os"

	"github.com/riordanpawley/todo/internal/cli"
	"github.com/riordanpawley/todo/internal/config"
	"github.com/spf13/afero"
)

var version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	deps := &cli.Dependencies{
		Config: cfg,
		Fs:     afero.NewOsFs(),
		Out:    os.Stdout,
		Err:    os.Stderr,
	}
	if err := cli.Execute(deps, version); err != nil {
		os.Exit(1)
	}
}
