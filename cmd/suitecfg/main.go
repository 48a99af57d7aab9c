// Package main provides the suitecfg CLI, which builds the SelfhostCompiler test
// suite descriptor for a lit-style test engine.
package main

import (
	"os"

	"selfhostlit/cmd/suitecfg/internal/cli"
)

func main() {
	app := cli.NewApp()
	rootCmd := app.CreateRootCommand()

	if err := cli.Execute(rootCmd); err != nil {
		os.Exit(1)
	}
}
