// Package main is the entry point for the template-cli binary.
//
// All functionality lives in internal/cli, which defines the cobra
// commands. This file only injects the build-time version and converts
// the dispatch result into a process exit code.
package main

import (
	"os"

	"github.com/praxis-dev/template-cli/internal/cli"
)

// version is set at build time via ldflags
// (-ldflags "-X main.version=1.2.3"). It defaults to "dev" during
// development.
var version = "dev"

func main() {
	cli.Version = version

	rootCmd := cli.NewRootCommand()
	os.Exit(cli.Execute(rootCmd))
}
