// Package cli implements the cobra-based commands for template-cli.
//
// Each subcommand (hello, info, config) is defined in its own file within
// this package. This file defines the root command and the single dispatch
// point that maps errors to process exit codes.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/praxis-dev/template-cli/internal/console"
	"github.com/praxis-dev/template-cli/internal/model"
)

// Version is the semantic version of the binary. It is injected from the
// main package at build time via ldflags and defaults to "dev" during
// development.
var Version = "dev"

// NewRootCommand creates and configures the root cobra command.
// This is the entry point for the entire CLI application.
//
// The root command itself does not perform any action — it provides help
// text and the eager --version flag. Actual functionality is provided by
// the subcommands.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "template-cli",
		Short: "A CLI template demonstrating Praxis patterns",
		Long: `template-cli is a skeleton command-line application demonstrating
conventions for argument parsing, exit codes, stdout/stderr separation,
environment-variable overrides, configuration files, verbosity-controlled
logging, and TTY/color detection.

Data output (command results) goes to stdout so it stays machine-parseable
when piped. Logs, errors, and hints go to stderr.`,

		// SilenceUsage prevents cobra from printing usage on every error.
		// We handle error output ourselves for cleaner UX.
		SilenceUsage: true,

		// SilenceErrors prevents cobra from printing errors automatically.
		// Execute formats them with the styled diagnostic console instead.
		SilenceErrors: true,

		// Version enables cobra's eager --version handling: it prints the
		// version template to stdout and short-circuits before any
		// command logic runs.
		Version: Version,
	}

	// Match the "template-cli <version>" output shape and add the -V
	// shorthand. Defining the flag ourselves keeps cobra from installing
	// its default one without a shorthand.
	rootCmd.SetVersionTemplate("template-cli {{.Version}}\n")
	rootCmd.Flags().BoolP("version", "V", false, "Show version and exit.")

	// Register subcommands. Each is defined in its own file and returns
	// a *cobra.Command.
	rootCmd.AddCommand(NewHelloCommand())
	rootCmd.AddCommand(NewInfoCommand())
	rootCmd.AddCommand(NewConfigCommand())

	return rootCmd
}

// Execute runs the root command and returns the process exit code.
// main passes the result straight to os.Exit; tests inspect it directly.
//
// This is the single point where errors become exit codes:
//
//   - *model.CLIError carries its own code
//   - argument-parse failures (unknown flag/command, bad value) map to
//     ExitInvalidArgument
//   - coded domain errors map through their error code
//   - anything else is ExitGeneralError
func Execute(rootCmd *cobra.Command) int {
	// Cobra reports parse failures as plain errors before any RunE runs.
	// Track whether dispatch reached a command so those failures map to
	// ExitInvalidArgument rather than ExitGeneralError.
	dispatched := false
	rootCmd.PersistentPreRun = func(*cobra.Command, []string) { dispatched = true }

	err := rootCmd.Execute()
	if err == nil {
		return int(model.ExitSuccess)
	}

	diag := consoleFor(rootCmd.ErrOrStderr())

	var cliErr *model.CLIError
	if errors.As(err, &cliErr) {
		if cliErr.Err != nil {
			diag.Errorf("%s: %v", cliErr.Message, cliErr.Err)
		} else {
			diag.Errorf("%s", cliErr.Message)
		}
		if cliErr.Hint != "" {
			diag.Hintln("Hint: " + cliErr.Hint)
		}
		return int(cliErr.Code)
	}

	if !dispatched {
		diag.Errorf("%v", err)
		diag.Hintln(fmt.Sprintf("Run '%s --help' for usage.", rootCmd.Name()))
		return int(model.ExitInvalidArgument)
	}

	diag.Errorf("%v", err)
	switch {
	case model.IsValidationError(err):
		return int(model.ExitValidationError)
	case model.IsConfigError(err):
		return int(model.ExitConfigError)
	}
	return int(model.ExitGeneralError)
}

// consoleFor builds a console for w. Real process streams get their own
// TTY/color detection; anything else (buffers in tests) renders plain.
func consoleFor(w io.Writer) *console.Console {
	if f, ok := w.(*os.File); ok {
		return console.New(f, console.ColorsEnabled(f))
	}
	return console.New(w, false)
}

// dataConsole returns the data channel console for cmd. Command results
// go here and nowhere else, so piped output stays machine-parseable.
func dataConsole(cmd *cobra.Command) *console.Console {
	return consoleFor(cmd.OutOrStdout())
}

// diagConsole returns the diagnostic channel console for cmd. Errors,
// hints, and progress text go here, never to the data channel.
func diagConsole(cmd *cobra.Command) *console.Console {
	return consoleFor(cmd.ErrOrStderr())
}
