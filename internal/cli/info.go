// Package cli — info.go implements the "template-cli info" command, a
// read-only report of version, resolved configuration, and environment
// detection. It always exits successfully; problems it finds (such as a
// corrupt config file) are reported inline rather than aborting the report.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/praxis-dev/template-cli/internal/config"
	"github.com/praxis-dev/template-cli/internal/console"
)

// infoFlags holds the flag values for the info command.
type infoFlags struct {
	config string // --config: explicit config file path
}

// NewInfoCommand creates the "info" cobra command.
func NewInfoCommand() *cobra.Command {
	flags := &infoFlags{}

	cmd := &cobra.Command{
		Use:   "info",
		Short: "Show environment and configuration information",
		Long: `Show environment and configuration information.

Prints the version, the resolved configuration file and its settings, the
TTY and NO_COLOR detection results, and the known environment-variable
bindings.

Examples:
  template-cli info
  template-cli info --config /path/to/config.toml`,

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(cmd, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.config, "config", "c", "", "Path to config file.")

	return cmd
}

// runInfo prints the report to the data channel.
func runInfo(cmd *cobra.Command, flags *infoFlags) error {
	out := dataConsole(cmd)

	out.Printf("%s v%s\n", out.Style.Bold.Render("template-cli"), Version)
	out.Println()

	out.Println(out.Style.Bold.Render("Configuration:"))
	path, src := config.Find(flags.config, config.EnvConfigPath)
	if src != config.SourceNone {
		out.Printf("  Config file: %s\n", path)
		cfg, err := config.LoadFile(path)
		if err != nil {
			// Inline report, not fatal: the rest of the info is still useful.
			out.Printf("  %s %v\n", out.Style.Error.Render("Error loading config:"), err)
		} else {
			out.Printf("  name: %s\n", cfg.Name)
			out.Printf("  verbose: %t\n", cfg.Verbose)
			out.Printf("  quiet: %t\n", cfg.Quiet)
		}
	} else {
		out.Printf("  Config file: %s\n", out.Style.Dim.Render("(none - default: "+config.DefaultPath()+")"))
	}

	out.Println()
	out.Println(out.Style.Bold.Render("Environment:"))
	out.Printf("  TTY detected: %t\n", console.StdoutIsTTY())
	if _, set := os.LookupEnv("NO_COLOR"); set {
		out.Println("  NO_COLOR: set")
	} else {
		out.Println("  NO_COLOR: not set")
	}

	out.Println()
	out.Println(out.Style.Bold.Render("Environment Variables:"))
	bindings := []struct {
		name string
		desc string
	}{
		{config.EnvConfigPath, "Path to config file"},
		{EnvName, "Default name for hello command"},
		{EnvVerbose, "Enable verbose output"},
		{EnvQuiet, "Enable quiet mode"},
	}
	for _, b := range bindings {
		if value := os.Getenv(b.name); value != "" {
			out.Printf("  %s=%s\n", b.name, value)
		} else {
			out.Printf("  %s %s\n", b.name, out.Style.Dim.Render("(not set - "+b.desc+")"))
		}
	}

	return nil
}
