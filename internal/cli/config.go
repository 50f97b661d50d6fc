// Package cli — config.go implements the "template-cli config" command
// for inspecting and creating the configuration file.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/praxis-dev/template-cli/internal/config"
	"github.com/praxis-dev/template-cli/internal/model"
)

// configFlags holds the flag values for the config command.
type configFlags struct {
	init bool   // --init: create a default config file
	path string // --path: custom config file location
}

// NewConfigCommand creates the "config" cobra command.
func NewConfigCommand() *cobra.Command {
	flags := &configFlags{}

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
		Long: `Manage the configuration file.

Without flags the command shows the config file location and current
settings. With --init it writes the default config template, overwriting
any existing file at the target path.

Examples:
  template-cli config              # Show config location
  template-cli config --init      # Create default config
  template-cli config --init -p ./config.toml`,

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfig(cmd, flags)
		},
	}

	cmd.Flags().BoolVar(&flags.init, "init", false, "Create default config file.")
	cmd.Flags().StringVarP(&flags.path, "path", "p", "", "Custom path for config file.")

	return cmd
}

// runConfig either creates the default config file (--init) or shows the
// current configuration state.
func runConfig(cmd *cobra.Command, flags *configFlags) error {
	out := dataConsole(cmd)

	if flags.init {
		created, err := config.WriteDefault(flags.path)
		if err != nil {
			return model.WrapCLIError(model.ExitGeneralError, "failed to create config", err)
		}
		out.Printf("%s %s\n", out.Style.Success.Render("Created config file:"), created)
		return nil
	}

	out.Println(out.Style.Bold.Render("Configuration File:"))
	out.Printf("  Default location: %s\n", config.DefaultPath())

	path, src := config.Find("", config.EnvConfigPath)
	if src == config.SourceNone {
		out.Printf("  Active config: %s\n", out.Style.Dim.Render("(none - using defaults)"))
		out.Println()
		out.Hintln("Run 'template-cli config --init' to create a config.")
		return nil
	}

	out.Printf("  Active config: %s\n", path)
	cfg, err := config.LoadFile(path)
	if err != nil {
		// Inline report on the diagnostic channel; showing the location
		// already succeeded, so the command itself does not fail.
		diag := diagConsole(cmd)
		diag.Printf("%s %v\n", diag.Style.Error.Render("Error loading config:"), err)
		return nil
	}

	out.Println()
	out.Println(out.Style.Bold.Render("Current Settings:"))
	out.Printf("  name: %s\n", cfg.Name)
	out.Printf("  verbose: %t\n", cfg.Verbose)
	out.Printf("  quiet: %t\n", cfg.Quiet)

	return nil
}
