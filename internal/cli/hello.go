// Package cli — hello.go implements the "template-cli hello" command,
// the one command with actual business logic behind it.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/praxis-dev/template-cli/internal/config"
	"github.com/praxis-dev/template-cli/internal/console"
	"github.com/praxis-dev/template-cli/internal/greeting"
	"github.com/praxis-dev/template-cli/internal/model"
)

// helloFlags holds the flag values for the hello command.
type helloFlags struct {
	verbose bool // --verbose: show detailed output
	quiet   bool // --quiet: show only errors
}

// NewHelloCommand creates the "hello" cobra command.
func NewHelloCommand() *cobra.Command {
	flags := &helloFlags{}

	cmd := &cobra.Command{
		Use:   "hello [name]",
		Short: "Greet someone by name",
		Long: `Greet someone by name.

The name is resolved with flag > environment > config file > default
precedence, so it can come from the positional argument, TEMPLATE_CLI_NAME,
or the "name" key of the configuration file.

Examples:
  template-cli hello World
  template-cli hello --verbose Alice
  TEMPLATE_CLI_NAME=Bob template-cli hello`,

		// The positional name is optional so the environment variable and
		// config file tiers can supply it.
		Args: cobra.MaximumNArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			return runHello(cmd, args, flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.verbose, "verbose", "v", false, "Show detailed output.")
	cmd.Flags().BoolVarP(&flags.quiet, "quiet", "q", false, "Show only errors.")

	return cmd
}

// runHello resolves the effective settings, computes the greeting, and
// writes it to the data channel.
func runHello(cmd *cobra.Command, args []string, flags *helloFlags) error {
	// The config file is the lowest precedence tier for every setting.
	// Missing file means defaults; a present-but-invalid file is fatal.
	cfg, err := config.Load("", config.EnvConfigPath)
	if err != nil {
		return model.WrapCLIError(model.ExitConfigError, "failed to load configuration", err)
	}

	verbose := resolveBool(cmd.Flags(), "verbose", flags.verbose, EnvVerbose, cfg.Verbose)
	quiet := resolveBool(cmd.Flags(), "quiet", flags.quiet, EnvQuiet, cfg.Quiet)
	verbosity := model.VerbosityFromFlags(verbose, quiet)

	logger := console.SetupLogging(verbosity, cmd.ErrOrStderr())

	name := resolveName(args, cfg)
	logger.Debug("processing greeting", "name", name, "verbosity", verbosity.String())

	result, err := greeting.Greet(name)
	if err != nil {
		if model.IsValidationError(err) {
			return model.NewCLIError(model.ExitValidationError, "Name cannot be empty").
				WithHint("Provide a non-empty name.")
		}
		return model.WrapCLIError(model.ExitGeneralError, "greeting failed", err)
	}

	// Data output goes to stdout for piping; quiet suppresses it entirely.
	if !quiet {
		dataConsole(cmd).Println(result)
	}

	logger.Debug("greeting completed successfully")
	return nil
}

// resolveName picks the greeting name: positional argument first (even when
// empty, so validation sees exactly what the user typed), then the
// environment variable, then the config file value or built-in default.
func resolveName(args []string, cfg config.AppConfig) string {
	if len(args) > 0 {
		return args[0]
	}
	if env, ok := os.LookupEnv(EnvName); ok {
		return env
	}
	return cfg.Name
}
