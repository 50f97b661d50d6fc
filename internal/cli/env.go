package cli

import (
	"os"
	"strings"

	"github.com/spf13/pflag"
)

// Environment variables consumed by the commands. Cobra has no declarative
// env binding, so each value is resolved explicitly with the standard
// precedence: flag if set on the command line, else environment variable,
// else configuration file value, else built-in default.
const (
	// EnvName supplies the name for the hello command.
	EnvName = "TEMPLATE_CLI_NAME"

	// EnvVerbose enables verbose output.
	EnvVerbose = "TEMPLATE_CLI_VERBOSE"

	// EnvQuiet enables quiet mode.
	EnvQuiet = "TEMPLATE_CLI_QUIET"
)

// resolveBool resolves a boolean setting with flag > env > fallback
// precedence. The flag value only wins when the flag was actually set on
// the command line; unparseable environment values are ignored.
func resolveBool(fs *pflag.FlagSet, flagName string, flagValue bool, envVar string, fallback bool) bool {
	if fs.Changed(flagName) {
		return flagValue
	}
	if raw, ok := os.LookupEnv(envVar); ok {
		if v, valid := parseBoolEnv(raw); valid {
			return v
		}
	}
	return fallback
}

// parseBoolEnv interprets common boolean spellings from the environment.
// The second return value is false for unrecognized input.
func parseBoolEnv(raw string) (value bool, valid bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "true", "yes", "on":
		return true, true
	case "0", "false", "no", "off", "":
		return false, true
	default:
		return false, false
	}
}
