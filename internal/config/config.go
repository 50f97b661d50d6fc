package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/agilira/argus"

	"github.com/praxis-dev/template-cli/internal/model"
)

// EnvConfigPath is the environment variable that can point at an
// alternative configuration file.
const EnvConfigPath = "TEMPLATE_CLI_CONFIG"

// DefaultName is the built-in greeting name used when no other source
// supplies one.
const DefaultName = "default"

// AppConfig holds the application settings loaded from the configuration
// file. It is constructed once per invocation and immutable after load.
type AppConfig struct {
	// Name is the default name for the hello command.
	Name string

	// Verbose enables detailed diagnostic output.
	Verbose bool

	// Quiet suppresses non-error output.
	Quiet bool
}

// Default returns an AppConfig populated with the built-in defaults.
func Default() AppConfig {
	return AppConfig{Name: DefaultName}
}

// Source identifies which tier supplied the resolved configuration file.
// It is used for display (info/config commands) and loading only.
type Source int

const (
	// SourceNone means no configuration file was found.
	SourceNone Source = iota

	// SourceFlag means the file came from an explicit --config path.
	SourceFlag

	// SourceEnv means the file came from the TEMPLATE_CLI_CONFIG variable.
	SourceEnv

	// SourceDefault means the file was found at the default location.
	SourceDefault
)

// String returns the human-readable name of the source.
func (s Source) String() string {
	switch s {
	case SourceFlag:
		return "flag"
	case SourceEnv:
		return "env"
	case SourceDefault:
		return "default"
	default:
		return "none"
	}
}

// DefaultPath returns the default configuration file path:
// $XDG_CONFIG_HOME/template-cli/config.toml, falling back to
// ~/.config when XDG_CONFIG_HOME is unset.
func DefaultPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			// No home directory: relative fallback keeps the path usable.
			home = "."
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "template-cli", "config.toml")
}

// Find resolves which configuration file to use, if any.
//
// explicit is the --config flag value ("" when not given), envVar the name
// of the environment variable holding an alternative path. The returned
// Source records the tier that won; (""/SourceNone) means no file.
func Find(explicit string, envVar string) (string, Source) {
	// Explicit path takes priority and short-circuits: a missing explicit
	// file means "no config", never a fall-through to the other tiers.
	if explicit != "" {
		if fileExists(explicit) {
			return explicit, SourceFlag
		}
		return "", SourceNone
	}

	if envPath := os.Getenv(envVar); envPath != "" {
		if fileExists(envPath) {
			return envPath, SourceEnv
		}
	}

	if defaultPath := DefaultPath(); fileExists(defaultPath) {
		return defaultPath, SourceDefault
	}

	return "", SourceNone
}

// Load resolves and loads the configuration. When no file is found the
// built-in defaults are returned with a nil error; a file that exists but
// cannot be parsed or validated yields a config-coded error.
func Load(explicit string, envVar string) (AppConfig, error) {
	path, src := Find(explicit, envVar)
	if src == SourceNone {
		return Default(), nil
	}
	return LoadFile(path)
}

// LoadFile loads the configuration from a specific file and validates it
// against the AppConfig schema. Unknown keys are ignored; wrongly typed
// values are fatal.
func LoadFile(path string) (AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Default(), model.WrapConfigError(err, fmt.Sprintf("cannot read config file %s", path))
	}

	raw, err := argus.ParseConfig(data, argus.DetectFormat(path))
	if err != nil {
		return Default(), model.WrapConfigError(err, fmt.Sprintf("invalid TOML in %s", path))
	}

	cfg := Default()
	err = argus.NewConfigBinder(raw).
		BindString(&cfg.Name, "name", DefaultName).
		BindBool(&cfg.Verbose, "verbose", false).
		BindBool(&cfg.Quiet, "quiet", false).
		Apply()
	if err != nil {
		return Default(), model.WrapConfigError(err, fmt.Sprintf("config validation failed for %s", path))
	}

	return cfg, nil
}

// defaultContent is the fixed template written by WriteDefault.
const defaultContent = `# Template CLI Configuration
# See documentation for all options

# Default name for the hello command
name = "World"

# Verbose output (true/false)
verbose = false

# Quiet mode - suppress non-error output (true/false)
quiet = false
`

// WriteDefault writes the default configuration template to path, or to
// the default location when path is empty. Parent directories are created
// as needed. Any existing file at the path is overwritten without warning;
// the operation is idempotent.
func WriteDefault(path string) (string, error) {
	if path == "" {
		path = DefaultPath()
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("cannot create config directory: %w", err)
	}

	if err := os.WriteFile(path, []byte(defaultContent), 0o644); err != nil {
		return "", fmt.Errorf("cannot write config file %s: %w", path, err)
	}

	return path, nil
}

// fileExists reports whether path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
