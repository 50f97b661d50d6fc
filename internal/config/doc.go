// Package config locates, loads, validates, and defaults the application
// configuration.
//
// The configuration is a single flat TOML file. Resolution follows the
// standard three-tier CLI convention, highest priority first:
//
//  1. Explicit path from the --config flag. If the flag is given but the
//     file does not exist, resolution stops with "no config" — it does
//     NOT fall through to the other sources.
//  2. Path from the TEMPLATE_CLI_CONFIG environment variable, used only
//     if the referenced file exists.
//  3. The default location ($XDG_CONFIG_HOME/template-cli/config.toml),
//     used only if it exists.
//
// A missing file is never an error — that is the zero-config path and
// yields built-in defaults. A file that exists but is malformed or fails
// schema validation is fatal: silent misconfiguration is worse than an
// early exit.
//
// Parsing and typed binding are handled by github.com/agilira/argus.
package config
