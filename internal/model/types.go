package model

import (
	"fmt"
	"strings"
)

// ExitCode defines standard CLI exit codes following Unix conventions:
// 0 for success, 1 for general errors, 2 for argument misuse, and the
// 64-78 range (BSD sysexits.h) for application-specific failures.
// These codes allow scripts and CI systems to programmatically determine
// the outcome of a command.
type ExitCode int

const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess ExitCode = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError ExitCode = 1

	// ExitInvalidArgument indicates the command line could not be parsed
	// (unknown flag, unknown command, malformed value).
	ExitInvalidArgument ExitCode = 2

	// ExitValidationError indicates user-supplied input failed a business
	// rule (EX_DATAERR in sysexits.h).
	ExitValidationError ExitCode = 65

	// ExitConfigError indicates the configuration file exists but is
	// malformed or fails schema validation (EX_CONFIG in sysexits.h).
	ExitConfigError ExitCode = 78
)

// Verbosity is the user-selected output level. It controls both the
// logging threshold and how much diagnostic text commands print.
// The levels are ordered: VerbosityQuiet < VerbosityNormal < VerbosityVerbose.
type Verbosity int

const (
	// VerbosityQuiet suppresses all non-error output. Logging is limited
	// to warnings and above, and the data channel stays empty.
	VerbosityQuiet Verbosity = iota

	// VerbosityNormal is the default level: results only, info-level logs.
	VerbosityNormal

	// VerbosityVerbose enables detailed diagnostic output and debug logs.
	VerbosityVerbose
)

// String returns the lowercase name of the verbosity level.
// This method satisfies the fmt.Stringer interface.
func (v Verbosity) String() string {
	switch v {
	case VerbosityQuiet:
		return "quiet"
	case VerbosityVerbose:
		return "verbose"
	default:
		return "normal"
	}
}

// IsValid checks whether the Verbosity value is one of the predefined levels.
func (v Verbosity) IsValid() bool {
	switch v {
	case VerbosityQuiet, VerbosityNormal, VerbosityVerbose:
		return true
	default:
		return false
	}
}

// ParseVerbosity converts a string to a Verbosity.
// Returns an error if the string does not match any valid level.
func ParseVerbosity(s string) (Verbosity, error) {
	switch strings.ToLower(s) {
	case "quiet":
		return VerbosityQuiet, nil
	case "normal":
		return VerbosityNormal, nil
	case "verbose":
		return VerbosityVerbose, nil
	default:
		return VerbosityNormal, fmt.Errorf("invalid verbosity: %q (valid: quiet, normal, verbose)", s)
	}
}

// VerbosityFromFlags derives the effective verbosity from the --verbose and
// --quiet flags. Quiet wins when both are set: suppressing output is the
// safer interpretation of a contradictory request.
func VerbosityFromFlags(verbose, quiet bool) Verbosity {
	switch {
	case quiet:
		return VerbosityQuiet
	case verbose:
		return VerbosityVerbose
	default:
		return VerbosityNormal
	}
}

// CLIError is a custom error type that carries an exit code.
// This allows the CLI layer to translate domain errors into
// appropriate process exit codes at a single dispatch point.
type CLIError struct {
	// Code is the exit code to return to the OS.
	Code ExitCode

	// Message is the human-readable error description.
	Message string

	// Hint is an optional actionable suggestion printed after the error
	// message on the diagnostic channel.
	Hint string

	// Err is the underlying error, if any.
	Err error
}

// Error implements the error interface.
func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/As chains.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a CLIError with the given exit code and message.
func NewCLIError(code ExitCode, message string) *CLIError {
	return &CLIError{Code: code, Message: message}
}

// WrapCLIError creates a CLIError that wraps an underlying error.
func WrapCLIError(code ExitCode, message string, err error) *CLIError {
	return &CLIError{Code: code, Message: message, Err: err}
}

// WithHint attaches an actionable suggestion to the error and returns it.
func (e *CLIError) WithHint(hint string) *CLIError {
	e.Hint = hint
	return e
}
