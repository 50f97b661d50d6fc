// Package model defines the domain types and value objects for the
// template-cli application.
//
// This package contains pure data structures with no I/O: the exit code
// registry (ExitCode), the verbosity levels that drive logging and
// diagnostic output volume (Verbosity), the coded domain errors raised by
// business logic (errors.go), and a custom error type (CLIError) that
// carries exit codes so the dispatcher can translate failures into OS
// process exit codes at a single point.
package model
