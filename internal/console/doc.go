// Package console manages the two output channels of the CLI and the
// terminal capabilities that shape them.
//
// The core invariant: command results go to the data channel (stdout) so
// they stay machine-parseable when piped, while logs, errors, and hints go
// to the diagnostic channel (stderr) and never pollute piped output. Each
// channel makes its own TTY check, so colors can be on for an interactive
// stderr even when stdout is redirected to a file.
//
// Colors are disabled entirely when the NO_COLOR environment variable is
// set (any value) or TERM=dumb, per the informal NO_COLOR convention.
package console
