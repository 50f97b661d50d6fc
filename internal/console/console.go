package console

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// IsTTY reports whether f is attached to an interactive terminal.
// Cygwin/MSYS pseudo terminals count as terminals.
func IsTTY(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// StdoutIsTTY reports whether the primary data stream is a terminal.
func StdoutIsTTY() bool {
	return IsTTY(os.Stdout)
}

// ColorsEnabled reports whether colored output should be used on f.
//
// Colors are off when NO_COLOR is set (any value, including empty),
// when TERM=dumb, or when f is not a terminal.
func ColorsEnabled(f *os.File) bool {
	if _, set := os.LookupEnv("NO_COLOR"); set {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return IsTTY(f)
}

// Styles is the set of lipgloss styles a Console renders with. When colors
// are disabled every style is a zero-value lipgloss.Style, whose Render is
// the identity function.
type Styles struct {
	// Error styles error prefixes (red, bold).
	Error lipgloss.Style

	// Hint styles actionable suggestions (faint).
	Hint lipgloss.Style

	// Bold styles section headers.
	Bold lipgloss.Style

	// Dim styles de-emphasized detail such as unset values (faint).
	Dim lipgloss.Style

	// Success styles confirmation messages (green).
	Success lipgloss.Style
}

// newStyles builds the style set. Uncolored styles render text unchanged.
func newStyles(colored bool) Styles {
	if !colored {
		return Styles{
			Error:   lipgloss.NewStyle(),
			Hint:    lipgloss.NewStyle(),
			Bold:    lipgloss.NewStyle(),
			Dim:     lipgloss.NewStyle(),
			Success: lipgloss.NewStyle(),
		}
	}
	return Styles{
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		Hint:    lipgloss.NewStyle().Faint(true),
		Bold:    lipgloss.NewStyle().Bold(true),
		Dim:     lipgloss.NewStyle().Faint(true),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	}
}

// Console is one output channel: a writer plus the styles appropriate for
// its terminal capabilities.
type Console struct {
	// Style holds the render styles for this channel.
	Style Styles

	w io.Writer
}

// NewStdout returns the data channel console, colorized according to
// stdout's own TTY check.
func NewStdout() *Console {
	return New(os.Stdout, ColorsEnabled(os.Stdout))
}

// NewStderr returns the diagnostic channel console, colorized according to
// stderr's own TTY check, independently of stdout.
func NewStderr() *Console {
	return New(os.Stderr, ColorsEnabled(os.Stderr))
}

// New returns a console writing to w. Tests use this to capture output in
// buffers with colors forced off.
func New(w io.Writer, colored bool) *Console {
	return &Console{w: w, Style: newStyles(colored)}
}

// Println writes the arguments followed by a newline.
func (c *Console) Println(a ...any) {
	fmt.Fprintln(c.w, a...)
}

// Printf writes formatted text. No newline is appended.
func (c *Console) Printf(format string, a ...any) {
	fmt.Fprintf(c.w, format, a...)
}

// Errorf writes a styled "Error:" prefix followed by the formatted message
// and a newline.
func (c *Console) Errorf(format string, a ...any) {
	fmt.Fprintf(c.w, "%s %s\n", c.Style.Error.Render("Error:"), fmt.Sprintf(format, a...))
}

// Hintln writes a styled hint line.
func (c *Console) Hintln(text string) {
	fmt.Fprintln(c.w, c.Style.Hint.Render(text))
}

// Writer exposes the underlying writer, for handing to collaborators such
// as the logging setup.
func (c *Console) Writer() io.Writer {
	return c.w
}
