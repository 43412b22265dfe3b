package output

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

type styles struct {
	success lipgloss.Style
	err     lipgloss.Style
	info    lipgloss.Style
	step    lipgloss.Style
	notice  lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		success: r.NewStyle().Foreground(lipgloss.Color("2")).Bold(true),
		err:     r.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		info:    r.NewStyle().Foreground(lipgloss.Color("6")),
		step:    r.NewStyle().Foreground(lipgloss.Color("240")),
		notice:  r.NewStyle().Foreground(lipgloss.Color("3")),
	}
}

var (
	out     io.Writer = os.Stdout
	current           = newStyles(lipgloss.DefaultRenderer())

	verboseMode bool
)

// SetOutput redirects every message of this package to w.
func SetOutput(w io.Writer) {
	out = w
	current = newStyles(lipgloss.NewRenderer(w))
}

// SetVerbose enables or disables verbose output for debugging.
// This should be called by the CLI when the --verbose flag is set.
func SetVerbose(v bool) {
	verboseMode = v
}

// IsVerbose reports whether verbose output is enabled.
func IsVerbose() bool {
	return verboseMode
}

// Success prints a success message in green.
//
// Example:
//
//	output.Success("Wrote ask.yml")
func Success(msg string) {
	fmt.Fprintln(out, current.success.Render("✔ "+msg))
}

// Error prints an error message in red.
// Use this for failures that need user attention.
func Error(msg string) {
	fmt.Fprintln(out, current.err.Render("✘ "+msg))
}

// Info prints an informational message in cyan.
func Info(msg string) {
	fmt.Fprintln(out, current.info.Render(msg))
}

// Step prints an indented step message in gray.
//
// Example:
//
//	output.Step("ask confirm \"Continue?\"")
func Step(msg string) {
	fmt.Fprintln(out, current.step.Render("   "+msg))
}

// Verbose prints a debug message only if verbose mode is enabled.
func Verbose(msg string) {
	if verboseMode {
		fmt.Fprintln(out, current.step.Render("· "+msg))
	}
}

// Notice writes msg as a warning line to w, styled for w.
func Notice(w io.Writer, msg string) error {
	style := newStyles(lipgloss.NewRenderer(w)).notice
	_, err := fmt.Fprintln(w, style.Render(msg))
	return err
}
