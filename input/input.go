package input

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/simonhull/firebird-suite/ask/format"
	"github.com/simonhull/firebird-suite/ask/prompt"
)

// ErrCancelled is returned when the user leaves the selection menu
// without choosing.
var ErrCancelled = errors.New("selection cancelled")

// Session asks questions over one pair of streams.
type Session struct {
	in          io.Reader
	out         io.Writer
	term        *prompt.Terminal
	interactive bool

	promptStyle lipgloss.Style
	hintStyle   lipgloss.Style
}

// NewSession creates a session reading in and writing out.
func NewSession(in io.Reader, out io.Writer, opts ...prompt.TerminalOption) *Session {
	return newSession(in, out, prompt.NewTerminal(in, out, opts...))
}

// newSession wraps an existing terminal reading in and writing out.
func newSession(in io.Reader, out io.Writer, t *prompt.Terminal) *Session {
	r := lipgloss.NewRenderer(out)
	return &Session{
		in:          in,
		out:         out,
		term:        t,
		interactive: isTerminal(in) && isTerminal(out),
		promptStyle: r.NewStyle().Foreground(lipgloss.Color("6")).Bold(true),
		hintStyle:   r.NewStyle().Foreground(lipgloss.Color("240")),
	}
}

func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Terminal returns the prompt terminal of the session, for running
// custom prompts on the same streams.
func (s *Session) Terminal() *prompt.Terminal {
	return s.term
}

// inline keeps question and answer on one line, the way these helpers
// have always looked: "Question (hint): answer".
var inline = format.New().
	MsgPrefix("").
	BreakLine(false).
	InputPrefix(": ").
	RepeatPrompt(true)

func (s *Session) label(message, hint string) string {
	if hint == "" {
		return s.promptStyle.Render(message)
	}
	return s.promptStyle.Render(message) + " " + s.hintStyle.Render(hint)
}

// Prompt asks for text input with an optional default value.
// If the user presses Enter without typing anything, the default is
// returned; with no default an empty answer is asked again.
//
// Example:
//
//	modulePath, err := s.Prompt("Module path", "github.com/username/myapp")
//	// Displays: Module path (github.com/username/myapp): _
func (s *Session) Prompt(message, defaultValue string) (string, error) {
	hint := ""
	if defaultValue != "" {
		hint = fmt.Sprintf("(%s)", defaultValue)
	}

	p := prompt.Written(s.label(message, hint), func(v string) (string, error) {
		if v == "" {
			return prompt.ParseString(defaultValue)
		}
		return v, nil
	})
	return p.Fmt(inline).RunOn(s.term)
}

// Confirm asks a yes/no question. Pressing Enter picks the default.
//
// Example:
//
//	ok, err := s.Confirm("Run go mod tidy?", true)
//	// Displays: Run go mod tidy? [Y/n]: _
func (s *Session) Confirm(message string, defaultYes bool) (bool, error) {
	hint := "[y/N]"
	if defaultYes {
		hint = "[Y/n]"
	}

	p := prompt.Written(s.label(message, hint), func(v string) (bool, error) {
		if v == "" {
			return defaultYes, nil
		}
		return prompt.ParseBool(v)
	})
	return p.Fmt(inline).RunOn(s.term)
}

// Password asks for a secret without echoing it when stdin is a
// terminal.
func (s *Session) Password(message string) (string, error) {
	return prompt.Password(s.label(message, "")).Fmt(inline).RunOn(s.term)
}

// Select asks the user to pick one of labels and returns its index.
func (s *Session) Select(title string, labels []string) (int, error) {
	if len(labels) == 0 {
		return 0, errors.New("select: no options")
	}
	if s.interactive {
		return runMenu(s.in, s.out, title, labels)
	}

	options := make([]prompt.Option[int], len(labels))
	for i, l := range labels {
		options[i] = prompt.Opt(l, i)
	}
	return prompt.Select(title, options).RunOn(s.term)
}

// stdSession shares prompt.Stdio, so these helpers and Prompt.Run can
// be mixed on piped input.
var stdSession = sync.OnceValue(func() *Session {
	return newSession(os.Stdin, os.Stdout, prompt.Stdio())
})

// Prompt asks for text input on stdin. On read failure the default is
// returned.
//
// Example:
//
//	modulePath := input.Prompt("Module path", "github.com/username/myapp")
func Prompt(message, defaultValue string) string {
	v, err := stdSession().Prompt(message, defaultValue)
	if err != nil {
		return defaultValue
	}
	return v
}

// Confirm asks a yes/no question on stdin. On read failure the default
// is returned.
//
// Example:
//
//	if input.Confirm("Run go mod tidy?", true) {
//	    // User said yes (or pressed Enter)
//	}
func Confirm(message string, defaultYes bool) bool {
	v, err := stdSession().Confirm(message, defaultYes)
	if err != nil {
		return defaultYes
	}
	return v
}

// Password asks for a secret on stdin.
func Password(message string) (string, error) {
	return stdSession().Password(message)
}

// Select asks the user to pick one of labels on stdin.
func Select(title string, labels []string) (int, error) {
	return stdSession().Select(title, labels)
}
