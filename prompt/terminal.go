package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/simonhull/firebird-suite/ask/format"
	"github.com/simonhull/firebird-suite/ask/logger"
	"github.com/simonhull/firebird-suite/ask/output"
)

// Terminal is the I/O a prompt runs against: a line reader, a writer,
// a hidden-line reader for passwords and a logger.
//
// Prompts run on one Terminal share its read buffer, so run every prompt
// of a session on the same Terminal when input is piped.
type Terminal struct {
	in     *bufio.Reader
	out    io.Writer
	hidden func() (string, error)
	log    logger.Logger

	// rejected is set after a rejected attempt; the next prompt to
	// render prints the invalid-input notice first.
	rejected bool
}

// TerminalOption configures a Terminal
type TerminalOption func(*Terminal)

// WithLogger sets the logger used for attempt tracing.
func WithLogger(l logger.Logger) TerminalOption {
	return func(t *Terminal) {
		if l != nil {
			t.log = l
		}
	}
}

// WithHiddenReader replaces the primitive used to read passwords.
func WithHiddenReader(read func() (string, error)) TerminalOption {
	return func(t *Terminal) {
		if read != nil {
			t.hidden = read
		}
	}
}

// NewTerminal wraps in and out. When in is a TTY, hidden lines are read
// without echo; otherwise they are read like any other line.
func NewTerminal(in io.Reader, out io.Writer, opts ...TerminalOption) *Terminal {
	br, ok := in.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(in)
	}
	if out == nil {
		out = io.Discard
	}

	t := &Terminal{
		in:  br,
		out: out,
		log: logger.Default(),
	}
	t.hidden = t.ReadLine

	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fd := int(f.Fd())
		t.hidden = func() (string, error) {
			b, err := term.ReadPassword(fd)
			// The newline typed by the user is not echoed either.
			fmt.Fprintln(t.out)
			if err != nil {
				if errors.Is(err, io.EOF) {
					return "", ErrEndOfInput
				}
				return "", fmt.Errorf("reading hidden input: %w", err)
			}
			return string(b), nil
		}
	}

	for _, opt := range opts {
		opt(t)
	}
	return t
}

// ReadLine reads one line, newline included. A last line without a
// trailing newline is returned as is; no line at all is ErrEndOfInput.
func (t *Terminal) ReadLine() (string, error) {
	line, err := t.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			if line == "" {
				return "", ErrEndOfInput
			}
			return line, nil
		}
		return "", fmt.Errorf("reading input: %w", err)
	}
	return line, nil
}

// ReadHidden reads one line without echoing it when possible.
func (t *Terminal) ReadHidden() (string, error) {
	return t.hidden()
}

// Print writes s to the terminal output.
func (t *Terminal) Print(s string) error {
	if _, err := io.WriteString(t.out, s); err != nil {
		return fmt.Errorf("writing prompt: %w", err)
	}
	return nil
}

// Logger returns the logger attached to the terminal.
func (t *Terminal) Logger() logger.Logger {
	return t.log
}

// Reject records that the last attempt was rejected.
func (t *Terminal) Reject() {
	t.rejected = true
}

// Begin must be called by a prompt before it renders an attempt. It
// prints the invalid-input notice owed by a previous rejection.
func (t *Terminal) Begin(e format.Expanded) error {
	if !t.rejected {
		return nil
	}
	t.rejected = false
	if e.InvalidMsg == "" {
		return nil
	}
	if err := output.Notice(t.out, e.InvalidMsg); err != nil {
		return fmt.Errorf("writing prompt: %w", err)
	}
	return nil
}

// question renders the message of a single-line prompt and reads the
// answer. The message is printed once unless RepeatPrompt is set.
type question struct {
	msg   string
	shown bool
}

func (q *question) ask(t *Terminal, e format.Expanded, read func() (string, error)) (string, error) {
	if err := t.Begin(e); err != nil {
		return "", err
	}

	if e.RepeatPrompt || !q.shown {
		q.shown = true
		msg := e.MsgPrefix + q.msg
		if e.BreakLine {
			msg += "\n"
		}
		if err := t.Print(msg); err != nil {
			return "", err
		}
	}

	if err := t.Print(e.InputPrefix); err != nil {
		return "", err
	}

	line, err := read()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
