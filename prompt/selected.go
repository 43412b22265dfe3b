package prompt

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/simonhull/firebird-suite/ask/format"
	"github.com/simonhull/firebird-suite/ask/logger"
)

// Option is one labelled choice of a Select prompt.
type Option[T any] struct {
	Label string
	Value T
}

// Opt is shorthand for Option[T]{Label: label, Value: value}.
func Opt[T any](label string, value T) Option[T] {
	return Option[T]{Label: label, Value: value}
}

// Labels builds string options whose value is their label.
func Labels(labels ...string) []Option[string] {
	out := make([]Option[string], len(labels))
	for i, l := range labels {
		out[i] = Opt(l, l)
	}
	return out
}

// Select lists options and returns the value of the one picked. The
// user answers with a 1-based index or a label (case-insensitive); any
// other answer is rejected.
//
// The list is printed once. The title follows the ListMsgPos and
// RepeatPrompt rules.
func Select[T any](title string, options []Option[T]) Prompt[T] {
	opts := append([]Option[T](nil), options...)

	return New(func() Attempt[T] {
		s := &selection[T]{title: title, options: opts, first: true}
		return s.attempt
	})
}

type selection[T any] struct {
	title      string
	options    []Option[T]
	first      bool
	titleShown bool
	listShown  bool
}

func (s *selection[T]) attempt(t *Terminal, rules format.Rules) (T, bool, error) {
	var zero T
	e := rules.Expand()

	if err := t.Begin(e); err != nil {
		return zero, false, err
	}
	if err := t.Print(s.render(e)); err != nil {
		return zero, false, err
	}

	line, err := t.ReadLine()
	if err != nil {
		return zero, false, err
	}

	i, ok := s.match(strings.TrimSpace(line))
	if !ok {
		t.log.Debug("selection rejected", logger.F("prompt", s.title), logger.F("options", len(s.options)))
		return zero, false, nil
	}
	return s.options[i].Value, true, nil
}

// render returns everything printed before the user types for this
// attempt and advances the display state.
func (s *selection[T]) render(e format.Expanded) string {
	var b strings.Builder

	if e.ListMsgPos == format.Top && s.first && s.takeTitle(e) {
		b.WriteString(e.MsgPrefix + s.title + "\n")
	}

	if !s.listShown {
		s.listShown = true
		for i, o := range s.options {
			fmt.Fprintf(&b, "%s%d%s%s\n", e.ListOpen, i+1, e.ListClose, o.Label)
		}
	}

	if (e.ListMsgPos == format.Bottom || !s.first && e.RepeatPrompt) && s.takeTitle(e) {
		b.WriteString(e.MsgPrefix + s.title)
		if e.BreakLine {
			b.WriteString("\n")
		}
	}

	s.first = false
	b.WriteString(e.InputPrefix)
	return b.String()
}

// takeTitle reports whether the title should be printed now.
func (s *selection[T]) takeTitle(e format.Expanded) bool {
	if e.RepeatPrompt {
		return true
	}
	if s.titleShown {
		return false
	}
	s.titleShown = true
	return true
}

func (s *selection[T]) match(input string) (int, bool) {
	if input == "" {
		return 0, false
	}
	if n, err := strconv.Atoi(input); err == nil && n >= 1 && n <= len(s.options) {
		return n - 1, true
	}
	for i, o := range s.options {
		if strings.EqualFold(o.Label, input) {
			return i, true
		}
	}
	return 0, false
}
