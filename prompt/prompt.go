package prompt

import (
	"io"
	"os"
	"sync"

	"github.com/simonhull/firebird-suite/ask/format"
	"github.com/simonhull/firebird-suite/ask/logger"
)

// Attempt runs one attempt of a prompt. It returns accepted=false for a
// rejected line, which the caller may retry, and a non-nil error for a
// terminal failure.
type Attempt[T any] func(t *Terminal, rules format.Rules) (value T, accepted bool, err error)

// Prompt is a pending request for a value of type T. Prompts are values:
// combinators return new prompts and never modify their receiver, and a
// prompt can be run any number of times.
type Prompt[T any] struct {
	start func() Attempt[T]
}

// New builds a prompt from a start function. start is called once per
// run and returns the attempt function for that run, so per-run state
// (was the question shown, how many tries are left) lives in its closure.
func New[T any](start func() Attempt[T]) Prompt[T] {
	return Prompt[T]{start: start}
}

var stdTerminal = sync.OnceValue(func() *Terminal {
	return NewTerminal(os.Stdin, os.Stdout)
})

// Stdio returns the process-wide terminal on standard input and output.
// It is created on first use and shared by Run and every other stdin
// helper, so lines buffered by one prompt stay readable by the next.
func Stdio() *Terminal {
	return stdTerminal()
}

// Run executes the prompt on standard input and output.
func (p Prompt[T]) Run() (T, error) {
	return p.RunOn(Stdio())
}

// RunWith executes the prompt on in and out.
func (p Prompt[T]) RunWith(in io.Reader, out io.Writer, opts ...TerminalOption) (T, error) {
	return p.RunOn(NewTerminal(in, out, opts...))
}

// RunOn executes the prompt on t, retrying rejected lines until a value
// is accepted or a terminal error occurs.
func (p Prompt[T]) RunOn(t *Terminal) (T, error) {
	var zero T
	if p.start == nil {
		return zero, errZeroPrompt
	}

	attempt := p.start()
	rules := format.New()

	for n := 1; ; n++ {
		v, ok, err := attempt(t, rules)
		if err != nil {
			t.log.Debug("prompt failed", logger.F("attempt", n), logger.F("error", err.Error()))
			return zero, err
		}
		if ok {
			t.log.Debug("prompt answered", logger.F("attempts", n))
			return v, nil
		}
		t.log.Debug("prompt attempt rejected", logger.F("attempt", n))
		t.Reject()
	}
}

// Fmt attaches formatting rules. Rules attached closer to the prompt
// take precedence over these.
func (p Prompt[T]) Fmt(rules format.Rules) Prompt[T] {
	return New(func() Attempt[T] {
		inner := p.start()
		return func(t *Terminal, outer format.Rules) (T, bool, error) {
			return inner(t, rules.Merge(outer))
		}
	})
}

// Until rejects accepted values for which pred returns false.
func (p Prompt[T]) Until(pred func(T) bool) Prompt[T] {
	return New(func() Attempt[T] {
		inner := p.start()
		return func(t *Terminal, rules format.Rules) (T, bool, error) {
			v, ok, err := inner(t, rules)
			if err != nil || !ok {
				return v, false, err
			}
			if !pred(v) {
				var zero T
				t.log.Debug("value rejected by predicate")
				return zero, false, nil
			}
			return v, true, nil
		}
	})
}

// MaxTries fails with a *MaxTriesError once limit attempts were rejected.
// The error is returned right after the last rejected line, without a
// further notice or read. A limit below one fails without reading.
func (p Prompt[T]) MaxTries(limit int) Prompt[T] {
	return New(func() Attempt[T] {
		inner := p.start()
		tries := 0
		return func(t *Terminal, rules format.Rules) (T, bool, error) {
			var zero T
			if tries >= limit {
				return zero, false, &MaxTriesError{Attempts: tries}
			}
			tries++

			v, ok, err := inner(t, rules)
			if err != nil || ok {
				return v, ok, err
			}
			if tries >= limit {
				return zero, false, &MaxTriesError{Attempts: tries}
			}
			return zero, false, nil
		}
	})
}
