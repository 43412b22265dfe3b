package prompt

import "github.com/simonhull/firebird-suite/ask/format"

// Pair holds the values of two chained prompts.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Map transforms the accepted value of p. It consumes exactly the lines
// p consumes.
func Map[T, U any](p Prompt[T], f func(T) U) Prompt[U] {
	return New(func() Attempt[U] {
		inner := p.start()
		return func(t *Terminal, rules format.Rules) (U, bool, error) {
			var zero U
			v, ok, err := inner(t, rules)
			if err != nil || !ok {
				return zero, false, err
			}
			return f(v), true, nil
		}
	})
}

// MapResult transforms the final outcome of p, success or failure. f
// receives the accepted value with a nil error, or the zero value with
// the terminal error. Returning a nil error accepts the mapped value, so
// MapResult can also recover from a failure. Rejected lines are not
// outcomes and never reach f.
func MapResult[T, U any](p Prompt[T], f func(T, error) (U, error)) Prompt[U] {
	return New(func() Attempt[U] {
		inner := p.start()
		return func(t *Terminal, rules format.Rules) (U, bool, error) {
			v, ok, err := inner(t, rules)
			if err == nil && !ok {
				var zero U
				return zero, false, nil
			}
			u, err := f(v, err)
			if err != nil {
				return u, false, err
			}
			return u, true, nil
		}
	})
}

// Then runs a, then b, and pairs their values.
//
// A line rejected by a fails the whole attempt, so the chain starts over
// at a. Once a accepts, b is retried on its own until it accepts. A
// terminal error from either prompt ends the chain; b never runs after a
// failed.
func Then[A, B any](a Prompt[A], b Prompt[B]) Prompt[Pair[A, B]] {
	return New(func() Attempt[Pair[A, B]] {
		first, second := a.start(), b.start()
		return func(t *Terminal, rules format.Rules) (Pair[A, B], bool, error) {
			va, ok, err := first(t, rules)
			if err != nil || !ok {
				return Pair[A, B]{}, false, err
			}

			for {
				vb, ok, err := second(t, rules)
				if err != nil {
					return Pair[A, B]{}, false, err
				}
				if ok {
					return Pair[A, B]{First: va, Second: vb}, true, nil
				}
				t.Reject()
			}
		}
	})
}
