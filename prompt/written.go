package prompt

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/simonhull/firebird-suite/ask/format"
	"github.com/simonhull/firebird-suite/ask/logger"
)

// Signed is the set of signed integer types Int accepts.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned is the set of unsigned integer types Uint accepts.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Floating is the set of floating-point types Float accepts.
type Floating interface {
	~float32 | ~float64
}

// Written asks msg and parses the trimmed line with parse. A parse error
// rejects the line.
func Written[T any](msg string, parse func(string) (T, error)) Prompt[T] {
	return New(func() Attempt[T] {
		q := &question{msg: msg}
		return func(t *Terminal, rules format.Rules) (T, bool, error) {
			var zero T
			line, err := q.ask(t, rules.Expand(), t.ReadLine)
			if err != nil {
				return zero, false, err
			}
			v, err := parse(line)
			if err != nil {
				t.log.Debug("input rejected", logger.F("prompt", msg), logger.F("reason", err.Error()))
				return zero, false, nil
			}
			return v, true, nil
		}
	})
}

// Text asks for any non-empty line.
func Text(msg string) Prompt[string] {
	return Written(msg, ParseString)
}

// Int asks for a signed integer that fits in T.
func Int[T Signed](msg string) Prompt[T] {
	return Written(msg, ParseInt[T])
}

// Uint asks for an unsigned integer that fits in T.
func Uint[T Unsigned](msg string) Prompt[T] {
	return Written(msg, ParseUint[T])
}

// Float asks for a floating-point number that fits in T.
func Float[T Floating](msg string) Prompt[T] {
	return Written(msg, ParseFloat[T])
}

// Bool asks a yes/no question. See ParseBool for the accepted words.
func Bool(msg string) Prompt[bool] {
	return Written(msg, ParseBool)
}

// Separated asks for one line of values separated by sep. Every part is
// trimmed and parsed with parse; one bad part rejects the line.
func Separated[T any](msg, sep string, parse func(string) (T, error)) Prompt[[]T] {
	return Written(msg, func(line string) ([]T, error) {
		if line == "" {
			return nil, ErrEmptyInput
		}
		parts := strings.Split(line, sep)
		out := make([]T, 0, len(parts))
		for i, part := range parts {
			v, err := parse(strings.TrimSpace(part))
			if err != nil {
				return nil, fmt.Errorf("part %d: %w", i+1, err)
			}
			out = append(out, v)
		}
		return out, nil
	})
}

// Fields asks for exactly n values separated by sep and returns them
// trimmed.
func Fields(msg, sep string, n int) Prompt[[]string] {
	return Written(msg, func(line string) ([]string, error) {
		return splitN(line, sep, n)
	})
}

// Fields2 asks for two values separated by sep, parsed with pa and pb.
//
//	nameAge := prompt.Fields2("Name, age", ",", prompt.ParseString, prompt.ParseInt[int])
func Fields2[A, B any](msg, sep string, pa func(string) (A, error), pb func(string) (B, error)) Prompt[Pair[A, B]] {
	return Written(msg, func(line string) (Pair[A, B], error) {
		parts, err := splitN(line, sep, 2)
		if err != nil {
			return Pair[A, B]{}, err
		}
		a, err := pa(parts[0])
		if err != nil {
			return Pair[A, B]{}, fmt.Errorf("part 1: %w", err)
		}
		b, err := pb(parts[1])
		if err != nil {
			return Pair[A, B]{}, fmt.Errorf("part 2: %w", err)
		}
		return Pair[A, B]{First: a, Second: b}, nil
	})
}

func splitN(line, sep string, n int) ([]string, error) {
	if line == "" {
		return nil, ErrEmptyInput
	}
	parts := strings.Split(line, sep)
	if len(parts) != n {
		return nil, fmt.Errorf("expected %d values, got %d", n, len(parts))
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts, nil
}

// ParseString accepts any non-empty string.
func ParseString(s string) (string, error) {
	if s == "" {
		return "", ErrEmptyInput
	}
	return s, nil
}

// ParseInt parses a base-10 integer and checks that it fits in T.
func ParseInt[T Signed](s string) (T, error) {
	if s == "" {
		return 0, ErrEmptyInput
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, err
	}
	v := T(n)
	if int64(v) != n {
		return 0, fmt.Errorf("%d is out of range", n)
	}
	return v, nil
}

// ParseUint parses a base-10 unsigned integer and checks that it fits
// in T.
func ParseUint[T Unsigned](s string) (T, error) {
	if s == "" {
		return 0, ErrEmptyInput
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, err
	}
	v := T(n)
	if uint64(v) != n {
		return 0, fmt.Errorf("%d is out of range", n)
	}
	return v, nil
}

// ParseFloat parses a floating-point number and checks that it fits
// in T.
func ParseFloat[T Floating](s string) (T, error) {
	if s == "" {
		return 0, ErrEmptyInput
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	v := T(f)
	if math.IsInf(float64(v), 0) && !math.IsInf(f, 0) {
		return 0, fmt.Errorf("%s is out of range", s)
	}
	return v, nil
}

var (
	trueWords  = []string{"y", "ye", "yes", "yep", "true"}
	falseWords = []string{"n", "no", "nop", "nope", "nopp", "nah", "false"}
)

// ParseBool accepts y, ye, yes, yep, true and n, no, nop, nope, nopp, nah,
// false, in any case.
func ParseBool(s string) (bool, error) {
	s = strings.ToLower(s)
	for _, w := range trueWords {
		if s == w {
			return true, nil
		}
	}
	for _, w := range falseWords {
		if s == w {
			return false, nil
		}
	}
	if s == "" {
		return false, ErrEmptyInput
	}
	return false, fmt.Errorf("%q is not a yes/no answer", s)
}
