package prompt

import (
	"errors"
	"fmt"
)

var (
	// ErrMaxTries is matched by every *MaxTriesError.
	ErrMaxTries = errors.New("max tries exceeded")

	// ErrEndOfInput is returned when input closes before a value is
	// accepted.
	ErrEndOfInput = errors.New("end of input")

	// ErrEmptyInput is returned by the built-in parsers for blank lines.
	ErrEmptyInput = errors.New("empty input")

	errZeroPrompt = errors.New("prompt: zero Prompt value, build one with a constructor")
)

// MaxTriesError reports that a prompt ran out of attempts.
type MaxTriesError struct {
	// Attempts is the number of lines consumed before giving up.
	Attempts int
}

func (e *MaxTriesError) Error() string {
	return fmt.Sprintf("%s after %d attempts", ErrMaxTries, e.Attempts)
}

// Is makes errors.Is(err, ErrMaxTries) hold.
func (e *MaxTriesError) Is(target error) bool {
	return target == ErrMaxTries
}
