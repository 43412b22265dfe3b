// Package prompt builds interactive terminal prompts out of small,
// composable pieces.
//
// # Overview
//
// A Prompt[T] is a pending request for one value of type T. Building a
// prompt does no I/O; Run (or RunWith / RunOn) drives the
// read-validate-retry loop and returns the value or an error.
//
//	age, err := prompt.Int[uint8]("Your age").
//		Until(func(a uint8) bool { return a > 3 && a < 120 }).
//		MaxTries(3).
//		Run()
//
// # Building blocks
//
//   - Written / Text / Int / Uint / Float / Bool: one typed line
//   - Separated / Fields / Fields2: one line split on a separator
//   - Select: a numbered list, answered by index or label
//   - Password: a hidden line
//
// # Combinators
//
// Type-preserving combinators are methods:
//
//   - Fmt attaches formatting rules; the rules closest to a prompt win
//   - Until rejects accepted values that fail a predicate
//   - MaxTries bounds the number of attempts
//
// Type-changing combinators are functions, since Go methods cannot
// introduce type parameters:
//
//   - Map / MapResult transform the outcome
//   - Then runs two prompts in sequence and pairs their values
//
// # Chaining
//
// Then runs its first prompt until it accepts a line, then its second.
// A rejected line in the first prompt counts as one failed attempt of
// the whole chain, so MaxTries on a chain bounds restarts of the chain:
//
//	creds, err := prompt.Then(
//		prompt.Text("Username"),
//		prompt.Password("Password"),
//	).Run()
//
// Terminal failures (end of input, an inner MaxTries running out, I/O
// errors) stop the chain immediately.
//
// # Errors
//
// Rejected lines never surface as errors; they only trigger a retry and
// the invalid-input notice. Run returns:
//
//   - *MaxTriesError (matches ErrMaxTries) when the retry budget is spent
//   - ErrEndOfInput when input closes before a value is accepted
//   - a wrapped I/O error otherwise
package prompt
