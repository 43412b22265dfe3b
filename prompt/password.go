package prompt

import "github.com/simonhull/firebird-suite/ask/format"

// Password asks msg and reads the answer without echo when the terminal
// allows it. Empty answers are rejected.
func Password(msg string) Prompt[string] {
	return New(func() Attempt[string] {
		q := &question{msg: msg}
		return func(t *Terminal, rules format.Rules) (string, bool, error) {
			line, err := q.ask(t, rules.Expand(), t.ReadHidden)
			if err != nil {
				return "", false, err
			}
			if line == "" {
				return "", false, nil
			}
			return line, true, nil
		}
	})
}
