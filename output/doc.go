// Package output provides styled terminal output for ask.
//
// # Usage
//
//	output.Success("Wrote ask.yml")
//	output.Info("Next steps:")
//	output.Step("ask text \"Your name\"")
//	output.Error("config: unknown list position")
//
// Messages go to stdout by default. The ask CLI redirects them to stderr
// with SetOutput so stdout carries nothing but the answer.
//
// # Verbose Mode
//
//	output.SetVerbose(true)
//	output.Verbose("Loaded config from ask.yml")
//
// # Notices
//
// Notice renders a warning line to an arbitrary writer. The prompt
// engine uses it for the invalid-input indicator, so the style follows
// the writer it is printed to rather than stdout.
//
// # Styling
//
//   - Success: ✔ green bold
//   - Error: ✘ red bold
//   - Info: cyan
//   - Step: indented gray
//   - Notice: yellow
//   - Verbose: gray, prefixed with "·" (when enabled)
package output
