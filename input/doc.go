// Package input provides ready-made interactive questions for CLI tools,
// built on the prompt package.
//
// # Usage
//
//	import "github.com/simonhull/firebird-suite/ask/input"
//
//	// Ask for text input with a default
//	modulePath := input.Prompt("Module path", "github.com/username/myapp")
//
//	// Ask yes/no question
//	if input.Confirm("Continue?", true) {
//	    // User said yes
//	}
//
//	// Pick one entry; arrow keys on a terminal, numbered list otherwise
//	i, err := input.Select("License", []string{"MIT", "Apache-2.0", "GPL-3.0"})
//
// The package-level functions read stdin and write stdout. Use a Session
// to run against other streams.
//
// # Styling
//
// Questions are rendered with lipgloss:
//   - Questions are displayed in cyan and bold
//   - Hints (defaults, [Y/n]) are displayed in gray
//
// # Non-Interactive Mode
//
// Select only opens the arrow-key menu when both streams are terminals.
// Piped input gets the numbered list of prompt.Select, answered by index
// or label, so scripts can drive every question.
package input
