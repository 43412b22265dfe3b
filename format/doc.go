// Package format holds the display rules applied when a prompt is
// rendered to the terminal.
//
// # Overview
//
// Rules are built with a small fluent API. Every rule is optional; a
// rule that is not set falls back to the process-wide default, which
// itself falls back to the built-in defaults:
//
//	rules := format.New().
//		MsgPrefix("-> ").
//		InputPrefix(": ").
//		BreakLine(false)
//
// # Precedence
//
// When rules are stacked (a prompt formatted twice, or a chain formatted
// as a whole and one of its members individually) the rules attached
// closest to the prompt win. Merge implements that: the receiver keeps
// every rule it sets and only inherits the ones it leaves unset.
//
// # Defaults
//
// SetDefault replaces the process-wide default. It is meant to be called
// once at startup, before any prompt runs:
//
//	format.SetDefault(format.New().MsgPrefix("? "))
package format
