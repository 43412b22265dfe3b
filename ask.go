// Package ask is the root of the ask module.
//
// The prompt engine lives in the prompt package, formatting rules in
// format, and terminal conveniences in input. The ask CLI is built from
// cmd/ask.
package ask

// Version is the current release of the ask module and CLI.
const Version = "0.3.0"
