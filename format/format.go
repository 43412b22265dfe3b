package format

import "sync"

// Position places the title of a selection relative to its option list.
type Position int

const (
	// Bottom prints the title after the options, right above the input.
	Bottom Position = iota
	// Top prints the title before the options.
	Top
)

// String returns the lowercase name of the position
func (p Position) String() string {
	switch p {
	case Top:
		return "top"
	case Bottom:
		return "bottom"
	default:
		return "unknown"
	}
}

// ParsePosition converts "top" or "bottom" to a Position.
func ParsePosition(s string) (Position, bool) {
	switch s {
	case "top":
		return Top, true
	case "bottom":
		return Bottom, true
	default:
		return Bottom, false
	}
}

// Rules is a set of optional display rules. The zero value sets nothing.
type Rules struct {
	msgPrefix    *string
	inputPrefix  *string
	breakLine    *bool
	repeatPrompt *bool
	surrounds    *[2]string
	listMsgPos   *Position
	invalidMsg   *string
}

// New returns an empty rule set.
func New() Rules {
	return Rules{}
}

// MsgPrefix sets the text printed right before the question.
func (r Rules) MsgPrefix(prefix string) Rules {
	r.msgPrefix = &prefix
	return r
}

// InputPrefix sets the text printed right before the user types.
func (r Rules) InputPrefix(prefix string) Rules {
	r.inputPrefix = &prefix
	return r
}

// BreakLine controls whether the question is followed by a newline.
func (r Rules) BreakLine(v bool) Rules {
	r.breakLine = &v
	return r
}

// RepeatPrompt controls whether the question is printed again on every
// attempt instead of only the first one.
func (r Rules) RepeatPrompt(v bool) Rules {
	r.repeatPrompt = &v
	return r
}

// ListSurrounds sets the text around each option index of a selection.
// With ("[", "] - ") an option renders as "[1] - label".
func (r Rules) ListSurrounds(open, closing string) Rules {
	r.surrounds = &[2]string{open, closing}
	return r
}

// ListMsgPos sets where the title of a selection is printed.
func (r Rules) ListMsgPos(pos Position) Rules {
	r.listMsgPos = &pos
	return r
}

// InvalidMsg sets the notice printed after a rejected answer when more
// attempts remain. An empty message disables the notice.
func (r Rules) InvalidMsg(msg string) Rules {
	r.invalidMsg = &msg
	return r
}

// Merge returns the rules set in r, completed by the ones set in outer.
func (r Rules) Merge(outer Rules) Rules {
	if r.msgPrefix == nil {
		r.msgPrefix = outer.msgPrefix
	}
	if r.inputPrefix == nil {
		r.inputPrefix = outer.inputPrefix
	}
	if r.breakLine == nil {
		r.breakLine = outer.breakLine
	}
	if r.repeatPrompt == nil {
		r.repeatPrompt = outer.repeatPrompt
	}
	if r.surrounds == nil {
		r.surrounds = outer.surrounds
	}
	if r.listMsgPos == nil {
		r.listMsgPos = outer.listMsgPos
	}
	if r.invalidMsg == nil {
		r.invalidMsg = outer.invalidMsg
	}
	return r
}

// Expand resolves every unset rule against the process-wide default.
func (r Rules) Expand() Expanded {
	return r.Merge(Default()).ExpandWith(Builtin)
}

// ExpandWith resolves every unset rule against base.
func (r Rules) ExpandWith(base Expanded) Expanded {
	e := base
	if r.msgPrefix != nil {
		e.MsgPrefix = *r.msgPrefix
	}
	if r.inputPrefix != nil {
		e.InputPrefix = *r.inputPrefix
	}
	if r.breakLine != nil {
		e.BreakLine = *r.breakLine
	}
	if r.repeatPrompt != nil {
		e.RepeatPrompt = *r.repeatPrompt
	}
	if r.surrounds != nil {
		e.ListOpen, e.ListClose = r.surrounds[0], r.surrounds[1]
	}
	if r.listMsgPos != nil {
		e.ListMsgPos = *r.listMsgPos
	}
	if r.invalidMsg != nil {
		e.InvalidMsg = *r.invalidMsg
	}
	return e
}

// Expanded is a fully resolved rule set, ready for rendering.
type Expanded struct {
	MsgPrefix    string
	InputPrefix  string
	BreakLine    bool
	RepeatPrompt bool
	ListOpen     string
	ListClose    string
	ListMsgPos   Position
	InvalidMsg   string
}

// Builtin holds the values used when a rule is set nowhere.
var Builtin = Expanded{
	MsgPrefix:    "- ",
	InputPrefix:  "> ",
	BreakLine:    true,
	RepeatPrompt: false,
	ListOpen:     "[",
	ListClose:    "] - ",
	ListMsgPos:   Bottom,
	InvalidMsg:   "Invalid input, please try again.",
}

var (
	defaultMu    sync.RWMutex
	defaultRules Rules
)

// SetDefault replaces the process-wide default rules.
func SetDefault(r Rules) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultRules = r
}

// Default returns the process-wide default rules
func Default() Rules {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultRules
}

// Reset restores the built-in defaults.
func Reset() {
	SetDefault(Rules{})
}
