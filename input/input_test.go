package input

import (
	"bytes"
	"os"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simonhull/firebird-suite/ask/prompt"
)

func session(input string) (*Session, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return NewSession(strings.NewReader(input), out), out
}

func TestSession_Prompt(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		defaultValue string
		want         string
	}{
		{"typed value", "myapp\n", "default", "myapp"},
		{"empty takes default", "\n", "default", "default"},
		{"trimmed", "  spaced  \n", "", "spaced"},
		{"empty without default retried", "\nvalue\n", "", "value"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := session(tt.input)
			got, err := s.Prompt("Module path", tt.defaultValue)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSession_PromptRendering(t *testing.T) {
	s, out := session("x\n")

	_, err := s.Prompt("Module path", "github.com/username/myapp")

	require.NoError(t, err)
	assert.Contains(t, out.String(), "Module path")
	assert.Contains(t, out.String(), "(github.com/username/myapp)")
	assert.True(t, strings.HasSuffix(out.String(), ": "))
}

func TestSession_Confirm(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		defaultYes bool
		want       bool
	}{
		{"yes", "y\n", false, true},
		{"no", "no\n", true, false},
		{"enter default yes", "\n", true, true},
		{"enter default no", "\n", false, false},
		{"garbage retried", "what\nYES\n", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := session(tt.input)
			got, err := s.Confirm("Continue?", tt.defaultYes)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSession_ConfirmHint(t *testing.T) {
	s, out := session("\n")
	_, err := s.Confirm("Continue?", true)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "[Y/n]")

	s, out = session("\n")
	_, err = s.Confirm("Continue?", false)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "[y/N]")
}

func TestSession_Password(t *testing.T) {
	s, _ := session("hunter2\n")

	got, err := s.Password("Password")

	require.NoError(t, err)
	assert.Equal(t, "hunter2", got)
}

func TestSession_SelectFallsBackToNumberedList(t *testing.T) {
	s, out := session("apache-2.0\n")

	i, err := s.Select("License", []string{"MIT", "Apache-2.0", "GPL-3.0"})

	require.NoError(t, err)
	assert.Equal(t, 1, i)
	assert.Contains(t, out.String(), "[2] - Apache-2.0")
}

func TestSession_SelectNoOptions(t *testing.T) {
	s, _ := session("1\n")

	_, err := s.Select("License", nil)

	assert.Error(t, err)
}

func TestSession_SharedTerminal(t *testing.T) {
	s, _ := session("ada\n2\n")

	name, err := s.Prompt("Name", "")
	require.NoError(t, err)

	n, err := prompt.Int[int]("Number").RunOn(s.Terminal())
	require.NoError(t, err)

	assert.Equal(t, "ada", name)
	assert.Equal(t, 2, n)
}

func TestSession_EndOfInput(t *testing.T) {
	s, _ := session("")

	_, err := s.Prompt("Name", "")

	assert.ErrorIs(t, err, prompt.ErrEndOfInput)
}

func keyMsg(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMenuModel_Navigation(t *testing.T) {
	var m tea.Model = newMenuModel("License", []string{"MIT", "Apache-2.0", "GPL-3.0"})

	m, _ = m.Update(keyMsg(tea.KeyUp))
	assert.Equal(t, 0, m.(menuModel).cursor, "cursor stays at the top")

	m, _ = m.Update(keyMsg(tea.KeyDown))
	m, _ = m.Update(runes("j"))
	m, _ = m.Update(runes("j"))
	assert.Equal(t, 2, m.(menuModel).cursor, "cursor stops at the bottom")

	m, _ = m.Update(runes("k"))
	assert.Equal(t, 1, m.(menuModel).cursor)

	m, cmd := m.Update(keyMsg(tea.KeyEnter))
	require.NotNil(t, cmd)
	assert.Equal(t, 1, m.(menuModel).selected)
	assert.Contains(t, m.View(), "Apache-2.0")
}

func TestMenuModel_Cancel(t *testing.T) {
	for _, msg := range []tea.KeyMsg{runes("q"), keyMsg(tea.KeyEsc), keyMsg(tea.KeyCtrlC)} {
		t.Run(msg.String(), func(t *testing.T) {
			var m tea.Model = newMenuModel("License", []string{"MIT"})

			m, cmd := m.Update(msg)

			require.NotNil(t, cmd)
			assert.Equal(t, -1, m.(menuModel).selected)
			assert.Empty(t, m.View())
		})
	}
}

func TestMenuModel_View(t *testing.T) {
	m := newMenuModel("License", []string{"MIT", "GPL-3.0"})

	view := m.View()

	assert.Contains(t, view, "License")
	assert.Contains(t, view, "> MIT")
	assert.Contains(t, view, "    GPL-3.0")
}

// pipeStdio replaces stdin with a pipe holding input and discards stdout.
// The stdin session is created once per process, so only one test may
// use it.
func pipeStdio(t *testing.T, input string) {
	t.Helper()
	r, w, err := os.Pipe()
	require.NoError(t, err)
	_, err = w.WriteString(input)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	null, err := os.OpenFile(os.DevNull, os.O_WRONLY, 0)
	require.NoError(t, err)

	stdin, stdout := os.Stdin, os.Stdout
	os.Stdin, os.Stdout = r, null
	t.Cleanup(func() {
		os.Stdin, os.Stdout = stdin, stdout
		r.Close()
		null.Close()
	})
}

func TestStdinHelpers_ShareTerminalWithRun(t *testing.T) {
	pipeStdio(t, "Ann\nBob\ny\n2\n")

	assert.Equal(t, "Ann", Prompt("Name", ""))

	other, err := prompt.Text("Other").Run()
	require.NoError(t, err)
	assert.Equal(t, "Bob", other)

	assert.True(t, Confirm("Continue?", false))

	i, err := Select("License", []string{"MIT", "GPL"})
	require.NoError(t, err)
	assert.Equal(t, 1, i)

	// input is exhausted: the helpers fall back to their defaults
	assert.Equal(t, "fallback", Prompt("Name", "fallback"))
}
