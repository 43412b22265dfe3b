package input

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	titleStyle    = lipgloss.NewStyle().Bold(true)
)

type menuKeys struct {
	Up     key.Binding
	Down   key.Binding
	Choose key.Binding
	Quit   key.Binding
}

var keys = menuKeys{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Choose: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "select"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c", "q", "esc"),
		key.WithHelp("q", "cancel"),
	),
}

// menuModel is the BubbleTea model for the selection menu
type menuModel struct {
	title    string
	choices  []string
	cursor   int
	selected int
	done     bool
}

func newMenuModel(title string, choices []string) menuModel {
	return menuModel{
		title:    title,
		choices:  choices,
		selected: -1,
	}
}

// Init initializes the menu model
func (m menuModel) Init() tea.Cmd {
	return nil
}

// Update handles keyboard input
func (m menuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(km, keys.Quit):
		m.done = true
		return m, tea.Quit

	case key.Matches(km, keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(km, keys.Down):
		if m.cursor < len(m.choices)-1 {
			m.cursor++
		}

	case key.Matches(km, keys.Choose):
		m.selected = m.cursor
		m.done = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu
func (m menuModel) View() string {
	if m.done {
		if m.selected >= 0 {
			return titleStyle.Render(m.title) + " " + selectedStyle.Render(m.choices[m.selected]) + "\n"
		}
		return ""
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render(m.title) + "\n")
	b.WriteString(mutedStyle.Render(fmt.Sprintf("  [%s/%s] Navigate    [%s] Select    [%s] Cancel",
		keys.Up.Help().Key, keys.Down.Help().Key, keys.Choose.Help().Key, keys.Quit.Help().Key)) + "\n\n")

	for i, choice := range m.choices {
		if m.cursor == i {
			b.WriteString("  " + selectedStyle.Render("> "+choice) + "\n")
		} else {
			b.WriteString("    " + choice + "\n")
		}
	}

	return b.String()
}

// runMenu shows the menu on in/out and returns the chosen index.
func runMenu(in io.Reader, out io.Writer, title string, choices []string) (int, error) {
	p := tea.NewProgram(newMenuModel(title, choices), tea.WithInput(in), tea.WithOutput(out))
	final, err := p.Run()
	if err != nil {
		return 0, fmt.Errorf("failed to show menu: %w", err)
	}

	result := final.(menuModel)
	if result.selected < 0 {
		return 0, ErrCancelled
	}
	return result.selected, nil
}
