package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"lovediary/internal/adapters/tui/styles"
	"lovediary/internal/domain"
)

// HelpKeyMap defines key bindings for the help view
type HelpKeyMap struct {
	Close key.Binding
}

var HelpKeys = HelpKeyMap{
	Close: key.NewBinding(
		key.WithKeys("esc", "q", "?"),
		key.WithHelp("esc/q/?", "close"),
	),
}

// HelpModel is the model for the help view
type HelpModel struct {
	ViewState
}

// NewHelpModel creates a new help view model
func NewHelpModel() *HelpModel {
	return &HelpModel{}
}

// Init initializes the help view
func (m *HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the help view
func (m *HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, HelpKeys.Close) {
			return m, func() tea.Msg {
				return SwitchToDashboardMsg{}
			}
		}
	}

	return m, nil
}

// View renders the help view
func (m *HelpModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Love Diary Help"))
	b.WriteString("\n\n")

	b.WriteString(styles.InputLabel.Render("Anywhere"))
	b.WriteString("\n")
	b.WriteString(helpLine("d", "Dashboard"))
	b.WriteString(helpLine("f / tab", "Diary feed"))
	b.WriteString(helpLine("y", "Relationship timeline"))
	b.WriteString(helpLine("w", "Write a new entry"))
	b.WriteString(helpLine("t", "Toggle light / dark"))
	b.WriteString(helpLine("?", "Toggle help"))
	b.WriteString(helpLine("q / Ctrl+C", "Quit"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("Dashboard"))
	b.WriteString("\n")
	b.WriteString(helpLine("c", "Copy the anniversary summary"))
	b.WriteString(helpLine("s", "Follow the system appearance"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("Feed"))
	b.WriteString("\n")
	b.WriteString(helpLine("j / k / ↑ / ↓", "Move up/down"))
	b.WriteString(helpLine("← / →", "Previous / next page"))
	b.WriteString(helpLine("/", "Search"))
	b.WriteString(helpLine("m", "Cycle mood filter"))
	b.WriteString(helpLine("l / space", "Like or unlike"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("Timeline"))
	b.WriteString("\n")
	b.WriteString(helpLine("j / k / ↑ / ↓", "Scroll milestones"))
	b.WriteString(helpLine("esc", "Back to the dashboard"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("Moods"))
	b.WriteString("\n  ")
	for i, mood := range domain.Moods {
		if i > 0 && i%6 == 0 {
			b.WriteString("\n  ")
		}
		b.WriteString(styles.Mood(mood.Type))
		b.WriteString("  ")
	}
	b.WriteString("\n\n")

	b.WriteString(styles.HelpDesc.Render("Press "))
	b.WriteString(styles.HelpKey.Render("esc"))
	b.WriteString(styles.HelpDesc.Render(" or "))
	b.WriteString(styles.HelpKey.Render("?"))
	b.WriteString(styles.HelpDesc.Render(" to close"))

	return styles.App.Render(b.String())
}

func helpLine(key, desc string) string {
	return "  " + styles.HelpKey.Render(padRight(key, 20)) + styles.HelpDesc.Render(desc) + "\n"
}

func padRight(s string, length int) string {
	n := len([]rune(s))
	if n >= length {
		return s
	}
	return s + strings.Repeat(" ", length-n)
}
