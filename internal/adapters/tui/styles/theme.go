// Package styles derives the lipgloss styles of the TUI from the active
// design token bundle.
package styles

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"lovediary/internal/domain"
)

var (
	// Colors
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Muted     lipgloss.Color
	Warning   lipgloss.Color
	Error     lipgloss.Color
	Heart     lipgloss.Color
	Surface   lipgloss.Color
	Text      lipgloss.Color
	Inverse   lipgloss.Color

	// Base styles
	App      lipgloss.Style
	Title    lipgloss.Style
	Subtitle lipgloss.Style

	// Cards
	Card         lipgloss.Style
	CardSelected lipgloss.Style
	Counter      lipgloss.Style
	HeartGlyph   lipgloss.Style
	GroupHeader  lipgloss.Style
	Author       lipgloss.Style
	Private      lipgloss.Style

	// Status bar
	StatusBar  lipgloss.Style
	StatusKey  lipgloss.Style
	StatusText lipgloss.Style

	// Input styles
	InputLabel   lipgloss.Style
	InputField   lipgloss.Style
	InputFocused lipgloss.Style

	// Help styles
	HelpKey       lipgloss.Style
	HelpDesc      lipgloss.Style
	HelpSeparator lipgloss.Style

	// Message styles
	Success  lipgloss.Style
	ErrorMsg lipgloss.Style

	// Muted text style (for using Muted color as a style)
	MutedText lipgloss.Style

	current domain.DesignTokenBundle
)

func init() {
	Apply(domain.LightBundle())
}

// Apply rebuilds every style from b. It must run on the program goroutine.
func Apply(b domain.DesignTokenBundle) {
	current = b
	c := b.Colors

	Primary = lipgloss.Color(c.Primary.Rose)
	Secondary = lipgloss.Color(c.Accent.Mint)
	Muted = lipgloss.Color(c.Text.Tertiary)
	Warning = lipgloss.Color(c.UI.Warning)
	Error = lipgloss.Color(c.UI.Error)
	Heart = lipgloss.Color(c.Heart.Red)
	Surface = lipgloss.Color(c.Surface.Base)
	Text = lipgloss.Color(c.Text.Primary)
	Inverse = lipgloss.Color(c.Text.Inverse)

	App = lipgloss.NewStyle().
		Padding(1, 2)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		MarginBottom(1)

	Subtitle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(c.Text.Secondary)).
		Italic(true)

	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(c.UI.Border)).
		Foreground(Text).
		Padding(0, 1)

	CardSelected = Card.
		BorderForeground(Primary)

	Counter = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(c.Primary.RoseDark))

	HeartGlyph = lipgloss.NewStyle().
		Foreground(Heart)

	GroupHeader = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(c.Text.Secondary)).
		MarginTop(1)

	Author = lipgloss.NewStyle().
		Bold(true).
		Foreground(Text)

	Private = lipgloss.NewStyle().
		Foreground(lipgloss.Color(c.Accent.Lavender)).
		Italic(true)

	StatusBar = lipgloss.NewStyle().
		Background(lipgloss.Color(c.Surface.Dark)).
		Foreground(Text).
		Padding(0, 1)

	StatusKey = lipgloss.NewStyle().
		Background(Primary).
		Foreground(lipgloss.Color(c.White)).
		Padding(0, 1).
		MarginRight(1)

	StatusText = lipgloss.NewStyle().
		Foreground(Muted)

	InputLabel = lipgloss.NewStyle().
		Foreground(lipgloss.Color(c.Primary.RoseDark)).
		Bold(true)

	InputField = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(c.UI.Border)).
		Padding(0, 1)

	InputFocused = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Primary).
		Padding(0, 1)

	HelpKey = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	HelpDesc = lipgloss.NewStyle().
		Foreground(Muted)

	HelpSeparator = lipgloss.NewStyle().
		Foreground(Muted).
		SetString(" • ")

	Success = lipgloss.NewStyle().
		Foreground(lipgloss.Color(c.UI.Success)).
		Bold(true)

	ErrorMsg = lipgloss.NewStyle().
		Foreground(Error).
		Bold(true)

	MutedText = lipgloss.NewStyle().
		Foreground(Muted)
}

// Current returns the bundle the styles were last built from
func Current() domain.DesignTokenBundle {
	return current
}

// MoodColor returns the color for a mood in the current bundle
func MoodColor(t domain.MoodType) lipgloss.Color {
	return lipgloss.Color(domain.MoodColor(current.Colors, t))
}

// Mood renders a mood badge ("🥰 Loving") in its color
func Mood(t domain.MoodType) string {
	m, ok := domain.LookupMood(t)
	if !ok {
		return ""
	}
	return lipgloss.NewStyle().Foreground(MoodColor(t)).Render(m.Emoji + " " + m.Label)
}

// LoveIndex renders a love index with its level emoji in the level color
func LoveIndex(index int) string {
	level := domain.LoveLevelFor(index)
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(level.Color)).
		Render(level.Emoji + " " + strconv.Itoa(index))
}
