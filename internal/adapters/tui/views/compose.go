package views

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"lovediary/internal/adapters/tui/styles"
	"lovediary/internal/animation"
	"lovediary/internal/application"
	"lovediary/internal/application/commands"
	"lovediary/internal/domain"
	"lovediary/internal/ports"
)

// ComposeKeyMap defines key bindings for the compose view
type ComposeKeyMap struct {
	PrevMood key.Binding
	NextMood key.Binding
	More     key.Binding
	Less     key.Binding
	Private  key.Binding
	Edit     key.Binding
	Save     key.Binding
	Cancel   key.Binding
}

var ComposeKeys = ComposeKeyMap{
	PrevMood: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←", "prev mood"),
	),
	NextMood: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→", "next mood"),
	),
	More: key.NewBinding(
		key.WithKeys("up", "k", "+"),
		key.WithHelp("↑", "more love"),
	),
	Less: key.NewBinding(
		key.WithKeys("down", "j", "-"),
		key.WithHelp("↓", "less love"),
	),
	Private: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "private"),
	),
	Edit: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "edit text"),
	),
	Save: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "save"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "discard"),
	),
}

const (
	defaultLoveIndex = 80
	loveIndexStep    = 5
)

// EditDraftMsg asks the app to reopen the editor with the current text
type EditDraftMsg struct {
	Text string
}

type entrySavedMsg struct {
	result *commands.DraftEntryResult
	err    error
}

type composeFrameMsg time.Time

// ComposeModel finishes a drafted entry: mood, love index and privacy
type ComposeModel struct {
	ViewState
	profiles ports.ProfileStore
	entries  ports.EntryRepository
	now      func() time.Time

	text      string
	mood      int
	loveIndex int
	private   bool

	shake *animation.Player
}

// NewComposeModel creates a new compose model
func NewComposeModel(profiles ports.ProfileStore, entries ports.EntryRepository, now func() time.Time) *ComposeModel {
	m := &ComposeModel{
		profiles: profiles,
		entries:  entries,
		now:      now,
	}
	m.Reset("")
	return m
}

// Reset starts a new entry with text
func (m *ComposeModel) Reset(text string) {
	m.text = text
	m.mood = 0
	m.loveIndex = defaultLoveIndex
	m.private = false
	m.shake = nil
	m.ClearMessage()
}

// SetText replaces the entry text, keeping the other choices
func (m *ComposeModel) SetText(text string) {
	m.text = text
	m.ClearMessage()
}

// Init initializes the compose view
func (m *ComposeModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the compose view
func (m *ComposeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case entrySavedMsg:
		if msg.err != nil {
			var verr *application.ValidationError
			if errors.As(msg.err, &verr) {
				m.SetMessage(verr.Message, true)
			} else {
				m.SetMessage(msg.err.Error(), true)
			}
			m.shake = animation.NewPlayer(animation.Shake())
			return m, composeFrame()
		}
		return m, func() tea.Msg {
			return EntryAddedMsg{Message: msg.result.Message}
		}

	case composeFrameMsg:
		advance(m.shake)
		if playing(m.shake) {
			return m, composeFrame()
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, ComposeKeys.PrevMood):
			m.mood = (m.mood + len(domain.Moods) - 1) % len(domain.Moods)
		case key.Matches(msg, ComposeKeys.NextMood):
			m.mood = (m.mood + 1) % len(domain.Moods)
		case key.Matches(msg, ComposeKeys.More):
			m.loveIndex = min(m.loveIndex+loveIndexStep, 100)
		case key.Matches(msg, ComposeKeys.Less):
			m.loveIndex = max(m.loveIndex-loveIndexStep, 0)
		case key.Matches(msg, ComposeKeys.Private):
			m.private = !m.private

		case key.Matches(msg, ComposeKeys.Edit):
			text := m.text
			return m, func() tea.Msg { return EditDraftMsg{Text: text} }

		case key.Matches(msg, ComposeKeys.Save):
			return m, m.save()

		case key.Matches(msg, ComposeKeys.Cancel):
			return m, func() tea.Msg { return SwitchToDashboardMsg{} }
		}
	}

	return m, nil
}

func composeFrame() tea.Cmd {
	return tick(func(t time.Time) tea.Msg { return composeFrameMsg(t) })
}

// shakeOffset is how far the error line is pushed right by the shake
func (m *ComposeModel) shakeOffset() int {
	if m.shake == nil {
		return 0
	}
	return int(math.Abs(m.shake.Frame().Get(animation.TranslateX, 0)) / 4)
}

func (m *ComposeModel) save() tea.Cmd {
	text, mood, index, private := m.text, domain.Moods[m.mood].Type, m.loveIndex, m.private
	return func() tea.Msg {
		ctx := context.Background()
		cmd := commands.NewDraftEntryCommand(m.entries, m.author(ctx), text, mood, index, m.now())
		cmd.Private = private
		res, err := cmd.Execute(ctx)
		return entrySavedMsg{result: res, err: err}
	}
}

// author is the profile's own name, or "You" without a profile
func (m *ComposeModel) author(ctx context.Context) domain.Author {
	if m.profiles != nil {
		if p, err := m.profiles.Load(ctx); err == nil && p.YourName != "" {
			return domain.Author{Name: p.YourName}
		}
	}
	return domain.Author{Name: "You"}
}

// View renders the compose view
func (m *ComposeModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("New Entry"))
	b.WriteString("\n")

	text := m.text
	if text == "" {
		text = styles.MutedText.Render("(empty: press e to write)")
	}
	b.WriteString(styles.Card.Render(text))
	b.WriteString(fmt.Sprintf("\n%s\n\n", styles.MutedText.Render(fmt.Sprintf("%d / %d characters", len([]rune(m.text)), domain.MaxEntryLength))))

	b.WriteString(styles.InputLabel.Render("Mood"))
	b.WriteString("\n  ")
	b.WriteString(styles.MutedText.Render("‹ "))
	b.WriteString(styles.Mood(domain.Moods[m.mood].Type))
	b.WriteString(styles.MutedText.Render(" ›"))
	b.WriteString("\n\n")

	b.WriteString(styles.InputLabel.Render("Love index"))
	b.WriteString("\n  ")
	b.WriteString(styles.LoveIndex(m.loveIndex))
	b.WriteString("  ")
	b.WriteString(styles.MutedText.Render(domain.LoveLevelFor(m.loveIndex).Label))
	b.WriteString("\n\n")

	visibility := "Shared with your partner"
	if m.private {
		visibility = styles.Private.Render("Private: only you can see this")
	}
	b.WriteString(visibility)
	b.WriteString("\n\n")

	if m.Message != "" {
		b.WriteString(indent(styles.ErrorMsg.Render(m.Message), m.shakeOffset()))
		b.WriteString("\n\n")
	}

	b.WriteString(statusLine(
		"←/→", "mood",
		"↑/↓", "love",
		"p", "private",
		"e", "edit",
		"enter", "save",
		"esc", "discard",
	))

	return styles.App.Render(b.String())
}
