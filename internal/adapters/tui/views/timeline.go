package views

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"lovediary/internal/adapters/tui/styles"
	"lovediary/internal/animation"
	"lovediary/internal/application/commands"
	"lovediary/internal/domain"
	"lovediary/internal/ports"
)

const (
	staggerStep   = 80 * time.Millisecond
	recapDuration = 400 * time.Millisecond
)

// TimelineKeyMap defines key bindings for the timeline view
type TimelineKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Back key.Binding
}

var TimelineKeys = TimelineKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "earlier"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "later"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "back"),
	),
}

type timelineLoadedMsg struct {
	result *commands.TimelineResult
	err    error
}

type timelineFrameMsg time.Time

// TimelineModel lists the relationship milestones and this year's recap.
// Milestones fade in one after another, then the recap slides up.
type TimelineModel struct {
	ViewState
	profiles   ports.ProfileStore
	entries    ports.EntryRepository
	milestones ports.MilestoneRepository
	now        func() time.Time
	loc        *time.Location

	result *commands.TimelineResult
	offset int

	header *animation.Player
	rows   []*animation.Player
	recap  *animation.Player
}

// NewTimelineModel creates a new timeline model
func NewTimelineModel(profiles ports.ProfileStore, entries ports.EntryRepository, milestones ports.MilestoneRepository, now func() time.Time, loc *time.Location) *TimelineModel {
	return &TimelineModel{
		profiles:   profiles,
		entries:    entries,
		milestones: milestones,
		now:        now,
		loc:        loc,
	}
}

// Init loads the timeline
func (m *TimelineModel) Init() tea.Cmd {
	return m.Reload()
}

// Reload rebuilds the timeline from the profile, milestones and feed
func (m *TimelineModel) Reload() tea.Cmd {
	return func() tea.Msg {
		cmd := commands.NewTimelineCommand(m.profiles, m.entries, m.milestones, m.now())
		cmd.Location = m.loc
		result, err := cmd.Execute(context.Background())
		return timelineLoadedMsg{result: result, err: err}
	}
}

func timelineFrame() tea.Cmd {
	return tick(func(t time.Time) tea.Msg { return timelineFrameMsg(t) })
}

// Update handles messages for the timeline view
func (m *TimelineModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case timelineLoadedMsg:
		if msg.err != nil {
			m.SetMessage(msg.err.Error(), true)
			return m, nil
		}
		m.ClearMessage()
		m.result = msg.result
		m.offset = 0
		m.startAnimations()
		return m, timelineFrame()

	case timelineFrameMsg:
		m.advance()
		if m.Animating() {
			return m, timelineFrame()
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, TimelineKeys.Up):
			m.offset = max(m.offset-1, 0)
		case key.Matches(msg, TimelineKeys.Down):
			if m.result != nil && m.offset < len(m.result.Milestones)-1 {
				m.offset++
			}
		case key.Matches(msg, TimelineKeys.Back):
			return m, func() tea.Msg { return SwitchToDashboardMsg{} }
		}
	}

	return m, nil
}

func (m *TimelineModel) startAnimations() {
	m.header = animation.NewPlayer(animation.FadeIn(0, 300*time.Millisecond))

	lists := animation.StaggeredList(len(m.result.Milestones), staggerStep)
	m.rows = make([]*animation.Player, len(lists))
	for i, tl := range lists {
		m.rows[i] = animation.NewPlayer(tl)
	}

	delay := time.Duration(len(lists)) * staggerStep
	m.recap = animation.NewPlayer(animation.SlideIn(animation.FromBelow, delay, recapDuration))
}

func (m *TimelineModel) advance() {
	advance(m.header, m.recap)
	advance(m.rows...)
}

// Animating reports whether the entrance animation is still running
func (m *TimelineModel) Animating() bool {
	return playing(m.header, m.recap) || playing(m.rows...)
}

// visibleRows is how many milestones fit above the recap
func (m *TimelineModel) visibleRows() int {
	if m.Height == 0 {
		return 6
	}
	return max((m.Height-16)/3, 2)
}

// View renders the timeline
func (m *TimelineModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Our Timeline"))
	b.WriteString("\n")
	if m.header == nil || visible(m.header.Frame()) {
		b.WriteString(styles.Subtitle.Render("Every moment matters"))
	}
	b.WriteString("\n\n")

	if m.result == nil {
		if m.Message != "" {
			b.WriteString(styles.ErrorMsg.Render(m.Message))
			b.WriteString("\n\n")
		}
		b.WriteString(statusLine("esc", "back"))
		return styles.App.Render(b.String())
	}

	if m.result.Profile == nil {
		b.WriteString(styles.MutedText.Render("Set your profile to see your first date and anniversaries"))
		b.WriteString("\n\n")
	}

	ms := m.result.Milestones
	end := min(m.offset+m.visibleRows(), len(ms))
	if m.offset > 0 {
		b.WriteString(styles.MutedText.Render(fmt.Sprintf("  ↑ %d earlier", m.offset)))
		b.WriteString("\n")
	}
	for i := m.offset; i < end; i++ {
		row := renderMilestone(ms[i])
		if i < len(m.rows) {
			row = reveal(m.rows[i].Frame(), row)
		}
		if row != "" {
			b.WriteString(row)
			b.WriteString("\n")
		}
	}
	if rest := len(ms) - end; rest > 0 {
		b.WriteString(styles.MutedText.Render(fmt.Sprintf("  ↓ %d later", rest)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	recap := m.renderRecap(m.result.Recap)
	if m.recap != nil {
		recap = reveal(m.recap.Frame(), recap)
	}
	if recap != "" {
		b.WriteString(recap)
		b.WriteString("\n\n")
	}

	b.WriteString(statusLine(
		"↑/↓", "scroll",
		"esc", "back",
		"w", "write",
		"f", "feed",
	))

	return styles.App.Render(b.String())
}

func renderMilestone(ms domain.Milestone) string {
	style, _ := domain.LookupMilestoneStyle(ms.Kind)
	dot := lipgloss.NewStyle().Foreground(lipgloss.Color(style.Color)).Render("●")

	line := fmt.Sprintf("%s %s  %s  %s", dot, style.Emoji,
		styles.MutedText.Render(ms.Date.Format("Jan 2, 2006")),
		styles.Author.Render(ms.Title))
	if ms.Description != "" {
		line += "\n    " + styles.MutedText.Render(domain.TruncateText(ms.Description, 64))
	}
	return line
}

func (m *TimelineModel) renderRecap(r domain.AnnualRecap) string {
	moods := make([]string, 0, len(r.TopMoods))
	for _, t := range r.TopMoods {
		if mood, ok := domain.LookupMood(t); ok {
			moods = append(moods, mood.Emoji)
		}
	}

	var b strings.Builder
	b.WriteString(styles.GroupHeader.Render(fmt.Sprintf("%d in review", r.Year)))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%d days together · %d entries\n", r.TotalDays, r.DiaryEntries)
	b.WriteString("Love index ")
	b.WriteString(styles.LoveIndex(r.AverageLoveIndex))
	if len(moods) > 0 {
		b.WriteString("\nTop moods  ")
		b.WriteString(strings.Join(moods, " "))
	}
	return styles.Card.Render(b.String())
}
