package views

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"lovediary/internal/adapters/tui/styles"
	"lovediary/internal/animation"
	"lovediary/internal/application/commands"
	"lovediary/internal/domain"
	"lovediary/internal/ports"
)

// FeedKeyMap defines key bindings for the feed view
type FeedKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	PrevPage key.Binding
	NextPage key.Binding
	Search   key.Binding
	Mood     key.Binding
	Like     key.Binding
	Cancel   key.Binding
	Accept   key.Binding
}

var FeedKeys = FeedKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	PrevPage: key.NewBinding(
		key.WithKeys("left", "pgup"),
		key.WithHelp("←", "prev page"),
	),
	NextPage: key.NewBinding(
		key.WithKeys("right", "pgdown"),
		key.WithHelp("→", "next page"),
	),
	Search: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "search"),
	),
	Mood: key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m", "mood filter"),
	),
	Like: key.NewBinding(
		key.WithKeys("l", " "),
		key.WithHelp("l", "like"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "clear"),
	),
	Accept: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "done"),
	),
}

type feedLoadedMsg struct {
	results []commands.SearchResult
	err     error
}

type likeToggledMsg struct {
	result *commands.ToggleLikeResult
	err    error
}

type feedFrameMsg time.Time

// feedRow is one entry of the feed with the label of its day
type feedRow struct {
	label  string
	first  bool
	result commands.SearchResult
}

// FeedModel is the diary feed: entries grouped by day, newest first
type FeedModel struct {
	ViewState
	repo ports.EntryRepository
	now  func() time.Time
	loc  *time.Location

	input     textinput.Model
	searching bool
	mood      domain.MoodType

	rows      []feedRow
	paginator *Paginator

	pulse   *animation.Player
	pulseID string
}

// NewFeedModel creates a new feed model
func NewFeedModel(repo ports.EntryRepository, now func() time.Time, loc *time.Location) *FeedModel {
	input := textinput.New()
	input.Placeholder = "Search entries..."
	input.Prompt = "🔍 "

	return &FeedModel{
		repo:      repo,
		now:       now,
		loc:       loc,
		input:     input,
		paginator: NewPaginator(5),
	}
}

// Init loads the feed
func (m *FeedModel) Init() tea.Cmd {
	return m.Reload()
}

// Typing reports whether the search input has focus, so global keys must
// not be intercepted
func (m *FeedModel) Typing() bool {
	return m.searching
}

// Reload runs the current search against the repository
func (m *FeedModel) Reload() tea.Cmd {
	query, mood := m.input.Value(), m.mood
	return func() tea.Msg {
		results, err := commands.NewSearchEntriesCommand(m.repo, query, mood).Execute(context.Background())
		return feedLoadedMsg{results: results, err: err}
	}
}

// Update handles messages for the feed view
func (m *FeedModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		m.paginator.SetPageSize(max((msg.Height-10)/5, 1))
		return m, nil

	case feedLoadedMsg:
		if msg.err != nil {
			m.SetMessage(msg.err.Error(), true)
			return m, nil
		}
		m.rows = m.buildRows(msg.results)
		m.paginator.SetTotal(len(m.rows))
		return m, nil

	case likeToggledMsg:
		if msg.err != nil {
			m.SetMessage(msg.err.Error(), true)
			return m, nil
		}
		m.SetMessage(msg.result.Message, false)
		if msg.result.Entry == nil || !msg.result.Entry.Liked {
			return m, m.Reload()
		}
		m.pulse = animation.NewPlayer(animation.Pulse())
		m.pulseID = msg.result.Entry.ID
		return m, tea.Batch(m.Reload(), feedFrame())

	case feedFrameMsg:
		advance(m.pulse)
		if playing(m.pulse) {
			return m, feedFrame()
		}
		return m, nil

	case tea.KeyMsg:
		if m.searching {
			return m.updateSearch(msg)
		}
		return m.updateBrowse(msg)
	}

	return m, nil
}

func (m *FeedModel) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, FeedKeys.Cancel):
		m.searching = false
		m.input.Blur()
		m.input.SetValue("")
		m.paginator.Reset()
		return m, m.Reload()

	case key.Matches(msg, FeedKeys.Accept):
		m.searching = false
		m.input.Blur()
		return m, nil
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() == before {
		return m, cmd
	}
	m.paginator.Reset()
	return m, tea.Batch(cmd, m.Reload())
}

func (m *FeedModel) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, FeedKeys.Up):
		m.paginator.CursorUp()
	case key.Matches(msg, FeedKeys.Down):
		m.paginator.CursorDown()
	case key.Matches(msg, FeedKeys.PrevPage):
		m.paginator.PrevPage()
	case key.Matches(msg, FeedKeys.NextPage):
		m.paginator.NextPage()

	case key.Matches(msg, FeedKeys.Search):
		m.searching = true
		m.ClearMessage()
		return m, m.input.Focus()

	case key.Matches(msg, FeedKeys.Mood):
		m.mood = NextMood(m.mood)
		m.paginator.Reset()
		return m, m.Reload()

	case key.Matches(msg, FeedKeys.Cancel):
		if m.mood == "" && m.input.Value() == "" {
			return m, func() tea.Msg { return SwitchToDashboardMsg{} }
		}
		m.mood = ""
		m.input.SetValue("")
		m.paginator.Reset()
		return m, m.Reload()

	case key.Matches(msg, FeedKeys.Like):
		if e, ok := m.Selected(); ok {
			return m, m.toggleLike(e.ID)
		}
	}
	return m, nil
}

func feedFrame() tea.Cmd {
	return tick(func(t time.Time) tea.Msg { return feedFrameMsg(t) })
}

func (m *FeedModel) toggleLike(id string) tea.Cmd {
	return func() tea.Msg {
		res, err := commands.NewToggleLikeCommand(m.repo, id).Execute(context.Background())
		return likeToggledMsg{result: res, err: err}
	}
}

// Selected returns the entry under the cursor
func (m *FeedModel) Selected() (domain.Entry, bool) {
	i := m.paginator.Cursor()
	if i < 0 || i >= len(m.rows) {
		return domain.Entry{}, false
	}
	return m.rows[i].result.Entry, true
}

// buildRows keeps the ranked order while searching and groups by day otherwise
func (m *FeedModel) buildRows(results []commands.SearchResult) []feedRow {
	rows := make([]feedRow, 0, len(results))
	if m.ranked() {
		for _, r := range results {
			rows = append(rows, feedRow{result: r})
		}
		return rows
	}

	entries := make([]domain.Entry, len(results))
	for i, r := range results {
		entries[i] = r.Entry
	}
	groups := commands.LabelGroups(domain.GroupEntriesByDate(entries, domain.EntryTimestamp, m.loc), m.now(), m.loc)
	for _, g := range groups {
		for i, e := range g.Entries {
			rows = append(rows, feedRow{
				label:  g.Label,
				first:  i == 0,
				result: commands.SearchResult{Entry: e},
			})
		}
	}
	return rows
}

func (m *FeedModel) ranked() bool {
	return len([]rune(strings.TrimSpace(m.input.Value()))) >= 2
}

// View renders the feed
func (m *FeedModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Our Diary"))
	b.WriteString("\n")

	if m.searching || m.input.Value() != "" {
		b.WriteString(styles.InputFocused.Render(m.input.View()))
		b.WriteString("\n")
	}
	if m.mood != "" {
		b.WriteString(styles.MutedText.Render("Mood: ") + styles.Mood(m.mood))
		b.WriteString("\n")
	}

	if len(m.rows) == 0 {
		b.WriteString("\n")
		b.WriteString(styles.MutedText.Render("No entries found"))
		b.WriteString("\n")
	}

	start, end := m.paginator.VisibleRange()
	for i := start; i < end; i++ {
		row := m.rows[i]
		if row.label != "" && (row.first || i == start) {
			b.WriteString(styles.GroupHeader.Render(row.label))
			b.WriteString("\n")
		}
		b.WriteString(m.renderEntry(row.result, i == m.paginator.Cursor()))
		b.WriteString("\n")
	}

	if m.paginator.TotalPages() > 1 {
		b.WriteString(styles.MutedText.Render(fmt.Sprintf("Page %d/%d", m.paginator.CurrentPage(), m.paginator.TotalPages())))
		b.WriteString("\n")
	}

	if m.Message != "" {
		b.WriteString("\n")
		if m.MessageErr {
			b.WriteString(styles.ErrorMsg.Render(m.Message))
		} else {
			b.WriteString(styles.Success.Render(m.Message))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.searching {
		b.WriteString(statusLine("enter", "done", "esc", "clear"))
	} else {
		b.WriteString(statusLine(
			"↑/↓", "navigate",
			"/", "search",
			"m", "mood",
			"l", "like",
			"w", "write",
			"d", "dashboard",
		))
	}

	return styles.App.Render(b.String())
}

func (m *FeedModel) renderEntry(r commands.SearchResult, selected bool) string {
	e := r.Entry

	head := styles.Author.Render(e.Author.Name) + "  " +
		styles.MutedText.Render(domain.FormatTime(e.Timestamp.In(m.location()))) + "  " +
		styles.Mood(e.Mood)
	if e.Private {
		head += "  " + styles.Private.Render("private")
	}
	if m.ranked() {
		head += "  " + styles.MutedText.Render(fmt.Sprintf("score %d", r.Score))
	}

	body := e.Text
	switch e.Type {
	case domain.ContentPhoto:
		body = "📷 " + body
	case domain.ContentVoice:
		body = "🎙  " + body
	}
	if m.Width > 12 {
		body = domain.TruncateText(body, m.Width-12)
	}

	likes := "♡"
	if e.Liked {
		likes = styles.HeartGlyph.Render(m.likeGlyph(e.ID))
	}
	foot := fmt.Sprintf("%s %d   💬 %d   %s", likes, e.Likes, e.Comments, styles.LoveIndex(e.LoveIndex))
	for _, rx := range e.Reactions {
		foot += fmt.Sprintf("  %s %d", rx.Emoji, rx.Count)
	}

	card := styles.Card
	if selected {
		card = styles.CardSelected
	}
	return card.Render(head + "\n" + body + "\n" + foot)
}

// likeGlyph is the filled heart, pulsing right after the entry was liked
func (m *FeedModel) likeGlyph(id string) string {
	if id != m.pulseID || !playing(m.pulse) {
		return "♥"
	}
	return HeartGlyph(m.pulse.Frame().Get(animation.Scale, 1))
}

func (m *FeedModel) location() *time.Location {
	if m.loc == nil {
		return time.Local
	}
	return m.loc
}

// NextMood cycles the mood filter through the catalog and back to none
func NextMood(current domain.MoodType) domain.MoodType {
	if current == "" {
		return domain.Moods[0].Type
	}
	for i, mood := range domain.Moods {
		if mood.Type == current && i+1 < len(domain.Moods) {
			return domain.Moods[i+1].Type
		}
	}
	return ""
}
