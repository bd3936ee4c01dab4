// Package tui is the interactive terminal diary.
package tui

import (
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"lovediary/internal/adapters/editor"
	"lovediary/internal/adapters/tui/styles"
	"lovediary/internal/adapters/tui/views"
	"lovediary/internal/appearance"
	"lovediary/internal/domain"
	"lovediary/internal/ports"
)

// ViewState represents the current view
type ViewState int

const (
	ViewDashboard ViewState = iota
	ViewFeed
	ViewCompose
	ViewHelp
	ViewTimeline
)

// KeyMap defines the keys available from every view
type KeyMap struct {
	Dashboard key.Binding
	Feed      key.Binding
	Timeline  key.Binding
	Write     key.Binding
	Theme     key.Binding
	Help      key.Binding
	Quit      key.Binding
}

var Keys = KeyMap{
	Dashboard: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "dashboard")),
	Feed:      key.NewBinding(key.WithKeys("f", "tab"), key.WithHelp("f", "feed")),
	Timeline:  key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "timeline")),
	Write:     key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "write")),
	Theme:     key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
	Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

var errNoEditor = errors.New("no editor configured: set $EDITOR")

var draftPrompt = []string{
	"Write about your day together. Lines starting with # are ignored.",
	"Save and quit to continue; leave it empty to discard.",
}

// Deps are the collaborators of the TUI
type Deps struct {
	Appearance *appearance.Resolver
	Profiles   ports.ProfileStore
	Entries    ports.EntryRepository
	Milestones ports.MilestoneRepository
	Editor     ports.EditorOpener
	Now        func() time.Time
	Location   *time.Location
	Logger     *log.Logger
}

// appearanceMsg reports that the resolver switched mode
type appearanceMsg domain.Mode

type editorFinishedMsg struct {
	draft *editor.Draft
	err   error
}

// App is the main TUI application model
type App struct {
	deps Deps

	state     ViewState
	dashboard *views.DashboardModel
	feed      *views.FeedModel
	compose   *views.ComposeModel
	help      *views.HelpModel
	timeline  *views.TimelineModel

	modes       chan domain.Mode
	unsubscribe func()

	width  int
	height int
}

// NewApp creates a new TUI application
func NewApp(deps Deps) *App {
	if deps.Now == nil {
		deps.Now = time.Now
	}
	if deps.Appearance == nil {
		deps.Appearance = appearance.New()
	}

	a := &App{
		deps:      deps,
		state:     ViewDashboard,
		dashboard: views.NewDashboardModel(deps.Profiles, deps.Entries, deps.Now),
		feed:      views.NewFeedModel(deps.Entries, deps.Now, deps.Location),
		compose:   views.NewComposeModel(deps.Profiles, deps.Entries, deps.Now),
		help:      views.NewHelpModel(),
		timeline:  views.NewTimelineModel(deps.Profiles, deps.Entries, deps.Milestones, deps.Now, deps.Location),
		modes:     make(chan domain.Mode, 1),
	}

	styles.Apply(deps.Appearance.Bundle())
	a.unsubscribe = deps.Appearance.Subscribe(func(m domain.Mode) {
		// Keep only the newest mode; Update reads the resolver anyway.
		select {
		case a.modes <- m:
		default:
		}
	})

	return a
}

// Close stops listening to appearance changes
func (a *App) Close() {
	if a.unsubscribe != nil {
		a.unsubscribe()
		a.unsubscribe = nil
	}
}

// State returns the current view
func (a *App) State() ViewState {
	return a.state
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return tea.Batch(a.dashboard.Init(), a.feed.Init(), a.waitForAppearance())
}

func (a *App) waitForAppearance() tea.Cmd {
	return func() tea.Msg {
		return appearanceMsg(<-a.modes)
	}
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.dashboard.Update(msg)
		a.feed.Update(msg)
		a.compose.Update(msg)
		a.help.Update(msg)
		a.timeline.Update(msg)
		return a, nil

	case appearanceMsg:
		styles.Apply(a.deps.Appearance.Bundle())
		a.debug("theme applied", "mode", domain.Mode(msg))
		return a, a.waitForAppearance()

	case tea.KeyMsg:
		if cmd, ok := a.handleGlobalKey(msg); ok {
			return a, cmd
		}

	// View switching messages
	case views.SwitchToDashboardMsg:
		a.state = ViewDashboard
		return a, a.dashboard.Reload()

	case views.SwitchToFeedMsg:
		a.state = ViewFeed
		return a, a.feed.Reload()

	case views.SwitchToHelpMsg:
		a.state = ViewHelp
		return a, nil

	case views.SwitchToTimelineMsg:
		a.state = ViewTimeline
		return a, a.timeline.Reload()

	case views.ToggleThemeMsg:
		a.deps.Appearance.Toggle()
		return a, nil

	case views.FollowSystemMsg:
		a.deps.Appearance.FollowSystem()
		a.dashboard.SetMessage("Following the system appearance", false)
		return a, nil

	// Compose flow
	case views.ComposeMsg:
		a.compose.Reset("")
		return a, a.openEditor("")

	case views.EditDraftMsg:
		return a, a.openEditor(msg.Text)

	case editorFinishedMsg:
		return a, a.finishDraft(msg)

	case views.EntryAddedMsg:
		a.state = ViewFeed
		a.feed.SetMessage(msg.Message, false)
		a.debug("entry added", "message", msg.Message)
		return a, tea.Batch(a.feed.Reload(), a.dashboard.Reload())
	}

	if _, ok := msg.(tea.KeyMsg); ok {
		_, cmd := a.current().Update(msg)
		return a, cmd
	}

	// Background messages reach the dashboard and the feed whatever is on
	// screen, so the heartbeat keeps ticking and reloads land.
	_, dashCmd := a.dashboard.Update(msg)
	_, feedCmd := a.feed.Update(msg)
	cmds := []tea.Cmd{dashCmd, feedCmd}
	if a.state != ViewDashboard && a.state != ViewFeed {
		_, cmd := a.current().Update(msg)
		cmds = append(cmds, cmd)
	}
	return a, tea.Batch(cmds...)
}

func (a *App) current() tea.Model {
	switch a.state {
	case ViewFeed:
		return a.feed
	case ViewCompose:
		return a.compose
	case ViewHelp:
		return a.help
	case ViewTimeline:
		return a.timeline
	default:
		return a.dashboard
	}
}

// handleGlobalKey reacts to keys available from every view. Views that take
// text or own the same keys get them first.
func (a *App) handleGlobalKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	if msg.String() == "ctrl+c" {
		return tea.Quit, true
	}
	if a.state == ViewCompose || a.state == ViewHelp || (a.state == ViewFeed && a.feed.Typing()) {
		return nil, false
	}

	switch {
	case key.Matches(msg, Keys.Quit):
		return tea.Quit, true
	case key.Matches(msg, Keys.Dashboard):
		return func() tea.Msg { return views.SwitchToDashboardMsg{} }, true
	case key.Matches(msg, Keys.Feed):
		return func() tea.Msg { return views.SwitchToFeedMsg{} }, true
	case key.Matches(msg, Keys.Timeline):
		return func() tea.Msg { return views.SwitchToTimelineMsg{} }, true
	case key.Matches(msg, Keys.Write):
		return func() tea.Msg { return views.ComposeMsg{} }, true
	case key.Matches(msg, Keys.Theme):
		return func() tea.Msg { return views.ToggleThemeMsg{} }, true
	case key.Matches(msg, Keys.Help):
		return func() tea.Msg { return views.SwitchToHelpMsg{} }, true
	}
	return nil, false
}

// openEditor writes text into a fresh draft and hands the terminal to the
// user's editor
func (a *App) openEditor(text string) tea.Cmd {
	if a.deps.Editor == nil {
		return func() tea.Msg { return editorFinishedMsg{err: errNoEditor} }
	}

	draft, err := editor.NewDraft("", draftPrompt...)
	if err != nil {
		return func() tea.Msg { return editorFinishedMsg{err: err} }
	}
	if text != "" {
		if err := draft.Write(text); err != nil {
			draft.Remove()
			return func() tea.Msg { return editorFinishedMsg{err: err} }
		}
	}

	cmd, err := a.deps.Editor.Command(draft.Path())
	if err != nil {
		draft.Remove()
		return func() tea.Msg { return editorFinishedMsg{err: err} }
	}

	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return editorFinishedMsg{draft: draft, err: err}
	})
}

// finishDraft reads the edited draft back and moves on to the compose view
func (a *App) finishDraft(msg editorFinishedMsg) tea.Cmd {
	if msg.draft != nil {
		defer msg.draft.Remove()
	}
	if msg.err != nil {
		a.warn("editor failed", "err", msg.err)
		a.fail(msg.err)
		return nil
	}

	text, err := msg.draft.Read()
	if err != nil {
		a.fail(err)
		return nil
	}
	if text == "" {
		a.state = ViewDashboard
		a.dashboard.SetMessage("Empty draft discarded", false)
		return nil
	}

	a.compose.SetText(text)
	a.state = ViewCompose
	return nil
}

// fail reports err on the compose view when editing from there, otherwise on
// the dashboard
func (a *App) fail(err error) {
	if a.state == ViewCompose {
		a.compose.SetMessage(err.Error(), true)
		return
	}
	a.state = ViewDashboard
	a.dashboard.SetMessage(err.Error(), true)
}

func (a *App) debug(msg string, kv ...any) {
	if a.deps.Logger != nil {
		a.deps.Logger.Debug(msg, kv...)
	}
}

func (a *App) warn(msg string, kv ...any) {
	if a.deps.Logger != nil {
		a.deps.Logger.Warn(msg, kv...)
	}
}

// View renders the current view
func (a *App) View() string {
	return a.current().View()
}
