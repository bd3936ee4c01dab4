package views

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"lovediary/internal/adapters/tui/styles"
	"lovediary/internal/animation"
	"lovediary/internal/application"
	"lovediary/internal/application/commands"
	"lovediary/internal/domain"
	"lovediary/internal/ports"
)

const (
	frameInterval = 50 * time.Millisecond
	heartRest     = 900 * time.Millisecond
	heartDrift    = 2
	driftPeriod   = 1500 * time.Millisecond
)

// DashboardKeyMap defines key bindings for the dashboard
type DashboardKeyMap struct {
	Copy         key.Binding
	FollowSystem key.Binding
}

var DashboardKeys = DashboardKeyMap{
	Copy: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "copy summary"),
	),
	FollowSystem: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "follow system"),
	),
}

// FollowSystemMsg drops the manual appearance choice
type FollowSystemMsg struct{}

type dashboardLoadedMsg struct {
	anniversary *commands.AnniversaryResult
	stats       *commands.LoveStatsResult
	err         error
}

type heartbeatMsg time.Time

// DashboardModel shows the day counter, the next anniversary and the love
// index of the feed, with a beating heart
type DashboardModel struct {
	ViewState
	profiles ports.ProfileStore
	entries  ports.EntryRepository
	now      func() time.Time
	copy     func(string) error

	anniversary *commands.AnniversaryResult
	stats       *commands.LoveStatsResult
	noProfile   bool

	heart   *animation.Player
	drift   *animation.Player
	resting time.Duration
}

// NewDashboardModel creates a new dashboard model
func NewDashboardModel(profiles ports.ProfileStore, entries ports.EntryRepository, now func() time.Time) *DashboardModel {
	return &DashboardModel{
		profiles: profiles,
		entries:  entries,
		now:      now,
		copy:     clipboard.WriteAll,
		heart:    animation.NewPlayer(animation.Heartbeat()),
		drift:    animation.NewPlayer(animation.Float(heartDrift, driftPeriod)),
	}
}

// Init loads the dashboard data and starts the heartbeat
func (m *DashboardModel) Init() tea.Cmd {
	return tea.Batch(m.Reload(), beat())
}

// Reload re-reads the profile and the feed
func (m *DashboardModel) Reload() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		var msg dashboardLoadedMsg

		ann, err := commands.NewAnniversaryCommand(m.profiles, m.now()).Execute(ctx)
		if err != nil && !errors.Is(err, application.ErrNoProfile) {
			msg.err = err
			return msg
		}
		msg.anniversary = ann

		stats, err := commands.NewLoveStatsCommand(m.entries).Execute(ctx)
		if err != nil {
			msg.err = err
			return msg
		}
		msg.stats = stats
		return msg
	}
}

func beat() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return heartbeatMsg(t)
	})
}

// Update handles messages for the dashboard
func (m *DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case dashboardLoadedMsg:
		if msg.err != nil {
			m.SetMessage(msg.err.Error(), true)
			return m, nil
		}
		m.anniversary = msg.anniversary
		m.noProfile = msg.anniversary == nil
		m.stats = msg.stats
		return m, nil

	case heartbeatMsg:
		m.advanceHeart(frameInterval)
		m.drift.Advance(frameInterval)
		return m, beat()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, DashboardKeys.Copy):
			m.copySummary()
			return m, nil

		case key.Matches(msg, DashboardKeys.FollowSystem):
			return m, func() tea.Msg { return FollowSystemMsg{} }
		}
	}

	return m, nil
}

// advanceHeart plays one beat, rests, then starts over
func (m *DashboardModel) advanceHeart(dt time.Duration) {
	if !m.heart.Done() {
		m.heart.Advance(dt)
		return
	}
	m.resting += dt
	if m.resting >= heartRest {
		m.resting = 0
		m.heart.Restart()
	}
}

func (m *DashboardModel) copySummary() {
	if m.anniversary == nil {
		m.SetMessage("Nothing to copy yet: set your profile first", true)
		return
	}
	if err := m.copy(m.anniversary.Message); err != nil {
		m.SetMessage(fmt.Sprintf("Copy failed: %v", err), true)
		return
	}
	m.SetMessage("Copied anniversary summary", false)
}

// View renders the dashboard
func (m *DashboardModel) View() string {
	var b strings.Builder
	now := m.now()

	title := domain.TimeBasedGreeting(now)
	if m.anniversary != nil && m.anniversary.Profile.YourName != "" {
		title += ", " + m.anniversary.Profile.YourName
	}
	b.WriteString(styles.Title.Render(title))
	b.WriteString("\n")

	// the heart floats sideways; a terminal cannot move it by part of a row
	sway := int(math.Round(heartDrift + m.drift.Frame().Get(animation.TranslateY, 0)))
	heart := strings.Repeat(" ", sway) + styles.HeartGlyph.Render(HeartGlyph(m.heart.Frame().Get(animation.Scale, 1)))

	switch {
	case m.anniversary != nil:
		info := m.anniversary.Info
		p := m.anniversary.Profile
		b.WriteString(fmt.Sprintf("%s  %s\n", heart, styles.Counter.Render(fmt.Sprintf("%d days together", info.TotalDays))))
		b.WriteString(styles.Subtitle.Render(fmt.Sprintf("%s & %s since %s", p.YourName, p.PartnerName,
			domain.FormatDate(p.StartDate, domain.DateFormatLong, now))))
		b.WriteString("\n\n")
		b.WriteString(styles.Card.Render(fmt.Sprintf("%d years · %d months · %d days\nNext anniversary %s, in %d days",
			info.Years, info.Months, info.Days,
			domain.FormatDate(info.NextAnniversary, domain.DateFormatShort, now),
			info.DaysUntilNext)))
	case m.noProfile:
		b.WriteString(fmt.Sprintf("%s  %s\n", heart, styles.MutedText.Render("No profile yet")))
		b.WriteString(styles.MutedText.Render("Run: lovediary-cli profile set --you NAME --partner NAME --since YYYY-MM-DD"))
	default:
		b.WriteString(heart)
	}
	b.WriteString("\n\n")

	if m.stats != nil {
		b.WriteString(styles.InputLabel.Render("Love index"))
		b.WriteString("\n  ")
		b.WriteString(styles.LoveIndex(m.stats.Average))
		b.WriteString(styles.MutedText.Render(fmt.Sprintf("  %s across %d entries", m.stats.Level.Label, m.stats.Entries)))
		b.WriteString("\n")
		for i, mc := range m.stats.MoodCounts {
			if i == 3 {
				break
			}
			b.WriteString(fmt.Sprintf("  %s %s\n", styles.Mood(mc.Mood), styles.MutedText.Render(fmt.Sprintf("×%d", mc.Count))))
		}
		b.WriteString("\n")
	}

	if c, ok := DailyChallenge(now); ok {
		b.WriteString(styles.InputLabel.Render("Today's challenge"))
		b.WriteString("\n  ")
		b.WriteString(styles.Author.Render(c.Title))
		b.WriteString("\n  ")
		b.WriteString(styles.MutedText.Render(c.Description))
		b.WriteString("\n\n")
	}

	if m.Message != "" {
		if m.MessageErr {
			b.WriteString(styles.ErrorMsg.Render(m.Message))
		} else {
			b.WriteString(styles.Success.Render(m.Message))
		}
		b.WriteString("\n\n")
	}

	b.WriteString(statusLine(
		"f", "feed",
		"y", "timeline",
		"w", "write",
		"c", "copy",
		"t", "theme",
		"?", "help",
		"q", "quit",
	))

	return styles.App.Render(b.String())
}

// HeartGlyph picks a heart for the current heartbeat scale
func HeartGlyph(scale float64) string {
	switch {
	case scale >= 1.15:
		return "💗"
	case scale <= 0.95:
		return "♡"
	default:
		return "♥"
	}
}

// DailyChallenge picks the same challenge for every call on a calendar day
func DailyChallenge(now time.Time) (domain.Challenge, bool) {
	y, mo, d := now.Date()
	rng := rand.New(rand.NewPCG(uint64(y), uint64(int(mo)*100+d)))
	return domain.PickRandom(rng, domain.Challenges)
}

// statusLine renders key/description pairs as a bottom hint line
func statusLine(pairs ...string) string {
	parts := make([]string, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		parts = append(parts, styles.HelpKey.Render(pairs[i])+" "+styles.HelpDesc.Render(pairs[i+1]))
	}
	return strings.Join(parts, "  ")
}
