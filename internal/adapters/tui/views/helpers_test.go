package views

import (
	"context"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"lovediary/internal/adapters/memory"
	"lovediary/internal/application"
	"lovediary/internal/domain"
)

var referenceNow = time.Date(2024, 7, 15, 20, 0, 0, 0, time.UTC)

func fixedNow() time.Time { return referenceNow }

// memProfileStore is an in-memory ports.ProfileStore
type memProfileStore struct {
	profile *domain.Profile
}

func (s *memProfileStore) Load(ctx context.Context) (*domain.Profile, error) {
	if s.profile == nil {
		return nil, application.ErrNoProfile
	}
	p := *s.profile
	return &p, nil
}

func (s *memProfileStore) Save(ctx context.Context, p domain.Profile) error {
	s.profile = &p
	return nil
}

func (s *memProfileStore) Close() error { return nil }

func couple() *memProfileStore {
	return &memProfileStore{profile: &domain.Profile{
		YourName:    "Alex",
		PartnerName: "Sam",
		StartDate:   time.Date(2023, 7, 15, 0, 0, 0, 0, time.UTC),
	}}
}

func sampleRepo() *memory.Repository {
	return memory.NewSampleRepository(referenceNow)
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

// press sends each key and returns the command of the last one
func press(m tea.Model, keys ...string) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		_, cmd = m.Update(keyMsg(k))
	}
	return cmd
}

// apply runs cmd and feeds its message back into m. Only use it with
// commands that return immediately.
func apply(m tea.Model, cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	m.Update(msg)
	return msg
}

func contains(s, substr string) bool {
	return strings.Contains(s, substr)
}
