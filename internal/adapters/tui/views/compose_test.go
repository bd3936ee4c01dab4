package views

import (
	"testing"

	"lovediary/internal/domain"
)

func TestComposeModel_Choices(t *testing.T) {
	m := NewComposeModel(couple(), sampleRepo(), fixedNow)
	m.Reset("We cooked dinner together tonight.")

	press(m, "right")
	if domain.Moods[m.mood].Type != domain.MoodLoving {
		t.Errorf("expected loving, got %s", domain.Moods[m.mood].Type)
	}
	press(m, "left", "left")
	if m.mood != len(domain.Moods)-1 {
		t.Errorf("mood should wrap to the last entry, got %d", m.mood)
	}

	press(m, "up", "up", "up", "up", "up")
	if m.loveIndex != 100 {
		t.Errorf("love index should clamp at 100, got %d", m.loveIndex)
	}
	press(m, "-")
	if m.loveIndex != 95 {
		t.Errorf("love index = %d, expected 95", m.loveIndex)
	}

	press(m, "p")
	if !m.private {
		t.Error("p should make the entry private")
	}
	if !contains(m.View(), "Private") {
		t.Error("view should show the private state")
	}
}

func TestComposeModel_Save(t *testing.T) {
	repo := sampleRepo()
	m := NewComposeModel(couple(), repo, fixedNow)
	m.Reset("We cooked dinner together tonight.")
	press(m, "right", "p")

	saved, ok := apply(m, press(m, "enter")).(entrySavedMsg)
	if !ok {
		t.Fatal("expected entrySavedMsg")
	}
	if saved.err != nil {
		t.Fatalf("save failed: %v", saved.err)
	}

	entries, _ := repo.List()
	if len(entries) != 5 {
		t.Fatalf("expected 5 entries, got %d", len(entries))
	}
	top := entries[0]
	if top.Author.Name != "Alex" || top.Mood != domain.MoodLoving || !top.Private || top.LoveIndex != defaultLoveIndex {
		t.Errorf("unexpected entry %+v", top)
	}
	if !top.Timestamp.Equal(referenceNow) {
		t.Errorf("timestamp = %v, expected %v", top.Timestamp, referenceNow)
	}
}

func TestComposeModel_SaveWithoutProfileUsesYou(t *testing.T) {
	repo := sampleRepo()
	m := NewComposeModel(&memProfileStore{}, repo, fixedNow)
	m.Reset("A quiet walk by the river.")

	apply(m, press(m, "enter"))

	entries, _ := repo.List()
	if entries[0].Author.Name != "You" {
		t.Errorf("author = %q, expected You", entries[0].Author.Name)
	}
}

func TestComposeModel_RejectsShortText(t *testing.T) {
	repo := sampleRepo()
	m := NewComposeModel(couple(), repo, fixedNow)
	m.Reset("hi")

	apply(m, press(m, "enter"))

	if !m.MessageErr || m.Message != domain.ErrEntryTooShort.Error() {
		t.Errorf("expected too-short message, got %q", m.Message)
	}
	if entries, _ := repo.List(); len(entries) != 4 {
		t.Errorf("nothing should be added, got %d entries", len(entries))
	}
}

func TestComposeModel_ErrorShakes(t *testing.T) {
	m := NewComposeModel(couple(), sampleRepo(), fixedNow)
	m.Reset("hi")

	apply(m, press(m, "enter"))
	if m.shake == nil {
		t.Fatal("a rejected entry should shake the error")
	}

	m.Update(composeFrameMsg(referenceNow))
	if got := m.shakeOffset(); got != 2 {
		t.Errorf("offset after one frame = %d, expected 2", got)
	}

	for i := 0; i < 10; i++ {
		m.Update(composeFrameMsg(referenceNow))
	}
	if got := m.shakeOffset(); got != 0 {
		t.Errorf("offset after the shake = %d, expected 0", got)
	}

	m.Reset("again")
	if m.shake != nil {
		t.Error("Reset should clear the shake")
	}
}

func TestComposeModel_EditAndCancel(t *testing.T) {
	m := NewComposeModel(couple(), sampleRepo(), fixedNow)
	m.Reset("Draft text that is long enough.")

	msg := press(m, "e")()
	edit, ok := msg.(EditDraftMsg)
	if !ok || edit.Text != "Draft text that is long enough." {
		t.Errorf("expected EditDraftMsg with the draft text, got %#v", msg)
	}

	if _, ok := press(m, "esc")().(SwitchToDashboardMsg); !ok {
		t.Error("esc should discard and return to the dashboard")
	}
}
