package commands

import (
	"context"
	"testing"
	"time"

	"lovediary/internal/domain"
)

func TestGroupEntriesCommand_Execute(t *testing.T) {
	groups, err := NewGroupEntriesCommand(&sliceRepo{entries: sampleFeed()}, referenceNow, time.UTC).Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []struct {
		date  string
		label string
		ids   []string
	}{
		{"Mon Jul 15 2024", "Today", []string{"1", "2"}},
		{"Sun Jul 14 2024", "Yesterday", []string{"3"}},
		{"Fri Jul 12 2024", "3 days ago", []string{"4"}},
	}

	if len(groups) != len(want) {
		t.Fatalf("expected %d groups, got %d", len(want), len(groups))
	}
	for i, w := range want {
		g := groups[i]
		if g.Date != w.date || g.Label != w.label {
			t.Errorf("group %d = %q/%q, expected %q/%q", i, g.Date, g.Label, w.date, w.label)
		}
		if len(g.Entries) != len(w.ids) {
			t.Fatalf("group %d has %d entries, expected %d", i, len(g.Entries), len(w.ids))
		}
		for j, id := range w.ids {
			if g.Entries[j].ID != id {
				t.Errorf("group %d entry %d = %s, expected %s", i, j, g.Entries[j].ID, id)
			}
		}
	}
}

func TestLabelGroups_InvalidDate(t *testing.T) {
	groups := domain.GroupEntriesByDate([]domain.Entry{{ID: "x"}}, domain.EntryTimestamp, time.UTC)

	labelled := LabelGroups(groups, referenceNow, time.UTC)

	if len(labelled) != 1 || labelled[0].Label != domain.InvalidDateKey {
		t.Errorf("expected a single %q group, got %+v", domain.InvalidDateKey, labelled)
	}
}

func TestLabelGroups_CalendarDays(t *testing.T) {
	lateLastNight := domain.Entry{ID: "late", Timestamp: time.Date(2024, 7, 14, 23, 30, 0, 0, time.UTC)}
	groups := domain.GroupEntriesByDate([]domain.Entry{lateLastNight}, domain.EntryTimestamp, time.UTC)

	labelled := LabelGroups(groups, time.Date(2024, 7, 15, 8, 0, 0, 0, time.UTC), time.UTC)

	if labelled[0].Label != "Yesterday" {
		t.Errorf("expected Yesterday, got %q", labelled[0].Label)
	}
}
