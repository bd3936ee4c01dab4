package domain

import (
	"testing"
	"time"
)

func TestAnniversaryMilestones(t *testing.T) {
	start := date(2023, 7, 15)

	tests := []struct {
		name     string
		now      time.Time
		expected []string
	}{
		{"on the first date", start, []string{"first-date"}},
		{"before six months", date(2024, 1, 14), []string{"first-date"}},
		{"six months", date(2024, 1, 15), []string{"first-date", "half-year"}},
		{"first anniversary", date(2024, 7, 15).Add(20 * time.Hour), []string{"first-date", "half-year", "anniversary-1"}},
		{"three years", date(2026, 8, 1), []string{"first-date", "half-year", "anniversary-1", "anniversary-2", "anniversary-3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AnniversaryMilestones(start, tt.now)
			if len(got) != len(tt.expected) {
				t.Fatalf("expected %d milestones, got %d: %+v", len(tt.expected), len(got), got)
			}
			for i, id := range tt.expected {
				if got[i].ID != id {
					t.Errorf("milestone %d = %q, expected %q", i, got[i].ID, id)
				}
			}
		})
	}
}

func TestAnniversaryMilestones_Titles(t *testing.T) {
	got := AnniversaryMilestones(date(2020, 2, 29), date(2024, 3, 1))

	last := got[len(got)-1]
	if last.Title != "4th Anniversary" {
		t.Errorf("expected 4th Anniversary, got %q", last.Title)
	}
	if !last.Date.Equal(date(2024, 2, 29)) {
		t.Errorf("expected the leap day in a leap year, got %v", last.Date)
	}
	if got[2].Date.Equal(date(2021, 2, 28)) || !got[2].Date.Equal(date(2021, 3, 1)) {
		t.Errorf("expected Feb 29 to roll to Mar 1, got %v", got[2].Date)
	}
}

func TestAnniversaryMilestones_NoStart(t *testing.T) {
	now := date(2024, 1, 1)
	if got := AnniversaryMilestones(time.Time{}, now); got != nil {
		t.Errorf("expected no milestones for an unset start, got %+v", got)
	}
	if got := AnniversaryMilestones(date(2024, 2, 1), now); got != nil {
		t.Errorf("expected no milestones for a future start, got %+v", got)
	}
}

func TestOrdinal(t *testing.T) {
	tests := map[int]string{
		1: "1st", 2: "2nd", 3: "3rd", 4: "4th",
		11: "11th", 12: "12th", 13: "13th",
		21: "21st", 22: "22nd", 111: "111th",
	}
	for n, expected := range tests {
		if got := ordinal(n); got != expected {
			t.Errorf("ordinal(%d) = %q, expected %q", n, got, expected)
		}
	}
}

func TestSortMilestones(t *testing.T) {
	ms := []Milestone{
		{ID: "b", Date: date(2024, 3, 1)},
		{ID: "a", Date: date(2023, 1, 1)},
		{ID: "c", Date: date(2024, 3, 1)},
	}
	SortMilestones(ms)

	for i, id := range []string{"a", "b", "c"} {
		if ms[i].ID != id {
			t.Errorf("position %d = %q, expected %q", i, ms[i].ID, id)
		}
	}
}

func TestLookupMilestoneStyle(t *testing.T) {
	if s, ok := LookupMilestoneStyle(MilestoneTravel); !ok || s.Emoji != "✈️" {
		t.Errorf("unexpected travel style %+v", s)
	}
	if s, ok := LookupMilestoneStyle("picnic"); ok || s.Kind != MilestoneCustom {
		t.Errorf("unknown kinds should fall back to custom, got %+v", s)
	}
}
