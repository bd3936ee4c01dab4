package commands

import (
	"context"
	"errors"
	"testing"
	"time"

	"lovediary/internal/application"
	"lovediary/internal/domain"
)

func TestAnniversaryCommand_Execute(t *testing.T) {
	store := &memProfileStore{profile: &domain.Profile{
		YourName:    "Alex",
		PartnerName: "Sam",
		StartDate:   time.Date(2023, 7, 15, 0, 0, 0, 0, time.UTC),
	}}
	now := time.Date(2024, 7, 15, 0, 0, 0, 0, time.UTC)

	res, err := NewAnniversaryCommand(store, now).Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.Info.Years != 1 || res.Info.Months != 12 {
		t.Errorf("expected 1 year 12 months, got %+v", res.Info)
	}
	if res.Info.TotalDays != 366 {
		t.Errorf("expected 366 total days across the leap year, got %d", res.Info.TotalDays)
	}
	if res.Info.NextAnniversary.Year() != 2025 || res.Info.DaysUntilNext != 365 {
		t.Errorf("expected next anniversary in 2025 after 365 days, got %v / %d",
			res.Info.NextAnniversary, res.Info.DaysUntilNext)
	}

	for _, want := range []string{"Alex & Sam", "366 days", "1 year,", "12 months", "Tuesday, July 15, 2025", "in 365 days"} {
		if !contains(res.Message, want) {
			t.Errorf("message %q missing %q", res.Message, want)
		}
	}
}

func TestAnniversaryCommand_NoProfile(t *testing.T) {
	_, err := NewAnniversaryCommand(&memProfileStore{}, referenceNow).Execute(context.Background())

	if !errors.Is(err, application.ErrNoProfile) {
		t.Errorf("expected ErrNoProfile, got %v", err)
	}
}

func TestSummarizeAnniversary_WithoutNames(t *testing.T) {
	info := domain.GetAnniversaryInfo(
		time.Date(2024, 7, 14, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 7, 15, 0, 0, 0, 0, time.UTC),
	)

	msg := SummarizeAnniversary(nil, info)

	if contains(msg, "&") {
		t.Errorf("did not expect names in %q", msg)
	}
	if !contains(msg, "together for 1 day (0 years, 0 months)") {
		t.Errorf("unexpected summary %q", msg)
	}
}
