package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"lovediary/internal/application"
	"lovediary/internal/domain"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()

	s := NewStore()
	if err := s.Open(filepath.Join(t.TempDir(), "nested", "lovediary.db")); err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Errorf("failed to close store: %v", err)
		}
	})
	return s
}

func TestStore_LoadEmpty(t *testing.T) {
	s := openTestStore(t)

	_, err := s.Load(context.Background())
	if !errors.Is(err, application.ErrNoProfile) {
		t.Errorf("expected ErrNoProfile, got %v", err)
	}
}

func TestStore_RoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	paris, err := time.LoadLocation("Europe/Paris")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}
	want := domain.Profile{
		YourName:    "Alex",
		PartnerName: "Sam",
		StartDate:   time.Date(2023, 7, 15, 0, 0, 0, 0, paris),
		UpdatedAt:   time.Date(2024, 7, 15, 20, 0, 0, 123, time.UTC),
	}

	if err := s.Save(ctx, want); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if got.YourName != want.YourName || got.PartnerName != want.PartnerName {
		t.Errorf("names = %q/%q", got.YourName, got.PartnerName)
	}
	if !got.StartDate.Equal(want.StartDate) {
		t.Errorf("StartDate = %v, expected %v", got.StartDate, want.StartDate)
	}
	if !got.UpdatedAt.Equal(want.UpdatedAt) {
		t.Errorf("UpdatedAt = %v, expected %v", got.UpdatedAt, want.UpdatedAt)
	}
	_, offset := got.StartDate.Zone()
	if offset != 2*60*60 {
		t.Errorf("expected the +02:00 offset to survive, got %d", offset)
	}
}

func TestStore_SaveReplacesAndTracksHistory(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	first := time.Date(2023, 7, 15, 0, 0, 0, 0, time.UTC)
	second := time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)

	saves := []domain.Profile{
		{YourName: "Alex", PartnerName: "Sam", StartDate: first, UpdatedAt: first},
		{YourName: "Alex", PartnerName: "Samantha", StartDate: first, UpdatedAt: first},
		{YourName: "Alex", PartnerName: "Samantha", StartDate: second, UpdatedAt: first},
	}
	for _, p := range saves {
		if err := s.Save(ctx, p); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
	}

	got, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got.PartnerName != "Samantha" || !got.StartDate.Equal(second) {
		t.Errorf("expected last save to win, got %+v", got)
	}

	history, err := s.StartDateHistory(ctx)
	if err != nil {
		t.Fatalf("StartDateHistory failed: %v", err)
	}
	if len(history) != 2 || !history[0].Equal(first) || !history[1].Equal(second) {
		t.Errorf("unexpected history %v", history)
	}
}

func TestStore_ReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lovediary.db")
	ctx := context.Background()

	s := NewStore()
	if err := s.Open(path); err != nil {
		t.Fatalf("open failed: %v", err)
	}
	p := domain.Profile{YourName: "Alex", PartnerName: "Sam", StartDate: time.Date(2023, 7, 15, 0, 0, 0, 0, time.UTC)}
	if err := s.Save(ctx, p); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	s.Close()

	reopened := NewStore()
	if err := reopened.Open(path); err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer reopened.Close()

	version, err := reopened.SchemaVersion(ctx)
	if err != nil || version != schemaVersion {
		t.Errorf("schema version = %q, %v", version, err)
	}
	if _, err := reopened.Load(ctx); err != nil {
		t.Errorf("expected profile after reopen, got %v", err)
	}
}
