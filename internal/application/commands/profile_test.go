package commands

import (
	"context"
	"errors"
	"testing"
	"time"

	"lovediary/internal/application"
)

func TestSetProfileCommand_Validate(t *testing.T) {
	tests := []struct {
		name      string
		yourName  string
		partner   string
		startDate string
		wantErr   bool
		errMsg    string
	}{
		{
			name:      "valid profile",
			yourName:  "Alex",
			partner:   "Sam",
			startDate: "2023-07-15",
		},
		{
			name:      "missing your name",
			partner:   "Sam",
			startDate: "2023-07-15",
			wantErr:   true,
			errMsg:    "your name is required",
		},
		{
			name:      "blank partner name",
			yourName:  "Alex",
			partner:   "  ",
			startDate: "2023-07-15",
			wantErr:   true,
			errMsg:    "partner name is required",
		},
		{
			name:     "missing start date",
			yourName: "Alex",
			partner:  "Sam",
			wantErr:  true,
			errMsg:   "start date is required",
		},
		{
			name:      "unparseable start date",
			yourName:  "Alex",
			partner:   "Sam",
			startDate: "15/07/2023",
			wantErr:   true,
			errMsg:    "cannot parse",
		},
		{
			name:      "start date in the future",
			yourName:  "Alex",
			partner:   "Sam",
			startDate: "2030-01-01",
			wantErr:   true,
			errMsg:    "in the future",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := NewSetProfileCommand(&memProfileStore{}, tt.yourName, tt.partner, tt.startDate, referenceNow)
			cmd.Location = time.UTC
			err := cmd.Validate()

			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error containing %q, got nil", tt.errMsg)
					return
				}
				if !contains(err.Error(), tt.errMsg) {
					t.Errorf("expected error containing %q, got %q", tt.errMsg, err.Error())
				}
			} else {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
			}
		})
	}
}

func TestSetProfileCommand_Execute(t *testing.T) {
	store := &memProfileStore{}
	cmd := NewSetProfileCommand(store, " Alex ", "Sam", "2023-07-15", referenceNow)
	cmd.Location = time.UTC

	res, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if store.profile == nil {
		t.Fatal("profile was not saved")
	}
	if store.profile.YourName != "Alex" {
		t.Errorf("expected trimmed name, got %q", store.profile.YourName)
	}
	if !store.profile.StartDate.Equal(time.Date(2023, 7, 15, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("unexpected start date %v", store.profile.StartDate)
	}
	if !store.profile.UpdatedAt.Equal(referenceNow) {
		t.Errorf("expected UpdatedAt %v, got %v", referenceNow, store.profile.UpdatedAt)
	}
	if !contains(res.Message, "Saturday, July 15, 2023") {
		t.Errorf("unexpected message %q", res.Message)
	}

	shown, err := NewShowProfileCommand(store).Execute(context.Background())
	if err != nil {
		t.Fatalf("show failed: %v", err)
	}
	if shown.PartnerName != "Sam" {
		t.Errorf("expected partner Sam, got %q", shown.PartnerName)
	}
}

func TestSetProfileCommand_SaveError(t *testing.T) {
	boom := errors.New("disk full")
	cmd := NewSetProfileCommand(&memProfileStore{saveErr: boom}, "Alex", "Sam", "2023-07-15", referenceNow)

	_, err := cmd.Execute(context.Background())
	if !errors.Is(err, boom) {
		t.Errorf("expected wrapped save error, got %v", err)
	}
}

func TestShowProfileCommand_NoProfile(t *testing.T) {
	_, err := NewShowProfileCommand(&memProfileStore{}).Execute(context.Background())
	if !errors.Is(err, application.ErrNoProfile) {
		t.Errorf("expected ErrNoProfile, got %v", err)
	}
}
