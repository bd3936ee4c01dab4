package commands

import (
	"context"
	"errors"
	"testing"
	"time"

	"lovediary/internal/application"
)

func TestDaysBetweenCommand(t *testing.T) {
	tests := []struct {
		name    string
		from    string
		to      string
		want    int
		wantErr error
	}{
		{name: "forward", from: "2024-01-01", to: "2024-01-31", want: 30},
		{name: "reversed", from: "2024-01-31", to: "2024-01-01", want: 30},
		{name: "same day", from: "2024-07-15", to: "2024-07-15", want: 0},
		{name: "partial day truncates", from: "2024-07-15T00:00:00Z", to: "2024-07-16T23:00:00Z", want: 1},
		{name: "bad from", from: "soon", to: "2024-01-01", wantErr: application.ErrInvalidDate},
		{name: "bad to", from: "2024-01-01", to: "2024-13-01", wantErr: application.ErrInvalidDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := NewDaysBetweenCommand(tt.from, tt.to, time.UTC).Execute(context.Background())
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if res.Days != tt.want {
				t.Errorf("Days = %d, expected %d", res.Days, tt.want)
			}
		})
	}
}

func TestRelativeDateCommand(t *testing.T) {
	now := time.Date(2024, 7, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		date string
		want string
	}{
		{"2024-07-15", "Today"},
		{"2024-07-14", "Yesterday"},
		{"2024-07-12", "3 days ago"},
		{"2024-06-30", "2 weeks ago"},
		{"2024-04-15", "3 months ago"},
		{"2022-07-15", "2 years ago"},
	}

	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			res, err := NewRelativeDateCommand(tt.date, now, time.UTC).Execute(context.Background())
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if res.Label != tt.want {
				t.Errorf("Label = %q, expected %q", res.Label, tt.want)
			}
			if !contains(res.Message, tt.date) {
				t.Errorf("message %q should echo the date", res.Message)
			}
		})
	}
}

func TestRelativeDateCommand_Validate(t *testing.T) {
	cmd := NewRelativeDateCommand("", referenceNow, time.UTC)

	err := cmd.Validate()
	if err == nil || !contains(err.Error(), "date is required") {
		t.Errorf("expected required error, got %v", err)
	}
}
