package commands

import (
	"context"
	"fmt"
	"strings"
	"time"

	"lovediary/internal/domain"
	"lovediary/internal/ports"
)

// AnniversaryResult contains the relationship timespan for the stored profile
type AnniversaryResult struct {
	Profile *domain.Profile
	Info    domain.AnniversaryInfo
	Message string
}

// AnniversaryCommand computes the anniversary info from the stored start date
type AnniversaryCommand struct {
	store ports.ProfileStore
	Now   time.Time
}

// NewAnniversaryCommand creates a new AnniversaryCommand
func NewAnniversaryCommand(store ports.ProfileStore, now time.Time) *AnniversaryCommand {
	return &AnniversaryCommand{
		store: store,
		Now:   now,
	}
}

// Execute loads the profile and derives its anniversary info
func (c *AnniversaryCommand) Execute(ctx context.Context) (*AnniversaryResult, error) {
	profile, err := c.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	info := profile.Anniversary(c.Now)
	return &AnniversaryResult{
		Profile: profile,
		Info:    info,
		Message: SummarizeAnniversary(profile, info),
	}, nil
}

// SummarizeAnniversary renders a one-paragraph summary suitable for sharing
func SummarizeAnniversary(p *domain.Profile, info domain.AnniversaryInfo) string {
	var b strings.Builder

	if p != nil && p.YourName != "" && p.PartnerName != "" {
		fmt.Fprintf(&b, "%s & %s: ", p.YourName, p.PartnerName)
	}
	fmt.Fprintf(&b, "together for %s (%s, %s)",
		plural(info.TotalDays, "day"),
		plural(info.Years, "year"),
		plural(info.Months, "month"))
	fmt.Fprintf(&b, ". Next anniversary on %s, in %s.",
		domain.FormatDate(info.NextAnniversary, domain.DateFormatLong, info.NextAnniversary),
		plural(info.DaysUntilNext, "day"))

	return b.String()
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
