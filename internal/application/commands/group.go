package commands

import (
	"context"
	"fmt"
	"time"

	"lovediary/internal/domain"
	"lovediary/internal/ports"
)

// EntryGroup is one calendar date of the feed with a human label
type EntryGroup struct {
	domain.DateGroup[domain.Entry]
	Label string
}

// GroupEntriesCommand groups the diary feed by calendar date
type GroupEntriesCommand struct {
	repo     ports.EntryRepository
	Now      time.Time
	Location *time.Location
}

// NewGroupEntriesCommand creates a new GroupEntriesCommand
func NewGroupEntriesCommand(repo ports.EntryRepository, now time.Time, loc *time.Location) *GroupEntriesCommand {
	return &GroupEntriesCommand{
		repo:     repo,
		Now:      now,
		Location: loc,
	}
}

// Execute runs the group entries command
func (c *GroupEntriesCommand) Execute(ctx context.Context) ([]EntryGroup, error) {
	entries, err := c.repo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}
	return LabelGroups(domain.GroupEntriesByDate(entries, domain.EntryTimestamp, c.Location), c.Now, c.Location), nil
}

// LabelGroups attaches a relative label ("Today", "3 days ago") to each
// group. Labels count calendar days in loc (nil means time.Local), so an
// entry from late last night is "Yesterday" even if under 24 hours old.
func LabelGroups(groups []domain.DateGroup[domain.Entry], now time.Time, loc *time.Location) []EntryGroup {
	if loc == nil {
		loc = time.Local
	}

	out := make([]EntryGroup, 0, len(groups))
	for _, g := range groups {
		label := g.Date
		if g.Date != domain.InvalidDateKey && len(g.Entries) > 0 {
			label = domain.FormatRelativeDate(startOfDay(g.Entries[0].Timestamp, loc), startOfDay(now, loc))
		}
		out = append(out, EntryGroup{DateGroup: g, Label: label})
	}
	return out
}

func startOfDay(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}
