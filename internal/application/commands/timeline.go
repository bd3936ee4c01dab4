package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"lovediary/internal/application"
	"lovediary/internal/domain"
	"lovediary/internal/ports"
)

// topMoodsInRecap is how many moods an annual recap highlights
const topMoodsInRecap = 4

// TimelineResult is the relationship timeline and the recap of the current year
type TimelineResult struct {
	Profile    *domain.Profile
	Milestones []domain.Milestone
	Recap      domain.AnnualRecap
	Message    string
}

// TimelineCommand merges the anniversaries derived from the relationship start
// with the stored milestones and summarizes the current year of the diary
type TimelineCommand struct {
	profiles   ports.ProfileStore
	entries    ports.EntryRepository
	milestones ports.MilestoneRepository
	Now        time.Time
	Location   *time.Location

	// Start replaces the stored profile's start date when set
	Start time.Time
}

// NewTimelineCommand creates a new TimelineCommand
func NewTimelineCommand(profiles ports.ProfileStore, entries ports.EntryRepository, milestones ports.MilestoneRepository, now time.Time) *TimelineCommand {
	return &TimelineCommand{
		profiles:   profiles,
		entries:    entries,
		milestones: milestones,
		Now:        now,
	}
}

// Execute builds the timeline. Without a profile or Start only the stored
// milestones are listed and the recap has no day count.
func (c *TimelineCommand) Execute(ctx context.Context) (*TimelineResult, error) {
	loc := c.Location
	if loc == nil {
		loc = time.Local
	}
	now := c.Now.In(loc)

	result := &TimelineResult{}
	start := c.Start
	if start.IsZero() && c.profiles != nil {
		profile, err := c.profiles.Load(ctx)
		switch {
		case err == nil:
			result.Profile = profile
			start = profile.StartDate
		case !errors.Is(err, application.ErrNoProfile):
			return nil, fmt.Errorf("failed to load profile: %w", err)
		}
	}

	milestones := domain.AnniversaryMilestones(start, now)
	if c.milestones != nil {
		stored, err := c.milestones.List()
		if err != nil {
			return nil, fmt.Errorf("failed to list milestones: %w", err)
		}
		milestones = append(milestones, stored...)
	}
	domain.SortMilestones(milestones)
	result.Milestones = milestones

	var entries []domain.Entry
	if c.entries != nil {
		var err error
		if entries, err = c.entries.List(); err != nil {
			return nil, fmt.Errorf("failed to list entries: %w", err)
		}
	}

	result.Recap = annualRecap(now.Year(), entries, loc)
	if !start.IsZero() {
		result.Recap.TotalDays = domain.GetAnniversaryInfo(start, now).TotalDays
	}

	result.Message = fmt.Sprintf("%d milestones. %d so far: %d entries, average love index %d",
		len(milestones), result.Recap.Year, result.Recap.DiaryEntries, result.Recap.AverageLoveIndex)
	return result, nil
}

// annualRecap summarizes the entries written in year
func annualRecap(year int, entries []domain.Entry, loc *time.Location) domain.AnnualRecap {
	var inYear []domain.Entry
	for _, e := range entries {
		if !e.Timestamp.IsZero() && e.Timestamp.In(loc).Year() == year {
			inYear = append(inYear, e)
		}
	}

	recap := domain.AnnualRecap{
		Year:             year,
		DiaryEntries:     len(inYear),
		AverageLoveIndex: domain.CalculateAverageLoveIndex(inYear),
	}
	for i, mc := range countMoods(inYear) {
		if i == topMoodsInRecap {
			break
		}
		recap.TopMoods = append(recap.TopMoods, mc.Mood)
	}
	return recap
}
