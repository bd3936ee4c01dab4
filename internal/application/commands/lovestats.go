package commands

import (
	"context"
	"fmt"
	"sort"

	"lovediary/internal/domain"
	"lovediary/internal/ports"
)

// MoodCount is how many entries carry a mood
type MoodCount struct {
	Mood  domain.MoodType
	Count int
}

// LoveStatsResult summarizes the diary feed
type LoveStatsResult struct {
	Entries    int
	Average    int
	Level      domain.LoveLevel
	MoodCounts []MoodCount
	Message    string
}

// LoveStatsCommand computes the average love index and mood distribution
type LoveStatsCommand struct {
	repo ports.EntryRepository
}

// NewLoveStatsCommand creates a new LoveStatsCommand
func NewLoveStatsCommand(repo ports.EntryRepository) *LoveStatsCommand {
	return &LoveStatsCommand{repo: repo}
}

// Execute runs the love stats command
func (c *LoveStatsCommand) Execute(ctx context.Context) (*LoveStatsResult, error) {
	entries, err := c.repo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}

	avg := domain.CalculateAverageLoveIndex(entries)
	level := domain.LoveLevelFor(avg)

	return &LoveStatsResult{
		Entries:    len(entries),
		Average:    avg,
		Level:      level,
		MoodCounts: countMoods(entries),
		Message:    fmt.Sprintf("%s average love index %d (%s) across %d entries", level.Emoji, avg, level.Label, len(entries)),
	}, nil
}

// countMoods tallies moods, most frequent first, ties broken by catalog order
func countMoods(entries []domain.Entry) []MoodCount {
	counts := make(map[domain.MoodType]int)
	for _, e := range entries {
		if e.Mood != "" {
			counts[e.Mood]++
		}
	}

	rank := func(t domain.MoodType) int {
		for i, m := range domain.Moods {
			if m.Type == t {
				return i
			}
		}
		return len(domain.Moods)
	}

	out := make([]MoodCount, 0, len(counts))
	for m, n := range counts {
		out = append(out, MoodCount{Mood: m, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		if ri, rj := rank(out[i].Mood), rank(out[j].Mood); ri != rj {
			return ri < rj
		}
		return out[i].Mood < out[j].Mood
	})
	return out
}
