package commands

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"lovediary/internal/application"
	"lovediary/internal/domain"
	"lovediary/internal/ports"
)

// SearchResult wraps a diary entry with a relevance score
type SearchResult struct {
	domain.Entry
	Score int
}

// SearchEntriesCommand searches the diary feed with fuzzy matching and an
// optional mood filter
type SearchEntriesCommand struct {
	repo  ports.EntryRepository
	Query string
	Mood  domain.MoodType
}

// NewSearchEntriesCommand creates a new SearchEntriesCommand
func NewSearchEntriesCommand(repo ports.EntryRepository, query string, mood domain.MoodType) *SearchEntriesCommand {
	return &SearchEntriesCommand{
		repo:  repo,
		Query: query,
		Mood:  mood,
	}
}

// Validate checks the mood filter against the catalog
func (c *SearchEntriesCommand) Validate() error {
	if c.Mood == "" {
		return nil
	}
	if _, ok := domain.LookupMood(c.Mood); !ok {
		return &application.ValidationError{
			Field:   "mood",
			Message: fmt.Sprintf("unknown mood: %s", c.Mood),
		}
	}
	return nil
}

// Execute runs the search. A query shorter than two characters does not
// filter, so the (mood-filtered) feed comes back in its original order.
func (c *SearchEntriesCommand) Execute(ctx context.Context) ([]SearchResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	entries, err := c.repo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}

	if c.Mood != "" {
		filtered := entries[:0:0]
		for _, e := range entries {
			if e.Mood == c.Mood {
				filtered = append(filtered, e)
			}
		}
		entries = filtered
	}

	query := strings.TrimSpace(c.Query)
	if len([]rune(query)) < 2 {
		results := make([]SearchResult, len(entries))
		for i, e := range entries {
			results[i] = SearchResult{Entry: e}
		}
		return results, nil
	}

	return FuzzySort(entries, query), nil
}

// FuzzyScore calculates a relevance score for how well target matches query
func FuzzyScore(target, query string) int {
	target = strings.ToLower(target)
	query = strings.ToLower(query)

	if len(query) == 0 {
		return 0
	}

	// Check for exact substring match first (highest priority)
	if strings.Contains(target, query) {
		score := 100
		// Bonus if it starts with query
		if strings.HasPrefix(target, query) {
			score += 50
		}
		return score
	}

	// Fuzzy match: check if runes appear in order
	t := []rune(target)
	q := []rune(query)
	score := 0
	queryIdx := 0
	prevMatchIdx := -1

	for i := 0; i < len(t) && queryIdx < len(q); i++ {
		if t[i] == q[queryIdx] {
			if prevMatchIdx == i-1 {
				score += 10 // consecutive chars
			}
			if i == 0 {
				score += 15 // start of string
			}
			if i > 0 && (t[i-1] == ' ' || t[i-1] == '.' || t[i-1] == '-') {
				score += 10 // after separator
			}
			score += 1
			prevMatchIdx = i
			queryIdx++
		}
	}

	if queryIdx == len(q) {
		return score
	}
	return 0
}

// FuzzySort scores entries against the query by text, author and mood,
// dropping non-matches. Equal scores keep feed order.
func FuzzySort(entries []domain.Entry, query string) []SearchResult {
	scored := make([]SearchResult, 0, len(entries))

	for _, e := range entries {
		best := max(
			FuzzyScore(e.Text, query),
			FuzzyScore(e.Author.Name, query),
			FuzzyScore(string(e.Mood), query),
		)

		if best > 0 {
			scored = append(scored, SearchResult{
				Entry: e,
				Score: best,
			})
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	return scored
}
