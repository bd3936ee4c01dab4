package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"lovediary/internal/application"
	"lovediary/internal/domain"
	"lovediary/internal/ports"
)

// DraftEntryResult contains the result of adding an entry
type DraftEntryResult struct {
	Entry   domain.Entry
	Message string
}

// DraftEntryCommand validates a written entry and adds it to the feed
type DraftEntryCommand struct {
	repo      ports.EntryRepository
	Author    domain.Author
	Text      string
	Mood      domain.MoodType
	LoveIndex int
	Private   bool
	Now       time.Time
}

// NewDraftEntryCommand creates a new DraftEntryCommand
func NewDraftEntryCommand(repo ports.EntryRepository, author domain.Author, text string, mood domain.MoodType, loveIndex int, now time.Time) *DraftEntryCommand {
	return &DraftEntryCommand{
		repo:      repo,
		Author:    author,
		Text:      text,
		Mood:      mood,
		LoveIndex: loveIndex,
		Now:       now,
	}
}

// Validate checks the entry body, mood and love index
func (c *DraftEntryCommand) Validate() error {
	if err := domain.ValidateEntryContent(c.Text); err != nil {
		return &application.ValidationError{
			Field:   "text",
			Message: err.Error(),
		}
	}

	if c.Mood != "" {
		if _, ok := domain.LookupMood(c.Mood); !ok {
			return &application.ValidationError{
				Field:   "mood",
				Message: fmt.Sprintf("unknown mood: %s", c.Mood),
			}
		}
	}

	if c.LoveIndex < 0 || c.LoveIndex > 100 {
		return &application.ValidationError{
			Field:   "loveIndex",
			Message: fmt.Sprintf("love index must be between 0 and 100, got %d", c.LoveIndex),
		}
	}

	return nil
}

// Execute runs the draft entry command
func (c *DraftEntryCommand) Execute(ctx context.Context) (*DraftEntryResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	entry := domain.Entry{
		ID:        uuid.NewString(),
		Author:    c.Author,
		Type:      domain.ContentText,
		Text:      c.Text,
		Mood:      c.Mood,
		LoveIndex: c.LoveIndex,
		Private:   c.Private,
		Timestamp: c.Now,
	}

	if err := c.repo.Add(entry); err != nil {
		return nil, fmt.Errorf("failed to add entry: %w", err)
	}

	return &DraftEntryResult{
		Entry:   entry,
		Message: fmt.Sprintf("Added entry %s", domain.TruncateText(entry.Text, 40)),
	}, nil
}
