package commands

import (
	"context"
	"fmt"

	"lovediary/internal/application"
	"lovediary/internal/domain"
	"lovediary/internal/ports"
)

// ToggleLikeResult contains the entry after the like was flipped
type ToggleLikeResult struct {
	Entry   *domain.Entry
	Message string
}

// ToggleLikeCommand likes or unlikes a diary entry
type ToggleLikeCommand struct {
	repo    ports.EntryRepository
	EntryID string
}

// NewToggleLikeCommand creates a new ToggleLikeCommand
func NewToggleLikeCommand(repo ports.EntryRepository, entryID string) *ToggleLikeCommand {
	return &ToggleLikeCommand{
		repo:    repo,
		EntryID: entryID,
	}
}

// Validate checks the entry id is present
func (c *ToggleLikeCommand) Validate() error {
	return application.ValidateRequired("entryID", c.EntryID)
}

// Execute runs the toggle like command
func (c *ToggleLikeCommand) Execute(ctx context.Context) (*ToggleLikeResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	entry, err := c.repo.ToggleLike(c.EntryID)
	if err != nil {
		return nil, fmt.Errorf("failed to like %s: %w", c.EntryID, err)
	}

	verb := "Unliked"
	if entry.Liked {
		verb = "Liked"
	}
	return &ToggleLikeResult{
		Entry:   entry,
		Message: fmt.Sprintf("%s entry by %s (%d likes)", verb, entry.Author.Name, entry.Likes),
	}, nil
}
