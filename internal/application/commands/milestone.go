package commands

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"lovediary/internal/application"
	"lovediary/internal/domain"
	"lovediary/internal/ports"
)

// AddMilestoneResult contains the stored milestone
type AddMilestoneResult struct {
	Milestone domain.Milestone
	Message   string
}

// AddMilestoneCommand puts a hand-written milestone on the timeline
type AddMilestoneCommand struct {
	repo        ports.MilestoneRepository
	Kind        domain.MilestoneKind
	Title       string
	Date        string
	Description string
	Location    *time.Location
}

// NewAddMilestoneCommand creates a new AddMilestoneCommand; an empty kind
// means a custom milestone
func NewAddMilestoneCommand(repo ports.MilestoneRepository, kind domain.MilestoneKind, title, date, description string) *AddMilestoneCommand {
	if kind == "" {
		kind = domain.MilestoneCustom
	}
	return &AddMilestoneCommand{
		repo:        repo,
		Kind:        kind,
		Title:       title,
		Date:        date,
		Description: description,
	}
}

// Validate checks the title and kind
func (c *AddMilestoneCommand) Validate() error {
	if err := application.ValidateRequired("title", c.Title); err != nil {
		return err
	}
	if _, ok := domain.LookupMilestoneStyle(c.Kind); !ok {
		return &application.ValidationError{
			Field:   "kind",
			Message: fmt.Sprintf("unknown milestone kind: %s", c.Kind),
		}
	}
	return nil
}

// Execute runs the add milestone command
func (c *AddMilestoneCommand) Execute(ctx context.Context) (*AddMilestoneResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	date, err := application.ParseDate("date", c.Date, c.Location)
	if err != nil {
		return nil, err
	}

	m := domain.Milestone{
		ID:          uuid.NewString(),
		Kind:        c.Kind,
		Title:       strings.TrimSpace(c.Title),
		Date:        date,
		Description: strings.TrimSpace(c.Description),
	}
	if err := c.repo.Add(m); err != nil {
		return nil, fmt.Errorf("failed to add milestone: %w", err)
	}

	return &AddMilestoneResult{
		Milestone: m,
		Message:   fmt.Sprintf("Added milestone %q on %s", m.Title, date.Format(application.DateLayout)),
	}, nil
}
