package commands

import (
	"context"
	"fmt"
	"strings"
	"time"

	"lovediary/internal/application"
	"lovediary/internal/domain"
	"lovediary/internal/ports"
)

// SetProfileResult contains the result of saving the profile
type SetProfileResult struct {
	Profile domain.Profile
	Message string
}

// SetProfileCommand stores the couple's names and relationship start date
type SetProfileCommand struct {
	store       ports.ProfileStore
	YourName    string
	PartnerName string
	StartDate   string
	Now         time.Time
	Location    *time.Location

	start time.Time
}

// NewSetProfileCommand creates a new SetProfileCommand
func NewSetProfileCommand(store ports.ProfileStore, yourName, partnerName, startDate string, now time.Time) *SetProfileCommand {
	return &SetProfileCommand{
		store:       store,
		YourName:    yourName,
		PartnerName: partnerName,
		StartDate:   startDate,
		Now:         now,
	}
}

// Validate checks the names and that the start date is not in the future
func (c *SetProfileCommand) Validate() error {
	if err := application.ValidateRequired("yourName", c.YourName); err != nil {
		return err
	}
	if err := application.ValidateRequired("partnerName", c.PartnerName); err != nil {
		return err
	}

	start, err := application.ParseDate("startDate", c.StartDate, c.Location)
	if err != nil {
		return err
	}
	if start.After(c.Now) {
		return &application.ValidationError{
			Field:   "startDate",
			Message: fmt.Sprintf("start date %s is in the future", c.StartDate),
		}
	}
	c.start = start
	return nil
}

// Execute runs the set profile command
func (c *SetProfileCommand) Execute(ctx context.Context) (*SetProfileResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	p := domain.Profile{
		YourName:    strings.TrimSpace(c.YourName),
		PartnerName: strings.TrimSpace(c.PartnerName),
		StartDate:   c.start,
		UpdatedAt:   c.Now,
	}
	if err := c.store.Save(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to save profile: %w", err)
	}

	return &SetProfileResult{
		Profile: p,
		Message: fmt.Sprintf("Saved profile for %s & %s, together since %s",
			p.YourName, p.PartnerName, domain.FormatDate(p.StartDate, domain.DateFormatLong, c.Now)),
	}, nil
}

// ShowProfileCommand loads the stored profile
type ShowProfileCommand struct {
	store ports.ProfileStore
}

// NewShowProfileCommand creates a new ShowProfileCommand
func NewShowProfileCommand(store ports.ProfileStore) *ShowProfileCommand {
	return &ShowProfileCommand{store: store}
}

// Execute runs the show profile command
func (c *ShowProfileCommand) Execute(ctx context.Context) (*domain.Profile, error) {
	return c.store.Load(ctx)
}
