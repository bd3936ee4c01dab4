package commands

import (
	"context"
	"fmt"
	"time"

	"lovediary/internal/application"
	"lovediary/internal/domain"
)

// DaysBetweenResult contains the whole-day distance between two dates
type DaysBetweenResult struct {
	From    time.Time
	To      time.Time
	Days    int
	Message string
}

// DaysBetweenCommand counts whole days between two date arguments
type DaysBetweenCommand struct {
	From     string
	To       string
	Location *time.Location

	from, to time.Time
}

// NewDaysBetweenCommand creates a new DaysBetweenCommand
func NewDaysBetweenCommand(from, to string, loc *time.Location) *DaysBetweenCommand {
	return &DaysBetweenCommand{
		From:     from,
		To:       to,
		Location: loc,
	}
}

// Validate parses both dates
func (c *DaysBetweenCommand) Validate() error {
	from, err := application.ParseDate("from", c.From, c.Location)
	if err != nil {
		return err
	}
	to, err := application.ParseDate("to", c.To, c.Location)
	if err != nil {
		return err
	}
	c.from, c.to = from, to
	return nil
}

// Execute runs the days between command
func (c *DaysBetweenCommand) Execute(ctx context.Context) (*DaysBetweenResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	days := domain.DaysBetween(c.from, c.to)
	return &DaysBetweenResult{
		From:    c.from,
		To:      c.to,
		Days:    days,
		Message: fmt.Sprintf("%s between %s and %s", plural(days, "day"), c.From, c.To),
	}, nil
}

// RelativeDateResult contains the humanized distance of a date from now
type RelativeDateResult struct {
	Date    time.Time
	Label   string
	Message string
}

// RelativeDateCommand describes how long ago a date was
type RelativeDateCommand struct {
	Date     string
	Now      time.Time
	Location *time.Location

	date time.Time
}

// NewRelativeDateCommand creates a new RelativeDateCommand
func NewRelativeDateCommand(date string, now time.Time, loc *time.Location) *RelativeDateCommand {
	return &RelativeDateCommand{
		Date:     date,
		Now:      now,
		Location: loc,
	}
}

// Validate parses the date argument
func (c *RelativeDateCommand) Validate() error {
	d, err := application.ParseDate("date", c.Date, c.Location)
	if err != nil {
		return err
	}
	c.date = d
	return nil
}

// Execute runs the relative date command
func (c *RelativeDateCommand) Execute(ctx context.Context) (*RelativeDateResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	label := domain.FormatRelativeDate(c.date, c.Now)
	return &RelativeDateResult{
		Date:    c.date,
		Label:   label,
		Message: fmt.Sprintf("%s: %s", c.Date, label),
	}, nil
}
