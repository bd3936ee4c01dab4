package commands

import (
	"context"

	"lovediary/internal/application"
	"lovediary/internal/domain"
)

// ThemeTokensResult contains the flattened tokens of one appearance mode
type ThemeTokensResult struct {
	Mode    domain.Mode
	Colors  map[string]string
	Shadows map[string]domain.Shadow
	Bundle  domain.DesignTokenBundle
}

// ThemeTokensCommand resolves the token bundle for a named mode
type ThemeTokensCommand struct {
	Mode string

	mode domain.Mode
}

// NewThemeTokensCommand creates a new ThemeTokensCommand
func NewThemeTokensCommand(mode string) *ThemeTokensCommand {
	return &ThemeTokensCommand{Mode: mode}
}

// Validate parses the mode name
func (c *ThemeTokensCommand) Validate() error {
	m, err := application.ParseMode(c.Mode)
	if err != nil {
		return err
	}
	c.mode = m
	return nil
}

// Execute runs the theme tokens command
func (c *ThemeTokensCommand) Execute(ctx context.Context) (*ThemeTokensResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	b := domain.BundleFor(c.mode)
	return &ThemeTokensResult{
		Mode:    c.mode,
		Colors:  b.Colors.Roles(),
		Shadows: b.Shadows.Levels(),
		Bundle:  b,
	}, nil
}
