package ports

import (
	"context"

	"lovediary/internal/domain"
)

// ProfileStore persists the relationship profile
type ProfileStore interface {
	// Load returns the stored profile, or application.ErrNoProfile when none exists
	Load(ctx context.Context) (*domain.Profile, error)
	Save(ctx context.Context, p domain.Profile) error
	Close() error
}
