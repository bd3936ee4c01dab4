package ports

import "lovediary/internal/domain"

// MilestoneRepository holds the milestones added to the timeline by hand.
// Anniversaries derived from the profile are not stored here.
type MilestoneRepository interface {
	List() ([]domain.Milestone, error)
	Add(m domain.Milestone) error
}
