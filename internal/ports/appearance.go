package ports

import "lovediary/internal/domain"

// AppearanceSource is the host environment's appearance signal
type AppearanceSource interface {
	// Current reports the system appearance right now
	Current() (domain.Mode, error)

	// Subscribe registers fn for future appearance changes. The returned
	// function removes the registration and is safe to call more than once.
	Subscribe(fn func(domain.Mode)) (unsubscribe func())
}
