// Package appearance holds the current light/dark mode and maps it to the
// matching design token bundle.
package appearance

import (
	"sync"

	"github.com/charmbracelet/log"

	"lovediary/internal/domain"
	"lovediary/internal/ports"
)

// OverridePolicy decides how system appearance changes interact with a mode
// the user picked by hand
type OverridePolicy int

const (
	// OverridePins ignores system changes while a manual choice is in force,
	// until FollowSystem is called
	OverridePins OverridePolicy = iota
	// LatestWins applies every system change, discarding any manual choice
	LatestWins
)

// Resolver holds the current appearance mode. The zero value is ready to use
// and resolves to the light bundle.
type Resolver struct {
	mu       sync.RWMutex
	mode     domain.Mode
	system   domain.Mode
	override bool
	policy   OverridePolicy

	listeners map[int]func(domain.Mode)
	nextID    int

	// delivering is set while one goroutine runs listeners; notified is the
	// last mode they were told about
	delivering bool
	notified   domain.Mode

	logger *log.Logger
}

// Option configures the Resolver
type Option func(*Resolver)

// WithInitialMode sets the mode used before any source is attached
func WithInitialMode(m domain.Mode) Option {
	return func(r *Resolver) {
		r.mode = m
		r.system = m
	}
}

// WithPolicy sets the override policy
func WithPolicy(p OverridePolicy) Option {
	return func(r *Resolver) {
		r.policy = p
	}
}

// WithLogger sets the logger for mode transitions
func WithLogger(l *log.Logger) Option {
	return func(r *Resolver) {
		r.logger = l
	}
}

// New creates a Resolver
func New(opts ...Option) *Resolver {
	r := &Resolver{}
	for _, opt := range opts {
		opt(r)
	}
	r.notified = r.mode
	return r
}

// Mode returns the current appearance mode
func (r *Resolver) Mode() domain.Mode {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.mode
}

// Bundle returns the token bundle for the current mode
func (r *Resolver) Bundle() domain.DesignTokenBundle {
	return domain.BundleFor(r.Mode())
}

// Overridden reports whether a manual choice is in force
func (r *Resolver) Overridden() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.override
}

// SetMode switches to m as a manual choice. Subsequent Bundle calls see the
// new mode immediately.
func (r *Resolver) SetMode(m domain.Mode) {
	r.mu.Lock()
	r.override = true
	r.mode = m
	r.trace("appearance set", m, "manual")
	r.flush()
}

// Toggle flips between light and dark as a manual choice
func (r *Resolver) Toggle() {
	r.mu.Lock()
	r.override = true
	r.mode = r.mode.Opposite()
	r.trace("appearance toggled", r.mode, "manual")
	r.flush()
}

// OnExternalAppearanceChange records a system appearance change and applies
// it according to the override policy
func (r *Resolver) OnExternalAppearanceChange(m domain.Mode) {
	r.mu.Lock()
	r.system = m
	if r.override && r.policy == OverridePins {
		r.mu.Unlock()
		r.trace("system appearance ignored", m, "override")
		return
	}
	r.override = false
	r.mode = m
	r.trace("appearance followed system", m, "system")
	r.flush()
}

// FollowSystem drops any manual choice and returns to the last system mode
func (r *Resolver) FollowSystem() {
	r.mu.Lock()
	r.override = false
	r.mode = r.system
	r.flush()
}

// Attach seeds the mode from src and follows its future changes. An
// unavailable source leaves the resolver on light. The returned detach
// unsubscribes and may be called any number of times.
func (r *Resolver) Attach(src ports.AppearanceSource) (detach func()) {
	m, err := src.Current()
	if err != nil {
		if r.logger != nil {
			r.logger.Debug("system appearance unavailable, using light", "err", err)
		}
		m = domain.ModeLight
	}
	r.OnExternalAppearanceChange(m)

	unsubscribe := src.Subscribe(r.OnExternalAppearanceChange)

	var once sync.Once
	return func() {
		once.Do(unsubscribe)
	}
}

// Subscribe registers fn to be called after every effective mode change.
// Listeners hear modes in the order they were applied, one call at a time;
// changes made while they run are coalesced into the next call. Callbacks run
// outside the lock and may change the mode themselves.
func (r *Resolver) Subscribe(fn func(domain.Mode)) (unsubscribe func()) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.listeners == nil {
		r.listeners = make(map[int]func(domain.Mode))
	}
	id := r.nextID
	r.nextID++
	r.listeners[id] = fn

	return func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		delete(r.listeners, id)
	}
}

// flush tells listeners about the current mode until they have caught up,
// then releases the lock. Caller holds the lock. Only one goroutine delivers
// at a time; others leave their change for it to pick up.
func (r *Resolver) flush() {
	if r.delivering {
		r.mu.Unlock()
		return
	}
	r.delivering = true

	for r.mode != r.notified {
		m := r.mode
		r.notified = m
		fns := make([]func(domain.Mode), 0, len(r.listeners))
		for _, fn := range r.listeners {
			fns = append(fns, fn)
		}

		r.mu.Unlock()
		for _, fn := range fns {
			fn(m)
		}
		r.mu.Lock()
	}

	r.delivering = false
	r.mu.Unlock()
}

func (r *Resolver) trace(msg string, m domain.Mode, origin string) {
	if r.logger == nil {
		return
	}
	r.logger.Debug(msg, "mode", m, "origin", origin)
}
