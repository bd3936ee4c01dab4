// Package system adapts the operating system appearance preference into a
// ports.AppearanceSource by polling a Detector.
package system

import (
	"context"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"lovediary/internal/domain"
	"lovediary/internal/ports"
)

// DefaultPollInterval is how often the OS preference is re-read
const DefaultPollInterval = 5 * time.Second

// Source implements ports.AppearanceSource. Polling runs only while at least
// one subscriber is registered.
type Source struct {
	detect   Detector
	interval time.Duration
	logger   *log.Logger

	mu       sync.Mutex
	subs     map[int]func(domain.Mode)
	nextID   int
	last     domain.Mode
	haveLast bool
	cancel   context.CancelFunc
}

// Ensure Source implements AppearanceSource
var _ ports.AppearanceSource = (*Source)(nil)

// Option configures the Source
type Option func(*Source)

// WithInterval sets the polling interval
func WithInterval(d time.Duration) Option {
	return func(s *Source) {
		if d > 0 {
			s.interval = d
		}
	}
}

// WithLogger sets the logger for detection failures
func WithLogger(l *log.Logger) Option {
	return func(s *Source) {
		s.logger = l
	}
}

// NewSource creates a Source backed by detect
func NewSource(detect Detector, opts ...Option) *Source {
	s := &Source{
		detect:   detect,
		interval: DefaultPollInterval,
		subs:     make(map[int]func(domain.Mode)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Current reads the appearance now and remembers it as the baseline for
// change detection
func (s *Source) Current() (domain.Mode, error) {
	m, err := s.detect()
	if err != nil {
		return domain.ModeLight, err
	}

	s.mu.Lock()
	s.last, s.haveLast = m, true
	s.mu.Unlock()

	return m, nil
}

// Subscribe registers fn and starts polling on the first subscription
func (s *Source) Subscribe(fn func(domain.Mode)) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	if s.cancel == nil {
		ctx, cancel := context.WithCancel(context.Background())
		s.cancel = cancel
		go s.watch(ctx)
	}
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { s.unsubscribe(id) })
	}
}

func (s *Source) unsubscribe(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.subs, id)
	if len(s.subs) == 0 && s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

func (s *Source) watch(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Poll()
		}
	}
}

// Poll reads the appearance once and notifies subscribers if it changed
// since the last reading. Detection errors keep the previous reading.
func (s *Source) Poll() {
	m, err := s.detect()
	if err != nil {
		if s.logger != nil {
			s.logger.Debug("appearance poll failed", "err", err)
		}
		return
	}

	s.mu.Lock()
	if s.haveLast && s.last == m {
		s.mu.Unlock()
		return
	}
	s.last, s.haveLast = m, true
	fns := make([]func(domain.Mode), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(m)
	}
}

// Watching reports whether the polling goroutine is active
func (s *Source) Watching() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cancel != nil
}
