package system

import (
	"errors"
	"os/exec"
	"sync"
	"testing"
	"time"

	"lovediary/internal/appearance"
	"lovediary/internal/domain"
)

// scripted is a Detector whose answer can be changed between polls
type scripted struct {
	mu   sync.Mutex
	mode domain.Mode
	err  error
}

func (s *scripted) set(m domain.Mode, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mode, s.err = m, err
}

func (s *scripted) detect() (domain.Mode, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode, s.err
}

func TestSource_PollEmitsOnlyOnChange(t *testing.T) {
	det := &scripted{mode: domain.ModeLight}
	src := NewSource(det.detect, WithInterval(time.Hour))

	if _, err := src.Current(); err != nil {
		t.Fatalf("Current failed: %v", err)
	}

	var got []domain.Mode
	unsubscribe := src.Subscribe(func(m domain.Mode) { got = append(got, m) })
	defer unsubscribe()

	src.Poll() // unchanged
	det.set(domain.ModeDark, nil)
	src.Poll()
	src.Poll() // unchanged
	det.set(domain.ModeLight, errors.New("gsettings missing"))
	src.Poll() // error keeps last reading
	det.set(domain.ModeLight, nil)
	src.Poll()

	want := []domain.Mode{domain.ModeDark, domain.ModeLight}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("event %d = %v, expected %v", i, got[i], want[i])
		}
	}
}

func TestSource_WatcherLifecycle(t *testing.T) {
	src := NewSource(Fixed(domain.ModeLight), WithInterval(time.Hour))

	if src.Watching() {
		t.Fatal("should not watch without subscribers")
	}

	first := src.Subscribe(func(domain.Mode) {})
	second := src.Subscribe(func(domain.Mode) {})
	if !src.Watching() {
		t.Fatal("expected watcher after subscribe")
	}

	first()
	first()
	if !src.Watching() {
		t.Fatal("watcher should remain while a subscriber is left")
	}

	second()
	if src.Watching() {
		t.Error("watcher should stop after the last unsubscribe")
	}
}

func TestSource_TickerDeliversChange(t *testing.T) {
	det := &scripted{mode: domain.ModeLight}
	src := NewSource(det.detect, WithInterval(5*time.Millisecond))
	if _, err := src.Current(); err != nil {
		t.Fatalf("Current failed: %v", err)
	}

	changed := make(chan domain.Mode, 1)
	unsubscribe := src.Subscribe(func(m domain.Mode) {
		select {
		case changed <- m:
		default:
		}
	})
	defer unsubscribe()

	det.set(domain.ModeDark, nil)

	select {
	case m := <-changed:
		if m != domain.ModeDark {
			t.Errorf("expected dark, got %v", m)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for appearance change")
	}
}

func TestSource_DrivesResolver(t *testing.T) {
	det := &scripted{mode: domain.ModeDark}
	src := NewSource(det.detect, WithInterval(time.Hour))
	r := appearance.New()

	detach := r.Attach(src)
	defer detach()

	if r.Mode() != domain.ModeDark {
		t.Fatalf("expected dark at startup, got %v", r.Mode())
	}

	det.set(domain.ModeLight, nil)
	src.Poll()

	if r.Bundle().Mode != domain.ModeLight {
		t.Errorf("expected light bundle after OS change, got %v", r.Bundle().Mode)
	}
}

func TestChain(t *testing.T) {
	failing := func() (domain.Mode, error) { return domain.ModeLight, errors.New("nope") }

	m, err := Chain(failing, Fixed(domain.ModeDark))()
	if err != nil || m != domain.ModeDark {
		t.Errorf("Chain = %v, %v; expected dark, nil", m, err)
	}

	_, err = Chain(failing, failing)()
	if !errors.Is(err, ErrUndetectable) {
		t.Errorf("expected ErrUndetectable, got %v", err)
	}
}

func TestGnomeDetector(t *testing.T) {
	tests := []struct {
		name    string
		out     string
		err     error
		want    domain.Mode
		wantErr bool
	}{
		{"prefer dark", "'prefer-dark'\n", nil, domain.ModeDark, false},
		{"prefer light", "'prefer-light'\n", nil, domain.ModeLight, false},
		{"default", "'default'\n", nil, domain.ModeLight, false},
		{"unknown", "'purple'\n", nil, domain.ModeLight, true},
		{"missing binary", "", exec.ErrNotFound, domain.ModeLight, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			run := func(string, ...string) ([]byte, error) { return []byte(tt.out), tt.err }
			got, err := gnomeDetector(run)()
			if (err != nil) != tt.wantErr {
				t.Fatalf("error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("mode = %v, expected %v", got, tt.want)
			}
		})
	}
}

func TestMacOSDetector(t *testing.T) {
	dark := func(string, ...string) ([]byte, error) { return []byte("Dark\n"), nil }
	if m, err := macOSDetector(dark)(); err != nil || m != domain.ModeDark {
		t.Errorf("expected dark, got %v, %v", m, err)
	}

	missingKey := func(string, ...string) ([]byte, error) { return nil, &exec.ExitError{} }
	if m, err := macOSDetector(missingKey)(); err != nil || m != domain.ModeLight {
		t.Errorf("missing key should mean light, got %v, %v", m, err)
	}

	broken := func(string, ...string) ([]byte, error) { return nil, exec.ErrNotFound }
	if _, err := macOSDetector(broken)(); err == nil {
		t.Error("expected error when defaults is missing")
	}
}
