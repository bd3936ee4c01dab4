package appearance

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"lovediary/internal/domain"
)

// fakeSource is an in-memory ports.AppearanceSource
type fakeSource struct {
	mu      sync.Mutex
	mode    domain.Mode
	err     error
	subs    map[int]func(domain.Mode)
	next    int
	removed int
}

func newFakeSource(m domain.Mode) *fakeSource {
	return &fakeSource{mode: m, subs: make(map[int]func(domain.Mode))}
}

func (f *fakeSource) Current() (domain.Mode, error) {
	return f.mode, f.err
}

func (f *fakeSource) Subscribe(fn func(domain.Mode)) func() {
	f.mu.Lock()
	defer f.mu.Unlock()
	id := f.next
	f.next++
	f.subs[id] = fn
	return func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		delete(f.subs, id)
		f.removed++
	}
}

func (f *fakeSource) emit(m domain.Mode) {
	f.mu.Lock()
	f.mode = m
	fns := make([]func(domain.Mode), 0, len(f.subs))
	for _, fn := range f.subs {
		fns = append(fns, fn)
	}
	f.mu.Unlock()
	for _, fn := range fns {
		fn(m)
	}
}

func TestResolver_ZeroValueIsLight(t *testing.T) {
	var r Resolver

	if r.Mode() != domain.ModeLight {
		t.Errorf("expected light, got %v", r.Mode())
	}
	if r.Bundle().Mode != domain.ModeLight {
		t.Errorf("expected light bundle, got %v", r.Bundle().Mode)
	}
}

func TestResolver_SetModeAndToggle(t *testing.T) {
	r := New()

	r.SetMode(domain.ModeDark)
	if got := r.Bundle(); got.Mode != domain.ModeDark {
		t.Fatalf("after SetMode(dark) got %v bundle", got.Mode)
	}

	r.Toggle()
	if got := r.Bundle(); got.Mode != domain.ModeLight {
		t.Fatalf("after Toggle got %v bundle", got.Mode)
	}

	r.Toggle()
	if r.Mode() != domain.ModeDark {
		t.Errorf("second Toggle should return to dark, got %v", r.Mode())
	}
}

func TestResolver_AttachSeedsFromSource(t *testing.T) {
	src := newFakeSource(domain.ModeDark)
	r := New()

	detach := r.Attach(src)
	defer detach()

	if r.Mode() != domain.ModeDark {
		t.Errorf("expected dark from source, got %v", r.Mode())
	}

	src.emit(domain.ModeLight)
	if r.Mode() != domain.ModeLight {
		t.Errorf("expected light after system change, got %v", r.Mode())
	}
}

func TestResolver_AttachUnavailableSourceDefaultsLight(t *testing.T) {
	src := newFakeSource(domain.ModeDark)
	src.err = errors.New("no display")
	r := New(WithInitialMode(domain.ModeDark))

	detach := r.Attach(src)
	defer detach()

	if r.Mode() != domain.ModeLight {
		t.Errorf("expected light default, got %v", r.Mode())
	}
}

func TestResolver_DetachIsIdempotent(t *testing.T) {
	src := newFakeSource(domain.ModeLight)
	r := New()

	detach := r.Attach(src)
	detach()
	detach()

	if src.removed != 1 {
		t.Errorf("expected exactly one unsubscribe, got %d", src.removed)
	}

	src.emit(domain.ModeDark)
	if r.Mode() != domain.ModeLight {
		t.Errorf("detached resolver should ignore source, got %v", r.Mode())
	}
}

func TestResolver_OverridePinsIgnoresSystem(t *testing.T) {
	src := newFakeSource(domain.ModeLight)
	r := New()
	defer r.Attach(src)()

	r.SetMode(domain.ModeDark)
	src.emit(domain.ModeLight)

	if r.Mode() != domain.ModeDark {
		t.Errorf("manual choice should be pinned, got %v", r.Mode())
	}
	if !r.Overridden() {
		t.Error("expected override to be in force")
	}

	r.FollowSystem()
	if r.Mode() != domain.ModeLight {
		t.Errorf("FollowSystem should return to system light, got %v", r.Mode())
	}
	if r.Overridden() {
		t.Error("expected override cleared")
	}

	src.emit(domain.ModeDark)
	if r.Mode() != domain.ModeDark {
		t.Errorf("expected to follow system again, got %v", r.Mode())
	}
}

func TestResolver_LatestWins(t *testing.T) {
	src := newFakeSource(domain.ModeLight)
	r := New(WithPolicy(LatestWins))
	defer r.Attach(src)()

	r.SetMode(domain.ModeDark)
	src.emit(domain.ModeLight)

	if r.Mode() != domain.ModeLight {
		t.Errorf("system change should win, got %v", r.Mode())
	}
	if r.Overridden() {
		t.Error("override should be cleared by system change")
	}
}

func TestResolver_SubscribeNotifiesOnEffectiveChange(t *testing.T) {
	r := New()
	var got []domain.Mode
	unsubscribe := r.Subscribe(func(m domain.Mode) {
		got = append(got, m)
	})

	r.SetMode(domain.ModeLight) // no change
	r.SetMode(domain.ModeDark)
	r.Toggle()

	unsubscribe()
	r.Toggle()

	want := []domain.Mode{domain.ModeDark, domain.ModeLight}
	if len(got) != len(want) {
		t.Fatalf("expected %v notifications, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("notification %d = %v, expected %v", i, got[i], want[i])
		}
	}
}

func TestResolver_ListenerMayReadMode(t *testing.T) {
	r := New()
	var seen domain.Mode
	r.Subscribe(func(domain.Mode) {
		seen = r.Bundle().Mode
	})

	r.SetMode(domain.ModeDark)

	if seen != domain.ModeDark {
		t.Errorf("listener saw %v, expected dark", seen)
	}
}

func TestResolver_ListenerMayChangeMode(t *testing.T) {
	r := New()
	var got []domain.Mode
	r.Subscribe(func(m domain.Mode) {
		got = append(got, m)
		if m == domain.ModeDark {
			r.SetMode(domain.ModeLight)
		}
	})

	r.SetMode(domain.ModeDark)

	want := []domain.Mode{domain.ModeDark, domain.ModeLight}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("expected %v, got %v", want, got)
	}
	if r.Mode() != domain.ModeLight {
		t.Errorf("expected light, got %v", r.Mode())
	}
}

func TestResolver_ConcurrentNotificationsStayOrdered(t *testing.T) {
	r := New()

	var (
		mu     sync.Mutex
		got    []domain.Mode
		inside atomic.Int32
	)
	r.Subscribe(func(m domain.Mode) {
		if inside.Add(1) > 1 {
			t.Error("listener called concurrently")
		}
		mu.Lock()
		got = append(got, m)
		mu.Unlock()
		inside.Add(-1)
	})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				if (i+j)%3 == 0 {
					r.OnExternalAppearanceChange(domain.ModeDark)
					r.FollowSystem()
				} else {
					r.SetMode(domain.Mode(j % 2))
				}
			}
		}(i)
	}
	wg.Wait()

	mu.Lock()
	defer mu.Unlock()
	if len(got) == 0 {
		t.Fatal("expected notifications")
	}
	if got[0] != domain.ModeDark {
		t.Errorf("first notification = %v, expected a change away from light", got[0])
	}
	for i := 1; i < len(got); i++ {
		if got[i] == got[i-1] {
			t.Fatalf("notification %d repeats %v: listeners saw changes out of order", i, got[i])
		}
	}
	if last := got[len(got)-1]; last != r.Mode() {
		t.Errorf("last notification %v, resolver ends on %v", last, r.Mode())
	}
}

func TestResolver_ConcurrentAccess(t *testing.T) {
	r := New()
	var wg sync.WaitGroup

	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				r.Toggle()
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = r.Bundle()
			}
		}()
	}
	wg.Wait()

	if m := r.Mode(); m != domain.ModeLight && m != domain.ModeDark {
		t.Errorf("unexpected mode %v", m)
	}
}
