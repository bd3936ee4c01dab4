package animation

import (
	"math"
	"testing"
	"time"
)

const ms = time.Millisecond

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestTween_Value(t *testing.T) {
	tw := Tween{From: 0, To: 10, Duration: 100 * ms, Delay: 50 * ms}

	tests := []struct {
		elapsed time.Duration
		want    float64
	}{
		{-10 * ms, 0},
		{0, 0},
		{50 * ms, 0},
		{100 * ms, 5},
		{150 * ms, 10},
		{time.Hour, 10},
	}

	for _, tt := range tests {
		if got := tw.Value(tt.elapsed); !near(got, tt.want) {
			t.Errorf("Value(%v) = %v, expected %v", tt.elapsed, got, tt.want)
		}
	}
	if tw.Duration() != 150*ms {
		t.Errorf("Duration = %v", tw.Duration())
	}
}

func TestTween_ZeroDurationJumps(t *testing.T) {
	tw := Tween{From: 1, To: 2, Delay: 10 * ms}

	if got := tw.Value(5 * ms); got != 1 {
		t.Errorf("before delay = %v", got)
	}
	if got := tw.Value(10 * ms); got != 2 {
		t.Errorf("at delay = %v", got)
	}
}

func TestEasingEndpoints(t *testing.T) {
	for name, e := range map[string]Easing{
		"linear":    Linear,
		"in":        EaseIn,
		"out":       EaseOut,
		"inout":     EaseInOut,
		"back(1.5)": BackOut(1.5),
	} {
		if !near(e(0), 0) || !near(e(1), 1) {
			t.Errorf("%s: e(0)=%v e(1)=%v", name, e(0), e(1))
		}
	}

	if BackOut(1.5)(0.7) <= 1 {
		t.Error("back easing should overshoot before settling")
	}
}

func TestSequence(t *testing.T) {
	s := Sequence(
		To(0, 10, 100*ms, nil),
		To(10, -10, 100*ms, nil),
	)

	if s.Duration() != 200*ms {
		t.Fatalf("Duration = %v", s.Duration())
	}

	tests := []struct {
		elapsed time.Duration
		want    float64
	}{
		{0, 0},
		{50 * ms, 5},
		{100 * ms, 10},
		{150 * ms, 0},
		{200 * ms, -10},
		{time.Second, -10},
	}
	for _, tt := range tests {
		if got := s.Value(tt.elapsed); !near(got, tt.want) {
			t.Errorf("Value(%v) = %v, expected %v", tt.elapsed, got, tt.want)
		}
	}

	if Sequence().Value(time.Second) != 0 {
		t.Error("empty sequence should sample 0")
	}
}

func TestLoop(t *testing.T) {
	base := To(0, 1, 100*ms, nil)

	finite := Loop(base, 2)
	if finite.Duration() != 200*ms {
		t.Errorf("finite Duration = %v", finite.Duration())
	}
	if got := finite.Value(150 * ms); !near(got, 0.5) {
		t.Errorf("second pass midpoint = %v", got)
	}
	if got := finite.Value(time.Second); got != 1 {
		t.Errorf("after finishing = %v", got)
	}

	infinite := Loop(base, 0)
	if infinite.Duration() != Forever {
		t.Errorf("infinite Duration = %v", infinite.Duration())
	}
	if got := infinite.Value(10*time.Second + 25*ms); !near(got, 0.25) {
		t.Errorf("infinite loop sample = %v", got)
	}

	if Loop(Hold(3), 0).Value(time.Second) != 3 {
		t.Error("looping a zero-length track should leave it unchanged")
	}
}

func TestStagger(t *testing.T) {
	tracks := Stagger(50*ms, To(0, 1, 100*ms, nil), To(0, 1, 100*ms, nil), To(0, 1, 100*ms, nil))

	for i, tr := range tracks {
		want := time.Duration(i)*50*ms + 100*ms
		if tr.Duration() != want {
			t.Errorf("track %d Duration = %v, expected %v", i, tr.Duration(), want)
		}
	}
	if got := tracks[2].Value(100 * ms); got != 0 {
		t.Errorf("third track should not have started, got %v", got)
	}
	if got := tracks[1].Value(100 * ms); !near(got, 0.5) {
		t.Errorf("second track halfway = %v", got)
	}
}

func TestForeverDoesNotOverflow(t *testing.T) {
	s := Sequence(Loop(To(0, 1, ms, nil), 0), To(0, 1, ms, nil))
	if s.Duration() != Forever {
		t.Errorf("expected Forever, got %v", s.Duration())
	}
	if Delay(time.Second, Loop(To(0, 1, ms, nil), 0)).Duration() != Forever {
		t.Error("delayed infinite track should stay Forever")
	}
}
