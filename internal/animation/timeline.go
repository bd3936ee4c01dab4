// Package animation samples tween-based timelines at arbitrary elapsed times.
// Nothing here owns a timer; callers advance a Player from their own frame
// ticks.
package animation

import (
	"math"
	"time"
)

// Forever is the duration of a track that never ends
const Forever = time.Duration(math.MaxInt64)

// Track is a scalar value over time
type Track interface {
	// Duration is the time until the value stops changing, or Forever
	Duration() time.Duration
	// Value samples the track; negative elapsed is treated as zero
	Value(elapsed time.Duration) float64
}

// Tween interpolates From to To over Duration after Delay
type Tween struct {
	From     float64
	To       float64
	Duration time.Duration
	Delay    time.Duration
	Easing   Easing // nil means Linear
}

// Duration implements Track
func (tw Tween) Duration() time.Duration { return tw.Delay + tw.Duration }

// Value implements Track
func (tw Tween) Value(elapsed time.Duration) float64 {
	local := elapsed - tw.Delay
	if local <= 0 {
		if tw.Duration <= 0 && elapsed >= tw.Delay {
			return tw.To
		}
		return tw.From
	}
	if local >= tw.Duration {
		return tw.To
	}

	ease := tw.Easing
	if ease == nil {
		ease = Linear
	}
	p := ease(float64(local) / float64(tw.Duration))
	return tw.From + (tw.To-tw.From)*p
}

// To builds a tween without delay
func To(from, to float64, d time.Duration, ease Easing) Tween {
	return Tween{From: from, To: to, Duration: d, Easing: ease}
}

type sequence struct {
	tracks []Track
	total  time.Duration
}

// Sequence plays tracks one after another. The value holds at the last
// track's end value once all have finished.
func Sequence(tracks ...Track) Track {
	s := sequence{tracks: tracks}
	for _, t := range tracks {
		s.total = addDuration(s.total, t.Duration())
	}
	return s
}

func (s sequence) Duration() time.Duration { return s.total }

func (s sequence) Value(elapsed time.Duration) float64 {
	if len(s.tracks) == 0 {
		return 0
	}
	if elapsed < 0 {
		elapsed = 0
	}
	for i, t := range s.tracks {
		d := t.Duration()
		if elapsed < d || i == len(s.tracks)-1 {
			return t.Value(elapsed)
		}
		elapsed -= d
	}
	return 0
}

type delayed struct {
	track Track
	delay time.Duration
}

// Delay postpones track by d, holding its initial value meanwhile
func Delay(d time.Duration, track Track) Track {
	return delayed{track: track, delay: d}
}

func (dl delayed) Duration() time.Duration { return addDuration(dl.delay, dl.track.Duration()) }

func (dl delayed) Value(elapsed time.Duration) float64 {
	return dl.track.Value(elapsed - dl.delay)
}

// Stagger delays the i-th track by i*step so they start in a cascade
func Stagger(step time.Duration, tracks ...Track) []Track {
	out := make([]Track, len(tracks))
	for i, t := range tracks {
		out[i] = Delay(time.Duration(i)*step, t)
	}
	return out
}

type loop struct {
	track Track
	times int
}

// Loop repeats track the given number of times; times <= 0 repeats forever.
// A track of zero or unbounded length is returned unchanged.
func Loop(track Track, times int) Track {
	d := track.Duration()
	if d <= 0 || d == Forever {
		return track
	}
	return loop{track: track, times: times}
}

func (l loop) Duration() time.Duration {
	if l.times <= 0 {
		return Forever
	}
	return l.track.Duration() * time.Duration(l.times)
}

func (l loop) Value(elapsed time.Duration) float64 {
	if elapsed < 0 {
		elapsed = 0
	}
	period := l.track.Duration()
	if l.times > 0 && elapsed >= l.Duration() {
		return l.track.Value(period)
	}
	return l.track.Value(elapsed % period)
}

// Hold is a constant value with zero duration
type Hold float64

// Duration implements Track
func (Hold) Duration() time.Duration { return 0 }

// Value implements Track
func (h Hold) Value(time.Duration) float64 { return float64(h) }

func addDuration(a, b time.Duration) time.Duration {
	if a == Forever || b == Forever || a > Forever-b {
		return Forever
	}
	return a + b
}
