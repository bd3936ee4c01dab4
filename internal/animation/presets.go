package animation

import "time"

// Property names used by the presets
const (
	Scale      = "scale"
	Opacity    = "opacity"
	TranslateX = "translateX"
	TranslateY = "translateY"
)

const beat = 100 * time.Millisecond

// Heartbeat is a single beat: swell, dip, rebound, rest
func Heartbeat() *Timeline {
	return Parallel(Prop(Scale, Sequence(
		To(1, 1.3, beat, EaseOut),
		To(1.3, 0.9, beat, nil),
		To(0.9, 1.1, beat, nil),
		To(1.1, 1, beat, nil),
	)))
}

// Pulse briefly grows and returns to rest
func Pulse() *Timeline {
	return Parallel(Prop(Scale, Sequence(
		To(1, 1.2, beat, nil),
		To(1.2, 1, beat, nil),
	)))
}

// Shake is a damped horizontal wobble for errors
func Shake() *Timeline {
	const step = 50 * time.Millisecond
	offsets := []float64{10, -10, 8, -8, 4, 0}

	tracks := make([]Track, len(offsets))
	from := 0.0
	for i, to := range offsets {
		tracks[i] = To(from, to, step, nil)
		from = to
	}
	return Parallel(Prop(TranslateX, Sequence(tracks...)))
}

// FadeIn raises opacity from 0 to 1
func FadeIn(delay, d time.Duration) *Timeline {
	return Parallel(Prop(Opacity, Tween{From: 0, To: 1, Duration: d, Delay: delay, Easing: EaseOut}))
}

// Float drifts up and down by rng forever
func Float(rng float64, d time.Duration) *Timeline {
	return Parallel(Prop(TranslateY, Sequence(
		To(0, -rng, d, EaseInOut),
		Loop(Sequence(
			To(-rng, rng, d, EaseInOut),
			To(rng, -rng, d, EaseInOut),
		), 0),
	)))
}

// Direction is where a sliding element comes from
type Direction int

const (
	FromBelow Direction = iota
	FromAbove
	FromLeft
	FromRight
)

// SlideIn moves an element into place while fading it in. Opacity finishes
// in 60% of the slide duration.
func SlideIn(dir Direction, delay, d time.Duration) *Timeline {
	prop, start := TranslateY, 30.0
	switch dir {
	case FromAbove:
		start = -30
	case FromLeft:
		prop, start = TranslateX, -50
	case FromRight:
		prop, start = TranslateX, 50
	}

	return Parallel(
		Prop(prop, Tween{From: start, To: 0, Duration: d, Delay: delay, Easing: BackOut(1.5)}),
		Prop(Opacity, Tween{From: 0, To: 1, Duration: d * 6 / 10, Delay: delay}),
	)
}

// StaggeredList fades and lifts n list items in, each step after the previous
func StaggeredList(n int, step time.Duration) []*Timeline {
	const d = 300 * time.Millisecond

	fades := make([]Track, n)
	lifts := make([]Track, n)
	for i := range n {
		fades[i] = To(0, 1, d, nil)
		lifts[i] = To(20, 0, d, EaseOut)
	}
	fades, lifts = Stagger(step, fades...), Stagger(step, lifts...)

	out := make([]*Timeline, n)
	for i := range n {
		out[i] = Parallel(Prop(Opacity, fades[i]), Prop(TranslateY, lifts[i]))
	}
	return out
}
