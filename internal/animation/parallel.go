package animation

import "time"

// Property binds a track to a named animated property, e.g. "scale"
type Property struct {
	Name  string
	Track Track
}

// Prop builds a Property
func Prop(name string, track Track) Property {
	return Property{Name: name, Track: track}
}

// Frame is the sampled value of every property at one instant
type Frame map[string]float64

// Get returns the value of name, or def when the property is absent
func (f Frame) Get(name string, def float64) float64 {
	if v, ok := f[name]; ok {
		return v
	}
	return def
}

// Timeline runs several properties in parallel
type Timeline struct {
	props []Property
}

// Parallel builds a timeline whose properties all start together
func Parallel(props ...Property) *Timeline {
	return &Timeline{props: props}
}

// Duration is the longest property duration
func (tl *Timeline) Duration() time.Duration {
	var longest time.Duration
	for _, p := range tl.props {
		longest = max(longest, p.Track.Duration())
	}
	return longest
}

// Sample evaluates every property at elapsed
func (tl *Timeline) Sample(elapsed time.Duration) Frame {
	f := make(Frame, len(tl.props))
	for _, p := range tl.props {
		f[p.Name] = p.Track.Value(elapsed)
	}
	return f
}

// Player advances a timeline by frame deltas
type Player struct {
	timeline *Timeline
	elapsed  time.Duration
}

// NewPlayer creates a player positioned at the start of tl
func NewPlayer(tl *Timeline) *Player {
	return &Player{timeline: tl}
}

// Advance moves the playhead forward by dt and returns the new frame
func (p *Player) Advance(dt time.Duration) Frame {
	if dt > 0 && !p.Done() {
		p.elapsed += dt
	}
	return p.Frame()
}

// Frame samples the timeline at the playhead
func (p *Player) Frame() Frame {
	return p.timeline.Sample(p.elapsed)
}

// Elapsed returns the playhead position
func (p *Player) Elapsed() time.Duration {
	return p.elapsed
}

// Done reports whether every property has reached its end value
func (p *Player) Done() bool {
	d := p.timeline.Duration()
	return d != Forever && p.elapsed >= d
}

// Restart rewinds the playhead to the start
func (p *Player) Restart() {
	p.elapsed = 0
}
