package animation

import "math"

// Easing maps linear progress in [0,1] to eased progress. Overshooting
// curves may leave [0,1] in between but end at exactly 1.
type Easing func(t float64) float64

// Linear is the identity curve
func Linear(t float64) float64 { return t }

// EaseIn accelerates from zero velocity
func EaseIn(t float64) float64 { return t * t }

// EaseOut decelerates to zero velocity
func EaseOut(t float64) float64 { return 1 - (1-t)*(1-t) }

// EaseInOut accelerates then decelerates along a sine curve
func EaseInOut(t float64) float64 { return -(math.Cos(math.Pi*t) - 1) / 2 }

// BackOut overshoots the target by an amount controlled by s, then settles
func BackOut(s float64) Easing {
	return func(t float64) float64 {
		u := t - 1
		return 1 + (s+1)*u*u*u + s*u*u
	}
}
