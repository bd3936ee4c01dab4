package views

import (
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"lovediary/internal/animation"
)

// cellUnits is how many animation units make one terminal cell of offset
const cellUnits = 5

// tick schedules the next animation frame, tagged with msg
func tick(msg func(time.Time) tea.Msg) tea.Cmd {
	return tea.Tick(frameInterval, msg)
}

// playing reports whether any player still has frames left
func playing(players ...*animation.Player) bool {
	for _, p := range players {
		if p != nil && !p.Done() {
			return true
		}
	}
	return false
}

// advance moves every player forward by one frame
func advance(players ...*animation.Player) {
	for _, p := range players {
		if p != nil {
			p.Advance(frameInterval)
		}
	}
}

// visible reports whether a fading element is far enough in to be drawn
func visible(f animation.Frame) bool {
	return f.Get(animation.Opacity, 1) >= 0.5
}

// cells converts a translation to whole cells; overshoot past rest counts as 0
func cells(v float64) int {
	return int(math.Round(math.Max(v, 0) / cellUnits))
}

// indent shifts every line of s right by n cells
func indent(s string, n int) string {
	if n <= 0 {
		return s
	}
	pad := strings.Repeat(" ", n)
	return pad + strings.ReplaceAll(s, "\n", "\n"+pad)
}

// reveal draws s once its fade passes halfway, offset by its remaining lift
func reveal(f animation.Frame, s string) string {
	if !visible(f) {
		return ""
	}
	return indent(s, cells(f.Get(animation.TranslateY, 0)))
}
