package toast

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Bounds is the size of the host surface in layout units
type Bounds struct {
	Width  int
	Height int
}

// Host is the surface a toast attaches to. All methods are called from the
// Bubble Tea update loop.
type Host interface {
	// Attach adds the widget as a top-most overlay and starts delivering
	// input events to it.
	Attach(w *Widget)
	// Bounds returns the current size of the surface.
	Bounds() Bounds
	// Layout runs a layout pass over the attached widgets immediately.
	Layout()
	// Animate tweens a value and calls a.Done once it reaches a.To.
	Animate(a Animation) tea.Cmd
	// After runs fn once d has elapsed.
	After(d time.Duration, fn func() tea.Cmd) tea.Cmd
	// Detach removes the widget and stops its input events.
	Detach(w *Widget)
}

// Animation describes a numeric transition driven by the host
type Animation struct {
	From     float64
	To       float64
	Duration time.Duration
	Curve    Curve
	// Step receives every intermediate value, including From and To.
	Step func(v float64)
	// Done runs after the final Step.
	Done func() tea.Cmd
}

// Value returns the animated value at progress p in [0, 1]
func (a Animation) Value(p float64) float64 {
	curve := a.Curve
	if curve == nil {
		curve = Linear
	}
	return a.From + (a.To-a.From)*curve(clamp01(p))
}

// Curve maps linear progress in [0, 1] to eased progress
type Curve func(t float64) float64

// Linear is the identity curve
func Linear(t float64) float64 {
	return clamp01(t)
}

// EaseInOut accelerates from rest and decelerates to rest
func EaseInOut(t float64) float64 {
	t = clamp01(t)
	if t < 0.5 {
		return 4 * t * t * t
	}
	u := -2*t + 2
	return 1 - u*u*u/2
}

func clamp01(t float64) float64 {
	switch {
	case t < 0:
		return 0
	case t > 1:
		return 1
	default:
		return t
	}
}
