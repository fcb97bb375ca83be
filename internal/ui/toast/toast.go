// Package toast implements a transient notification widget that slides in
// from the bottom of its host, stays for a while and slides back out.
package toast

import (
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/riordanpawley/toaster/internal/types"
)

// Timing controls the toast animations and how long it stays visible
type Timing struct {
	AnimationDuration time.Duration
	DisplayDuration   time.Duration
	Curve             Curve
}

// DefaultTiming returns the stock toast timing
func DefaultTiming() Timing {
	return Timing{
		AnimationDuration: 250 * time.Millisecond,
		DisplayDuration:   4 * time.Second,
		Curve:             EaseInOut,
	}
}

// Widget is a single-use toast. It is created by the caller, attached to its
// host by Show and detached once the exit animation of Dismiss completes.
type Widget struct {
	config     types.Toast
	host       Host
	mode       types.SizingMode
	metrics    Metrics
	timing     Timing
	appearance Appearance
	early      EarlyDismissPolicy
	logger     *slog.Logger

	state          LifecycleState
	frame          Frame
	bottomOffset   float64
	pendingDismiss bool
}

// Option customizes a Widget
type Option func(*Widget)

// WithMetrics overrides the layout metrics
func WithMetrics(m Metrics) Option {
	return func(w *Widget) { w.metrics = m }
}

// WithTiming overrides the animation and display durations
func WithTiming(t Timing) Option {
	return func(w *Widget) { w.timing = t }
}

// WithAppearance overrides the static visual properties
func WithAppearance(a Appearance) Option {
	return func(w *Widget) { w.appearance = a }
}

// WithEarlyDismiss sets how dismiss requests during the enter animation are handled
func WithEarlyDismiss(p EarlyDismissPolicy) Option {
	return func(w *Widget) { w.early = p }
}

// WithLogger sets the logger used for lifecycle events
func WithLogger(l *slog.Logger) Option {
	return func(w *Widget) { w.logger = l }
}

// New creates a toast for cfg that will attach to host when shown
func New(cfg types.Toast, host Host, mode types.SizingMode, opts ...Option) *Widget {
	w := &Widget{
		config:     cfg,
		host:       host,
		mode:       mode,
		metrics:    DefaultMetrics(),
		timing:     DefaultTiming(),
		appearance: DefaultAppearance(),
		early:      EarlyDismissQueue,
		logger:     slog.Default(),
		state:      Created,
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.timing.Curve == nil {
		w.timing.Curve = EaseInOut
	}
	w.frame = computeFrame(w.config, w.mode, w.metrics, Bounds{})
	w.bottomOffset = w.hiddenOffset()
	return w
}

// Show attaches the toast below the host's bottom edge and animates it up to
// its resting position. It does nothing unless the toast is newly created.
func (w *Widget) Show() tea.Cmd {
	if w.state != Created {
		w.logger.Debug("toast show ignored", "state", w.state)
		return nil
	}

	w.host.Attach(w)
	w.host.Layout()
	w.bottomOffset = w.hiddenOffset()
	w.setState(Presenting)

	return w.host.Animate(Animation{
		From:     w.bottomOffset,
		To:       float64(w.metrics.BottomMargin),
		Duration: w.timing.AnimationDuration,
		Curve:    w.timing.Curve,
		Step:     w.setOffset,
		Done:     w.entered,
	})
}

// Dismiss animates a visible toast off the host and detaches it. Requests in
// any other state start nothing; see EarlyDismissPolicy for the enter phase.
func (w *Widget) Dismiss() tea.Cmd {
	switch w.state {
	case Visible:
	case Presenting:
		if w.early == EarlyDismissQueue {
			w.pendingDismiss = true
			w.logger.Debug("toast dismiss queued until visible")
		} else {
			w.logger.Debug("toast dismiss dropped during enter animation")
		}
		return nil
	default:
		w.logger.Debug("toast dismiss ignored", "state", w.state)
		return nil
	}

	w.setState(Dismissing)

	return w.host.Animate(Animation{
		From:     w.bottomOffset,
		To:       w.hiddenOffset(),
		Duration: w.timing.AnimationDuration,
		Curve:    w.timing.Curve,
		Step:     w.setOffset,
		Done:     w.exited,
	})
}

// HandleEvent reacts to input routed by the host while attached
func (w *Widget) HandleEvent(ev Event) tea.Cmd {
	if !w.Attached() {
		return nil
	}

	switch ev {
	case EventSwipeDown:
		return w.Dismiss()

	case EventTapAction:
		if w.config.Action == nil {
			return nil
		}
		if w.state != Presenting && w.state != Visible {
			return nil
		}
		// The callback finishes before the exit animation starts.
		if cb := w.config.Action.Callback; cb != nil {
			cb()
		}
		return w.Dismiss()
	}

	return nil
}

// Layout recomputes the frame against the host bounds
func (w *Widget) Layout(b Bounds) {
	w.frame = computeFrame(w.config, w.mode, w.metrics, b)
}

func (w *Widget) entered() tea.Cmd {
	if w.state != Presenting {
		return nil
	}
	w.setState(Visible)

	if w.pendingDismiss {
		w.pendingDismiss = false
		return w.Dismiss()
	}
	return w.host.After(w.timing.DisplayDuration, w.Dismiss)
}

func (w *Widget) exited() tea.Cmd {
	if w.state != Dismissing {
		return nil
	}
	w.host.Detach(w)
	w.setState(Removed)
	return nil
}

func (w *Widget) setOffset(v float64) {
	w.bottomOffset = v
}

func (w *Widget) setState(s LifecycleState) {
	w.logger.Debug("toast state", "from", w.state, "to", s)
	w.state = s
}

// hiddenOffset puts the top edge of the toast on the host's bottom edge
func (w *Widget) hiddenOffset() float64 {
	return -float64(w.frame.Height)
}

// State returns the lifecycle state
func (w *Widget) State() LifecycleState {
	return w.state
}

// Attached reports whether the toast is currently on its host
func (w *Widget) Attached() bool {
	return w.state == Presenting || w.state == Visible || w.state == Dismissing
}

// Frame returns the result of the last layout pass
func (w *Widget) Frame() Frame {
	return w.frame
}

// BottomOffset is the distance from the host's bottom edge to the toast's
// bottom edge, positive upward
func (w *Widget) BottomOffset() float64 {
	return w.bottomOffset
}

// Configuration returns what the toast displays
func (w *Widget) Configuration() types.Toast {
	return w.config
}

// Mode returns the sizing mode
func (w *Widget) Mode() types.SizingMode {
	return w.mode
}

// Metrics returns the layout metrics
func (w *Widget) Metrics() Metrics {
	return w.metrics
}

// Appearance returns the static visual properties
func (w *Widget) Appearance() Appearance {
	return w.appearance
}
