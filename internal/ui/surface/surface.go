// Package surface hosts toast widgets on a Bubble Tea program. It owns the
// terminal bounds, drives animations with frame ticks, runs delayed
// callbacks and paints attached toasts over the rest of the view.
package surface

import (
	"log/slog"
	"math"
	"slices"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
	"github.com/riordanpawley/toaster/internal/ui/toast"
)

// DefaultFrameRate is the animation frame rate when none is configured
const DefaultFrameRate = 60

type frameMsg struct {
	id int
	at time.Time
}

type timerMsg struct {
	fn func() tea.Cmd
}

type tween struct {
	anim  toast.Animation
	start time.Time
}

// Surface implements toast.Host
type Surface struct {
	width   int
	height  int
	widgets []*toast.Widget

	tweens        map[int]*tween
	nextID        int
	frameInterval time.Duration

	keys   KeyMap
	now    func() time.Time
	logger *slog.Logger
}

// New creates an empty surface. A frameRate of zero or less uses DefaultFrameRate.
func New(keys KeyMap, frameRate int, logger *slog.Logger) *Surface {
	if frameRate <= 0 {
		frameRate = DefaultFrameRate
	}
	return &Surface{
		tweens:        make(map[int]*tween),
		frameInterval: time.Duration(harmonica.FPS(frameRate) * float64(time.Second)),
		keys:          keys,
		now:           time.Now,
		logger:        logger,
	}
}

// Attach adds w on top of any other attached toast
func (s *Surface) Attach(w *toast.Widget) {
	if slices.Contains(s.widgets, w) {
		return
	}
	s.widgets = append(s.widgets, w)
	s.logger.Debug("toast attached", "count", len(s.widgets))
}

// Detach removes w; it receives no further input
func (s *Surface) Detach(w *toast.Widget) {
	s.widgets = slices.DeleteFunc(s.widgets, func(o *toast.Widget) bool { return o == w })
	s.logger.Debug("toast detached", "count", len(s.widgets))
}

// Bounds returns the terminal size
func (s *Surface) Bounds() toast.Bounds {
	return toast.Bounds{Width: s.width, Height: s.height}
}

// Layout lays every attached toast out against the current bounds
func (s *Surface) Layout() {
	b := s.Bounds()
	for _, w := range s.widgets {
		w.Layout(b)
	}
}

// Animate starts a tween and returns the command for its first frame
func (s *Surface) Animate(a toast.Animation) tea.Cmd {
	id := s.nextID
	s.nextID++
	s.tweens[id] = &tween{anim: a, start: s.now()}

	if a.Step != nil {
		a.Step(a.From)
	}
	if a.Duration <= 0 {
		at := s.now()
		return func() tea.Msg { return frameMsg{id: id, at: at} }
	}
	return s.tick(id)
}

// After runs fn on the update loop once d has elapsed
func (s *Surface) After(d time.Duration, fn func() tea.Cmd) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return timerMsg{fn: fn}
	})
}

func (s *Surface) tick(id int) tea.Cmd {
	return tea.Tick(s.frameInterval, func(t time.Time) tea.Msg {
		return frameMsg{id: id, at: t}
	})
}

// Update handles surface messages and routes input to the top-most toast.
// handled reports whether msg was consumed and should not reach the rest of
// the program.
func (s *Surface) Update(msg tea.Msg) (cmd tea.Cmd, handled bool) {
	switch msg := msg.(type) {
	case frameMsg:
		return s.advance(msg), true

	case timerMsg:
		if msg.fn == nil {
			return nil, true
		}
		return msg.fn(), true

	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
		s.Layout()
		return nil, false

	case tea.KeyMsg:
		top := s.Active()
		if top == nil {
			return nil, false
		}
		switch {
		case key.Matches(msg, s.keys.Dismiss):
			return top.HandleEvent(toast.EventSwipeDown), true
		case key.Matches(msg, s.keys.Action) && top.Frame().HasButton:
			return top.HandleEvent(toast.EventTapAction), true
		}

	case tea.MouseMsg:
		return s.handleMouse(msg)
	}

	return nil, false
}

func (s *Surface) advance(msg frameMsg) tea.Cmd {
	t, ok := s.tweens[msg.id]
	if !ok {
		return nil
	}

	p := 1.0
	if t.anim.Duration > 0 {
		p = float64(msg.at.Sub(t.start)) / float64(t.anim.Duration)
	}

	if p < 1 {
		if t.anim.Step != nil {
			t.anim.Step(t.anim.Value(p))
		}
		return s.tick(msg.id)
	}

	delete(s.tweens, msg.id)
	if t.anim.Step != nil {
		t.anim.Step(t.anim.To)
	}
	if t.anim.Done == nil {
		return nil
	}
	return t.anim.Done()
}

func (s *Surface) handleMouse(msg tea.MouseMsg) (tea.Cmd, bool) {
	top := s.Active()
	if top == nil || msg.Action != tea.MouseActionPress {
		return nil, false
	}

	x, y := s.Origin(top)
	f := top.Frame()
	lx, ly := msg.X-x, msg.Y-y
	if !(toast.Rect{Width: f.Width, Height: f.Height}).Contains(lx, ly) {
		return nil, false
	}

	switch msg.Button {
	case tea.MouseButtonWheelDown:
		return top.HandleEvent(toast.EventSwipeDown), true
	case tea.MouseButtonLeft:
		if f.HasButton && f.Button.Contains(lx, ly) {
			return top.HandleEvent(toast.EventTapAction), true
		}
		return nil, true
	}
	return nil, true
}

// Origin returns the screen position of w's top-left corner. Toasts are
// centered horizontally and their bottom edge sits BottomOffset cells above
// the bottom of the surface.
func (s *Surface) Origin(w *toast.Widget) (x, y int) {
	f := w.Frame()
	x = max((s.width-f.Width)/2, 0)
	bottom := s.height - int(math.Round(w.BottomOffset()))
	return x, bottom - f.Height
}

// Active returns the top-most attached toast, or nil
func (s *Surface) Active() *toast.Widget {
	if len(s.widgets) == 0 {
		return nil
	}
	return s.widgets[len(s.widgets)-1]
}

// Len returns the number of attached toasts
func (s *Surface) Len() int {
	return len(s.widgets)
}

// Animating reports whether any tween is still running
func (s *Surface) Animating() bool {
	return len(s.tweens) > 0
}

// Keys returns the surface key bindings
func (s *Surface) Keys() KeyMap {
	return s.keys
}
