package toast

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/toaster/internal/types"
)

// Metrics holds the spacing used to lay a toast out
type Metrics struct {
	HorizontalPadding int
	VerticalPadding   int
	// TextSpacing separates the title from the message.
	TextSpacing      int
	HorizontalMargin int
	BottomMargin     int
}

// DefaultMetrics returns the stock toast metrics
func DefaultMetrics() Metrics {
	return Metrics{
		HorizontalPadding: 16,
		VerticalPadding:   16,
		TextSpacing:       2,
		HorizontalMargin:  32,
		BottomMargin:      64,
	}
}

// Rect is a box relative to the toast's top-left corner
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Contains reports whether the point lies inside the rect
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Frame is the result of a layout pass. Rects of absent elements are zero.
type Frame struct {
	Width  int
	Height int

	Icon    Rect
	Text    Rect
	Title   Rect
	Message Rect
	Button  Rect

	HasIcon   bool
	HasTitle  bool
	HasButton bool
}

func size(s string) (int, int) {
	return lipgloss.Width(s), lipgloss.Height(s)
}

// computeFrame lays out the icon, text stack and button. The icon leads and
// the button trails, both centered on the content row; the text stack sits
// between them and takes whatever width is left.
func computeFrame(cfg types.Toast, mode types.SizingMode, m Metrics, b Bounds) Frame {
	hp, vp := m.HorizontalPadding, m.VerticalPadding
	f := Frame{
		HasIcon:   cfg.Icon != nil,
		HasTitle:  cfg.HasTitle(),
		HasButton: cfg.Action != nil,
	}

	var iconW, iconH, titleW, titleH, btnW, btnH int
	if f.HasIcon {
		iconW, iconH = size(cfg.Icon.Glyph)
	}
	if f.HasTitle {
		titleW, titleH = size(cfg.TitleText())
	}
	if f.HasButton {
		btnW, btnH = size(cfg.Action.Label)
	}
	msgW, msgH := size(cfg.Message)

	textW := max(titleW, msgW)
	textH := msgH
	if f.HasTitle {
		textH += titleH + m.TextSpacing
	}
	contentH := max(textH, iconH, btnH)
	f.Height = vp + contentH + vp

	textX := hp
	if f.HasIcon {
		textX += iconW + hp
	}
	trailing := hp
	if f.HasButton {
		trailing += btnW + hp
	}

	switch mode {
	case types.ContentWidth:
		f.Width = textX + textW + trailing
	default:
		f.Width = max(b.Width-2*m.HorizontalMargin, 0)
	}

	textArea := max(f.Width-textX-trailing, 0)
	f.Text = Rect{X: textX, Y: vp + (contentH-textH)/2, Width: textArea, Height: textH}
	if f.HasTitle {
		f.Title = Rect{X: textX, Y: f.Text.Y, Width: min(titleW, textArea), Height: titleH}
	}
	f.Message = Rect{X: textX, Y: f.Text.Y + textH - msgH, Width: min(msgW, textArea), Height: msgH}

	if f.HasIcon {
		f.Icon = Rect{X: hp, Y: vp + (contentH-iconH)/2, Width: iconW, Height: iconH}
	}
	if f.HasButton {
		// A frame too narrow for the button squeezes it between the text inset
		// and the right edge.
		f.Button = clipX(Rect{
			X:      f.Width - hp - btnW,
			Y:      f.Text.Y + (textH-btnH)/2,
			Width:  btnW,
			Height: btnH,
		}, textX, f.Width)
	}

	return f
}

// clipX keeps r inside the columns [lo, hi)
func clipX(r Rect, lo, hi int) Rect {
	r.X = max(r.X, lo)
	r.Width = max(min(r.Width, hi-r.X), 0)
	return r
}
