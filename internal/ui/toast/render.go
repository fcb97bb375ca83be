package toast

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/riordanpawley/toaster/internal/ui/styles"
)

// Appearance holds the static visual properties of a toast
type Appearance struct {
	CornerRadius  int
	Background    lipgloss.TerminalColor
	Foreground    lipgloss.TerminalColor
	ButtonColor   lipgloss.TerminalColor
	ShadowOpacity float64
	ShadowRadius  int
	ShadowOffsetX int
	ShadowOffsetY int
}

// DefaultAppearance returns an opaque dark toast with a soft shadow
func DefaultAppearance() Appearance {
	return Appearance{
		CornerRadius:  24,
		Background:    styles.Crust,
		Foreground:    styles.Text,
		ButtonColor:   styles.Text,
		ShadowOpacity: 0.25,
		ShadowRadius:  5,
	}
}

type line struct {
	text  string
	style lipgloss.Style
}

// View renders the toast as exactly Frame().Width by Frame().Height cells.
// The shadow is not drawn; a terminal has no way to blend it.
func (w *Widget) View() string {
	f := w.frame
	if f.Width <= 0 || f.Height <= 0 {
		return ""
	}

	a := w.appearance
	base := lipgloss.NewStyle().Background(a.Background).Foreground(a.Foreground)
	hp, vp := w.metrics.HorizontalPadding, w.metrics.VerticalPadding
	contentH := f.Height - 2*vp

	var columns [][]string
	gap := func(width int) {
		if width > 0 {
			columns = append(columns, column(base, width, contentH, 0, nil))
		}
	}

	gap(hp)
	if f.HasIcon {
		columns = append(columns, column(base, f.Icon.Width, contentH, f.Icon.Y-vp,
			[]line{{text: w.config.Icon.Glyph, style: base}}))
		gap(f.Text.X - f.Icon.X - f.Icon.Width)
	}

	var text []line
	if f.HasTitle {
		for _, l := range strings.Split(w.config.TitleText(), "\n") {
			text = append(text, line{text: l, style: base.Bold(true)})
		}
		for i := 0; i < w.metrics.TextSpacing; i++ {
			text = append(text, line{style: base})
		}
	}
	for _, l := range strings.Split(w.config.Message, "\n") {
		text = append(text, line{text: l, style: base})
	}
	if f.Text.Width > 0 {
		columns = append(columns, column(base, f.Text.Width, contentH, f.Text.Y-vp, text))
	}

	if f.HasButton && f.Button.Width > 0 {
		gap(f.Button.X - f.Text.X - f.Text.Width)
		btn := base.Bold(true).Underline(true).Foreground(a.ButtonColor)
		var labels []line
		for _, l := range strings.Split(w.config.Action.Label, "\n") {
			labels = append(labels, line{text: l, style: btn})
		}
		columns = append(columns, column(base, f.Button.Width, contentH, f.Button.Y-vp, labels))
	}
	gap(f.Width - rightEdge(f))

	rows := make([]string, 0, f.Height)
	for i := 0; i < vp; i++ {
		rows = append(rows, base.Width(f.Width).Render(""))
	}
	for i := 0; i < contentH; i++ {
		var b strings.Builder
		for _, col := range columns {
			b.WriteString(col[i])
		}
		// Paddings are kept even when the frame is too narrow for them, so
		// the columns can overrun the frame.
		row := b.String()
		if lipgloss.Width(row) > f.Width {
			row = ansi.Truncate(row, f.Width, "")
		}
		rows = append(rows, row)
	}
	for i := 0; i < vp; i++ {
		rows = append(rows, base.Width(f.Width).Render(""))
	}

	if a.CornerRadius > 0 && vp > 0 && f.Width > 2 {
		corner := " " + base.Width(f.Width-2).Render("") + " "
		rows[0] = corner
		rows[len(rows)-1] = corner
	}

	return strings.Join(rows, "\n")
}

// rightEdge is where the last content column ends
func rightEdge(f Frame) int {
	if f.HasButton && f.Button.Width > 0 {
		return f.Button.X + f.Button.Width
	}
	return f.Text.X + f.Text.Width
}

// column renders lines into a block of width by height cells, starting at
// row top. Lines that do not fit are truncated with an ellipsis.
func column(fill lipgloss.Style, width, height, top int, lines []line) []string {
	out := make([]string, height)
	for i := range out {
		j := i - top
		if j < 0 || j >= len(lines) {
			out[i] = fill.Width(width).Render("")
			continue
		}
		l := lines[j]
		text := ansi.Truncate(l.text, width, "…")
		pad := width - lipgloss.Width(text)
		out[i] = l.style.Render(text)
		if pad > 0 {
			out[i] += fill.Width(pad).Render("")
		}
	}
	return out
}
