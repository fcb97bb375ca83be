package surface

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

const resetStyle = "\x1b[0m"

// Compose paints the attached toasts over base, oldest first. Rows that fall
// outside the surface are clipped, so a toast below the fold draws nothing.
func (s *Surface) Compose(base string) string {
	if len(s.widgets) == 0 || s.width <= 0 || s.height <= 0 {
		return base
	}

	lines := strings.Split(base, "\n")
	for len(lines) < s.height {
		lines = append(lines, "")
	}

	for _, w := range s.widgets {
		view := w.View()
		if view == "" {
			continue
		}
		x, y := s.Origin(w)
		width := min(w.Frame().Width, s.width-x)
		for i, row := range strings.Split(view, "\n") {
			r := y + i
			if r < 0 || r >= s.height {
				continue
			}
			if ansi.StringWidth(row) > width {
				row = ansi.Truncate(row, width, "")
			}
			lines[r] = splice(lines[r], x, width, row)
		}
	}

	return strings.Join(lines, "\n")
}

// splice replaces width cells of line starting at column x with overlay
func splice(line string, x, width int, overlay string) string {
	left := ansi.Truncate(line, x, "")
	if lw := ansi.StringWidth(left); lw < x {
		left += strings.Repeat(" ", x-lw)
	}
	if strings.Contains(left, "\x1b") {
		left += resetStyle
	}
	right := ansi.TruncateLeft(line, x+width, "")
	return left + overlay + right
}
