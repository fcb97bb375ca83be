// Package types contains shared types used across the application.
package types

// SizingMode decides how a toast's width is computed
type SizingMode int

const (
	// FixedWidth spans the host width minus a horizontal margin on each side
	FixedWidth SizingMode = iota
	// ContentWidth shrinks to fit the icon, text, button and paddings
	ContentWidth
)

// String returns the string representation of the mode
func (m SizingMode) String() string {
	switch m {
	case FixedWidth:
		return "fixed"
	case ContentWidth:
		return "content"
	default:
		return "unknown"
	}
}
