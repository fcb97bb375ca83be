// Package styles holds the palette and lipgloss styles of the demo form.
package styles

import "github.com/charmbracelet/lipgloss"

// Styles holds all the UI styles
type Styles struct {
	// Form
	Form        lipgloss.Style
	FormTitle   lipgloss.Style
	Label       lipgloss.Style
	LabelActive lipgloss.Style
	Input       lipgloss.Style
	InputActive lipgloss.Style

	// Switches
	SwitchOn  lipgloss.Style
	SwitchOff lipgloss.Style

	// Submit button
	Button       lipgloss.Style
	ButtonActive lipgloss.Style

	// Footer
	Footer lipgloss.Style
	Status lipgloss.Style
}

// New creates a new Styles instance with Catppuccin Macchiato theme
func New() *Styles {
	return &Styles{
		Form: lipgloss.NewStyle().
			Padding(1, 4),

		FormTitle: lipgloss.NewStyle().
			Foreground(Mauve).
			Bold(true).
			MarginBottom(1),

		Label: lipgloss.NewStyle().
			Foreground(Subtext0).
			Width(16),

		LabelActive: lipgloss.NewStyle().
			Foreground(Blue).
			Bold(true).
			Width(16),

		Input: lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(Surface1).
			Padding(0, 1),

		InputActive: lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(Lavender).
			Padding(0, 1),

		SwitchOn: lipgloss.NewStyle().
			Foreground(Green).
			Bold(true),

		SwitchOff: lipgloss.NewStyle().
			Foreground(Overlay0),

		Button: lipgloss.NewStyle().
			Foreground(Text).
			Background(Surface0).
			Padding(0, 3).
			MarginTop(1),

		ButtonActive: lipgloss.NewStyle().
			Foreground(Base).
			Background(Blue).
			Bold(true).
			Padding(0, 3).
			MarginTop(1),

		Footer: lipgloss.NewStyle().
			Foreground(Overlay1).
			MarginTop(1),

		Status: lipgloss.NewStyle().
			Foreground(Yellow),
	}
}

// Switch renders an on/off indicator
func (s *Styles) Switch(on bool) string {
	if on {
		return s.SwitchOn.Render("[●] on")
	}
	return s.SwitchOff.Render("[ ] off")
}
