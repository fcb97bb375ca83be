package styles

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestNew(t *testing.T) {
	s := New()
	if s == nil {
		t.Fatal("New() returned nil")
	}
}

func TestSwitch(t *testing.T) {
	s := New()

	tests := []struct {
		name string
		on   bool
		want string
	}{
		{"on", true, "[●] on"},
		{"off", false, "[ ] off"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ansi.Strip(s.Switch(tt.on)); got != tt.want {
				t.Errorf("Switch(%v) = %q, want %q", tt.on, got, tt.want)
			}
		})
	}
}

func TestThemeColors(t *testing.T) {
	// Verify colors are defined
	colors := []struct {
		name  string
		color string
	}{
		{"Base", string(Base)},
		{"Crust", string(Crust)},
		{"Text", string(Text)},
		{"Blue", string(Blue)},
		{"Green", string(Green)},
	}

	for _, c := range colors {
		t.Run(c.name, func(t *testing.T) {
			if c.color == "" {
				t.Errorf("%s color is empty", c.name)
			}
			// Catppuccin colors start with #
			if c.color[0] != '#' {
				t.Errorf("%s color doesn't start with #: %s", c.name, c.color)
			}
		})
	}
}
