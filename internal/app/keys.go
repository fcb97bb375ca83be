package app

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/riordanpawley/toaster/internal/ui/surface"
)

// KeyMap holds the form bindings plus the toast gesture bindings
type KeyMap struct {
	Next   key.Binding
	Prev   key.Binding
	Toggle key.Binding
	Submit key.Binding
	Quit   key.Binding

	Toast surface.KeyMap
}

// NewKeyMap builds the form bindings around the toast bindings
func NewKeyMap(quit []string, toastKeys surface.KeyMap) KeyMap {
	return KeyMap{
		Next: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab", "next field"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("shift+tab", "previous field"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "toggle"),
		),
		Submit: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "toast!"),
		),
		Quit: key.NewBinding(
			key.WithKeys(quit...),
			key.WithHelp(firstKey(quit), "quit"),
		),
		Toast: toastKeys,
	}
}

func firstKey(keys []string) string {
	if len(keys) == 0 {
		return ""
	}
	return keys[0]
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return append([]key.Binding{k.Next, k.Submit}, append(k.Toast.ShortHelp(), k.Quit)...)
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.Toggle, k.Submit},
		k.Toast.ShortHelp(),
		{k.Quit},
	}
}
