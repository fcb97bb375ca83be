package surface

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the keyboard stand-ins for the toast's touch gestures
type KeyMap struct {
	// Dismiss plays the role of a swipe down on the toast.
	Dismiss key.Binding
	// Action presses the toast's action button.
	Action key.Binding
}

// DefaultKeyMap returns the stock toast bindings
func DefaultKeyMap() KeyMap {
	return NewKeyMap([]string{"shift+down"}, []string{"ctrl+t"})
}

// NewKeyMap builds a KeyMap from key names as bubbletea reports them
func NewKeyMap(dismiss, action []string) KeyMap {
	return KeyMap{
		Dismiss: key.NewBinding(
			key.WithKeys(dismiss...),
			key.WithHelp(helpKey(dismiss), "swipe toast away"),
		),
		Action: key.NewBinding(
			key.WithKeys(action...),
			key.WithHelp(helpKey(action), "press toast button"),
		),
	}
}

func helpKey(keys []string) string {
	if len(keys) == 0 {
		return ""
	}
	return keys[0]
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Dismiss, k.Action}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
