package types

// Toast describes what a toast notification displays.
// A nil Icon, Title or Action suppresses the corresponding element.
type Toast struct {
	Icon    *Icon
	Title   *string
	Message string
	Action  *Action
}

// Icon is a leading image shown before the text. On a terminal it is a glyph.
type Icon struct {
	Glyph string
}

// Action is the inline call-to-action button of a toast
type Action struct {
	Label    string
	Callback func()
}

// HasTitle reports whether a title row should be rendered.
// An empty but non-nil title still counts as present.
func (t Toast) HasTitle() bool {
	return t.Title != nil
}

// TitleText returns the title, or "" when there is none
func (t Toast) TitleText() string {
	if t.Title == nil {
		return ""
	}
	return *t.Title
}
