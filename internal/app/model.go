// Package app contains the demo form that builds and shows toasts.
package app

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/toaster/internal/config"
	"github.com/riordanpawley/toaster/internal/types"
	"github.com/riordanpawley/toaster/internal/ui/styles"
	"github.com/riordanpawley/toaster/internal/ui/surface"
	"github.com/riordanpawley/toaster/internal/ui/toast"
)

// defaultMessage replaces an empty message field
const defaultMessage = "default"

const (
	focusTitle = iota
	focusMessage
	focusButton
	focusIcon
	focusWidth
	focusSubmit
	focusCount
)

// actionLog counts presses of toast action buttons. It is shared by every
// copy of the model so callbacks can record into it.
type actionLog struct {
	presses int
}

// Model is the demo form state
type Model struct {
	title   textinput.Model
	message textinput.Model
	button  textinput.Model

	showIcon     bool
	dynamicWidth bool
	icon         string
	focusIndex   int

	surface *surface.Surface
	actions *actionLog
	shown   int

	keys   KeyMap
	help   help.Model
	styles *styles.Styles
	config *config.Config
	logger *slog.Logger

	width  int
	height int
}

// New creates the demo form with the initial values from cfg
func New(cfg *config.Config, logger *slog.Logger) Model {
	toastKeys := surface.NewKeyMap(cfg.Keys.Dismiss, cfg.Keys.Action)

	m := Model{
		title:        newInput("Title (empty hides it)", cfg.Demo.Title),
		message:      newInput("Message", cfg.Demo.Message),
		button:       newInput("Button (empty hides it)", cfg.Demo.Button),
		showIcon:     cfg.Demo.ShowIcon,
		dynamicWidth: cfg.Demo.DynamicWidth,
		icon:         cfg.Demo.Icon,
		focusIndex:   focusTitle,
		surface:      surface.New(toastKeys, cfg.Toast.FrameRate, logger),
		actions:      &actionLog{},
		keys:         NewKeyMap(cfg.Keys.Quit, toastKeys),
		help:         help.New(),
		styles:       styles.New(),
		config:       cfg,
		logger:       logger,
	}
	m.title.Focus()
	return m
}

func newInput(placeholder, value string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 120
	ti.Width = 40
	ti.SetValue(value)
	return ti
}

// Init initializes the form
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// The surface sees everything first so toast gestures win over the form.
	cmd, handled := m.surface.Update(msg)
	if handled {
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = max(msg.Width-8, 0)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, m.updateFocused(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Submit):
		return m.showToast()

	case key.Matches(msg, m.keys.Next):
		return m, m.setFocus((m.focusIndex + 1) % focusCount)

	case key.Matches(msg, m.keys.Prev):
		return m, m.setFocus((m.focusIndex - 1 + focusCount) % focusCount)

	case key.Matches(msg, m.keys.Toggle):
		switch m.focusIndex {
		case focusIcon:
			m.showIcon = !m.showIcon
			return m, nil
		case focusWidth:
			m.dynamicWidth = !m.dynamicWidth
			return m, nil
		case focusSubmit:
			return m.showToast()
		}
		if msg.Type == tea.KeyEnter {
			return m, m.setFocus(m.focusIndex + 1)
		}
	}

	return m, m.updateFocused(msg)
}

// setFocus moves the cursor to the field at i
func (m *Model) setFocus(i int) tea.Cmd {
	m.focusIndex = i
	inputs := []*textinput.Model{&m.title, &m.message, &m.button}
	var cmd tea.Cmd
	for j, in := range inputs {
		if j == i {
			cmd = in.Focus()
		} else {
			in.Blur()
		}
	}
	return cmd
}

func (m *Model) updateFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.focusIndex {
	case focusTitle:
		m.title, cmd = m.title.Update(msg)
	case focusMessage:
		m.message, cmd = m.message.Update(msg)
	case focusButton:
		m.button, cmd = m.button.Update(msg)
	}
	return cmd
}

// showToast builds a toast from the form and shows it. A toast that is still
// on screen is sent away first; only one toast is meant to be up at a time.
func (m Model) showToast() (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	if current := m.surface.Active(); current != nil {
		cmds = append(cmds, current.Dismiss())
	}

	w := toast.New(m.buildToast(), m.surface, m.sizingMode(),
		toast.WithMetrics(m.config.Metrics()),
		toast.WithTiming(m.config.Timing()),
		toast.WithAppearance(m.config.Appearance()),
		toast.WithEarlyDismiss(m.config.EarlyDismiss()),
		toast.WithLogger(m.logger),
	)
	cmds = append(cmds, w.Show())
	m.shown++

	m.logger.Info("toast shown",
		"mode", m.sizingMode(),
		"title", m.title.Value(),
		"action", m.button.Value() != "",
	)

	return m, tea.Batch(cmds...)
}

// buildToast turns the form into a toast. Empty title and button hide those
// elements and an empty message falls back to a default text.
func (m Model) buildToast() types.Toast {
	t := types.Toast{Message: m.message.Value()}
	if t.Message == "" {
		t.Message = defaultMessage
	}
	if title := m.title.Value(); title != "" {
		t.Title = &title
	}
	if m.showIcon {
		t.Icon = &types.Icon{Glyph: m.icon}
	}
	if label := m.button.Value(); label != "" {
		actions, logger := m.actions, m.logger
		t.Action = &types.Action{
			Label: label,
			Callback: func() {
				actions.presses++
				logger.Info("button pressed", "presses", actions.presses)
			},
		}
	}
	return t
}

func (m Model) sizingMode() types.SizingMode {
	if m.dynamicWidth {
		return types.ContentWidth
	}
	return types.FixedWidth
}

// View renders the form with any toast painted over it
func (m Model) View() string {
	form := m.renderForm()
	if m.width == 0 || m.height == 0 {
		return form
	}
	base := lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, form)
	return m.surface.Compose(base)
}

func (m Model) renderForm() string {
	s := m.styles
	var b strings.Builder

	b.WriteString(s.FormTitle.Render("Toaster"))
	b.WriteString("\n")

	inputs := []struct {
		label string
		input textinput.Model
	}{
		{"title", m.title},
		{"message", m.message},
		{"button", m.button},
	}
	for i, in := range inputs {
		label, box := s.Label, s.Input
		if m.focusIndex == i {
			label, box = s.LabelActive, s.InputActive
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Center, label.Render(in.label), box.Render(in.input.View())))
		b.WriteString("\n")
	}

	switches := []struct {
		label string
		on    bool
		focus int
	}{
		{"show image", m.showIcon, focusIcon},
		{"dynamic width", m.dynamicWidth, focusWidth},
	}
	for _, sw := range switches {
		label := s.Label
		if m.focusIndex == sw.focus {
			label = s.LabelActive
		}
		b.WriteString(label.Render(sw.label) + s.Switch(sw.on))
		b.WriteString("\n")
	}

	button := s.Button
	if m.focusIndex == focusSubmit {
		button = s.ButtonActive
	}
	b.WriteString(button.Render("toast!"))
	b.WriteString("\n")

	status := fmt.Sprintf("toasts shown: %d  button presses: %d", m.shown, m.actions.presses)
	b.WriteString(s.Footer.Render(s.Status.Render(status)))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return s.Form.Render(b.String())
}
