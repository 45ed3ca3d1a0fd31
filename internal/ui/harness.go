package ui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Harness drives the UI model programmatically for integration tests.
// Timers scheduled by the model are held back until FireTimers is called.
type Harness struct {
	model  *Model
	timers []tea.Msg
}

// NewHarness creates a harness for the provided model.
func NewHarness(model *Model) *Harness {
	h := &Harness{model: model}
	if model != nil {
		model.schedule = h.hold
	}
	return h
}

func (h *Harness) hold(_ time.Duration, msg tea.Msg) tea.Cmd {
	h.timers = append(h.timers, msg)
	return nil
}

// Send routes a message through the model and executes any returned commands.
func (h *Harness) Send(msg tea.Msg) {
	if h.model == nil {
		return
	}
	_, cmd := h.model.Update(msg)
	h.run(cmd)
}

// Click sends a left press at the given terminal cell.
func (h *Harness) Click(x, y int) {
	h.Send(tea.MouseMsg{X: x, Y: y, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
}

// Wheel scrolls the list under the given terminal cell by one wheel step.
func (h *Harness) Wheel(x, y int, down bool) {
	button := tea.MouseButtonWheelUp
	if down {
		button = tea.MouseButtonWheelDown
	}
	h.Send(tea.MouseMsg{X: x, Y: y, Button: button, Action: tea.MouseActionPress})
}

// Resize reports a new terminal size.
func (h *Harness) Resize(width, height int) {
	h.Send(tea.WindowSizeMsg{Width: width, Height: height})
}

// FireTimers delivers every held timer message in the order it was
// scheduled.
func (h *Harness) FireTimers() {
	pending := h.timers
	h.timers = nil
	for _, msg := range pending {
		h.Send(msg)
	}
}

// PendingTimers is the number of timers waiting for FireTimers.
func (h *Harness) PendingTimers() int {
	return len(h.timers)
}

func (h *Harness) run(cmd tea.Cmd) {
	for cmd != nil {
		msg := cmd()
		switch msg := msg.(type) {
		case nil, tea.QuitMsg:
			return
		case tea.BatchMsg:
			for _, c := range msg {
				h.run(c)
			}
			return
		default:
			_, cmd = h.model.Update(msg)
		}
	}
}

// View returns the current view string.
func (h *Harness) View() string {
	if h.model == nil {
		return ""
	}
	return h.model.View()
}

// Lines returns the non-blank lines of the view with padding and trailing
// background cells trimmed.
func (h *Harness) Lines() []string {
	var out []string
	for _, line := range strings.Split(h.View(), "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// Model exposes the underlying model.
func (h *Harness) Model() *Model {
	return h.model
}
