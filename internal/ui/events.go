package ui

import (
	"github.com/atomicstack/scrolling-list/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch keyMsg.String() {
	case "ctrl+c", "q", "esc":
		events.UI.Quit(keyMsg.String())
		return tea.Quit
	}
	return nil
}

// handleMouseMsg translates terminal coordinates into list coordinates and
// forwards clicks and wheel events that land inside the list.
func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	ev, ok := msg.(tea.MouseMsg)
	if !ok || m.list == nil {
		return nil
	}
	ev.X -= m.padX
	ev.Y -= m.padY
	switch ev.Button {
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelDown:
		return m.list.Update(ev)
	case tea.MouseButtonLeft:
		if ev.Action != tea.MouseActionPress {
			return nil
		}
		m.errMsg = ""
		hit := m.list.Click(ev.X, ev.Y)
		events.UI.Click(ev.X, ev.Y, hit)
	}
	return nil
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	events.UI.Resize(m.width, m.height)
	m.layout()
	return nil
}

func (m *Model) handleInfoExpiredMsg(msg tea.Msg) tea.Cmd {
	expired, ok := msg.(infoExpiredMsg)
	if ok && expired.seq == m.infoSeq {
		m.infoMsg = ""
	}
	return nil
}
