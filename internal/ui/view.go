package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

const footerHint = "click select  wheel scroll  q quit"

// View implements tea.Model.
func (m *Model) View() string {
	if m.list == nil {
		return ""
	}
	body := lipgloss.NewStyle().Padding(0, m.padX).Render(m.list.View())
	lines := make([]string, 0, 8)
	for i := 0; i < m.padY; i++ {
		lines = append(lines, "")
	}
	lines = append(lines, body)
	lines = append(lines, m.statusLine())
	if m.showFooter {
		lines = append(lines, "")
		lines = append(lines, m.renderBottom(footerHint, styles.Footer))
	}
	for i := 0; i < m.padY; i++ {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

func (m *Model) statusLine() string {
	if m.errMsg != "" {
		return m.renderBottom(fmt.Sprintf("Error: %s", m.errMsg), styles.Error)
	}
	return m.renderBottom(m.infoMsg, styles.Status)
}

func (m *Model) renderBottom(text string, style *lipgloss.Style) string {
	if text == "" {
		return ""
	}
	if w := m.listWidth(); w > 0 && lipgloss.Width(text) > w {
		text = truncate.StringWithTail(text, uint(w), "…")
	}
	text = strings.Repeat(" ", m.padX) + text
	if style == nil {
		return text
	}
	return style.Render(text)
}

// SetInfo shows message on the status row for a few seconds. The timer is
// started by the next Update (or Init when set before the program runs).
func (m *Model) SetInfo(message string) {
	m.infoMsg = message
	m.infoSeq++
	m.infoPending = true
}

// SetError shows message on the status row until the next click.
func (m *Model) SetError(message string) {
	m.errMsg = message
}
