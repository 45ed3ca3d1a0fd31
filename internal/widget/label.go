package widget

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// ClickHandler runs when the widget it is bound to receives a left click.
type ClickHandler func()

var lineBreaks = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

// Label is a single west-anchored line of text.
type Label struct {
	text     string
	style    lipgloss.Style
	handlers []ClickHandler
}

// NewLabel creates a label. A nil style renders plain text.
func NewLabel(text string, style *lipgloss.Style) *Label {
	l := &Label{text: lineBreaks.Replace(text)}
	if style != nil {
		l.style = *style
	} else {
		l.style = lipgloss.NewStyle()
	}
	return l
}

func (l *Label) Text() string {
	return l.text
}

func (l *Label) SetText(text string) {
	l.text = lineBreaks.Replace(text)
}

// Bind registers a click handler. Handlers run in registration order.
func (l *Label) Bind(h ClickHandler) {
	if h == nil {
		return
	}
	l.handlers = append(l.handlers, h)
}

// Bound reports whether any click handler is registered.
func (l *Label) Bound() bool {
	return len(l.handlers) > 0
}

// Click runs the bound handlers and reports whether the click was consumed.
func (l *Label) Click() bool {
	if len(l.handlers) == 0 {
		return false
	}
	handlers := append([]ClickHandler(nil), l.handlers...)
	for _, h := range handlers {
		h()
	}
	return true
}

// Render draws the label padded or truncated to width cells on the given
// background. Width <= 0 leaves the text at its natural size.
func (l *Label) Render(width int, bg lipgloss.TerminalColor) string {
	text := l.text
	style := l.style
	if bg != nil {
		style = style.Background(bg)
	}
	if width > 0 {
		if ansi.StringWidth(text) > width {
			text = ansi.Truncate(text, width, "…")
		}
		style = style.Width(width)
	}
	return style.Render(text)
}

func (l *Label) unbindAll() {
	l.handlers = nil
}
