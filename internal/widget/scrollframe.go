package widget

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type packedWidget struct {
	widget Packable
	opts   PackOptions
}

type span struct {
	widget Packable
	start  int
	height int
}

// ScrollFrame is a titled, vertically scrolling container. Children are
// stacked top to bottom in the order they were packed.
type ScrollFrame struct {
	title       *Label
	titleBg     lipgloss.TerminalColor
	placeholder *Label
	vp          viewport.Model
	width       int
	height      int
	packed      []packedWidget
	layout      []span
	dirty       bool
}

// NewScrollFrame creates a scroll frame. The title row is omitted when title
// is empty. A height <= 0 sizes the viewport to its content.
func NewScrollFrame(title string, width, height int, titleBg lipgloss.TerminalColor, titleStyle *lipgloss.Style) *ScrollFrame {
	s := &ScrollFrame{
		titleBg: titleBg,
		vp:      viewport.New(width, 0),
	}
	if strings.TrimSpace(title) != "" {
		s.title = NewLabel(title, titleStyle)
	}
	s.SetSize(width, height)
	return s
}

// Title returns the title label, or nil when the frame has no title row.
func (s *ScrollFrame) Title() *Label {
	return s.title
}

// SetSize resizes the frame including the title row. A frame scrolled to
// the bottom stays there; otherwise the offset is clamped to the new range.
func (s *ScrollFrame) SetSize(width, height int) {
	if width < 0 {
		width = 0
	}
	wasBottom := s.vp.AtBottom()
	s.width = width
	s.height = height
	s.vp.Width = width
	s.dirty = true
	s.Refresh()
	if wasBottom {
		s.vp.GotoBottom()
	} else {
		s.vp.SetYOffset(s.vp.YOffset)
	}
}

// SetPlaceholder sets the line shown while nothing is packed. An empty text
// removes it.
func (s *ScrollFrame) SetPlaceholder(text string, style *lipgloss.Style) {
	switch {
	case strings.TrimSpace(text) == "":
		s.placeholder = nil
	case s.placeholder == nil:
		s.placeholder = NewLabel(text, style)
	default:
		s.placeholder.SetText(text)
	}
	s.dirty = true
}

func (s *ScrollFrame) Width() int {
	return s.width
}

// Pack appends w to the layout flow. Packing a widget that is already packed
// moves it to the end.
func (s *ScrollFrame) Pack(w Packable, opts PackOptions) {
	if w == nil {
		return
	}
	s.remove(w)
	if opts.PadBottom < 0 {
		opts.PadBottom = 0
	}
	s.packed = append(s.packed, packedWidget{widget: w, opts: opts})
	s.dirty = true
}

// Forget removes w from the layout flow.
func (s *ScrollFrame) Forget(w Packable) {
	if s.remove(w) {
		s.dirty = true
	}
}

// Packed returns the packed widgets in display order.
func (s *ScrollFrame) Packed() []Packable {
	out := make([]Packable, len(s.packed))
	for i, p := range s.packed {
		out[i] = p.widget
	}
	return out
}

func (s *ScrollFrame) remove(w Packable) bool {
	for i, p := range s.packed {
		if p.widget == w {
			s.packed = append(s.packed[:i], s.packed[i+1:]...)
			return true
		}
	}
	return false
}

func (s *ScrollFrame) invalidate() {
	s.dirty = true
}

// Refresh re-renders every packed widget into the viewport and recomputes
// the line spans used for hit-testing. The scroll offset is kept unless the
// content shrank below it.
func (s *ScrollFrame) Refresh() {
	lines := make([]string, 0, len(s.packed)*2)
	layout := make([]span, 0, len(s.packed))
	for _, p := range s.packed {
		rendered := strings.Split(p.widget.Render(s.width), "\n")
		layout = append(layout, span{widget: p.widget, start: len(lines), height: len(rendered)})
		lines = append(lines, rendered...)
		for i := 0; i < p.opts.PadBottom; i++ {
			lines = append(lines, "")
		}
	}
	if len(s.packed) == 0 && s.placeholder != nil {
		lines = append(lines, s.placeholder.Render(s.width, nil))
	}
	s.layout = layout
	s.vp.Height = s.viewportHeight(len(lines))
	s.vp.SetContent(strings.Join(lines, "\n"))
	s.dirty = false
}

func (s *ScrollFrame) viewportHeight(contentLines int) int {
	if s.height <= 0 {
		if contentLines < 1 {
			return 1
		}
		return contentLines
	}
	h := s.height - s.titleRows()
	if h < 1 {
		return 1
	}
	return h
}

func (s *ScrollFrame) titleRows() int {
	if s.title == nil {
		return 0
	}
	return 1
}

// ScrollToBottom settles the layout and moves the viewport to its maximum
// offset.
func (s *ScrollFrame) ScrollToBottom() {
	s.Refresh()
	s.vp.GotoBottom()
}

func (s *ScrollFrame) AtBottom() bool {
	return s.vp.AtBottom()
}

func (s *ScrollFrame) YOffset() int {
	return s.vp.YOffset
}

// SetYOffset scrolls to the given content line, clamped to the valid range.
func (s *ScrollFrame) SetYOffset(n int) {
	if s.dirty {
		s.Refresh()
	}
	s.vp.SetYOffset(n)
}

// ContentHeight is the number of content lines including margins.
func (s *ScrollFrame) ContentHeight() int {
	if s.dirty {
		s.Refresh()
	}
	return s.vp.TotalLineCount()
}

// Update forwards mouse wheel events to the viewport. Other messages are
// ignored; keyboard scrolling is left to the host.
func (s *ScrollFrame) Update(msg tea.Msg) tea.Cmd {
	mouse, ok := msg.(tea.MouseMsg)
	if !ok {
		return nil
	}
	if mouse.Button != tea.MouseButtonWheelUp && mouse.Button != tea.MouseButtonWheelDown {
		return nil
	}
	if s.dirty {
		s.Refresh()
	}
	var cmd tea.Cmd
	s.vp, cmd = s.vp.Update(msg)
	return cmd
}

// Click dispatches a left click at x, y (relative to the frame's top-left
// corner) and reports whether a widget consumed it.
func (s *ScrollFrame) Click(x, y int) bool {
	if x < 0 || y < 0 || (s.width > 0 && x >= s.width) {
		return false
	}
	if s.dirty {
		s.Refresh()
	}
	row := y
	if s.title != nil {
		if row == 0 {
			return s.title.Click()
		}
		row--
	}
	if row >= s.vp.Height {
		return false
	}
	line := s.vp.YOffset + row
	for _, sp := range s.layout {
		if line >= sp.start && line < sp.start+sp.height {
			return sp.widget.Click(line - sp.start)
		}
	}
	return false
}

// View renders the title row followed by the visible part of the content.
func (s *ScrollFrame) View() string {
	s.Refresh()
	body := s.vp.View()
	if s.title == nil {
		return body
	}
	return s.title.Render(s.width, s.titleBg) + "\n" + body
}
