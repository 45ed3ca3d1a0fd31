package widget

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// PackOptions controls how a widget is placed in a ScrollFrame.
type PackOptions struct {
	// PadBottom is the number of blank lines left below the widget.
	PadBottom int
}

// Packable is anything a ScrollFrame can lay out.
type Packable interface {
	// Render draws the widget at the given width.
	Render(width int) string
	// Click delivers a left click on the given line of the rendered output.
	Click(line int) bool
}

// Frame is a filled rectangle that stacks child labels vertically.
type Frame struct {
	parent    *ScrollFrame
	bg        lipgloss.TerminalColor
	children  []*Label
	handlers  []ClickHandler
	destroyed bool
}

// NewFrame creates a frame owned by parent. The frame is not visible until
// it is packed.
func NewFrame(parent *ScrollFrame, bg lipgloss.TerminalColor) *Frame {
	return &Frame{parent: parent, bg: bg}
}

// Add appends a child label below the existing children.
func (f *Frame) Add(l *Label) {
	if f.destroyed || l == nil {
		return
	}
	f.children = append(f.children, l)
	f.touch()
}

// Children returns the frame's labels in display order.
func (f *Frame) Children() []*Label {
	return append([]*Label(nil), f.children...)
}

// Bind registers a click handler on the frame itself.
func (f *Frame) Bind(h ClickHandler) {
	if f.destroyed || h == nil {
		return
	}
	f.handlers = append(f.handlers, h)
}

// Configure changes the frame background.
func (f *Frame) Configure(bg lipgloss.TerminalColor) {
	if f.destroyed {
		return
	}
	f.bg = bg
}

func (f *Frame) Background() lipgloss.TerminalColor {
	return f.bg
}

// Pack places the frame at the end of its parent's layout flow.
func (f *Frame) Pack(opts PackOptions) {
	if f.destroyed || f.parent == nil {
		return
	}
	f.parent.Pack(f, opts)
}

// Destroy removes the frame from its parent and drops its children and
// bindings. Destroying twice is a no-op.
func (f *Frame) Destroy() {
	if f.destroyed {
		return
	}
	f.destroyed = true
	if f.parent != nil {
		f.parent.Forget(f)
	}
	for _, child := range f.children {
		child.unbindAll()
	}
	f.children = nil
	f.handlers = nil
}

func (f *Frame) Destroyed() bool {
	return f.destroyed
}

// Height is the number of lines the frame occupies.
func (f *Frame) Height() int {
	if len(f.children) == 0 {
		return 1
	}
	return len(f.children)
}

// Render implements Packable.
func (f *Frame) Render(width int) string {
	if len(f.children) == 0 {
		return NewLabel("", nil).Render(width, f.bg)
	}
	lines := make([]string, len(f.children))
	for i, child := range f.children {
		lines[i] = child.Render(width, f.bg)
	}
	return strings.Join(lines, "\n")
}

// Click implements Packable. A bound child on the clicked line takes the
// click; otherwise the frame's own handlers run.
func (f *Frame) Click(line int) bool {
	if f.destroyed {
		return false
	}
	if line >= 0 && line < len(f.children) && f.children[line].Bound() {
		return f.children[line].Click()
	}
	if len(f.handlers) == 0 {
		return false
	}
	handlers := append([]ClickHandler(nil), f.handlers...)
	for _, h := range handlers {
		h()
	}
	return true
}

func (f *Frame) touch() {
	if f.parent != nil {
		f.parent.invalidate()
	}
}
