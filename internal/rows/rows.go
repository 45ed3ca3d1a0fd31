// Package rows contains ready-made row layouts for scrollinglist.List.
package rows

import (
	"github.com/atomicstack/scrolling-list/internal/scrollinglist"
	"github.com/atomicstack/scrolling-list/internal/theme"
	"github.com/atomicstack/scrolling-list/internal/widget"
	"github.com/charmbracelet/lipgloss"
)

const (
	TextKey = "text"
	InfoKey = "info"
)

var styles = theme.Default()

// FrameRow is a frame whose labels all report clicks with the same index.
type FrameRow struct {
	*widget.Frame
	index  int
	notify scrollinglist.SelectFunc
}

// Index is the position the row was built for.
func (r *FrameRow) Index() int {
	return r.index
}

// NewTextRow builds a single-line row showing item["text"] on the default
// normal background.
func NewTextRow(parent *widget.ScrollFrame, index int, item scrollinglist.Item, notify scrollinglist.SelectFunc) scrollinglist.Row {
	return newFrameRow(parent, index, notify, theme.NormalColor, widget.NewLabel(item[TextKey], styles.Label))
}

// NewDetailRow is NewTextRow with a muted second line for item["info"] when
// it is present.
func NewDetailRow(parent *widget.ScrollFrame, index int, item scrollinglist.Item, notify scrollinglist.SelectFunc) scrollinglist.Row {
	return detailRow(parent, index, item, notify, theme.NormalColor)
}

// Text returns a factory for text rows drawn on bg.
func Text(bg lipgloss.TerminalColor) scrollinglist.RowFactory {
	return func(parent *widget.ScrollFrame, index int, item scrollinglist.Item, notify scrollinglist.SelectFunc) scrollinglist.Row {
		return newFrameRow(parent, index, notify, bg, widget.NewLabel(item[TextKey], styles.Label))
	}
}

// Detail returns a factory for detail rows drawn on bg.
func Detail(bg lipgloss.TerminalColor) scrollinglist.RowFactory {
	return func(parent *widget.ScrollFrame, index int, item scrollinglist.Item, notify scrollinglist.SelectFunc) scrollinglist.Row {
		return detailRow(parent, index, item, notify, bg)
	}
}

func detailRow(parent *widget.ScrollFrame, index int, item scrollinglist.Item, notify scrollinglist.SelectFunc, bg lipgloss.TerminalColor) scrollinglist.Row {
	labels := []*widget.Label{widget.NewLabel(item[TextKey], styles.Label)}
	if info := item[InfoKey]; info != "" {
		labels = append(labels, widget.NewLabel(info, styles.Info))
	}
	return newFrameRow(parent, index, notify, bg, labels...)
}

func newFrameRow(parent *widget.ScrollFrame, index int, notify scrollinglist.SelectFunc, bg lipgloss.TerminalColor, labels ...*widget.Label) *FrameRow {
	r := &FrameRow{
		Frame:  widget.NewFrame(parent, bg),
		index:  index,
		notify: notify,
	}
	for _, label := range labels {
		r.Add(label)
	}
	r.bindCallback(index)
	return r
}

// bindCallback wires the frame and every child to the selection callback.
// The index parameter is copied into each closure.
func (r *FrameRow) bindCallback(index int) {
	r.Bind(func() { r.selectItem(index) })
	for _, child := range r.Children() {
		child.Bind(func() { r.selectItem(index) })
	}
}

func (r *FrameRow) selectItem(index int) {
	if r.notify != nil {
		r.notify(index)
	}
}
