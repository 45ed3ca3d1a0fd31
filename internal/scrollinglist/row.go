package scrollinglist

import (
	"maps"

	"github.com/atomicstack/scrolling-list/internal/widget"
	"github.com/charmbracelet/lipgloss"
)

// Item is one record in the list. The list never interprets its keys; they
// are handed unchanged to the row factory and the approval callback.
type Item map[string]string

// Clone returns an independent copy of the item.
func (i Item) Clone() Item {
	return maps.Clone(i)
}

// SelectFunc is the selection-notify callback a row calls with its own index
// when it is clicked.
type SelectFunc func(index int)

// ApproveFunc decides whether a clicked row becomes the selection.
type ApproveFunc func(index int, item Item) bool

// Row is a transient view of one item. Rows are created in batches by the
// list and destroyed before the next batch is created.
type Row interface {
	// Pack places the row at the end of its parent's layout flow.
	Pack(opts widget.PackOptions)
	// Destroy releases the row's visual resources and removes it from the
	// layout flow.
	Destroy()
	// Configure changes the row background.
	Configure(bg lipgloss.TerminalColor)
}

// RowFactory builds the row for item at index inside parent. The returned
// row must call notify(index) when it, or any of its visible parts, is
// clicked; index has to be captured by value because indices are reused on
// every rebuild.
type RowFactory func(parent *widget.ScrollFrame, index int, item Item, notify SelectFunc) Row
