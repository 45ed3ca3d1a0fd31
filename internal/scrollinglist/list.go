package scrollinglist

import (
	"sort"
	"strings"

	"github.com/atomicstack/scrolling-list/internal/logging/events"
	"github.com/atomicstack/scrolling-list/internal/theme"
	"github.com/atomicstack/scrolling-list/internal/widget"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// rowPadBottom is the blank line left under every row.
const rowPadBottom = 1

const emptyText = "(no items)"

var styles = theme.Default()

// Config holds the constructor-time settings of a List.
type Config struct {
	Title  string
	Width  int
	Height int
	Colors theme.Colors
}

// List owns an ordered sequence of items and the rows that render them.
// Every mutation destroys all rows and builds them again from the items, which
// also clears the selection.
type List struct {
	frame    *widget.ScrollFrame
	newRow   RowFactory
	approve  ApproveFunc
	colors   theme.Colors
	items    []Item
	rows     []Row
	selected int
}

// New creates an empty list. A nil approve callback accepts every click.
func New(cfg Config, newRow RowFactory, approve ApproveFunc) *List {
	colors := cfg.Colors.WithDefaults()
	l := &List{
		frame:    widget.NewScrollFrame(cfg.Title, cfg.Width, cfg.Height, colors.Normal, styles.Title),
		newRow:   newRow,
		approve:  approve,
		colors:   colors,
		selected: -1,
	}
	l.frame.SetPlaceholder(emptyText, styles.Empty)
	l.rebuild()
	return l
}

// AddItem appends item and scrolls it into view.
func (l *List) AddItem(item Item) {
	l.items = append(l.items, item.Clone())
	events.List.Mutate("add", len(l.items)-1, len(l.items))
	l.rebuild()
}

// UpdateItem replaces the item at index.
func (l *List) UpdateItem(index int, item Item) error {
	if err := l.checkIndex("update", index); err != nil {
		return err
	}
	l.items[index] = item.Clone()
	events.List.Mutate("update", index, len(l.items))
	l.rebuild()
	return nil
}

// DeleteItem removes the item at index; later items move up by one.
func (l *List) DeleteItem(index int) error {
	if err := l.checkIndex("delete", index); err != nil {
		return err
	}
	l.items = append(l.items[:index], l.items[index+1:]...)
	events.List.Mutate("delete", index, len(l.items))
	l.rebuild()
	return nil
}

// Select behaves as if the row at index had been clicked.
func (l *List) Select(index int) error {
	if err := l.checkIndex("select", index); err != nil {
		return err
	}
	l.selectItem(index)
	return nil
}

func (l *List) checkIndex(op string, index int) error {
	if index < 0 || index >= len(l.items) {
		err := &IndexError{Op: op, Index: index, Len: len(l.items)}
		events.List.Error(err)
		return err
	}
	return nil
}

func (l *List) rebuild() {
	for _, row := range l.rows {
		row.Destroy()
	}
	l.rows = make([]Row, 0, len(l.items))
	for i, item := range l.items {
		row := l.newRow(l.frame, i, item.Clone(), l.selectItem)
		row.Pack(widget.PackOptions{PadBottom: rowPadBottom})
		l.rows = append(l.rows, row)
	}
	// TODO: keep the selection when the selected item survives the mutation;
	// callers currently rely on every rebuild clearing it.
	l.selected = -1
	l.frame.ScrollToBottom()
	events.List.Rebuild(len(l.rows))
}

// selectItem is handed to every row as its selection-notify callback.
func (l *List) selectItem(index int) {
	if index < 0 || index >= len(l.items) {
		events.List.Error(&IndexError{Op: "notify", Index: index, Len: len(l.items)})
		return
	}
	approved := l.approve == nil || l.approve(index, l.items[index].Clone())
	events.List.Select(index, approved)
	if !approved {
		return
	}
	// The approval callback may have mutated the list.
	if index >= len(l.items) {
		return
	}
	l.selected = index
	l.restyle()
}

func (l *List) restyle() {
	for i, row := range l.rows {
		if i == l.selected {
			row.Configure(l.colors.Highlight)
		} else {
			row.Configure(l.colors.Normal)
		}
	}
}

// Selected returns the selected index, if any.
func (l *List) Selected() (int, bool) {
	if l.selected < 0 {
		return -1, false
	}
	return l.selected, true
}

func (l *List) Len() int {
	return len(l.items)
}

// Item returns a copy of the item at index.
func (l *List) Item(index int) (Item, bool) {
	if index < 0 || index >= len(l.items) {
		return nil, false
	}
	return l.items[index].Clone(), true
}

// Items returns copies of all items in order.
func (l *List) Items() []Item {
	out := make([]Item, len(l.items))
	for i, item := range l.items {
		out[i] = item.Clone()
	}
	return out
}

// Rows returns the currently materialised rows in display order.
func (l *List) Rows() []Row {
	return append([]Row(nil), l.rows...)
}

func (l *List) Colors() theme.Colors {
	return l.colors
}

// Frame exposes the scroll frame rows are packed into.
func (l *List) Frame() *widget.ScrollFrame {
	return l.frame
}

// Find returns the indices whose value for key fuzzily matches query, best
// match first. Ties keep list order.
func (l *List) Find(key, query string) []int {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" || len(l.items) == 0 {
		return nil
	}
	values := make([]string, len(l.items))
	for i, item := range l.items {
		values[i] = item[key]
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, values)
	if len(ranks) == 0 {
		return nil
	}
	sort.SliceStable(ranks, func(i, j int) bool {
		if ranks[i].Distance != ranks[j].Distance {
			return ranks[i].Distance < ranks[j].Distance
		}
		return ranks[i].OriginalIndex < ranks[j].OriginalIndex
	})
	out := make([]int, len(ranks))
	for i, rank := range ranks {
		out[i] = rank.OriginalIndex
	}
	return out
}

// SetSize resizes the list including its title row.
func (l *List) SetSize(width, height int) {
	l.frame.SetSize(width, height)
}

// Click delivers a left click at x, y relative to the list's top-left corner.
func (l *List) Click(x, y int) bool {
	return l.frame.Click(x, y)
}

// Update handles mouse input: left presses select rows and the wheel
// scrolls. Coordinates must already be relative to the list.
func (l *List) Update(msg tea.Msg) tea.Cmd {
	mouse, ok := msg.(tea.MouseMsg)
	if !ok {
		return nil
	}
	switch mouse.Button {
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelDown:
		return l.frame.Update(msg)
	case tea.MouseButtonLeft:
		if mouse.Action == tea.MouseActionPress {
			l.Click(mouse.X, mouse.Y)
		}
	}
	return nil
}

// View renders the list.
func (l *List) View() string {
	return l.frame.View()
}
