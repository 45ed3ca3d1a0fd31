package scrollinglist

import (
	"errors"
	"reflect"
	"testing"

	"github.com/atomicstack/scrolling-list/internal/theme"
	"github.com/atomicstack/scrolling-list/internal/widget"
	"github.com/charmbracelet/lipgloss"
)

type fakeRow struct {
	index      int
	item       Item
	notify     SelectFunc
	packed     bool
	padBottom  int
	destroyed  bool
	bg         lipgloss.TerminalColor
	configures int
}

func (r *fakeRow) Pack(opts widget.PackOptions) {
	r.packed = true
	r.padBottom = opts.PadBottom
}

func (r *fakeRow) Destroy() {
	r.destroyed = true
}

func (r *fakeRow) Configure(bg lipgloss.TerminalColor) {
	r.bg = bg
	r.configures++
}

type fakeFactory struct {
	created []*fakeRow
	live    []*fakeRow
}

func (f *fakeFactory) newRow(parent *widget.ScrollFrame, index int, item Item, notify SelectFunc) Row {
	if index == 0 {
		f.live = nil
	}
	r := &fakeRow{index: index, item: item, notify: notify}
	f.created = append(f.created, r)
	f.live = append(f.live, r)
	return r
}

func (f *fakeFactory) texts() []string {
	out := make([]string, len(f.live))
	for i, r := range f.live {
		out[i] = r.item["text"]
	}
	return out
}

type approval struct {
	index int
	item  Item
}

var testColors = theme.Colors{Normal: lipgloss.Color("236"), Highlight: lipgloss.Color("239")}

func newTestList(approve ApproveFunc) (*List, *fakeFactory) {
	f := &fakeFactory{}
	l := New(Config{Title: "Test", Width: 20, Height: 10, Colors: testColors}, f.newRow, approve)
	return l, f
}

func text(s string) Item {
	return Item{"text": s, "info": ""}
}

func TestAddItemBuildsRowsInInsertionOrder(t *testing.T) {
	l, f := newTestList(nil)
	for _, s := range []string{"a", "b", "c", "d"} {
		l.AddItem(text(s))
	}
	if l.Len() != 4 || len(l.Rows()) != 4 {
		t.Fatalf("expected 4 items and rows, got %d/%d", l.Len(), len(l.Rows()))
	}
	if got := f.texts(); !reflect.DeepEqual(got, []string{"a", "b", "c", "d"}) {
		t.Fatalf("unexpected row order %v", got)
	}
	for i, r := range f.live {
		if r.index != i || !r.packed || r.destroyed {
			t.Fatalf("unexpected live row %d: %#v", i, r)
		}
		if r.padBottom != rowPadBottom {
			t.Fatalf("expected bottom margin %d, got %d", rowPadBottom, r.padBottom)
		}
	}
	// 1 + 2 + 3 + 4 rows were built; every row from earlier batches is gone.
	if len(f.created) != 10 {
		t.Fatalf("expected 10 rows built across rebuilds, got %d", len(f.created))
	}
	for _, r := range f.created[:6] {
		if !r.destroyed {
			t.Fatalf("expected stale row %d (%s) destroyed", r.index, r.item["text"])
		}
	}
}

func TestMutationScenario(t *testing.T) {
	l, f := newTestList(nil)
	l.AddItem(text("Apple"))
	l.AddItem(text("Banana"))
	l.AddItem(text("Monkey"))
	l.AddItem(text("Blood Orange"))
	if err := l.DeleteItem(2); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if got := f.texts(); !reflect.DeepEqual(got, []string{"Apple", "Banana", "Blood Orange"}) {
		t.Fatalf("unexpected rows after delete %v", got)
	}
	if err := l.UpdateItem(2, text("Orange")); err != nil {
		t.Fatalf("update: %v", err)
	}
	if got := f.texts(); !reflect.DeepEqual(got, []string{"Apple", "Banana", "Orange"}) {
		t.Fatalf("unexpected rows after update %v", got)
	}
	items := l.Items()
	if items[2]["text"] != "Orange" || items[0]["text"] != "Apple" || items[1]["text"] != "Banana" {
		t.Fatalf("unexpected items %v", items)
	}
}

func TestUpdateAndDeleteRejectOutOfRange(t *testing.T) {
	l, f := newTestList(nil)
	l.AddItem(text("a"))
	l.AddItem(text("b"))
	built := len(f.created)

	for _, idx := range []int{-1, 2, 99} {
		err := l.UpdateItem(idx, text("x"))
		if !errors.Is(err, ErrIndexOutOfRange) {
			t.Fatalf("update(%d): expected ErrIndexOutOfRange, got %v", idx, err)
		}
		var indexErr *IndexError
		if !errors.As(err, &indexErr) || indexErr.Op != "update" || indexErr.Len != 2 {
			t.Fatalf("update(%d): unexpected error detail %#v", idx, err)
		}
		if err := l.DeleteItem(idx); !errors.Is(err, ErrIndexOutOfRange) {
			t.Fatalf("delete(%d): expected ErrIndexOutOfRange, got %v", idx, err)
		}
	}
	if len(f.created) != built {
		t.Fatalf("expected no rebuild after failed mutations")
	}
	if got := f.texts(); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Fatalf("expected rows untouched, got %v", got)
	}
}

func TestDeleteShiftsIndices(t *testing.T) {
	l, f := newTestList(nil)
	for _, s := range []string{"a", "b", "c"} {
		l.AddItem(text(s))
	}
	if err := l.DeleteItem(0); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if l.Len() != 2 {
		t.Fatalf("expected length 2, got %d", l.Len())
	}
	if f.live[0].index != 0 || f.live[0].item["text"] != "b" {
		t.Fatalf("expected b to move to index 0, got %#v", f.live[0])
	}
	if err := l.UpdateItem(2, text("z")); !errors.Is(err, ErrIndexOutOfRange) {
		t.Fatalf("expected old last index to be invalid, got %v", err)
	}
}

func TestUpdateLeavesOtherRowsUnchanged(t *testing.T) {
	l, f := newTestList(nil)
	for _, s := range []string{"a", "b", "c"} {
		l.AddItem(Item{"text": s, "info": s + "-info"})
	}
	if err := l.UpdateItem(1, Item{"text": "B"}); err != nil {
		t.Fatalf("update: %v", err)
	}
	if !reflect.DeepEqual(f.live[0].item, Item{"text": "a", "info": "a-info"}) {
		t.Fatalf("row 0 changed: %#v", f.live[0].item)
	}
	if !reflect.DeepEqual(f.live[1].item, Item{"text": "B"}) {
		t.Fatalf("row 1 not updated: %#v", f.live[1].item)
	}
	if !reflect.DeepEqual(f.live[2].item, Item{"text": "c", "info": "c-info"}) {
		t.Fatalf("row 2 changed: %#v", f.live[2].item)
	}
}

func TestClickInvokesApprovalWithIndexAndItem(t *testing.T) {
	var calls []approval
	l, f := newTestList(func(index int, item Item) bool {
		calls = append(calls, approval{index, item})
		return true
	})
	for _, s := range []string{"a", "b", "c"} {
		l.AddItem(text(s))
	}
	f.live[1].notify(f.live[1].index)
	if len(calls) != 1 {
		t.Fatalf("expected one approval call, got %d", len(calls))
	}
	if calls[0].index != 1 || calls[0].item["text"] != "b" {
		t.Fatalf("unexpected approval call %#v", calls[0])
	}
}

func TestApprovedSelectionHighlightsOnlySelectedRow(t *testing.T) {
	l, f := newTestList(func(int, Item) bool { return true })
	for _, s := range []string{"a", "b", "c"} {
		l.AddItem(text(s))
	}
	f.live[2].notify(2)
	if idx, ok := l.Selected(); !ok || idx != 2 {
		t.Fatalf("expected selection 2, got %d/%v", idx, ok)
	}
	for i, r := range f.live {
		want := testColors.Normal
		if i == 2 {
			want = testColors.Highlight
		}
		if r.bg != want {
			t.Fatalf("row %d: expected %v, got %v", i, want, r.bg)
		}
	}

	f.live[0].notify(0)
	highlighted := 0
	for i, r := range f.live {
		if r.bg == testColors.Highlight {
			highlighted++
			if i != 0 {
				t.Fatalf("expected row 0 highlighted, got row %d", i)
			}
		}
	}
	if highlighted != 1 {
		t.Fatalf("expected exactly one highlighted row, got %d", highlighted)
	}
}

func TestRejectedSelectionChangesNothing(t *testing.T) {
	allow := true
	l, f := newTestList(func(int, Item) bool { return allow })
	for _, s := range []string{"a", "b"} {
		l.AddItem(text(s))
	}
	f.live[0].notify(0)
	before := []int{f.live[0].configures, f.live[1].configures}

	allow = false
	f.live[1].notify(1)
	if idx, ok := l.Selected(); !ok || idx != 0 {
		t.Fatalf("expected selection to stay on 0, got %d/%v", idx, ok)
	}
	after := []int{f.live[0].configures, f.live[1].configures}
	if !reflect.DeepEqual(before, after) {
		t.Fatalf("expected no restyle on rejection, before %v after %v", before, after)
	}
}

func TestRebuildClearsSelection(t *testing.T) {
	l, f := newTestList(nil)
	for _, s := range []string{"a", "b", "c"} {
		l.AddItem(text(s))
	}
	f.live[2].notify(2)
	if _, ok := l.Selected(); !ok {
		t.Fatalf("expected selection before mutation")
	}
	if err := l.UpdateItem(0, text("A")); err != nil {
		t.Fatalf("update: %v", err)
	}
	if idx, ok := l.Selected(); ok {
		t.Fatalf("expected selection cleared by rebuild, got %d", idx)
	}
	for i, r := range f.live {
		if r.bg == testColors.Highlight {
			t.Fatalf("row %d still highlighted after rebuild", i)
		}
	}
}

func TestDeletingLastItemClearsSelection(t *testing.T) {
	l, f := newTestList(nil)
	l.AddItem(text("only"))
	f.live[0].notify(0)
	if err := l.DeleteItem(0); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok := l.Selected(); ok {
		t.Fatalf("expected no selection on empty list")
	}
	if len(l.Rows()) != 0 {
		t.Fatalf("expected no rows, got %d", len(l.Rows()))
	}
}

func TestApprovalThatDeletesClickedItemDoesNotSelect(t *testing.T) {
	var l *List
	var f *fakeFactory
	l, f = newTestList(func(index int, _ Item) bool {
		if err := l.DeleteItem(index); err != nil {
			t.Fatalf("delete inside approval: %v", err)
		}
		return true
	})
	l.AddItem(text("a"))
	l.AddItem(text("b"))
	f.live[1].notify(1)
	if _, ok := l.Selected(); ok {
		t.Fatalf("expected no selection after the clicked item was removed")
	}
	if l.Len() != 1 {
		t.Fatalf("expected one item left, got %d", l.Len())
	}
}

func TestSelectRunsApprovalAndValidatesIndex(t *testing.T) {
	var calls []approval
	l, _ := newTestList(func(index int, item Item) bool {
		calls = append(calls, approval{index, item})
		return true
	})
	l.AddItem(text("a"))
	if err := l.Select(3); !errors.Is(err, ErrIndexOutOfRange) {
		t.Fatalf("expected index error, got %v", err)
	}
	if err := l.Select(0); err != nil {
		t.Fatalf("select: %v", err)
	}
	if len(calls) != 1 || calls[0].index != 0 {
		t.Fatalf("unexpected approval calls %#v", calls)
	}
}

func TestItemsAreCopied(t *testing.T) {
	l, f := newTestList(nil)
	src := text("a")
	l.AddItem(src)
	src["text"] = "mutated"
	if item, _ := l.Item(0); item["text"] != "a" {
		t.Fatalf("expected list to keep its own copy, got %q", item["text"])
	}
	f.live[0].item["text"] = "row mutation"
	if item, _ := l.Item(0); item["text"] != "a" {
		t.Fatalf("expected row data to be a copy, got %q", item["text"])
	}
	if _, ok := l.Item(5); ok {
		t.Fatalf("expected missing item for out of range index")
	}
}

func TestFindRanksFuzzyMatches(t *testing.T) {
	l, _ := newTestList(nil)
	for _, s := range []string{"Apple", "Banana", "Blood Orange", "Orange"} {
		l.AddItem(text(s))
	}
	got := l.Find("text", "orange")
	if !reflect.DeepEqual(got, []int{3, 2}) {
		t.Fatalf("expected exact match first, got %v", got)
	}
	if got := l.Find("text", "bna"); !reflect.DeepEqual(got, []int{1}) {
		t.Fatalf("expected fuzzy match on Banana, got %v", got)
	}
	if got := l.Find("text", "  "); got != nil {
		t.Fatalf("expected nil for blank query, got %v", got)
	}
	if got := l.Find("missing", "a"); got != nil {
		t.Fatalf("expected nil for unknown key, got %v", got)
	}
}

func TestNewFillsDefaultColours(t *testing.T) {
	l := New(Config{}, (&fakeFactory{}).newRow, nil)
	if l.Colors() != theme.DefaultColors() {
		t.Fatalf("expected default colours, got %#v", l.Colors())
	}
}
