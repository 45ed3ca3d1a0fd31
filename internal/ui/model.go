package ui

import (
	"reflect"
	"time"

	"github.com/atomicstack/scrolling-list/internal/scrollinglist"
	"github.com/atomicstack/scrolling-list/internal/theme"
	tea "github.com/charmbracelet/bubbletea"
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// infoTTL is how long a SetInfo message stays on the status row.
const infoTTL = 5 * time.Second

// infoExpiredMsg clears the status message it was scheduled for. A newer
// SetInfo call bumps the sequence and outlives older timers.
type infoExpiredMsg struct {
	seq int
}

func tickAfter(d time.Duration, msg tea.Msg) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return msg })
}

// Options describes how the list is placed inside the terminal.
type Options struct {
	Width      int
	Height     int
	PadX       int
	PadY       int
	ShowFooter bool
}

// Model implements the Bubble Tea model hosting a single scrolling list.
type Model struct {
	list        *scrollinglist.List
	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	padX        int
	padY        int
	showFooter  bool
	infoMsg     string
	infoSeq     int
	infoPending bool
	errMsg      string

	handlers map[reflect.Type]msgHandler
	schedule func(time.Duration, tea.Msg) tea.Cmd
}

// NewModel wraps list. Width and height > 0 pin the viewport size; otherwise
// the terminal size is used once Bubble Tea reports it.
func NewModel(list *scrollinglist.List, opts Options) *Model {
	m := &Model{
		list:       list,
		padX:       max(opts.PadX, 0),
		padY:       max(opts.PadY, 0),
		showFooter: opts.ShowFooter,
		schedule:   tickAfter,
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	m.layout()
	m.registerHandlers()
	return m
}

// List exposes the hosted list.
func (m *Model) List() *scrollinglist.List {
	return m.list
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return m.expireInfo()
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if handler := m.handlerFor(msg); handler != nil {
		cmd = handler(msg)
	}
	return m, tea.Batch(cmd, m.expireInfo())
}

// expireInfo schedules the removal of a status message set since the last
// update.
func (m *Model) expireInfo() tea.Cmd {
	if !m.infoPending {
		return nil
	}
	m.infoPending = false
	return m.schedule(infoTTL, infoExpiredMsg{seq: m.infoSeq})
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.MouseMsg{}):      m.handleMouseMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(infoExpiredMsg{}):    m.handleInfoExpiredMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

// layout sizes the list to the space left after padding and the bottom rows.
func (m *Model) layout() {
	if m.list == nil {
		return
	}
	m.list.SetSize(m.listWidth(), m.listHeight())
}

func (m *Model) listWidth() int {
	if m.width <= 0 {
		return 0
	}
	return max(m.width-2*m.padX, 1)
}

func (m *Model) listHeight() int {
	if m.height <= 0 {
		return 0
	}
	return max(m.height-2*m.padY-m.bottomRows(), 1)
}

// bottomRows is the number of rows reserved under the list: one status row
// plus the optional footer and its separator.
func (m *Model) bottomRows() int {
	rows := 1
	if m.showFooter {
		rows += 2
	}
	return rows
}
