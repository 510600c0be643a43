package tabs

import (
	"sync/atomic"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// FrameInterval is the redraw cadence while any transition is in flight.
const FrameInterval = 16 * time.Millisecond

var lastModelID int64

// SelectedMsg is emitted after the selection changes through the tab bar.
type SelectedMsg[T comparable] struct {
	Value T
	Label string
}

// FrameMsg advances tab animations. Hosts forward it to Update unchanged.
type FrameMsg struct {
	id int64
}

// Model adapts a Control to the Bubble Tea event loop: it routes mouse and
// key input, requests frames while animations run and renders the bar.
type Model[T comparable] struct {
	ctl       *Control[T]
	keys      KeyMap
	id        int64
	originX   int
	originY   int
	autoWidth bool
	hovered   *Tab
	ticking   bool
	selected  []T
}

// NewModel wraps ctl. The model does not own ctl; call ctl.Close when done.
func NewModel[T comparable](ctl *Control[T]) *Model[T] {
	m := &Model[T]{
		ctl:  ctl,
		keys: DefaultKeyMap(),
		id:   atomic.AddInt64(&lastModelID, 1),
	}
	ctl.OnSelect(func(v T) {
		m.selected = append(m.selected, v)
	})
	return m
}

func (m *Model[T]) Control() *Control[T] { return m.ctl }

// SetKeyMap replaces the default bindings.
func (m *Model[T]) SetKeyMap(k KeyMap) { m.keys = k }

func (m *Model[T]) KeyMap() KeyMap { return m.keys }

// SetOrigin records where the bar is drawn so mouse coordinates can be
// translated into bar-local cells.
func (m *Model[T]) SetOrigin(x, y int) {
	m.originX = x
	m.originY = y
}

// SetAutoWidth makes the bar follow tea.WindowSizeMsg widths.
func (m *Model[T]) SetAutoWidth(enabled bool) { m.autoWidth = enabled }

// Height is the number of lines View currently returns.
func (m *Model[T]) Height() int {
	h := 2
	d := m.ctl.dropdown
	if d.IsOpen() {
		start, end := d.window()
		rows := end - start
		if rows == 0 {
			rows = 1
		}
		h += 1 + rows
	}
	return h
}

func (m *Model[T]) Init() tea.Cmd { return nil }

// Update handles input and frame messages. Messages it does not understand
// are ignored.
func (m *Model[T]) Update(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	switch msg := msg.(type) {
	case FrameMsg:
		if msg.id != m.id {
			return nil
		}
		m.ticking = false
	case tea.WindowSizeMsg:
		if m.autoWidth {
			m.ctl.SetWidth(msg.Width - m.originX)
			m.hoverTab(-1, m.ctl.clock())
		}
	case tea.MouseMsg:
		cmds = append(cmds, m.handleMouse(msg))
	case tea.KeyMsg:
		cmds = append(cmds, m.handleKey(msg))
	}
	cmds = append(cmds, m.selectionCmd(), m.frameCmd())
	return tea.Batch(cmds...)
}

// Handles reports whether msg would be consumed as keyboard input. Hosts use
// it to decide whether to apply their own bindings.
func (m *Model[T]) Handles(msg tea.KeyMsg) bool {
	if m.ctl.dropdown.IsOpen() {
		return true
	}
	return key.Matches(msg, m.keys.Prev, m.keys.Next, m.keys.Toggle)
}

func (m *Model[T]) handleKey(msg tea.KeyMsg) tea.Cmd {
	d := m.ctl.dropdown
	if d.IsOpen() {
		switch {
		case key.Matches(msg, m.keys.Close), key.Matches(msg, m.keys.Toggle):
			d.Close()
			return nil
		case key.Matches(msg, m.keys.Up):
			d.MoveCursor(-1)
			return nil
		case key.Matches(msg, m.keys.Down):
			d.MoveCursor(1)
			return nil
		case key.Matches(msg, m.keys.Pick):
			d.Pick()
			return nil
		}
		return d.updateFilter(msg)
	}
	switch {
	case key.Matches(msg, m.keys.Prev):
		m.step(-1)
	case key.Matches(msg, m.keys.Next):
		m.step(1)
	case key.Matches(msg, m.keys.Toggle):
		if m.ctl.HeaderVisible() {
			return d.Open()
		}
	}
	return nil
}

// step moves the selection across every item, inline or overflowed.
func (m *Model[T]) step(delta int) {
	n := len(m.ctl.entries)
	if n == 0 {
		return
	}
	idx := -1
	if m.ctl.current != nil {
		idx = m.ctl.indexOf(m.ctl.current.item.Value)
	}
	switch {
	case idx < 0 && delta > 0:
		idx = 0
	case idx < 0:
		idx = n - 1
	default:
		idx = ((idx+delta)%n + n) % n
	}
	_ = m.ctl.Select(m.ctl.entries[idx].item.Value)
}

func (m *Model[T]) handleMouse(msg tea.MouseMsg) tea.Cmd {
	x := msg.X - m.originX
	y := msg.Y - m.originY
	now := m.ctl.clock()
	d := m.ctl.dropdown

	if d.IsOpen() {
		if row, ok := m.popupRowAt(x, y); ok {
			m.hoverTab(-1, now)
			d.header.Unhover(now)
			switch msg.Action {
			case tea.MouseActionMotion:
				d.HoverRow(row)
			case tea.MouseActionPress:
				if msg.Button == tea.MouseButtonLeft {
					d.PickAt(row)
				}
			}
			return nil
		}
		if msg.Action == tea.MouseActionMotion {
			d.HoverRow(-1)
		}
		if msg.Action == tea.MouseActionPress && m.inPopup(x, y) {
			return nil
		}
	}

	onBar := y == 0 || y == 1
	tab := -1
	onHeader := false
	if onBar {
		tab = m.ctl.inlineAt(x)
		onHeader = m.ctl.HeaderVisible() && x >= m.ctl.headerStart() && x < m.ctl.barWidth()
	}

	switch msg.Action {
	case tea.MouseActionMotion:
		m.hoverTab(tab, now)
		if onHeader {
			d.header.Hover(now)
		} else {
			d.header.Unhover(now)
		}
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return nil
		}
		switch {
		case onHeader:
			return d.Toggle()
		case tab >= 0:
			d.Close()
			_ = m.ctl.Select(m.ctl.entries[tab].item.Value)
		default:
			d.Close()
		}
	}
	return nil
}

// hoverTab moves hover to the inline tab at index i, or clears it when i is
// negative. The hovered tab is tracked by identity so it survives relayouts.
func (m *Model[T]) hoverTab(i int, now time.Time) {
	var next *Tab
	if i >= 0 && i < len(m.ctl.entries) {
		next = m.ctl.entries[i].tab
	}
	if next == m.hovered {
		return
	}
	if m.hovered != nil {
		m.hovered.Unhover(now)
	}
	m.hovered = next
	if next != nil {
		next.Hover(now)
	}
}

// popupLeft is the first bar-local column of the open popup.
func (m *Model[T]) popupLeft() int {
	return max(m.ctl.barWidth()-m.ctl.dropdown.popupWidth(), 0)
}

// inPopup reports whether bar-local cells fall on the popup, filter line
// included.
func (m *Model[T]) inPopup(x, y int) bool {
	left := m.popupLeft()
	if x < left || x >= left+m.ctl.dropdown.popupWidth() {
		return false
	}
	return y >= popupFirstRow-1 && y < m.Height()
}

// popupRowAt maps bar-local cells to a visible dropdown row.
func (m *Model[T]) popupRowAt(x, y int) (int, bool) {
	d := m.ctl.dropdown
	left := m.popupLeft()
	if x < left || x >= left+d.popupWidth() {
		return 0, false
	}
	start, end := d.window()
	row := y - popupFirstRow + start
	if y < popupFirstRow || row >= end {
		return 0, false
	}
	return row, true
}

func (m *Model[T]) selectionCmd() tea.Cmd {
	if len(m.selected) == 0 {
		return nil
	}
	values := m.selected
	m.selected = nil
	cmds := make([]tea.Cmd, 0, len(values))
	for _, v := range values {
		msg := SelectedMsg[T]{Value: v, Label: LabelOf(v)}
		cmds = append(cmds, func() tea.Msg { return msg })
	}
	if len(cmds) == 1 {
		return cmds[0]
	}
	return tea.Sequence(cmds...)
}

func (m *Model[T]) frameCmd() tea.Cmd {
	if m.ticking || !m.ctl.Animating(m.ctl.clock()) {
		return nil
	}
	m.ticking = true
	id := m.id
	return tea.Tick(FrameInterval, func(time.Time) tea.Msg {
		return FrameMsg{id: id}
	})
}
