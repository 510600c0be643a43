package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/atomicstack/tabstrip/internal/logging/events"
	"github.com/atomicstack/tabstrip/internal/panel"
)

// accentCycle is the sequence the accent key steps through.
var accentCycle = []string{"#66ccff", "#ff66aa", "#88b300", "#ffcc22", "#aa88ff"}

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg := msg.(tea.KeyMsg)
	if m.bar.Handles(keyMsg) {
		return m.bar.Update(keyMsg)
	}
	page := m.visibleCards()
	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		m.quitting = true
		m.stopPreview()
		events.UI.Quit()
		return tea.Quit
	case key.Matches(keyMsg, m.keys.Down):
		m.moveCursor(m.list.MoveCursorBy(1))
	case key.Matches(keyMsg, m.keys.Up):
		m.moveCursor(m.list.MoveCursorBy(-1))
	case key.Matches(keyMsg, m.keys.Home):
		m.moveCursor(m.list.MoveCursorHome())
	case key.Matches(keyMsg, m.keys.End):
		m.moveCursor(m.list.MoveCursorEnd())
	case key.Matches(keyMsg, m.keys.PageUp):
		m.moveCursor(m.list.MoveCursorPageUp(page))
	case key.Matches(keyMsg, m.keys.PageDown):
		m.moveCursor(m.list.MoveCursorPageDown(page))
	case key.Matches(keyMsg, m.keys.Preview):
		if card := m.hoveredCard(); card != nil {
			return m.togglePreview(card)
		}
	case key.Matches(keyMsg, m.keys.Unicode):
		m.setPreferUnicode(!m.preferUnicode)
	case key.Matches(keyMsg, m.keys.Accent):
		m.cycleAccent()
	}
	return nil
}

func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	mouse := msg.(tea.MouseMsg)
	// The bar may close its popup and shrink, so its extent is taken first.
	onBar := mouse.Y < m.cardsTop()
	cmd := m.bar.Update(mouse)
	if onBar {
		return cmd
	}
	idx, ok := m.cardAt(mouse.Y)
	switch mouse.Action {
	case tea.MouseActionMotion:
		if ok {
			m.hoverCard(idx)
		}
	case tea.MouseActionPress:
		if ok && mouse.Button == tea.MouseButtonLeft {
			m.hoverCard(idx)
			return tea.Batch(cmd, m.togglePreview(m.cards[idx]))
		}
	}
	return cmd
}

// cardAt maps a screen line to a visible card index.
func (m *Model) cardAt(y int) (int, bool) {
	top := m.cardsTop()
	if y < top {
		return 0, false
	}
	start, end := m.list.Window(m.visibleCards())
	idx := start + (y-top)/panel.Height
	if idx >= end {
		return 0, false
	}
	return idx, true
}

func (m *Model) moveCursor(moved bool) {
	if !moved {
		return
	}
	m.syncHover()
}

func (m *Model) hoverCard(idx int) {
	if !m.list.SetCursor(idx) {
		return
	}
	m.syncHover()
}

// syncHover makes the card under the cursor the only hovered one.
func (m *Model) syncHover() {
	now := m.clock()
	for i, card := range m.cards {
		if i == m.list.Cursor {
			card.Hover(now)
		} else {
			card.Unhover(now)
		}
	}
	m.list.EnsureCursorVisible(m.visibleCards())
}

func (m *Model) hoveredCard() *panel.Card {
	if m.list.Cursor < 0 || m.list.Cursor >= len(m.cards) {
		return nil
	}
	return m.cards[m.list.Cursor]
}

func (m *Model) setPreferUnicode(v bool) {
	m.preferUnicode = v
	for _, card := range m.cards {
		card.SetPreferUnicode(v)
	}
	if m.sortBy == SortTitle || m.sortBy == SortArtist {
		m.applySort(m.sortBy)
	}
	if v {
		m.infoMsg = "showing unicode metadata"
	} else {
		m.infoMsg = "showing romanised metadata"
	}
}

func (m *Model) cycleAccent() {
	m.accentIndex = (m.accentIndex + 1) % len(accentCycle)
	col, err := colorful.Hex(accentCycle[m.accentIndex])
	if err != nil {
		return
	}
	m.bar.Control().SetAccentColor(col)
	m.infoMsg = "accent " + col.Hex()
}
