package ui

import (
	"strings"

	"github.com/dustin/go-humanize/english"

	"github.com/atomicstack/tabstrip/internal/panel"
)

// defaultCardWidth is used until the terminal reports its size.
const defaultCardWidth = 64

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	now := m.clock()
	lines := []string{m.bar.View(), m.statusLine()}
	start, end := m.list.Window(m.visibleCards())
	width := m.cardWidth()
	for _, card := range m.cards[start:end] {
		lines = append(lines, card.Render(width, now))
	}
	if len(m.cards) == 0 {
		lines = append(lines, styles.Info.Render("(no beatmap sets)"))
	}
	help := m.help.ShortHelpView(append(m.bar.KeyMap().ShortHelp(), m.keys.ShortHelp()...))
	lines = append(lines, styles.Footer.Render(help))
	return strings.Join(lines, "\n")
}

func (m *Model) statusLine() string {
	text := english.Plural(len(m.cards), "beatmap set", "") + ", sorted by " + m.sortBy.String()
	line := styles.Info.Render(text)
	if m.infoMsg != "" {
		line += styles.Meta.Render("  " + m.infoMsg)
	}
	return line
}

// cardsTop is the screen line of the first card.
func (m *Model) cardsTop() int {
	return m.bar.Height() + 1
}

// visibleCards is the number of cards that fit, or 0 when the height is
// unknown and every card is drawn.
func (m *Model) visibleCards() int {
	if m.height <= 0 {
		return 0
	}
	avail := m.height - m.cardsTop() - 1
	return max(avail/panel.Height, 1)
}

func (m *Model) cardWidth() int {
	if m.width > 0 {
		return m.width
	}
	return defaultCardWidth
}
