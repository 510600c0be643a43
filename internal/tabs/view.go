package tabs

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/atomicstack/tabstrip/internal/theme"
)

const (
	underlineGlyph = "─"
	selectedMarker = "•"
	// popupFirstRow is the bar-local line of the first dropdown row: the tab
	// row, the underline row and the filter line come first.
	popupFirstRow = 3
)

// View renders the tab row, the underline row and, when open, the popup.
func (m *Model[T]) View() string {
	now := m.ctl.clock()
	lines := []string{m.tabRow(now), m.underlineRow(now)}
	if m.ctl.dropdown.IsOpen() {
		lines = append(lines, m.popupLines(now)...)
	}
	return strings.Join(lines, "\n")
}

func (m *Model[T]) tabRow(now time.Time) string {
	c := m.ctl
	var b strings.Builder
	x := 0
	for i, s := range c.spans {
		b.WriteString(strings.Repeat(" ", s.start-x))
		tab := c.entries[i].tab
		style := lipgloss.NewStyle().
			Foreground(theme.Color(tab.TextColor(now))).
			Bold(tab.Bold())
		b.WriteString(style.Render(tab.Label()))
		x = s.end
	}
	if !c.HeaderVisible() {
		return b.String()
	}
	if pad := c.headerStart() - x; pad > 0 {
		b.WriteString(strings.Repeat(" ", pad))
	}
	h := c.dropdown.header
	header := lipgloss.NewStyle().
		Foreground(theme.Color(h.fg.Value(now))).
		Background(theme.Color(h.surface.Value(now))).
		Width(c.reserve).
		Align(lipgloss.Center).
		Render(headerGlyph)
	b.WriteString(header)
	return b.String()
}

func (m *Model[T]) underlineRow(now time.Time) string {
	c := m.ctl
	var b strings.Builder
	x := 0
	for i, s := range c.spans {
		b.WriteString(strings.Repeat(" ", s.start-x))
		tab := c.entries[i].tab
		opacity := tab.UnderlineOpacity(now)
		if opacity < 0.05 {
			b.WriteString(strings.Repeat(" ", s.end-s.start))
		} else {
			col := blend(c.palette.Background, c.palette.Highlight, opacity)
			b.WriteString(lipgloss.NewStyle().
				Foreground(theme.Color(col)).
				Render(strings.Repeat(underlineGlyph, s.end-s.start)))
		}
		x = s.end
	}
	return b.String()
}

func (m *Model[T]) popupLines(now time.Time) []string {
	c := m.ctl
	d := c.dropdown
	width := d.popupWidth()
	left := c.barWidth() - width
	if left < 0 {
		left = 0
	}
	indent := strings.Repeat(" ", left)
	menu := lipgloss.NewStyle().
		Background(theme.Color(c.palette.PopupBackground)).
		Width(width)

	lines := make([]string, 0, 1+d.maxRows)
	lines = append(lines, indent+menu.Render(ansi.Truncate(d.filter.View(), width, "…")))

	start, end := d.window()
	if start == end {
		empty := menu.Foreground(theme.Color(c.palette.Muted)).Italic(true)
		return append(lines, indent+empty.Render(" (no matches)"))
	}
	for _, idx := range d.visible[start:end] {
		row := d.rows[idx]
		marker := " "
		if row.selected {
			marker = selectedMarker
		}
		text := ansi.Truncate(" "+marker+" "+row.item.Label, width, "…")
		style := lipgloss.NewStyle().
			Width(width).
			Foreground(theme.Color(row.fg.Value(now))).
			Background(theme.Color(row.bg.Value(now))).
			Bold(row.selected)
		lines = append(lines, indent+style.Render(text))
	}
	return lines
}

func blend(from, to colorful.Color, t float64) colorful.Color {
	return from.BlendRgb(to, t).Clamped()
}
