// Package panel renders beatmap set cards for the browser listing.
package panel

import (
	"cmp"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	humanize "github.com/dustin/go-humanize"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/atomicstack/tabstrip/internal/anim"
	"github.com/atomicstack/tabstrip/internal/format/table"
	"github.com/atomicstack/tabstrip/internal/logging/events"
	"github.com/atomicstack/tabstrip/internal/tabs"
	"github.com/atomicstack/tabstrip/internal/theme"
)

const (
	// HoverDuration is the border fade length.
	HoverDuration = 120 * time.Millisecond
	// Height is the rendered line count including the border.
	Height = 7
	// MinWidth is the narrowest width Render honours.
	MinWidth = 24

	playGlyph       = "▶"
	stopGlyph       = "■"
	favouriteGlyph  = "♥"
	difficultyGlyph = "●"
	progressGlyph   = "━"
)

// Card is one beatmap set in the listing. It fades its border towards the
// accent color while hovered and shows a progress bar while previewing.
type Card struct {
	set           BeatmapSet
	preferUnicode bool
	palette       theme.Palette
	styles        *theme.Styles

	accent  colorful.Color
	hovered bool
	border  anim.Tween[colorful.Color]

	playing  bool
	progress float64
}

var (
	_ tabs.Colorable = (*Card)(nil)
	_ tabs.Hoverable = (*Card)(nil)
)

// New builds a resting card for set.
func New(set BeatmapSet, palette theme.Palette) *Card {
	return &Card{
		set:     set,
		palette: palette,
		styles:  theme.Default(),
		accent:  palette.Accent,
		border:  anim.NewColor(palette.Muted),
	}
}

func (c *Card) Set() BeatmapSet { return c.set }

// SetPreferUnicode switches between Unicode and romanised metadata.
func (c *Card) SetPreferUnicode(v bool) { c.preferUnicode = v }

func (c *Card) Title() string { return c.set.DisplayTitle(c.preferUnicode) }

func (c *Card) Artist() string { return c.set.DisplayArtist(c.preferUnicode) }

// Hover fades the border in.
func (c *Card) Hover(now time.Time) {
	if c.hovered {
		return
	}
	c.hovered = true
	c.border.To(c.accent, HoverDuration, anim.OutQuad, now)
	events.Card.Hover(c.set.Title)
}

// Unhover fades the border back to the muted color.
func (c *Card) Unhover(now time.Time) {
	if !c.hovered {
		return
	}
	c.hovered = false
	c.border.To(c.palette.Muted, HoverDuration, anim.OutQuad, now)
}

func (c *Card) Hovered() bool { return c.hovered }

// SetAccentColor retargets the hovered border; a resting card only stores it.
func (c *Card) SetAccentColor(col colorful.Color, now time.Time) {
	c.accent = col
	if c.hovered {
		c.border.To(col, HoverDuration, anim.OutQuad, now)
	}
}

func (c *Card) AccentColor() colorful.Color { return c.accent }

// BorderColor is the border color displayed at now.
func (c *Card) BorderColor(now time.Time) colorful.Color { return c.border.Value(now) }

// SetPlaying starts or stops the preview. Stopping resets the progress.
func (c *Card) SetPlaying(playing bool) {
	if c.playing == playing {
		return
	}
	c.playing = playing
	if !playing {
		c.progress = 0
	}
	events.Card.Preview(c.set.Title, playing)
}

func (c *Card) Playing() bool { return c.playing }

// SetPreviewProgress clamps p to [0,1].
func (c *Card) SetPreviewProgress(p float64) {
	c.progress = min(max(p, 0), 1)
}

func (c *Card) PreviewProgress() float64 { return c.progress }

func (c *Card) Animating(now time.Time) bool { return c.border.Animating(now) }

// Render draws the card at width cells, border included.
func (c *Card) Render(width int, now time.Time) string {
	width = max(width, MinWidth)
	inner := width - 4
	s := c.styles

	stats := table.Format([][]string{
		{playGlyph, humanize.Comma(int64(c.set.PlayCount))},
		{favouriteGlyph, humanize.Comma(int64(c.set.FavouriteCount))},
	}, []table.Alignment{table.AlignLeft, table.AlignRight})

	glyph := playGlyph
	if c.playing {
		glyph = stopGlyph
	}
	mappedBy := s.Meta.Render("mapped by ") + s.MetaEmph.Render(c.set.Creator)
	source := ""
	if c.set.Source != "" {
		source = s.Meta.Render(c.set.Source)
	}

	lines := []string{
		row(glyph+" "+s.Title.Render(c.Title()), s.Stat.Render(stats[0]), inner),
		row("  "+s.Artist.Render(c.Artist()), s.Stat.Render(stats[1]), inner),
		row(c.badges(), mappedBy, inner),
		row(c.difficulties(), source, inner),
		c.progressBar(inner),
	}
	return s.CardBorder.
		BorderForeground(theme.Color(c.border.Value(now))).
		Padding(0, 1).
		Width(width - 2).
		Render(strings.Join(lines, "\n"))
}

func (c *Card) badges() string {
	var pills []string
	if c.set.HasVideo {
		pills = append(pills, c.styles.Pill.Render("VIDEO"))
	}
	if c.set.HasStoryboard {
		pills = append(pills, c.styles.Pill.Render("SB"))
	}
	if text := c.set.Status.Pill(); text != "" {
		pills = append(pills, c.styles.Pill.Render(text))
	}
	return strings.Join(pills, " ")
}

// difficulties draws one icon per map, easiest first.
func (c *Card) difficulties() string {
	diffs := slices.Clone(c.set.Difficulties)
	slices.SortStableFunc(diffs, func(a, b Difficulty) int { return cmp.Compare(a.Stars, b.Stars) })
	var b strings.Builder
	for _, d := range diffs {
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.Color(theme.Difficulty(d.Stars))).
			Render(difficultyGlyph))
	}
	return b.String()
}

func (c *Card) progressBar(inner int) string {
	if !c.playing {
		return ""
	}
	filled := int(c.progress * float64(inner))
	if filled == 0 {
		return ""
	}
	return lipgloss.NewStyle().
		Foreground(theme.Color(c.palette.Yellow)).
		Render(strings.Repeat(progressGlyph, filled))
}

// row places left and right on one line of width cells. The left side is
// truncated first; the right side only when it alone is too wide.
func row(left, right string, width int) string {
	rw := ansi.StringWidth(right)
	if rw > width {
		return ansi.Truncate(right, width, "…")
	}
	room := width - rw
	if right != "" {
		room--
	}
	if room <= 0 {
		return strings.Repeat(" ", width-rw) + right
	}
	left = ansi.Truncate(left, room, "…")
	gap := width - ansi.StringWidth(left) - rw
	return left + strings.Repeat(" ", gap) + right
}
