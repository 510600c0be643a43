package panel

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/atomicstack/tabstrip/internal/testutil"
	"github.com/atomicstack/tabstrip/internal/theme"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func sampleSet() BeatmapSet {
	return BeatmapSet{
		ID:             1,
		Title:          "Kimi no Shiranai Monogatari",
		TitleUnicode:   "君の知らない物語",
		Artist:         "supercell",
		Creator:        "Taru",
		Source:         "Bakemonogatari",
		Status:         StatusRanked,
		PlayCount:      1234567,
		FavouriteCount: 890,
		HasVideo:       true,
		Difficulties: []Difficulty{
			{Name: "Insane", Stars: 4.8},
			{Name: "Easy", Stars: 1.5},
		},
	}
}

func TestDisplayMetadataFallsBack(t *testing.T) {
	set := sampleSet()
	if got := set.DisplayTitle(true); got != "君の知らない物語" {
		t.Fatalf("expected unicode title, got %q", got)
	}
	if got := set.DisplayTitle(false); got != "Kimi no Shiranai Monogatari" {
		t.Fatalf("expected romanised title, got %q", got)
	}
	if got := set.DisplayArtist(true); got != "supercell" {
		t.Fatalf("expected romanised artist fallback, got %q", got)
	}
	if got := (BeatmapSet{TitleUnicode: "x"}).DisplayTitle(false); got != "x" {
		t.Fatalf("expected unicode fallback for missing romanised title, got %q", got)
	}
}

func TestRenderShape(t *testing.T) {
	card := New(sampleSet(), theme.DefaultPalette())
	out := card.Render(60, epoch)
	lines := strings.Split(out, "\n")
	if len(lines) != Height {
		t.Fatalf("expected %d lines, got %d", Height, len(lines))
	}
	for i, line := range lines {
		if w := ansi.StringWidth(line); w != 60 {
			t.Fatalf("line %d: expected width 60, got %d", i, w)
		}
	}
	plain := ansi.Strip(out)
	for _, want := range []string{"1,234,567", "890", "mapped by Taru", "Bakemonogatari", "RANKED", "VIDEO"} {
		if !strings.Contains(plain, want) {
			t.Fatalf("expected %q in card, got:\n%s", want, plain)
		}
	}
	if strings.Contains(plain, "SB") {
		t.Fatalf("expected no storyboard pill, got:\n%s", plain)
	}
}

func TestRenderHonoursUnicodePreference(t *testing.T) {
	card := New(sampleSet(), theme.DefaultPalette())
	card.SetPreferUnicode(true)
	if plain := ansi.Strip(card.Render(60, epoch)); !strings.Contains(plain, "君の知らない物語") {
		t.Fatalf("expected unicode title, got:\n%s", plain)
	}
}

func TestRenderHidesEmptySource(t *testing.T) {
	set := sampleSet()
	set.Source = ""
	plain := ansi.Strip(New(set, theme.DefaultPalette()).Render(60, epoch))
	if strings.Contains(plain, "Bakemonogatari") {
		t.Fatalf("expected source hidden, got:\n%s", plain)
	}
}

func TestNarrowRenderTruncatesTitle(t *testing.T) {
	card := New(sampleSet(), theme.DefaultPalette())
	lines := strings.Split(card.Render(MinWidth, epoch), "\n")
	for i, line := range lines {
		if w := ansi.StringWidth(line); w != MinWidth {
			t.Fatalf("line %d: expected width %d, got %d", i, MinWidth, w)
		}
	}
}

func TestHoverFadesBorderToAccent(t *testing.T) {
	palette := theme.DefaultPalette()
	card := New(sampleSet(), palette)
	card.Hover(epoch)
	if !card.Animating(epoch.Add(HoverDuration / 2)) {
		t.Fatalf("expected border fade in flight")
	}
	if got := card.BorderColor(epoch.Add(HoverDuration)); got != palette.Accent {
		t.Fatalf("expected accent border, got %s", got.Hex())
	}
	card.Unhover(epoch.Add(HoverDuration))
	if got := card.BorderColor(epoch.Add(3 * HoverDuration)); got != palette.Muted {
		t.Fatalf("expected muted border, got %s", got.Hex())
	}
}

func TestAccentChangeRetargetsHoveredBorder(t *testing.T) {
	card := New(sampleSet(), theme.DefaultPalette())
	pink, _ := colorful.Hex("#ff66aa")
	card.SetAccentColor(pink, epoch)
	if card.Animating(epoch) {
		t.Fatalf("expected resting card to only store the accent")
	}
	card.Hover(epoch)
	if got := card.BorderColor(epoch.Add(HoverDuration)); got != pink {
		t.Fatalf("expected pink border, got %s", got.Hex())
	}
	green, _ := colorful.Hex("#88b300")
	card.SetAccentColor(green, epoch.Add(HoverDuration))
	if got := card.BorderColor(epoch.Add(3 * HoverDuration)); got != green {
		t.Fatalf("expected green border, got %s", got.Hex())
	}
}

func TestPreviewProgress(t *testing.T) {
	card := New(sampleSet(), theme.DefaultPalette())
	card.SetPreviewProgress(0.5)
	if strings.Contains(card.Render(40, epoch), progressGlyph) {
		t.Fatalf("expected no progress bar while stopped")
	}
	card.SetPlaying(true)
	card.SetPreviewProgress(2)
	if got := card.PreviewProgress(); got != 1 {
		t.Fatalf("expected clamped progress 1, got %v", got)
	}
	lines := strings.Split(ansi.Strip(card.Render(40, epoch)), "\n")
	bar := lines[Height-2]
	if got := strings.Count(bar, progressGlyph); got != 36 {
		t.Fatalf("expected full bar of 36 cells, got %d in %q", got, bar)
	}
	card.SetPlaying(false)
	if got := card.PreviewProgress(); got != 0 {
		t.Fatalf("expected progress reset on stop, got %v", got)
	}
}

func TestStatusPill(t *testing.T) {
	if got := StatusNone.Pill(); got != "" {
		t.Fatalf("expected no pill, got %q", got)
	}
	if got := StatusLoved.Pill(); got != "LOVED" {
		t.Fatalf("expected LOVED, got %q", got)
	}
}

func TestMaxStars(t *testing.T) {
	if got := sampleSet().MaxStars(); got != 4.8 {
		t.Fatalf("expected 4.8, got %v", got)
	}
}

func TestRenderGolden(t *testing.T) {
	set := BeatmapSet{
		ID:             39804,
		Title:          "FREEDOM DiVE",
		Artist:         "xi",
		Creator:        "Nakagawa-Kanon",
		Source:         "BMS",
		Status:         StatusRanked,
		PlayCount:      48213877,
		FavouriteCount: 52310,
		HasVideo:       true,
		Difficulties: []Difficulty{
			{Name: "FOUR DIMENSIONS", Stars: 7.1},
			{Name: "Normal", Stars: 2.1},
			{Name: "Hyper", Stars: 4.4},
		},
	}
	testutil.AssertGolden(t, "card_freedom_dive.golden", New(set, theme.DefaultPalette()).Render(48, epoch))
}
