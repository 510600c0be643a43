package tabs

import (
	"testing"
)

func TestTabHoverTransitions(t *testing.T) {
	clock := newFakeClock()
	accent := mustHex(t, "#66ccff")
	white := mustHex(t, "#ffffff")
	tab := newTab("Ranked", accent, white)

	tab.Hover(clock.Now())
	if tab.State() != StateHovered {
		t.Fatalf("expected hovered, got %s", tab.State())
	}
	clock.Advance(TransitionDuration / 2)
	if !tab.Animating(clock.Now()) {
		t.Fatalf("expected hover animation in flight")
	}
	if op := tab.UnderlineOpacity(clock.Now()); op <= 0 || op >= 1 {
		t.Fatalf("expected partial underline mid-transition, got %v", op)
	}
	clock.settle()
	if got := tab.TextColor(clock.Now()); got != white {
		t.Fatalf("expected highlight label, got %s", got.Hex())
	}
	if op := tab.UnderlineOpacity(clock.Now()); op != 1 {
		t.Fatalf("expected full underline, got %v", op)
	}

	tab.Unhover(clock.Now())
	if tab.State() != StateIdle {
		t.Fatalf("expected idle after unhover, got %s", tab.State())
	}
	clock.settle()
	if got := tab.TextColor(clock.Now()); got != accent {
		t.Fatalf("expected accent label, got %s", got.Hex())
	}
	if op := tab.UnderlineOpacity(clock.Now()); op != 0 {
		t.Fatalf("expected hidden underline, got %v", op)
	}
}

func TestTabIgnoresHoverWhileActive(t *testing.T) {
	clock := newFakeClock()
	tab := newTab("Plays", mustHex(t, "#66ccff"), mustHex(t, "#ffffff"))
	tab.Hover(clock.Now())
	tab.Activate(clock.Now())
	if tab.State() != StateActive {
		t.Fatalf("expected active, got %s", tab.State())
	}
	tab.Unhover(clock.Now())
	tab.Hover(clock.Now())
	if tab.State() != StateActive {
		t.Fatalf("expected hover events ignored while active, got %s", tab.State())
	}
	clock.settle()
	if op := tab.UnderlineOpacity(clock.Now()); op != 1 {
		t.Fatalf("expected underline shown while active, got %v", op)
	}

	tab.Deactivate(clock.Now())
	if tab.State() != StateIdle {
		t.Fatalf("expected idle after deactivate, got %s", tab.State())
	}
}

func TestTabInterruptedHoverRetargetsFromCurrentColor(t *testing.T) {
	clock := newFakeClock()
	accent := mustHex(t, "#000000")
	tab := newTab("Title", accent, mustHex(t, "#ffffff"))
	tab.Hover(clock.Now())
	clock.Advance(TransitionDuration / 10)
	mid := tab.TextColor(clock.Now())
	tab.Unhover(clock.Now())
	if got := tab.TextColor(clock.Now()); got.Hex() != mid.Hex() {
		t.Fatalf("expected unhover to start at %s, got %s", mid.Hex(), got.Hex())
	}
	if mid.Hex() == accent.Hex() {
		t.Fatalf("expected the hover to have made progress before interruption")
	}
}

func TestTabAccentWhileIdleAppliesImmediately(t *testing.T) {
	clock := newFakeClock()
	tab := newTab("Artist", mustHex(t, "#66ccff"), mustHex(t, "#ffffff"))
	red := mustHex(t, "#ff0000")
	tab.SetAccentColor(red, clock.Now())
	if tab.Animating(clock.Now()) {
		t.Fatalf("expected no animation for an idle recolor")
	}
	if got := tab.TextColor(clock.Now()); got != red {
		t.Fatalf("expected %s, got %s", red.Hex(), got.Hex())
	}
}

func TestTabAccentWhileHoveredIsUsedOnNextFadeBack(t *testing.T) {
	clock := newFakeClock()
	white := mustHex(t, "#ffffff")
	tab := newTab("Creator", mustHex(t, "#66ccff"), white)
	tab.Hover(clock.Now())
	clock.Advance(TransitionDuration / 4)

	red := mustHex(t, "#ff0000")
	tab.SetAccentColor(red, clock.Now())
	clock.settle()
	if got := tab.TextColor(clock.Now()); got != white {
		t.Fatalf("expected hovered label to stay highlighted, got %s", got.Hex())
	}

	tab.Unhover(clock.Now())
	clock.settle()
	if got := tab.TextColor(clock.Now()); got != red {
		t.Fatalf("expected label to rest at new accent, got %s", got.Hex())
	}
}

func TestTabAccentDuringFadeBackRetargets(t *testing.T) {
	clock := newFakeClock()
	tab := newTab("Rating", mustHex(t, "#66ccff"), mustHex(t, "#ffffff"))
	tab.Activate(clock.Now())
	clock.settle()
	tab.Deactivate(clock.Now())
	clock.Advance(TransitionDuration / 5)

	green := mustHex(t, "#00ff00")
	tab.SetAccentColor(green, clock.Now())
	clock.settle()
	if got := tab.TextColor(clock.Now()); got != green {
		t.Fatalf("expected fade to land on %s, got %s", green.Hex(), got.Hex())
	}
}

func TestTabLabelStaysBold(t *testing.T) {
	clock := newFakeClock()
	tab := newTab("Difficulty", mustHex(t, "#66ccff"), mustHex(t, "#ffffff"))
	if !tab.Bold() {
		t.Fatalf("expected bold idle label")
	}
	tab.Activate(clock.Now())
	if !tab.Bold() {
		t.Fatalf("expected bold active label")
	}
	if tab.Width() != len("Difficulty") {
		t.Fatalf("expected width %d, got %d", len("Difficulty"), tab.Width())
	}
}

func TestTabWidthCountsCellsWithoutPadding(t *testing.T) {
	tab := newTab("栞 Shiori", mustHex(t, "#66ccff"), mustHex(t, "#ffffff"))
	if got := tab.Width(); got != 9 {
		t.Fatalf("expected 9 cells for a wide glyph label, got %d", got)
	}
}

func TestInlineSpansSeparatedOnlyBySpacing(t *testing.T) {
	clock := newFakeClock()
	c := newTestControl(t, clock, WithSpacing[string](3))
	mustAdd(t, c, "AA", "BBB")
	if len(c.spans) != 2 {
		t.Fatalf("expected two spans, got %d", len(c.spans))
	}
	if c.spans[0].end != 2 || c.spans[1].start != 5 || c.spans[1].end != 8 {
		t.Fatalf("expected spans [0,2) and [5,8), got %+v", c.spans)
	}
}
