package tabs

import (
	"time"

	"github.com/charmbracelet/x/ansi"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/atomicstack/tabstrip/internal/anim"
)

// TabState is the visual state of a single tab.
type TabState int

const (
	StateIdle TabState = iota
	StateHovered
	StateActive
)

func (s TabState) String() string {
	switch s {
	case StateHovered:
		return "hovered"
	case StateActive:
		return "active"
	default:
		return "idle"
	}
}

// TransitionDuration is how long label and underline fades take.
const TransitionDuration = 500 * time.Millisecond

// Tab is the inline representation of one item: a bold label over an
// underline indicator.
type Tab struct {
	label     string
	state     TabState
	accent    colorful.Color
	highlight colorful.Color
	text      anim.Tween[colorful.Color]
	underline anim.Tween[float64]
}

func newTab(label string, accent, highlight colorful.Color) *Tab {
	return &Tab{
		label:     label,
		accent:    accent,
		highlight: highlight,
		text:      anim.NewColor(accent),
		underline: anim.NewFloat(0),
	}
}

func (t *Tab) Label() string { return t.label }

// Width is the label's width in terminal cells. Tabs carry no padding of
// their own; Partition adds the spacing between neighbours.
func (t *Tab) Width() int { return ansi.StringWidth(t.label) }

func (t *Tab) State() TabState { return t.state }

func (t *Tab) Hovered() bool { return t.state == StateHovered }

func (t *Tab) Active() bool { return t.state == StateActive }

// Bold reports the label weight. Labels render bold in every state.
func (t *Tab) Bold() bool { return true }

// Hover is ignored while the tab is active.
func (t *Tab) Hover(now time.Time) {
	if t.state != StateIdle {
		return
	}
	t.state = StateHovered
	t.fadeActive(now)
}

func (t *Tab) Unhover(now time.Time) {
	if t.state != StateHovered {
		return
	}
	t.state = StateIdle
	t.fadeInactive(now)
}

func (t *Tab) Activate(now time.Time) {
	if t.state == StateActive {
		return
	}
	t.state = StateActive
	t.fadeActive(now)
}

func (t *Tab) Deactivate(now time.Time) {
	if t.state != StateActive {
		return
	}
	t.state = StateIdle
	t.fadeInactive(now)
}

// SetAccentColor restyles an idle tab at once. A hovered or active tab keeps
// its highlight and picks the new accent up when it next fades back.
func (t *Tab) SetAccentColor(c colorful.Color, now time.Time) {
	t.accent = c
	if t.state != StateIdle {
		return
	}
	if t.text.Animating(now) {
		t.text.To(c, TransitionDuration, anim.OutQuint, now)
		return
	}
	t.text.Set(c)
}

func (t *Tab) AccentColor() colorful.Color { return t.accent }

// TextColor is the label color displayed at now.
func (t *Tab) TextColor(now time.Time) colorful.Color { return t.text.Value(now) }

// UnderlineOpacity is the underline's opacity at now, in [0,1].
func (t *Tab) UnderlineOpacity(now time.Time) float64 { return t.underline.Value(now) }

// Animating reports whether any property is still moving at now.
func (t *Tab) Animating(now time.Time) bool {
	return t.text.Animating(now) || t.underline.Animating(now)
}

func (t *Tab) fadeActive(now time.Time) {
	t.underline.To(1, TransitionDuration, anim.OutQuint, now)
	t.text.To(t.highlight, TransitionDuration, anim.OutQuint, now)
}

func (t *Tab) fadeInactive(now time.Time) {
	t.underline.To(0, TransitionDuration, anim.OutQuint, now)
	t.text.To(t.accent, TransitionDuration, anim.OutQuint, now)
}
