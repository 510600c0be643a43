package tabs

import (
	"time"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Colorable is implemented by everything that displays the accent color.
// SetAccentColor must restyle, not merely store.
type Colorable interface {
	SetAccentColor(c colorful.Color, now time.Time)
	AccentColor() colorful.Color
}

// Hoverable reacts to the pointer entering and leaving it.
type Hoverable interface {
	Hover(now time.Time)
	Unhover(now time.Time)
	Hovered() bool
}

// Activatable can become the single active selection.
type Activatable interface {
	Activate(now time.Time)
	Deactivate(now time.Time)
	Active() bool
}

// Labeled exposes display text.
type Labeled interface {
	Label() string
}

var (
	_ Colorable   = (*Tab)(nil)
	_ Hoverable   = (*Tab)(nil)
	_ Activatable = (*Tab)(nil)
	_ Labeled     = (*Tab)(nil)
	_ Colorable   = (*dropdownHeader)(nil)
	_ Hoverable   = (*dropdownHeader)(nil)
	_ Colorable   = (*dropdownRow[int])(nil)
	_ Hoverable   = (*dropdownRow[int])(nil)
	_ Labeled     = (*dropdownRow[int])(nil)
)
