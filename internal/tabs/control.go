package tabs

import (
	"iter"
	"time"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/atomicstack/tabstrip/internal/logging/events"
	"github.com/atomicstack/tabstrip/internal/theme"
)

const (
	// DefaultSpacing is the gap between inline tabs, in cells.
	DefaultSpacing = 2
	// Unbounded disables overflow: every item is laid out inline.
	Unbounded = -1
)

type entry[T comparable] struct {
	item   Item[T]
	tab    *Tab
	cancel func()
}

// Control is an ordered, de-duplicated set of selectable items. Items that
// fit the available width render inline; the rest overflow into a Dropdown
// that shares the same selection and accent color.
type Control[T comparable] struct {
	entries  []*entry[T]
	current  *entry[T]
	accent   *Accent
	dropdown *Dropdown[T]
	palette  theme.Palette
	clock    func() time.Time

	width   int
	spacing int
	reserve int
	inline  int
	spans   []span

	variants iter.Seq[T]
	initial  *colorful.Color
	maxRows  int
	onSelect []func(T)
}

// Option configures a Control at construction.
type Option[T comparable] func(*Control[T])

// WithVariants populates the control with every value seq produces, in
// order. Pass the full set of declared values of an enum-like type.
func WithVariants[T comparable](seq iter.Seq[T]) Option[T] {
	return func(c *Control[T]) { c.variants = seq }
}

// WithPalette overrides the theme palette, including the default accent.
func WithPalette[T comparable](p theme.Palette) Option[T] {
	return func(c *Control[T]) { c.palette = p }
}

// WithAccentColor sets an explicit accent before any item is created.
func WithAccentColor[T comparable](col colorful.Color) Option[T] {
	return func(c *Control[T]) { c.initial = &col }
}

// WithClock replaces time.Now for animation timestamps.
func WithClock[T comparable](now func() time.Time) Option[T] {
	return func(c *Control[T]) { c.clock = now }
}

// WithSpacing sets the gap between inline tabs.
func WithSpacing[T comparable](cells int) Option[T] {
	return func(c *Control[T]) {
		if cells >= 0 {
			c.spacing = cells
		}
	}
}

// WithWidth sets the initial available width.
func WithWidth[T comparable](cells int) Option[T] {
	return func(c *Control[T]) { c.width = cells }
}

// WithMaxRows bounds the overflow popup height.
func WithMaxRows[T comparable](rows int) Option[T] {
	return func(c *Control[T]) { c.maxRows = rows }
}

// New constructs a control. Without WithVariants it starts empty.
func New[T comparable](opts ...Option[T]) *Control[T] {
	c := &Control[T]{
		palette: theme.DefaultPalette(),
		clock:   time.Now,
		width:   Unbounded,
		spacing: DefaultSpacing,
		reserve: HeaderWidth,
		maxRows: DefaultMaxRows,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.accent = NewAccent(c.palette.Accent)
	if c.initial != nil {
		c.accent.Set(*c.initial)
	}
	c.dropdown = newDropdown(c.accent, c.palette, c.clock, func(v T) {
		_ = c.Select(v)
	})
	c.dropdown.SetMaxRows(c.maxRows)
	if c.variants != nil {
		for v := range c.variants {
			if err := c.Add(v); err != nil {
				events.Tabs.Rejected("populate", LabelOf(v), err)
			}
		}
	}
	c.relayout()
	return c
}

func (c *Control[T]) indexOf(v T) int {
	for i, e := range c.entries {
		if e.item.Value == v {
			return i
		}
	}
	return -1
}

// Add appends v. It fails with ErrDuplicateItem when v is already present and
// never selects the new item.
func (c *Control[T]) Add(v T) error {
	item := NewItem(v)
	if c.indexOf(v) >= 0 {
		err := &ItemError{Op: "add", Label: item.Label, Err: ErrDuplicateItem}
		events.Tabs.Rejected("add", item.Label, err)
		return err
	}
	e := &entry[T]{item: item, tab: newTab(item.Label, c.accent.Value(), c.palette.Highlight)}
	e.cancel = c.accent.Subscribe(func(col colorful.Color) {
		e.tab.SetAccentColor(col, c.clock())
	})
	c.entries = append(c.entries, e)
	events.Tabs.Add(item.Label, len(c.entries))
	c.relayout()
	return nil
}

// Remove drops v, clearing the selection when v was active. It reports
// whether anything was removed.
func (c *Control[T]) Remove(v T) bool {
	idx := c.indexOf(v)
	if idx < 0 {
		return false
	}
	e := c.entries[idx]
	e.cancel()
	wasActive := c.current == e
	if wasActive {
		c.current = nil
		var zero T
		c.dropdown.setSelected(zero, false)
	}
	c.entries = append(c.entries[:idx], c.entries[idx+1:]...)
	events.Tabs.Remove(e.item.Label, wasActive)
	c.relayout()
	return true
}

// Select makes v the single active item, wherever it is displayed.
// Selecting the already active value does nothing.
func (c *Control[T]) Select(v T) error {
	idx := c.indexOf(v)
	if idx < 0 {
		label := LabelOf(v)
		err := &ItemError{Op: "select", Label: label, Err: ErrUnknownItem}
		events.Tabs.Rejected("select", label, err)
		return err
	}
	next := c.entries[idx]
	if c.current == next {
		return nil
	}
	now := c.clock()
	previous := ""
	if c.current != nil {
		previous = c.current.item.Label
		c.current.tab.Deactivate(now)
	}
	next.tab.Activate(now)
	c.current = next
	c.dropdown.setSelected(v, true)
	events.Tabs.Select(previous, next.item.Label)
	for _, fn := range c.onSelect {
		fn(v)
	}
	return nil
}

// OnSelect registers fn to run after every successful selection change.
func (c *Control[T]) OnSelect(fn func(T)) {
	c.onSelect = append(c.onSelect, fn)
}

// Current returns the active value, if any.
func (c *Control[T]) Current() (T, bool) {
	if c.current == nil {
		var zero T
		return zero, false
	}
	return c.current.item.Value, true
}

// SetAccentColor stores col and restyles every tab, the header and every row.
func (c *Control[T]) SetAccentColor(col colorful.Color) {
	c.accent.Set(col)
}

func (c *Control[T]) AccentColor() colorful.Color {
	return c.accent.Value()
}

// Accent exposes the broadcaster so widgets outside the bar can follow the
// same color.
func (c *Control[T]) Accent() *Accent { return c.accent }

// SetWidth changes the available width and re-partitions.
func (c *Control[T]) SetWidth(cells int) {
	if cells == c.width {
		return
	}
	c.width = cells
	c.relayout()
}

func (c *Control[T]) Width() int { return c.width }

func (c *Control[T]) Spacing() int { return c.spacing }

// Items returns every value in insertion order.
func (c *Control[T]) Items() []T {
	return c.values(c.entries)
}

// Inline returns the values rendered directly in the tab bar.
func (c *Control[T]) Inline() []T {
	return c.values(c.entries[:c.inline])
}

// Overflow returns the values hosted by the dropdown.
func (c *Control[T]) Overflow() []T {
	return c.values(c.entries[c.inline:])
}

func (c *Control[T]) values(entries []*entry[T]) []T {
	out := make([]T, len(entries))
	for i, e := range entries {
		out[i] = e.item.Value
	}
	return out
}

func (c *Control[T]) Len() int { return len(c.entries) }

func (c *Control[T]) Contains(v T) bool { return c.indexOf(v) >= 0 }

// Tab returns the visual state for v.
func (c *Control[T]) Tab(v T) (*Tab, bool) {
	idx := c.indexOf(v)
	if idx < 0 {
		return nil, false
	}
	return c.entries[idx].tab, true
}

// Dropdown exposes the overflow menu.
func (c *Control[T]) Dropdown() *Dropdown[T] { return c.dropdown }

// HeaderVisible reports whether any item overflowed.
func (c *Control[T]) HeaderVisible() bool {
	return c.inline < len(c.entries)
}

// Animating reports whether anything owned by the control is mid-transition.
func (c *Control[T]) Animating(now time.Time) bool {
	for _, e := range c.entries {
		if e.tab.Animating(now) {
			return true
		}
	}
	return c.dropdown.animating(now)
}

// Close releases every accent subscription and drops all items.
func (c *Control[T]) Close() {
	for _, e := range c.entries {
		e.cancel()
	}
	c.entries = nil
	c.current = nil
	c.inline = 0
	c.spans = nil
	c.dropdown.release()
}

func (c *Control[T]) relayout() {
	widths := make([]int, len(c.entries))
	for i, e := range c.entries {
		widths[i] = e.tab.Width()
	}
	if c.width < 0 {
		c.inline = len(widths)
	} else {
		c.inline = Partition(widths, c.width, c.reserve, c.spacing)
	}
	c.spans = layoutSpans(widths[:c.inline], c.spacing)

	overflow := make([]Item[T], 0, len(c.entries)-c.inline)
	for _, e := range c.entries[c.inline:] {
		overflow = append(overflow, e.item)
	}
	c.dropdown.SetItems(overflow)
	if len(overflow) == 0 {
		c.dropdown.Close()
	}
	events.Tabs.Layout(c.width, c.inline, len(overflow))
}

// inlineAt returns the inline index under cell x, or -1.
func (c *Control[T]) inlineAt(x int) int {
	for i, s := range c.spans {
		if s.contains(x) {
			return i
		}
	}
	return -1
}

// headerStart is the first cell of the overflow header.
func (c *Control[T]) headerStart() int {
	return c.barWidth() - c.reserve
}

// barWidth is the rendered width of the tab row.
func (c *Control[T]) barWidth() int {
	if c.width >= 0 {
		return c.width
	}
	if len(c.spans) == 0 {
		return 0
	}
	return c.spans[len(c.spans)-1].end
}
