package tabs

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/lithammer/fuzzysearch/fuzzy"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/atomicstack/tabstrip/internal/anim"
	"github.com/atomicstack/tabstrip/internal/logging/events"
	"github.com/atomicstack/tabstrip/internal/theme"
)

const (
	headerGlyph = "⋯"
	// HeaderWidth is the cell width reserved for the overflow header.
	HeaderWidth = 3
	// DefaultMaxRows bounds the popup height before it scrolls.
	DefaultMaxRows = 10

	rowTransition = 200 * time.Millisecond
)

// dropdownHeader is the "⋯" trigger shown at the right of the tab bar.
type dropdownHeader struct {
	accent  colorful.Color
	palette theme.Palette
	hovered bool
	fg      anim.Tween[colorful.Color]
	surface anim.Tween[colorful.Color]
}

func newDropdownHeader(palette theme.Palette) *dropdownHeader {
	return &dropdownHeader{
		accent:  palette.Accent,
		palette: palette,
		fg:      anim.NewColor(palette.Accent),
		surface: anim.NewColor(palette.HeaderSurface),
	}
}

func (h *dropdownHeader) SetAccentColor(c colorful.Color, now time.Time) {
	h.accent = c
	if h.hovered {
		h.surface.To(c, rowTransition, anim.OutQuint, now)
		return
	}
	if h.fg.Animating(now) {
		h.fg.To(c, rowTransition, anim.OutQuint, now)
		return
	}
	h.fg.Set(c)
}

func (h *dropdownHeader) AccentColor() colorful.Color { return h.accent }

// Hover swaps the glyph onto an accent surface.
func (h *dropdownHeader) Hover(now time.Time) {
	if h.hovered {
		return
	}
	h.hovered = true
	h.fg.To(h.palette.PopupForeground, rowTransition, anim.OutQuint, now)
	h.surface.To(h.accent, rowTransition, anim.OutQuint, now)
}

func (h *dropdownHeader) Unhover(now time.Time) {
	if !h.hovered {
		return
	}
	h.hovered = false
	h.fg.To(h.accent, rowTransition, anim.OutQuint, now)
	h.surface.To(h.palette.HeaderSurface, rowTransition, anim.OutQuint, now)
}

func (h *dropdownHeader) Hovered() bool { return h.hovered }

func (h *dropdownHeader) animating(now time.Time) bool {
	return h.fg.Animating(now) || h.surface.Animating(now)
}

// dropdownRow is one entry in the overflow popup. Hovering highlights the
// row surface with the accent and switches the label to a fixed contrasting
// color, since rows sit over the menu background rather than the tab bar.
type dropdownRow[T comparable] struct {
	item     Item[T]
	accent   colorful.Color
	palette  theme.Palette
	hovered  bool
	selected bool
	fg       anim.Tween[colorful.Color]
	bg       anim.Tween[colorful.Color]
	cancel   func()
}

func newDropdownRow[T comparable](item Item[T], palette theme.Palette) *dropdownRow[T] {
	return &dropdownRow[T]{
		item:    item,
		accent:  palette.Accent,
		palette: palette,
		fg:      anim.NewColor(palette.Accent),
		bg:      anim.NewColor(palette.PopupBackground),
	}
}

func (r *dropdownRow[T]) Label() string { return r.item.Label }

func (r *dropdownRow[T]) SetAccentColor(c colorful.Color, now time.Time) {
	r.accent = c
	if r.hovered {
		r.bg.To(c, rowTransition, anim.OutQuint, now)
		return
	}
	if r.fg.Animating(now) {
		r.fg.To(c, rowTransition, anim.OutQuint, now)
		return
	}
	r.fg.Set(c)
}

func (r *dropdownRow[T]) AccentColor() colorful.Color { return r.accent }

func (r *dropdownRow[T]) Hover(now time.Time) {
	if r.hovered {
		return
	}
	r.hovered = true
	r.fg.To(r.palette.PopupForeground, rowTransition, anim.OutQuint, now)
	r.bg.To(r.accent, rowTransition, anim.OutQuint, now)
}

func (r *dropdownRow[T]) Unhover(now time.Time) {
	if !r.hovered {
		return
	}
	r.hovered = false
	r.fg.To(r.accent, rowTransition, anim.OutQuint, now)
	r.bg.To(r.palette.PopupBackground, rowTransition, anim.OutQuint, now)
}

func (r *dropdownRow[T]) Hovered() bool { return r.hovered }

func (r *dropdownRow[T]) animating(now time.Time) bool {
	return r.fg.Animating(now) || r.bg.Animating(now)
}

func (r *dropdownRow[T]) release() {
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
}

// Dropdown hosts the items that did not fit inline. It never changes the
// selection itself; picking a row forwards the value to onPick.
type Dropdown[T comparable] struct {
	header       *dropdownHeader
	headerCancel func()
	rows         []*dropdownRow[T]
	visible      []int
	accent       *Accent
	palette      theme.Palette
	clock        func() time.Time
	onPick       func(T)

	open    bool
	cursor  int
	offset  int
	maxRows int
	filter  textinput.Model

	selected    T
	hasSelected bool
}

func newDropdown[T comparable](accent *Accent, palette theme.Palette, clock func() time.Time, onPick func(T)) *Dropdown[T] {
	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "filter"
	ti.CharLimit = 64
	d := &Dropdown[T]{
		header:  newDropdownHeader(palette),
		accent:  accent,
		palette: palette,
		clock:   clock,
		onPick:  onPick,
		cursor:  -1,
		maxRows: DefaultMaxRows,
		filter:  ti,
	}
	d.headerCancel = accent.Subscribe(func(c colorful.Color) {
		d.header.SetAccentColor(c, d.clock())
	})
	return d
}

// SetItems replaces the rows. Rows for values already shown are kept so their
// hover state survives a relayout.
func (d *Dropdown[T]) SetItems(items []Item[T]) {
	existing := make(map[T]*dropdownRow[T], len(d.rows))
	for _, row := range d.rows {
		existing[row.item.Value] = row
	}
	rows := make([]*dropdownRow[T], 0, len(items))
	for _, item := range items {
		if row, ok := existing[item.Value]; ok {
			delete(existing, item.Value)
			row.item = item
			rows = append(rows, row)
			continue
		}
		row := newDropdownRow(item, d.palette)
		row.cancel = d.accent.Subscribe(func(c colorful.Color) {
			row.SetAccentColor(c, d.clock())
		})
		rows = append(rows, row)
	}
	for _, stale := range existing {
		stale.release()
	}
	d.rows = rows
	d.markSelected()
	d.applyFilter()
}

// Items returns every row's item in display order, ignoring the filter.
func (d *Dropdown[T]) Items() []Item[T] {
	out := make([]Item[T], len(d.rows))
	for i, row := range d.rows {
		out[i] = row.item
	}
	return out
}

// Visible returns the rows that match the current filter.
func (d *Dropdown[T]) Visible() []Item[T] {
	out := make([]Item[T], len(d.visible))
	for i, idx := range d.visible {
		out[i] = d.rows[idx].item
	}
	return out
}

// Len reports the number of rows, ignoring the filter.
func (d *Dropdown[T]) Len() int { return len(d.rows) }

func (d *Dropdown[T]) setSelected(v T, ok bool) {
	d.selected = v
	d.hasSelected = ok
	d.markSelected()
}

func (d *Dropdown[T]) markSelected() {
	for _, row := range d.rows {
		row.selected = d.hasSelected && row.item.Value == d.selected
	}
}

// SelectedRow returns the selected value when it is one of the rows.
func (d *Dropdown[T]) SelectedRow() (T, bool) {
	for _, row := range d.rows {
		if row.selected {
			return row.item.Value, true
		}
	}
	var zero T
	return zero, false
}

func (d *Dropdown[T]) IsOpen() bool { return d.open }

// Open shows the popup. It does nothing when there are no rows.
func (d *Dropdown[T]) Open() tea.Cmd {
	if d.open || len(d.rows) == 0 {
		return nil
	}
	d.open = true
	d.cursor = -1
	d.offset = 0
	events.Dropdown.Open(len(d.rows))
	return d.filter.Focus()
}

// Close hides the popup and clears the filter.
func (d *Dropdown[T]) Close() {
	if !d.open {
		return
	}
	d.open = false
	d.filter.Blur()
	d.filter.SetValue("")
	d.applyFilter()
	events.Dropdown.Close()
}

func (d *Dropdown[T]) Toggle() tea.Cmd {
	if d.open {
		d.Close()
		return nil
	}
	return d.Open()
}

// SetMaxRows bounds how many rows are drawn before the popup scrolls.
func (d *Dropdown[T]) SetMaxRows(n int) {
	if n < 1 {
		n = 1
	}
	d.maxRows = n
	d.ensureCursorVisible()
}

// Filter returns the current filter query.
func (d *Dropdown[T]) Filter() string { return d.filter.Value() }

// SetFilter narrows the visible rows to fuzzy matches of query.
func (d *Dropdown[T]) SetFilter(query string) {
	d.filter.SetValue(query)
	d.applyFilter()
}

func (d *Dropdown[T]) updateFilter(msg tea.Msg) tea.Cmd {
	before := d.filter.Value()
	var cmd tea.Cmd
	d.filter, cmd = d.filter.Update(msg)
	if d.filter.Value() != before {
		d.applyFilter()
	}
	return cmd
}

func (d *Dropdown[T]) applyFilter() {
	query := strings.TrimSpace(d.filter.Value())
	d.visible = d.visible[:0]
	if query == "" {
		for i := range d.rows {
			d.visible = append(d.visible, i)
		}
	} else {
		labels := make([]string, len(d.rows))
		for i, row := range d.rows {
			labels[i] = row.item.Label
		}
		matches := make(map[int]struct{})
		for _, rank := range fuzzy.RankFindNormalizedFold(query, labels) {
			matches[rank.OriginalIndex] = struct{}{}
		}
		for i := range d.rows {
			if _, ok := matches[i]; ok {
				d.visible = append(d.visible, i)
			}
		}
		events.Dropdown.Filter(query, len(d.visible))
	}
	now := d.clock()
	for _, row := range d.rows {
		row.Unhover(now)
	}
	d.cursor = -1
	d.offset = 0
	if d.open && query != "" && len(d.visible) > 0 {
		d.HoverRow(0)
	}
}

// MoveCursor hovers the row delta steps away, wrapping at either end.
func (d *Dropdown[T]) MoveCursor(delta int) {
	n := len(d.visible)
	if n == 0 {
		return
	}
	next := d.cursor
	if next < 0 {
		if delta > 0 {
			next = 0
		} else {
			next = n - 1
		}
	} else {
		next = ((next+delta)%n + n) % n
	}
	d.HoverRow(next)
}

// HoverRow hovers the visible row at index i and unhovers the rest. A
// negative index clears the hover.
func (d *Dropdown[T]) HoverRow(i int) {
	if i >= len(d.visible) {
		i = -1
	}
	now := d.clock()
	for vi, idx := range d.visible {
		if vi == i {
			d.rows[idx].Hover(now)
		} else {
			d.rows[idx].Unhover(now)
		}
	}
	d.cursor = i
	d.ensureCursorVisible()
}

// Cursor returns the hovered visible row index, or -1.
func (d *Dropdown[T]) Cursor() int { return d.cursor }

// Pick forwards the hovered row to the owner and closes the popup.
func (d *Dropdown[T]) Pick() bool {
	return d.PickAt(d.cursor)
}

// PickAt forwards visible row i to the owner and closes the popup.
func (d *Dropdown[T]) PickAt(i int) bool {
	if i < 0 || i >= len(d.visible) {
		return false
	}
	item := d.rows[d.visible[i]].item
	events.Dropdown.Pick(item.Label)
	d.Close()
	if d.onPick != nil {
		d.onPick(item.Value)
	}
	return true
}

// window returns the visible row range currently drawn.
func (d *Dropdown[T]) window() (start, end int) {
	start = d.offset
	end = start + d.maxRows
	if end > len(d.visible) {
		end = len(d.visible)
	}
	return start, end
}

func (d *Dropdown[T]) ensureCursorVisible() {
	n := len(d.visible)
	maxOffset := n - d.maxRows
	if maxOffset < 0 {
		maxOffset = 0
	}
	if d.offset > maxOffset {
		d.offset = maxOffset
	}
	if d.offset < 0 {
		d.offset = 0
	}
	if d.cursor < 0 {
		return
	}
	if d.cursor < d.offset {
		d.offset = d.cursor
	}
	if d.cursor >= d.offset+d.maxRows {
		d.offset = d.cursor - d.maxRows + 1
	}
}

// popupWidth is the cell width shared by every popup line.
func (d *Dropdown[T]) popupWidth() int {
	width := ansi.StringWidth(d.filter.Prompt) + 8
	for _, row := range d.rows {
		if w := ansi.StringWidth(row.item.Label) + 4; w > width {
			width = w
		}
	}
	return width
}

// HeaderColor is the header glyph color displayed at now.
func (d *Dropdown[T]) HeaderColor(now time.Time) colorful.Color {
	return d.header.fg.Value(now)
}

// HeaderAccent is the accent the header last received.
func (d *Dropdown[T]) HeaderAccent() colorful.Color {
	return d.header.AccentColor()
}

// RowColors returns each row's displayed label color at now, in row order.
func (d *Dropdown[T]) RowColors(now time.Time) []colorful.Color {
	out := make([]colorful.Color, len(d.rows))
	for i, row := range d.rows {
		out[i] = row.fg.Value(now)
	}
	return out
}

func (d *Dropdown[T]) animating(now time.Time) bool {
	if d.header.animating(now) {
		return true
	}
	for _, row := range d.rows {
		if row.animating(now) {
			return true
		}
	}
	return false
}

func (d *Dropdown[T]) release() {
	for _, row := range d.rows {
		row.release()
	}
	d.rows = nil
	d.visible = nil
	if d.headerCancel != nil {
		d.headerCancel()
		d.headerCancel = nil
	}
	d.open = false
}
