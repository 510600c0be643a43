// Package state tracks cursor and viewport positions for scrolling lists.
package state

// List is the cursor and viewport of a list whose items live elsewhere.
// Cursor is -1 while nothing is hovered.
type List struct {
	Len            int
	Cursor         int
	ViewportOffset int
}

// NewList returns a list of n items with no cursor.
func NewList(n int) *List {
	return &List{Len: n, Cursor: -1}
}

// Resize changes the item count, clamping the cursor and viewport.
func (l *List) Resize(n int) {
	l.Len = n
	if l.Cursor >= n {
		l.Cursor = n - 1
	}
	if l.ViewportOffset > max(n-1, 0) {
		l.ViewportOffset = max(n-1, 0)
	}
}

// MoveCursorHome moves the cursor to the first item.
func (l *List) MoveCursorHome() bool {
	if l.Len == 0 {
		l.Cursor = -1
		return false
	}
	old := l.Cursor
	l.Cursor = 0
	return old != l.Cursor
}

// MoveCursorEnd moves the cursor to the last item.
func (l *List) MoveCursorEnd() bool {
	if l.Len == 0 {
		l.Cursor = -1
		return false
	}
	old := l.Cursor
	l.Cursor = l.Len - 1
	return old != l.Cursor
}

// MoveCursorPageUp moves the cursor up by the given page size.
func (l *List) MoveCursorPageUp(maxVisible int) bool {
	return l.MoveCursorBy(-l.pageSize(maxVisible))
}

// MoveCursorPageDown moves the cursor down by the given page size.
func (l *List) MoveCursorPageDown(maxVisible int) bool {
	return l.MoveCursorBy(l.pageSize(maxVisible))
}

// MoveCursorBy moves the cursor by delta, clamped to the list bounds. A list
// without a cursor starts from the first item.
func (l *List) MoveCursorBy(delta int) bool {
	if l.Len == 0 {
		l.Cursor = -1
		return false
	}
	old := l.Cursor
	if l.Cursor < 0 {
		l.Cursor = 0
		return true
	}
	l.Cursor += delta
	if l.Cursor < 0 {
		l.Cursor = 0
	}
	if l.Cursor >= l.Len {
		l.Cursor = l.Len - 1
	}
	return l.Cursor != old
}

// SetCursor places the cursor at i, or clears it when i is out of range.
func (l *List) SetCursor(i int) bool {
	if i < 0 || i >= l.Len {
		i = -1
	}
	old := l.Cursor
	l.Cursor = i
	return old != l.Cursor
}

func (l *List) pageSize(maxVisible int) int {
	if l.Len == 0 {
		return 0
	}
	size := maxVisible
	if size <= 0 || size > l.Len {
		size = l.Len
	}
	return max(size, 1)
}

// EnsureCursorVisible adjusts the viewport offset so the cursor stays visible.
func (l *List) EnsureCursorVisible(maxVisible int) {
	if l.Len == 0 {
		l.Cursor = -1
		l.ViewportOffset = 0
		return
	}
	if l.Cursor >= l.Len {
		l.Cursor = l.Len - 1
	}
	if maxVisible <= 0 {
		l.ViewportOffset = 0
		return
	}
	maxOffset := max(l.Len-maxVisible, 0)
	l.ViewportOffset = min(max(l.ViewportOffset, 0), maxOffset)
	if l.Cursor < 0 {
		return
	}
	if l.Cursor < l.ViewportOffset {
		l.ViewportOffset = l.Cursor
	}
	if upper := l.ViewportOffset + maxVisible - 1; l.Cursor > upper {
		l.ViewportOffset = min(l.Cursor-maxVisible+1, maxOffset)
	}
}

// Window returns the half-open index range shown in maxVisible slots.
func (l *List) Window(maxVisible int) (start, end int) {
	if maxVisible <= 0 {
		return 0, l.Len
	}
	start = min(l.ViewportOffset, l.Len)
	return start, min(start+maxVisible, l.Len)
}
