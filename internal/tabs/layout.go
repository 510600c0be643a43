package tabs

// Partition returns how many leading items stay inline when laid out
// left-to-right in available cells, after reserving room for the overflow
// header. Items are separated by spacing cells. The first item that does not
// fit, and every item after it, overflows.
func Partition(widths []int, available, reserve, spacing int) int {
	budget := available - reserve
	used := 0
	for i, w := range widths {
		need := w
		if i > 0 {
			need += spacing
		}
		if used+need > budget {
			return i
		}
		used += need
	}
	return len(widths)
}

// span is the half-open cell range [start, end) occupied by an inline tab.
type span struct {
	start int
	end   int
}

func (s span) contains(x int) bool {
	return x >= s.start && x < s.end
}

func layoutSpans(widths []int, spacing int) []span {
	spans := make([]span, len(widths))
	x := 0
	for i, w := range widths {
		if i > 0 {
			x += spacing
		}
		spans[i] = span{start: x, end: x + w}
		x += w
	}
	return spans
}
