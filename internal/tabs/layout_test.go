package tabs

import (
	"math/rand/v2"
	"slices"
	"testing"
)

func TestPartitionTable(t *testing.T) {
	cases := []struct {
		name      string
		widths    []int
		available int
		reserve   int
		spacing   int
		want      int
	}{
		{"empty", nil, 10, 3, 2, 0},
		{"all fit", []int{4, 4}, 20, 3, 2, 2},
		{"exact fit", []int{4, 4}, 13, 3, 2, 2},
		{"one cell short", []int{4, 4}, 12, 3, 2, 1},
		{"nothing fits", []int{8, 1}, 10, 3, 2, 0},
		{"suffix after first miss", []int{4, 9, 1}, 12, 3, 2, 1},
		{"zero width", []int{3}, 0, 3, 2, 0},
		{"no spacing", []int{1, 1, 1}, 5, 2, 0, 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Partition(tc.widths, tc.available, tc.reserve, tc.spacing); got != tc.want {
				t.Fatalf("expected %d inline, got %d", tc.want, got)
			}
		})
	}
}

func TestPartitionKeepsPrefixAndOverflowsSuffix(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 11))
	for iter := 0; iter < 500; iter++ {
		widths := make([]int, r.IntN(8))
		for i := range widths {
			widths[i] = 1 + r.IntN(12)
		}
		available := r.IntN(60)
		const reserve, spacing = 3, 2

		n := Partition(widths, available, reserve, spacing)
		if n < 0 || n > len(widths) {
			t.Fatalf("inline count %d out of range for %v", n, widths)
		}
		used := 0
		for i, w := range widths[:n] {
			if i > 0 {
				used += spacing
			}
			used += w
		}
		if used > available-reserve {
			t.Fatalf("inline items %v use %d cells, budget %d", widths[:n], used, available-reserve)
		}
		if n < len(widths) {
			next := widths[n]
			if n > 0 {
				next += spacing
			}
			if used+next <= available-reserve {
				t.Fatalf("item %d of %v would have fit at width %d", n, widths, available)
			}
		}
	}
}

func TestControlPartitionIsComplete(t *testing.T) {
	clock := newFakeClock()
	labels := []string{"alpha", "be", "gamma-ray", "d", "epsilon", "zeta"}
	for width := 0; width <= 40; width++ {
		c := newTestControl(t, clock, WithWidth[string](width))
		mustAdd(t, c, labels...)

		inline, overflow := c.Inline(), c.Overflow()
		joined := append(slices.Clone(inline), overflow...)
		if !slices.Equal(joined, labels) {
			t.Fatalf("width %d: inline %v + overflow %v != items %v", width, inline, overflow, labels)
		}
		rows := make([]string, 0, c.Dropdown().Len())
		for _, item := range c.Dropdown().Items() {
			rows = append(rows, item.Value)
		}
		if !slices.Equal(rows, overflow) {
			t.Fatalf("width %d: dropdown rows %v, expected %v", width, rows, overflow)
		}
		if c.HeaderVisible() != (len(overflow) > 0) {
			t.Fatalf("width %d: header visibility %v with %d overflowed", width, c.HeaderVisible(), len(overflow))
		}
	}
}
