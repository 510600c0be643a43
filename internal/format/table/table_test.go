package table

import "testing"

func TestFormatRightAlignsNumbers(t *testing.T) {
	got := Format([][]string{
		{"▶", "1,234"},
		{"♥", "56"},
	}, []Alignment{AlignLeft, AlignRight})
	want := []string{"▶ 1,234", "♥    56"}
	if len(got) != len(want) {
		t.Fatalf("expected %d rows, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("row %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestFormatLeavesTrailingColumnUnpadded(t *testing.T) {
	got := Format([][]string{
		{"a", "short"},
		{"bb", "longer"},
	}, []Alignment{AlignLeft, AlignLeft})
	if got[0] != "a  short" {
		t.Fatalf("expected %q, got %q", "a  short", got[0])
	}
}

func TestFormatEmpty(t *testing.T) {
	if got := Format(nil, nil); got != nil {
		t.Fatalf("expected nil, got %v", got)
	}
}

func TestWidthsCountsCells(t *testing.T) {
	widths := Widths([][]string{{"日本", "x"}, {"a"}})
	if widths[0] != 4 || widths[1] != 1 {
		t.Fatalf("expected [4 1], got %v", widths)
	}
}
