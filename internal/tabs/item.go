package tabs

import "fmt"

// Describer lets enum-like values supply display text distinct from their
// String form.
type Describer interface {
	Description() string
}

// Item pairs a value with its resolved display label.
type Item[T comparable] struct {
	Value T
	Label string
}

// NewItem resolves the label for v.
func NewItem[T comparable](v T) Item[T] {
	return Item[T]{Value: v, Label: LabelOf(v)}
}

// LabelOf returns the display text for v: its Description when it has one,
// then its String form, then fmt's default formatting.
func LabelOf(v any) string {
	switch x := v.(type) {
	case Describer:
		return x.Description()
	case fmt.Stringer:
		return x.String()
	case string:
		return x
	}
	return fmt.Sprint(v)
}
