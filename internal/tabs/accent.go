package tabs

import (
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/atomicstack/tabstrip/internal/logging/events"
)

type accentSub struct {
	id int
	fn func(colorful.Color)
}

// Accent broadcasts one color to every subscriber. Delivery is synchronous
// and in subscription order.
type Accent struct {
	fallback colorful.Color
	value    colorful.Color
	explicit bool
	subs     []accentSub
	nextID   int
}

// NewAccent returns a broadcaster that reports fallback until Set is called.
func NewAccent(fallback colorful.Color) *Accent {
	return &Accent{fallback: fallback}
}

// Value returns the last explicitly set color, or the fallback.
func (a *Accent) Value() colorful.Color {
	if a.explicit {
		return a.value
	}
	return a.fallback
}

// Explicit reports whether Set has ever been called.
func (a *Accent) Explicit() bool {
	return a.explicit
}

// Set stores c and delivers it to every subscriber.
func (a *Accent) Set(c colorful.Color) {
	a.value = c
	a.explicit = true
	events.Accent.Set(c.Hex(), len(a.subs))
	for _, sub := range append([]accentSub(nil), a.subs...) {
		sub.fn(c)
	}
}

// Subscribe registers fn and immediately delivers the current value. The
// returned function unregisters it; calling it more than once is harmless.
func (a *Accent) Subscribe(fn func(colorful.Color)) (cancel func()) {
	a.nextID++
	id := a.nextID
	a.subs = append(a.subs, accentSub{id: id, fn: fn})
	fn(a.Value())
	return func() { a.unsubscribe(id) }
}

// Subscribers reports the number of live subscriptions.
func (a *Accent) Subscribers() int {
	return len(a.subs)
}

func (a *Accent) unsubscribe(id int) {
	for i, sub := range a.subs {
		if sub.id == id {
			a.subs = append(a.subs[:i], a.subs[i+1:]...)
			return
		}
	}
}
