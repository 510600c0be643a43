package tabs

import (
	"iter"
	"slices"
	"testing"
	"time"

	colorful "github.com/lucasb-eyer/go-colorful"
)

type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

// settle moves past every transition so the widgets are quiescent.
func (c *fakeClock) settle() { c.Advance(2 * TransitionDuration) }

type ruleset int

const (
	rulesetOsu ruleset = iota
	rulesetTaiko
	rulesetCatch
	rulesetMania
)

func (r ruleset) String() string {
	switch r {
	case rulesetOsu:
		return "osu!"
	case rulesetTaiko:
		return "taiko"
	case rulesetCatch:
		return "catch"
	case rulesetMania:
		return "mania"
	}
	return "unknown"
}

func (r ruleset) Description() string {
	if r == rulesetCatch {
		return "osu!catch"
	}
	return r.String()
}

func allRulesets() iter.Seq[ruleset] {
	return slices.Values([]ruleset{rulesetOsu, rulesetTaiko, rulesetCatch, rulesetMania})
}

func newTestControl(t *testing.T, clock *fakeClock, opts ...Option[string]) *Control[string] {
	t.Helper()
	all := append([]Option[string]{WithClock[string](clock.Now)}, opts...)
	c := New[string](all...)
	t.Cleanup(c.Close)
	return c
}

func mustAdd[T comparable](t *testing.T, c *Control[T], values ...T) {
	t.Helper()
	for _, v := range values {
		if err := c.Add(v); err != nil {
			t.Fatalf("unexpected add error for %v: %v", v, err)
		}
	}
}

func mustHex(t *testing.T, s string) colorful.Color {
	t.Helper()
	c, err := colorful.Hex(s)
	if err != nil {
		t.Fatalf("bad hex %q: %v", s, err)
	}
	return c
}

func activeCount[T comparable](c *Control[T]) int {
	n := 0
	for _, v := range c.Items() {
		if tab, _ := c.Tab(v); tab.Active() {
			n++
		}
	}
	return n
}
