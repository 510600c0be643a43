// Package anim provides time-driven interpolation for widget properties.
//
// A Tween never owns a timer. Callers evaluate it at the instant being drawn
// and keep requesting frames while Animating reports true.
package anim

import (
	"time"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Easing maps linear progress in [0,1] onto eased progress.
type Easing func(float64) float64

// Linear applies no easing.
func Linear(t float64) float64 { return t }

// OutQuint decelerates sharply towards the end of the transition.
func OutQuint(t float64) float64 {
	inv := 1 - t
	return 1 - inv*inv*inv*inv*inv
}

// OutQuad is a gentler deceleration used for short layout moves.
func OutQuad(t float64) float64 {
	return t * (2 - t)
}

// Lerp interpolates between two values at eased progress t.
type Lerp[V any] func(from, to V, t float64) V

// Tween animates a single value. The zero value is unusable; construct one
// with New, NewColor or NewFloat.
type Tween[V any] struct {
	from     V
	to       V
	start    time.Time
	duration time.Duration
	easing   Easing
	lerp     Lerp[V]
}

// New returns a tween resting at initial.
func New[V any](initial V, lerp Lerp[V]) Tween[V] {
	return Tween[V]{from: initial, to: initial, easing: Linear, lerp: lerp}
}

// NewColor returns a color tween blending in RGB space.
func NewColor(initial colorful.Color) Tween[colorful.Color] {
	return New(initial, func(from, to colorful.Color, t float64) colorful.Color {
		return from.BlendRgb(to, t).Clamped()
	})
}

// NewFloat returns a scalar tween, typically used for opacity.
func NewFloat(initial float64) Tween[float64] {
	return New(initial, func(from, to float64, t float64) float64 {
		return from + (to-from)*t
	})
}

// Value evaluates the tween at now.
func (tw *Tween[V]) Value(now time.Time) V {
	p := tw.progress(now)
	switch {
	case p >= 1:
		return tw.to
	case p <= 0:
		return tw.from
	}
	return tw.lerp(tw.from, tw.to, tw.easing(p))
}

// Target reports the value the tween will rest at.
func (tw *Tween[V]) Target() V {
	return tw.to
}

// Animating reports whether the tween has not yet reached its target at now.
func (tw *Tween[V]) Animating(now time.Time) bool {
	return tw.progress(now) < 1
}

// To starts a transition towards target. The transition begins from the value
// currently displayed, so an interrupted animation continues smoothly.
func (tw *Tween[V]) To(target V, duration time.Duration, easing Easing, now time.Time) {
	tw.from = tw.Value(now)
	tw.to = target
	tw.start = now
	tw.duration = duration
	if easing == nil {
		easing = Linear
	}
	tw.easing = easing
}

// Set jumps to v immediately, cancelling any transition.
func (tw *Tween[V]) Set(v V) {
	tw.from = v
	tw.to = v
	tw.duration = 0
}

func (tw *Tween[V]) progress(now time.Time) float64 {
	if tw.duration <= 0 {
		return 1
	}
	elapsed := now.Sub(tw.start)
	if elapsed <= 0 {
		return 0
	}
	if elapsed >= tw.duration {
		return 1
	}
	return float64(elapsed) / float64(tw.duration)
}
