// Package motion implements the entrance transitions used by pawprint.
//
// A Transition describes a start state, an end state and timing. An
// Animator turns a Transition plus an elapsed time into the visual
// properties for that instant. Models keep only the mount time and
// sample on every frame, so re-rendering never restarts an animation.
package motion

import (
	"math"
	"time"
)

// Props are the animated visual properties of a block. Offsets are in
// pixels and are converted to cells by the painter.
type Props struct {
	Opacity float64
	X       float64
	Y       float64
}

// Rest is the resting state every entrance animation ends in.
var Rest = Props{Opacity: 1}

// Hidden is a fully transparent block at its resting position.
var Hidden = Props{}

// Lerp interpolates from p to to by t in [0, 1].
func (p Props) Lerp(to Props, t float64) Props {
	return Props{
		Opacity: p.Opacity + (to.Opacity-p.Opacity)*t,
		X:       p.X + (to.X-p.X)*t,
		Y:       p.Y + (to.Y-p.Y)*t,
	}
}

// Compose nests child inside p: opacities multiply and offsets add.
func (p Props) Compose(child Props) Props {
	return Props{
		Opacity: p.Opacity * child.Opacity,
		X:       p.X + child.X,
		Y:       p.Y + child.Y,
	}
}

// Easing maps linear progress in [0, 1] onto eased progress.
type Easing func(t float64) float64

// Linear is the identity easing.
func Linear(t float64) float64 { return t }

// EaseOut decelerates towards the end (cubic).
func EaseOut(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}

// Transition animates from From to To, starting Delay after mount and
// lasting Duration.
type Transition struct {
	From     Props
	To       Props
	Delay    time.Duration
	Duration time.Duration
	Ease     Easing
}

// Enter returns an entrance transition from `from` to Rest.
func Enter(from Props, delay, duration time.Duration) Transition {
	return Transition{From: from, To: Rest, Delay: delay, Duration: duration, Ease: EaseOut}
}

// End is the time after mount at which the transition settles.
func (t Transition) End() time.Duration {
	return t.Delay + t.Duration
}

// Progress returns linear progress at elapsed, clamped to [0, 1].
func (t Transition) Progress(elapsed time.Duration) float64 {
	if t.Duration <= 0 {
		if elapsed >= t.Delay {
			return 1
		}
		return 0
	}
	if elapsed <= t.Delay {
		return 0
	}
	p := float64(elapsed-t.Delay) / float64(t.Duration)
	return math.Min(1, math.Max(0, p))
}

// Stagger returns the entrance delay of the item at index i. It never
// decreases with i.
func Stagger(i int, step time.Duration) time.Duration {
	if i < 0 || step < 0 {
		return 0
	}
	return time.Duration(i) * step
}

// Timing groups the fixed durations used by the page.
type Timing struct {
	Page    time.Duration // container fade-in after load
	Panel   time.Duration // panel wrapper transition after a switch
	Item    time.Duration // each list item's own transition
	Stagger time.Duration // per-position delay increment
}
