package motion

import "time"

// Animator samples transitions. Implementations must be pure: the same
// transition and elapsed time always produce the same props.
type Animator interface {
	Sample(tr Transition, elapsed time.Duration) Props
	Done(tr Transition, elapsed time.Duration) bool
}

// Tween interpolates between the endpoints with the transition's easing.
type Tween struct{}

// Sample implements Animator.
func (Tween) Sample(tr Transition, elapsed time.Duration) Props {
	p := tr.Progress(elapsed)
	ease := tr.Ease
	if ease == nil {
		ease = Linear
	}
	switch p {
	case 0:
		return tr.From
	case 1:
		return tr.To
	}
	return tr.From.Lerp(tr.To, ease(p))
}

// Done implements Animator.
func (Tween) Done(tr Transition, elapsed time.Duration) bool {
	return elapsed >= tr.End()
}

// Instant skips every transition straight to its end state.
type Instant struct{}

// Sample implements Animator.
func (Instant) Sample(tr Transition, _ time.Duration) Props { return tr.To }

// Done implements Animator.
func (Instant) Done(Transition, time.Duration) bool { return true }

// For returns Tween when motion is enabled and Instant otherwise.
func For(enabled bool) Animator {
	if enabled {
		return Tween{}
	}
	return Instant{}
}
