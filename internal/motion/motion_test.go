package motion

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTweenSample(t *testing.T) {
	tr := Enter(Props{Opacity: 0, Y: 50}, 100*time.Millisecond, 500*time.Millisecond)
	var a Tween

	assert.Equal(t, tr.From, a.Sample(tr, 0))
	assert.Equal(t, tr.From, a.Sample(tr, 100*time.Millisecond), "still inside the delay")

	mid := a.Sample(tr, 350*time.Millisecond)
	assert.Greater(t, mid.Opacity, 0.0)
	assert.Less(t, mid.Opacity, 1.0)
	assert.Greater(t, mid.Y, 0.0)
	assert.Less(t, mid.Y, 50.0)

	assert.Equal(t, Rest, a.Sample(tr, 600*time.Millisecond))
	assert.Equal(t, Rest, a.Sample(tr, time.Hour))
	assert.False(t, a.Done(tr, 599*time.Millisecond))
	assert.True(t, a.Done(tr, 600*time.Millisecond))
}

func TestTweenMonotonic(t *testing.T) {
	tr := Enter(Props{Opacity: 0, X: -50}, 0, 500*time.Millisecond)
	var a Tween
	prev := a.Sample(tr, 0)
	for ms := 10; ms <= 500; ms += 10 {
		cur := a.Sample(tr, time.Duration(ms)*time.Millisecond)
		require.GreaterOrEqual(t, cur.Opacity, prev.Opacity)
		require.GreaterOrEqual(t, cur.X, prev.X)
		prev = cur
	}
}

func TestInstant(t *testing.T) {
	tr := Enter(Props{}, time.Second, time.Second)
	var a Instant
	assert.Equal(t, Rest, a.Sample(tr, 0))
	assert.True(t, a.Done(tr, 0))
	assert.IsType(t, Instant{}, For(false))
	assert.IsType(t, Tween{}, For(true))
}

func TestZeroDurationTransition(t *testing.T) {
	tr := Transition{From: Hidden, To: Rest, Delay: 50 * time.Millisecond}
	assert.Equal(t, 0.0, tr.Progress(10*time.Millisecond))
	assert.Equal(t, 1.0, tr.Progress(50*time.Millisecond))
}

func TestStagger(t *testing.T) {
	step := 100 * time.Millisecond
	assert.Equal(t, time.Duration(0), Stagger(0, step))
	assert.Equal(t, 300*time.Millisecond, Stagger(3, step))
	assert.Equal(t, time.Duration(0), Stagger(-1, step))
	assert.Equal(t, time.Duration(0), Stagger(3, -step), "a negative step must not make delays decrease")
}

func TestCompose(t *testing.T) {
	parent := Props{Opacity: 0.5, Y: 10}
	child := Props{Opacity: 0.5, X: -4, Y: 2}
	assert.Equal(t, Props{Opacity: 0.25, X: -4, Y: 12}, parent.Compose(child))
	assert.Equal(t, child, Rest.Compose(child))
}

func TestSpringWithoutStiffnessRests(t *testing.T) {
	s := NewSpring(60, 0, 10, 1, -50, 0)
	assert.True(t, s.Settled())
	assert.Equal(t, 0.0, s.Pos)
	assert.Equal(t, 0.0, s.Step().Pos)
}

func TestSpringSettles(t *testing.T) {
	s := NewSpring(60, 100, 10, 1, -50, 0)
	require.False(t, s.Settled())

	overshot := false
	for i := 0; i < 600 && !s.Settled(); i++ {
		s = s.Step()
		if s.Pos > 0 {
			overshot = true
		}
	}
	assert.True(t, s.Settled())
	assert.Equal(t, 0.0, s.Pos)
	assert.True(t, overshot, "an underdamped spring should overshoot")

	// Stepping a settled spring is a no-op.
	assert.Equal(t, s, s.Step())
}

func TestFade(t *testing.T) {
	assert.Equal(t, "#1e40af", Fade("#1e40af", "#ffffff", 1))
	assert.Equal(t, "#ffffff", Fade("#1e40af", "#ffffff", 0))
	assert.Equal(t, "not-a-color", Fade("not-a-color", "#ffffff", 0.5))

	mid := Fade("#000000", "#ffffff", 0.5)
	assert.NotEqual(t, "#000000", mid)
	assert.NotEqual(t, "#ffffff", mid)
}
