package motion

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

const (
	settlePos = 0.5
	settleVel = 1.0
)

// Spring is a damped spring moving a single value towards Target, stepped
// once per frame.
type Spring struct {
	spring harmonica.Spring
	Pos    float64
	Vel    float64
	Target float64
}

// NewSpring builds a spring from physical parameters (stiffness, damping
// and mass) running at fps frames per second. Without stiffness nothing
// pulls the value, so the spring starts at rest on its target.
func NewSpring(fps int, stiffness, damping, mass, from, to float64) Spring {
	if stiffness <= 0 {
		return Spring{Pos: to, Target: to}
	}
	if fps <= 0 {
		fps = 60
	}
	if mass <= 0 {
		mass = 1
	}
	omega := math.Sqrt(stiffness / mass)
	zeta := damping / (2 * math.Sqrt(stiffness*mass))
	return Spring{
		spring: harmonica.NewSpring(harmonica.FPS(fps), omega, zeta),
		Pos:    from,
		Target: to,
	}
}

// Step advances the spring by one frame. A settled spring snaps onto its
// target and stays there.
func (s Spring) Step() Spring {
	if s.Settled() {
		return s.Snap()
	}
	s.Pos, s.Vel = s.spring.Update(s.Pos, s.Vel, s.Target)
	if s.Settled() {
		return s.Snap()
	}
	return s
}

// Settled reports whether the spring is close enough to rest.
func (s Spring) Settled() bool {
	return math.Abs(s.Pos-s.Target) < settlePos && math.Abs(s.Vel) < settleVel
}

// Snap puts the spring at rest on its target.
func (s Spring) Snap() Spring {
	s.Pos = s.Target
	s.Vel = 0
	return s
}
