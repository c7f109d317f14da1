// Package spring simulates a damped spring moving one value from a start to
// an end position, one fixed frame at a time.
package spring

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
)

// FPS is the simulation rate.
const FPS = 60

// Frame is the simulated time covered by one step.
const Frame = time.Second / FPS

const (
	restDelta   = 0.01
	restSpeed   = 0.01
	maxDuration = 10 * time.Second
)

// Config holds the physical parameters of a spring.
type Config struct {
	From      float64
	To        float64
	Stiffness float64
	Damping   float64
	Mass      float64
}

// Func builds a Motion for a config. A nil Func means no spring is available.
type Func func(Config) *Motion

// Motion is a single run of a spring simulation. It is not safe for
// concurrent use.
type Motion struct {
	cfg      Config
	spring   harmonica.Spring
	pos      float64
	vel      float64
	steps    int
	maxSteps int
	done     bool
}

// New returns a Motion positioned at cfg.From.
func New(cfg Config) *Motion {
	mass := cfg.Mass
	if mass <= 0 {
		mass = 1
	}

	m := &Motion{
		cfg:      cfg,
		pos:      cfg.From,
		maxSteps: int(maxDuration / Frame),
	}
	if cfg.Stiffness <= 0 {
		// Without a restoring force the value never moves; settle on the first step.
		m.maxSteps = 1
		return m
	}

	angularFrequency := math.Sqrt(cfg.Stiffness / mass)
	dampingRatio := cfg.Damping / (2 * math.Sqrt(cfg.Stiffness*mass))
	m.spring = harmonica.NewSpring(harmonica.FPS(FPS), angularFrequency, dampingRatio)
	return m
}

// Done reports whether the motion has settled.
func (m *Motion) Done() bool { return m.done }

// Next advances one frame and returns the new value. Once done is true the
// value is exactly the target and further calls keep returning it.
func (m *Motion) Next() (value float64, done bool) {
	if m.done {
		return m.cfg.To, true
	}

	if m.cfg.Stiffness > 0 {
		m.pos, m.vel = m.spring.Update(m.pos, m.vel, m.cfg.To)
	}
	m.steps++

	settled := math.Abs(m.vel) < restSpeed && math.Abs(m.pos-m.cfg.To) < restDelta
	if settled || m.steps >= m.maxSteps {
		m.pos, m.vel = m.cfg.To, 0
		m.done = true
	}
	return m.pos, m.done
}

// Start runs the simulation to completion, calling step once per frame with
// the current value. The last value passed is the target.
func (m *Motion) Start(step func(float64)) {
	for {
		v, done := m.Next()
		step(v)
		if done {
			return
		}
	}
}
