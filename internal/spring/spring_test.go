package spring

import (
	"math"
	"testing"
)

func entranceConfig() Config {
	return Config{From: 80, To: 0, Stiffness: 30, Damping: 5, Mass: 1}
}

func TestMotion_SettlesExactlyOnTarget(t *testing.T) {
	t.Parallel()

	var values []float64
	New(entranceConfig()).Start(func(v float64) {
		values = append(values, v)
	})

	if len(values) < 2 {
		t.Fatalf("got %d steps, want a multi-step animation", len(values))
	}
	if last := values[len(values)-1]; last != 0 {
		t.Fatalf("last value = %v, want exactly 0", last)
	}
	if first := values[0]; first > 80 || first < 70 {
		t.Fatalf("first value = %v, want close to the start of 80", first)
	}
	if len(values) >= int(maxDuration/Frame) {
		t.Fatalf("took %d steps, should settle before the safety cap", len(values))
	}
}

func TestMotion_UnderdampedOvershoots(t *testing.T) {
	t.Parallel()

	minV := math.Inf(1)
	New(entranceConfig()).Start(func(v float64) {
		minV = math.Min(minV, v)
	})
	if minV >= 0 {
		t.Fatalf("min value = %v, want an overshoot below 0", minV)
	}
}

func TestMotion_NextAfterDone(t *testing.T) {
	t.Parallel()

	m := New(entranceConfig())
	m.Start(func(float64) {})
	if !m.Done() {
		t.Fatal("Done() = false after Start returned")
	}
	v, done := m.Next()
	if v != 0 || !done {
		t.Fatalf("Next() after done = (%v, %v), want (0, true)", v, done)
	}
}

func TestMotion_ZeroStiffnessSnaps(t *testing.T) {
	t.Parallel()

	calls := 0
	New(Config{From: 10, To: 3}).Start(func(v float64) {
		calls++
		if v != 3 {
			t.Errorf("value = %v, want 3", v)
		}
	})
	if calls != 1 {
		t.Fatalf("step calls = %d, want 1", calls)
	}
}

func TestMotion_ZeroMassDefaultsToOne(t *testing.T) {
	t.Parallel()

	withMass := 0
	New(entranceConfig()).Start(func(float64) { withMass++ })

	cfg := entranceConfig()
	cfg.Mass = 0
	withoutMass := 0
	New(cfg).Start(func(float64) { withoutMass++ })

	if withMass != withoutMass {
		t.Fatalf("steps with mass 1 = %d, mass 0 = %d; want equal", withMass, withoutMass)
	}
}
