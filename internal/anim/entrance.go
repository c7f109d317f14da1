// Package anim schedules the staggered spring entrance of brewery cards.
package anim

import (
	"time"

	"github.com/tinytelemetry/brewdeck/internal/card"
	"github.com/tinytelemetry/brewdeck/internal/spring"
)

// DefaultStagger separates the start of consecutive card animations.
const DefaultStagger = 80 * time.Millisecond

// EntranceSpring moves a card from 80 units below its slot up to rest.
var EntranceSpring = spring.Config{
	From:      80,
	To:        0,
	Stiffness: 30,
	Damping:   5,
	Mass:      1,
}

// Entrance describes how cards animate in. A nil Spring disables motion and
// cards are shown in their final state immediately.
type Entrance struct {
	Spring  spring.Func
	Stagger time.Duration
}

// NewEntrance returns an Entrance with the default stagger.
func NewEntrance(fn spring.Func) Entrance {
	return Entrance{Spring: fn, Stagger: DefaultStagger}
}

// Enabled reports whether a spring is available.
func (e Entrance) Enabled() bool { return e.Spring != nil }

// Delay is how long the card at index waits before it starts moving.
func (e Entrance) Delay(index int) time.Duration {
	if index < 0 {
		index = 0
	}
	return time.Duration(index) * e.Stagger
}

// Begin starts a new spring run. Callers must check Enabled first.
func (e Entrance) Begin() *spring.Motion {
	return e.Spring(EntranceSpring)
}

// Apply converts one spring value into the card's view state.
func Apply(v float64) card.ViewState {
	return card.StateAt(v)
}
