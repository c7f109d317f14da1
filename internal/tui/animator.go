package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/tinytelemetry/brewdeck/internal/anim"
	"github.com/tinytelemetry/brewdeck/internal/card"
	"github.com/tinytelemetry/brewdeck/internal/logger"
	"github.com/tinytelemetry/brewdeck/internal/spring"
)

// cardStartMsg fires once a card's stagger delay has elapsed.
type cardStartMsg struct{ view *CardView }

// cardFrameMsg advances a card's spring by one frame.
type cardFrameMsg struct{ view *CardView }

// tickFunc matches tea.Tick.
type tickFunc func(d time.Duration, fn func(time.Time) tea.Msg) tea.Cmd

// Animator drives entrance animations as independent tick chains, one per
// card. A started chain always runs until its spring settles.
type Animator struct {
	entrance anim.Entrance
	frame    time.Duration
	tick     tickFunc
	log      *logger.Logger
	warned   bool
}

// NewAnimator returns an animator for e. When e has no spring, cards are
// snapped to their final state instead.
func NewAnimator(e anim.Entrance, log *logger.Logger) *Animator {
	if log == nil {
		log = logger.Nop()
	}
	return &Animator{
		entrance: e,
		frame:    spring.Frame,
		tick:     tea.Tick,
		log:      log,
	}
}

// Enabled reports whether cards will actually move.
func (a *Animator) Enabled() bool { return a.entrance.Enabled() }

// AnimateIn schedules the entrance of v, the index-th card. The returned
// command may be nil.
func (a *Animator) AnimateIn(v *CardView, index int) tea.Cmd {
	if !a.entrance.Enabled() {
		if !a.warned {
			a.log.Warnw("spring animation unavailable, showing cards without entrance motion")
			a.warned = true
		}
		v.State = card.FinalState()
		return nil
	}

	return a.tick(a.entrance.Delay(index), func(time.Time) tea.Msg {
		return cardStartMsg{view: v}
	})
}

// Update handles animation messages. handled is false for anything else.
func (a *Animator) Update(msg tea.Msg) (cmd tea.Cmd, handled bool) {
	switch msg := msg.(type) {
	case cardStartMsg:
		msg.view.motion = a.entrance.Begin()
		return a.step(msg.view), true
	case cardFrameMsg:
		return a.step(msg.view), true
	}
	return nil, false
}

// step applies one spring value and schedules the next frame until settled.
func (a *Animator) step(v *CardView) tea.Cmd {
	if v.motion == nil {
		return nil
	}
	value, done := v.motion.Next()
	v.State = anim.Apply(value)
	if done {
		return nil
	}
	return a.tick(a.frame, func(time.Time) tea.Msg {
		return cardFrameMsg{view: v}
	})
}
