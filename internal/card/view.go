package card

import "math"

// Entrance geometry: cards start InitialOffset units below their resting
// position and are fully opaque once within 0 units of it.
const (
	InitialOffset = 40.0
	FadeDistance  = 40.0
)

// ViewState is the animated presentation of one card.
type ViewState struct {
	Offset  float64
	Opacity float64
}

// InitialState is how a card looks before its entrance animation starts.
func InitialState() ViewState {
	return ViewState{Offset: InitialOffset, Opacity: 0}
}

// FinalState is the resting position every card ends in.
func FinalState() ViewState {
	return ViewState{Offset: 0, Opacity: 1}
}

// StateAt places the card at offset v with the matching opacity.
func StateAt(v float64) ViewState {
	return ViewState{Offset: v, Opacity: OpacityAt(v)}
}

// OpacityAt fades in as the offset approaches zero, clamped into [0, 1].
func OpacityAt(v float64) float64 {
	o := 1 - math.Min(1, math.Abs(v)/FadeDistance)
	return math.Max(0, math.Min(1, o))
}
