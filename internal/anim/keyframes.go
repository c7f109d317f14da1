package anim

import (
	"time"

	"github.com/tinytelemetry/brewdeck/internal/card"
	"github.com/tinytelemetry/brewdeck/internal/spring"
)

const maxKeyframes = 60

// Keyframe is the card state at Percent (0-100) of the animation.
type Keyframe struct {
	Percent float64
	State   card.ViewState
}

// Keyframes samples one full spring run so it can be replayed by a renderer
// with its own clock, e.g. CSS. It returns nil when the entrance is disabled.
func (e Entrance) Keyframes() ([]Keyframe, time.Duration) {
	if !e.Enabled() {
		return nil, 0
	}

	var values []float64
	e.Begin().Start(func(v float64) {
		values = append(values, v)
	})

	n := len(values)
	stride := 1
	if n > maxKeyframes {
		stride = (n + maxKeyframes - 1) / maxKeyframes
	}

	frames := []Keyframe{{Percent: 0, State: Apply(EntranceSpring.From)}}
	for i := stride - 1; i < n; i += stride {
		frames = append(frames, Keyframe{
			Percent: float64(i+1) / float64(n) * 100,
			State:   Apply(values[i]),
		})
	}
	if last := frames[len(frames)-1]; last.Percent < 100 {
		frames = append(frames, Keyframe{Percent: 100, State: Apply(values[n-1])})
	}

	return frames, time.Duration(n) * spring.Frame
}
