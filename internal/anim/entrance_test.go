package anim

import (
	"testing"
	"time"

	"github.com/tinytelemetry/brewdeck/internal/card"
	"github.com/tinytelemetry/brewdeck/internal/spring"
)

func TestDelay_Stagger(t *testing.T) {
	t.Parallel()

	e := NewEntrance(spring.New)
	for i := 0; i < 10; i++ {
		for j := i + 1; j < 10; j++ {
			if got, want := e.Delay(j)-e.Delay(i), time.Duration(j-i)*80*time.Millisecond; got != want {
				t.Fatalf("Delay(%d)-Delay(%d) = %v, want %v", j, i, got, want)
			}
		}
	}
	if got := e.Delay(0); got != 0 {
		t.Fatalf("Delay(0) = %v, want 0", got)
	}
}

func TestBegin_UsesEntranceSpring(t *testing.T) {
	t.Parallel()

	var got spring.Config
	e := NewEntrance(func(cfg spring.Config) *spring.Motion {
		got = cfg
		return spring.New(cfg)
	})
	e.Begin()

	want := spring.Config{From: 80, To: 0, Stiffness: 30, Damping: 5, Mass: 1}
	if got != want {
		t.Fatalf("spring config = %+v, want %+v", got, want)
	}
}

func TestEnabled(t *testing.T) {
	t.Parallel()

	if NewEntrance(nil).Enabled() {
		t.Fatal("entrance without spring reports enabled")
	}
	if !NewEntrance(spring.New).Enabled() {
		t.Fatal("entrance with spring reports disabled")
	}
}

func TestKeyframes(t *testing.T) {
	t.Parallel()

	frames, dur := NewEntrance(spring.New).Keyframes()
	if len(frames) < 3 || len(frames) > maxKeyframes+2 {
		t.Fatalf("keyframe count = %d", len(frames))
	}
	if dur <= 0 {
		t.Fatalf("duration = %v, want > 0", dur)
	}
	if first := frames[0]; first.Percent != 0 || first.State.Opacity != 0 {
		t.Fatalf("first keyframe = %+v", first)
	}
	last := frames[len(frames)-1]
	if last.Percent != 100 || last.State != card.FinalState() {
		t.Fatalf("last keyframe = %+v, want 100%% at final state", last)
	}
	for i := 1; i < len(frames); i++ {
		if frames[i].Percent <= frames[i-1].Percent {
			t.Fatalf("keyframes not increasing at %d: %v <= %v", i, frames[i].Percent, frames[i-1].Percent)
		}
	}
}

func TestKeyframes_Disabled(t *testing.T) {
	t.Parallel()

	frames, dur := NewEntrance(nil).Keyframes()
	if frames != nil || dur != 0 {
		t.Fatalf("disabled keyframes = %v, %v", frames, dur)
	}
}
