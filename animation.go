package spotlight

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const maxAnimatedFields = 3

// Animation tweens up to three float64 fields simultaneously with a shared
// duration and easing function. Hosts drive it by calling Update(dt) once per
// frame after Start; OnStart fires from Start and OnEnd fires from the Update
// that finishes the last tween.
//
// There is no cancellation: once started, an animation runs to completion.
type Animation struct {
	Name string

	tweens   [maxAnimatedFields]*gween.Tween
	fields   [maxAnimatedFields]*float64
	targets  [maxAnimatedFields]float64
	count    int
	duration float32
	easing   ease.TweenFunc

	OnStart func()
	OnEnd   func()

	started bool
	Done    bool
}

// NewAnimation creates an animation with the given duration and easing.
// A nil easing uses DefaultEasing.
func NewAnimation(name string, duration time.Duration, fn ease.TweenFunc) *Animation {
	if fn == nil {
		fn = DefaultEasing
	}
	return &Animation{
		Name:     name,
		duration: float32(duration.Seconds()),
		easing:   fn,
	}
}

// Tween adds field to the animation, moving it from its current value to to.
// Panics if more than three fields are added.
func (a *Animation) Tween(field *float64, to float64) *Animation {
	if a.count == maxAnimatedFields {
		panic("spotlight: animation supports at most 3 fields")
	}
	i := a.count
	a.fields[i] = field
	a.targets[i] = to
	a.tweens[i] = gween.New(float32(*field), float32(to), a.duration, a.easing)
	a.count++
	return a
}

// Duration returns the configured length of the animation.
func (a *Animation) Duration() time.Duration {
	return time.Duration(float64(a.duration) * float64(time.Second))
}

// Started reports whether Start has been called.
func (a *Animation) Started() bool {
	return a.started
}

// Start marks the animation as running and fires OnStart. Calling Start
// more than once has no effect.
func (a *Animation) Start() {
	if a.started {
		return
	}
	a.started = true
	if a.OnStart != nil {
		a.OnStart()
	}
}

// Update advances all tweens by dt seconds and writes the values to the
// animated fields. When every tween has finished, the fields are snapped to
// their exact targets, Done is set and OnEnd fires.
func (a *Animation) Update(dt float32) {
	if a.Done || !a.started {
		return
	}

	allDone := a.duration <= 0
	if !allDone {
		allDone = true
		for i := 0; i < a.count; i++ {
			val, finished := a.tweens[i].Update(dt)
			*a.fields[i] = float64(val)
			if !finished {
				allDone = false
			}
		}
	}
	if !allDone {
		return
	}

	// float32 tweens drift; land exactly on the requested values.
	for i := 0; i < a.count; i++ {
		*a.fields[i] = a.targets[i]
	}
	a.Done = true
	if a.OnEnd != nil {
		a.OnEnd()
	}
}
