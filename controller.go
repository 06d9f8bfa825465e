package spotlight

import (
	"time"

	"github.com/tanema/gween/ease"
)

// Config configures a Spotlight. Zero-valued fields take the package
// defaults.
type Config struct {
	// Host is the window the overlay attaches to. Required by Start.
	Host Host
	// Targets are shown in order. Start fails when empty.
	Targets []*Target

	// Duration of each reveal and conceal animation. Default 1000ms.
	Duration time.Duration
	// Easing of the reveal and conceal animations. Default ease.OutQuart.
	Easing ease.TweenFunc
	// MaskFadeIn and MaskFadeOut are the fade lengths around the sequence.
	// Default 500ms each.
	MaskFadeIn  time.Duration
	MaskFadeOut time.Duration
	// MaskColor is painted outside the cutout. The zero Color selects
	// DefaultMaskColor, so a fully transparent black mask cannot be asked
	// for; an alpha of 1/255 is the faintest mask available.
	MaskColor Color

	OnSequenceStarted func()
	OnSequenceEnded   func()
	OnTargetClosed    func(*Target)
}

// Event is a sequence lifecycle notification delivered to an EventStore.
type Event struct {
	Type EventType
	// Target is the target the event concerns; nil for sequence events.
	Target *Target
	// Index is the position of Target in the sequence, or -1.
	Index int
}

// EventStore receives every lifecycle event of a Spotlight, after the
// matching listener has run. The ecs sub-package adapts a Donburi world.
type EventStore interface {
	EmitEvent(Event)
}

// Spotlight runs one guided sequence over a host: it fades a mask in, reveals
// each target in turn, waits for a tap, conceals it and finally fades the
// mask out again.
//
// Every method must be called from the host's frame loop; callbacks fire from
// animation ticks and input dispatch on that same loop.
type Spotlight struct {
	host      Host
	queue     []*Target
	duration  time.Duration
	easing    ease.TweenFunc
	fadeIn    time.Duration
	fadeOut   time.Duration
	maskColor Color

	overlay   *OverlayView
	state     State
	last      *Target
	index     int
	finishing bool

	onStarted      func()
	onEnded        func()
	onTargetClosed func(*Target)
	events         EventStore
}

// New creates an idle Spotlight. Configuration errors are reported by Start.
func New(cfg Config) *Spotlight {
	s := &Spotlight{
		host:           cfg.Host,
		queue:          append([]*Target(nil), cfg.Targets...),
		duration:       cfg.Duration,
		easing:         cfg.Easing,
		fadeIn:         cfg.MaskFadeIn,
		fadeOut:        cfg.MaskFadeOut,
		maskColor:      cfg.MaskColor,
		onStarted:      cfg.OnSequenceStarted,
		onEnded:        cfg.OnSequenceEnded,
		onTargetClosed: cfg.OnTargetClosed,
	}
	if s.duration <= 0 {
		s.duration = DefaultDuration
	}
	if s.easing == nil {
		s.easing = DefaultEasing
	}
	if s.fadeIn <= 0 {
		s.fadeIn = DefaultMaskFadeIn
	}
	if s.fadeOut <= 0 {
		s.fadeOut = DefaultMaskFadeOut
	}
	if s.maskColor == (Color{}) {
		s.maskColor = DefaultMaskColor
	}
	return s
}

// SetOnSequenceStarted replaces the sequence-started listener.
func (s *Spotlight) SetOnSequenceStarted(fn func()) { s.onStarted = fn }

// SetOnSequenceEnded replaces the sequence-ended listener.
func (s *Spotlight) SetOnSequenceEnded(fn func()) { s.onEnded = fn }

// SetOnTargetClosed replaces the target-closed listener.
func (s *Spotlight) SetOnTargetClosed(fn func(*Target)) { s.onTargetClosed = fn }

// SetEventStore attaches a store that mirrors every lifecycle event. Nil
// detaches it.
func (s *Spotlight) SetEventStore(store EventStore) { s.events = store }

// SetTargets replaces the queue of an idle Spotlight so it can run again.
func (s *Spotlight) SetTargets(targets ...*Target) error {
	if s.state != StateIdle {
		return ErrAlreadyRunning
	}
	s.queue = append(s.queue[:0], targets...)
	return nil
}

// State returns the current step of the sequence.
func (s *Spotlight) State() State {
	return s.state
}

// CurrentTarget returns the target being revealed, shown or concealed, or
// nil when no target is active.
func (s *Spotlight) CurrentTarget() *Target {
	switch s.state {
	case StateTargetRevealing, StateTargetShown, StateTargetConcealing:
		if len(s.queue) > 0 {
			return s.queue[0]
		}
	}
	return nil
}

// LastTarget returns the most recently closed target, or nil.
func (s *Spotlight) LastTarget() *Target {
	return s.last
}

// Overlay returns the overlay of the running sequence, or nil when idle.
func (s *Spotlight) Overlay() *OverlayView {
	if s.state == StateIdle {
		return nil
	}
	return s.overlay
}

// Start attaches the overlay to the host and begins fading the mask in.
// OnSequenceStarted fires as the fade starts. On error nothing changes.
func (s *Spotlight) Start() error {
	if s.host == nil {
		return ErrNilHost
	}
	if s.state != StateIdle {
		return ErrAlreadyRunning
	}
	if len(s.queue) == 0 {
		return ErrEmptyQueue
	}

	o := NewOverlayView(s.host, s.maskColor)
	o.OnRevealed = s.revealed
	o.OnTargetClosed = s.concealed
	o.OnTargetClicked = func() { _ = s.Advance() }
	s.overlay = o
	s.index = 0
	s.finishing = false
	o.attach()

	s.setState(StateMaskFadeIn)
	o.FadeTo(1, s.fadeIn, func() {
		if s.onStarted != nil {
			s.onStarted()
		}
		s.emit(EventSequenceStarted, nil, -1)
	}, func() {
		if s.overlay != o || s.state != StateMaskFadeIn {
			return
		}
		s.revealNext()
	})
	return nil
}

// Advance conceals the shown target. It only acts while a target is fully
// revealed; in every other running state it does nothing, so repeated taps
// cannot skip targets. A tap on the overlay takes the same path.
func (s *Spotlight) Advance() error {
	switch s.state {
	case StateIdle:
		return ErrNotRunning
	case StateTargetShown:
		s.setState(StateTargetConcealing)
		s.overlay.ConcealTo(defaultConcealRadius, s.duration, s.easing)
	}
	return nil
}

// Finish ends the sequence early. Targets not yet revealed are dropped and
// the mask fades out. While a target is shown the fade starts at once.
// Otherwise the animation in flight completes first and State keeps
// reporting MaskFadeIn, TargetRevealing or TargetConcealing until it does;
// a conceal in flight still reports its target as closed. Finishing an idle
// or fading-out sequence does nothing.
func (s *Spotlight) Finish() {
	switch s.state {
	case StateIdle, StateMaskFadeOut:
		return
	case StateTargetShown:
		s.fadeOutMask()
		return
	case StateMaskFadeIn:
		s.queue = s.queue[:0]
	default:
		// Keep the active target so a pending conceal can still pop it.
		if len(s.queue) > 1 {
			s.queue = s.queue[:1]
		}
	}
	s.finishing = true
	s.host.Logger().Debug().Stringer("state", s.state).Msg("spotlight: finish requested")
}

// Detach tears the overlay down immediately without firing any listener.
// Running animations still complete but no longer affect the sequence. Use
// it when the host goes away mid-sequence.
func (s *Spotlight) Detach() {
	if s.state == StateIdle {
		return
	}
	o := s.overlay
	o.OnRevealed = nil
	o.OnTargetClosed = nil
	o.OnTargetClicked = nil
	o.Dispose()
	s.overlay = nil
	s.queue = s.queue[:0]
	s.finishing = false
	s.setState(StateIdle)
}

// revealNext swaps in the front target's decoration and opens the cutout on
// it, or fades out when nothing is left.
func (s *Spotlight) revealNext() {
	if s.finishing || len(s.queue) == 0 {
		s.fadeOutMask()
		return
	}
	t := s.queue[0]
	s.overlay.SetDecoration(t.view)
	s.setState(StateTargetRevealing)
	s.overlay.RevealAt(t.point, t.radius, s.duration, s.easing)
}

func (s *Spotlight) revealed() {
	if s.state != StateTargetRevealing {
		return
	}
	s.setState(StateTargetShown)
	s.emit(EventTargetShown, s.queue[0], s.index)
	if s.finishing {
		s.fadeOutMask()
	}
}

// concealed pops the closed target and moves on.
func (s *Spotlight) concealed() {
	if s.state != StateTargetConcealing {
		return
	}
	t := s.queue[0]
	s.queue = s.queue[1:]
	s.last = t
	idx := s.index
	s.index++

	if s.onTargetClosed != nil {
		s.onTargetClosed(t)
	}
	s.emit(EventTargetClosed, t, idx)
	// A listener may have detached or finished the sequence.
	if s.state != StateTargetConcealing {
		return
	}
	s.revealNext()
}

func (s *Spotlight) fadeOutMask() {
	s.queue = s.queue[:0]
	s.finishing = false
	o := s.overlay
	s.setState(StateMaskFadeOut)
	o.FadeTo(0, s.fadeOut, nil, func() {
		if s.overlay != o || s.state != StateMaskFadeOut {
			return
		}
		o.Dispose()
		s.overlay = nil
		s.setState(StateIdle)
		if s.onEnded != nil {
			s.onEnded()
		}
		s.emit(EventSequenceEnded, nil, -1)
	})
}

func (s *Spotlight) setState(next State) {
	s.host.Logger().Debug().
		Stringer("from", s.state).
		Stringer("to", next).
		Int("queued", len(s.queue)).
		Msg("spotlight: state")
	s.state = next
}

func (s *Spotlight) emit(typ EventType, t *Target, index int) {
	if s.events != nil {
		s.events.EmitEvent(Event{Type: typ, Target: t, Index: index})
	}
}
