package spotlight

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween/ease"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at render submission time.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default tint (no color modification).
var ColorWhite = Color{1, 1, 1, 1}

// Vec2 is a 2D vector used for positions, offsets and sizes throughout the API.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Vec2 {
	return Vec2{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// BlendMode selects a compositing operation. Each maps to a specific ebiten.Blend value.
type BlendMode uint8

const (
	BlendNormal BlendMode = iota // source-over (standard alpha blending)
	BlendErase                   // destination-out (punch transparent holes)
)

// EbitenBlend returns the ebiten.Blend value corresponding to this BlendMode.
func (b BlendMode) EbitenBlend() ebiten.Blend {
	switch b {
	case BlendErase:
		return ebiten.BlendDestinationOut
	default:
		return ebiten.BlendSourceOver
	}
}

// State is a step of the Spotlight sequence.
type State uint8

const (
	StateIdle             State = iota // no overlay attached
	StateMaskFadeIn                    // mask alpha animating 0 -> 1
	StateTargetRevealing               // cutout growing towards the current target
	StateTargetShown                   // cutout fully open, waiting for a tap
	StateTargetConcealing              // cutout shrinking to a point
	StateMaskFadeOut                   // mask alpha animating 1 -> 0
)

var stateNames = [...]string{
	StateIdle:             "Idle",
	StateMaskFadeIn:       "MaskFadeIn",
	StateTargetRevealing:  "TargetRevealing",
	StateTargetShown:      "TargetShown",
	StateTargetConcealing: "TargetConcealing",
	StateMaskFadeOut:      "MaskFadeOut",
}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "Unknown"
}

// EventType identifies a kind of sequence lifecycle event.
type EventType uint8

const (
	EventSequenceStarted EventType = iota // fires when the mask starts fading in
	EventTargetShown                      // fires when a cutout finishes opening
	EventTargetClosed                     // fires when a cutout finishes closing
	EventSequenceEnded                    // fires when the mask has faded out
)

var eventNames = [...]string{
	EventSequenceStarted: "SequenceStarted",
	EventTargetShown:     "TargetShown",
	EventTargetClosed:    "TargetClosed",
	EventSequenceEnded:   "SequenceEnded",
}

func (e EventType) String() string {
	if int(e) < len(eventNames) {
		return eventNames[e]
	}
	return "Unknown"
}

// TextAlign controls horizontal text alignment within a TextBlock.
type TextAlign uint8

const (
	TextAlignLeft   TextAlign = iota // align text to the left edge (default)
	TextAlignCenter                  // center text horizontally
	TextAlignRight                   // align text to the right edge
)

// Defaults applied to zero-valued Config fields.
const (
	DefaultDuration      = 1000 * time.Millisecond
	DefaultMaskFadeIn    = 500 * time.Millisecond
	DefaultMaskFadeOut   = 500 * time.Millisecond
	defaultConcealRadius = 0
)

// DefaultMaskColor is ~90% opaque black (#E6000000).
var DefaultMaskColor = Color{R: 0, G: 0, B: 0, A: 230.0 / 255.0}

// DefaultEasing decelerates towards the end: 1-(1-t)^4.
var DefaultEasing ease.TweenFunc = ease.OutQuart
