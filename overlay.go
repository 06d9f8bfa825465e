package spotlight

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween/ease"
)

// maskFadeEasing matches an accelerate-then-decelerate curve.
var maskFadeEasing ease.TweenFunc = ease.InOutSine

// OverlayView is the full-window view that paints the mask, punches the
// circular cutout at the current (possibly animating) centre and radius,
// hosts the current decoration view and turns taps into "target clicked"
// signals while a cutout is fully revealed.
//
// All state is mutated from animation ticks and input dispatch inside the
// host's frame loop.
type OverlayView struct {
	host       Host
	view       *View
	decoration *View
	mask       *Mask

	// Center and Radius are the live cutout geometry.
	Center Vec2
	Radius float64
	// MaskColor is painted everywhere outside the cutout.
	MaskColor Color

	revealed  bool
	animating int

	// OnRevealed fires when a RevealAt animation completes.
	OnRevealed func()
	// OnTargetClicked fires on a tap while the cutout is fully revealed.
	OnTargetClicked func()
	// OnTargetClosed fires when a ConcealTo animation completes.
	OnTargetClosed func()
}

// NewOverlayView creates an overlay sized to the host display. The overlay
// starts fully transparent and detached.
func NewOverlayView(host Host, maskColor Color) *OverlayView {
	size := host.Size()
	o := &OverlayView{
		host:      host,
		mask:      NewMask(int(size.X), int(size.Y)),
		MaskColor: maskColor,
	}
	v := NewView("spotlight_overlay")
	v.MatchParentWidth, v.MatchParentHeight = true, true
	v.measuredW, v.measuredH = size.X, size.Y
	v.Alpha = 0
	v.Interactable = true
	v.OnDraw = o.draw
	v.OnClick = o.handleTap
	o.view = v
	return o
}

// View returns the overlay's root view.
func (o *OverlayView) View() *View {
	return o.view
}

// Alpha returns the current mask opacity.
func (o *OverlayView) Alpha() float64 {
	return o.view.Alpha
}

// Decoration returns the decoration view currently hosted, or nil.
func (o *OverlayView) Decoration() *View {
	return o.decoration
}

// Revealed reports whether the cutout is fully open and accepting taps.
func (o *OverlayView) Revealed() bool {
	return o.revealed && o.animating == 0
}

// Animating reports whether a reveal, conceal or fade is in flight.
func (o *OverlayView) Animating() bool {
	return o.animating > 0
}

// Attached reports whether the overlay is part of the host's view tree.
func (o *OverlayView) Attached() bool {
	return o.view.Parent != nil
}

// SetDecoration replaces the hosted decoration view. The new view is removed
// from any previous parent first. Passing nil only removes the current one.
func (o *OverlayView) SetDecoration(v *View) {
	if o.decoration != nil && o.decoration.Parent == o.view {
		o.view.RemoveChild(o.decoration)
	}
	o.decoration = v
	if v == nil {
		return
	}
	v.RemoveFromParent()
	o.view.AddChild(v)
}

// RevealAt animates the cutout to point and radius over duration. A closed
// cutout (radius 0) jumps to point first so it grows from there; an open one
// also slides its centre. Taps are accepted once the animation completes.
func (o *OverlayView) RevealAt(point Vec2, radius float64, duration time.Duration, fn ease.TweenFunc) {
	o.revealed = false
	if o.Radius <= 0 {
		o.Radius = 0
		o.Center = point
	}
	a := NewAnimation("reveal", duration, fn).
		Tween(&o.Center.X, point.X).
		Tween(&o.Center.Y, point.Y).
		Tween(&o.Radius, max(radius, 0))
	a.OnEnd = func() {
		o.animating--
		o.revealed = true
		if o.OnRevealed != nil {
			o.OnRevealed()
		}
	}
	o.play(a)
}

// ConcealTo shrinks the cutout to radius over duration, holding the centre.
// Taps are disabled immediately; OnTargetClosed fires on completion.
func (o *OverlayView) ConcealTo(radius float64, duration time.Duration, fn ease.TweenFunc) {
	o.revealed = false
	a := NewAnimation("conceal", duration, fn).
		Tween(&o.Radius, max(radius, 0))
	a.OnEnd = func() {
		o.animating--
		if o.OnTargetClosed != nil {
			o.OnTargetClosed()
		}
	}
	o.play(a)
}

// FadeTo animates the overlay opacity (mask and decoration) to alpha.
// onStart fires when the fade begins and onEnd when it completes; either
// may be nil.
func (o *OverlayView) FadeTo(alpha float64, duration time.Duration, onStart, onEnd func()) {
	a := NewAnimation("fade", duration, maskFadeEasing).
		Tween(&o.view.Alpha, clamp01(alpha))
	a.OnStart = onStart
	a.OnEnd = func() {
		o.animating--
		if onEnd != nil {
			onEnd()
		}
	}
	o.play(a)
}

func (o *OverlayView) play(a *Animation) {
	o.animating++
	o.host.Play(a)
}

// handleTap forwards a tap as "target clicked" when the cutout is fully
// revealed. Taps during any animation are dropped, never queued.
func (o *OverlayView) handleTap(ctx ClickContext) {
	if !o.Revealed() {
		o.host.Logger().Debug().
			Float64("x", ctx.GlobalX).Float64("y", ctx.GlobalY).
			Int("animating", o.animating).
			Msg("spotlight: tap ignored")
		return
	}
	if o.OnTargetClicked != nil {
		o.OnTargetClicked()
	}
}

// attach adds the overlay to the host's root content view. The overlay fills
// the root, so it follows the display through later resizes.
func (o *OverlayView) attach() {
	size := o.host.Size()
	o.view.measuredW, o.view.measuredH = size.X, size.Y
	o.view.X, o.view.Y = 0, 0
	o.host.Root().AddChild(o.view)
}

// detach removes the overlay and its decoration from the host.
func (o *OverlayView) detach() {
	o.SetDecoration(nil)
	o.view.RemoveFromParent()
	o.revealed = false
}

// Dispose detaches the overlay and releases its mask texture.
func (o *OverlayView) Dispose() {
	o.detach()
	if o.mask != nil {
		o.mask.Dispose()
		o.mask = nil
	}
}

// draw paints the mask with the cutout. Geometry is in window coordinates;
// the mask texture is local to the overlay bounds.
func (o *OverlayView) draw(dst *ebiten.Image, bounds Rect, alpha float64) {
	if o.mask == nil {
		return
	}
	o.mask.Resize(int(bounds.Width), int(bounds.Height))
	local := Vec2{X: o.Center.X - bounds.X, Y: o.Center.Y - bounds.Y}
	o.mask.Redraw(o.MaskColor, local, o.Radius)

	var op ebiten.DrawImageOptions
	op.GeoM.Translate(bounds.X, bounds.Y)
	op.ColorScale.ScaleAlpha(float32(alpha))
	dst.DrawImage(o.mask.Image(), &op)
}
