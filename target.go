package spotlight

import "math"

// Target is one highlight step: the point the cutout centres on, the cutout
// radius and the decoration view shown while the target is active.
// Targets are immutable once built.
type Target struct {
	point   Vec2
	radius  float64
	view    *View
	caption *Caption
}

// Caption returns the caption built by NewCaptionTarget, or nil for targets
// with a custom decoration.
func (t *Target) Caption() *Caption {
	return t.caption
}

// Point returns the cutout centre in window coordinates.
func (t *Target) Point() Vec2 {
	return t.point
}

// Radius returns the cutout radius.
func (t *Target) Radius() float64 {
	return t.radius
}

// View returns the decoration view, which may be nil.
func (t *Target) View() *View {
	return t.view
}

// TargetConfig holds the fields shared by every target factory.
type TargetConfig struct {
	// Host is required; it supplies the display size for caption placement.
	Host Host
	// Point is the cutout centre, used when Anchor is nil.
	Point Vec2
	// Anchor, if set, centres the cutout on the view's measured bounds.
	// The anchor must have been laid out.
	Anchor *View
	// Radius of the cutout. Zero with an Anchor derives the radius from the
	// anchor's size so the whole rectangle is revealed.
	Radius float64
}

// resolve validates the config and returns the cutout geometry.
func (cfg TargetConfig) resolve() (Vec2, float64, error) {
	if cfg.Host == nil {
		return Vec2{}, 0, ErrNilHost
	}
	point, radius := cfg.Point, cfg.Radius
	if cfg.Anchor != nil {
		b := cfg.Anchor.Bounds()
		point = b.Center()
		if radius == 0 {
			radius = AnchorRadius(b)
		}
	}
	return point, math.Max(radius, 0), nil
}

// AnchorRadius returns the radius of the smallest circle enclosing b.
func AnchorRadius(b Rect) float64 {
	return math.Hypot(b.Width, b.Height) / 2
}

// NewTarget builds a target that shows view as its decoration. The view is
// positioned by the caller; it is hosted by the overlay unchanged.
func NewTarget(cfg TargetConfig, view *View) (*Target, error) {
	point, radius, err := cfg.resolve()
	if err != nil {
		return nil, err
	}
	return &Target{point: point, radius: radius, view: view}, nil
}
