package spotlight

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// HitShape is used for custom hit testing regions.
type HitShape interface {
	Contains(x, y float64) bool
}

// ClickContext carries click (primary tap) event data.
type ClickContext struct {
	View      *View
	UserData  any
	GlobalX   float64
	GlobalY   float64
	LocalX    float64
	LocalY    float64
	PointerID int
}

// LayoutMode selects how a view positions its children during the layout pass.
type LayoutMode uint8

const (
	LayoutNone     LayoutMode = iota // children keep their own X/Y
	LayoutVertical                   // children are stacked top to bottom
)

// DrawFunc paints a view's own content. bounds is the view's rectangle in
// window coordinates and alpha is the inherited opacity.
type DrawFunc func(dst *ebiten.Image, bounds Rect, alpha float64)

// --- ID counter ---

// viewIDCounter is a plain counter; views are only touched from the frame loop.
var viewIDCounter uint32

func nextViewID() uint32 {
	viewIDCounter++
	return viewIDCounter
}

// View is the retained element that overlays, decorations and host content
// are built from. Positions are relative to the parent; there is no rotation
// or scale, so world coordinates are a sum of offsets.
type View struct {
	// Identity
	ID   uint32
	Name string

	// Hierarchy
	Parent   *View
	children []*View

	// Geometry (local). Width/Height of zero mean "measure from content".
	X, Y          float64
	Width, Height float64

	// Layout
	Layout            LayoutMode
	MatchParentWidth  bool
	MatchParentHeight bool
	PaddingLeft       float64
	PaddingRight      float64
	PaddingTop        float64
	PaddingBottom     float64
	MarginBottom      float64

	measuredW   float64
	measuredH   float64
	laidOut     bool
	layoutHooks []func(*View)

	// Visibility & interaction
	Alpha        float64
	Visible      bool
	Interactable bool
	HitShape     HitShape

	// Content
	Color       Color // solid fill; zero alpha draws nothing
	BlendMode   BlendMode
	TextBlock   *TextBlock
	OnDraw      DrawFunc
	customImage *ebiten.Image

	// Metadata
	UserData any

	// Per-view callbacks
	OnClick func(ClickContext)

	disposed bool
}

func viewDefaults(v *View) {
	v.ID = nextViewID()
	v.Alpha = 1
	v.Visible = true
}

// NewView creates an empty container view.
func NewView(name string) *View {
	v := &View{Name: name}
	viewDefaults(v)
	return v
}

// NewColorView creates a solid rectangle of the given size and color.
func NewColorView(name string, w, h float64, c Color) *View {
	v := &View{Name: name, Width: w, Height: h, Color: c}
	viewDefaults(v)
	return v
}

// NewTextView creates a view that renders content with font.
func NewTextView(name, content string, font Font) *View {
	v := &View{
		Name: name,
		TextBlock: &TextBlock{
			Content:     content,
			Font:        font,
			Color:       ColorWhite,
			layoutDirty: true,
		},
	}
	viewDefaults(v)
	return v
}

// NewImageView creates a view displaying img at its native size.
func NewImageView(name string, img *ebiten.Image) *View {
	v := NewView(name)
	v.SetCustomImage(img)
	return v
}

// SetCustomImage sets a user-provided image to draw as the view's content.
// The view's size defaults to the image bounds when Width/Height are zero.
func (v *View) SetCustomImage(img *ebiten.Image) {
	v.customImage = img
}

// CustomImage returns the user-provided image, or nil if not set.
func (v *View) CustomImage() *ebiten.Image {
	return v.customImage
}

// --- Tree manipulation ---

// AddChild appends child to this view's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this view (cycle).
func (v *View) AddChild(child *View) {
	if child == nil {
		panic("spotlight: cannot add nil child")
	}
	if globalDebug {
		debugCheckDisposed(v, "AddChild (parent)")
		debugCheckDisposed(child, "AddChild (child)")
	}
	if isAncestor(child, v) {
		panic("spotlight: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = v
	v.children = append(v.children, child)
	if globalDebug {
		debugCheckTreeDepth(child)
		debugCheckChildCount(v)
	}
}

// RemoveChild detaches child from this view.
// Panics if child.Parent != v.
func (v *View) RemoveChild(child *View) {
	if child.Parent != v {
		panic("spotlight: child's parent is not this view")
	}
	v.removeChildByPtr(child)
	child.Parent = nil
}

// RemoveFromParent detaches this view from its parent.
// No-op if this view has no parent.
func (v *View) RemoveFromParent() {
	if v.Parent == nil {
		return
	}
	v.Parent.RemoveChild(v)
}

// RemoveChildren detaches all children from this view.
// Children are NOT disposed.
func (v *View) RemoveChildren() {
	for _, child := range v.children {
		child.Parent = nil
	}
	v.children = v.children[:0]
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (v *View) Children() []*View {
	return v.children
}

// NumChildren returns the number of children.
func (v *View) NumChildren() int {
	return len(v.children)
}

// --- Geometry ---

// Size returns the view's width and height: the explicit size if set,
// otherwise the size measured by the last layout pass.
func (v *View) Size() (w, h float64) {
	w, h = v.measuredW, v.measuredH
	if v.Width > 0 {
		w = v.Width
	}
	if v.Height > 0 {
		h = v.Height
	}
	return w, h
}

// WorldPosition returns the view's top-left corner in window coordinates.
func (v *View) WorldPosition() Vec2 {
	var p Vec2
	for n := v; n != nil; n = n.Parent {
		p.X += n.X
		p.Y += n.Y
	}
	return p
}

// Bounds returns the view's measured rectangle in window coordinates.
func (v *View) Bounds() Rect {
	p := v.WorldPosition()
	w, h := v.Size()
	return Rect{X: p.X, Y: p.Y, Width: w, Height: h}
}

// WorldToLocal converts window coordinates into this view's local space.
func (v *View) WorldToLocal(wx, wy float64) (float64, float64) {
	p := v.WorldPosition()
	return wx - p.X, wy - p.Y
}

// LocalToWorld converts local coordinates into window coordinates.
func (v *View) LocalToWorld(lx, ly float64) (float64, float64) {
	p := v.WorldPosition()
	return lx + p.X, ly + p.Y
}

// LaidOut reports whether the view has completed at least one layout pass.
func (v *View) LaidOut() bool {
	return v.laidOut
}

// AfterLayout registers a one-shot hook that runs once this view has been
// measured by a window layout pass. If the view is already laid out the hook
// still waits for the next pass so that sizes reflect the current tree.
func (v *View) AfterLayout(fn func(*View)) {
	v.layoutHooks = append(v.layoutHooks, fn)
}

// --- Disposal ---

// Dispose removes this view from its parent, marks it as disposed,
// and recursively disposes all descendants.
func (v *View) Dispose() {
	if v.disposed {
		return
	}
	v.RemoveFromParent()
	v.dispose()
}

func (v *View) dispose() {
	v.disposed = true
	v.ID = 0
	for _, child := range v.children {
		child.Parent = nil
		child.dispose()
	}
	v.children = nil
	v.Parent = nil
	v.HitShape = nil
	v.TextBlock = nil
	v.OnDraw = nil
	v.OnClick = nil
	v.customImage = nil
	v.layoutHooks = nil
	v.UserData = nil
}

// IsDisposed returns true if this view has been disposed.
func (v *View) IsDisposed() bool {
	return v.disposed
}

// --- Helpers ---

// isAncestor reports whether candidate is an ancestor of view.
func isAncestor(candidate, view *View) bool {
	for p := view; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from v.children without clearing child.Parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (v *View) removeChildByPtr(child *View) {
	for i, c := range v.children {
		if c == child {
			copy(v.children[i:], v.children[i+1:])
			v.children[len(v.children)-1] = nil
			v.children = v.children[:len(v.children)-1]
			return
		}
	}
}
