package spotlight

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

const (
	maxPointers       = 10  // pointer 0 = mouse, 1-9 = touch
	defaultTapSlop    = 8.0 // pixels a press may travel and still count as a tap
	mousePointer      = 0
	firstTouchPointer = 1
)

// --- Built-in HitShape types ---

// HitRect is an axis-aligned rectangular hit area in local coordinates.
type HitRect struct {
	X, Y, Width, Height float64
}

// Contains reports whether (x, y) lies inside the rectangle.
func (r HitRect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// HitCircle is a circular hit area in local coordinates.
type HitCircle struct {
	CenterX, CenterY, Radius float64
}

// Contains reports whether (x, y) lies inside or on the circle.
func (c HitCircle) Contains(x, y float64) bool {
	dx := x - c.CenterX
	dy := y - c.CenterY
	return dx*dx+dy*dy <= c.Radius*c.Radius
}

// --- Per-pointer state ---

type pointerState struct {
	down    bool
	startX  float64
	startY  float64
	lastX   float64
	lastY   float64
	hitView *View
	moved   bool // travelled further than the tap slop since the press
}

// --- Handler registry ---

type clickHandler struct {
	id uint32
	fn func(ClickContext)
}

type handlerRegistry struct {
	click  []clickHandler
	nextID uint32
}

// CallbackHandle allows removing a registered window-level callback.
type CallbackHandle struct {
	id  uint32
	reg *handlerRegistry
}

// Remove unregisters this callback so it no longer fires.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	s := h.reg.click
	for i := range s {
		if s[i].id == h.id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = clickHandler{}
			h.reg.click = s[:len(s)-1]
			return
		}
	}
}

// OnClick registers a window-level callback for click (primary tap) events.
// Window-level handlers run before the hit view's own OnClick.
func (w *Window) OnClick(fn func(ClickContext)) CallbackHandle {
	w.handlers.nextID++
	id := w.handlers.nextID
	w.handlers.click = append(w.handlers.click, clickHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &w.handlers}
}

// --- Hit testing ---

// viewContainsLocal tests whether (lx, ly) falls inside a view's hit region.
// Uses HitShape if set; otherwise the view's measured size.
func viewContainsLocal(v *View, lx, ly float64) bool {
	if v.HitShape != nil {
		return v.HitShape.Contains(lx, ly)
	}
	w, h := v.Size()
	if w == 0 && h == 0 {
		return false
	}
	return lx >= 0 && lx <= w && ly >= 0 && ly <= h
}

// collectInteractable walks the tree in painter order, appending
// interactable views to buf. Skips Visible=false or Interactable=false subtrees.
func collectInteractable(v *View, buf []*View) []*View {
	if !v.Visible || !v.Interactable || v.disposed {
		return buf
	}
	buf = append(buf, v)
	for _, child := range v.children {
		buf = collectInteractable(child, buf)
	}
	return buf
}

// hitTest finds the topmost interactable view at (x, y) in window
// coordinates. Returns nil if nothing is hit.
func (w *Window) hitTest(x, y float64) *View {
	w.hitBuf = collectInteractable(w.root, w.hitBuf[:0])

	// Iterate backward (reverse painter order): topmost visual view first.
	for i := len(w.hitBuf) - 1; i >= 0; i-- {
		v := w.hitBuf[i]
		lx, ly := v.WorldToLocal(x, y)
		if viewContainsLocal(v, lx, ly) {
			return v
		}
	}
	return nil
}

// --- Input processing ---

// processInput handles injected, mouse and touch input for this frame.
// Injected events replace real mouse input for the frame they are consumed in.
func (w *Window) processInput() {
	if !w.processInjectedInput() {
		w.processMousePointer()
	}
	w.processTouchPointers()
}

// processMousePointer handles the primary mouse button (pointer 0).
func (w *Window) processMousePointer() {
	mx, my := ebiten.CursorPosition()
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	w.processPointer(mousePointer, float64(mx), float64(my), pressed)
}

// processTouchPointers handles touch input (pointers 1-9).
func (w *Window) processTouchPointers() {
	touchIDs := ebiten.AppendTouchIDs(w.prevTouchIDs[:0])
	w.prevTouchIDs = touchIDs

	var activeSlots [maxPointers]bool
	for _, tid := range touchIDs {
		slot := w.touchSlot(tid)
		if slot < 0 {
			continue
		}
		activeSlots[slot] = true

		tx, ty := ebiten.TouchPosition(tid)
		w.processPointer(slot, float64(tx), float64(ty), true)
	}

	// Release any touch slots that are no longer active.
	for i := firstTouchPointer; i < maxPointers; i++ {
		if w.touchUsed[i] && !activeSlots[i] {
			ps := &w.pointers[i]
			if ps.down {
				w.processPointer(i, ps.lastX, ps.lastY, false)
			}
			w.touchUsed[i] = false
			w.touchMap[i] = 0
		}
	}
}

// touchSlot maps an ebiten.TouchID to a pointer slot (1-9).
// Returns the existing slot or allocates a new one. Returns -1 if full.
func (w *Window) touchSlot(tid ebiten.TouchID) int {
	for i := firstTouchPointer; i < maxPointers; i++ {
		if w.touchUsed[i] && w.touchMap[i] == tid {
			return i
		}
	}
	for i := firstTouchPointer; i < maxPointers; i++ {
		if !w.touchUsed[i] {
			w.touchUsed[i] = true
			w.touchMap[i] = tid
			return i
		}
	}
	return -1
}

// processPointer runs the press/release state machine for a single pointer.
// A click fires on release when the pointer is still over the view it was
// pressed on and has not travelled beyond the tap slop.
func (w *Window) processPointer(pointerID int, x, y float64, pressed bool) {
	ps := &w.pointers[pointerID]

	switch {
	case pressed && !ps.down:
		ps.down = true
		ps.startX, ps.startY = x, y
		ps.lastX, ps.lastY = x, y
		ps.hitView = w.hitTest(x, y)
		ps.moved = false
	case pressed && ps.down:
		if !ps.moved && math.Hypot(x-ps.startX, y-ps.startY) > defaultTapSlop {
			ps.moved = true
		}
		ps.lastX, ps.lastY = x, y
	case !pressed && ps.down:
		target := w.hitTest(x, y)
		if !ps.moved && ps.hitView != nil && ps.hitView == target {
			w.fireClick(target, pointerID, x, y)
		}
		ps.down = false
		ps.hitView = nil
		ps.moved = false
	}
}

// --- Event dispatch ---

func (w *Window) fireClick(v *View, pointerID int, x, y float64) {
	var lx, ly float64
	var userData any
	if v != nil {
		lx, ly = v.WorldToLocal(x, y)
		userData = v.UserData
	}
	ctx := ClickContext{
		View: v, UserData: userData,
		GlobalX: x, GlobalY: y, LocalX: lx, LocalY: ly,
		PointerID: pointerID,
	}
	// Window-level handlers first.
	for _, h := range w.handlers.click {
		h.fn(ctx)
	}
	if v != nil && v.OnClick != nil {
		v.OnClick(ctx)
	}
}
