package spotlight

// syntheticPointerEvent represents a single injected pointer event in
// window coordinates.
type syntheticPointerEvent struct {
	x, y    float64
	pressed bool
}

// InjectPress queues a pointer press event at the given window coordinates.
// The event is consumed on the next frame's input pass.
func (w *Window) InjectPress(x, y float64) {
	w.injectQueue = append(w.injectQueue, syntheticPointerEvent{x: x, y: y, pressed: true})
}

// InjectRelease queues a pointer release event at the given window coordinates.
func (w *Window) InjectRelease(x, y float64) {
	w.injectQueue = append(w.injectQueue, syntheticPointerEvent{x: x, y: y, pressed: false})
}

// InjectTap is a convenience that queues a press followed by a release
// at the same coordinates. Consumes two frames.
func (w *Window) InjectTap(x, y float64) {
	w.InjectPress(x, y)
	w.InjectRelease(x, y)
}

// PendingInjections returns the number of queued synthetic events.
func (w *Window) PendingInjections() int {
	return len(w.injectQueue)
}

// processInjectedInput pops one event from the inject queue and feeds it
// through processPointer as the mouse pointer. Returns true if an event was
// consumed (real mouse input should be skipped).
func (w *Window) processInjectedInput() bool {
	if len(w.injectQueue) == 0 {
		return false
	}
	evt := w.injectQueue[0]
	copy(w.injectQueue, w.injectQueue[1:])
	w.injectQueue = w.injectQueue[:len(w.injectQueue)-1]

	w.processPointer(mousePointer, evt.x, evt.y, evt.pressed)
	return true
}
