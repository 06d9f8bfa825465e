package spotlight

import "testing"

func TestInjectTap(t *testing.T) {
	w := NewWindow(200, 200)
	box := interactiveBox(w, 0, 0, 100)

	var clicked bool
	w.OnClick(func(ctx ClickContext) {
		clicked = true
		if ctx.View != box {
			t.Error("expected box view")
		}
		if ctx.PointerID != mousePointer {
			t.Errorf("pointer = %d, want mouse", ctx.PointerID)
		}
	})

	w.InjectTap(50, 50)
	if w.PendingInjections() != 2 {
		t.Fatalf("expected 2 queued events, got %d", w.PendingInjections())
	}

	// Frame 1: press
	w.Advance(testFrame)
	if w.PendingInjections() != 1 {
		t.Fatalf("expected 1 remaining event after frame 1, got %d", w.PendingInjections())
	}
	if clicked {
		t.Error("click should not fire on press frame")
	}

	// Frame 2: release fires the click
	w.Advance(testFrame)
	if w.PendingInjections() != 0 {
		t.Fatalf("expected 0 remaining events after frame 2, got %d", w.PendingInjections())
	}
	if !clicked {
		t.Error("click should fire on release frame")
	}
}

func TestInjectReplacesMouseForThatFrame(t *testing.T) {
	w := NewWindow(200, 200)
	interactiveBox(w, 0, 0, 100)

	w.InjectPress(60, 60)
	w.Advance(testFrame)
	ps := w.pointers[mousePointer]
	if !ps.down || ps.startX != 60 || ps.startY != 60 {
		t.Errorf("pointer state = %+v, want pressed at (60,60)", ps)
	}
}
