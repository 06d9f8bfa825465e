package spotlight

import "testing"

func TestAddChildSetsParent(t *testing.T) {
	parent := NewView("parent")
	child := NewView("child")
	parent.AddChild(child)

	if child.Parent != parent {
		t.Error("child.Parent not set")
	}
	if parent.NumChildren() != 1 || parent.Children()[0] != child {
		t.Error("child not in parent's list")
	}
}

func TestAddChildReparents(t *testing.T) {
	a := NewView("a")
	b := NewView("b")
	child := NewView("child")
	a.AddChild(child)
	b.AddChild(child)

	if a.NumChildren() != 0 {
		t.Errorf("old parent still has %d children", a.NumChildren())
	}
	if child.Parent != b {
		t.Error("child not moved to new parent")
	}
}

func TestAddChildCyclePanics(t *testing.T) {
	a := NewView("a")
	b := NewView("b")
	a.AddChild(b)

	defer func() {
		if recover() == nil {
			t.Error("expected panic on cycle")
		}
	}()
	b.AddChild(a)
}

func TestAddChildNilPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on nil child")
		}
	}()
	NewView("a").AddChild(nil)
}

func TestRemoveFromParent(t *testing.T) {
	parent := NewView("parent")
	child := NewView("child")
	parent.AddChild(child)
	child.RemoveFromParent()

	if child.Parent != nil || parent.NumChildren() != 0 {
		t.Error("child not removed")
	}
	// No parent: no-op.
	child.RemoveFromParent()
}

func TestRemoveChildren(t *testing.T) {
	parent := NewView("parent")
	kids := []*View{NewView("a"), NewView("b")}
	for _, k := range kids {
		parent.AddChild(k)
	}
	parent.RemoveChildren()
	if parent.NumChildren() != 0 {
		t.Error("children not removed")
	}
	for _, k := range kids {
		if k.Parent != nil || k.IsDisposed() {
			t.Errorf("%s should be detached but not disposed", k.Name)
		}
	}
}

func TestWorldPositionAndBounds(t *testing.T) {
	root := NewView("root")
	root.X, root.Y = 10, 20
	child := NewColorView("child", 30, 40, ColorWhite)
	child.X, child.Y = 5, 6
	root.AddChild(child)

	if p := child.WorldPosition(); p != (Vec2{X: 15, Y: 26}) {
		t.Errorf("WorldPosition = %+v", p)
	}
	if b := child.Bounds(); b != (Rect{X: 15, Y: 26, Width: 30, Height: 40}) {
		t.Errorf("Bounds = %+v", b)
	}
	lx, ly := child.WorldToLocal(20, 30)
	if lx != 5 || ly != 4 {
		t.Errorf("WorldToLocal = (%v,%v)", lx, ly)
	}
	wx, wy := child.LocalToWorld(lx, ly)
	if wx != 20 || wy != 30 {
		t.Errorf("LocalToWorld = (%v,%v)", wx, wy)
	}
}

func TestDisposeRecursive(t *testing.T) {
	parent := NewView("parent")
	child := NewView("child")
	grandchild := NewView("grandchild")
	parent.AddChild(child)
	child.AddChild(grandchild)

	child.Dispose()

	if !child.IsDisposed() || !grandchild.IsDisposed() {
		t.Error("subtree not disposed")
	}
	if parent.NumChildren() != 0 {
		t.Error("disposed child still attached")
	}
	// Second dispose is a no-op.
	child.Dispose()
}

func TestNewViewDefaults(t *testing.T) {
	v := NewView("v")
	if v.Alpha != 1 || !v.Visible || v.ID == 0 {
		t.Errorf("defaults: alpha=%v visible=%v id=%d", v.Alpha, v.Visible, v.ID)
	}
	if NewView("w").ID == v.ID {
		t.Error("IDs should be unique")
	}
}
