package spotlight

import "testing"

func TestPlaceCaption(t *testing.T) {
	tests := []struct {
		name                    string
		pointY, radius, screenH float64
		containerH              float64
		wantPlacement           CaptionPlacement
		wantY                   float64
	}{
		{"lower half goes above", 800, 50, 1000, 100, CaptionAbove, 550},
		{"upper half goes below", 200, 50, 1000, 100, CaptionBelow, 350},
		{"exact middle goes below", 500, 50, 1000, 100, CaptionBelow, 650},
		{"container height only matters above", 100, 0, 1000, 400, CaptionBelow, 200},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, y := PlaceCaption(tt.pointY, tt.radius, tt.screenH, tt.containerH)
			if p != tt.wantPlacement || y != tt.wantY {
				t.Errorf("PlaceCaption = (%v, %v), want (%v, %v)", p, y, tt.wantPlacement, tt.wantY)
			}
		})
	}
}

func TestCaptionPlacementString(t *testing.T) {
	if CaptionAbove.String() != "above" || CaptionBelow.String() != "below" {
		t.Error("unexpected placement names")
	}
}

func TestNewCaptionTargetStructure(t *testing.T) {
	w := NewWindow(800, 1000)
	tg, err := NewCaptionTarget(
		TargetConfig{Host: w, Point: Vec2{X: 400, Y: 200}, Radius: 50},
		CaptionConfig{Title: "Title", Description: "Description", TitleFont: monoFont{10, 24}, DescriptionFont: monoFont{8, 18}},
	)
	if err != nil {
		t.Fatal(err)
	}
	c := tg.Caption()
	if c == nil || tg.View() != c.Root() {
		t.Fatal("caption target should expose its caption as the decoration")
	}
	if c.Container().Parent != c.Root() || c.Title().Parent != c.Container() || c.Description().Parent != c.Container() {
		t.Error("unexpected caption tree")
	}
	if c.Container().PaddingLeft != 100 || c.Container().PaddingRight != 100 {
		t.Error("container should be inset by 100 on both sides")
	}
	if c.Title().MarginBottom != 16 {
		t.Errorf("title spacing = %v", c.Title().MarginBottom)
	}
	if c.Title().TextBlock.Color != ColorWhite || c.Description().TextBlock.Color != ColorWhite {
		t.Error("caption text should default to white")
	}
	if c.Placed() || c.Container().Visible {
		t.Error("caption should stay hidden until placed")
	}
}

func TestCaptionPlacedAfterLayout(t *testing.T) {
	w := NewWindow(800, 1000)
	tg, err := NewCaptionTarget(
		TargetConfig{Host: w, Point: Vec2{X: 400, Y: 800}, Radius: 50},
		CaptionConfig{Title: "Title", Description: "Description", TitleFont: monoFont{10, 24}, DescriptionFont: monoFont{8, 18}},
	)
	if err != nil {
		t.Fatal(err)
	}
	c := tg.Caption()

	stepFrames(w, 2)
	if c.Placed() {
		t.Fatal("caption placed before it was attached")
	}

	w.Root().AddChild(tg.View())
	stepFrames(w, 1)
	if !c.Placed() || !c.Container().Visible {
		t.Fatal("caption not placed after layout")
	}
	// 24 title + 16 spacing + 18 description
	_, h := c.Container().Size()
	if h != 58 {
		t.Errorf("container height = %v, want 58", h)
	}
	if c.Placement() != CaptionAbove {
		t.Errorf("placement = %v, want above", c.Placement())
	}
	if want := 800.0 - 50 - 100 - 58; c.Container().Y != want {
		t.Errorf("container y = %v, want %v", c.Container().Y, want)
	}
	if wd, _ := c.Container().Size(); wd != 800 {
		t.Errorf("container width = %v, want full width", wd)
	}
	if c.Title().TextBlock.WrapWidth != 600 {
		t.Errorf("title wraps at %v, want 600", c.Title().TextBlock.WrapWidth)
	}

	// Placement is computed once and survives a resize.
	y := c.Container().Y
	w.SetSize(800, 2000)
	stepFrames(w, 2)
	if c.Container().Y != y {
		t.Error("caption moved after resize")
	}
}

func TestCaptionCustomColors(t *testing.T) {
	w := NewWindow(800, 600)
	gold := Color{R: 1, G: 0.8, B: 0.3, A: 1}
	tg, err := NewCaptionTarget(
		TargetConfig{Host: w},
		CaptionConfig{TitleColor: gold, TitleFont: monoFont{1, 1}, DescriptionFont: monoFont{1, 1}},
	)
	if err != nil {
		t.Fatal(err)
	}
	if tg.Caption().Title().TextBlock.Color != gold {
		t.Error("title colour not applied")
	}
}

func TestCaptionDefaultFonts(t *testing.T) {
	w := NewWindow(800, 600)
	tg, err := NewCaptionTarget(TargetConfig{Host: w}, CaptionConfig{Title: "T", Description: "D"})
	if err != nil {
		t.Fatal(err)
	}
	title, ok := tg.Caption().Title().TextBlock.Font.(*TTFFont)
	if !ok || title.Size() != DefaultTitleSize {
		t.Errorf("title font = %#v", tg.Caption().Title().TextBlock.Font)
	}
	desc, ok := tg.Caption().Description().TextBlock.Font.(*TTFFont)
	if !ok || desc.Size() != DefaultDescriptionSize {
		t.Errorf("description font = %#v", tg.Caption().Description().TextBlock.Font)
	}
}
