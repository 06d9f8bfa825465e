package spotlight

import (
	"reflect"
	"testing"
)

func TestTextBlockNoWrap(t *testing.T) {
	tb := &TextBlock{Content: "one two three", Font: monoFont{charW: 8, lineH: 16}}
	w, h := tb.Measure()
	if w != 13*8 || h != 16 {
		t.Errorf("size = %vx%v", w, h)
	}
}

func TestTextBlockWrap(t *testing.T) {
	tb := &TextBlock{
		Content:   "the quick brown fox\njumps",
		Font:      monoFont{charW: 10, lineH: 20},
		WrapWidth: 100,
	}
	want := []string{"the quick", "brown fox", "jumps"}
	if got := tb.Lines(); !reflect.DeepEqual(got, want) {
		t.Errorf("lines = %q, want %q", got, want)
	}
	if _, h := tb.Measure(); h != 60 {
		t.Errorf("height = %v, want 60", h)
	}
}

func TestTextBlockLongWordKeepsOwnLine(t *testing.T) {
	tb := &TextBlock{Content: "a supercalifragilistic b", Font: monoFont{charW: 10, lineH: 10}, WrapWidth: 50}
	want := []string{"a", "supercalifragilistic", "b"}
	if got := tb.Lines(); !reflect.DeepEqual(got, want) {
		t.Errorf("lines = %q, want %q", got, want)
	}
}

func TestTextBlockRelayoutOnChange(t *testing.T) {
	tb := &TextBlock{Content: "aa bb", Font: monoFont{charW: 10, lineH: 10}}
	if len(tb.Lines()) != 1 {
		t.Fatal("expected one line")
	}
	tb.WrapWidth = 30
	if len(tb.Lines()) != 2 {
		t.Error("changing WrapWidth should re-wrap")
	}
	tb.SetContent("aa")
	if w, _ := tb.Measure(); w != 20 {
		t.Errorf("width after SetContent = %v", w)
	}
}

func TestTextBlockEmpty(t *testing.T) {
	tb := &TextBlock{Font: monoFont{charW: 10, lineH: 10}}
	if w, h := tb.Measure(); w != 0 || h != 0 {
		t.Errorf("empty block size = %vx%v", w, h)
	}
	tb = &TextBlock{Content: "no font"}
	if w, h := tb.Measure(); w != 0 || h != 0 {
		t.Errorf("fontless block size = %vx%v", w, h)
	}
}

func TestAlignOffset(t *testing.T) {
	if got := alignOffset(TextAlignLeft, 100, 40); got != 0 {
		t.Errorf("left = %v", got)
	}
	if got := alignOffset(TextAlignCenter, 100, 40); got != 30 {
		t.Errorf("center = %v", got)
	}
	if got := alignOffset(TextAlignRight, 100, 40); got != 60 {
		t.Errorf("right = %v", got)
	}
}

func TestDefaultFontCached(t *testing.T) {
	bold, err := DefaultFont(true, DefaultTitleSize)
	if err != nil {
		t.Fatal(err)
	}
	again, err := DefaultFont(true, DefaultTitleSize)
	if err != nil {
		t.Fatal(err)
	}
	if bold != again {
		t.Error("DefaultFont should cache by style and size")
	}
	regular, err := DefaultFont(false, DefaultTitleSize)
	if err != nil {
		t.Fatal(err)
	}
	if regular == bold {
		t.Error("bold and regular should differ")
	}
	if bold.Size() != DefaultTitleSize || bold.LineHeight() <= 0 {
		t.Errorf("size=%v lineHeight=%v", bold.Size(), bold.LineHeight())
	}
	if w, _ := bold.MeasureString("Spotlight"); w <= 0 {
		t.Error("measured width should be positive")
	}
}

func TestLoadTTFFontInvalid(t *testing.T) {
	if _, err := LoadTTFFont([]byte("not a font"), 12); err == nil {
		t.Error("expected error for invalid font data")
	}
}
