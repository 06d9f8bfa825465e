package spotlight

import "testing"

func TestDiskCoverage(t *testing.T) {
	tests := []struct {
		dist, radius, want float64
	}{
		{0, 10, 1},
		{9, 10, 1},
		{10, 10, 0.5},
		{10.5, 10, 0},
		{20, 10, 0},
		{0, 0, 0.5},
	}
	for _, tt := range tests {
		if got := diskCoverage(tt.dist, tt.radius); got != tt.want {
			t.Errorf("diskCoverage(%v, %v) = %v, want %v", tt.dist, tt.radius, got, tt.want)
		}
	}
}

func TestMaskResize(t *testing.T) {
	m := NewMask(100, 50)
	defer m.Dispose()

	if m.Width() != 100 || m.Height() != 50 {
		t.Fatalf("size = %dx%d", m.Width(), m.Height())
	}
	img := m.Image()
	m.Resize(100, 50)
	if m.Image() != img {
		t.Error("same-size Resize should keep the image")
	}
	m.Resize(200, 80)
	if m.Width() != 200 || m.Height() != 80 || m.Image() == img {
		t.Error("Resize did not reallocate")
	}
	if b := m.Image().Bounds(); b.Dx() != 200 || b.Dy() != 80 {
		t.Errorf("image bounds = %v", b)
	}
}

func TestMaskDisposeReleasesImages(t *testing.T) {
	m := NewMask(10, 10)
	m.diskImage()
	m.Dispose()
	if m.Image() != nil || m.disk != nil {
		t.Error("images not released")
	}
}
