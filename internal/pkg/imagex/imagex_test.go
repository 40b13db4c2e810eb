package imagex

import (
	"image"
	"testing"
)

func TestNormalizeClampsZoom(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"below minimum", 0.1, MinZoom},
		{"above maximum", 12, MaxZoom},
		{"unset resets to one", 0, 1},
		{"in range untouched", 2.5, 2.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Transform{Zoom: tt.in}.Normalize()
			if got.Zoom != tt.want {
				t.Fatalf("Normalize zoom %v = %v, want %v", tt.in, got.Zoom, tt.want)
			}
		})
	}
}

func TestNormalizeSnapsRotation(t *testing.T) {
	tests := []struct {
		in   int
		want int
	}{
		{0, 0},
		{90, 90},
		{360, 0},
		{450, 90},
		{-90, 270},
		{125, 90},
		{269, 180},
	}

	for _, tt := range tests {
		got := Transform{Zoom: 1, Rotation: tt.in}.Normalize()
		if got.Rotation != tt.want {
			t.Fatalf("Normalize rotation %d = %d, want %d", tt.in, got.Rotation, tt.want)
		}
	}
}

func TestResetIsIdentity(t *testing.T) {
	if !Reset().IsIdentity() {
		t.Fatal("fresh view state must be the identity transform")
	}
	if (Transform{Zoom: 2}).IsIdentity() {
		t.Fatal("zoomed transform must not be identity")
	}
	if (Transform{Zoom: 1, Rotation: 360}).IsIdentity() != true {
		t.Fatal("full rotation normalizes back to identity")
	}
}

func TestApplyRotationSwapsDimensions(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 40, 20))

	out := Apply(src, Transform{Zoom: 1, Rotation: 90})
	if out.Bounds().Dx() != 20 || out.Bounds().Dy() != 40 {
		t.Fatalf("90 degree rotation of 40x20 got %dx%d, want 20x40",
			out.Bounds().Dx(), out.Bounds().Dy())
	}
}

func TestApplyZoomScalesWidth(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 40, 20))

	out := Apply(src, Transform{Zoom: 2})
	if out.Bounds().Dx() != 80 {
		t.Fatalf("2x zoom of width 40 got %d, want 80", out.Bounds().Dx())
	}
}

func TestApplyIdentityReturnsSource(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 40, 20))

	out := Apply(src, Reset())
	if out != image.Image(src) {
		t.Fatal("identity transform should return the source image unchanged")
	}
}
