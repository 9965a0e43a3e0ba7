package texture

import (
	"image"
	"image/color"
	"testing"

	"github.com/Faultbox/brushkit/internal/engine/gpu/gputest"
)

var (
	red  = color.RGBA{R: 255, A: 255}
	blue = color.RGBA{B: 255, A: 255}
)

func TestChecker(t *testing.T) {
	img := Checker(8, 2, red, blue)

	tests := []struct {
		x, y int
		want color.RGBA
	}{
		{0, 0, red},
		{3, 3, red},
		{4, 0, blue},
		{0, 4, blue},
		{7, 7, red},
	}
	for _, tt := range tests {
		if got := img.RGBAAt(tt.x, tt.y); got != tt.want {
			t.Errorf("pixel (%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestCheckerClampsCells(t *testing.T) {
	img := Checker(4, 0, red, blue)
	if got := img.RGBAAt(3, 3); got != red {
		t.Errorf("single-cell checker pixel = %v, want %v", got, red)
	}
}

func TestSolid(t *testing.T) {
	img := Solid(2, blue)
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			if got := img.RGBAAt(x, y); got != blue {
				t.Errorf("pixel (%d,%d) = %v, want %v", x, y, got, blue)
			}
		}
	}
}

func TestToRGBASubImage(t *testing.T) {
	src := Checker(8, 2, red, blue)
	sub := src.SubImage(image.Rect(4, 0, 8, 4))

	got := ToRGBA(sub)
	if got.Bounds() != image.Rect(0, 0, 4, 4) {
		t.Fatalf("bounds = %v, want 4x4 at origin", got.Bounds())
	}
	if c := got.RGBAAt(0, 0); c != blue {
		t.Errorf("origin pixel = %v, want %v", c, blue)
	}
}

func TestDarken(t *testing.T) {
	c := Darken(color.RGBA{R: 200, G: 100, B: 50, A: 255}, 0.5)
	want := color.RGBA{R: 100, G: 50, B: 25, A: 255}
	if c != want {
		t.Errorf("Darken = %v, want %v", c, want)
	}
}

func TestUploadAndDelete(t *testing.T) {
	dev := gputest.New()
	tex := Upload(dev, "checker", Checker(16, 4, red, blue))

	if !tex.Initialized() {
		t.Fatal("uploaded texture should be initialized")
	}
	if tex.Width != 16 || tex.Height != 16 {
		t.Errorf("size = %dx%d, want 16x16", tex.Width, tex.Height)
	}
	if got := dev.Textures[tex.ID]; got != [2]int32{16, 16} {
		t.Errorf("device received %v, want [16 16]", got)
	}

	id := tex.ID
	tex.Delete(dev)
	tex.Delete(dev)
	if tex.Initialized() {
		t.Error("deleted texture should not be initialized")
	}
	if n := dev.DeleteCount(id); n != 1 {
		t.Errorf("texture deleted %d times, want 1", n)
	}
	if len(dev.DoubleDeletes) != 0 {
		t.Errorf("unexpected double deletes: %v", dev.DoubleDeletes)
	}
}

func TestZeroTextureNotInitialized(t *testing.T) {
	var tex Texture
	if tex.Initialized() {
		t.Error("zero texture should not be initialized")
	}
}
