package raster

import (
	"image"
	"image/color"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"globe3d/internal/globe"
)

func at(img *image.RGBA, x, y int) color.RGBA {
	return img.RGBAAt(x, y)
}

func TestFillCircleOpaque(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 20, 20))
	red := color.RGBA{255, 0, 0, 255}
	FillCircle(img, 10.9, 10.2, 3.7, red)

	if got := at(img, 10, 10); got != red {
		t.Fatalf("center = %v", got)
	}
	if got := at(img, 13, 10); got != red {
		t.Fatalf("edge (radius truncated to 3) = %v", got)
	}
	if got := at(img, 14, 10); got != (color.RGBA{}) {
		t.Fatalf("outside = %v", got)
	}
	if got := at(img, 13, 13); got != (color.RGBA{}) {
		t.Fatalf("corner outside disc = %v", got)
	}
}

func TestFillCircleBlends(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	Clear(img, color.RGBA{0, 0, 0, 255})
	FillCircle(img, 2, 2, 1, color.RGBA{255, 255, 255, 128})

	got := at(img, 2, 2)
	if got.R != 128 || got.G != 128 || got.B != 128 || got.A != 255 {
		t.Fatalf("blended = %v, want 128 grey", got)
	}
}

func TestFillCircleClips(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	col := color.RGBA{1, 2, 3, 255}
	FillCircle(img, -3, -3, 6, col)
	FillCircle(img, 100, 100, 6, col)

	if got := at(img, 0, 0); got != col {
		t.Fatalf("clipped disc did not reach (0,0): %v", got)
	}
	if got := at(img, 7, 7); got != (color.RGBA{}) {
		t.Fatalf("(7,7) = %v", got)
	}
}

func TestFillCircleEmpty(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	FillCircle(img, 2, 2, 0.9, color.RGBA{255, 0, 0, 255})
	FillCircle(img, 2, 2, -4, color.RGBA{255, 0, 0, 255})
	for _, p := range img.Pix {
		if p != 0 {
			t.Fatalf("degenerate radius painted pixels")
		}
	}
}

func TestPaintOrder(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 800, 600))
	f := globe.Frame{
		Center: mgl64.Vec2{400, 300},
		Radius: 150,
		Halo:   globe.Atmosphere(150),
		Commands: []globe.DrawCommand{
			{Category: globe.Land, X: 400, Y: 300, Size: 20, Depth: 10},
			{Category: globe.Cloud, X: 400, Y: 300, Size: 5, Depth: -100},
			{Category: globe.Land, X: 300, Y: 300, Size: 10, Depth: 0},
		},
	}
	Paint(img, f, DefaultPalette)

	if got := at(img, 0, 0); got != DefaultPalette.Space {
		t.Errorf("corner = %v, want space", got)
	}
	if got := at(img, 400, 420); got != DefaultPalette.Ocean {
		t.Errorf("disc = %v, want ocean", got)
	}
	if got := at(img, 415, 300); got != DefaultPalette.Land {
		t.Errorf("land = %v, want land", got)
	}
	if got := at(img, 300, 300); got != DefaultPalette.Land {
		t.Errorf("second land = %v, want land", got)
	}
	// cloud drawn last over land: half way between land green and white
	want := color.RGBA{145, 197, 145, 255}
	if got := at(img, 400, 300); got != want {
		t.Errorf("cloud over land = %v, want %v", got, want)
	}
	halo := at(img, 552, 300)
	if halo == DefaultPalette.Space || halo == DefaultPalette.Ocean {
		t.Errorf("halo pixel = %v", halo)
	}
}
