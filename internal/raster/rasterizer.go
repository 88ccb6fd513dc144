// Package raster paints globe frames into RGBA images.
package raster

import (
	"image"
	"image/color"

	"globe3d/internal/globe"
)

// Palette holds the colors a frame is painted with. Alpha on Cloud and
// Atmosphere is ignored; the frame supplies it.
type Palette struct {
	Space      color.RGBA
	Ocean      color.RGBA
	Land       color.RGBA
	Cloud      color.RGBA
	Atmosphere color.RGBA
}

// DefaultPalette is ocean blue, forest green and white clouds on black.
var DefaultPalette = Palette{
	Space:      color.RGBA{0, 0, 0, 255},
	Ocean:      color.RGBA{0, 105, 148, 255},
	Land:       color.RGBA{34, 139, 34, 255},
	Cloud:      color.RGBA{255, 255, 255, 255},
	Atmosphere: color.RGBA{135, 206, 235, 255},
}

// Clear fills the whole image with col.
func Clear(img *image.RGBA, col color.RGBA) {
	pix := img.Pix
	for i := 0; i+3 < len(pix); i += 4 {
		pix[i] = col.R
		pix[i+1] = col.G
		pix[i+2] = col.B
		pix[i+3] = col.A
	}
}

// FillCircle fills a disc centered at (cx, cy). Center and radius are
// truncated to whole pixels. Pixels outside the image are skipped and
// col.A below 255 is blended over what is already there.
func FillCircle(img *image.RGBA, cx, cy, radius float64, col color.RGBA) {
	x0, y0, r := int(cx), int(cy), int(radius)
	if r <= 0 || col.A == 0 {
		return
	}

	b := img.Bounds()
	rr := r * r
	for dy := -r; dy <= r; dy++ {
		iy := y0 + dy
		if iy < b.Min.Y || iy >= b.Max.Y {
			continue
		}
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy > rr {
				continue
			}
			ix := x0 + dx
			if ix < b.Min.X || ix >= b.Max.X {
				continue
			}
			blend(img.Pix[img.PixOffset(ix, iy):], col)
		}
	}
}

// blend draws col over the pixel at the start of p (src-over).
func blend(p []uint8, col color.RGBA) {
	if col.A == 255 {
		p[0], p[1], p[2], p[3] = col.R, col.G, col.B, 255
		return
	}
	a := uint32(col.A)
	inv := 255 - a
	p[0] = uint8((uint32(col.R)*a + uint32(p[0])*inv + 127) / 255)
	p[1] = uint8((uint32(col.G)*a + uint32(p[1])*inv + 127) / 255)
	p[2] = uint8((uint32(col.B)*a + uint32(p[2])*inv + 127) / 255)
	p[3] = uint8(a + (uint32(p[3])*inv+127)/255)
}

func withAlpha(c color.RGBA, a uint8) color.RGBA {
	c.A = a
	return c
}

// Paint clears img and draws f: halo rings, ocean disc, then the draw
// commands in order.
func Paint(img *image.RGBA, f globe.Frame, pal Palette) {
	Clear(img, pal.Space)

	cx, cy := f.Center.X(), f.Center.Y()
	for _, ring := range f.Halo {
		FillCircle(img, cx, cy, ring.Radius, withAlpha(pal.Atmosphere, ring.Alpha))
	}
	FillCircle(img, cx, cy, f.Radius, pal.Ocean)

	cloud := withAlpha(pal.Cloud, globe.CloudAlpha)
	for _, c := range f.Commands {
		switch c.Category {
		case globe.Land:
			FillCircle(img, c.X, c.Y, c.Size, pal.Land)
		case globe.Cloud:
			FillCircle(img, c.X, c.Y, c.Size, cloud)
		}
	}
}
