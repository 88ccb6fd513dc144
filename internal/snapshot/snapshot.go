// Package snapshot renders globe frames without a window.
package snapshot

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"globe3d/internal/globe"
	"globe3d/internal/raster"
)

// Render spins the globe by spin degrees about Y once per frame for frames
// ticks, then paints the final view.
func Render(g *globe.Globe, frames int, spin float64, pal raster.Palette) *image.RGBA {
	for i := 0; i < frames; i++ {
		g.Rotate(0, spin, 0)
	}
	opts := g.Options()
	img := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	raster.Paint(img, g.Frame(), pal)
	return img
}

// WriteFile encodes img as PNG at path.
func WriteFile(path string, img image.Image) (err error) {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("create snapshot: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close snapshot: %w", cerr)
		}
	}()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	return nil
}
