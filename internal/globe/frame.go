package globe

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	haloRings   = 5
	haloStep    = 4
	haloAlpha   = 100
	haloFalloff = 20

	// CloudAlpha is the opacity clouds are painted with.
	CloudAlpha = 128
)

// Ring is one band of the atmosphere halo.
type Ring struct {
	Radius float64
	Alpha  uint8
}

// Frame is everything a renderer needs for one tick, in paint order:
// halo rings, the ocean disc, then the commands.
type Frame struct {
	Center   mgl64.Vec2
	Radius   float64
	Halo     []Ring
	Commands []DrawCommand
}

// Atmosphere returns the halo rings for a globe of the given radius,
// innermost and most opaque first.
func Atmosphere(radius float64) []Ring {
	rings := make([]Ring, haloRings)
	for r := range rings {
		rings[r] = Ring{
			Radius: radius + float64(r*haloStep),
			Alpha:  uint8(haloAlpha - r*haloFalloff),
		}
	}
	return rings
}

// Frame recomputes the full scene for the current view.
func (g *Globe) Frame() Frame {
	return Frame{
		Center:   g.Center(),
		Radius:   g.Radius(),
		Halo:     Atmosphere(g.Radius()),
		Commands: g.DrawList(),
	}
}

// HelpLines is the on-screen help with the current zoom readout last.
func HelpLines(zoom float64) []string {
	return []string{
		"Left Click + Drag: Rotate",
		"Right Click + Drag: Move",
		"Mouse Wheel: Zoom",
		"R: Reset View",
		fmt.Sprintf("Zoom: %.2fx", zoom),
	}
}
