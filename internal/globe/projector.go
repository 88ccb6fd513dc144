package globe

import (
	"cmp"
	"errors"
	"math"
	"slices"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	// FocalLength is the fixed camera distance used by the depth divide.
	FocalLength = 1000.0
	// CullDepth is the rotated z at and beyond which points are dropped.
	CullDepth = 500.0

	DefaultMinZoom = 0.01
	DefaultMaxZoom = 100.0
)

var ErrInvalidZoomFactor = errors.New("zoom factor must be finite and positive")

// Category tags a draw command with the shell it came from.
type Category uint8

const (
	Land Category = iota
	Cloud
)

func (c Category) String() string {
	switch c {
	case Land:
		return "land"
	case Cloud:
		return "cloud"
	}
	return "unknown"
}

// Projection is one transformed point. Depth is the rotated z before the
// perspective divide.
type Projection struct {
	Screen mgl64.Vec2
	Depth  float64
	Scale  float64
}

// DrawCommand is one circle to paint, in draw order.
type DrawCommand struct {
	Category Category
	X, Y     float64
	Size     float64
	Depth    float64
}

// Projector owns the view state and turns surface points into a depth
// sorted draw list. It is not safe for concurrent use.
type Projector struct {
	rotX, rotY, rotZ float64
	center           mgl64.Vec2
	zoom             float64
	baseRadius       float64

	minZoom, maxZoom float64
}

// NewProjector returns a projector at zero rotation and zoom 1.
func NewProjector(baseRadius float64, center mgl64.Vec2) *Projector {
	return &Projector{
		center:     center,
		zoom:       1,
		baseRadius: baseRadius,
		minZoom:    DefaultMinZoom,
		maxZoom:    DefaultMaxZoom,
	}
}

// SetZoomBounds changes the clamp range applied after each Zoom.
func (p *Projector) SetZoomBounds(lo, hi float64) {
	p.minZoom, p.maxZoom = lo, hi
	p.zoom = mgl64.Clamp(p.zoom, lo, hi)
}

func (p *Projector) Rotate(dx, dy, dz float64) {
	p.rotX += dx
	p.rotY += dy
	p.rotZ += dz
}

func (p *Projector) Move(dx, dy float64) {
	p.center = p.center.Add(mgl64.Vec2{dx, dy})
}

// Zoom multiplies the zoom level by factor. Non-positive or non-finite
// factors are rejected and leave the state untouched.
func (p *Projector) Zoom(factor float64) error {
	if !(factor > 0) || math.IsInf(factor, 0) {
		return ErrInvalidZoomFactor
	}
	p.zoom = mgl64.Clamp(p.zoom*factor, p.minZoom, p.maxZoom)
	return nil
}

func (p *Projector) ZoomLevel() float64 { return p.zoom }

func (p *Projector) Radius() float64 { return p.baseRadius * p.zoom }

func (p *Projector) Center() mgl64.Vec2 { return p.center }

// Rotation returns the accumulated angles in degrees.
func (p *Projector) Rotation() (x, y, z float64) { return p.rotX, p.rotY, p.rotZ }

// Transform rotates pos by the current angles and projects it to the screen.
func (p *Projector) Transform(pos mgl64.Vec3) Projection {
	r := RotateXYZ(pos, p.rotX, p.rotY, p.rotZ)
	scale := Perspective(r.Z())
	return Projection{
		Screen: mgl64.Vec2{
			r.X()*scale*p.zoom + p.center.X(),
			r.Y()*scale*p.zoom + p.center.Y(),
		},
		Depth: r.Z(),
		Scale: scale,
	}
}

// BuildDrawList transforms both point sets, drops points at or beyond
// CullDepth and orders the rest farthest first.
func (p *Projector) BuildDrawList(land, cloud []SurfacePoint) []DrawCommand {
	cmds := make([]DrawCommand, 0, len(land)+len(cloud))
	cmds = p.appendVisible(cmds, land, Land)
	cmds = p.appendVisible(cmds, cloud, Cloud)

	slices.SortStableFunc(cmds, func(a, b DrawCommand) int {
		return cmp.Compare(b.Depth, a.Depth)
	})
	return cmds
}

func (p *Projector) appendVisible(dst []DrawCommand, points []SurfacePoint, cat Category) []DrawCommand {
	for _, pt := range points {
		pr := p.Transform(pt.Pos)
		if !(pr.Depth < CullDepth) {
			continue
		}
		// zoom is already in the screen position; size only takes perspective
		dst = append(dst, DrawCommand{
			Category: cat,
			X:        pr.Screen.X(),
			Y:        pr.Screen.Y(),
			Size:     pt.Size * pr.Scale,
			Depth:    pr.Depth,
		})
	}
	return dst
}
