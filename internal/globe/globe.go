// Package globe turns two shells of random surface points into a depth
// sorted list of circles that reads as a rotating planet.
package globe

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl64"
)

var ErrInvalidOptions = errors.New("invalid globe options")

// Options configures a Globe. Zero values are not defaults; use
// DefaultOptions and override.
type Options struct {
	Width, Height int
	BaseRadius    float64
	CloudOffset   float64

	LandCount, CloudCount int
	LandSizeMin           int
	LandSizeMax           int
	CloudSizeMin          int
	CloudSizeMax          int

	Sampling         Sampling
	MinZoom, MaxZoom float64
}

// DefaultOptions returns the stock 800x600 globe.
func DefaultOptions() Options {
	return Options{
		Width:        800,
		Height:       600,
		BaseRadius:   150,
		CloudOffset:  10,
		LandCount:    50,
		CloudCount:   30,
		LandSizeMin:  20,
		LandSizeMax:  40,
		CloudSizeMin: 10,
		CloudSizeMax: 30,
		Sampling:     SamplingPolar,
		MinZoom:      DefaultMinZoom,
		MaxZoom:      DefaultMaxZoom,
	}
}

func (o Options) landShell() Shell {
	return Shell{Count: o.LandCount, Radius: o.BaseRadius, SizeMin: o.LandSizeMin, SizeMax: o.LandSizeMax}
}

func (o Options) cloudShell() Shell {
	return Shell{Count: o.CloudCount, Radius: o.BaseRadius + o.CloudOffset, SizeMin: o.CloudSizeMin, SizeMax: o.CloudSizeMax}
}

// Validate reports the first problem with o.
func (o Options) Validate() error {
	if o.Width <= 0 || o.Height <= 0 {
		return fmt.Errorf("%w: canvas %dx%d", ErrInvalidOptions, o.Width, o.Height)
	}
	if !(o.BaseRadius > 0) || math.IsInf(o.BaseRadius, 0) {
		return fmt.Errorf("%w: base radius %v", ErrInvalidOptions, o.BaseRadius)
	}
	if !(o.MinZoom > 0) || o.MaxZoom < o.MinZoom {
		return fmt.Errorf("%w: zoom bounds [%v, %v]", ErrInvalidOptions, o.MinZoom, o.MaxZoom)
	}
	if _, err := ParseSampling(string(o.Sampling)); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidOptions, err)
	}
	if err := o.landShell().Validate(); err != nil {
		return fmt.Errorf("land: %w", err)
	}
	if err := o.cloudShell().Validate(); err != nil {
		return fmt.Errorf("cloud: %w", err)
	}
	return nil
}

// Globe holds the generated point sets and the projector that views them.
type Globe struct {
	opts   Options
	rng    *rand.Rand
	land   []SurfacePoint
	clouds []SurfacePoint
	proj   *Projector
}

// New validates opts and builds a globe centered on the canvas.
// rng is kept and reused by Reset.
func New(opts Options, rng *rand.Rand) (*Globe, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, fmt.Errorf("%w: nil random source", ErrInvalidOptions)
	}
	if opts.Sampling == "" {
		opts.Sampling = SamplingPolar
	}
	g := &Globe{opts: opts, rng: rng}
	g.Reset()
	return g, nil
}

// Reset regenerates both point sets and restores the initial view.
func (g *Globe) Reset() {
	g.land = Generate(g.rng, g.opts.landShell(), g.opts.Sampling)
	g.clouds = Generate(g.rng, g.opts.cloudShell(), g.opts.Sampling)

	center := mgl64.Vec2{float64(g.opts.Width / 2), float64(g.opts.Height / 2)}
	g.proj = NewProjector(g.opts.BaseRadius, center)
	g.proj.SetZoomBounds(g.opts.MinZoom, g.opts.MaxZoom)
}

func (g *Globe) Rotate(dx, dy, dz float64) { g.proj.Rotate(dx, dy, dz) }

func (g *Globe) Move(dx, dy float64) { g.proj.Move(dx, dy) }

func (g *Globe) Zoom(factor float64) error { return g.proj.Zoom(factor) }

func (g *Globe) ZoomLevel() float64 { return g.proj.ZoomLevel() }

func (g *Globe) Radius() float64 { return g.proj.Radius() }

func (g *Globe) Center() mgl64.Vec2 { return g.proj.Center() }

func (g *Globe) Rotation() (x, y, z float64) { return g.proj.Rotation() }

func (g *Globe) Options() Options { return g.opts }

// Land returns a copy of the land points.
func (g *Globe) Land() []SurfacePoint { return append([]SurfacePoint(nil), g.land...) }

// Clouds returns a copy of the cloud points.
func (g *Globe) Clouds() []SurfacePoint { return append([]SurfacePoint(nil), g.clouds...) }

// DrawList projects every point for the current view.
func (g *Globe) DrawList() []DrawCommand {
	return g.proj.BuildDrawList(g.land, g.clouds)
}
