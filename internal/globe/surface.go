package globe

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl64"
)

// SurfacePoint is a point on a shell in the globe's unrotated frame.
type SurfacePoint struct {
	Pos  mgl64.Vec3
	Size float64 // on-screen radius at unit scale
}

// Shell describes one spherical layer of points.
type Shell struct {
	Count   int
	Radius  float64
	SizeMin int
	SizeMax int
}

// Sampling selects how polar angles are drawn.
type Sampling string

const (
	// SamplingPolar draws phi uniformly in [0, pi]. Points bunch up at the
	// poles. This is the default.
	SamplingPolar Sampling = "polar"
	// SamplingUniform draws cos(phi) uniformly in [-1, 1], which gives equal
	// density per unit area.
	SamplingUniform Sampling = "uniform"
)

var ErrInvalidShell = errors.New("invalid shell")

// Validate checks that the shell can produce points.
func (s Shell) Validate() error {
	switch {
	case s.Count < 0:
		return fmt.Errorf("%w: negative count %d", ErrInvalidShell, s.Count)
	case !(s.Radius > 0) || math.IsInf(s.Radius, 0):
		return fmt.Errorf("%w: radius must be positive, got %v", ErrInvalidShell, s.Radius)
	case s.SizeMin <= 0 || s.SizeMax < s.SizeMin:
		return fmt.Errorf("%w: size range [%d, %d]", ErrInvalidShell, s.SizeMin, s.SizeMax)
	}
	return nil
}

// ParseSampling maps a config string to a Sampling. Empty means polar.
func ParseSampling(s string) (Sampling, error) {
	switch Sampling(s) {
	case "", SamplingPolar:
		return SamplingPolar, nil
	case SamplingUniform:
		return SamplingUniform, nil
	}
	return "", fmt.Errorf("unknown sampling mode %q", s)
}

// Generate places shell.Count points on the shell using rng.
// The caller must have validated the shell.
func Generate(rng *rand.Rand, shell Shell, mode Sampling) []SurfacePoint {
	points := make([]SurfacePoint, 0, shell.Count)
	for i := 0; i < shell.Count; i++ {
		theta := rng.Float64() * 2 * math.Pi
		var phi float64
		if mode == SamplingUniform {
			phi = math.Acos(1 - 2*rng.Float64())
		} else {
			phi = rng.Float64() * math.Pi
		}
		size := shell.SizeMin + rng.IntN(shell.SizeMax-shell.SizeMin+1)

		points = append(points, SurfacePoint{
			Pos:  Spherical(shell.Radius, theta, phi),
			Size: float64(size),
		})
	}
	return points
}
