package globe

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func seeded() *rand.Rand {
	return rand.New(rand.NewPCG(7, 11))
}

func newTestGlobe(t *testing.T) *Globe {
	t.Helper()
	g, err := New(DefaultOptions(), seeded())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return g
}

func TestPointCounts(t *testing.T) {
	g := newTestGlobe(t)
	if got := len(g.Land()); got != 50 {
		t.Fatalf("land points = %d, want 50", got)
	}
	if got := len(g.Clouds()); got != 30 {
		t.Fatalf("cloud points = %d, want 30", got)
	}

	g.Reset()
	if len(g.Land()) != 50 || len(g.Clouds()) != 30 {
		t.Fatalf("counts after reset = %d/%d", len(g.Land()), len(g.Clouds()))
	}
}

func TestShellRadius(t *testing.T) {
	for _, mode := range []Sampling{SamplingPolar, SamplingUniform} {
		opts := DefaultOptions()
		opts.Sampling = mode
		g, err := New(opts, seeded())
		if err != nil {
			t.Fatalf("New(%s): %v", mode, err)
		}

		check := func(name string, pts []SurfacePoint, radius float64, lo, hi int) {
			for i, p := range pts {
				if !mgl64.FloatEqualThreshold(p.Pos.Len()/radius, 1, 1e-6) {
					t.Errorf("%s %s[%d]: |p| = %v, want %v", mode, name, i, p.Pos.Len(), radius)
				}
				if p.Size < float64(lo) || p.Size > float64(hi) || p.Size != float64(int(p.Size)) {
					t.Errorf("%s %s[%d]: size %v outside [%d, %d]", mode, name, i, p.Size, lo, hi)
				}
			}
		}
		check("land", g.Land(), 150, 20, 40)
		check("cloud", g.Clouds(), 160, 10, 30)
	}
}

func TestGenerateDeterministic(t *testing.T) {
	shell := Shell{Count: 10, Radius: 5, SizeMin: 1, SizeMax: 3}
	a := Generate(rand.New(rand.NewPCG(1, 2)), shell, SamplingPolar)
	b := Generate(rand.New(rand.NewPCG(1, 2)), shell, SamplingPolar)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("point %d differs with the same seed: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestResetRestoresView(t *testing.T) {
	g := newTestGlobe(t)
	before := g.Land()

	g.Rotate(12, -40, 7)
	g.Move(33, -18)
	if err := g.Zoom(1.1); err != nil {
		t.Fatal(err)
	}
	g.Reset()

	if x, y, z := g.Rotation(); x != 0 || y != 0 || z != 0 {
		t.Errorf("rotation after reset = (%v, %v, %v)", x, y, z)
	}
	if g.ZoomLevel() != 1 {
		t.Errorf("zoom after reset = %v", g.ZoomLevel())
	}
	if g.Radius() != 150 {
		t.Errorf("radius after reset = %v", g.Radius())
	}
	if c := g.Center(); c != (mgl64.Vec2{400, 300}) {
		t.Errorf("center after reset = %v", c)
	}

	after := g.Land()
	same := true
	for i := range before {
		if before[i] != after[i] {
			same = false
			break
		}
	}
	if same {
		t.Errorf("reset did not regenerate the land points")
	}
}

func TestCenterUsesIntegerHalving(t *testing.T) {
	opts := DefaultOptions()
	opts.Width, opts.Height = 801, 599
	g, err := New(opts, seeded())
	if err != nil {
		t.Fatal(err)
	}
	if c := g.Center(); c != (mgl64.Vec2{400, 299}) {
		t.Fatalf("center = %v, want [400 299]", c)
	}
}

func TestNewRejectsInvalidOptions(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Options)
		want   error
	}{
		{"zero width", func(o *Options) { o.Width = 0 }, ErrInvalidOptions},
		{"negative height", func(o *Options) { o.Height = -5 }, ErrInvalidOptions},
		{"zero radius", func(o *Options) { o.BaseRadius = 0 }, ErrInvalidOptions},
		{"bad zoom bounds", func(o *Options) { o.MinZoom = 2; o.MaxZoom = 1 }, ErrInvalidOptions},
		{"unknown sampling", func(o *Options) { o.Sampling = "fibonacci" }, ErrInvalidOptions},
		{"land size", func(o *Options) { o.LandSizeMin = 0 }, ErrInvalidShell},
		{"cloud size order", func(o *Options) { o.CloudSizeMin = 40; o.CloudSizeMax = 30 }, ErrInvalidShell},
		{"negative count", func(o *Options) { o.CloudCount = -1 }, ErrInvalidShell},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultOptions()
			tt.mutate(&opts)
			if _, err := New(opts, seeded()); !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
		})
	}

	if _, err := New(DefaultOptions(), nil); !errors.Is(err, ErrInvalidOptions) {
		t.Fatalf("nil rng: err = %v", err)
	}
}

func TestFrameHalo(t *testing.T) {
	g := newTestGlobe(t)
	if err := g.Zoom(2); err != nil {
		t.Fatal(err)
	}
	f := g.Frame()
	if f.Radius != 300 {
		t.Fatalf("frame radius = %v", f.Radius)
	}
	want := []Ring{{300, 100}, {304, 80}, {308, 60}, {312, 40}, {316, 20}}
	if len(f.Halo) != len(want) {
		t.Fatalf("halo rings = %d", len(f.Halo))
	}
	for i := range want {
		if f.Halo[i] != want[i] {
			t.Errorf("ring %d = %v, want %v", i, f.Halo[i], want[i])
		}
	}
	if len(f.Commands) == 0 {
		t.Errorf("frame has no draw commands")
	}
}

func TestHelpLinesZoomReadout(t *testing.T) {
	lines := HelpLines(1.331)
	if got := lines[len(lines)-1]; got != "Zoom: 1.33x" {
		t.Fatalf("readout = %q", got)
	}
}
