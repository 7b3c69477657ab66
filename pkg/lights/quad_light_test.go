package lights

import (
	"math"
	"testing"

	"github.com/wavefront-rt/tracer/pkg/core"
)

func TestQuadLight_Position(t *testing.T) {
	corner := core.NewVec3(-0.5, -0.5, 0)
	u := core.NewVec3(1, 0, 0)
	v := core.NewVec3(0, 1, 0)
	light := NewQuadLight(corner, u, v, core.NewVec3(5, 5, 5))

	expected := core.NewVec3(0, 0, 0)
	if light.Position().Subtract(expected).Length() > 1e-9 {
		t.Errorf("expected centroid %v, got %v", expected, light.Position())
	}
}

func TestQuadLight_BiradianceDirectlyAbove(t *testing.T) {
	corner := core.NewVec3(-0.5, -0.5, 0)
	u := core.NewVec3(1, 0, 0)
	v := core.NewVec3(0, 1, 0)
	emission := core.NewVec3(1, 1, 1)
	light := NewQuadLight(corner, u, v, emission)

	p := core.NewVec3(0, 0, 1)
	b := light.Biradiance(p)

	// Area=1, distance=1, cosTheta=1 => E = L_e
	if b.Subtract(emission).Length() > 1e-9 {
		t.Errorf("expected biradiance %v, got %v", emission, b)
	}
}

func TestQuadLight_BiradianceBehindPlaneIsZero(t *testing.T) {
	corner := core.NewVec3(-0.5, -0.5, 0)
	u := core.NewVec3(1, 0, 0)
	v := core.NewVec3(0, 1, 0)
	light := NewQuadLight(corner, u, v, core.NewVec3(1, 1, 1))

	p := core.NewVec3(0, 0, -1)
	b := light.Biradiance(p)

	if !b.Equals(core.Vec3{}) {
		t.Errorf("expected zero biradiance behind the quad's plane, got %v", b)
	}
}

func TestQuadLight_BiradianceEdgeOnIsZero(t *testing.T) {
	corner := core.NewVec3(0, -0.5, 0)
	u := core.NewVec3(0, 1, 0)
	v := core.NewVec3(0, 0, 1)
	light := NewQuadLight(corner, u, v, core.NewVec3(1, 1, 1))

	p := core.NewVec3(0, 2, 0)
	b := light.Biradiance(p)

	if math.Abs(b.X) > 1e-9 || math.Abs(b.Y) > 1e-9 || math.Abs(b.Z) > 1e-9 {
		t.Errorf("expected ~zero biradiance edge-on, got %v", b)
	}
}

func TestQuadLight_BiradianceFallsOffWithDistanceSquared(t *testing.T) {
	corner := core.NewVec3(-0.5, -0.5, 0)
	u := core.NewVec3(1, 0, 0)
	v := core.NewVec3(0, 1, 0)
	light := NewQuadLight(corner, u, v, core.NewVec3(1, 1, 1))

	near := light.Biradiance(core.NewVec3(0, 0, 1))
	far := light.Biradiance(core.NewVec3(0, 0, 2))

	ratio := near.X / far.X
	if math.Abs(ratio-4.0) > 1e-6 {
		t.Errorf("expected inverse-square falloff (ratio 4), got %f", ratio)
	}
}

func TestQuadLight_CastsShadowsDefaultsTrue(t *testing.T) {
	light := NewQuadLight(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0), core.NewVec3(1, 1, 1))
	if !light.CastsShadows() {
		t.Error("expected quad light to cast shadows by default")
	}
}

func TestQuadLight_ZeroAreaYieldsZeroBiradiance(t *testing.T) {
	light := NewQuadLight(core.NewVec3(0, 0, 0), core.Vec3{}, core.NewVec3(1, 0, 0), core.NewVec3(1, 1, 1))
	if light.Area != 0 {
		t.Errorf("expected zero area for degenerate quad, got %f", light.Area)
	}

	b := light.Biradiance(core.NewVec3(1, 1, 1))
	if !b.Equals(core.Vec3{}) {
		t.Errorf("expected zero biradiance for degenerate quad, got %v", b)
	}
}
