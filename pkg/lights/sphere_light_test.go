package lights

import (
	"math"
	"testing"

	"github.com/wavefront-rt/tracer/pkg/core"
)

func TestSphereLight_Position(t *testing.T) {
	center := core.NewVec3(1, 2, 3)
	light := NewSphereLight(center, 0.5, core.NewVec3(1, 1, 1))

	if light.Position() != center {
		t.Errorf("expected position %v, got %v", center, light.Position())
	}
}

func TestSphereLight_BiradianceIsDirectionIndependent(t *testing.T) {
	light := NewSphereLight(core.NewVec3(0, 0, 0), 1.0, core.NewVec3(1, 1, 1))

	a := light.Biradiance(core.NewVec3(5, 0, 0))
	b := light.Biradiance(core.NewVec3(0, 5, 0))
	c := light.Biradiance(core.NewVec3(0, 0, -5))

	if a.Subtract(b).Length() > 1e-9 || b.Subtract(c).Length() > 1e-9 {
		t.Errorf("expected direction-independent biradiance, got %v, %v, %v", a, b, c)
	}
}

func TestSphereLight_BiradianceFallsOffWithDistanceSquared(t *testing.T) {
	light := NewSphereLight(core.NewVec3(0, 0, 0), 1.0, core.NewVec3(1, 1, 1))

	near := light.Biradiance(core.NewVec3(2, 0, 0))
	far := light.Biradiance(core.NewVec3(4, 0, 0))

	ratio := near.X / far.X
	if math.Abs(ratio-4.0) > 1e-6 {
		t.Errorf("expected inverse-square falloff (ratio 4), got %f", ratio)
	}
}

func TestSphereLight_CastsShadowsDefaultsTrue(t *testing.T) {
	light := NewSphereLight(core.NewVec3(0, 0, 0), 1.0, core.NewVec3(1, 1, 1))
	if !light.CastsShadows() {
		t.Error("expected sphere light to cast shadows by default")
	}
}
