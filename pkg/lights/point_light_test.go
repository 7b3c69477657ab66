package lights

import (
	"math"
	"testing"

	"github.com/wavefront-rt/tracer/pkg/core"
)

func TestPointLight_InverseSquareFalloff(t *testing.T) {
	light := NewPointLight(core.NewVec3(0, 0, 0), core.NewVec3(4, 4, 4))

	at1 := light.Biradiance(core.NewVec3(1, 0, 0))
	at2 := light.Biradiance(core.NewVec3(2, 0, 0))

	if math.Abs(at1.X-4.0) > 1e-9 {
		t.Errorf("expected biradiance 4 at distance 1, got %f", at1.X)
	}

	ratio := at1.X / at2.X
	if math.Abs(ratio-4.0) > 1e-9 {
		t.Errorf("expected inverse-square falloff (ratio 4), got %f", ratio)
	}
}

func TestPointLight_BiradianceAtOwnPositionIsZero(t *testing.T) {
	light := NewPointLight(core.NewVec3(1, 1, 1), core.NewVec3(1, 1, 1))
	b := light.Biradiance(core.NewVec3(1, 1, 1))
	if !b.Equals(core.Vec3{}) {
		t.Errorf("expected zero biradiance at coincident point, got %v", b)
	}
}

func TestPointLight_CastsShadowsDefaultsTrue(t *testing.T) {
	light := NewPointLight(core.NewVec3(0, 0, 0), core.NewVec3(1, 1, 1))
	if !light.CastsShadows() {
		t.Error("expected point light to cast shadows by default")
	}
}
