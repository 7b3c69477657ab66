package wavefront

import (
	"math"
	"testing"

	"github.com/wavefront-rt/tracer/pkg/core"
	"github.com/wavefront-rt/tracer/pkg/geometry"
	"github.com/wavefront-rt/tracer/pkg/lights"
	"github.com/wavefront-rt/tracer/pkg/material"
	"github.com/wavefront-rt/tracer/pkg/surfel"
)

// fakeLight is a lights.Light test double whose Biradiance and CastsShadows
// are fixed at construction, so a test can pin down exactly what
// chooseLights sees without building real light geometry.
type fakeLight struct {
	position     core.Vec3
	biradiance   core.Radiance3
	castsShadows bool
}

func (f fakeLight) Position() core.Vec3                 { return f.position }
func (f fakeLight) Biradiance(core.Vec3) core.Radiance3 { return f.biradiance }
func (f fakeLight) CastsShadows() bool                  { return f.castsShadows }

// fakeSpecularMaterial always scatters into a fixed direction with a fixed
// attenuation and reports IsSpecular (PDF <= 0), so surfel.Scatter returns
// that direction and attenuation directly without touching the
// cosine/PDF path.
type fakeSpecularMaterial struct {
	direction   core.Vec3
	attenuation core.Color3
	scatters    bool
}

func (m fakeSpecularMaterial) Scatter(rayIn core.Ray, hit material.HitRecord, sampler core.Sampler) (material.ScatterResult, bool) {
	if !m.scatters {
		return material.ScatterResult{}, false
	}
	return material.ScatterResult{
		Scattered:   core.NewRay(hit.Point, m.direction),
		Attenuation: m.attenuation,
		PDF:         0, // specular: IsSpecular() == true
	}, true
}

func (m fakeSpecularMaterial) EvaluateBRDF(incomingDir, outgoingDir, normal core.Vec3) core.Color3 {
	return core.Vec3{}
}

func (m fakeSpecularMaterial) PDF(incomingDir, outgoingDir, normal core.Vec3) (float64, bool) {
	return 0, true
}

func newTestBuffers(n int) *buffers {
	buf := newBuffers(n)
	buf.resetModulation(1)
	return buf
}

func surfelAt(point, normal core.Vec3, mat material.Material, directionIn core.Vec3) *surfel.Surfel {
	hit := &material.HitRecord{Point: point, Normal: normal, Material: mat}
	return surfel.New(hit, directionIn)
}

// TestChooseLights_ZeroTotalBiradianceYieldsZeroContribution covers the
// "total <= 0" branch: every candidate light contributes nothing at the hit
// point (e.g. all lights behind the surface or otherwise geometrically
// blocked from delivering any biradiance), so the pixel's biradiance is
// zeroed and a placeholder shadow ray is built instead of sampling a light
// that can't possibly matter.
func TestChooseLights_ZeroTotalBiradianceYieldsZeroContribution(t *testing.T) {
	dark := fakeLight{position: core.NewVec3(0, 5, 0), biradiance: core.Vec3{}, castsShadows: true}

	buf := newTestBuffers(1)
	buf.surfel[0] = surfelAt(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), material.NewLambertian(core.NewVec3(1, 1, 1)), core.NewVec3(0, -1, 0))

	scene := fakeLightScene{lightList: []lights.Light{dark}}
	chooseLights(scene, buf, 1, 0, 0, false)

	if !buf.biradiance[0].Equals(core.Vec3{}) {
		t.Fatalf("expected zero biradiance when every light's total is zero, got %v", buf.biradiance[0])
	}
	// The placeholder shadow ray is never tested (it's only formed so
	// testVisibility has something to read), but it must still originate at
	// a real light's position rather than a zero value.
	if !buf.shadowRay[0].Origin.Equals(dark.position) {
		t.Fatalf("expected placeholder shadow ray to originate at the light's position, got %v", buf.shadowRay[0].Origin)
	}
}

// TestChooseLights_SingleLightAppliesMeanCompensation covers the live path:
// with one candidate light, light selection is deterministic (the only
// light always wins), and the result should be scaled by total/mean(B)
// exactly as spec §4.4 step 3 specifies, not a plain pass-through of B.
func TestChooseLights_SingleLightAppliesMeanCompensation(t *testing.T) {
	bir := core.NewVec3(1, 2, 3) // mean = 2, total = sum = 6, ratio = 3
	light := fakeLight{position: core.NewVec3(0, 5, 0), biradiance: bir, castsShadows: true}

	buf := newTestBuffers(1)
	buf.surfel[0] = surfelAt(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), material.NewLambertian(core.NewVec3(1, 1, 1)), core.NewVec3(0, -1, 0))

	scene := fakeLightScene{lightList: []lights.Light{light}}
	chooseLights(scene, buf, 1, 0, 0, false)

	want := bir.Multiply(3)
	if !buf.biradiance[0].Equals(want) {
		t.Fatalf("expected mean-compensated biradiance %v, got %v", want, buf.biradiance[0])
	}
}

// TestAccumulate_EmissiveTermAlwaysAdded covers spec §4.6's "emissive term is
// always added" rule: even when the pixel's chosen light is occluded
// (lightShadowed == true), an emissive surfel's own emission must still
// land in the image.
func TestAccumulate_EmissiveTermAlwaysAdded(t *testing.T) {
	emission := core.NewVec3(2, 2, 2)
	buf := newTestBuffers(1)
	buf.surfel[0] = surfelAt(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), material.NewEmissive(emission), core.NewVec3(0, -1, 0))
	buf.lightShadowed[0] = true // occluded: direct term must NOT be added

	image := NewImage(1, 1)
	accumulate(image, buf, false)

	if got := image.Get(0); !got.Equals(emission) {
		t.Fatalf("expected emissive-only contribution %v, got %v", emission, got)
	}
}

// TestAccumulate_DirectTermGatedByLightShadowed covers the direct-lighting
// term's visibility gate: it contributes when the chosen light is visible
// and contributes nothing when occluded, all else held fixed.
func TestAccumulate_DirectTermGatedByLightShadowed(t *testing.T) {
	white := material.NewLambertian(core.NewVec3(1, 1, 1)) // f = 1/pi
	buildBuf := func(shadowed bool) *buffers {
		buf := newTestBuffers(1)
		buf.ray[0] = core.NewRay(core.NewVec3(0, 5, 0), core.NewVec3(0, -1, 0)) // arriving from above
		buf.surfel[0] = surfelAt(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), white, core.NewVec3(0, -1, 0))
		buf.biradiance[0] = core.NewVec3(math.Pi, math.Pi, math.Pi)
		buf.shadowRay[0] = core.NewRayTo(core.NewVec3(0, 5, 0), core.NewVec3(0, 0, 0))
		buf.lightShadowed[0] = shadowed
		return buf
	}

	visible := NewImage(1, 1)
	accumulate(visible, buildBuf(false), false)
	if got := visible.Get(0); got.Equals(core.Vec3{}) {
		t.Fatalf("expected a nonzero direct term when the light is visible, got %v", got)
	}

	occluded := NewImage(1, 1)
	accumulate(occluded, buildBuf(true), false)
	if got := occluded.Get(0); !got.Equals(core.Vec3{}) {
		t.Fatalf("expected zero contribution (no emission, occluded light) when shadowed, got %v", got)
	}
}

// TestGenerateScatterRays_BumpFollowsScatteredSide covers the sign
// convention spec.md calls out as a historical source of bugs: the bump
// offset must push the new ray's origin to the same side of the surface
// that the sampled direction actually continues into, reflection above the
// surface and transmission below it.
func TestGenerateScatterRays_BumpFollowsScatteredSide(t *testing.T) {
	point := core.NewVec3(0, 0, 0)
	normal := core.NewVec3(0, 1, 0)

	reflect := fakeSpecularMaterial{direction: core.NewVec3(0, 1, 0), attenuation: core.NewVec3(1, 1, 1), scatters: true}
	buf := newTestBuffers(1)
	buf.ray[0] = core.NewRay(core.NewVec3(0, 5, 0), core.NewVec3(0, -1, 0)) // arriving from above
	buf.surfel[0] = surfelAt(point, normal, reflect, core.NewVec3(0, -1, 0))
	generateScatterRays(buf, 1, 0, 0, false)
	if bumped := buf.ray[0].Origin; bumped.Y <= point.Y {
		t.Fatalf("expected the bounced-above-the-surface ray to originate above y=0, got %v", bumped)
	}

	transmit := fakeSpecularMaterial{direction: core.NewVec3(0, -1, 0), attenuation: core.NewVec3(1, 1, 1), scatters: true}
	buf2 := newTestBuffers(1)
	buf2.ray[0] = core.NewRay(core.NewVec3(0, 5, 0), core.NewVec3(0, -1, 0))
	buf2.surfel[0] = surfelAt(point, normal, transmit, core.NewVec3(0, -1, 0))
	generateScatterRays(buf2, 1, 0, 0, false)
	if bumped := buf2.ray[0].Origin; bumped.Y >= point.Y {
		t.Fatalf("expected the transmitted-below-the-surface ray to originate below y=0, got %v", bumped)
	}
}

// TestGenerateScatterRays_AbsorptionZeroesModulation covers the "material
// declines to scatter" path: the path's modulation is zeroed, which
// implicitly terminates its contribution on every later stage without a
// separate dead-path flag.
func TestGenerateScatterRays_AbsorptionZeroesModulation(t *testing.T) {
	absorb := fakeSpecularMaterial{scatters: false}
	buf := newTestBuffers(1)
	buf.ray[0] = core.NewRay(core.NewVec3(0, 5, 0), core.NewVec3(0, -1, 0))
	buf.surfel[0] = surfelAt(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), absorb, core.NewVec3(0, -1, 0))

	generateScatterRays(buf, 1, 0, 0, false)

	if !buf.modulation[0].Equals(core.Vec3{}) {
		t.Fatalf("expected modulation zeroed after absorption, got %v", buf.modulation[0])
	}
}

// fakeLightScene is a wavefront.Scene test double exposing only a fixed
// light list; chooseLights is the only stage under test here that reads
// AllLights, so the other methods are never called and just satisfy the
// interface.
type fakeLightScene struct {
	lightList []lights.Light
}

func (fakeLightScene) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	panic("not used by chooseLights")
}

func (fakeLightScene) Occluded(ray core.Ray, tMin, tMax float64) bool {
	panic("not used by chooseLights")
}

func (s fakeLightScene) AllLights() []lights.Light { return s.lightList }

func (fakeLightScene) ActiveCamera() *geometry.PinholeCamera { return nil }
