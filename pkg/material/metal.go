package material

import (
	"math"

	"github.com/wavefront-rt/tracer/pkg/core"
)

// Metal is a specular reflector, optionally fuzzed away from a perfect
// mirror by perturbing the reflection direction within a small sphere.
type Metal struct {
	Albedo   core.Color3
	Fuzzness float64 // 0 = perfect mirror, 1 = very fuzzy
}

// NewMetal creates a metal material, clamping fuzzness to [0, 1].
func NewMetal(albedo core.Color3, fuzzness float64) *Metal {
	return &Metal{Albedo: albedo, Fuzzness: math.Max(0, math.Min(1, fuzzness))}
}

// Scatter reflects rayIn about the surface normal, perturbed by Fuzzness.
func (m *Metal) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	reflected := reflect(rayIn.Direction.Normalize(), hit.Normal)

	if m.Fuzzness > 0 {
		perturbation := core.RandomInUnitSphere(sampler.Get3D()).Multiply(m.Fuzzness)
		reflected = reflected.Add(perturbation).Normalize()
	}

	scatters := reflected.Dot(hit.Normal) > 0
	scattered := core.NewRay(hit.Point, reflected).WithBounds(core.Epsilon, math.Inf(1))

	return ScatterResult{
		Scattered:   scattered,
		Attenuation: m.Albedo, // no 1/π factor: specular scattering is not cosine-weighted
		PDF:         0,
	}, scatters
}

// EvaluateBRDF returns zero: a delta-function BRDF has no density against an
// explicit, independently chosen direction such as a shadow ray.
func (m *Metal) EvaluateBRDF(incomingDir, outgoingDir, normal core.Vec3) core.Color3 {
	return core.Vec3{}
}

// PDF reports this material as a delta function: direct light sampling
// cannot hit it, matching EvaluateBRDF always returning zero.
func (m *Metal) PDF(incomingDir, outgoingDir, normal core.Vec3) (float64, bool) {
	return 0.0, true
}

// reflect computes the reflection of v about surface normal n.
func reflect(v, n core.Vec3) core.Vec3 {
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}
