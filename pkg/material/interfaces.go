package material

import (
	"github.com/wavefront-rt/tracer/pkg/core"
)

// Material is the scattering model attached to a triangle or light shape.
// pkg/surfel bridges this decomposed API to the unified Surfel vocabulary
// (EmittedRadiance/FiniteScatteringDensity/Scatter/Reflectivity) the
// wavefront engine actually talks to.
type Material interface {
	// Scatter importance-samples an outgoing direction for rayIn hitting hit,
	// returning the sampled ray along with the BRDF/PDF weighting needed to
	// form an unbiased Monte Carlo estimate.
	Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool)

	// EvaluateBRDF returns the BRDF value for explicit incoming/outgoing
	// directions (used by finite_scattering_density against explicit light
	// directions rather than importance-sampled ones).
	EvaluateBRDF(incomingDir, outgoingDir, normal core.Vec3) core.Color3

	// PDF returns the probability density of sampling outgoingDir via
	// Scatter, and whether this material's scattering is a delta function
	// (specular), in which case PDF is meaningless and finite-density
	// evaluation against an explicit light direction is always zero.
	PDF(incomingDir, outgoingDir, normal core.Vec3) (pdf float64, isDelta bool)
}

// Emitter is implemented by materials that emit radiance (area/emissive
// lights). A Material that does not implement Emitter is treated as emitting
// zero radiance.
type Emitter interface {
	Emit(rayIn core.Ray) core.Radiance3
}

// ScatterResult is the outcome of importance-sampling a scattering event.
type ScatterResult struct {
	Scattered   core.Ray    // the sampled outgoing ray, originating at the hit point
	Attenuation core.Color3 // BRDF value at the sampled direction
	PDF         float64     // probability density of the sampled direction; 0 for specular
}

// IsSpecular reports whether this scattering event came from a delta-function BRDF.
func (s ScatterResult) IsSpecular() bool {
	return s.PDF <= 0
}

// HitRecord describes a ray/surface intersection, independent of the shape
// that produced it (triangle, quad, sphere).
type HitRecord struct {
	Point     core.Vec3
	Normal    core.Vec3
	UV        core.Vec2
	T         float64
	FrontFace bool
	Material  Material
}

// SetFaceNormal orients the hit normal against the incoming ray and records
// which face was struck.
func (h *HitRecord) SetFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Multiply(-1)
	}
}
