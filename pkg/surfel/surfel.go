// Package surfel bridges pkg/material's decomposed Scatter/EvaluateBRDF/PDF
// API to the unified per-hit shading vocabulary the wavefront engine talks
// to: emitted_radiance, finite_scattering_density, scatter, reflectivity.
// The indirection exists because the accelerated triangle tree and BSDF
// evaluation are external collaborators in the spec's architecture, while
// pkg/material is this repository's concrete (swappable) implementation of
// that collaborator.
package surfel

import (
	"math"

	"github.com/wavefront-rt/tracer/pkg/core"
	"github.com/wavefront-rt/tracer/pkg/material"
)

// Surfel is the opaque shading record produced at a ray-triangle hit. Its
// presence (a non-nil pointer) stands in for the spec's "surfel exists"
// check; a missing hit is represented by a nil *Surfel, never a zero value.
type Surfel struct {
	hit           *material.HitRecord
	directionIn   core.Vec3 // unit direction of the ray that produced this hit
}

// New wraps a hit record and the incoming ray direction that produced it.
func New(hit *material.HitRecord, rayInDirection core.Vec3) *Surfel {
	return &Surfel{hit: hit, directionIn: rayInDirection}
}

// Point returns the surfel's world-space position p.
func (s *Surfel) Point() core.Vec3 {
	return s.hit.Point
}

// GeometricNormal returns n_g, the unit geometric normal oriented to face
// the incoming ray; for a back-face hit it is the reverse of the surface's
// outward normal.
func (s *Surfel) GeometricNormal() core.Vec3 {
	return s.hit.Normal
}

// ShadingNormal returns n_s. This repository's triangles carry a single
// (optionally mesh-interpolated) normal, so n_s coincides with n_g; a future
// normal-mapped material would diverge the two here without changing the
// Surfel API.
func (s *Surfel) ShadingNormal() core.Vec3 {
	return s.hit.Normal
}

// EmittedRadiance returns the radiance this surfel emits toward w_o. Zero
// for any material that does not implement material.Emitter.
func (s *Surfel) EmittedRadiance(wo core.Vec3) core.Radiance3 {
	emitter, ok := s.hit.Material.(material.Emitter)
	if !ok {
		return core.Vec3{}
	}
	return emitter.Emit(core.NewRay(s.hit.Point, s.directionIn))
}

// FiniteScatteringDensity evaluates the BSDF for explicit incident/outgoing
// directions, used against an explicit (shadow-ray) light direction rather
// than an importance-sampled one. Delta-function materials (mirror, glass)
// always evaluate to zero here: their entire density is concentrated on a
// single direction that a light's direction essentially never lands on.
func (s *Surfel) FiniteScatteringDensity(wi, wo core.Vec3) core.Color3 {
	return s.hit.Material.EvaluateBRDF(wi, wo, s.hit.Normal)
}

// Scatter importance-samples an outgoing direction given the direction the
// ray arrived from (directionFromEye) and the corresponding w_o = -directionFromEye.
// It returns the sampled incident direction w_i and the Monte Carlo weight
// f(w_i,w_o)*|n_s.w_i| / pdf(w_i), folding the cosine and PDF terms in once
// so callers never divide by a probability themselves. ok is false if the
// material absorbed rather than scattered.
func (s *Surfel) Scatter(directionFromEye, wo core.Vec3, rng core.Sampler) (wi core.Vec3, weight core.Color3, ok bool) {
	rayIn := core.NewRay(s.hit.Point, directionFromEye)
	result, scattered := s.hit.Material.Scatter(rayIn, *s.hit, rng)
	if !scattered {
		return core.Vec3{}, core.Vec3{}, false
	}

	wi = result.Scattered.Direction
	if result.IsSpecular() {
		// A delta-function BSDF's pdf and cosine term cancel analytically;
		// Scatter already returns the post-cancellation attenuation.
		return wi, result.Attenuation, true
	}
	if result.PDF <= 0 {
		return wi, core.Vec3{}, false
	}

	cosTheta := math.Abs(s.hit.Normal.Dot(wi))
	weight = result.Attenuation.Multiply(cosTheta / result.PDF)
	return wi, weight, true
}

// Reflectivity estimates the surfel's hemispherical reflectance via a single
// scatter sample. The wavefront engine does not call it; paths are not
// terminated by Russian roulette.
func (s *Surfel) Reflectivity(rng core.Sampler) core.Color3 {
	_, weight, ok := s.Scatter(s.directionIn, s.directionIn.Negate(), rng)
	if !ok {
		return core.Vec3{}
	}
	return weight
}
