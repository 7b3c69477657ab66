package lights

import "github.com/wavefront-rt/tracer/pkg/core"

// Light is the per-light contract the wavefront engine's light-selection
// stage talks to: a world-space position for shadow-ray origin, the
// radiance-equivalent irradiance it delivers at a point, and whether it
// participates in occlusion testing at all.
type Light interface {
	// Position returns the light's world-space position, used as the
	// shadow ray's origin.
	Position() core.Vec3

	// Biradiance returns the radiance-equivalent irradiance arriving at p
	// from this light, ignoring occlusion (geometry-only attenuation:
	// inverse-square falloff and, for area lights, foreshortening).
	Biradiance(p core.Vec3) core.Radiance3

	// CastsShadows reports whether this light's contribution should be
	// gated on the shadow-ray occlusion test. A light that returns false
	// is never occluded: its pixels are marked visible unconditionally.
	CastsShadows() bool
}
