package lights

import (
	"math"

	"github.com/wavefront-rt/tracer/pkg/core"
)

// SphereLight is a spherical area light emitting uniformly from its entire
// surface with constant radiance Emission.
//
// A sphere's projected silhouette as seen from any external point is a disk
// of radius Radius regardless of viewing angle, so its biradiance has no
// cosine-falloff term, unlike QuadLight: E(p) = L_e * pi * r^2 / distance^2.
// This is the point-source collapse of the teacher's SphereLight solid-angle
// cone sampling (sampleVisible/PDF), grounded in the same radius/distance
// relationship without drawing a stochastic surface point.
type SphereLight struct {
	Center   core.Vec3
	Radius   float64
	Emission core.Radiance3
	Shadows  bool
}

// NewSphereLight creates a spherical light of the given center and radius.
func NewSphereLight(center core.Vec3, radius float64, emission core.Radiance3) *SphereLight {
	return &SphereLight{Center: center, Radius: radius, Emission: emission, Shadows: true}
}

// Position returns the sphere's center.
func (s *SphereLight) Position() core.Vec3 {
	return s.Center
}

// Biradiance returns the irradiance this sphere delivers at p.
func (s *SphereLight) Biradiance(p core.Vec3) core.Radiance3 {
	dist2 := p.Subtract(s.Center).LengthSquared()
	if dist2 < core.Epsilon*core.Epsilon {
		return core.Vec3{}
	}
	projectedArea := math.Pi * s.Radius * s.Radius
	return s.Emission.Multiply(projectedArea / dist2)
}

// CastsShadows reports whether this light participates in occlusion testing.
func (s *SphereLight) CastsShadows() bool {
	return s.Shadows
}
