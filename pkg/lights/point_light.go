package lights

import "github.com/wavefront-rt/tracer/pkg/core"

// PointLight is an idealized zero-radius emitter of constant radiant
// intensity Intensity, following the standard inverse-square point-source
// law E(p) = Intensity / distance^2.
type PointLight struct {
	Center    core.Vec3
	Intensity core.Radiance3
	Shadows   bool
}

// NewPointLight creates a point light at position with the given radiant intensity.
func NewPointLight(position core.Vec3, intensity core.Radiance3) *PointLight {
	return &PointLight{Center: position, Intensity: intensity, Shadows: true}
}

// Position returns the point light's location.
func (p *PointLight) Position() core.Vec3 {
	return p.Center
}

// Biradiance returns the irradiance this light delivers at point, via
// inverse-square falloff.
func (p *PointLight) Biradiance(point core.Vec3) core.Radiance3 {
	dist2 := point.Subtract(p.Center).LengthSquared()
	if dist2 < core.Epsilon*core.Epsilon {
		return core.Vec3{}
	}
	return p.Intensity.Multiply(1.0 / dist2)
}

// CastsShadows reports whether this light participates in occlusion testing.
func (p *PointLight) CastsShadows() bool {
	return p.Shadows
}
