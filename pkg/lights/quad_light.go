package lights

import (
	"math"

	"github.com/wavefront-rt/tracer/pkg/core"
)

// QuadLight is a rectangular area light spanned by two edge vectors u, v
// from corner, emitting uniformly from its front face (corner+u×v normal
// direction) with constant radiance Emission.
//
// Biradiance treats the quad as a point emitter located at its centroid:
// the standard small-area-light approximation E(p) = L_e * A * cos(theta) /
// distance^2, grounded in the teacher's QuadLight solid-angle PDF
// (areaPDF * distance^2 / cosTheta, inverted here into an irradiance rather
// than a sampling density since this spec draws no stochastic position on
// the light's surface).
type QuadLight struct {
	Corner, U, V, Normal core.Vec3
	Area                 float64
	Emission             core.Radiance3
	Shadows              bool
}

// NewQuadLight creates a quad light from a corner and two edge vectors.
func NewQuadLight(corner, u, v core.Vec3, emission core.Radiance3) *QuadLight {
	cross := u.Cross(v)
	return &QuadLight{
		Corner:   corner,
		U:        u,
		V:        v,
		Normal:   cross.Normalize(),
		Area:     cross.Length(),
		Emission: emission,
		Shadows:  true,
	}
}

// Position returns the quad's centroid.
func (q *QuadLight) Position() core.Vec3 {
	return q.Corner.Add(q.U.Multiply(0.5)).Add(q.V.Multiply(0.5))
}

// Biradiance returns the irradiance this quad delivers at p, as if all of
// its emitted power originated at its centroid. Zero if p is behind the
// quad's plane (the quad emits from its front face only) or coincides with
// the centroid.
func (q *QuadLight) Biradiance(p core.Vec3) core.Radiance3 {
	toP := p.Subtract(q.Position())
	dist2 := toP.LengthSquared()
	if dist2 < core.Epsilon*core.Epsilon {
		return core.Vec3{}
	}
	dist := math.Sqrt(dist2)
	dir := toP.Multiply(1.0 / dist)

	cosTheta := dir.Dot(q.Normal)
	if cosTheta <= 0 {
		return core.Vec3{}
	}

	return q.Emission.Multiply(q.Area * cosTheta / dist2)
}

// CastsShadows reports whether this light participates in occlusion testing.
func (q *QuadLight) CastsShadows() bool {
	return q.Shadows
}
