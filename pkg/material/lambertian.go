package material

import (
	"math"

	"github.com/wavefront-rt/tracer/pkg/core"
)

// Lambertian is a perfectly diffuse (ideal matte) material. Its BRDF is
// constant over the hemisphere, so scattering is sampled cosine-weighted to
// make every sample carry equal weight.
type Lambertian struct {
	Albedo ColorSource // reflectance, evaluated at the hit UV/point
}

// NewLambertian creates a Lambertian material with a uniform albedo.
func NewLambertian(albedo core.Color3) *Lambertian {
	return &Lambertian{Albedo: NewSolidColor(albedo)}
}

// NewLambertianTextured creates a Lambertian material with a spatially
// varying albedo (e.g. a checker pattern).
func NewLambertianTextured(albedo ColorSource) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

// Scatter importance-samples a cosine-weighted outgoing direction.
func (l *Lambertian) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	scatterDirection := core.RandomCosineDirection(hit.Normal, sampler)
	scattered := core.NewRay(hit.Point, scatterDirection).WithBounds(core.Epsilon, math.Inf(1))

	cosTheta := math.Max(0, scatterDirection.Dot(hit.Normal))
	pdf := cosTheta / math.Pi

	attenuation := l.Albedo.Evaluate(hit.UV, hit.Point).Multiply(1.0 / math.Pi)

	return ScatterResult{
		Scattered:   scattered,
		Attenuation: attenuation,
		PDF:         pdf,
	}, true
}

// EvaluateBRDF returns the constant albedo/π BRDF value when outgoingDir lies
// on the normal's side of the surface, and zero otherwise.
func (l *Lambertian) EvaluateBRDF(incomingDir, outgoingDir, normal core.Vec3) core.Color3 {
	if outgoingDir.Dot(normal) <= 0 {
		return core.Vec3{}
	}
	return l.Albedo.Evaluate(core.Vec2{}, core.Vec3{}).Multiply(1.0 / math.Pi)
}

// PDF returns the cosine-weighted density for outgoingDir.
func (l *Lambertian) PDF(incomingDir, outgoingDir, normal core.Vec3) (float64, bool) {
	cosTheta := outgoingDir.Dot(normal)
	if cosTheta <= 0 {
		return 0, false
	}
	return cosTheta / math.Pi, false
}
