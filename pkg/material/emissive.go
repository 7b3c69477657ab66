package material

import (
	"github.com/wavefront-rt/tracer/pkg/core"
)

// Emissive is a light-emitting material attached to an area light's shape.
// It never scatters; it only emits.
type Emissive struct {
	Emission core.Radiance3
}

// NewEmissive creates an emissive material with constant emitted radiance.
func NewEmissive(emission core.Radiance3) *Emissive {
	return &Emissive{Emission: emission}
}

// Scatter always fails: an emissive surface absorbs everything it is hit by.
func (e *Emissive) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	return ScatterResult{}, false
}

// Emit returns the constant emitted radiance, regardless of ray direction.
func (e *Emissive) Emit(rayIn core.Ray) core.Radiance3 {
	return e.Emission
}

// EvaluateBRDF returns zero: an emitter does not reflect.
func (e *Emissive) EvaluateBRDF(incomingDir, outgoingDir, normal core.Vec3) core.Color3 {
	return core.Vec3{}
}

// PDF returns zero density and reports no delta function: there is simply nothing to sample.
func (e *Emissive) PDF(incomingDir, outgoingDir, normal core.Vec3) (float64, bool) {
	return 0.0, false
}
