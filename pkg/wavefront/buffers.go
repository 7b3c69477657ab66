package wavefront

import (
	"github.com/wavefront-rt/tracer/pkg/core"
	"github.com/wavefront-rt/tracer/pkg/surfel"
)

// buffers is the wavefront engine's per-pixel state (spec §3's buffer
// table), all of length N = width*height and indexed by i = y*width + x.
// The engine owns every slice exclusively for the duration of one render
// call; stages only borrow them for the one stage that is allowed to
// mutate that particular slice.
type buffers struct {
	ray           []core.Ray
	surfel        []*surfel.Surfel // nil at i means "no hit"
	biradiance    []core.Radiance3
	shadowRay     []core.Ray
	lightShadowed []bool
	modulation    []core.Color3
}

// newBuffers allocates a fresh buffer bundle for an n-pixel render. Buffers
// are allocated once per render call and reused across every sample and
// bounce within that call.
func newBuffers(n int) *buffers {
	return &buffers{
		ray:           make([]core.Ray, n),
		surfel:        make([]*surfel.Surfel, n),
		biradiance:    make([]core.Radiance3, n),
		shadowRay:     make([]core.Ray, n),
		lightShadowed: make([]bool, n),
		modulation:    make([]core.Color3, n),
	}
}

// resetModulation sets every pixel's throughput to (1/S, 1/S, 1/S), the
// per-sample normalization every path for this sample carries from here
// on (spec §4.1).
func (b *buffers) resetModulation(samplesPerPixel int) {
	inv := 1.0 / float64(samplesPerPixel)
	weight := core.NewVec3(inv, inv, inv)
	for i := range b.modulation {
		b.modulation[i] = weight
	}
}
