package wavefront

import (
	"github.com/wavefront-rt/tracer/pkg/core"
	"github.com/wavefront-rt/tracer/pkg/geometry"
	"github.com/wavefront-rt/tracer/pkg/rng"
	"github.com/wavefront-rt/tracer/pkg/surfel"
)

// generatePrimaryRays fills ray[i] with camera.world_ray(x, y, viewport) for
// every pixel (spec §4.2). Every pixel is independent, so this is the
// simplest possible parallel_for.
func generatePrimaryRays(buf *buffers, camera *geometry.PinholeCamera, viewport geometry.Viewport, seed uint64, sample int, jitter bool, parallel bool) {
	parallelFor(len(buf.ray), parallel, func(i int) {
		x := i % viewport.Width
		y := i / viewport.Width

		if !jitter {
			buf.ray[i] = camera.WorldRay(x, y, viewport)
			return
		}
		sampler := rng.New(seed, i, sample, rng.StagePrimaryRay)
		buf.ray[i] = camera.WorldRaySampled(x, y, viewport, sampler)
	})
}

// traceClosest submits the whole ray buffer to the triangle tree for
// batched closest-hit (spec §4.3), wrapping each hit record into a Surfel
// or recording absence.
func traceClosest(scene Scene, buf *buffers, parallel bool) {
	parallelFor(len(buf.ray), parallel, func(i int) {
		ray := buf.ray[i]
		hit, ok := scene.Hit(ray, ray.TMin, ray.TMax)
		if !ok {
			buf.surfel[i] = nil
			return
		}
		buf.surfel[i] = surfel.New(hit, ray.Direction)
	})
}

// bounceSampleKey folds the sample index s and the bounce depth k into a
// single stream key so that every (sample, bounce) pair draws from an
// independent rng stream even though rng.Sampler's key only carries one
// "sample" field. It is the Cantor pairing of (s, k), which is one-to-one
// over non-negative integers and so needs no bound on the bounce count.
func bounceSampleKey(s, k int) int {
	return (s+k)*(s+k+1)/2 + k
}

// chooseLights selects one light per pixel with probability proportional
// to its unshadowed biradiance at the hit point, and forms the
// corresponding shadow ray (spec §4.4).
func chooseLights(scene Scene, buf *buffers, seed uint64, s, k int, parallel bool) {
	lightList := scene.AllLights()

	parallelFor(len(buf.surfel), parallel, func(i int) {
		sf := buf.surfel[i]
		if sf == nil {
			return
		}
		p := sf.Point()

		bj := make([]float64, len(lightList))
		var total float64
		for j, light := range lightList {
			bir := light.Biradiance(p)
			bj[j] = bir.X + bir.Y + bir.Z
			total += bj[j]
		}

		if total <= 0 {
			buf.biradiance[i] = core.Vec3{}
			buf.shadowRay[i] = core.NewRayTo(lightList[0].Position(), p)
			buf.lightShadowed[i] = true // arbitrary; ignored since biradiance is zero
			return
		}

		sampler := rng.New(seed, i, bounceSampleKey(s, k), rng.StageLightSelect)
		u := sampler.Get1D() * total

		var cumulative float64
		chosen := len(lightList) - 1
		for j := range lightList {
			cumulative += bj[j]
			if cumulative > u {
				chosen = j
				break
			}
		}

		light := lightList[chosen]
		b := light.Biradiance(p)
		mean := b.Mean()
		if mean <= 0 {
			buf.biradiance[i] = core.Vec3{}
		} else {
			buf.biradiance[i] = b.Multiply(total / mean)
		}

		buf.shadowRay[i] = core.NewRayTo(light.Position(), p)
		if !light.CastsShadows() {
			// Open question #3 (spec §9): a non-shadowing light's pixels skip
			// the occlusion test and are marked unconditionally visible.
			buf.lightShadowed[i] = false
		} else {
			buf.lightShadowed[i] = true // testVisibility overwrites this with the real result
		}
	})
}

// testVisibility submits the shadow-ray buffer to the triangle tree in
// occlusion-only mode (spec §4.5). Pixels whose light doesn't cast shadows
// were already resolved in chooseLights and are skipped here.
func testVisibility(scene Scene, buf *buffers, parallel bool) {
	parallelFor(len(buf.surfel), parallel, func(i int) {
		if buf.surfel[i] == nil {
			return
		}
		if !buf.lightShadowed[i] {
			return // non-shadowing light; chooseLights already decided visible
		}
		ray := buf.shadowRay[i]
		buf.lightShadowed[i] = scene.Occluded(ray, ray.TMin, ray.TMax)
	})
}

// accumulate adds the emissive and direct-lighting terms for every pixel
// with a hit into image (spec §4.6).
func accumulate(image *Image, buf *buffers, parallel bool) {
	parallelFor(len(buf.surfel), parallel, func(i int) {
		sf := buf.surfel[i]
		if sf == nil {
			return
		}

		ray := buf.ray[i]
		wo := ray.Direction.Negate()
		mod := buf.modulation[i]

		contribution := sf.EmittedRadiance(wo).MultiplyVec(mod)

		if !buf.lightShadowed[i] {
			wi := buf.shadowRay[i].Direction.Negate()
			f := sf.FiniteScatteringDensity(wi, wo)
			cosTheta := sf.GeometricNormal().AbsDot(wi)
			direct := buf.biradiance[i].MultiplyVec(mod).MultiplyVec(f).Multiply(cosTheta)
			contribution = contribution.Add(direct)
		}

		image.Increment(i, contribution)
	})
}

// accumulateEmissionOnly is accumulate's path for a light-free scene: only
// the emissive term can ever contribute, so light selection and visibility
// testing are skipped entirely for that sample (spec §4.1's "if scene has
// lights" guard).
func accumulateEmissionOnly(image *Image, buf *buffers, parallel bool) {
	parallelFor(len(buf.surfel), parallel, func(i int) {
		sf := buf.surfel[i]
		if sf == nil {
			return
		}
		wo := buf.ray[i].Direction.Negate()
		contribution := sf.EmittedRadiance(wo).MultiplyVec(buf.modulation[i])
		image.Increment(i, contribution)
	})
}

// generateScatterRays importance-samples the next bounce's ray and folds the
// scatter weight into the running path throughput (spec §4.7). A pixel
// whose surfel is absent is left untouched; one whose material declines to
// scatter has its modulation zeroed, which terminates the path implicitly
// on every later stage without needing a separate "dead path" flag.
func generateScatterRays(buf *buffers, seed uint64, s, k int, parallel bool) {
	parallelFor(len(buf.surfel), parallel, func(i int) {
		sf := buf.surfel[i]
		if sf == nil {
			return
		}

		directionFromEye := buf.ray[i].Direction
		wo := directionFromEye.Negate()

		sampler := rng.New(seed, i, bounceSampleKey(s, k), rng.StageScatter)
		wi, weight, ok := sf.Scatter(directionFromEye, wo, sampler)
		if !ok {
			weight = core.Vec3{}
			wi = wo.Negate()
		}

		ng := sf.GeometricNormal()
		sign := 1.0
		if ng.Dot(wi.Negate()) < 0 {
			sign = -1.0
		}
		bump := sf.Point().Add(sf.ShadingNormal().Multiply(-sign * core.Epsilon))

		buf.ray[i] = core.NewRay(bump, wi)
		buf.modulation[i] = buf.modulation[i].MultiplyVec(weight)
	})
}
