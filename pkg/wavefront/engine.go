// Package wavefront is the path tracer's estimator core: a data-parallel,
// buffer-oriented Monte Carlo integrator. Every render pass processes the
// entire pixel grid stage by stage (primary rays, closest hit, light
// selection, visibility, accumulation, scatter) rather than recursing
// per pixel, so each stage is a single parallel_for with a barrier at its
// end before the next stage starts.
package wavefront

import (
	"github.com/wavefront-rt/tracer/pkg/core"
	"github.com/wavefront-rt/tracer/pkg/geometry"
	"github.com/wavefront-rt/tracer/pkg/lights"
	"github.com/wavefront-rt/tracer/pkg/material"
)

// Scene is the read-only view the engine renders against: a triangle tree
// for ray queries (consumed through Hit/Occluded), a light list, and a
// camera. pkg/scene.Scene satisfies this; tests may supply a lighter
// fake.
type Scene interface {
	Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool)
	Occluded(ray core.Ray, tMin, tMax float64) bool
	AllLights() []lights.Light
	ActiveCamera() *geometry.PinholeCamera
}

// Logger is the minimal seam render progress is reported through; a nil
// Logger is valid and means "don't log."
type Logger interface {
	Printf(format string, args ...interface{})
}

// RenderOptions configures one render call (spec §6's PathTracer::render).
type RenderOptions struct {
	SamplesPerPixel  int  // S >= 1
	ScatteringEvents int  // K >= 0, the number of bounces beyond the primary hit
	Parallel         bool // false selects the deterministic single-threaded path
	Seed             uint64
	Jitter           bool // sub-pixel camera ray jitter; off by default (spec §9)
	Logger           Logger
	Diagnostics      *Diagnostics // optional per-pixel variance tracker; nil disables it
}

// PathTracer drives the render of one image against a cached scene. It
// carries no state between Render calls beyond the scene itself.
type PathTracer struct {
	scene Scene
}

// New creates a PathTracer bound to scene.
func New(scene Scene) *PathTracer {
	return &PathTracer{scene: scene}
}

// SetScene replaces the scene a subsequent Render call targets.
func (pt *PathTracer) SetScene(scene Scene) {
	pt.scene = scene
}

// Render accumulates samplesPerPixel paths of up to scatteringEvents+1
// vertices into image, for every pixel. image is accumulated into, not
// cleared; callers that want a fresh render should pass a black image.
//
// Render refuses to run (returning an error, leaving image untouched) for
// InvalidConfiguration and NoCamera; every other failure mode in spec §7
// (NumericHazard, SceneEmpty) is handled inline during the render and never
// returned as an error.
func (pt *PathTracer) Render(image *Image, opts RenderOptions) error {
	if image.Width == 0 || image.Height == 0 || opts.SamplesPerPixel == 0 {
		return ErrInvalidConfiguration
	}
	if pt.scene == nil {
		return ErrNoCamera
	}
	camera := pt.scene.ActiveCamera()
	if camera == nil {
		return ErrNoCamera
	}
	if opts.Jitter {
		camera = camera.WithJitter(true)
	}

	logger := opts.Logger
	if logger == nil {
		logger = noopLogger{}
	}

	viewport := geometry.Viewport{Width: image.Width, Height: image.Height}
	n := image.Width * image.Height
	buf := newBuffers(n)
	bounces := opts.ScatteringEvents

	var before []core.Radiance3
	if opts.Diagnostics != nil {
		before = make([]core.Radiance3, n)
	}

	for s := 0; s < opts.SamplesPerPixel; s++ {
		logger.Printf("wavefront: sample %d/%d", s+1, opts.SamplesPerPixel)

		if opts.Diagnostics != nil {
			for i := 0; i < n; i++ {
				before[i] = image.Get(i)
			}
		}

		generatePrimaryRays(buf, camera, viewport, opts.Seed, s, opts.Jitter, opts.Parallel)
		buf.resetModulation(opts.SamplesPerPixel)

		for k := 0; k <= bounces; k++ {
			traceClosest(pt.scene, buf, opts.Parallel)

			if len(pt.scene.AllLights()) > 0 {
				chooseLights(pt.scene, buf, opts.Seed, s, k, opts.Parallel)
				testVisibility(pt.scene, buf, opts.Parallel)
				accumulate(image, buf, opts.Parallel)
			} else {
				accumulateEmissionOnly(image, buf, opts.Parallel)
			}

			generateScatterRays(buf, opts.Seed, s, k, opts.Parallel)
		}

		if opts.Diagnostics != nil {
			for i := 0; i < n; i++ {
				opts.Diagnostics.observe(i, luminanceDelta(before[i], image.Get(i)))
			}
		}
	}

	return nil
}

type noopLogger struct{}

func (noopLogger) Printf(string, ...interface{}) {}
