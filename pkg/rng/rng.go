// Package rng provides the counter-based random stream each wavefront stage
// draws from. Ordinary PRNGs (math/rand) are seeded once and then advanced
// sequentially, which ties the numbers a pixel sees to the order goroutines
// happen to run in. Here every draw is instead a pure function of
// (seed, pixel index, sample index, stage, draw index), so two renders of
// the same scene with the same seed produce bit-identical images no matter
// how the parallel_for workers are scheduled.
package rng

import "github.com/wavefront-rt/tracer/pkg/core"

// Stage identifies which wavefront stage is drawing random numbers, so that
// the primary-ray stage and the scatter stage never accidentally reuse the
// same stream for a given pixel and sample.
type Stage uint32

const (
	StagePrimaryRay Stage = iota
	StageLightSelect
	StageScatter
	StageLensJitter
)

// Counter is the per-draw key identifying a random stream. Sampler.Get1D/
// Get2D/Get3D advance Draw within a fixed (Seed, Pixel, Sample, Stage) key.
type Counter struct {
	Seed    uint64
	Pixel   uint64
	Sample  uint64
	Stage   Stage
	Draw    uint64
}

// Sampler implements core.Sampler with a counter-based stream. It carries no
// mutable state other than the draw counter, so a Sampler value can be
// copied freely and handed to nested calls (material scatter, then light
// selection) without the streams interfering.
type Sampler struct {
	c Counter
}

// New returns a Sampler rooted at (seed, pixel, sample, stage) with its draw
// counter at zero.
func New(seed uint64, pixel, sample int, stage Stage) *Sampler {
	return &Sampler{c: Counter{Seed: seed, Pixel: uint64(pixel), Sample: uint64(sample), Stage: stage}}
}

// WithStage returns a new Sampler over the same (seed, pixel, sample) key but
// a different stage, so a single sample's primary-ray, light-selection, and
// scatter draws never collide even though they share a pixel/sample index.
func (s *Sampler) WithStage(stage Stage) *Sampler {
	return &Sampler{c: Counter{Seed: s.c.Seed, Pixel: s.c.Pixel, Sample: s.c.Sample, Stage: stage}}
}

// next draws the counter's current state through the hash and advances Draw.
func (s *Sampler) next() uint64 {
	d := s.c.Draw
	s.c.Draw++
	return hashCounter(s.c.Seed, s.c.Pixel, s.c.Sample, uint64(s.c.Stage), d)
}

// Get1D returns the next draw as a float64 in [0, 1).
func (s *Sampler) Get1D() float64 {
	return toUnitFloat(s.next())
}

// Get2D returns two independent draws in [0, 1)^2.
func (s *Sampler) Get2D() core.Vec2 {
	return core.NewVec2(toUnitFloat(s.next()), toUnitFloat(s.next()))
}

// Get3D returns three independent draws in [0, 1)^3.
func (s *Sampler) Get3D() core.Vec3 {
	return core.NewVec3(toUnitFloat(s.next()), toUnitFloat(s.next()), toUnitFloat(s.next()))
}

// toUnitFloat maps a uint64 to [0, 1) using the top 53 bits, matching the
// precision of a float64 mantissa.
func toUnitFloat(x uint64) float64 {
	const mantissaBits = 53
	return float64(x>>(64-mantissaBits)) / float64(uint64(1)<<mantissaBits)
}

// hashCounter mixes the five key components into one 64-bit value using a
// splitmix64-style avalanche. It is not cryptographically strong, only
// well-distributed, which is all a Monte Carlo estimator needs.
func hashCounter(seed, pixel, sample, stage, draw uint64) uint64 {
	x := seed
	x = mix(x, pixel)
	x = mix(x, sample)
	x = mix(x, stage)
	x = mix(x, draw)
	return x
}

// mix folds k into state using the splitmix64 finalizer, run once per key
// component so the counter's four fields are mixed independently rather than
// just concatenated and hashed once (which would make adjacent pixels or
// samples produce correlated low bits).
func mix(state, k uint64) uint64 {
	z := state ^ (k * 0x9E3779B97F4A7C15)
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	z = z ^ (z >> 31)
	return z
}
