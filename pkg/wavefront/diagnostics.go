package wavefront

import (
	"gonum.org/v1/gonum/stat"

	"github.com/wavefront-rt/tracer/pkg/core"
)

// Diagnostics tracks each pixel's per-sample luminance contribution across a
// render, using Welford's online algorithm so a caller never needs to retain
// every sample to later ask for a variance. It exists to make the
// convergence property testable directly rather than only observable by
// eyeballing two renders. Each observed contribution already carries the
// 1/S sample weight, so its variance falls off as 1/S^2 as samplesPerPixel
// grows.
type Diagnostics struct {
	count []uint64
	mean  []float64
	m2    []float64 // sum of squared distances from the running mean
}

// NewDiagnostics allocates a tracker for an n-pixel image.
func NewDiagnostics(n int) *Diagnostics {
	return &Diagnostics{
		count: make([]uint64, n),
		mean:  make([]float64, n),
		m2:    make([]float64, n),
	}
}

// observe folds one more per-sample luminance contribution into pixel i's
// running statistics.
func (d *Diagnostics) observe(i int, luminance float64) {
	d.count[i]++
	delta := luminance - d.mean[i]
	d.mean[i] += delta / float64(d.count[i])
	d.m2[i] += delta * (luminance - d.mean[i])
}

// SampleVariance returns pixel i's unbiased per-sample luminance variance.
// It returns 0 for a pixel that has seen fewer than two samples.
func (d *Diagnostics) SampleVariance(i int) float64 {
	if d.count[i] < 2 {
		return 0
	}
	return d.m2[i] / float64(d.count[i]-1)
}

// MeanLuminance returns pixel i's mean per-sample luminance contribution.
func (d *Diagnostics) MeanLuminance(i int) float64 {
	return d.mean[i]
}

// AggregateVariance reports the mean per-sample variance across every pixel
// that received at least two samples, using gonum/stat so the reduction
// itself isn't hand-rolled. It is the single number scenario S5 compares
// across two renders at different samplesPerPixel: since every contribution
// is scaled by 1/S, doubling S roughly quarters it.
func (d *Diagnostics) AggregateVariance() float64 {
	variances := make([]float64, 0, len(d.count))
	for i := range d.count {
		if d.count[i] < 2 {
			continue
		}
		variances = append(variances, d.SampleVariance(i))
	}
	if len(variances) == 0 {
		return 0
	}
	return stat.Mean(variances, nil)
}

// luminanceDelta returns the luminance of the radiance added to pixel i
// between two image snapshots, used to recover "what this one sample
// contributed" from an image that Increment only ever adds into.
func luminanceDelta(before, after core.Radiance3) float64 {
	return after.Subtract(before).Luminance()
}
