package wavefront

import (
	"math"

	"github.com/wavefront-rt/tracer/pkg/core"
)

// Image is the floating-point RGB accumulator a render call writes into.
// Increment is safe to call concurrently from different goroutines as long
// as no two goroutines ever target the same pixel index in the same call —
// the accumulate stage partitions work by pixel index, so that invariant
// always holds and no internal lock is needed.
type Image struct {
	Width, Height int
	pixels        []core.Radiance3
}

// NewImage creates a w×h image with every pixel initialized to black.
func NewImage(width, height int) *Image {
	return &Image{Width: width, Height: height, pixels: make([]core.Radiance3, width*height)}
}

// Get returns the current value of pixel i.
func (img *Image) Get(i int) core.Radiance3 {
	return img.pixels[i]
}

// Set overwrites pixel i.
func (img *Image) Set(i int, v core.Radiance3) {
	img.pixels[i] = v
}

// Increment adds v to pixel i's current value. A non-finite v is discarded
// entirely (per the NumericHazard disposition in the error taxonomy) rather
// than allowed to poison the accumulator with a NaN or infinity.
func (img *Image) Increment(i int, v core.Radiance3) {
	if !isFinite(v) {
		return
	}
	img.pixels[i] = img.pixels[i].Add(v)
}

// isFinite reports whether every channel of v is a finite float.
func isFinite(v core.Radiance3) bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) &&
		!math.IsNaN(v.Y) && !math.IsInf(v.Y, 0) &&
		!math.IsNaN(v.Z) && !math.IsInf(v.Z, 0)
}
