package geometry

import (
	"math"

	"github.com/wavefront-rt/tracer/pkg/core"
)

// Viewport is the pixel-grid size a camera maps rays through.
type Viewport struct {
	Width  int
	Height int
}

// PinholeCamera is an ideal pinhole (no depth of field, no lens) camera
// defined by its position, look-at target, up vector, vertical field of
// view, and aspect ratio. It is the sole camera model the wavefront engine
// talks to: world_ray is deterministic in (x, y) so that repeated samples
// of the same pixel start from an identical primary ray.
type PinholeCamera struct {
	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
	jitter          bool
}

// NewPinholeCamera builds a camera looking from lookFrom toward lookAt, with
// vup establishing the roll, vfovDegrees the vertical field of view, and
// aspectRatio the image's width/height.
func NewPinholeCamera(lookFrom, lookAt, vup core.Vec3, vfovDegrees, aspectRatio float64) *PinholeCamera {
	theta := vfovDegrees * math.Pi / 180.0
	halfHeight := math.Tan(theta / 2)
	halfWidth := aspectRatio * halfHeight

	w := lookFrom.Subtract(lookAt).Normalize()
	u := vup.Cross(w).Normalize()
	v := w.Cross(u)

	origin := lookFrom
	horizontal := u.Multiply(2 * halfWidth)
	vertical := v.Multiply(2 * halfHeight)
	lowerLeftCorner := origin.
		Subtract(horizontal.Multiply(0.5)).
		Subtract(vertical.Multiply(0.5)).
		Subtract(w)

	return &PinholeCamera{
		origin:          origin,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      horizontal,
		vertical:        vertical,
	}
}

// WithJitter returns a copy of the camera with sub-pixel jitter enabled for
// WorldRaySampled. The bare WorldRay method always samples the pixel center,
// matching the spec's deterministic-by-default primary ray generation.
func (c *PinholeCamera) WithJitter(enabled bool) *PinholeCamera {
	cp := *c
	cp.jitter = enabled
	return &cp
}

// WorldRay produces the primary ray through the center of pixel (x, y) for
// the given viewport. Image rows run top to bottom; v is flipped so that
// y=0 is the top row of the image.
func (c *PinholeCamera) WorldRay(x, y int, viewport Viewport) core.Ray {
	return c.worldRay(float64(x)+0.5, float64(y)+0.5, viewport)
}

// WorldRaySampled produces a primary ray through pixel (x, y), applying
// sub-pixel jitter drawn from sampler when the camera has jitter enabled.
// This is the optional antialiasing path noted in the design: samples beyond
// the first stop being pixel-identical copies of each other.
func (c *PinholeCamera) WorldRaySampled(x, y int, viewport Viewport, sampler core.Sampler) core.Ray {
	if !c.jitter {
		return c.WorldRay(x, y, viewport)
	}
	offset := sampler.Get2D()
	return c.worldRay(float64(x)+offset.X, float64(y)+offset.Y, viewport)
}

func (c *PinholeCamera) worldRay(px, py float64, viewport Viewport) core.Ray {
	s := px / float64(viewport.Width)
	t := 1.0 - py/float64(viewport.Height)

	target := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t))

	direction := target.Subtract(c.origin).Normalize()
	return core.NewRay(c.origin, direction)
}
