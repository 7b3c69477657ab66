package material

import (
	"math"

	"github.com/wavefront-rt/tracer/pkg/core"
)

// ColorSource provides a spatially-varying reflectance, looked up by a
// material at the hit's UV coordinate or world point.
type ColorSource interface {
	Evaluate(uv core.Vec2, point core.Vec3) core.Color3
}

// SolidColor is a ColorSource that ignores its inputs and always returns the
// same color.
type SolidColor struct {
	Color core.Color3
}

// NewSolidColor creates a ColorSource with a single uniform color.
func NewSolidColor(color core.Color3) *SolidColor {
	return &SolidColor{Color: color}
}

// Evaluate returns the solid color regardless of UV or position.
func (s *SolidColor) Evaluate(uv core.Vec2, point core.Vec3) core.Color3 {
	return s.Color
}

// CheckerTexture is a procedural checkerboard pattern alternating between two
// colors, tiled in world space at the given scale. It needs no pixel buffer,
// unlike an image texture, so it can cover an unbounded surface like a floor
// plane built from triangles.
type CheckerTexture struct {
	Scale          float64
	Color1, Color2 core.Color3
}

// NewCheckerTexture creates a checkerboard ColorSource tiled every scale
// world-space units.
func NewCheckerTexture(scale float64, color1, color2 core.Color3) *CheckerTexture {
	return &CheckerTexture{Scale: scale, Color1: color1, Color2: color2}
}

// Evaluate selects a color based on the parity of the point's tile coordinates.
func (c *CheckerTexture) Evaluate(uv core.Vec2, point core.Vec3) core.Color3 {
	ix := int(math.Floor(point.X / c.Scale))
	iy := int(math.Floor(point.Y / c.Scale))
	iz := int(math.Floor(point.Z / c.Scale))
	if (ix+iy+iz)%2 == 0 {
		return c.Color1
	}
	return c.Color2
}
