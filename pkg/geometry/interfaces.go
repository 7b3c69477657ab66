package geometry

import (
	"github.com/wavefront-rt/tracer/pkg/core"
	"github.com/wavefront-rt/tracer/pkg/material"
)

// Shape is anything a ray can be tested against: a triangle, or the tree
// that batches many of them.
type Shape interface {
	Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool)
	BoundingBox() AABB
}
