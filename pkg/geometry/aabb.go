package geometry

import (
	"math"

	"github.com/wavefront-rt/tracer/pkg/core"
)

// AABB is an axis-aligned bounding box used by the triangle tree to prune
// ray/triangle intersection tests.
type AABB struct {
	Min, Max core.Vec3
}

// NewAABB creates an AABB from explicit min/max corners.
func NewAABB(min, max core.Vec3) AABB {
	return AABB{Min: min, Max: max}
}

// NewAABBFromPoints creates the tightest AABB containing all given points.
func NewAABBFromPoints(points ...core.Vec3) AABB {
	if len(points) == 0 {
		return AABB{}
	}
	box := AABB{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		box = box.extend(p)
	}
	return box
}

func (b AABB) extend(p core.Vec3) AABB {
	return AABB{
		Min: core.NewVec3(math.Min(b.Min.X, p.X), math.Min(b.Min.Y, p.Y), math.Min(b.Min.Z, p.Z)),
		Max: core.NewVec3(math.Max(b.Max.X, p.X), math.Max(b.Max.Y, p.Y), math.Max(b.Max.Z, p.Z)),
	}
}

// Union returns the smallest AABB containing both b and other.
func (b AABB) Union(other AABB) AABB {
	return AABB{
		Min: core.NewVec3(math.Min(b.Min.X, other.Min.X), math.Min(b.Min.Y, other.Min.Y), math.Min(b.Min.Z, other.Min.Z)),
		Max: core.NewVec3(math.Max(b.Max.X, other.Max.X), math.Max(b.Max.Y, other.Max.Y), math.Max(b.Max.Z, other.Max.Z)),
	}
}

// Center returns the box's midpoint.
func (b AABB) Center() core.Vec3 {
	return b.Min.Add(b.Max).Multiply(0.5)
}

// LongestAxis returns 0, 1, or 2 for the axis (X, Y, Z) with the largest extent.
func (b AABB) LongestAxis() int {
	extent := b.Max.Subtract(b.Min)
	if extent.X > extent.Y && extent.X > extent.Z {
		return 0
	}
	if extent.Y > extent.Z {
		return 1
	}
	return 2
}

// Hit tests the slab method against the box over the caller-supplied
// [tMin, tMax]; the ray's own TMin/TMax are not consulted. The range is
// closed, so a flat box (zero extent on one axis, as for a planar mesh)
// still reports the hit where the ray crosses its plane.
func (b AABB) Hit(ray core.Ray, tMin, tMax float64) bool {
	for axis := 0; axis < 3; axis++ {
		invD := 1.0 / component(ray.Direction, axis)
		t0 := (component(b.Min, axis) - component(ray.Origin, axis)) * invD
		t1 := (component(b.Max, axis) - component(ray.Origin, axis)) * invD
		if invD < 0 {
			t0, t1 = t1, t0
		}
		if t0 > tMin {
			tMin = t0
		}
		if t1 < tMax {
			tMax = t1
		}
		if tMax < tMin {
			return false
		}
	}
	return true
}

func component(v core.Vec3, axis int) float64 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}
