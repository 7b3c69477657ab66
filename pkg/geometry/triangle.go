package geometry

import (
	"github.com/wavefront-rt/tracer/pkg/core"
	"github.com/wavefront-rt/tracer/pkg/material"
)

// Triangle is a single triangle, the only primitive the triangle tree
// accepts. Its normal and bounding box are precomputed at construction since
// both are read on every hit test and never change afterward.
type Triangle struct {
	V0, V1, V2    core.Vec3
	UV0, UV1, UV2 core.Vec2
	hasUVs        bool
	Material      material.Material
	normal        core.Vec3
	bbox          AABB
}

// NewTriangle creates a triangle from three vertices with a flat (face) normal.
func NewTriangle(v0, v1, v2 core.Vec3, mat material.Material) *Triangle {
	t := &Triangle{V0: v0, V1: v1, V2: v2, Material: mat}
	t.computeNormal()
	t.computeBoundingBox()
	return t
}

// NewTriangleWithNormal creates a triangle with an explicit (e.g. interpolated
// mesh) normal instead of the flat face normal.
func NewTriangleWithNormal(v0, v1, v2, normal core.Vec3, mat material.Material) *Triangle {
	t := &Triangle{V0: v0, V1: v1, V2: v2, Material: mat, normal: normal.Normalize()}
	t.computeBoundingBox()
	return t
}

// NewTriangleWithUVs creates a triangle with per-vertex texture coordinates.
func NewTriangleWithUVs(v0, v1, v2 core.Vec3, uv0, uv1, uv2 core.Vec2, mat material.Material) *Triangle {
	t := &Triangle{V0: v0, V1: v1, V2: v2, UV0: uv0, UV1: uv1, UV2: uv2, hasUVs: true, Material: mat}
	t.computeNormal()
	t.computeBoundingBox()
	return t
}

// NewTriangleWithNormalAndUVs creates a triangle with both an explicit normal
// and per-vertex texture coordinates.
func NewTriangleWithNormalAndUVs(v0, v1, v2 core.Vec3, uv0, uv1, uv2 core.Vec2, normal core.Vec3, mat material.Material) *Triangle {
	t := &Triangle{V0: v0, V1: v1, V2: v2, UV0: uv0, UV1: uv1, UV2: uv2, hasUVs: true, Material: mat, normal: normal.Normalize()}
	t.computeBoundingBox()
	return t
}

func (t *Triangle) computeNormal() {
	edge1 := t.V1.Subtract(t.V0)
	edge2 := t.V2.Subtract(t.V0)
	t.normal = edge1.Cross(edge2).Normalize()
}

func (t *Triangle) computeBoundingBox() {
	t.bbox = NewAABBFromPoints(t.V0, t.V1, t.V2)
}

// Hit tests the triangle using the Möller-Trumbore algorithm.
func (t *Triangle) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	const epsilon = 1e-8

	edge1 := t.V1.Subtract(t.V0)
	edge2 := t.V2.Subtract(t.V0)

	h := ray.Direction.Cross(edge2)
	a := edge1.Dot(h)
	if a > -epsilon && a < epsilon {
		return nil, false // ray parallel to the triangle's plane
	}

	f := 1.0 / a
	s := ray.Origin.Subtract(t.V0)
	u := f * s.Dot(h)
	if u < 0.0 || u > 1.0 {
		return nil, false
	}

	q := s.Cross(edge1)
	v := f * ray.Direction.Dot(q)
	if v < 0.0 || u+v > 1.0 {
		return nil, false
	}

	tParam := f * edge2.Dot(q)
	if tParam < tMin || tParam > tMax {
		return nil, false
	}

	hitPoint := ray.At(tParam)

	var uv core.Vec2
	if t.hasUVs {
		w := 1.0 - u - v
		uv = t.UV0.Multiply(w).Add(t.UV1.Multiply(u)).Add(t.UV2.Multiply(v))
	} else {
		uv = core.NewVec2(u, v)
	}

	hit := &material.HitRecord{
		T:        tParam,
		Point:    hitPoint,
		Material: t.Material,
		UV:       uv,
	}
	hit.SetFaceNormal(ray, t.normal)

	return hit, true
}

// BoundingBox returns the triangle's precomputed bounding box.
func (t *Triangle) BoundingBox() AABB {
	return t.bbox
}

// GetNormal returns the triangle's (possibly interpolated-mesh) normal vector.
func (t *Triangle) GetNormal() core.Vec3 {
	return t.normal
}
