package geometry

import (
	"github.com/wavefront-rt/tracer/pkg/core"
	"github.com/wavefront-rt/tracer/pkg/material"
)

// NewQuadTriangles tessellates a parallelogram (corner, corner+u, corner+u+v,
// corner+v) into the two triangles the triangle tree actually stores. The
// triangle tree has no notion of a quad primitive, so every quad-shaped
// surface in a scene -- wall, ground plane, area light -- enters the tree
// this way.
func NewQuadTriangles(corner, u, v core.Vec3, mat material.Material) []*Triangle {
	p00 := corner
	p10 := corner.Add(u)
	p11 := corner.Add(u).Add(v)
	p01 := corner.Add(v)

	return []*Triangle{
		NewTriangle(p00, p10, p11, mat),
		NewTriangle(p00, p11, p01, mat),
	}
}

// QuadArea returns the area of the parallelogram spanned by u and v, the
// same quantity a QuadLight uses for its biradiance falloff.
func QuadArea(u, v core.Vec3) float64 {
	return u.Cross(v).Length()
}

// QuadCentroid returns the parallelogram's center point.
func QuadCentroid(corner, u, v core.Vec3) core.Vec3 {
	return corner.Add(u.Multiply(0.5)).Add(v.Multiply(0.5))
}

// QuadNormal returns the parallelogram's unit face normal.
func QuadNormal(u, v core.Vec3) core.Vec3 {
	return u.Cross(v).Normalize()
}
