package geometry

import (
	"math"

	"github.com/wavefront-rt/tracer/pkg/core"
	"github.com/wavefront-rt/tracer/pkg/material"
)

// NewSphereTriangles tessellates a sphere into a UV-sphere triangle mesh:
// latBands rings of longBands quads each, with the two poles capped by
// triangle fans. Like NewQuadTriangles, this exists because the triangle
// tree only ever stores triangles; a sphere (plain or light-emitting) enters
// the tree as its tessellated approximation rather than as an analytic
// primitive.
func NewSphereTriangles(center core.Vec3, radius float64, latBands, longBands int, mat material.Material) []*Triangle {
	if latBands < 2 {
		latBands = 2
	}
	if longBands < 3 {
		longBands = 3
	}

	vertex := func(lat, lon int) core.Vec3 {
		theta := float64(lat) * math.Pi / float64(latBands)
		phi := float64(lon) * 2 * math.Pi / float64(longBands)

		sinTheta, cosTheta := math.Sin(theta), math.Cos(theta)
		sinPhi, cosPhi := math.Sin(phi), math.Cos(phi)

		dir := core.NewVec3(sinTheta*cosPhi, cosTheta, sinTheta*sinPhi)
		return center.Add(dir.Multiply(radius))
	}

	normalAt := func(p core.Vec3) core.Vec3 {
		return p.Subtract(center).Normalize()
	}

	var triangles []*Triangle
	for lat := 0; lat < latBands; lat++ {
		for lon := 0; lon < longBands; lon++ {
			v00 := vertex(lat, lon)
			v01 := vertex(lat, lon+1)
			v10 := vertex(lat+1, lon)
			v11 := vertex(lat+1, lon+1)

			// The top and bottom rings degenerate to a point; skip the
			// zero-area triangle each would otherwise contribute.
			if lat != latBands-1 {
				triangles = append(triangles, NewTriangleWithNormal(v00, v10, v11, normalAt(v00), mat))
			}
			if lat != 0 {
				triangles = append(triangles, NewTriangleWithNormal(v00, v11, v01, normalAt(v00), mat))
			}
		}
	}

	return triangles
}
