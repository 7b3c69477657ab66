package loaders

import (
	"fmt"

	"github.com/wavefront-rt/tracer/pkg/core"
	"github.com/wavefront-rt/tracer/pkg/geometry"
	"github.com/wavefront-rt/tracer/pkg/material"
)

// LoadMesh loads a PLY file and wraps it into a geometry.TriangleMesh with
// the given material. When the file carries per-vertex normals, each
// triangle gets the normalized average of its three vertex normals.
func LoadMesh(filename string, mat material.Material, options *geometry.TriangleMeshOptions) (*geometry.TriangleMesh, error) {
	data, err := LoadPLY(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to load mesh %s: %w", filename, err)
	}

	if options == nil {
		options = &geometry.TriangleMeshOptions{}
	}
	if len(data.Normals) > 0 && options.Normals == nil {
		faceNormals := make([]core.Vec3, len(data.Faces)/3)
		for f := range faceNormals {
			a, b, c := data.Faces[3*f], data.Faces[3*f+1], data.Faces[3*f+2]
			faceNormals[f] = data.Normals[a].Add(data.Normals[b]).Add(data.Normals[c]).Normalize()
		}
		options.Normals = faceNormals
	}

	return geometry.NewTriangleMesh(data.Vertices, data.Faces, mat, options), nil
}
