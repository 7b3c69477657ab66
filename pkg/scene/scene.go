// Package scene assembles the read-only Scene view the wavefront engine
// queries: a triangle tree for ray intersection, a list of lights for
// biradiance sampling, and a camera.
package scene

import (
	"github.com/wavefront-rt/tracer/pkg/core"
	"github.com/wavefront-rt/tracer/pkg/geometry"
	"github.com/wavefront-rt/tracer/pkg/lights"
	"github.com/wavefront-rt/tracer/pkg/material"
)

// Config holds the rendering parameters that don't describe geometry:
// image dimensions and the path tracer's sampling budget.
type Config struct {
	Width           int
	Height          int
	SamplesPerPixel int
	MaxDepth        int
}

// Scene is the assembled, read-only view the wavefront engine renders
// against. Triangles is every triangle the tree will be built from,
// including the emissive triangles backing each area light's visible
// geometry; Lights is the separate list used for light-selection sampling.
type Scene struct {
	Camera    *geometry.PinholeCamera
	Triangles []*geometry.Triangle
	Lights    []lights.Light
	Config    Config

	tree *geometry.TriangleTree
}

// New creates an empty scene around the given camera and sampling config.
func New(camera *geometry.PinholeCamera, config Config) *Scene {
	return &Scene{Camera: camera, Config: config}
}

// Preprocess builds the triangle tree from the accumulated triangle list.
// It must run once, after every Add* call and before the first Hit/Occluded
// query.
func (s *Scene) Preprocess() error {
	shapes := make([]geometry.Shape, len(s.Triangles))
	for i, t := range s.Triangles {
		shapes[i] = t
	}
	s.tree = geometry.NewTriangleTree(shapes)
	return nil
}

// Hit finds the closest intersection along ray within [tMin, tMax].
func (s *Scene) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	return s.tree.Hit(ray, tMin, tMax)
}

// Occluded reports whether anything blocks ray within [tMin, tMax]; it never
// needs the closest hit, only whether one exists, so callers that only need
// a shadow test should prefer this over Hit.
func (s *Scene) Occluded(ray core.Ray, tMin, tMax float64) bool {
	_, hit := s.tree.Hit(ray, tMin, tMax)
	return hit
}

// AllLights returns the scene's lights. It exists alongside the public
// Lights field so *Scene satisfies wavefront.Scene, whose consumers should
// depend on the interface rather than this concrete type.
func (s *Scene) AllLights() []lights.Light {
	return s.Lights
}

// ActiveCamera returns the scene's camera, for the same reason as AllLights.
func (s *Scene) ActiveCamera() *geometry.PinholeCamera {
	return s.Camera
}

// AddTriangle adds a single triangle directly to the scene's geometry.
func (s *Scene) AddTriangle(t *geometry.Triangle) {
	s.Triangles = append(s.Triangles, t)
}

// AddMesh adds every triangle of a loaded mesh to the scene's geometry.
func (s *Scene) AddMesh(mesh *geometry.TriangleMesh) {
	s.Triangles = append(s.Triangles, mesh.GetTriangles()...)
}

// AddQuad adds a plain (non-emissive) quad wall/floor to the scene as two
// triangles.
func (s *Scene) AddQuad(corner, u, v core.Vec3, mat material.Material) {
	s.Triangles = append(s.Triangles, geometry.NewQuadTriangles(corner, u, v, mat)...)
}

// AddGroundQuad adds a large horizontal quad centered at center, replacing
// an infinite ground plane.
func (s *Scene) AddGroundQuad(center core.Vec3, size float64, mat material.Material) {
	corner := core.NewVec3(center.X-size/2, center.Y, center.Z-size/2)
	u := core.NewVec3(size, 0, 0)
	v := core.NewVec3(0, 0, size)
	s.AddQuad(corner, u, v, mat)
}

// AddSphere adds a plain (non-emissive) sphere to the scene, tessellated
// into a UV-sphere triangle mesh.
func (s *Scene) AddSphere(center core.Vec3, radius float64, mat material.Material) {
	s.Triangles = append(s.Triangles, geometry.NewSphereTriangles(center, radius, 16, 32, mat)...)
}

// AddQuadLight adds a rectangular area light. The Light entry drives
// biradiance-based light selection; the matching emissive triangles make
// the light's surface itself visible to (and intersectable by) camera and
// scatter rays, so a ray that directly strikes the light sees its emission.
func (s *Scene) AddQuadLight(corner, u, v core.Vec3, emission core.Radiance3) *lights.QuadLight {
	quadLight := lights.NewQuadLight(corner, u, v, emission)
	s.Lights = append(s.Lights, quadLight)

	emissiveMat := material.NewEmissive(emission)
	s.Triangles = append(s.Triangles, geometry.NewQuadTriangles(corner, u, v, emissiveMat)...)
	return quadLight
}

// AddSphereLight adds a spherical area light, mirroring AddQuadLight: a
// Light entry for sampling plus tessellated emissive triangles for
// visibility.
func (s *Scene) AddSphereLight(center core.Vec3, radius float64, emission core.Radiance3) *lights.SphereLight {
	sphereLight := lights.NewSphereLight(center, radius, emission)
	s.Lights = append(s.Lights, sphereLight)

	emissiveMat := material.NewEmissive(emission)
	s.Triangles = append(s.Triangles, geometry.NewSphereTriangles(center, radius, 16, 32, emissiveMat)...)
	return sphereLight
}

// AddPointLight adds a point light: position and intensity only, with no
// backing geometry, since a point light has no surface for a ray to strike.
func (s *Scene) AddPointLight(position core.Vec3, intensity core.Radiance3) *lights.PointLight {
	pointLight := lights.NewPointLight(position, intensity)
	s.Lights = append(s.Lights, pointLight)
	return pointLight
}
