package scene

import (
	"github.com/wavefront-rt/tracer/pkg/core"
	"github.com/wavefront-rt/tracer/pkg/geometry"
	"github.com/wavefront-rt/tracer/pkg/material"
)

// NewDefaultScene builds a small scene of spheres on a ground plane, lit by
// a single sphere light, used as the CLI's built-in demo scene and as a
// fixture for broader rendering tests than the single-light unit scenarios.
func NewDefaultScene() *Scene {
	camera := geometry.NewPinholeCamera(
		core.NewVec3(0, 0.75, 2),  // camera position, higher and farther back
		core.NewVec3(0, 0.5, -1),  // look at the sphere cluster
		core.NewVec3(0, 1, 0),
		40.0,     // vertical FOV degrees
		16.0/9.0, // aspect ratio
	)

	s := New(camera, Config{
		Width:           400,
		Height:          225,
		SamplesPerPixel: 200,
		MaxDepth:        50,
	})

	lambertianGreen := material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0).Multiply(0.6))
	lambertianRed := material.NewLambertian(core.NewVec3(0.65, 0.25, 0.2))
	metalSilver := material.NewMetal(core.NewVec3(0.8, 0.8, 0.8), 0.0)
	metalGold := material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.3)
	glass := material.NewDielectric(1.5)

	s.AddSphere(core.NewVec3(0, 0.5, -1), 0.5, lambertianRed)
	s.AddSphere(core.NewVec3(-1, 0.5, -1), 0.5, metalSilver)
	s.AddSphere(core.NewVec3(1, 0.5, -1), 0.5, metalGold)
	s.AddSphere(core.NewVec3(0.5, 0.25, -0.5), 0.25, glass)

	s.AddGroundQuad(core.NewVec3(0, 0, 0), 10000.0, lambertianGreen)

	s.AddSphereLight(
		core.NewVec3(30, 30.5, 15),
		10,
		core.NewVec3(15.0, 14.0, 13.0),
	)

	_ = s.Preprocess() // infallible: builds the tree from the triangles just added
	return s
}
