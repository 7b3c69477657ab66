package scene

import (
	"github.com/wavefront-rt/tracer/pkg/core"
	"github.com/wavefront-rt/tracer/pkg/geometry"
	"github.com/wavefront-rt/tracer/pkg/material"
)

// NewCornellScene builds the classic Cornell box: five quad walls, a
// ceiling area light, and two spheres (one metal, one glass).
func NewCornellScene() *Scene {
	camera := geometry.NewPinholeCamera(
		core.NewVec3(278, 278, -800), // outside the box looking in
		core.NewVec3(278, 278, 0),    // center of the box
		core.NewVec3(0, 1, 0),
		40.0, // vertical FOV degrees
		1.0,  // square aspect ratio
	)

	s := New(camera, Config{
		Width:           400,
		Height:          400,
		SamplesPerPixel: 150,
		MaxDepth:        40,
	})

	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	red := material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05))
	green := material.NewLambertian(core.NewVec3(0.12, 0.45, 0.15))

	const boxSize = 555.0

	// Floor, XZ plane at y=0.
	s.AddQuad(core.NewVec3(0, 0, 0), core.NewVec3(boxSize, 0, 0), core.NewVec3(0, 0, boxSize), white)
	// Ceiling, XZ plane at y=boxSize.
	s.AddQuad(core.NewVec3(0, boxSize, 0), core.NewVec3(boxSize, 0, 0), core.NewVec3(0, 0, boxSize), white)
	// Back wall, XY plane at z=boxSize.
	s.AddQuad(core.NewVec3(0, 0, boxSize), core.NewVec3(boxSize, 0, 0), core.NewVec3(0, boxSize, 0), white)
	// Left wall, YZ plane at x=0.
	s.AddQuad(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, boxSize), core.NewVec3(0, boxSize, 0), red)
	// Right wall, YZ plane at x=boxSize.
	s.AddQuad(core.NewVec3(boxSize, 0, 0), core.NewVec3(0, boxSize, 0), core.NewVec3(0, 0, boxSize), green)

	// Ceiling light: a smaller quad set just below the ceiling.
	const lightSize = 130.0
	lightOffset := (boxSize - lightSize) / 2.0
	s.AddQuadLight(
		core.NewVec3(lightOffset, boxSize-1, lightOffset),
		core.NewVec3(lightSize, 0, 0),
		core.NewVec3(0, 0, lightSize),
		core.NewVec3(15.0, 15.0, 15.0),
	)

	s.AddSphere(core.NewVec3(185, 82.5, 169), 82.5, material.NewMetal(core.NewVec3(0.8, 0.8, 0.9), 0.0))
	s.AddSphere(core.NewVec3(370, 90, 351), 90, material.NewDielectric(1.5))

	_ = s.Preprocess() // infallible: builds the tree from the triangles just added
	return s
}
