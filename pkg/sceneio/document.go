// Package sceneio loads a Scene from a YAML document: camera, named
// materials, and the geometry/lights that reference them. It is the one
// place in this module that talks to the filesystem and a serialization
// format, keeping pkg/scene itself free of any notion of "file."
package sceneio

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/wavefront-rt/tracer/pkg/core"
	"github.com/wavefront-rt/tracer/pkg/geometry"
	"github.com/wavefront-rt/tracer/pkg/loaders"
	"github.com/wavefront-rt/tracer/pkg/material"
	"github.com/wavefront-rt/tracer/pkg/scene"
)

// vec3 is core.Vec3's YAML-facing shape: a three-element mapping instead of
// core.Vec3's unexported construction, so a document stays readable as
// "x: 1\ny: 2\nz: 3" instead of a bare sequence.
type vec3 struct {
	X, Y, Z float64
}

func (v vec3) toCore() core.Vec3 {
	return core.NewVec3(v.X, v.Y, v.Z)
}

// cameraDoc mirrors geometry.NewPinholeCamera's parameters.
type cameraDoc struct {
	LookFrom    vec3    `yaml:"lookFrom"`
	LookAt      vec3    `yaml:"lookAt"`
	Up          vec3    `yaml:"up"`
	VFovDegrees float64 `yaml:"vfovDegrees"`
}

// materialDoc is a tagged union over every material constructor pkg/material
// exposes. Exactly one of the type-specific fields is meaningful, selected
// by Type.
type materialDoc struct {
	Type string `yaml:"type"` // "lambertian", "metal", "dielectric", "emissive"

	Albedo          *vec3    `yaml:"albedo,omitempty"`
	Fuzz            *float64 `yaml:"fuzz,omitempty"`
	RefractiveIndex *float64 `yaml:"refractiveIndex,omitempty"`
	Emission        *vec3    `yaml:"emission,omitempty"`
}

func (m materialDoc) build() (material.Material, error) {
	switch m.Type {
	case "lambertian":
		if m.Albedo == nil {
			return nil, fmt.Errorf("lambertian material requires albedo")
		}
		return material.NewLambertian(m.Albedo.toCore()), nil
	case "metal":
		if m.Albedo == nil {
			return nil, fmt.Errorf("metal material requires albedo")
		}
		fuzz := 0.0
		if m.Fuzz != nil {
			fuzz = *m.Fuzz
		}
		return material.NewMetal(m.Albedo.toCore(), fuzz), nil
	case "dielectric":
		if m.RefractiveIndex == nil {
			return nil, fmt.Errorf("dielectric material requires refractiveIndex")
		}
		return material.NewDielectric(*m.RefractiveIndex), nil
	case "emissive":
		if m.Emission == nil {
			return nil, fmt.Errorf("emissive material requires emission")
		}
		return material.NewEmissive(m.Emission.toCore()), nil
	default:
		return nil, fmt.Errorf("unknown material type %q", m.Type)
	}
}

// quadDoc describes a parallelogram: corner plus the two edge vectors u, v.
type quadDoc struct {
	Corner   vec3   `yaml:"corner"`
	U        vec3   `yaml:"u"`
	V        vec3   `yaml:"v"`
	Material string `yaml:"material,omitempty"` // must name a defined material; quad lights use quadLightDoc
}

type sphereDoc struct {
	Center   vec3    `yaml:"center"`
	Radius   float64 `yaml:"radius"`
	Material string  `yaml:"material,omitempty"`
}

type groundQuadDoc struct {
	Center   vec3    `yaml:"center"`
	Size     float64 `yaml:"size"`
	Material string  `yaml:"material"`
}

type meshDoc struct {
	Path     string `yaml:"path"`
	Material string `yaml:"material"`
}

type quadLightDoc struct {
	Corner   vec3 `yaml:"corner"`
	U        vec3 `yaml:"u"`
	V        vec3 `yaml:"v"`
	Emission vec3 `yaml:"emission"`
}

type sphereLightDoc struct {
	Center   vec3    `yaml:"center"`
	Radius   float64 `yaml:"radius"`
	Emission vec3    `yaml:"emission"`
}

type pointLightDoc struct {
	Position  vec3 `yaml:"position"`
	Intensity vec3 `yaml:"intensity"`
}

// Document is the top-level YAML shape a scene file is parsed into.
type Document struct {
	Width           int                    `yaml:"width"`
	Height          int                    `yaml:"height"`
	SamplesPerPixel int                    `yaml:"samplesPerPixel"`
	MaxDepth        int                    `yaml:"maxDepth"`
	Camera          cameraDoc              `yaml:"camera"`
	Materials       map[string]materialDoc `yaml:"materials"`
	Quads           []quadDoc              `yaml:"quads,omitempty"`
	GroundQuads     []groundQuadDoc        `yaml:"groundQuads,omitempty"`
	Spheres         []sphereDoc            `yaml:"spheres,omitempty"`
	Meshes          []meshDoc              `yaml:"meshes,omitempty"`
	QuadLights      []quadLightDoc         `yaml:"quadLights,omitempty"`
	SphereLights    []sphereLightDoc       `yaml:"sphereLights,omitempty"`
	PointLights     []pointLightDoc        `yaml:"pointLights,omitempty"`
}

func buildCamera(doc cameraDoc, aspectRatio float64) *geometry.PinholeCamera {
	return geometry.NewPinholeCamera(doc.LookFrom.toCore(), doc.LookAt.toCore(), doc.Up.toCore(), doc.VFovDegrees, aspectRatio)
}

// Load reads and parses a scene document from filename and builds the
// corresponding *scene.Scene, already preprocessed and ready to render.
func Load(filename string) (*scene.Scene, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("sceneio: reading %s: %w", filename, err)
	}

	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("sceneio: parsing %s: %w", filename, err)
	}

	return Build(&doc)
}

// Build assembles a *scene.Scene from an already-parsed Document.
func Build(doc *Document) (*scene.Scene, error) {
	aspectRatio := 1.0
	if doc.Height > 0 {
		aspectRatio = float64(doc.Width) / float64(doc.Height)
	}
	camera := buildCamera(doc.Camera, aspectRatio)

	config := scene.Config{
		Width:           doc.Width,
		Height:          doc.Height,
		SamplesPerPixel: doc.SamplesPerPixel,
		MaxDepth:        doc.MaxDepth,
	}
	s := scene.New(camera, config)

	materials := make(map[string]material.Material, len(doc.Materials))
	for name, m := range doc.Materials {
		built, err := m.build()
		if err != nil {
			return nil, fmt.Errorf("sceneio: material %q: %w", name, err)
		}
		materials[name] = built
	}
	lookupMaterial := func(name string) (material.Material, error) {
		mat, ok := materials[name]
		if !ok {
			return nil, fmt.Errorf("sceneio: undefined material %q", name)
		}
		return mat, nil
	}

	for i, q := range doc.Quads {
		mat, err := lookupMaterial(q.Material)
		if err != nil {
			return nil, fmt.Errorf("quads[%d]: %w", i, err)
		}
		s.AddQuad(q.Corner.toCore(), q.U.toCore(), q.V.toCore(), mat)
	}

	for i, g := range doc.GroundQuads {
		mat, err := lookupMaterial(g.Material)
		if err != nil {
			return nil, fmt.Errorf("groundQuads[%d]: %w", i, err)
		}
		s.AddGroundQuad(g.Center.toCore(), g.Size, mat)
	}

	for i, sp := range doc.Spheres {
		mat, err := lookupMaterial(sp.Material)
		if err != nil {
			return nil, fmt.Errorf("spheres[%d]: %w", i, err)
		}
		s.AddSphere(sp.Center.toCore(), sp.Radius, mat)
	}

	for i, m := range doc.Meshes {
		mat, err := lookupMaterial(m.Material)
		if err != nil {
			return nil, fmt.Errorf("meshes[%d]: %w", i, err)
		}
		mesh, err := loaders.LoadMesh(m.Path, mat, nil)
		if err != nil {
			return nil, fmt.Errorf("meshes[%d]: %w", i, err)
		}
		s.AddMesh(mesh)
	}

	for _, ql := range doc.QuadLights {
		s.AddQuadLight(ql.Corner.toCore(), ql.U.toCore(), ql.V.toCore(), ql.Emission.toCore())
	}
	for _, sl := range doc.SphereLights {
		s.AddSphereLight(sl.Center.toCore(), sl.Radius, sl.Emission.toCore())
	}
	for _, pl := range doc.PointLights {
		s.AddPointLight(pl.Position.toCore(), pl.Intensity.toCore())
	}

	if err := s.Preprocess(); err != nil {
		return nil, fmt.Errorf("sceneio: preprocessing scene: %w", err)
	}
	return s, nil
}
