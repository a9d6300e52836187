package scene

import (
	"github.com/marcor/go-whitted-raytracer/pkg/core"
	"github.com/marcor/go-whitted-raytracer/pkg/geometry"
	"github.com/marcor/go-whitted-raytracer/pkg/lights"
	"github.com/marcor/go-whitted-raytracer/pkg/material"
	"github.com/marcor/go-whitted-raytracer/pkg/renderer"
)

// NewTextureDemoScene creates a scene for inspecting texture mapping: a
// UV debug sphere and cube side by side, a checkered floor slab and a
// normal-mapped sphere
func NewTextureDemoScene() *Scene {
	uvDebug := material.NewMaterial(core.NewVec3(1, 1, 1), 10, [4]float64{0.9, 0.1, 0, 0}, 0).
		WithTexture(material.NewUVDebugTexture(256, 256))
	checker := material.NewMaterial(core.NewVec3(0.8, 0.8, 0.8), 10, [4]float64{0.9, 0.1, 0, 0}, 0).
		WithTexture(material.NewCheckerboardTexture(64, 64, 8,
			core.NewVec3(0.9, 0.9, 0.9), core.NewVec3(0.2, 0.2, 0.2)))
	bumpy := material.NewMaterial(core.NewVec3(0.7, 0.3, 0.3), 50, [4]float64{0.8, 0.2, 0, 0}, 0).
		WithNormalMap(material.NewCheckerboardTexture(64, 64, 8,
			core.NewVec3(0.5, 0.5, 1.0), core.NewVec3(0.65, 0.35, 1.0)))

	s := &Scene{
		Camera:      renderer.NewCamera(core.NewVec3(0, 1.5, 6), core.NewVec3(0, 0.5, 0), core.NewVec3(0, 1, 0)),
		Light:       lights.NewPointLight(core.NewVec3(3, 5, 4), core.NewVec3(255, 255, 255), 1.3),
		Environment: &renderer.Environment{},
	}

	s.AddObject(geometry.NewSphere(core.NewVec3(-1.6, 0.75, 0), 0.75, uvDebug))
	s.AddObject(geometry.NewCube(core.NewVec3(0, 0.75, 0), 1.5, uvDebug))
	s.AddObject(geometry.NewSphere(core.NewVec3(1.6, 0.75, 0), 0.75, bumpy))
	// Uniform cube sunk so its top face sits at y=0 as the floor
	s.AddObject(geometry.NewCube(core.NewVec3(0, -4, 0), 8.0, checker))

	return s
}
