package scene

import (
	"github.com/marcor/go-whitted-raytracer/pkg/core"
	"github.com/marcor/go-whitted-raytracer/pkg/geometry"
	"github.com/marcor/go-whitted-raytracer/pkg/lights"
	"github.com/marcor/go-whitted-raytracer/pkg/material"
	"github.com/marcor/go-whitted-raytracer/pkg/renderer"
)

// NewSkyblockScene creates the floating-island diorama: a dirt island
// carrying a tree, a chest, stone pillars, refractive glass blocks,
// reflective water and an emissive sun block overhead
func NewSkyblockScene() *Scene {
	wood := material.NewMaterial(core.NewVec3(0.6, 0.4, 0.2), 5, [4]float64{0.8, 0.1, 0, 0}, 0)
	leaves := material.NewMaterial(core.NewVec3(0.2, 0.6, 0.2), 3, [4]float64{0.9, 0.05, 0, 0}, 0)
	water := material.NewMaterial(core.NewVec3(0.2, 0.4, 0.8), 50, [4]float64{0.2, 0.1, 0.7, 0}, 0)
	stone := material.NewMaterial(core.NewVec3(0.5, 0.5, 0.5), 10, [4]float64{0.9, 0.05, 0, 0}, 0)
	dirt := material.NewMaterial(core.NewVec3(0.4, 0.3, 0.2), 2, [4]float64{0.9, 0.05, 0, 0}, 0).
		WithTexture(material.NewCheckerboardTexture(16, 16, 4,
			core.NewVec3(0.4, 0.3, 0.2), core.NewVec3(0.35, 0.25, 0.15)))
	glass := material.NewMaterial(core.NewVec3(0.6, 0.7, 0.8), 125, [4]float64{0, 0.1, 0.1, 0.8}, 1.5)
	sun := material.NewMaterial(core.NewVec3(1, 1, 1), 10, [4]float64{1, 0, 0, 0}, 0).
		WithEmissive(core.NewVec3(2, 2, 2))

	s := &Scene{
		Camera:      renderer.NewCamera(core.NewVec3(0, 2, 8), core.NewVec3(0, 1, 0), core.NewVec3(0, 1, 0)),
		Light:       lights.NewPointLight(core.NewVec3(1, -1, 5), core.NewVec3(255, 255, 255), 1.5),
		Environment: &renderer.Environment{},
	}

	// Island body, three layers of dirt in a plus shape
	for _, y := range []float64{-1.5, -0.5, 0.5} {
		s.AddObject(geometry.NewCube(core.NewVec3(0, y, 0), 1.0, dirt))
		s.AddObject(geometry.NewCube(core.NewVec3(1, y, 0), 1.0, dirt))
		s.AddObject(geometry.NewCube(core.NewVec3(-1, y, 0), 1.0, dirt))
		s.AddObject(geometry.NewCube(core.NewVec3(0, y, 1), 1.0, dirt))
		s.AddObject(geometry.NewCube(core.NewVec3(0, y, -1), 1.0, dirt))
	}

	// Tree trunk
	s.AddObject(geometry.NewCube(core.NewVec3(0, 1.5, 0), 1.0, wood))
	s.AddObject(geometry.NewCube(core.NewVec3(0, 2.5, 0), 1.0, wood))

	// Canopy
	s.AddObject(geometry.NewCube(core.NewVec3(0, 3.5, 0), 1.0, leaves))
	s.AddObject(geometry.NewCube(core.NewVec3(1, 3.5, 0), 1.0, leaves))
	s.AddObject(geometry.NewCube(core.NewVec3(-1, 3.5, 0), 1.0, leaves))
	s.AddObject(geometry.NewCube(core.NewVec3(0, 3.5, 1), 1.0, leaves))
	s.AddObject(geometry.NewCube(core.NewVec3(0, 3.5, -1), 1.0, leaves))
	s.AddObject(geometry.NewCube(core.NewVec3(0, 4.5, 0), 1.0, leaves))

	// Wooden chest
	s.AddObject(geometry.NewCube(core.NewVec3(1.5, 1, 1.5), 1.0, wood))

	// Stone pillar
	s.AddObject(geometry.NewCube(core.NewVec3(-1.5, 1, -1.5), 1.0, stone))
	s.AddObject(geometry.NewCube(core.NewVec3(-1.5, 2, -1.5), 1.0, stone))

	// Glass blocks
	s.AddObject(geometry.NewCube(core.NewVec3(2, 1, -1), 1.0, glass))
	s.AddObject(geometry.NewCube(core.NewVec3(2, 2, -1), 1.0, glass))
	s.AddObject(geometry.NewCube(core.NewVec3(2, 1, 0), 1.0, glass))

	// Reflective water
	s.AddObject(geometry.NewCube(core.NewVec3(-2, 1, 1), 1.0, water))
	s.AddObject(geometry.NewCube(core.NewVec3(-2, 1, 0), 1.0, water))

	// Sun
	s.AddObject(geometry.NewCube(core.NewVec3(0, 6, 0), 0.5, sun))

	return s
}
