package renderer

import (
	"math"
	"testing"

	"github.com/marcor/go-whitted-raytracer/pkg/core"
	"github.com/marcor/go-whitted-raytracer/pkg/material"
)

func TestEnvironment_ProceduralBands(t *testing.T) {
	var env *Environment // nil environment renders the procedural sky

	// Straight down is the pure horizon color
	down := env.Color(core.NewVec3(0, -1, 0))
	if down != core.NewVec3(0.9, 0.9, 1.0) {
		t.Errorf("Expected horizon white looking down, got %v", down)
	}

	// High above the cloud band is flat sky blue
	up := env.Color(core.NewVec3(0, 1, 0))
	if up != core.NewVec3(0.4, 0.6, 1.0) {
		t.Errorf("Expected flat sky blue looking up, got %v", up)
	}
}

func TestEnvironment_ProceduralIsDeterministic(t *testing.T) {
	env := &Environment{}
	dir := core.NewVec3(0.3, 0.1, -0.8)

	first := env.Color(dir)
	second := env.Color(dir)

	if first != second {
		t.Errorf("Expected identical colors for the same direction, got %v and %v", first, second)
	}
}

func TestEnvironment_CloudBandPerturbation(t *testing.T) {
	env := &Environment{}

	// Two directions with the same elevation but different x should differ
	// by the sinusoidal cloud factor
	a := env.Color(core.NewVec3(0.5, 0, 0.866025403784).Normalize())
	b := env.Color(core.NewVec3(-0.5, 0, 0.866025403784).Normalize())

	if a == b {
		t.Error("Expected cloud perturbation to vary with direction")
	}
}

func TestEnvironment_SkyboxSample(t *testing.T) {
	// 2x2 panorama: distinct colors per quadrant
	skybox := material.NewImageTexture(2, 2, []core.Vec3{
		core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0),
		core.NewVec3(0, 0, 1), core.NewVec3(1, 1, 0),
	})
	env := &Environment{Skybox: skybox}

	// Straight up: u=0.5, v=0 -> top-right texel
	up := env.Color(core.NewVec3(0, 1, 0))
	if up != core.NewVec3(0, 1, 0) {
		t.Errorf("Expected top-right texel, got %v", up)
	}

	// Straight down: u=0.5, v=1 -> clamped to bottom-right texel
	down := env.Color(core.NewVec3(0, -1, 0))
	if down != core.NewVec3(1, 1, 0) {
		t.Errorf("Expected bottom-right texel, got %v", down)
	}
}

func TestEnvironment_SkyboxUVMapping(t *testing.T) {
	// The +z axis maps to the panorama center, u=0.5 v=0.5
	skybox := material.NewUVDebugTexture(64, 64)
	env := &Environment{Skybox: skybox}

	c := env.Color(core.NewVec3(0, 0, 1))

	const tolerance = 0.02
	if math.Abs(c.X-0.5) > tolerance || math.Abs(c.Y-0.5) > tolerance {
		t.Errorf("Expected center sample near (0.5,0.5), got (%f,%f)", c.X, c.Y)
	}
}
