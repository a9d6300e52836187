package lights

import (
	"github.com/marcor/go-whitted-raytracer/pkg/core"
)

// PointLight is a point light source with position, color and intensity
type PointLight struct {
	Position  core.Vec3
	Color     core.Vec3 // RGB channels in [0,255]
	Intensity float64   // Scalar multiplier, >= 0
}

// NewPointLight creates a new point light
func NewPointLight(position, color core.Vec3, intensity float64) PointLight {
	return PointLight{
		Position:  position,
		Color:     color,
		Intensity: intensity,
	}
}

// ColorVec returns the light color with channels normalized to [0,1]
func (l PointLight) ColorVec() core.Vec3 {
	return l.Color.Multiply(1.0 / 255.0)
}
