package renderer

import (
	"math"

	"github.com/marcor/go-whitted-raytracer/pkg/core"
	"github.com/marcor/go-whitted-raytracer/pkg/material"
)

// Environment produces a background color for rays that hit nothing,
// either by sampling a panoramic skybox texture or from a procedural
// gradient sky. The zero value renders the procedural sky.
type Environment struct {
	Skybox material.Texture // Optional equirectangular panorama, nil for procedural sky
}

// Color returns the environment color for a ray direction. The result is
// deterministic for a given direction.
func (e *Environment) Color(direction core.Vec3) core.Vec3 {
	d := direction.Normalize()

	if e != nil && e.Skybox != nil {
		u := 0.5 + math.Atan2(d.X, d.Z)/(2*math.Pi)
		v := 0.5 - math.Asin(d.Y)/math.Pi
		return material.SampleUV(e.Skybox, u, v)
	}

	return proceduralSky(d)
}

// proceduralSky synthesizes a gradient sky in three vertical bands:
// horizon haze, a cloud band with a sinusoidal perturbation, and flat
// sky blue above
func proceduralSky(d core.Vec3) core.Vec3 {
	skyBlue := core.NewVec3(0.4, 0.6, 1.0)
	horizonWhite := core.NewVec3(0.9, 0.9, 1.0)
	cloudWhite := core.NewVec3(1.0, 1.0, 1.0)

	t := (d.Y + 1.0) * 0.5
	switch {
	case t < 0.3:
		k := t / 0.3
		return horizonWhite.Multiply(1.0 - k).Add(skyBlue.Multiply(k))
	case t < 0.7:
		k := (t - 0.3) / 0.4
		cloudFactor := math.Sin(d.X*3.0) * math.Cos(d.Z*2.0) * 0.1
		base := skyBlue.Multiply(1.0 - k).Add(cloudWhite.Multiply(k))
		return base.Add(core.NewVec3(cloudFactor, cloudFactor, cloudFactor))
	default:
		return skyBlue
	}
}
