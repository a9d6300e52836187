package geometry

import (
	"github.com/marcor/go-whitted-raytracer/pkg/core"
	"github.com/marcor/go-whitted-raytracer/pkg/material"
)

// Shape interface for objects that can be hit by rays
type Shape interface {
	// Hit returns the nearest forward intersection along the ray,
	// or (nil, false) when the ray misses
	Hit(ray core.Ray) (*material.Intersection, bool)
}
