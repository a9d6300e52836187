package geometry

import (
	"math"

	"github.com/marcor/go-whitted-raytracer/pkg/core"
	"github.com/marcor/go-whitted-raytracer/pkg/material"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material *material.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, mat *material.Material) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: mat,
	}
}

// Hit tests if a ray intersects with the sphere. Only the near root of the
// quadratic counts, and it must be strictly in front of the ray origin.
func (s *Sphere) Hit(ray core.Ray) (*material.Intersection, bool) {
	// Vector from sphere center to ray origin
	oc := ray.Origin.Subtract(s.Center)

	// Quadratic equation coefficients: at² + bt + c = 0
	a := ray.Direction.LengthSquared()
	b := 2.0 * oc.Dot(ray.Direction)
	c := oc.LengthSquared() - s.Radius*s.Radius

	discriminant := b*b - 4*a*c
	if discriminant <= 0 {
		return nil, false
	}

	t := (-b - math.Sqrt(discriminant)) / (2 * a)
	if t <= 0 {
		// Hits behind the origin are rejected, not clamped
		return nil, false
	}

	point := ray.At(t)
	normal := point.Subtract(s.Center).Normalize()
	u, v := s.uv(point)

	return &material.Intersection{
		Point:    point,
		Normal:   normal,
		T:        t,
		Material: s.Material,
		U:        u,
		V:        v,
	}, true
}

// uv maps a surface point to equirectangular texture coordinates,
// with v=0 at the top pole
func (s *Sphere) uv(point core.Vec3) (float64, float64) {
	p := point.Subtract(s.Center).Multiply(1.0 / s.Radius)
	u := 0.5 + math.Atan2(p.X, p.Z)/(2*math.Pi)
	v := 0.5 - math.Asin(p.Y)/math.Pi
	return u, v
}
