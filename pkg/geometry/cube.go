package geometry

import (
	"math"

	"github.com/marcor/go-whitted-raytracer/pkg/core"
	"github.com/marcor/go-whitted-raytracer/pkg/material"
)

// Cube represents an axis-aligned cube with uniform size in all three axes
type Cube struct {
	Center   core.Vec3
	Size     float64 // Full edge length
	Material *material.Material
}

// NewCube creates a new axis-aligned cube
func NewCube(center core.Vec3, size float64, mat *material.Material) *Cube {
	return &Cube{
		Center:   center,
		Size:     size,
		Material: mat,
	}
}

// Hit tests if a ray intersects with the cube using the slab method.
// Direction components equal to zero produce ±Inf slab bounds, which the
// min/max comparisons handle without special-casing.
func (c *Cube) Hit(ray core.Ray) (*material.Intersection, bool) {
	halfSize := c.Size * 0.5
	minCorner := c.Center.Subtract(core.NewVec3(halfSize, halfSize, halfSize))
	maxCorner := c.Center.Add(core.NewVec3(halfSize, halfSize, halfSize))

	txMin := (minCorner.X - ray.Origin.X) / ray.Direction.X
	txMax := (maxCorner.X - ray.Origin.X) / ray.Direction.X
	if txMin > txMax {
		txMin, txMax = txMax, txMin
	}

	tyMin := (minCorner.Y - ray.Origin.Y) / ray.Direction.Y
	tyMax := (maxCorner.Y - ray.Origin.Y) / ray.Direction.Y
	if tyMin > tyMax {
		tyMin, tyMax = tyMax, tyMin
	}

	tzMin := (minCorner.Z - ray.Origin.Z) / ray.Direction.Z
	tzMax := (maxCorner.Z - ray.Origin.Z) / ray.Direction.Z
	if tzMin > tzMax {
		tzMin, tzMax = tzMax, tzMin
	}

	tEnter := math.Max(txMin, math.Max(tyMin, tzMin))
	tExit := math.Min(txMax, math.Min(tyMax, tzMax))

	if tEnter >= tExit || tExit <= 0 {
		return nil, false
	}

	// Entry point if in front of the origin, exit point when inside the cube
	t := tEnter
	if tEnter <= 0 {
		t = tExit
	}

	point := ray.At(t)
	normal := c.faceNormal(point)
	u, v := c.uv(point, normal)

	return &material.Intersection{
		Point:    point,
		Normal:   normal,
		T:        t,
		Material: c.Material,
		U:        u,
		V:        v,
	}, true
}

// faceNormal derives the face normal from whichever local axis dominates
// at the hit point. The x > y > z priority on ties must be preserved
// exactly for reproducible edge/corner output.
func (c *Cube) faceNormal(point core.Vec3) core.Vec3 {
	local := point.Subtract(c.Center)
	absX, absY, absZ := math.Abs(local.X), math.Abs(local.Y), math.Abs(local.Z)

	if absX > absY && absX > absZ {
		return core.NewVec3(math.Copysign(1, local.X), 0, 0)
	}
	if absY > absZ {
		return core.NewVec3(0, math.Copysign(1, local.Y), 0)
	}
	return core.NewVec3(0, 0, math.Copysign(1, local.Z))
}

// uv projects the hit point onto the face selected by the normal, using
// the same x > y > z axis priority, clamped to [0,1]
func (c *Cube) uv(point, normal core.Vec3) (float64, float64) {
	halfSize := c.Size * 0.5
	local := point.Subtract(c.Center)
	absNormal := core.NewVec3(math.Abs(normal.X), math.Abs(normal.Y), math.Abs(normal.Z))

	var u, v float64
	switch {
	case absNormal.X > absNormal.Y && absNormal.X > absNormal.Z:
		u = (local.Z + halfSize) / c.Size
		v = (local.Y + halfSize) / c.Size
	case absNormal.Y > absNormal.Z:
		u = (local.X + halfSize) / c.Size
		v = (local.Z + halfSize) / c.Size
	default:
		u = (local.X + halfSize) / c.Size
		v = (local.Y + halfSize) / c.Size
	}

	return clamp01(u), clamp01(v)
}

func clamp01(x float64) float64 {
	return math.Max(0, math.Min(1, x))
}
