package renderer

import (
	"math"

	"github.com/marcor/go-whitted-raytracer/pkg/core"
)

const (
	// maxPitch keeps orbiting short of the poles so the up vector never inverts
	maxPitch = math.Pi/2 - 0.01
	// minTargetDistance stops zooming before the eye reaches the target,
	// which would make the basis undefined
	minTargetDistance = 0.5
)

// Camera generates rays for rendering. It holds an eye position and an
// orthonormal basis derived from (eye, target, up); the basis is rebuilt
// after every orbit or zoom, never updated incrementally.
type Camera struct {
	Eye    core.Vec3
	Target core.Vec3
	Fov    float64 // Vertical field of view in radians

	worldUp core.Vec3
	forward core.Vec3
	right   core.Vec3
	up      core.Vec3
}

// NewCamera creates a camera looking from eye toward target
func NewCamera(eye, target, up core.Vec3) *Camera {
	c := &Camera{
		Eye:     eye,
		Target:  target,
		Fov:     math.Pi / 3,
		worldUp: up,
	}
	c.updateBasis()
	return c
}

// updateBasis recomputes the orthonormal basis from eye, target and worldUp
func (c *Camera) updateBasis() {
	c.forward = c.Target.Subtract(c.Eye).Normalize()
	c.right = c.forward.Cross(c.worldUp).Normalize()
	c.up = c.right.Cross(c.forward)
}

// BasisChange transforms a camera-space direction into world space.
// Camera space has +x right, +y up and the view direction along -z.
func (c *Camera) BasisChange(local core.Vec3) core.Vec3 {
	return c.right.Multiply(local.X).
		Add(c.up.Multiply(local.Y)).
		Add(c.forward.Multiply(-local.Z))
}

// Orbit rotates the eye around the target on a sphere by the given azimuth
// and pitch deltas in radians. Pitch is clamped to avoid flipping through
// the poles.
func (c *Camera) Orbit(deltaAzimuth, deltaPitch float64) {
	offset := c.Eye.Subtract(c.Target)
	radius := offset.Length()

	azimuth := math.Atan2(offset.X, offset.Z) + deltaAzimuth
	pitch := math.Asin(offset.Y/radius) + deltaPitch
	pitch = math.Max(-maxPitch, math.Min(maxPitch, pitch))

	c.Eye = c.Target.Add(core.NewVec3(
		radius*math.Cos(pitch)*math.Sin(azimuth),
		radius*math.Sin(pitch),
		radius*math.Cos(pitch)*math.Cos(azimuth),
	))
	c.updateBasis()
}

// Zoom moves the eye along the view direction by delta (positive moves
// toward the target), clamped to a minimum distance from the target
func (c *Camera) Zoom(delta float64) {
	distance := c.Target.Subtract(c.Eye).Length() - delta
	if distance < minTargetDistance {
		distance = minTargetDistance
	}
	c.Eye = c.Target.Subtract(c.forward.Multiply(distance))
	c.updateBasis()
}

// GetRay generates the world-space ray through pixel (x, y) for an image
// of the given dimensions, one ray per pixel through the pixel corner
func (c *Camera) GetRay(x, y, width, height int) core.Ray {
	aspectRatio := float64(width) / float64(height)
	perspectiveScale := math.Tan(c.Fov * 0.5)

	screenX := (2.0*float64(x)/float64(width) - 1.0) * aspectRatio * perspectiveScale
	screenY := (-2.0*float64(y)/float64(height) + 1.0) * perspectiveScale

	direction := core.NewVec3(screenX, screenY, -1).Normalize()

	return core.NewRay(c.Eye, c.BasisChange(direction))
}
