package material

import (
	"github.com/marcor/go-whitted-raytracer/pkg/core"
)

// Texture is the lookup-by-coordinate capability the shading engine
// consumes. Implementations must clamp out-of-range pixel indices.
type Texture interface {
	Width() int
	Height() int
	// PixelAt returns the color at integer pixel coordinates as RGB in [0,1]
	PixelAt(x, y int) core.Vec3
}

// SampleUV samples a texture at normalized UV coordinates. UVs are scaled
// by the texture dimensions and truncated to integer pixel indices.
func SampleUV(tex Texture, u, v float64) core.Vec3 {
	x := int(u * float64(tex.Width()))
	y := int(v * float64(tex.Height()))
	return tex.PixelAt(x, y)
}

// NormalFromMap samples a tangent-space normal map at normalized UV
// coordinates, decoding color channels from [0,1] to components in [-1,1].
func NormalFromMap(tex Texture, u, v float64) core.Vec3 {
	c := SampleUV(tex, u, v)
	return core.NewVec3(2*c.X-1, 2*c.Y-1, 2*c.Z-1)
}
