package material

import (
	"github.com/marcor/go-whitted-raytracer/pkg/core"
)

// ImageTexture provides color from a 2D image
type ImageTexture struct {
	width  int
	height int
	pixels []core.Vec3 // Row-major: pixels[y*width + x]
}

// NewImageTexture creates a new image texture
func NewImageTexture(width, height int, pixels []core.Vec3) *ImageTexture {
	return &ImageTexture{
		width:  width,
		height: height,
		pixels: pixels,
	}
}

// Width returns the texture width in pixels
func (t *ImageTexture) Width() int { return t.width }

// Height returns the texture height in pixels
func (t *ImageTexture) Height() int { return t.height }

// PixelAt returns the color at integer pixel coordinates, clamped to the
// image bounds to absorb floating-point spill at UV edges
func (t *ImageTexture) PixelAt(x, y int) core.Vec3 {
	if x >= t.width {
		x = t.width - 1
	}
	if y >= t.height {
		y = t.height - 1
	}
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	return t.pixels[y*t.width+x]
}
