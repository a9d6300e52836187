package lights

import (
	"testing"

	"github.com/marcor/go-whitted-raytracer/pkg/core"
)

func TestPointLight_ColorVec(t *testing.T) {
	light := NewPointLight(core.NewVec3(0, 10, 0), core.NewVec3(255, 127.5, 0), 1.5)

	c := light.ColorVec()
	expected := core.NewVec3(1.0, 0.5, 0.0)

	const tolerance = 1e-9
	if c.Subtract(expected).Length() > tolerance {
		t.Errorf("Expected %v, got %v", expected, c)
	}
}
