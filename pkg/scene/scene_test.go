package scene

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/marcor/go-whitted-raytracer/pkg/core"
	"github.com/marcor/go-whitted-raytracer/pkg/geometry"
)

func TestNewSkyblockScene(t *testing.T) {
	s := NewSkyblockScene()

	// 15 dirt + 2 trunk + 6 leaves + 1 chest + 2 stone + 3 glass + 2 water + 1 sun
	if len(s.Objects) != 32 {
		t.Errorf("Expected 32 blocks, got %d", len(s.Objects))
	}

	if s.Camera.Eye != core.NewVec3(0, 2, 8) {
		t.Errorf("Expected camera at (0,2,8), got %v", s.Camera.Eye)
	}
	if s.Light.Intensity != 1.5 {
		t.Errorf("Expected light intensity 1.5, got %f", s.Light.Intensity)
	}

	// The sun block is last, emissive and half size
	sun, ok := s.Objects[len(s.Objects)-1].(*geometry.Cube)
	if !ok {
		t.Fatal("Expected the sun to be a cube")
	}
	if sun.Size != 0.5 {
		t.Errorf("Expected sun size 0.5, got %f", sun.Size)
	}
	if sun.Material.Emissive != core.NewVec3(2, 2, 2) {
		t.Errorf("Expected sun emissive (2,2,2), got %v", sun.Material.Emissive)
	}

	// One glass block, refractive
	glass := s.Objects[26].(*geometry.Cube)
	if glass.Material.RefractiveIndex != 1.5 || glass.Material.Transparency() != 0.8 {
		t.Errorf("Expected refractive glass, got %+v", glass.Material)
	}
}

func TestNewTextureDemoScene(t *testing.T) {
	s := NewTextureDemoScene()

	if len(s.Objects) != 4 {
		t.Fatalf("Expected 4 objects, got %d", len(s.Objects))
	}

	var textured, normalMapped int
	for _, obj := range s.Objects {
		switch o := obj.(type) {
		case *geometry.Sphere:
			if o.Material.Texture != nil {
				textured++
			}
			if o.Material.NormalMap != nil {
				normalMapped++
			}
		case *geometry.Cube:
			if o.Material.Texture != nil {
				textured++
			}
		}
	}
	if textured != 3 {
		t.Errorf("Expected 3 textured objects, got %d", textured)
	}
	if normalMapped != 1 {
		t.Errorf("Expected 1 normal-mapped object, got %d", normalMapped)
	}
}

func TestNewBuiltinScene(t *testing.T) {
	for _, name := range ListBuiltinScenes() {
		s, err := NewBuiltinScene(name)
		if err != nil {
			t.Errorf("NewBuiltinScene(%q) failed: %v", name, err)
		}
		if s == nil || s.Camera == nil || len(s.Objects) == 0 {
			t.Errorf("Expected a populated scene for %q", name)
		}
	}

	if _, err := NewBuiltinScene("nope"); err == nil {
		t.Error("Expected error for unknown scene name")
	}
}

func TestListBuiltinScenes(t *testing.T) {
	want := []string{"skyblock", "textures"}
	if diff := cmp.Diff(want, ListBuiltinScenes()); diff != "" {
		t.Errorf("Scene list mismatch (-want +got):\n%s", diff)
	}
}
