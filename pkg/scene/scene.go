package scene

import (
	"sort"

	"github.com/pkg/errors"

	"github.com/marcor/go-whitted-raytracer/pkg/geometry"
	"github.com/marcor/go-whitted-raytracer/pkg/lights"
	"github.com/marcor/go-whitted-raytracer/pkg/renderer"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Camera      *renderer.Camera
	Objects     []geometry.Shape
	Light       lights.PointLight
	Environment *renderer.Environment
}

// GetCamera returns the scene camera
func (s *Scene) GetCamera() *renderer.Camera { return s.Camera }

// GetObjects returns the objects in scene order
func (s *Scene) GetObjects() []geometry.Shape { return s.Objects }

// GetLight returns the scene's point light
func (s *Scene) GetLight() lights.PointLight { return s.Light }

// GetEnvironment returns the background environment
func (s *Scene) GetEnvironment() *renderer.Environment { return s.Environment }

// AddObject appends an object; scene order breaks exact intersection ties
func (s *Scene) AddObject(obj geometry.Shape) {
	s.Objects = append(s.Objects, obj)
}

// builtinScenes maps scene names to their constructors
var builtinScenes = map[string]func() *Scene{
	"skyblock": NewSkyblockScene,
	"textures": NewTextureDemoScene,
}

// NewBuiltinScene creates a built-in scene by name
func NewBuiltinScene(name string) (*Scene, error) {
	construct, ok := builtinScenes[name]
	if !ok {
		return nil, errors.Errorf("unknown scene %q (available: %v)", name, ListBuiltinScenes())
	}
	return construct(), nil
}

// ListBuiltinScenes returns the built-in scene names in sorted order
func ListBuiltinScenes() []string {
	names := make([]string, 0, len(builtinScenes))
	for name := range builtinScenes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
