package scene

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/marcor/go-whitted-raytracer/pkg/core"
	"github.com/marcor/go-whitted-raytracer/pkg/geometry"
	"github.com/marcor/go-whitted-raytracer/pkg/lights"
	"github.com/marcor/go-whitted-raytracer/pkg/loaders"
	"github.com/marcor/go-whitted-raytracer/pkg/material"
	"github.com/marcor/go-whitted-raytracer/pkg/renderer"
)

// sceneFile is the YAML scene description document
type sceneFile struct {
	Camera      cameraConfig              `yaml:"camera"`
	Light       lightConfig               `yaml:"light"`
	Environment environmentConfig         `yaml:"environment"`
	Materials   map[string]materialConfig `yaml:"materials"`
	Objects     []objectConfig            `yaml:"objects"`
}

type cameraConfig struct {
	Eye    [3]float64 `yaml:"eye"`
	Target [3]float64 `yaml:"target"`
	Up     [3]float64 `yaml:"up"`
}

type lightConfig struct {
	Position  [3]float64 `yaml:"position"`
	Color     [3]float64 `yaml:"color"` // RGB channels in 0-255
	Intensity float64    `yaml:"intensity"`
}

type environmentConfig struct {
	Skybox string `yaml:"skybox"` // Optional equirectangular panorama file
}

type materialConfig struct {
	Diffuse         [3]float64 `yaml:"diffuse"`
	Specular        float64    `yaml:"specular"`
	Albedo          [4]float64 `yaml:"albedo"`
	RefractiveIndex float64    `yaml:"refractiveIndex"`
	Texture         string     `yaml:"texture"`   // Image file, "checkerboard" or "uvdebug"
	NormalMap       string     `yaml:"normalMap"` // Image file or "flat"
	Emissive        [3]float64 `yaml:"emissive"`
}

type objectConfig struct {
	Type     string     `yaml:"type"` // "cube" or "sphere"
	Center   [3]float64 `yaml:"center"`
	Size     float64    `yaml:"size"`   // Cube edge length
	Radius   float64    `yaml:"radius"` // Sphere radius
	Material string     `yaml:"material"`
}

func toVec3(v [3]float64) core.Vec3 {
	return core.NewVec3(v[0], v[1], v[2])
}

// LoadFile reads a YAML scene description from disk
func LoadFile(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading scene file %s", path)
	}
	return Parse(data)
}

// Parse builds a scene from a YAML document
func Parse(data []byte) (*Scene, error) {
	var file sceneFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, errors.Wrap(err, "parsing scene yaml")
	}

	up := toVec3(file.Camera.Up)
	if up.Length() == 0 {
		up = core.NewVec3(0, 1, 0)
	}
	if toVec3(file.Camera.Eye) == toVec3(file.Camera.Target) {
		return nil, errors.New("camera eye and target coincide")
	}

	env := &renderer.Environment{}
	if file.Environment.Skybox != "" {
		skybox, err := loaders.LoadTexture(file.Environment.Skybox)
		if err != nil {
			return nil, errors.Wrap(err, "loading skybox")
		}
		env.Skybox = skybox
	}

	s := &Scene{
		Camera:      renderer.NewCamera(toVec3(file.Camera.Eye), toVec3(file.Camera.Target), up),
		Light:       lights.NewPointLight(toVec3(file.Light.Position), toVec3(file.Light.Color), file.Light.Intensity),
		Environment: env,
	}

	materials := make(map[string]*material.Material, len(file.Materials))
	for name, mc := range file.Materials {
		mat, err := buildMaterial(mc)
		if err != nil {
			return nil, errors.Wrapf(err, "material %q", name)
		}
		materials[name] = mat
	}

	for i, oc := range file.Objects {
		mat, ok := materials[oc.Material]
		if !ok {
			return nil, errors.Errorf("object %d references unknown material %q", i, oc.Material)
		}

		switch oc.Type {
		case "cube":
			if oc.Size <= 0 {
				return nil, errors.Errorf("object %d: cube needs a positive size", i)
			}
			s.AddObject(geometry.NewCube(toVec3(oc.Center), oc.Size, mat))
		case "sphere":
			if oc.Radius <= 0 {
				return nil, errors.Errorf("object %d: sphere needs a positive radius", i)
			}
			s.AddObject(geometry.NewSphere(toVec3(oc.Center), oc.Radius, mat))
		default:
			return nil, errors.Errorf("object %d has unknown type %q", i, oc.Type)
		}
	}

	return s, nil
}

func buildMaterial(mc materialConfig) (*material.Material, error) {
	mat := material.NewMaterial(toVec3(mc.Diffuse), mc.Specular, mc.Albedo, mc.RefractiveIndex)

	if mc.Texture != "" {
		tex, err := resolveTexture(mc.Texture)
		if err != nil {
			return nil, err
		}
		mat = mat.WithTexture(tex)
	}
	if mc.NormalMap != "" {
		tex, err := resolveNormalMap(mc.NormalMap)
		if err != nil {
			return nil, err
		}
		mat = mat.WithNormalMap(tex)
	}
	if emissive := toVec3(mc.Emissive); emissive.Length() > 0 {
		mat = mat.WithEmissive(emissive)
	}

	return mat, nil
}

// resolveTexture maps a texture reference to a procedural texture by name
// or loads it as an image file
func resolveTexture(ref string) (material.Texture, error) {
	switch ref {
	case "checkerboard":
		return material.NewCheckerboardTexture(64, 64, 8,
			core.NewVec3(0.9, 0.9, 0.9), core.NewVec3(0.2, 0.2, 0.2)), nil
	case "uvdebug":
		return material.NewUVDebugTexture(256, 256), nil
	default:
		tex, err := loaders.LoadTexture(ref)
		return tex, errors.Wrapf(err, "loading texture %s", ref)
	}
}

func resolveNormalMap(ref string) (material.Texture, error) {
	if ref == "flat" {
		return material.NewFlatNormalMap(2, 2), nil
	}
	tex, err := loaders.LoadTexture(ref)
	return tex, errors.Wrapf(err, "loading normal map %s", ref)
}
