package material

import (
	"github.com/marcor/go-whitted-raytracer/pkg/core"
)

// Material describes how a surface reacts to light. Materials are
// immutable after construction and shared by pointer across every
// primitive that uses them.
type Material struct {
	Diffuse         core.Vec3  // Flat surface color, used when Texture is nil
	SpecularExp     float64    // Phong specular exponent
	Albedo          [4]float64 // Mixing weights: diffuse, specular, reflectivity, transparency
	RefractiveIndex float64    // Only meaningful when Albedo[3] > 0
	Texture         Texture    // Optional diffuse texture, nil for flat color
	NormalMap       Texture    // Optional tangent-space normal map, nil for geometric normal
	Emissive        core.Vec3  // Additive self-illumination
}

// NewMaterial creates a new material with the given shading parameters
func NewMaterial(diffuse core.Vec3, specularExp float64, albedo [4]float64, refractiveIndex float64) *Material {
	return &Material{
		Diffuse:         diffuse,
		SpecularExp:     specularExp,
		Albedo:          albedo,
		RefractiveIndex: refractiveIndex,
	}
}

// WithTexture returns a copy of the material using the given diffuse texture
func (m Material) WithTexture(tex Texture) *Material {
	m.Texture = tex
	return &m
}

// WithNormalMap returns a copy of the material using the given normal map
func (m Material) WithNormalMap(tex Texture) *Material {
	m.NormalMap = tex
	return &m
}

// WithEmissive returns a copy of the material with the given emissive color
func (m Material) WithEmissive(emissive core.Vec3) *Material {
	m.Emissive = emissive
	return &m
}

// Reflectivity returns the mirror-reflection mixing weight
func (m *Material) Reflectivity() float64 {
	return m.Albedo[2]
}

// Transparency returns the refraction mixing weight
func (m *Material) Transparency() float64 {
	return m.Albedo[3]
}

// Intersection contains information about a ray-object intersection.
// A nil Intersection is the no-hit sentinel; shapes return (nil, false)
// when a ray misses.
type Intersection struct {
	Point    core.Vec3 // Point of intersection
	Normal   core.Vec3 // Unit outward surface normal at the intersection
	T        float64   // Parameter t along the ray, always > 0 for a valid hit
	Material *Material // Material of the hit object
	U, V     float64   // Surface coordinates in [0,1]x[0,1]
}
