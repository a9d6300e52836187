package renderer

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"time"

	"github.com/marcor/go-whitted-raytracer/pkg/core"
	"github.com/marcor/go-whitted-raytracer/pkg/geometry"
	"github.com/marcor/go-whitted-raytracer/pkg/lights"
	"github.com/marcor/go-whitted-raytracer/pkg/material"
)

const (
	// originBias displaces secondary ray origins along the surface normal
	// to avoid immediately re-intersecting the originating surface
	originBias = 1e-4
	// maxDepth bounds recursion through mutually reflective or refractive
	// surfaces; rays beyond it return the environment color
	maxDepth = 3
)

// Scene interface to avoid circular imports
type Scene interface {
	GetCamera() *Camera
	GetObjects() []geometry.Shape
	GetLight() lights.PointLight
	GetEnvironment() *Environment
}

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// Raytracer renders a scene with Whitted-style recursive ray tracing:
// Phong local shading plus hard shadows, mirror reflection and refraction
type Raytracer struct {
	scene  Scene
	width  int
	height int
	logger core.Logger
}

// NewRaytracer creates a new raytracer for the given scene and image size
func NewRaytracer(scene Scene, width, height int) *Raytracer {
	return &Raytracer{
		scene:  scene,
		width:  width,
		height: height,
		logger: NewDefaultLogger(),
	}
}

// SetLogger replaces the logger used for render progress output
func (rt *Raytracer) SetLogger(logger core.Logger) {
	rt.logger = logger
}

// hitWorld scans every object and keeps the nearest valid intersection.
// Ties on exactly equal distances go to the first object in scene order.
func (rt *Raytracer) hitWorld(ray core.Ray) (*material.Intersection, bool) {
	var closestHit *material.Intersection
	closestSoFar := math.Inf(1)

	for _, object := range rt.scene.GetObjects() {
		if hit, isHit := object.Hit(ray); isHit && hit.T < closestSoFar {
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}

// CastRay returns the color seen along a ray, recursing for reflection
// and refraction up to maxDepth levels
func (rt *Raytracer) CastRay(ray core.Ray, depth int) core.Vec3 {
	if depth > maxDepth {
		return rt.scene.GetEnvironment().Color(ray.Direction)
	}

	hit, isHit := rt.hitWorld(ray)
	if !isHit {
		return rt.scene.GetEnvironment().Color(ray.Direction)
	}

	light := rt.scene.GetLight()
	lightDir := light.Position.Subtract(hit.Point).Normalize()
	viewDir := ray.Origin.Subtract(hit.Point).Normalize()

	normal := rt.shadingNormal(hit)

	shadow := rt.castShadow(hit, light)
	lightIntensity := light.Intensity * (1.0 - shadow)

	var diffuseColor core.Vec3
	if hit.Material.Texture != nil {
		diffuseColor = material.SampleUV(hit.Material.Texture, hit.U, hit.V)
	} else {
		diffuseColor = hit.Material.Diffuse
	}

	diffuseIntensity := math.Max(0, normal.Dot(lightDir)) * lightIntensity
	diffuse := diffuseColor.Multiply(diffuseIntensity)

	lightReflect := reflectVector(lightDir.Negate(), normal).Normalize()
	specularIntensity := math.Pow(math.Max(0, viewDir.Dot(lightReflect)), hit.Material.SpecularExp) * lightIntensity
	specular := light.ColorVec().Multiply(specularIntensity)

	albedo := hit.Material.Albedo
	phong := diffuse.Multiply(albedo[0]).
		Add(specular.Multiply(albedo[1])).
		Add(hit.Material.Emissive)

	reflectivity := hit.Material.Reflectivity()
	reflectColor := core.Vec3{}
	if reflectivity > 0 {
		reflectDir := reflectVector(ray.Direction, normal).Normalize()
		reflectOrigin := offsetOrigin(hit, reflectDir)
		reflectColor = rt.CastRay(core.NewRay(reflectOrigin, reflectDir), depth+1)
	}

	transparency := hit.Material.Transparency()
	refractColor := core.Vec3{}
	if transparency > 0 {
		if refractDir, ok := refractVector(ray.Direction, normal, hit.Material.RefractiveIndex); ok {
			refractOrigin := offsetOrigin(hit, refractDir)
			refractColor = rt.CastRay(core.NewRay(refractOrigin, refractDir), depth+1)
		} else {
			// Total internal reflection falls back to a mirror bounce
			reflectDir := reflectVector(ray.Direction, normal).Normalize()
			reflectOrigin := offsetOrigin(hit, reflectDir)
			refractColor = rt.CastRay(core.NewRay(reflectOrigin, reflectDir), depth+1)
		}
	}

	// The three weights are deliberately not renormalized when they
	// exceed one
	return phong.Multiply(1.0 - reflectivity - transparency).
		Add(reflectColor.Multiply(reflectivity)).
		Add(refractColor.Multiply(transparency))
}

// shadingNormal returns the normal used for lighting: the normal map
// sample transformed into world space when the material has one, the
// geometric normal otherwise. The tangent frame degenerates for a purely
// vertical geometric normal, collapsing the perturbation to the normal's
// own direction.
func (rt *Raytracer) shadingNormal(hit *material.Intersection) core.Vec3 {
	if hit.Material.NormalMap == nil {
		return hit.Normal
	}

	texNormal := material.NormalFromMap(hit.Material.NormalMap, hit.U, hit.V)

	normal := hit.Normal
	tangent := core.NewVec3(normal.Y, -normal.X, 0).Normalize()
	bitangent := normal.Cross(tangent)

	return tangent.Multiply(texNormal.X).
		Add(bitangent.Multiply(texNormal.Y)).
		Add(normal.Multiply(texNormal.Z)).
		Normalize()
}

// castShadow returns a binary occlusion weight: 1 when any object blocks
// the segment between the hit point and the light, 0 otherwise
func (rt *Raytracer) castShadow(hit *material.Intersection, light lights.PointLight) float64 {
	lightDir := light.Position.Subtract(hit.Point).Normalize()
	lightDistance := light.Position.Subtract(hit.Point).Length()

	shadowRay := core.NewRay(offsetOrigin(hit, lightDir), lightDir)

	for _, object := range rt.scene.GetObjects() {
		if shadowHit, isHit := object.Hit(shadowRay); isHit && shadowHit.T < lightDistance {
			return 1.0
		}
	}

	return 0.0
}

// offsetOrigin displaces the hit point along the geometric normal so the
// secondary ray starts clear of the surface, on the side the new
// direction points toward
func offsetOrigin(hit *material.Intersection, direction core.Vec3) core.Vec3 {
	offset := hit.Normal.Multiply(originBias)
	if direction.Dot(hit.Normal) < 0 {
		return hit.Point.Subtract(offset)
	}
	return hit.Point.Add(offset)
}

// reflectVector calculates the reflection of a vector v off a surface with normal n
func reflectVector(v, n core.Vec3) core.Vec3 {
	// r = v - 2*dot(v,n)*n
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}

// refractVector calculates the refracted direction using Snell's law,
// swapping media when the incident ray exits the surface. It reports
// false on total internal reflection.
func refractVector(incident, normal core.Vec3, refractiveIndex float64) (core.Vec3, bool) {
	cosi := math.Max(-1, math.Min(1, incident.Dot(normal)))
	etai, etat := 1.0, refractiveIndex
	n := normal

	if cosi > 0 {
		etai, etat = etat, etai
		n = normal.Negate()
	} else {
		cosi = -cosi
	}

	eta := etai / etat
	k := 1 - eta*eta*(1-cosi*cosi)
	if k < 0 {
		return core.Vec3{}, false
	}

	return incident.Multiply(eta).Add(n.Multiply(eta*cosi - math.Sqrt(k))), true
}

// vec3ToColor converts a float RGB color to 8-bit RGBA with clamping
func vec3ToColor(colorVec core.Vec3) color.RGBA {
	colorVec = colorVec.Clamp(0.0, 1.0)

	return color.RGBA{
		R: uint8(255 * colorVec.X),
		G: uint8(255 * colorVec.Y),
		B: uint8(255 * colorVec.Z),
		A: 255,
	}
}

// renderRows renders the pixel rows in [yMin, yMax) into img
func (rt *Raytracer) renderRows(img *image.RGBA, yMin, yMax int) {
	camera := rt.scene.GetCamera()

	for y := yMin; y < yMax; y++ {
		for x := 0; x < rt.width; x++ {
			ray := camera.GetRay(x, y, rt.width, rt.height)
			colorVec := rt.CastRay(ray, 0)
			img.SetRGBA(x, y, vec3ToColor(colorVec))
		}
	}
}

// RenderPass renders the full image sequentially, one ray per pixel
func (rt *Raytracer) RenderPass() (*image.RGBA, RenderStats) {
	start := time.Now()

	img := image.NewRGBA(image.Rect(0, 0, rt.width, rt.height))
	rt.renderRows(img, 0, rt.height)

	return img, RenderStats{
		TotalPixels: rt.width * rt.height,
		Workers:     1,
		Duration:    time.Since(start),
	}
}
