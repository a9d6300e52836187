package renderer

import (
	"math"
	"testing"

	"github.com/marcor/go-whitted-raytracer/pkg/core"
	"github.com/marcor/go-whitted-raytracer/pkg/geometry"
	"github.com/marcor/go-whitted-raytracer/pkg/lights"
	"github.com/marcor/go-whitted-raytracer/pkg/material"
)

// testScene is a minimal Scene implementation for tracer tests
type testScene struct {
	camera  *Camera
	objects []geometry.Shape
	light   lights.PointLight
	env     *Environment
}

func (s *testScene) GetCamera() *Camera { return s.camera }

func (s *testScene) GetObjects() []geometry.Shape { return s.objects }

func (s *testScene) GetLight() lights.PointLight { return s.light }

func (s *testScene) GetEnvironment() *Environment { return s.env }

func newTestScene(objects ...geometry.Shape) *testScene {
	return &testScene{
		camera:  NewCamera(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0)),
		objects: objects,
		light:   lights.NewPointLight(core.NewVec3(0, 5, 5), core.NewVec3(255, 255, 255), 1.0),
		env:     &Environment{},
	}
}

func diffuseMaterial(diffuse core.Vec3) *material.Material {
	return material.NewMaterial(diffuse, 10, [4]float64{0.9, 0.1, 0, 0}, 0)
}

func mirrorMaterial() *material.Material {
	return material.NewMaterial(core.NewVec3(1, 1, 1), 125, [4]float64{0, 0, 1, 0}, 0)
}

func isFinite(v core.Vec3) bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) &&
		!math.IsNaN(v.Y) && !math.IsInf(v.Y, 0) &&
		!math.IsNaN(v.Z) && !math.IsInf(v.Z, 0)
}

func TestCastRay_EmptySceneReturnsEnvironment(t *testing.T) {
	scene := newTestScene()
	rt := NewRaytracer(scene, 4, 4)

	directions := []core.Vec3{
		core.NewVec3(0, 0, -1),
		core.NewVec3(0, 1, 0),
		core.NewVec3(0, -1, 0),
		core.NewVec3(0.5, 0.3, -0.8).Normalize(),
	}

	for _, dir := range directions {
		got := rt.CastRay(core.NewRay(core.NewVec3(0, 0, 0), dir), 0)
		expected := scene.env.Color(dir)
		if got != expected {
			t.Errorf("Expected environment color %v for direction %v, got %v", expected, dir, got)
		}
	}
}

func TestCastRay_DepthTermination(t *testing.T) {
	// Two fully mirrored spheres facing each other bounce a ray forever;
	// the depth cap must terminate the recursion with a finite color
	scene := newTestScene(
		geometry.NewSphere(core.NewVec3(0, 0, 3), 1.0, mirrorMaterial()),
		geometry.NewSphere(core.NewVec3(0, 0, -3), 1.0, mirrorMaterial()),
	)
	rt := NewRaytracer(scene, 4, 4)

	got := rt.CastRay(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1)), 0)

	if !isFinite(got) {
		t.Errorf("Expected finite color from mirror cavity, got %v", got)
	}
}

func TestCastRay_DepthCapReturnsEnvironment(t *testing.T) {
	scene := newTestScene(
		geometry.NewSphere(core.NewVec3(0, 0, 0), 1.0, diffuseMaterial(core.NewVec3(1, 0, 0))),
	)
	rt := NewRaytracer(scene, 4, 4)

	dir := core.NewVec3(0, 0, -1)
	got := rt.CastRay(core.NewRay(core.NewVec3(0, 0, 5), dir), maxDepth+1)
	expected := scene.env.Color(dir)

	if got != expected {
		t.Errorf("Expected environment color past the depth cap, got %v", got)
	}
}

func TestCastRay_MirrorReflectsEnvironment(t *testing.T) {
	// A frontal hit on a perfect mirror reflects the ray straight back;
	// with nothing behind the camera the result is the environment color
	// of the reversed direction, with no local shading mixed in
	scene := newTestScene(
		geometry.NewSphere(core.NewVec3(0, 0, 0), 1.0, mirrorMaterial()),
	)
	rt := NewRaytracer(scene, 4, 4)

	got := rt.CastRay(core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1)), 0)
	expected := scene.env.Color(core.NewVec3(0, 0, 1))

	const tolerance = 1e-9
	if got.Subtract(expected).Length() > tolerance {
		t.Errorf("Expected reflected environment %v, got %v", expected, got)
	}
}

func TestCastRay_EmissivePassthrough(t *testing.T) {
	// With all albedo weights zero the final color is exactly the
	// emissive term: phong*(1-0-0) with diffuse and specular weighted out
	emissive := material.NewMaterial(core.NewVec3(1, 1, 1), 10, [4]float64{0, 0, 0, 0}, 0).
		WithEmissive(core.NewVec3(2, 3, 4))
	scene := newTestScene(
		geometry.NewSphere(core.NewVec3(0, 0, 0), 1.0, emissive),
	)
	rt := NewRaytracer(scene, 4, 4)

	got := rt.CastRay(core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1)), 0)
	expected := core.NewVec3(2, 3, 4)

	const tolerance = 1e-9
	if got.Subtract(expected).Length() > tolerance {
		t.Errorf("Expected emissive color %v, got %v", expected, got)
	}
}

func TestCastRay_TexturedDiffuse(t *testing.T) {
	// A textured material samples the texture at the hit UV instead of
	// the flat diffuse color
	red := core.NewVec3(1, 0, 0)
	green := core.NewVec3(0, 1, 0)
	flat := diffuseMaterial(red)
	textured := diffuseMaterial(red).
		WithTexture(material.NewImageTexture(1, 1, []core.Vec3{green}))

	rtFlat := NewRaytracer(newTestScene(geometry.NewSphere(core.NewVec3(0, 0, 0), 1.0, flat)), 4, 4)
	rtTex := NewRaytracer(newTestScene(geometry.NewSphere(core.NewVec3(0, 0, 0), 1.0, textured)), 4, 4)

	ray := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1))
	flatColor := rtFlat.CastRay(ray, 0)
	texColor := rtTex.CastRay(ray, 0)

	if flatColor.X <= flatColor.Y {
		t.Errorf("Expected red-dominant flat shading, got %v", flatColor)
	}
	if texColor.Y <= texColor.X {
		t.Errorf("Expected green-dominant textured shading, got %v", texColor)
	}
}

func TestCastShadow_Occlusion(t *testing.T) {
	lit := geometry.NewSphere(core.NewVec3(0, 0, 0), 1.0, diffuseMaterial(core.NewVec3(1, 1, 1)))
	occluder := geometry.NewCube(core.NewVec3(0, 3, 0), 1.0, diffuseMaterial(core.NewVec3(1, 1, 1)))

	light := lights.NewPointLight(core.NewVec3(0, 5, 0), core.NewVec3(255, 255, 255), 1.0)

	// Hit the top of the sphere from above
	ray := core.NewRay(core.NewVec3(0, 5, 0), core.NewVec3(0, -1, 0))

	// No occluder: fully lit
	openScene := newTestScene(lit)
	openScene.light = light
	rt := NewRaytracer(openScene, 4, 4)
	hit, isHit := rt.hitWorld(ray)
	if !isHit {
		t.Fatal("Expected hit on sphere")
	}
	if shadow := rt.castShadow(hit, light); shadow != 0.0 {
		t.Errorf("Expected shadow factor 0 with no occluder, got %f", shadow)
	}

	// Occluder strictly between the point and the light: fully shadowed
	blockedScene := newTestScene(lit, occluder)
	blockedScene.light = light
	rtBlocked := NewRaytracer(blockedScene, 4, 4)
	if shadow := rtBlocked.castShadow(hit, light); shadow != 1.0 {
		t.Errorf("Expected shadow factor 1 with occluder, got %f", shadow)
	}
}

func TestCastShadow_OccluderBeyondLight(t *testing.T) {
	// Geometry farther away than the light itself must not cast a shadow
	lit := geometry.NewSphere(core.NewVec3(0, 0, 0), 1.0, diffuseMaterial(core.NewVec3(1, 1, 1)))
	farBlock := geometry.NewCube(core.NewVec3(0, 10, 0), 1.0, diffuseMaterial(core.NewVec3(1, 1, 1)))

	light := lights.NewPointLight(core.NewVec3(0, 5, 0), core.NewVec3(255, 255, 255), 1.0)

	scene := newTestScene(lit, farBlock)
	scene.light = light
	rt := NewRaytracer(scene, 4, 4)

	hit, isHit := rt.hitWorld(core.NewRay(core.NewVec3(0, 3, 0), core.NewVec3(0, -1, 0)))
	if !isHit {
		t.Fatal("Expected hit on sphere")
	}
	if shadow := rt.castShadow(hit, light); shadow != 0.0 {
		t.Errorf("Expected no shadow from geometry beyond the light, got %f", shadow)
	}
}

func TestHitWorld_NearestWins(t *testing.T) {
	near := geometry.NewSphere(core.NewVec3(0, 0, 2), 0.5, diffuseMaterial(core.NewVec3(1, 0, 0)))
	far := geometry.NewSphere(core.NewVec3(0, 0, -2), 0.5, diffuseMaterial(core.NewVec3(0, 1, 0)))

	// Order in the scene must not matter for distinct distances
	for _, objects := range [][]geometry.Shape{{near, far}, {far, near}} {
		rt := NewRaytracer(newTestScene(objects...), 4, 4)
		hit, isHit := rt.hitWorld(core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1)))
		if !isHit {
			t.Fatal("Expected hit")
		}
		if hit.Material != near.Material {
			t.Error("Expected the nearer sphere to win")
		}
	}
}

func TestHitWorld_TieBreaksToFirst(t *testing.T) {
	matA := diffuseMaterial(core.NewVec3(1, 0, 0))
	matB := diffuseMaterial(core.NewVec3(0, 1, 0))
	a := geometry.NewSphere(core.NewVec3(0, 0, 0), 1.0, matA)
	b := geometry.NewSphere(core.NewVec3(0, 0, 0), 1.0, matB)

	rt := NewRaytracer(newTestScene(a, b), 4, 4)
	hit, isHit := rt.hitWorld(core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1)))
	if !isHit {
		t.Fatal("Expected hit")
	}
	if hit.Material != matA {
		t.Error("Expected exact-tie hit to go to the first object in scene order")
	}
}

func TestRefract_TotalInternalReflection(t *testing.T) {
	normal := core.NewVec3(0, 1, 0)

	// Exiting glass at 53 degrees, past the critical angle asin(1/1.5)
	incident := core.NewVec3(0.8, 0.6, 0)
	if _, ok := refractVector(incident, normal, 1.5); ok {
		t.Error("Expected total internal reflection past the critical angle")
	}
}

func TestRefract_SubCriticalSnell(t *testing.T) {
	normal := core.NewVec3(0, 1, 0)

	// Exiting glass at 30 degrees, below the critical angle
	sinI, cosI := 0.5, math.Sqrt(0.75)
	incident := core.NewVec3(sinI, cosI, 0)

	refracted, ok := refractVector(incident, normal, 1.5)
	if !ok {
		t.Fatal("Expected refraction below the critical angle")
	}

	const tolerance = 1e-9
	if math.Abs(refracted.Length()-1) > tolerance {
		t.Errorf("Expected unit refracted direction, got length %f", refracted.Length())
	}

	// Snell: sin(thetaT) = 1.5 * sin(thetaI)
	sinT := math.Hypot(refracted.X, refracted.Z)
	if math.Abs(sinT-1.5*sinI) > 1e-9 {
		t.Errorf("Expected sin(thetaT)=%f per Snell's law, got %f", 1.5*sinI, sinT)
	}

	// The ray continues away from the surface it exited
	if refracted.Y <= 0 {
		t.Errorf("Expected transmitted ray to continue upward, got %v", refracted)
	}
}

func TestRefract_NormalIncidence(t *testing.T) {
	normal := core.NewVec3(0, 1, 0)
	incident := core.NewVec3(0, -1, 0)

	refracted, ok := refractVector(incident, normal, 1.5)
	if !ok {
		t.Fatal("Expected refraction at normal incidence")
	}

	const tolerance = 1e-9
	if refracted.Subtract(incident).Length() > tolerance {
		t.Errorf("Expected undeviated ray at normal incidence, got %v", refracted)
	}
}

func TestCastRay_RefractionFiniteThroughGlass(t *testing.T) {
	glass := material.NewMaterial(core.NewVec3(0.6, 0.7, 0.8), 125, [4]float64{0, 0.1, 0.1, 0.8}, 1.5)
	scene := newTestScene(
		geometry.NewCube(core.NewVec3(0, 0, 0), 1.0, glass),
	)
	rt := NewRaytracer(scene, 4, 4)

	got := rt.CastRay(core.NewRay(core.NewVec3(0.2, 0.1, 5), core.NewVec3(0, 0, -1)), 0)
	if !isFinite(got) {
		t.Errorf("Expected finite color through glass, got %v", got)
	}
}

func TestShadingNormal_FlatMapMatchesGeometric(t *testing.T) {
	flatMapped := diffuseMaterial(core.NewVec3(1, 1, 1)).
		WithNormalMap(material.NewFlatNormalMap(2, 2))
	sphere := geometry.NewSphere(core.NewVec3(0, 0, 0), 1.0, flatMapped)

	rt := NewRaytracer(newTestScene(sphere), 4, 4)
	hit, isHit := rt.hitWorld(core.NewRay(core.NewVec3(0.3, 0.2, 5), core.NewVec3(0, 0, -1)))
	if !isHit {
		t.Fatal("Expected hit")
	}

	const tolerance = 1e-9
	shading := rt.shadingNormal(hit)
	if shading.Subtract(hit.Normal).Length() > tolerance {
		t.Errorf("Expected flat normal map to reproduce geometric normal %v, got %v", hit.Normal, shading)
	}
}

func TestShadingNormal_AxisAlignedNormalDegenerates(t *testing.T) {
	// The tangent construction collapses for a geometric normal along z;
	// the result must still be a finite unit vector
	perturbing := diffuseMaterial(core.NewVec3(1, 1, 1)).
		WithNormalMap(material.NewImageTexture(1, 1, []core.Vec3{core.NewVec3(0.9, 0.7, 1.0)}))

	hit := &material.Intersection{
		Point:    core.NewVec3(0, 0, 0.5),
		Normal:   core.NewVec3(0, 0, 1),
		T:        1,
		Material: perturbing,
		U:        0.5,
		V:        0.5,
	}

	rt := NewRaytracer(newTestScene(), 4, 4)
	shading := rt.shadingNormal(hit)

	if !isFinite(shading) {
		t.Fatalf("Expected finite shading normal at the pole, got %v", shading)
	}

	const tolerance = 1e-9
	if math.Abs(shading.Length()-1) > tolerance {
		t.Errorf("Expected unit shading normal, got length %f", shading.Length())
	}
}

func TestRenderPass_ImageDimensions(t *testing.T) {
	scene := newTestScene(
		geometry.NewSphere(core.NewVec3(0, 0, 0), 1.0, diffuseMaterial(core.NewVec3(0.8, 0.2, 0.2))),
	)
	rt := NewRaytracer(scene, 32, 24)

	img, stats := rt.RenderPass()

	if img.Bounds().Dx() != 32 || img.Bounds().Dy() != 24 {
		t.Errorf("Expected 32x24 image, got %dx%d", img.Bounds().Dx(), img.Bounds().Dy())
	}
	if stats.TotalPixels != 32*24 {
		t.Errorf("Expected %d pixels, got %d", 32*24, stats.TotalPixels)
	}
	if stats.Workers != 1 {
		t.Errorf("Expected 1 worker, got %d", stats.Workers)
	}
}
