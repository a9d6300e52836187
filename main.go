package main

import (
	"context"
	"flag"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/marcor/go-whitted-raytracer/pkg/renderer"
	"github.com/marcor/go-whitted-raytracer/pkg/scene"
)

func main() {
	sceneName := flag.String("scene", "skyblock", "Built-in scene name or path to a .yaml scene file")
	width := flag.Int("width", 1300, "Image width in pixels")
	height := flag.Int("height", 900, "Image height in pixels")
	workers := flag.Int("workers", 0, "Render goroutines, 0 for one per CPU")
	orbitAzimuth := flag.Float64("orbit-azimuth", 0, "Orbit the camera around the target by this azimuth in radians")
	orbitPitch := flag.Float64("orbit-pitch", 0, "Orbit the camera around the target by this pitch in radians")
	zoom := flag.Float64("zoom", 0, "Move the camera toward the target by this distance")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Whitted Raytracer")
		fmt.Println("Usage: raytracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes:")
		for _, name := range scene.ListBuiltinScenes() {
			fmt.Printf("  %s\n", name)
		}
		fmt.Println()
		fmt.Println("Output will be saved to output/<scene>/render_<timestamp>.png")
		return
	}

	selectedScene, err := createScene(*sceneName)
	if err != nil {
		fmt.Printf("Error creating scene: %v\n", err)
		os.Exit(1)
	}

	camera := selectedScene.GetCamera()
	if *orbitAzimuth != 0 || *orbitPitch != 0 {
		camera.Orbit(*orbitAzimuth, *orbitPitch)
	}
	if *zoom != 0 {
		camera.Zoom(*zoom)
	}

	outputDir := createOutputDir(*sceneName)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		fmt.Printf("Error creating output directory: %v\n", err)
		os.Exit(1)
	}

	raytracer := renderer.NewRaytracer(selectedScene, *width, *height)

	img, stats, err := raytracer.RenderParallel(context.Background(), *workers)
	if err != nil {
		fmt.Printf("Error rendering: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Render completed in %v (%d pixels, %d workers)\n",
		stats.Duration, stats.TotalPixels, stats.Workers)

	timestamp := time.Now().Format("20060102_150405")
	filename := filepath.Join(outputDir, fmt.Sprintf("render_%s.png", timestamp))

	file, err := os.Create(filename)
	if err != nil {
		fmt.Printf("Error creating file: %v\n", err)
		os.Exit(1)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		fmt.Printf("Error saving PNG: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Render saved as %s\n", filename)
}

// createScene resolves a scene reference: a YAML file path when it ends
// in .yaml/.yml, a built-in scene name otherwise
func createScene(name string) (*scene.Scene, error) {
	if strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml") {
		return scene.LoadFile(name)
	}
	return scene.NewBuiltinScene(name)
}

// createOutputDir returns the per-scene output directory
func createOutputDir(name string) string {
	base := name
	if strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml") {
		base = strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
	}
	return filepath.Join("output", base)
}
