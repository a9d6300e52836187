package server

import (
	"encoding/json"
	"fmt"
	"image/png"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"github.com/google/uuid"

	"github.com/marcor/go-whitted-raytracer/pkg/renderer"
	"github.com/marcor/go-whitted-raytracer/pkg/scene"
)

// Server handles web requests for the raytracer
type Server struct {
	port int
}

// NewServer creates a new web server
func NewServer(port int) *Server {
	return &Server{port: port}
}

// RenderRequest represents a render request from the client. The client
// drives interactive navigation by re-requesting with new orbit and zoom
// values, so the camera only ever moves between render passes.
type RenderRequest struct {
	Scene   string  // Built-in scene name
	Width   int     // Image width
	Height  int     // Image height
	Azimuth float64 // Camera orbit azimuth in radians
	Pitch   float64 // Camera orbit pitch in radians
	Zoom    float64 // Camera zoom distance toward the target
	Workers int     // Render goroutines, 0 for one per CPU
}

// Start starts the web server
func (s *Server) Start() error {
	// Serve static files
	http.Handle("/", http.FileServer(http.Dir("static/")))

	// API endpoints
	http.HandleFunc("/api/render", s.handleRender)
	http.HandleFunc("/api/scenes", s.handleScenes)
	http.HandleFunc("/api/health", s.handleHealth)

	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("Starting web server on http://localhost%s", addr)
	return http.ListenAndServe(addr, nil)
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// handleScenes lists the built-in scene names
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string][]string{"scenes": scene.ListBuiltinScenes()})
}

// handleRender renders a single frame and responds with a PNG
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	renderID := uuid.NewString()

	req, err := s.parseRenderRequest(r)
	if err != nil {
		http.Error(w, fmt.Sprintf("Invalid request: %v", err), http.StatusBadRequest)
		return
	}

	sceneObj, err := scene.NewBuiltinScene(req.Scene)
	if err != nil {
		http.Error(w, fmt.Sprintf("Unknown scene: %s", req.Scene), http.StatusBadRequest)
		return
	}

	camera := sceneObj.GetCamera()
	if req.Azimuth != 0 || req.Pitch != 0 {
		camera.Orbit(req.Azimuth, req.Pitch)
	}
	if req.Zoom != 0 {
		camera.Zoom(req.Zoom)
	}

	log.Printf("[%s] Rendering %s at %dx%d", renderID, req.Scene, req.Width, req.Height)

	raytracer := renderer.NewRaytracer(sceneObj, req.Width, req.Height)
	img, stats, err := raytracer.RenderParallel(r.Context(), req.Workers)
	if err != nil {
		http.Error(w, fmt.Sprintf("Render error: %v", err), http.StatusInternalServerError)
		return
	}

	log.Printf("[%s] Rendered %d pixels with %d workers in %v",
		renderID, stats.TotalPixels, stats.Workers, stats.Duration)

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("X-Render-ID", renderID)
	w.WriteHeader(http.StatusOK)
	if err := png.Encode(w, img); err != nil {
		log.Printf("[%s] Error writing PNG: %v", renderID, err)
	}
}

// parseRenderRequest parses request parameters
func (s *Server) parseRenderRequest(r *http.Request) (*RenderRequest, error) {
	req := &RenderRequest{}

	if sceneName := r.URL.Query().Get("scene"); sceneName != "" {
		req.Scene = sceneName
	} else {
		req.Scene = "skyblock"
	}

	var err error
	if req.Width, err = parseIntParam(r.URL.Query(), "width", 400, 50, 2000); err != nil {
		return nil, err
	}
	if req.Height, err = parseIntParam(r.URL.Query(), "height", 300, 50, 2000); err != nil {
		return nil, err
	}
	if req.Azimuth, err = parseFloatParam(r.URL.Query(), "azimuth", 0, -100, 100); err != nil {
		return nil, err
	}
	if req.Pitch, err = parseFloatParam(r.URL.Query(), "pitch", 0, -100, 100); err != nil {
		return nil, err
	}
	if req.Zoom, err = parseFloatParam(r.URL.Query(), "zoom", 0, -100, 100); err != nil {
		return nil, err
	}
	if req.Workers, err = parseIntParam(r.URL.Query(), "workers", 0, 0, 256); err != nil {
		return nil, err
	}

	return req, nil
}

// parseIntParam parses an integer parameter from URL query with validation
func parseIntParam(values url.Values, key string, defaultValue, min, max int) (int, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %d and %d, got: %d", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// parseFloatParam parses a float parameter from URL query with validation
func parseFloatParam(values url.Values, key string, defaultValue, min, max float64) (float64, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %f and %f, got: %f", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}
