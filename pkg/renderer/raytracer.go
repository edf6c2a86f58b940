package renderer

import (
	"fmt"
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// Raytracer renders one scene with a fixed configuration
type Raytracer struct {
	scene      *scene.Scene
	config     RenderConfig
	camera     *Camera
	integrator integrator.Integrator
	logger     core.Logger
}

// NewRaytracer creates a raytracer driven by a path tracing integrator
func NewRaytracer(s *scene.Scene, config RenderConfig, logger core.Logger) (*Raytracer, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if s == nil || s.World == nil {
		return nil, fmt.Errorf("scene has no world")
	}
	if logger == nil {
		logger = core.NopLogger{}
	}

	return &Raytracer{
		scene:      s,
		config:     config,
		camera:     NewCamera(s.CameraConfig, config.Width, config.Height, config.SqrtSamples()),
		integrator: integrator.NewPathTracingIntegrator(config.MaxDepth),
		logger:     logger,
	}, nil
}

// SetIntegrator replaces the light transport algorithm
func (rt *Raytracer) SetIntegrator(integ integrator.Integrator) {
	rt.integrator = integ
}

// Config returns the validated render configuration
func (rt *Raytracer) Config() RenderConfig {
	return rt.config
}

// Render traces every sample, averages each pixel and writes it to a new
// canvas. It returns once all workers have joined.
func (rt *Raytracer) Render() (*Canvas, RenderStats) {
	start := time.Now()
	width, height := rt.config.Width, rt.config.Height

	pool := NewWorkerPool(rt.scene.World, rt.camera, rt.integrator, rt.config, rt.logger)
	pixels := pool.Run()

	canvas := NewCanvas(width, height)
	totalSamples := 0
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			ps := &pixels[y*width+x]
			canvas.Write(x, y, ps.GetColor())
			totalSamples += ps.SampleCount
		}
	}

	stats := RenderStats{
		TotalPixels:     width * height,
		TotalSamples:    totalSamples,
		SamplesPerPixel: rt.config.SamplesPerPixel,
		Workers:         pool.GetNumWorkers(),
		Duration:        time.Since(start),
	}
	computeLuminanceStats(pixels, &stats)

	rt.logger.Printf("Rendered %dx%d at %d spp with %d workers in %v (mean luminance %.4f ± %.4f)\n",
		width, height, stats.SamplesPerPixel, stats.Workers, stats.Duration,
		stats.MeanLuminance, stats.StdErrLuminance)

	return canvas, stats
}
