package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// cliOptions holds the render flags; zero values leave the setting alone
type cliOptions struct {
	Width           int
	SamplesPerPixel int
	MaxDepth        int
	NumWorkers      int
	Seed            int64
	ConfigPath      string
}

func main() {
	// Parse command line flags
	sceneType := flag.String("scene", "default", "Scene to render (see -help for the list)")
	spp := flag.Int("spp", 0, "Samples per pixel (0 = scene default)")
	depth := flag.Int("depth", 0, "Maximum bounces per path (0 = scene default)")
	workers := flag.Int("workers", 0, "Number of parallel workers (0 = use CPU count)")
	width := flag.Int("width", 0, "Image width in pixels; height follows the scene aspect ratio (0 = 400)")
	configPath := flag.String("config", "", "JSON file overriding render settings")
	objPath := flag.String("obj", "", "Wavefront OBJ file for the obj scene")
	texturePath := flag.String("texture", "", "Image file for the textures scene")
	seed := flag.Int64("seed", 0, "Random seed (0 = 42)")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	// Show help if requested
	if *help {
		showHelp()
		return
	}

	fmt.Println("Starting Path Tracer...")

	options := cliOptions{
		Width:           *width,
		SamplesPerPixel: *spp,
		MaxDepth:        *depth,
		NumWorkers:      *workers,
		Seed:            *seed,
		ConfigPath:      *configPath,
	}

	selectedScene, err := createScene(*sceneType, scene.Options{
		OBJPath:     *objPath,
		TexturePath: *texturePath,
		Seed:        *seed,
	})
	if err != nil {
		fmt.Printf("Error creating scene: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Using %s scene...\n", selectedScene.Name)

	config, err := buildRenderConfig(selectedScene, options)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	raytracer, err := renderer.NewRaytracer(selectedScene, config, renderer.NewDefaultLogger())
	if err != nil {
		fmt.Printf("Error creating renderer: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Rendering %dx%d, %d spp, depth %d, seed %d\n",
		config.Width, config.Height, config.SamplesPerPixel, config.MaxDepth, config.Seed)

	startTime := time.Now()
	canvas, stats := raytracer.Render()
	renderTime := time.Since(startTime)

	fmt.Printf("Render completed in %v\n", renderTime)
	fmt.Printf("Mean luminance: %.4f (std dev %.4f)\n", stats.MeanLuminance, stats.StdDevLuminance)

	// Create output directory for this scene
	outputDir := createOutputDir(selectedScene.Name)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		fmt.Printf("Error creating output directory: %v\n", err)
		os.Exit(1)
	}

	filename := outputFilename(outputDir, time.Now())
	if err := canvas.SavePNG(filename); err != nil {
		fmt.Printf("Error saving PNG: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Render saved as %s\n", filename)
}

func showHelp() {
	fmt.Println("Path Tracer")
	fmt.Println("Usage: pathtracer [options]")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Available scenes:")
	for _, info := range scene.ListScenes() {
		fmt.Printf("  %-10s - %s\n", info.Name, info.Description)
	}
	fmt.Println()
	fmt.Println("Output will be saved to output/<scene>/render_<timestamp>.png")
}

// createScene builds a registered scene by name
func createScene(sceneType string, options scene.Options) (*scene.Scene, error) {
	if sceneType == "" {
		return nil, fmt.Errorf("no scene given")
	}
	return scene.Load(sceneType, options)
}

// buildRenderConfig layers the render settings: built-in defaults, then the
// scene's own sampling config, then the JSON file, then explicit flags
func buildRenderConfig(s *scene.Scene, options cliOptions) (renderer.RenderConfig, error) {
	config := renderer.DefaultRenderConfig()
	if s.SamplingConfig.SamplesPerPixel > 0 {
		config.SamplesPerPixel = s.SamplingConfig.SamplesPerPixel
	}
	if s.SamplingConfig.MaxDepth > 0 {
		config.MaxDepth = s.SamplingConfig.MaxDepth
	}
	config.Height = heightFor(config.Width, s.SamplingConfig.AspectRatio)

	if options.ConfigPath != "" {
		loaded, err := renderer.LoadRenderConfig(options.ConfigPath, config)
		if err != nil {
			return config, err
		}
		config = loaded
	}

	if options.Width > 0 {
		config.Width = options.Width
		config.Height = heightFor(options.Width, s.SamplingConfig.AspectRatio)
	}
	if options.SamplesPerPixel > 0 {
		config.SamplesPerPixel = options.SamplesPerPixel
	}
	if options.MaxDepth > 0 {
		config.MaxDepth = options.MaxDepth
	}
	if options.NumWorkers > 0 {
		config.NumWorkers = options.NumWorkers
	}
	if options.Seed != 0 {
		config.Seed = options.Seed
	}

	return config, config.Validate()
}

// heightFor derives the image height from a width and an aspect ratio
func heightFor(width int, aspectRatio float64) int {
	if aspectRatio <= 0 {
		aspectRatio = 16.0 / 9.0
	}
	height := int(float64(width) / aspectRatio)
	if height < 1 {
		height = 1
	}
	return height
}

// createOutputDir returns the directory renders of a scene are written to
func createOutputDir(sceneName string) string {
	if sceneName == "" {
		sceneName = "default"
	}
	return filepath.Join("output", sceneName)
}

// outputFilename names a render by its timestamp
func outputFilename(outputDir string, at time.Time) string {
	return filepath.Join(outputDir, fmt.Sprintf("render_%s.png", at.Format("20060102_150405")))
}
