package renderer

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"runtime"
)

// RenderConfig contains the settings of one render
type RenderConfig struct {
	Width           int   `json:"width"`
	Height          int   `json:"height"`
	SamplesPerPixel int   `json:"samplesPerPixel"` // Exact count taken by every pixel
	MaxDepth        int   `json:"maxDepth"`        // Maximum surface interactions per path
	NumWorkers      int   `json:"numWorkers"`      // 0 = use CPU count
	Seed            int64 `json:"seed"`            // Base seed for the per-worker samplers
}

// DefaultRenderConfig returns sensible default values
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		Width:           400,
		Height:          225,
		SamplesPerPixel: 100,
		MaxDepth:        50,
		NumWorkers:      0,
		Seed:            42,
	}
}

// Validate reports the first setting that cannot be rendered
func (c RenderConfig) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("invalid image size %dx%d", c.Width, c.Height)
	case c.SamplesPerPixel < 1:
		return fmt.Errorf("samples per pixel must be at least 1, got %d", c.SamplesPerPixel)
	case c.MaxDepth < 1:
		return fmt.Errorf("max depth must be at least 1, got %d", c.MaxDepth)
	}
	return nil
}

// SqrtSamples returns the side of the largest stratum grid that fits in
// SamplesPerPixel
func (c RenderConfig) SqrtSamples() int {
	if c.SamplesPerPixel < 1 {
		return 1
	}
	n := int(math.Sqrt(float64(c.SamplesPerPixel)))
	for n*n > c.SamplesPerPixel {
		n--
	}
	for (n+1)*(n+1) <= c.SamplesPerPixel {
		n++
	}
	return n
}

// FlatSamples returns the samples per pixel left over after the stratum
// grid. They are jittered over the whole pixel.
func (c RenderConfig) FlatSamples() int {
	n := c.SqrtSamples()
	if rest := c.SamplesPerPixel - n*n; rest > 0 {
		return rest
	}
	return 0
}

// Workers resolves NumWorkers to a positive worker count
func (c RenderConfig) Workers() int {
	if c.NumWorkers <= 0 {
		return runtime.NumCPU()
	}
	return c.NumWorkers
}

// LoadRenderConfig reads a JSON file whose fields override base
func LoadRenderConfig(path string, base RenderConfig) (RenderConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("reading render config: %w", err)
	}

	config := base
	if err := json.Unmarshal(data, &config); err != nil {
		return base, fmt.Errorf("parsing render config %s: %w", path, err)
	}
	if err := config.Validate(); err != nil {
		return base, fmt.Errorf("render config %s: %w", path, err)
	}
	return config, nil
}
