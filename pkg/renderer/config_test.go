package renderer

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestRenderConfigSamples(t *testing.T) {
	tests := []struct {
		spp  int
		sqrt int
		flat int
	}{
		{1, 1, 0},
		{2, 1, 1},
		{4, 2, 0},
		{5, 2, 1},
		{10, 3, 1},
		{50, 7, 1},
		{99, 9, 18},
		{100, 10, 0},
		{101, 10, 1},
	}

	for _, tt := range tests {
		config := DefaultRenderConfig()
		config.SamplesPerPixel = tt.spp
		if got := config.SqrtSamples(); got != tt.sqrt {
			t.Errorf("SqrtSamples(%d) = %d, want %d", tt.spp, got, tt.sqrt)
		}
		if got := config.FlatSamples(); got != tt.flat {
			t.Errorf("FlatSamples(%d) = %d, want %d", tt.spp, got, tt.flat)
		}
		if got := config.SqrtSamples()*config.SqrtSamples() + config.FlatSamples(); got != tt.spp {
			t.Errorf("spp %d: grid plus flat samples = %d", tt.spp, got)
		}
	}
}

func TestRenderConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*RenderConfig)
		wantErr bool
	}{
		{"Default", func(c *RenderConfig) {}, false},
		{"Zero width", func(c *RenderConfig) { c.Width = 0 }, true},
		{"Negative height", func(c *RenderConfig) { c.Height = -5 }, true},
		{"No samples", func(c *RenderConfig) { c.SamplesPerPixel = 0 }, true},
		{"No depth", func(c *RenderConfig) { c.MaxDepth = 0 }, true},
		{"Negative workers", func(c *RenderConfig) { c.NumWorkers = -1 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultRenderConfig()
			tt.modify(&config)
			if err := config.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestRenderConfigWorkers(t *testing.T) {
	config := DefaultRenderConfig()
	if got := config.Workers(); got != runtime.NumCPU() {
		t.Errorf("Workers() = %d, want NumCPU %d", got, runtime.NumCPU())
	}
	config.NumWorkers = 3
	if got := config.Workers(); got != 3 {
		t.Errorf("Workers() = %d, want 3", got)
	}
}

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "render.json")
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadRenderConfig(t *testing.T) {
	path := writeConfig(t, `{"samplesPerPixel": 16, "seed": 7}`)
	config, err := LoadRenderConfig(path, DefaultRenderConfig())
	if err != nil {
		t.Fatalf("LoadRenderConfig failed: %v", err)
	}

	expected := DefaultRenderConfig()
	expected.SamplesPerPixel = 16
	expected.Seed = 7
	if config != expected {
		t.Errorf("config = %+v, want %+v", config, expected)
	}
}

func TestLoadRenderConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		path func(t *testing.T) string
	}{
		{"Missing file", func(t *testing.T) string { return filepath.Join(t.TempDir(), "none.json") }},
		{"Malformed JSON", func(t *testing.T) string { return writeConfig(t, `{"width": `) }},
		{"Invalid values", func(t *testing.T) string { return writeConfig(t, `{"maxDepth": 0}`) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base := DefaultRenderConfig()
			config, err := LoadRenderConfig(tt.path(t), base)
			if err == nil {
				t.Fatal("expected an error")
			}
			if config != base {
				t.Errorf("failed load should return the base config, got %+v", config)
			}
		})
	}
}
