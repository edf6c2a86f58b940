package material

import (
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestImageTextureEvaluate(t *testing.T) {
	// Layout:
	//   white black
	//   black white
	white := core.NewVec3(1, 1, 1)
	black := core.NewVec3(0, 0, 0)
	pixels := []core.Vec3{
		white, black, // Row 0 (top in image coords)
		black, white, // Row 1 (bottom in image coords)
	}
	texture := NewImageTexture(2, 2, pixels)

	tests := []struct {
		name     string
		uv       core.Vec2
		expected core.Vec3
	}{
		{"Bottom left", core.NewVec2(0.1, 0.1), black},
		{"Bottom right", core.NewVec2(0.9, 0.1), white},
		{"Top left", core.NewVec2(0.1, 0.9), white},
		{"Top right", core.NewVec2(0.9, 0.9), black},
		{"Exact corner", core.NewVec2(1, 1), black},
		{"Clamped below", core.NewVec2(-3, -0.5), black},
		{"Clamped above", core.NewVec2(7, 2), black},
		{"Clamped mixed", core.NewVec2(-1, 5), white},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := texture.Evaluate(tt.uv, core.Vec3{}); got != tt.expected {
				t.Errorf("Evaluate(%v) = %v, want %v", tt.uv, got, tt.expected)
			}
		})
	}
}

func TestImageTextureEmpty(t *testing.T) {
	texture := NewImageTexture(0, 0, nil)
	if got := texture.Evaluate(core.NewVec2(0.5, 0.5), core.Vec3{}); got != core.NewVec3(0, 1, 1) {
		t.Errorf("empty texture = %v, want the cyan placeholder", got)
	}
}

func TestGradientTexture(t *testing.T) {
	top := core.NewVec3(1, 0, 0)
	bottom := core.NewVec3(0, 0, 1)
	texture := NewGradientTexture(4, 3, top, bottom)

	if got := texture.Evaluate(core.NewVec2(0.5, 0.99), core.Vec3{}); got != top {
		t.Errorf("top = %v, want %v", got, top)
	}
	if got := texture.Evaluate(core.NewVec2(0.5, 0.01), core.Vec3{}); got != bottom {
		t.Errorf("bottom = %v, want %v", got, bottom)
	}
	if got := texture.Evaluate(core.NewVec2(0.5, 0.5), core.Vec3{}); got != core.NewVec3(0.5, 0, 0.5) {
		t.Errorf("middle = %v, want the average", got)
	}
}
