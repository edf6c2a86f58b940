package material

import (
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/pdf"
)

func TestEmissive_FrontFaceOnly(t *testing.T) {
	light := NewTexturedEmissive(NewSolidColor(core.NewVec3(1, 0.5, 0.25)), 4)
	normal := core.NewVec3(0, 0, 1)

	tests := []struct {
		name     string
		origin   core.Vec3
		expected core.Vec3
	}{
		{"Front", core.NewVec3(0, 0, 1), core.NewVec3(4, 2, 1)},
		{"Back", core.NewVec3(0, 0, -1), core.Black},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.origin, tt.origin.Negate())
			rec := hitRecordAt(ray, 1, normal, newTestSampler())
			light.Scatter(rec)

			info := rec.Hit()
			if info.Scatter.Kind != geometry.ScatterAbsorb {
				t.Errorf("emitters must absorb, got %v", info.Scatter.Kind)
			}
			if info.Emission != tt.expected {
				t.Errorf("emission = %v, want %v", info.Emission, tt.expected)
			}
		})
	}
}

func TestIsotropic(t *testing.T) {
	albedo := core.NewVec3(0.2, 0.4, 0.6)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0))

	t.Run("Scatters uniformly", func(t *testing.T) {
		rec := geometry.NewHitRecord(ray, newTestSampler())
		rec.SetHitArbitrary(0.5)
		NewIsotropic(albedo).Scatter(rec)

		info := rec.Hit()
		if info.Scatter.Kind != geometry.ScatterPDF {
			t.Fatalf("expected a pdf scatter, got %v", info.Scatter.Kind)
		}
		if _, ok := info.Scatter.PDF().(pdf.UniformSpherePDF); !ok {
			t.Errorf("expected a uniform sphere pdf, got %T", info.Scatter.PDF())
		}
		if info.Attenuation != albedo {
			t.Errorf("attenuation = %v, want %v", info.Attenuation, albedo)
		}
	})

	t.Run("Glow rate", func(t *testing.T) {
		medium := NewGlowingIsotropic(albedo, 0.25)
		sampler := newTestSampler()
		const n = 20000
		glowed := 0
		for i := 0; i < n; i++ {
			rec := geometry.NewHitRecord(ray, sampler)
			rec.SetHitArbitrary(0.5)
			medium.Scatter(rec)
			if rec.Hit().Scatter.Kind == geometry.ScatterAbsorb {
				glowed++
				if rec.Hit().Emission != albedo {
					t.Fatalf("glowing hit should emit the albedo, got %v", rec.Hit().Emission)
				}
			}
		}
		if rate := float64(glowed) / n; rate < 0.23 || rate > 0.27 {
			t.Errorf("glow rate %.3f, want 0.25", rate)
		}
	})
}
