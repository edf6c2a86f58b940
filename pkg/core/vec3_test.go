package core

import (
	"math"
	"testing"
)

func TestVec3_Reflect(t *testing.T) {
	tests := []struct {
		name     string
		v        Vec3
		n        Vec3
		expected Vec3
	}{
		{"Straight down onto floor", NewVec3(0, -1, 0), NewVec3(0, 1, 0), NewVec3(0, 1, 0)},
		{"45 degrees onto floor", NewVec3(1, -1, 0), NewVec3(0, 1, 0), NewVec3(1, 1, 0)},
		{"Grazing", NewVec3(1, 0, 0), NewVec3(0, 1, 0), NewVec3(1, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.v.Reflect(tt.n)
			if result.Subtract(tt.expected).Length() > 1e-9 {
				t.Errorf("Expected %v, got %v", tt.expected, result)
			}
		})
	}
}

func TestVec3_RefractMatchedIndex(t *testing.T) {
	// With eta ratio 1 the direction must not bend
	dir := NewVec3(0.3, -1, 0.2).Normalize()
	n := NewVec3(0, 1, 0)
	result := dir.Refract(n, 1.0)
	if result.Subtract(dir).Length() > 1e-9 {
		t.Errorf("Expected %v, got %v", dir, result)
	}
}

func TestVec3_Normalize(t *testing.T) {
	v := NewVec3(3, 4, 0).Normalize()
	if math.Abs(v.Length()-1) > 1e-12 {
		t.Errorf("Expected unit length, got %f", v.Length())
	}
	if zero := (Vec3{}).Normalize(); zero != (Vec3{}) {
		t.Errorf("Zero vector should normalize to zero, got %v", zero)
	}
}

func TestVec3_Sanitize(t *testing.T) {
	v := NewVec3(math.NaN(), math.Inf(1), 0.5)
	if v.IsFinite() {
		t.Error("Expected NaN/Inf vector to be reported as non-finite")
	}
	s := v.Sanitize()
	if s != NewVec3(0, 0, 0.5) {
		t.Errorf("Expected (0,0,0.5), got %v", s)
	}
}

func TestRay_Spawn(t *testing.T) {
	r := NewRayAt(NewVec3(0, 0, 0), NewVec3(1, 0, 0), 0.7)
	spawned := r.Spawn(NewVec3(1, 2, 3), NewVec3(0, 1, 0))
	if spawned.Time != 0.7 {
		t.Errorf("Spawned ray should keep time 0.7, got %f", spawned.Time)
	}
	if p := r.At(2); p != NewVec3(2, 0, 0) {
		t.Errorf("Expected At(2) = (2,0,0), got %v", p)
	}
}

func TestClamp(t *testing.T) {
	if Clamp(5, 0, 3) != 3 || Clamp(-1, 0, 3) != 0 || Clamp(2, 0, 3) != 2 {
		t.Error("integer clamp failed")
	}
	if Clamp(1.5, 0.0, 1.0) != 1.0 {
		t.Error("float clamp failed")
	}
}
