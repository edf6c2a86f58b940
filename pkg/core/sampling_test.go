package core

import (
	"math"
	"math/rand"
	"testing"
)

func TestSampleCosineDirection_UpperHemisphere(t *testing.T) {
	sampler := NewRandomSampler(rand.New(rand.NewSource(42)))
	sumCos := 0.0
	const n = 20000
	for i := 0; i < n; i++ {
		d := SampleCosineDirection(sampler.Get2D())
		if d.Z < 0 {
			t.Fatalf("direction below hemisphere: %v", d)
		}
		if math.Abs(d.Length()-1) > 1e-9 {
			t.Fatalf("direction not unit length: %v", d)
		}
		sumCos += d.Z
	}
	// E[cos θ] under a cosine-weighted distribution is 2/3
	if mean := sumCos / n; math.Abs(mean-2.0/3.0) > 0.01 {
		t.Errorf("mean cos = %f, want about 0.667", mean)
	}
}

func TestSampleOnUnitSphere_Uniform(t *testing.T) {
	sampler := NewRandomSampler(rand.New(rand.NewSource(42)))
	var sum Vec3
	const n = 20000
	for i := 0; i < n; i++ {
		d := SampleOnUnitSphere(sampler.Get2D())
		if math.Abs(d.Length()-1) > 1e-9 {
			t.Fatalf("direction not unit length: %v", d)
		}
		sum = sum.Add(d)
	}
	if mean := sum.Multiply(1.0 / n); mean.Length() > 0.02 {
		t.Errorf("mean direction = %v, want near zero", mean)
	}
}

func TestSampleToSphere_InsideCone(t *testing.T) {
	sampler := NewRandomSampler(rand.New(rand.NewSource(42)))
	radius, dist := 1.0, 4.0
	cosThetaMax := math.Sqrt(1 - radius*radius/(dist*dist))
	for i := 0; i < 1000; i++ {
		d := SampleToSphere(radius, dist*dist, sampler.Get2D())
		if d.Z < cosThetaMax-1e-9 {
			t.Fatalf("direction %v outside cone (cos %f < %f)", d, d.Z, cosThetaMax)
		}
	}
}

func TestSamplePointInUnitDisk(t *testing.T) {
	sampler := NewRandomSampler(rand.New(rand.NewSource(42)))
	for i := 0; i < 1000; i++ {
		p := SamplePointInUnitDisk(sampler.Get2D())
		if p.Z != 0 || p.X*p.X+p.Y*p.Y > 1+1e-9 {
			t.Fatalf("point %v outside unit disk", p)
		}
	}
}

func TestNewSeededSampler_DistinctWorkers(t *testing.T) {
	a := NewSeededSampler(42, 0)
	b := NewSeededSampler(42, 1)
	if a.Get1D() == b.Get1D() {
		t.Error("Different workers should draw different streams")
	}
	c := NewSeededSampler(42, 0)
	d := NewSeededSampler(42, 0)
	if c.Get1D() != d.Get1D() {
		t.Error("Same seed and worker should be reproducible")
	}
}

func TestONB_Orthonormal(t *testing.T) {
	normals := []Vec3{
		NewVec3(0, 0, 1),
		NewVec3(1, 0, 0),
		NewVec3(0.95, 0.1, 0.3),
		NewVec3(-1, 2, -3),
	}
	for _, n := range normals {
		o := NewONB(n)
		if math.Abs(o.U.Dot(o.V)) > 1e-9 || math.Abs(o.U.Dot(o.W)) > 1e-9 || math.Abs(o.V.Dot(o.W)) > 1e-9 {
			t.Errorf("basis for %v not orthogonal: %+v", n, o)
		}
		if o.W.Subtract(n.Normalize()).Length() > 1e-9 {
			t.Errorf("W = %v, want %v", o.W, n.Normalize())
		}
		if got := o.Local(NewVec3(0, 0, 1)); got.Subtract(o.W).Length() > 1e-9 {
			t.Errorf("Local(z) = %v, want W", got)
		}
	}
}
