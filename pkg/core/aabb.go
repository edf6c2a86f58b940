package core

// AABB represents an axis-aligned bounding box as one interval per axis.
// Use EmptyAABB rather than the zero value for "no volume"; the zero value is
// the single point at the origin.
type AABB struct {
	X, Y, Z Interval
}

var (
	// EmptyAABB bounds nothing and never intersects a ray
	EmptyAABB = AABB{EmptyInterval, EmptyInterval, EmptyInterval}
	// UniverseAABB bounds all of space
	UniverseAABB = AABB{UniverseInterval, UniverseInterval, UniverseInterval}
)

// minimum slab thickness given to flat boxes by Pad
const aabbPadding = 1e-4

// NewAABB creates a box from three intervals
func NewAABB(x, y, z Interval) AABB {
	return AABB{X: x, Y: y, Z: z}
}

// NewAABBFromPoints creates an AABB that bounds all given points
func NewAABBFromPoints(points ...Vec3) AABB {
	box := EmptyAABB
	for _, p := range points {
		box = box.Union(AABB{
			X: Interval{p.X, p.X},
			Y: Interval{p.Y, p.Y},
			Z: Interval{p.Z, p.Z},
		})
	}
	return box
}

// Axis returns the interval along axis 0 (x), 1 (y) or 2 (z)
func (b AABB) Axis(axis int) Interval {
	switch axis {
	case 0:
		return b.X
	case 1:
		return b.Y
	default:
		return b.Z
	}
}

// IsEmpty reports whether the box bounds no volume on some axis
func (b AABB) IsEmpty() bool {
	return b.X.IsEmpty() || b.Y.IsEmpty() || b.Z.IsEmpty()
}

// Contains reports whether p lies inside the closed box
func (b AABB) Contains(p Vec3) bool {
	return b.X.Contains(p.X) && b.Y.Contains(p.Y) && b.Z.Contains(p.Z)
}

// Hit tests the ray against the box using the slab method, restricted to
// the parametric window rayT
func (b AABB) Hit(ray Ray, rayT Interval) bool {
	if b.IsEmpty() {
		return false
	}
	for axis := 0; axis < 3; axis++ {
		slab := b.Axis(axis)
		origin := ray.Origin.Axis(axis)
		direction := ray.Direction.Axis(axis)

		// Parallel to this slab: hit only if the origin is already inside it
		if direction == 0 {
			if !slab.Contains(origin) {
				return false
			}
			continue
		}

		invDirection := 1.0 / direction
		t0 := (slab.Min - origin) * invDirection
		t1 := (slab.Max - origin) * invDirection
		if t0 > t1 {
			t0, t1 = t1, t0
		}

		rayT = rayT.Intersect(Interval{t0, t1})
		if rayT.Max <= rayT.Min {
			return false
		}
	}
	return true
}

// Union returns an AABB that bounds both this AABB and another
func (b AABB) Union(other AABB) AABB {
	return AABB{
		X: b.X.Union(other.X),
		Y: b.Y.Union(other.Y),
		Z: b.Z.Union(other.Z),
	}
}

// Moved translates the box by offset
func (b AABB) Moved(offset Vec3) AABB {
	return AABB{
		X: b.X.Moved(offset.X),
		Y: b.Y.Moved(offset.Y),
		Z: b.Z.Moved(offset.Z),
	}
}

// Pad widens any axis thinner than the padding threshold so that flat
// primitives such as quads still have a hittable slab
func (b AABB) Pad() AABB {
	pad := func(i Interval) Interval {
		if i.IsEmpty() || i.Size() >= aabbPadding {
			return i
		}
		return i.Expand(aabbPadding)
	}
	return AABB{pad(b.X), pad(b.Y), pad(b.Z)}
}

// Center returns the center point of the AABB
func (b AABB) Center() Vec3 {
	return NewVec3(
		(b.X.Min+b.X.Max)*0.5,
		(b.Y.Min+b.Y.Max)*0.5,
		(b.Z.Min+b.Z.Max)*0.5,
	)
}

// Size returns the extent of the AABB along each axis
func (b AABB) Size() Vec3 {
	return NewVec3(b.X.Size(), b.Y.Size(), b.Z.Size())
}

// Corners returns the eight corner points of a non-empty box
func (b AABB) Corners() [8]Vec3 {
	var corners [8]Vec3
	for i := 0; i < 8; i++ {
		x := b.X.Min
		if i&1 != 0 {
			x = b.X.Max
		}
		y := b.Y.Min
		if i&2 != 0 {
			y = b.Y.Max
		}
		z := b.Z.Min
		if i&4 != 0 {
			z = b.Z.Max
		}
		corners[i] = NewVec3(x, y, z)
	}
	return corners
}

// LongestAxis returns the axis (0=X, 1=Y, 2=Z) with the longest extent.
// X must strictly beat both others; Z wins a tie with Y.
func (b AABB) LongestAxis() int {
	x, y, z := b.X.Size(), b.Y.Size(), b.Z.Size()
	if x > y {
		if x > z {
			return 0
		}
		return 2
	}
	if y > z {
		return 1
	}
	return 2
}

// SurfaceArea returns the surface area of a non-empty AABB
func (b AABB) SurfaceArea() float64 {
	if b.IsEmpty() {
		return 0
	}
	size := b.Size()
	return 2.0 * (size.X*size.Y + size.Y*size.Z + size.Z*size.X)
}
