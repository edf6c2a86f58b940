package core

import "math"

// Interval is a closed range [Min, Max] over the reals. It is empty when Min > Max.
type Interval struct {
	Min, Max float64
}

var (
	// EmptyInterval contains nothing and is the identity for Union
	EmptyInterval = Interval{math.Inf(1), math.Inf(-1)}
	// UniverseInterval contains every real
	UniverseInterval = Interval{math.Inf(-1), math.Inf(1)}
	// UnitInterval is [0, 1]
	UnitInterval = Interval{0, 1}
	// PositiveInterval is the default search window for a new ray; the lower
	// bound keeps a surface from re-hitting itself through rounding
	PositiveInterval = Interval{0.001, math.Inf(1)}
)

// NewInterval creates the interval [min, max]
func NewInterval(min, max float64) Interval {
	return Interval{Min: min, Max: max}
}

// Size returns Max - Min
func (i Interval) Size() float64 {
	return i.Max - i.Min
}

// IsEmpty reports whether the interval contains no value
func (i Interval) IsEmpty() bool {
	return i.Min > i.Max
}

// Contains reports whether x lies in the closed interval
func (i Interval) Contains(x float64) bool {
	return i.Min <= x && x <= i.Max
}

// Surrounds reports whether x lies in the open interval
func (i Interval) Surrounds(x float64) bool {
	return i.Min < x && x < i.Max
}

// Clamp limits x to the interval
func (i Interval) Clamp(x float64) float64 {
	return Clamp(x, i.Min, i.Max)
}

// Intersect returns the overlap of two intervals, possibly empty
func (i Interval) Intersect(other Interval) Interval {
	return Interval{math.Max(i.Min, other.Min), math.Min(i.Max, other.Max)}
}

// Union returns the smallest interval containing both. Empty intervals are ignored.
func (i Interval) Union(other Interval) Interval {
	if i.IsEmpty() {
		return other
	}
	if other.IsEmpty() {
		return i
	}
	return Interval{math.Min(i.Min, other.Min), math.Max(i.Max, other.Max)}
}

// Expand grows the interval by delta, split evenly across both ends
func (i Interval) Expand(delta float64) Interval {
	padding := delta / 2
	return Interval{i.Min - padding, i.Max + padding}
}

// Moved shifts the interval by offset. Empty intervals stay empty.
func (i Interval) Moved(offset float64) Interval {
	if i.IsEmpty() {
		return i
	}
	return Interval{i.Min + offset, i.Max + offset}
}

// LimitMax shrinks the upper bound to t if t is smaller
func (i *Interval) LimitMax(t float64) {
	if t < i.Max {
		i.Max = t
	}
}
