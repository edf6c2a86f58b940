package geometry

import (
	"sort"

	"github.com/df07/go-pathtracer/pkg/core"
)

// BVH is a binary bounding volume hierarchy. Interior nodes hold exactly two
// children, which are either nodes or the scene's shapes themselves. It is
// immutable after construction and safe to share between goroutines.
type BVH struct {
	root  Shape
	count int
}

// bvhNode is an interior node whose box is the union of its children's boxes
type bvhNode struct {
	box         core.AABB
	left, right Shape
}

// NewBVH builds a hierarchy over shapes. The slice is copied, not reordered.
// An empty slice gives a tree that never reports a hit.
func NewBVH(shapes []Shape) *BVH {
	// Sorting happens in place, so work on a private copy
	shapesCopy := make([]Shape, len(shapes))
	copy(shapesCopy, shapes)

	return &BVH{
		root:  buildBVH(shapesCopy),
		count: len(shapes),
	}
}

// buildBVH splits at the median of the shapes sorted by their box minimum
// along the longest axis of the combined box. Two or fewer shapes become a
// leaf pair padded with Empty.
func buildBVH(shapes []Shape) *bvhNode {
	box := core.EmptyAABB
	for _, s := range shapes {
		box = box.Union(s.BoundingBox())
	}

	switch len(shapes) {
	case 0:
		return &bvhNode{box: box, left: Empty{}, right: Empty{}}
	case 1:
		return &bvhNode{box: box, left: shapes[0], right: Empty{}}
	case 2:
		return &bvhNode{box: box, left: shapes[0], right: shapes[1]}
	}

	axis := box.LongestAxis()
	sort.SliceStable(shapes, func(i, j int) bool {
		return shapes[i].BoundingBox().Axis(axis).Min < shapes[j].BoundingBox().Axis(axis).Min
	})

	mid := len(shapes) / 2
	return &bvhNode{
		box:   box,
		left:  buildBVH(shapes[:mid]),
		right: buildBVH(shapes[mid:]),
	}
}

// Hit implements Shape
func (n *bvhNode) Hit(rec *HitRecord) bool {
	if !n.box.Hit(rec.Ray(), rec.Interval()) {
		return false
	}
	// Both sides are always tested; the shrinking window discards the farther hit
	hitLeft := n.left.Hit(rec)
	hitRight := n.right.Hit(rec)
	return hitLeft || hitRight
}

// BoundingBox implements Shape
func (n *bvhNode) BoundingBox() core.AABB {
	return n.box
}

// Hit implements Shape
func (b *BVH) Hit(rec *HitRecord) bool {
	return b.root.Hit(rec)
}

// BoundingBox implements Shape
func (b *BVH) BoundingBox() core.AABB {
	return b.root.BoundingBox()
}

// Len returns the number of shapes in the tree
func (b *BVH) Len() int {
	return b.count
}

// BVHStats summarizes the shape of a hierarchy
type BVHStats struct {
	TotalNodes  int
	LeafNodes   int // children that are scene shapes
	EmptyLeaves int // Empty padding children
	MaxDepth    int
	TotalShapes int
}

// Stats walks the tree and reports its structure
func (b *BVH) Stats() BVHStats {
	stats := BVHStats{}
	collectStats(b.root, 0, &stats)
	return stats
}

func collectStats(shape Shape, depth int, stats *BVHStats) {
	if depth > stats.MaxDepth {
		stats.MaxDepth = depth
	}
	switch s := shape.(type) {
	case *bvhNode:
		stats.TotalNodes++
		collectStats(s.left, depth+1, stats)
		collectStats(s.right, depth+1, stats)
	case Empty:
		stats.EmptyLeaves++
	default:
		stats.LeafNodes++
		stats.TotalShapes++
	}
}
