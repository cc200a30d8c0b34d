package twochild_test

import (
	"math"

	"github.com/katalvlaran/bvhtraverse/bvh/twochild"
)

// point2D is the minimal bounding-volume stand-in used by this package's
// tests: a single 2D point acts as its own degenerate bounding box.
type point2D struct{ x, y float64 }

// box2D is an axis-aligned bounding box over point2D.
type box2D struct{ minX, minY, maxX, maxY float64 }

func union(a, b box2D) box2D {
	return box2D{
		minX: math.Min(a.minX, b.minX),
		minY: math.Min(a.minY, b.minY),
		maxX: math.Max(a.maxX, b.maxX),
		maxY: math.Max(a.maxY, b.maxY),
	}
}

func boxOf(p point2D) box2D { return box2D{p.x, p.y, p.x, p.y} }

func overlapsBox(query box2D) func(box2D) bool {
	return func(bv box2D) bool {
		return bv.minX <= query.maxX && bv.maxX >= query.minX &&
			bv.minY <= query.maxY && bv.maxY >= query.minY
	}
}

func distanceToBox(p point2D, bv box2D) float64 {
	dx := math.Max(math.Max(bv.minX-p.x, 0), p.x-bv.maxX)
	dy := math.Max(math.Max(bv.minY-p.y, 0), p.y-bv.maxY)
	return math.Hypot(dx, dy)
}

// testNode is a plain slice-backed node used to hand-build small trees in
// tests without pulling in a real BVH builder.
type testNode struct {
	isLeaf      bool
	left, right twochild.NodeID
	leafIndex   int
	bv          box2D
}

// testTree is the simplest possible twochild.BVH[box2D]: a flat []testNode
// plus an explicit root id.
type testTree struct {
	nodes []testNode
	root  twochild.NodeID
}

func (t *testTree) Size() int {
	n := 0
	for _, nd := range t.nodes {
		if nd.isLeaf {
			n++
		}
	}
	return n
}
func (t *testTree) Empty() bool { return len(t.nodes) == 0 }
func (t *testTree) Root() twochild.NodeID { return t.root }
func (t *testTree) IsLeaf(id twochild.NodeID) bool { return t.nodes[id].isLeaf }
func (t *testTree) LeftChild(id twochild.NodeID) twochild.NodeID { return t.nodes[id].left }
func (t *testTree) RightChild(id twochild.NodeID) twochild.NodeID { return t.nodes[id].right }
func (t *testTree) LeafIndex(id twochild.NodeID) int { return t.nodes[id].leafIndex }
func (t *testTree) BoundingVolume(id twochild.NodeID) box2D { return t.nodes[id].bv }

// buildLeaves constructs a balanced two-child BVH over the given points.
// Leaf i carries leafIndex i, the index of its point in points.
func buildLeaves(points []point2D) *testTree {
	if len(points) == 0 {
		return &testTree{}
	}
	if len(points) == 1 {
		return &testTree{nodes: []testNode{{isLeaf: true, leafIndex: 0, bv: boxOf(points[0])}}}
	}

	type item struct {
		node twochild.NodeID
		bv   box2D
	}
	var nodes []testNode
	items := make([]item, len(points))
	for i, p := range points {
		id := twochild.NodeID(len(nodes))
		nodes = append(nodes, testNode{isLeaf: true, leafIndex: i, bv: boxOf(p)})
		items[i] = item{node: id, bv: boxOf(p)}
	}

	// Pair up items bottom-up until one root remains. This need not be
	// spatially balanced for correctness tests; monotonicity only
	// requires parent.bv to contain both children.
	for len(items) > 1 {
		var next []item
		for i := 0; i+1 < len(items); i += 2 {
			l, r := items[i], items[i+1]
			bv := union(l.bv, r.bv)
			id := twochild.NodeID(len(nodes))
			nodes = append(nodes, testNode{isLeaf: false, left: l.node, right: r.node, bv: bv})
			next = append(next, item{node: id, bv: bv})
		}
		if len(items)%2 == 1 {
			next = append(next, items[len(items)-1])
		}
		items = next
	}

	return &testTree{nodes: nodes, root: items[0].node}
}
