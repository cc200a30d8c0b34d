package rope_test

import (
	"math"

	"github.com/katalvlaran/bvhtraverse/bvh/rope"
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

// testNode is a plain slice-backed left-child+rope node.
type testNode struct {
	isLeaf    bool
	left      rope.NodeID
	ropeLink  rope.NodeID
	leafIndex int
	bv        box2D
}

// testTree is the simplest possible rope.BVH[box2D]: a flat []testNode plus
// an explicit root id.
type testTree struct {
	nodes []testNode
	root  rope.NodeID
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
func (t *testTree) Root() rope.NodeID { return t.root }
func (t *testTree) IsLeaf(id rope.NodeID) bool { return t.nodes[id].isLeaf }
func (t *testTree) LeftChild(id rope.NodeID) rope.NodeID { return t.nodes[id].left }
func (t *testTree) Rope(id rope.NodeID) rope.NodeID { return t.nodes[id].ropeLink }
func (t *testTree) LeafIndex(id rope.NodeID) int { return t.nodes[id].leafIndex }
func (t *testTree) BoundingVolume(id rope.NodeID) box2D { return t.nodes[id].bv }

// rawNode is the pre-rope two-child shape built bottom-up; ropes are
// assigned afterward by a single top-down pass.
type rawNode struct {
	isLeaf      bool
	left, right rope.NodeID
	leafIndex   int
	bv          box2D
}

// buildLeaves constructs a left-child+rope BVH over the given points. It
// first builds an ordinary two-child shape bottom-up (same pairing scheme
// as the twochild package's test helper, so the two test suites exercise
// logically equivalent trees), then assigns every node's rope in a single
// top-down pass: a node's left child's rope is its right sibling, and its
// right child's rope is inherited from the node's own rope.
func buildLeaves(points []point2D) *testTree {
	if len(points) == 0 {
		return &testTree{}
	}
	if len(points) == 1 {
		return &testTree{nodes: []testNode{{isLeaf: true, leafIndex: 0, ropeLink: rope.Sentinel, bv: boxOf(points[0])}}}
	}

	type item struct {
		node rope.NodeID
		bv   box2D
	}
	var raw []rawNode
	items := make([]item, len(points))
	for i, p := range points {
		id := rope.NodeID(len(raw))
		raw = append(raw, rawNode{isLeaf: true, leafIndex: i, bv: boxOf(p)})
		items[i] = item{node: id, bv: boxOf(p)}
	}

	for len(items) > 1 {
		var next []item
		for i := 0; i+1 < len(items); i += 2 {
			l, r := items[i], items[i+1]
			bv := union(l.bv, r.bv)
			id := rope.NodeID(len(raw))
			raw = append(raw, rawNode{isLeaf: false, left: l.node, right: r.node, bv: bv})
			next = append(next, item{node: id, bv: bv})
		}
		if len(items)%2 == 1 {
			next = append(next, items[len(items)-1])
		}
		items = next
	}
	rootID := items[0].node

	nodes := make([]testNode, len(raw))
	for i, rn := range raw {
		nodes[i] = testNode{isLeaf: rn.isLeaf, left: rn.left, leafIndex: rn.leafIndex, bv: rn.bv}
	}

	var assign func(id, nextAfter rope.NodeID)
	assign = func(id, nextAfter rope.NodeID) {
		nodes[id].ropeLink = nextAfter
		if !raw[id].isLeaf {
			assign(raw[id].left, raw[id].right)
			assign(raw[id].right, nextAfter)
		}
	}
	assign(rootID, rope.Sentinel)

	return &testTree{nodes: nodes, root: rootID}
}
