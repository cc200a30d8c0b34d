package bvhtest

import (
	"github.com/katalvlaran/bvhtraverse/bvh/rope"
	"github.com/katalvlaran/bvhtraverse/bvh/twochild"
)

// rawNode is the common pre-encoding shape: a two-child binary tree built
// bottom-up by naive pairwise pairing. BuildBottomUp derives both a
// TwoChildTree and a RopeTree from the same raw shape, so tests can assert
// the two encodings visit the same logical tree.
type rawNode struct {
	isLeaf      bool
	left, right int
	leafIndex   int
	bv          Box
}

func buildRaw(points []Point) ([]rawNode, int) {
	if len(points) == 0 {
		return nil, -1
	}
	if len(points) == 1 {
		return []rawNode{{isLeaf: true, leafIndex: 0, bv: BoxOf(points[0])}}, 0
	}

	type item struct {
		id int
		bv Box
	}
	var raw []rawNode
	items := make([]item, len(points))
	for i, p := range points {
		id := len(raw)
		raw = append(raw, rawNode{isLeaf: true, leafIndex: i, bv: BoxOf(p)})
		items[i] = item{id: id, bv: BoxOf(p)}
	}

	for len(items) > 1 {
		var next []item
		for i := 0; i+1 < len(items); i += 2 {
			l, r := items[i], items[i+1]
			bv := Union(l.bv, r.bv)
			id := len(raw)
			raw = append(raw, rawNode{isLeaf: false, left: l.id, right: r.id, bv: bv})
			next = append(next, item{id: id, bv: bv})
		}
		if len(items)%2 == 1 {
			next = append(next, items[len(items)-1])
		}
		items = next
	}
	return raw, items[0].id
}

// TwoChildTree is a flat, slice-backed twochild.BVH[Box].
type TwoChildTree struct {
	nodes []twoChildNode
	root  twochild.NodeID
}

type twoChildNode struct {
	isLeaf      bool
	left, right twochild.NodeID
	leafIndex   int
	bv          Box
}

func (t *TwoChildTree) Size() int {
	n := 0
	for _, nd := range t.nodes {
		if nd.isLeaf {
			n++
		}
	}
	return n
}
func (t *TwoChildTree) Empty() bool { return len(t.nodes) == 0 }
func (t *TwoChildTree) Root() twochild.NodeID { return t.root }
func (t *TwoChildTree) IsLeaf(id twochild.NodeID) bool { return t.nodes[id].isLeaf }
func (t *TwoChildTree) LeftChild(id twochild.NodeID) twochild.NodeID { return t.nodes[id].left }
func (t *TwoChildTree) RightChild(id twochild.NodeID) twochild.NodeID { return t.nodes[id].right }
func (t *TwoChildTree) LeafIndex(id twochild.NodeID) int { return t.nodes[id].leafIndex }
func (t *TwoChildTree) BoundingVolume(id twochild.NodeID) Box { return t.nodes[id].bv }

// RopeTree is a flat, slice-backed rope.BVH[Box].
type RopeTree struct {
	nodes []ropeNode
	root  rope.NodeID
}

type ropeNode struct {
	isLeaf    bool
	left      rope.NodeID
	ropeLink  rope.NodeID
	leafIndex int
	bv        Box
}

func (t *RopeTree) Size() int {
	n := 0
	for _, nd := range t.nodes {
		if nd.isLeaf {
			n++
		}
	}
	return n
}
func (t *RopeTree) Empty() bool { return len(t.nodes) == 0 }
func (t *RopeTree) Root() rope.NodeID { return t.root }
func (t *RopeTree) IsLeaf(id rope.NodeID) bool { return t.nodes[id].isLeaf }
func (t *RopeTree) LeftChild(id rope.NodeID) rope.NodeID { return t.nodes[id].left }
func (t *RopeTree) Rope(id rope.NodeID) rope.NodeID { return t.nodes[id].ropeLink }
func (t *RopeTree) LeafIndex(id rope.NodeID) int { return t.nodes[id].leafIndex }
func (t *RopeTree) BoundingVolume(id rope.NodeID) Box { return t.nodes[id].bv }

// BuildBottomUp constructs a two-child BVH and its rope-linked dual from
// the same flat point slice. Pairing is naive (adjacent-pair bottom-up, not
// spatially balanced); correctness of the kernels under test does not
// depend on balance, only on the containment invariant that every node's
// bv contains both its children's, which Union guarantees.
func BuildBottomUp(points []Point) (*TwoChildTree, *RopeTree) {
	raw, rootIdx := buildRaw(points)

	tc := &TwoChildTree{}
	if rootIdx >= 0 {
		tc.nodes = make([]twoChildNode, len(raw))
		for i, rn := range raw {
			tc.nodes[i] = twoChildNode{
				isLeaf:    rn.isLeaf,
				left:      twochild.NodeID(rn.left),
				right:     twochild.NodeID(rn.right),
				leafIndex: rn.leafIndex,
				bv:        rn.bv,
			}
		}
		tc.root = twochild.NodeID(rootIdx)
	}

	rp := &RopeTree{}
	if rootIdx >= 0 {
		rp.nodes = make([]ropeNode, len(raw))
		for i, rn := range raw {
			rp.nodes[i] = ropeNode{
				isLeaf:    rn.isLeaf,
				left:      rope.NodeID(rn.left),
				leafIndex: rn.leafIndex,
				bv:        rn.bv,
			}
		}
		var assign func(id, nextAfter int)
		assign = func(id, nextAfter int) {
			if nextAfter < 0 {
				rp.nodes[id].ropeLink = rope.Sentinel
			} else {
				rp.nodes[id].ropeLink = rope.NodeID(nextAfter)
			}
			if !raw[id].isLeaf {
				assign(raw[id].left, raw[id].right)
				assign(raw[id].right, nextAfter)
			}
		}
		assign(rootIdx, -1)
		rp.root = rope.NodeID(rootIdx)
	}

	return tc, rp
}
