package rope

import (
	"math"

	"github.com/katalvlaran/bvhtraverse/bvh/heap"
)

// Metric computes the distance between query geometry g and a bounding
// volume. It must be non-negative and monotone: distance(g, bv(parent)) <=
// distance(g, bv(child)) for any child of parent. Pruning correctness rests
// on this.
type Metric[G, BV any] func(g G, bv BV) float64

// Nearest runs a best-first descent with radius pruning over a left-child+
// rope encoded BVH: it emits exactly min(k, tree.Size()) callbacks in
// nondecreasing distance order, or nothing if k < 1. buf is the query's
// exclusive sub-range of the shared provisioned buffer (see package
// scratch) and must have capacity >= k; Nearest panics otherwise.
//
// The right child at each internal node is derived via RightSibling rather
// than read from a stored field, but the descent otherwise mirrors the
// two-child kernel exactly: best-first order and pruning depend only on
// distance monotonicity, not on node encoding.
//
// recomputeDistance controls the deferred-sibling stack: when false each
// deferred node's distance is cached alongside it; when true a popped
// node's distance is recomputed via the metric instead. The distance array
// is declared and filled in both modes.
func Nearest[BV, G any](
	tree BVH[BV],
	metric Metric[G, BV],
	geometry G,
	k int,
	buf []heap.Entry,
	recomputeDistance bool,
	emit func(leafIndex int, distance float64),
) {
	if k < 1 || tree.Empty() {
		return
	}
	if cap(buf) < k {
		panic("bvh/rope: k exceeds scratch buffer capacity")
	}
	if tree.Size() == 1 {
		root := tree.Root()
		emit(tree.LeafIndex(root), metric(geometry, tree.BoundingVolume(root)))
		return
	}

	h := heap.FromBuffer(buf)

	var stackNode [MaxStackDepth]NodeID
	var stackDist [MaxStackDepth]float64
	sp := 0
	stackNode[0] = Sentinel

	pop := func() (NodeID, float64) {
		n := stackNode[sp]
		var d float64
		if n != Sentinel {
			if recomputeDistance {
				d = metric(geometry, tree.BoundingVolume(n))
			} else {
				d = stackDist[sp]
			}
		}
		sp--
		return n, d
	}

	node := tree.Root()
	distNode := 0.0
	r := math.Inf(1)

	for node != Sentinel {
		if distNode >= r {
			node, distNode = pop()
			continue
		}

		left := tree.LeftChild(node)
		right := RightSibling(tree, node)
		dL := metric(geometry, tree.BoundingVolume(left))
		dR := metric(geometry, tree.BoundingVolume(right))

		if dL < r && tree.IsLeaf(left) {
			h.Offer(heap.Entry{LeafIndex: tree.LeafIndex(left), Distance: dL})
			if h.Len() == k {
				r = h.Top().Distance
			}
		}
		// r may have just tightened from the left child; the right-child
		// test must see the updated value.
		if dR < r && tree.IsLeaf(right) {
			h.Offer(heap.Entry{LeafIndex: tree.LeafIndex(right), Distance: dR})
			if h.Len() == k {
				r = h.Top().Distance
			}
		}

		descendL := dL < r && !tree.IsLeaf(left)
		descendR := dR < r && !tree.IsLeaf(right)

		switch {
		case descendL && descendR:
			near, far, nearDist, farDist := left, right, dL, dR
			if dR < dL {
				near, far, nearDist, farDist = right, left, dR, dL
			}
			sp++
			if sp >= MaxStackDepth {
				panic("bvh/rope: tree depth exceeds stack capacity")
			}
			stackNode[sp] = far
			stackDist[sp] = farDist
			node, distNode = near, nearDist
		case descendL:
			node, distNode = left, dL
		case descendR:
			node, distNode = right, dR
		default:
			node, distNode = pop()
		}
	}

	heap.SortAscending(h.Data())
	for _, e := range h.Data() {
		emit(e.LeafIndex, e.Distance)
	}
}
