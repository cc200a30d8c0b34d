// Package bvh dispatches spatial and k-nearest-neighbor queries across a
// bounding-volume hierarchy, running each query as an independent task over
// a bounded worker pool.
//
// Two traversal entry points are exposed, one per node encoding: TraverseTwoChild
// for explicit two-child nodes (see package twochild) and TraverseRope for
// left-child+rope nodes (see package rope). Both accept a batch of Query
// values (a mix of spatial-predicate and nearest-neighbor queries) and a
// Callback through which results are reported as they're found. Neither
// entry point builds a BVH; callers supply one via the twochild.BVH[BV] or
// rope.BVH[BV] accessor interface (see package bvhtest for a reference
// implementation used in this module's own tests).
package bvh
