// Package twochild implements the spatial and nearest traversal kernels for
// BVHs encoded with explicit two-child nodes: every internal node carries a
// left and a right child id, and leaves are distinguished by IsLeaf.
//
// Both kernels are iterative and stack-based. Per-query state lives on a
// fixed-size [64]NodeID array (plus, for the nearest kernel, a parallel
// []float64 of deferred distances) rather than the Go call stack or heap,
// so a single goroutine running one query allocates nothing beyond its
// local variables. 64 entries comfortably bound the depth of any BVH with
// up to 2^64 leaves; see MaxStackDepth for the precondition this rests on.
package twochild
