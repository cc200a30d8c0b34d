// Package heap implements a fixed-capacity max-heap over a caller-provided
// backing slice, used by the nearest-neighbor traversal kernels to maintain
// the k best candidates seen so far without any per-query allocation.
//
// Unlike container/heap, the backing slice never grows: capacity is fixed
// at construction (the caller's scratch sub-range) and Push panics if asked
// to exceed it. PopPush replaces the current maximum in a single sift-down,
// which is the only insertion path once the heap is full; this halves the
// work of a naive pop-then-push.
//
// Ties in Distance are broken by ascending LeafIndex: of two candidates at
// the same distance, the one with the smaller leaf index is treated as
// "smaller" in the max-heap ordering and is therefore evicted last. This
// keeps nearest-query output deterministic across runs.
package heap
