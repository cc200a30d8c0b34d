// Package rope implements the spatial and nearest traversal kernels for
// BVHs encoded with left-child-plus-rope nodes: every internal node carries
// only a left child id, and a node's right sibling is reached by following
// the rope stored on its left child (the "next node to visit on skip"
// pointer). Leaves are distinguished by IsLeaf.
//
// The spatial kernel is genuinely stackless: it holds a single "next node"
// pointer and nothing else. The nearest kernel still needs a
// deferred-sibling stack, since best-first descent requires
// remembering unvisited near/far siblings regardless of encoding; only the
// "what is the right child" accessor differs from the twochild package.
package rope
