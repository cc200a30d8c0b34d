// Package bvhtest provides a reference bounding-volume type and a minimal
// in-memory BVH builder used to validate the dispatcher in bvh against
// known-good results. It holds no brute-force oracle; the kernel packages'
// property tests carry their own.
//
// The production bvh/twochild, bvh/rope, and bvh packages deliberately keep
// bounding-volume arithmetic and BVH construction abstract (the traversal
// core consumes any BV/geometry pair through its Overlaps/Metric function
// parameters, never computes them); this package supplies one concrete
// instantiation, an axis-aligned bounding box over 2D points, purely to
// exercise the kernels end-to-end in the bvh package's tests and examples.
// It is not part of the traversal core's public surface.
package bvhtest
