package bvh

import "errors"

// Sentinel errors surfaced by this package. Precondition violations that
// traversal cannot recover from (stack-depth overflow, a k exceeding its
// scratch sub-range) panic inside the kernel packages rather than being
// returned here; these sentinels cover only batch- and option-level misuse
// that a caller can reasonably recover from.
var (
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bvh: invalid option supplied")

	// ErrNilCallback is returned when the batch contains a query whose kind
	// needs a Callback field (Spatial or Nearest) that is nil.
	ErrNilCallback = errors.New("bvh: no callback set for query kind present in batch")
)

// Kind discriminates a Query's shape. Go generics give no sum-type
// construction, so Query carries a Kind discriminator over a flat field
// set instead (mirroring how the kernel packages already separate Spatial
// and Nearest into distinct functions over a shared node encoding).
type Kind int

const (
	// SpatialKind selects the spatial overlap query: Overlaps must be set.
	SpatialKind Kind = iota
	// NearestKind selects the k-nearest-neighbor query: Geometry and K
	// must be set.
	NearestKind
)

// Query describes one independent traversal over the shared BVH. A batch is
// a []Query[BV, G]; every element is dispatched to exactly one task.
type Query[BV, G any] struct {
	Kind Kind

	// Overlaps is the spatial predicate. Required when Kind == SpatialKind,
	// ignored otherwise.
	Overlaps func(bv BV) bool

	// Geometry and K parameterize the nearest-neighbor search. Required
	// when Kind == NearestKind, ignored otherwise. K < 1 is not an error:
	// the nearest kernel emits zero results.
	Geometry G
	K        int
}

// Callback reports query results as the dispatcher finds them. Both fields
// receive the originating query's index within the batch so a caller can
// correlate results without synchronizing on query order; Spatial/Nearest
// may be called concurrently from different goroutines (one per in-flight
// query) and must be safe for that.
type Callback struct {
	// Spatial is invoked once per matching leaf of a SpatialKind query.
	// May be nil if the batch has no SpatialKind queries.
	Spatial func(queryIndex, leafIndex int)

	// Nearest is invoked once per result of a NearestKind query, in
	// nondecreasing distance order within that query's results. May be
	// nil if the batch has no NearestKind queries.
	Nearest func(queryIndex, leafIndex int, distance float64)
}
