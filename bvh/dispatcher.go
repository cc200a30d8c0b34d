package bvh

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/bvhtraverse/bvh/rope"
	"github.com/katalvlaran/bvhtraverse/bvh/scratch"
	"github.com/katalvlaran/bvhtraverse/bvh/twochild"
)

// TraverseTwoChild dispatches a batch of queries against a two-child-encoded
// BVH: each query runs as one task, tasks run concurrently up to
// opts' MaxConcurrency, and results are reported through cb as each task
// completes its own work; no ordering is implied across queries.
//
// metric is used only by NearestKind queries; it may be nil if the batch
// has none. Returns ErrOptionViolation for a malformed Option, ErrNilCallback
// if the batch needs a Callback field left nil, or the first error returned
// by ctx's cancellation.
func TraverseTwoChild[BV, G any](
	ctx context.Context,
	tree twochild.BVH[BV],
	metric func(g G, bv BV) float64,
	queries []Query[BV, G],
	cb Callback,
	opts ...Option,
) error {
	c, err := buildConfig(opts)
	if err != nil {
		return err
	}
	if ctx != nil {
		c.ctx = ctx
	}
	if err := validateBatch(queries, cb); err != nil {
		return err
	}
	if tree.Empty() || len(queries) == 0 {
		return nil
	}

	buf, slot := provisionNearest(queries)

	g, gctx := errgroup.WithContext(c.ctx)
	g.SetLimit(c.maxConcurrency)

	for i := range queries {
		i := i
		q := queries[i]
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			switch q.Kind {
			case SpatialKind:
				twochild.Spatial[BV](tree, q.Overlaps, func(leafIndex int) {
					cb.Spatial(i, leafIndex)
				})
			case NearestKind:
				sub := buf.For(slot[i])
				twochild.Nearest[BV, G](tree, metric, q.Geometry, q.K, sub, c.recomputeDistance,
					func(leafIndex int, distance float64) {
						cb.Nearest(i, leafIndex, distance)
					})
			default:
				panic(fmt.Sprintf("bvh: unrecognized query kind %d", q.Kind))
			}
			return nil
		})
	}
	return g.Wait()
}

// TraverseRope dispatches a batch of queries against a left-child+rope
// encoded BVH. Semantics are identical to TraverseTwoChild; only the node
// accessor contract and the underlying kernel package differ.
func TraverseRope[BV, G any](
	ctx context.Context,
	tree rope.BVH[BV],
	metric func(g G, bv BV) float64,
	queries []Query[BV, G],
	cb Callback,
	opts ...Option,
) error {
	c, err := buildConfig(opts)
	if err != nil {
		return err
	}
	if ctx != nil {
		c.ctx = ctx
	}
	if err := validateBatch(queries, cb); err != nil {
		return err
	}
	if tree.Empty() || len(queries) == 0 {
		return nil
	}

	buf, slot := provisionNearest(queries)

	g, gctx := errgroup.WithContext(c.ctx)
	g.SetLimit(c.maxConcurrency)

	for i := range queries {
		i := i
		q := queries[i]
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			switch q.Kind {
			case SpatialKind:
				rope.Spatial[BV](tree, q.Overlaps, func(leafIndex int) {
					cb.Spatial(i, leafIndex)
				})
			case NearestKind:
				sub := buf.For(slot[i])
				rope.Nearest[BV, G](tree, metric, q.Geometry, q.K, sub, c.recomputeDistance,
					func(leafIndex int, distance float64) {
						cb.Nearest(i, leafIndex, distance)
					})
			default:
				panic(fmt.Sprintf("bvh: unrecognized query kind %d", q.Kind))
			}
			return nil
		})
	}
	return g.Wait()
}

// validateBatch checks that cb carries the callback fields the batch's
// query kinds require.
func validateBatch[BV, G any](queries []Query[BV, G], cb Callback) error {
	for _, q := range queries {
		switch q.Kind {
		case SpatialKind:
			if cb.Spatial == nil {
				return ErrNilCallback
			}
		case NearestKind:
			if cb.Nearest == nil {
				return ErrNilCallback
			}
		}
	}
	return nil
}

// provisionNearest buckets the NearestKind queries' k values through
// scratch.Provision, producing one flat heap.Entry allocation for
// the whole batch and a queryIndex -> scratch-slot mapping. SpatialKind
// queries never touch the buffer.
func provisionNearest[BV, G any](queries []Query[BV, G]) (*scratch.Buffer, []int) {
	slot := make([]int, len(queries))
	var ks []int
	for i, q := range queries {
		if q.Kind == NearestKind {
			slot[i] = len(ks)
			ks = append(ks, q.K)
		}
	}
	return scratch.Provision(ks), slot
}
