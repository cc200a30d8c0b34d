package scratch

import "github.com/katalvlaran/bvhtraverse/bvh/heap"

// Buffer holds the one flat allocation feeding every nearest query in a
// single traversal invocation, plus the prefix-sum offsets carving it into
// per-query sub-ranges.
type Buffer struct {
	offsets []int
	data    []heap.Entry
}

// Provision computes the exclusive prefix sum of ks and allocates a single
// []heap.Entry of length sum(ks). ks[i] is the k for the i-th nearest query
// in encounter order; ks may be empty, in which case the returned Buffer
// holds no allocation. A k below 1 requests zero results, so it contributes
// zero slots; letting a negative value run through the prefix sum would
// drive later offsets backward and break the disjoint sub-range invariant.
func Provision(ks []int) *Buffer {
	offsets := make([]int, len(ks)+1)
	for i, k := range ks {
		if k < 0 {
			k = 0
		}
		offsets[i+1] = offsets[i] + k
	}

	var data []heap.Entry
	if total := offsets[len(ks)]; total > 0 {
		data = make([]heap.Entry, total)
	}

	return &Buffer{offsets: offsets, data: data}
}

// For returns query i's sub-range: length 0, capacity max(ks[i], 0), ready
// to be wrapped by heap.FromBuffer. i must be in [0, len(ks)).
func (b *Buffer) For(i int) []heap.Entry {
	start, end := b.offsets[i], b.offsets[i+1]
	return b.data[start:start:end]
}

// Len reports how many nearest queries this buffer was provisioned for.
func (b *Buffer) Len() int {
	if len(b.offsets) == 0 {
		return 0
	}
	return len(b.offsets) - 1
}
