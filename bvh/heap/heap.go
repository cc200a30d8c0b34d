package heap

import "sort"

// Entry is one candidate in a nearest-neighbor result set: the leaf's
// caller-space permutation index and its distance from the query geometry.
type Entry struct {
	LeafIndex int
	Distance  float64
}

// greater reports whether a belongs above b in the max-heap, i.e. a is the
// preferred candidate for eviction. Ties are broken by leaf index so the
// ordering is total and deterministic.
func greater(a, b Entry) bool {
	if a.Distance != b.Distance {
		return a.Distance > b.Distance
	}
	return a.LeafIndex > b.LeafIndex
}

// less is the dual of greater, used only for the final ascending sort.
func less(a, b Entry) bool {
	if a.Distance != b.Distance {
		return a.Distance < b.Distance
	}
	return a.LeafIndex < b.LeafIndex
}

// Max is a bounded max-heap backed by a caller-supplied slice. The zero
// value is not usable; construct with FromBuffer.
type Max struct {
	data []Entry
}

// FromBuffer wraps buf as an empty heap whose capacity is cap(buf). buf is
// typically a zero-length, k-capacity sub-slice of a shared scratch array
// provisioned once per traversal invocation (see package scratch).
func FromBuffer(buf []Entry) *Max {
	return &Max{data: buf[:0]}
}

// Len reports the number of entries currently held.
func (h *Max) Len() int { return len(h.data) }

// Cap reports the fixed capacity of the heap.
func (h *Max) Cap() int { return cap(h.data) }

// Data exposes the backing slice. After the heap is sorted (see
// SortAscending) this is the caller's ordered result set; before that it is
// in heap order, not sorted order.
func (h *Max) Data() []Entry { return h.data }

// Top returns the current maximum without removing it. Len() must be > 0.
func (h *Max) Top() Entry { return h.data[0] }

// Push inserts e. It panics if the heap is already at capacity; callers
// must check Len() < Cap() first (PopPush is the O(log k) alternative once
// full, and Offer combines the two checks).
func (h *Max) Push(e Entry) {
	if len(h.data) >= cap(h.data) {
		panic("bvh/heap: push exceeds fixed capacity")
	}
	h.data = append(h.data, e)
	h.siftUp(len(h.data) - 1)
}

// PopPush replaces the current maximum with e and restores the heap
// invariant in a single O(log k) sift-down. Len() must be > 0.
func (h *Max) PopPush(e Entry) {
	h.data[0] = e
	h.siftDown(0)
}

// Offer is the combined push-or-replace step used by the nearest kernels:
// insert e if the heap has room, otherwise evict the current maximum when
// e is closer.
func (h *Max) Offer(e Entry) {
	if h.Len() < h.Cap() {
		h.Push(e)
		return
	}
	if greater(h.Top(), e) {
		h.PopPush(e)
	}
}

func (h *Max) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !greater(h.data[i], h.data[parent]) {
			break
		}
		h.data[i], h.data[parent] = h.data[parent], h.data[i]
		i = parent
	}
}

func (h *Max) siftDown(i int) {
	n := len(h.data)
	for {
		left := 2*i + 1
		right := 2*i + 2
		largest := i
		if left < n && greater(h.data[left], h.data[largest]) {
			largest = left
		}
		if right < n && greater(h.data[right], h.data[largest]) {
			largest = right
		}
		if largest == i {
			break
		}
		h.data[i], h.data[largest] = h.data[largest], h.data[i]
		i = largest
	}
}

// SortAscending sorts data (typically h.Data() after traversal completes)
// into nondecreasing distance order, breaking ties by leaf index. This
// destroys the heap invariant, which is fine since the heap is not reused
// after its owning query finishes.
func SortAscending(data []Entry) {
	sort.Slice(data, func(i, j int) bool { return less(data[i], data[j]) })
}
