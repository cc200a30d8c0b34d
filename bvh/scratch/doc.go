// Package scratch provisions the single flat buffer backing every nearest
// query's bounded max-heap in one traversal invocation.
//
// Per query i, k_i heap entries are required. Rather than allocating one
// slice per query (Q allocations, one per goroutine, contending for the
// allocator), the provisioner computes the exclusive prefix sum of the k_i
// and hands out one allocation sliced into Q disjoint sub-ranges. Query i's
// sub-range is buffer[offset[i]:offset[i+1]], with len 0 and cap k_i so the
// heap package can treat it as an empty, fixed-capacity scratch.
package scratch
