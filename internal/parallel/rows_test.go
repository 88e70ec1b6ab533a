package parallel

import (
	"sync/atomic"
	"testing"
)

// TestRows_CoversAllRows verifies every row index is visited exactly once.
func TestRows_CoversAllRows(t *testing.T) {
	for _, n := range []int{0, 1, 63, 64, 65, 1000, 4096} {
		seen := make([]int32, n)
		Rows(n, func(start, end int) {
			for i := start; i < end; i++ {
				atomic.AddInt32(&seen[i], 1)
			}
		})
		for i, c := range seen {
			if c != 1 {
				t.Fatalf("n=%d: row %d visited %d times, want 1", n, i, c)
			}
		}
	}
}

// TestRows_ChunksAreOrderedAndDisjoint verifies each chunk is a valid
// half-open range.
func TestRows_ChunksAreOrderedAndDisjoint(t *testing.T) {
	var total atomic.Int64
	Rows(500, func(start, end int) {
		if start < 0 || end > 500 || start >= end {
			t.Errorf("bad chunk [%d, %d)", start, end)
		}
		total.Add(int64(end - start))
	})
	if total.Load() != 500 {
		t.Fatalf("chunks cover %d rows, want 500", total.Load())
	}
}
