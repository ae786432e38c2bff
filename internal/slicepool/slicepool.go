// Package slicepool pools the one []uint32 working-copy buffer shape
// AnalyzeAndGetNSB allocates once per pane: a signed-exponent transform
// of a single pane's worth of float32 samples. Unlike a general-purpose
// byte allocator serving many unrelated callers at many sizes, this pool
// has exactly one caller and one element type, so a single growable
// sync.Pool is enough — there is no size-class table to maintain.
package slicepool

import "sync"

var pool = sync.Pool{
	New: func() any {
		b := make([]uint32, 0)
		return &b
	},
}

// GetUint32 returns a uint32 slice of exactly the requested length,
// reusing a pooled buffer's backing array when it's already large
// enough. The caller must call PutUint32 when done with it.
func GetUint32(length int) []uint32 {
	if length <= 0 {
		return nil
	}
	bp := pool.Get().(*[]uint32)
	b := *bp
	if cap(b) < length {
		b = make([]uint32, length)
	} else {
		b = b[:length]
	}
	return b
}

// PutUint32 returns a slice obtained from GetUint32 to the pool. Slices
// with no backing capacity (e.g. the nil returned for length <= 0) are
// not pooled.
func PutUint32(b []uint32) {
	if cap(b) == 0 {
		return
	}
	pool.Put(&b)
}
