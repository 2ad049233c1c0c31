//go:build tinygo

package dev

import (
	"time"
	_ "unsafe"
)

//go:linkname ticks runtime.ticks
func ticks() uint64

//go:linkname ticksToNanoseconds runtime.ticksToNanoseconds
func ticksToNanoseconds(ticks uint64) int64

//go:inline
func Now() time.Duration {
	return time.Duration(ticksToNanoseconds(ticks()))
}

// BenchmarkNaps returns the average wall time of Naps(count) over n runs.
// The runtime tick is far coarser than a nap on most chips, so pick count
// large enough to span many ticks.
func BenchmarkNaps(count uint32, n int) time.Duration {
	t1 := ticks()
	for i := 0; i < n; i++ {
		Naps(count)
	}

	return time.Duration(ticksToNanoseconds(ticks()-t1)) / time.Duration(n)
}

// Measure returns the wall time of one call to f.
func Measure(f func()) time.Duration {
	t1 := ticks()
	f()
	return time.Duration(ticksToNanoseconds(ticks() - t1))
}
