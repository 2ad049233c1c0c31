//go:build !avr

package dev

// Host and non-AVR builds run the same loop in Go. Nothing about its timing
// is counted, so it only keeps callers building and testable.

//go:noinline
func nap() {}

// Naps blocks for count naps.
func Naps(count uint32) {
	loop(count, nap)
}
