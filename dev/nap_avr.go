//go:build avr

package dev

/*
#include <stdint.h>

void napdelay_naps(uint32_t count);
*/
import "C"

// Naps spins for count naps in the counted loop of nap_avr.c. It never
// yields, and interrupts taken while it runs are not compensated for.
//
//go:inline
func Naps(count uint32) {
	C.napdelay_naps(C.uint32_t(count))
}
