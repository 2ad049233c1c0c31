package dev

import (
	"github.com/itohio/napdelay/config"
	"github.com/itohio/napdelay/cycles"
)

// Cycle costs of the nap loop in nap_avr.c on cores with a 16-bit program
// counter and internal SRAM (ATmega328P, ATtiny85, ATmega1284P). Parts with a
// 22-bit PC pay one extra cycle per rcall and ret, and external SRAM adds
// more.
//
// These are counted by hand from the instruction timings and nothing checks
// them at run time. Re-measure on a cycle-accurate simulator or with a scope
// on config.Probe (see the root firmware) whenever nap_avr.c changes.
const (
	// rcall (3) + 18 nop + ret (4)
	AtomCycles uint32 = 25
	// cp/cpc x4, breq not taken (1), subi/sbci x4, rjmp (2)
	PerIterationCycles uint32 = 11
	// cp/cpc x4, breq taken (2), ret (4)
	FinalIterationCycles uint32 = 10
)

// An atom no dearer than the loop step around it could never be traded for
// that step's overhead.
const _ = AtomCycles - PerIterationCycles - 1

// Model describes this build's target to the solver.
func Model() cycles.Model {
	return cycles.Model{
		ClockHz:    config.ClockHz,
		AtomCycles: AtomCycles,
		Loop: cycles.Overhead{
			PerIteration: PerIterationCycles,
			Final:        FinalIterationCycles,
		},
	}
}

// loop counts remaining down to zero, napping once per step.
func loop(remaining uint32, atom func()) {
	for remaining != 0 {
		atom()
		remaining--
	}
}
