// Package cycles converts durations into CPU cycles and solves how many naps
// a counted delay loop has to run to cover them.
//
// Everything here is pure integer arithmetic. Firmware never calls it at run
// time: delaygen evaluates it on the build host and emits the results as
// constants, so no division reaches the target.
package cycles

import "time"

// Overhead is the cost of the loop that sequences naps, excluding the naps.
type Overhead struct {
	// PerIteration is paid by every iteration that goes on to run a nap:
	// check, dispatch, decrement and branch back.
	PerIteration uint32
	// Final is paid once by the check that finds the counter at zero.
	Final uint32
}

// Cycles returns the loop bookkeeping spent while running n naps.
func (o Overhead) Cycles(n uint32) uint64 {
	return uint64(n)*uint64(o.PerIteration) + uint64(o.Final)
}

// Model describes a target: its clock and the cost of its nap loop.
type Model struct {
	ClockHz uint32
	// AtomCycles is the full cost of one nap, call and return included.
	AtomCycles uint32
	Loop       Overhead
}

// CyclesPerMicrosecond truncates, so clocks that are not a whole number of
// MHz lose their fraction here.
func (m Model) CyclesPerMicrosecond() uint32 {
	return m.ClockHz / 1_000_000
}

func (m Model) Validate() error {
	if m.CyclesPerMicrosecond() == 0 {
		return ErrClockTooSlow
	}
	if m.AtomCycles == 0 {
		return ErrZeroAtom
	}
	if m.AtomCycles <= m.Loop.PerIteration {
		return ErrAtomTooCheap
	}
	return nil
}

// Realized returns the cycles a loop of n naps takes, from the first check
// to the final one.
func (m Model) Realized(n uint32) uint64 {
	return uint64(n)*uint64(m.AtomCycles) + m.Loop.Cycles(n)
}

// Overshoot is how far Naps(c) runs past c.
func (m Model) Overshoot(c uint32) uint64 {
	return m.Realized(m.Naps(c)) - uint64(c)
}

// Duration converts the realized length of n naps into wall time. The model
// must pass Validate.
func (m Model) Duration(n uint32) time.Duration {
	return m.CyclesDuration(m.Realized(n))
}

// CyclesDuration converts a cycle count into wall time, truncating to whole
// nanoseconds.
func (m Model) CyclesDuration(c uint64) time.Duration {
	return time.Duration(c * 1000 / uint64(m.CyclesPerMicrosecond()))
}
