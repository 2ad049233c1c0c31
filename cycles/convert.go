package cycles

import (
	"fmt"
	"math/bits"
)

// Unit is the unit a delay is written in.
type Unit string

const (
	Microseconds Unit = "us"
	Milliseconds Unit = "ms"
	Seconds      Unit = "s"
	// Cycles takes the value as a raw CPU cycle count.
	Cycles       Unit = "cycles"
)

func (u Unit) Valid() bool {
	switch u {
	case Microseconds, Milliseconds, Seconds, Cycles:
		return true
	}
	return false
}

// mul multiplies without wrapping.
func mul(a, b uint32) (uint32, error) {
	hi, lo := bits.Mul32(a, b)
	if hi != 0 {
		return 0, ErrOverflow
	}
	return lo, nil
}

func (m Model) MicrosecondsToCycles(us uint32) (uint32, error) {
	return mul(us, m.CyclesPerMicrosecond())
}

func (m Model) MillisecondsToCycles(ms uint32) (uint32, error) {
	us, err := mul(ms, 1000)
	if err != nil {
		return 0, err
	}
	return m.MicrosecondsToCycles(us)
}

func (m Model) SecondsToCycles(s uint32) (uint32, error) {
	ms, err := mul(s, 1000)
	if err != nil {
		return 0, err
	}
	return m.MillisecondsToCycles(ms)
}

// Cycles converts value in unit to CPU cycles.
func (m Model) Cycles(value uint32, unit Unit) (c uint32, err error) {
	switch unit {
	case Microseconds:
		c, err = m.MicrosecondsToCycles(value)
	case Milliseconds:
		c, err = m.MillisecondsToCycles(value)
	case Seconds:
		c, err = m.SecondsToCycles(value)
	case Cycles:
		return value, nil
	default:
		return 0, fmt.Errorf("%q: %w", unit, ErrUnknownUnit)
	}
	if err != nil {
		return 0, fmt.Errorf("%d%s at %d Hz: %w", value, unit, m.ClockHz, err)
	}
	return c, nil
}
