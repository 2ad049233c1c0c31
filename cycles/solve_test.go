package cycles

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// samples covers every count up to a few thousand loop steps, then strides
// up to the top of the 32-bit range.
func samples() []uint32 {
	var cs []uint32
	for c := uint32(0); c <= 20_000; c++ {
		cs = append(cs, c)
	}
	for c := uint64(20_000); c < math.MaxUint32; c += 7_919_993 {
		cs = append(cs, uint32(c))
	}
	return append(cs, math.MaxUint32-1, math.MaxUint32)
}

func TestStepwiseNaps_Scenarios(t *testing.T) {
	// C=1000: N0=40, Overhead(40)=647, 647/25=25 atoms covered, 40-25=15.
	assert.Equal(t, uint32(15), canonical.StepwiseNaps(1000))
	// C=25: N0=1, Overhead(1)=23 covers no whole atom.
	assert.Equal(t, uint32(1), canonical.StepwiseNaps(25))
	assert.Equal(t, uint32(0), canonical.StepwiseNaps(0))
}

func TestStepwiseNaps_SubAtom(t *testing.T) {
	// Below one atom the estimate rounds up to a single nap. The request is
	// met, but only because one loop step is already longer than the request.
	n := canonical.StepwiseNaps(10)
	assert.Equal(t, uint32(1), n)
	assert.GreaterOrEqual(t, canonical.Realized(n), uint64(10))
}

func TestStepwiseNaps_UndershootsLongDelays(t *testing.T) {
	n := canonical.StepwiseNaps(1000)
	assert.Equal(t, uint64(622), canonical.Realized(n))
	assert.Less(t, canonical.Realized(n), uint64(1000))
}

func TestStepwiseNaps_Monotonic(t *testing.T) {
	for _, m := range []Model{canonical, avr} {
		var prev uint32
		for _, c := range samples() {
			n := m.StepwiseNaps(c)
			require.GreaterOrEqual(t, n, prev, "c=%d", c)
			prev = n
		}
	}
}

func TestNaps_Zero(t *testing.T) {
	assert.Equal(t, uint32(0), canonical.Naps(0))
	assert.Equal(t, uint32(0), avr.Naps(0))
}

func TestNaps_Scenarios(t *testing.T) {
	assert.Equal(t, uint32(25), canonical.Naps(1000))
	assert.Equal(t, uint64(1032), canonical.Realized(25))
	assert.Equal(t, uint32(1), canonical.Naps(25))
	assert.Equal(t, uint32(1), canonical.Naps(10))

	// 1ms at 16MHz on the AVR loop
	assert.Equal(t, uint32(445), avr.Naps(16_000))
	assert.Equal(t, uint32(88889), avr.Naps(3_200_000))
	assert.Equal(t, uint32(222222), avr.Naps(8_000_000))
}

func TestNaps_SubAtomRoundsUp(t *testing.T) {
	for c := uint32(1); c < canonical.AtomCycles; c++ {
		assert.Equal(t, uint32(1), canonical.Naps(c), "c=%d", c)
		assert.Equal(t, uint32(1), avr.Naps(c), "c=%d", c)
	}
}

func TestNaps_LowerBound(t *testing.T) {
	for _, m := range []Model{canonical, avr} {
		for _, c := range samples() {
			n := m.Naps(c)
			require.GreaterOrEqual(t, m.Realized(n), uint64(c), "c=%d n=%d", c, n)
		}
	}
}

func TestNaps_Minimal(t *testing.T) {
	for _, m := range []Model{canonical, avr} {
		for _, c := range samples() {
			n := m.Naps(c)
			if n <= 1 {
				continue
			}
			require.Less(t, m.Realized(n-1), uint64(c), "c=%d n=%d", c, n)
		}
	}
}

func TestNaps_Monotonic(t *testing.T) {
	for _, m := range []Model{canonical, avr} {
		var prev uint32
		for _, c := range samples() {
			n := m.Naps(c)
			require.GreaterOrEqual(t, n, prev, "c=%d", c)
			prev = n
		}
	}
}

func TestNaps_Deterministic(t *testing.T) {
	for _, c := range []uint32{0, 10, 25, 1000, 16_000, math.MaxUint32} {
		first := avr.Naps(c)
		for i := 0; i < 10; i++ {
			assert.Equal(t, first, avr.Naps(c))
		}
	}
}

func TestModel_OvershootBounded(t *testing.T) {
	for _, m := range []Model{canonical, avr} {
		bound := uint64(m.AtomCycles) + uint64(m.Loop.PerIteration) + uint64(m.Loop.Final)
		for _, c := range samples() {
			require.Less(t, m.Overshoot(c), bound, "c=%d", c)
		}
	}
}

func TestLookupSolver(t *testing.T) {
	s, err := LookupSolver("exact")
	require.NoError(t, err)
	assert.Equal(t, uint32(25), s(canonical, 1000))

	s, err = LookupSolver("stepwise")
	require.NoError(t, err)
	assert.Equal(t, uint32(15), s(canonical, 1000))

	_, err = LookupSolver("fastest")
	assert.ErrorIs(t, err, ErrUnknownSolver)
	assert.Equal(t, []string{"exact", "stepwise"}, SolverNames())
}

func TestSolvers_UnvalidatedModel(t *testing.T) {
	for _, m := range []Model{{}, {ClockHz: 16_000_000, Loop: Overhead{PerIteration: 11, Final: 10}}} {
		for name, solve := range Solvers {
			assert.NotPanics(t, func() {
				assert.Zero(t, solve(m, 1000), name)
			}, name)
		}
	}
}
