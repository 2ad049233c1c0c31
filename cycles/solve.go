package cycles

import (
	"fmt"
	"sort"
)

// Solver turns a cycle count into a nap count for a model. Solvers expect a
// model that passes Validate; one without an atom cost solves to zero.
type Solver func(m Model, c uint32) uint32

// Solvers by the name delaygen accepts.
var Solvers = map[string]Solver{
	"exact":    Model.Naps,
	"stepwise": Model.StepwiseNaps,
}

// LookupSolver returns the named solver.
func LookupSolver(name string) (Solver, error) {
	s, ok := Solvers[name]
	if !ok {
		return nil, fmt.Errorf("%q (have %v): %w", name, SolverNames(), ErrUnknownSolver)
	}
	return s, nil
}

func SolverNames() []string {
	names := make([]string, 0, len(Solvers))
	for name := range Solvers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func ceilDiv(a, b uint64) uint64 {
	return (a + b - 1) / b
}

// Naps returns the smallest nap count whose realized length is at least c
// cycles. Zero stays zero so the loop is never entered; any other request
// runs at least one nap, even when it is shorter than a single atom.
func (m Model) Naps(c uint32) uint32 {
	if c == 0 || m.AtomCycles == 0 {
		return 0
	}
	final := uint64(m.Loop.Final)
	if uint64(c) <= final {
		return 1
	}
	step := uint64(m.AtomCycles) + uint64(m.Loop.PerIteration)
	return uint32(ceilDiv(uint64(c)-final, step))
}

// StepwiseNaps estimates the nap count in four steps: round c up to whole
// atoms, price the loop overhead of that many iterations, and take back as
// many atoms as that overhead fully covers.
//
// The atoms it takes back also take their own loop overhead with them, which
// the estimate ignores, so long delays come out short. Naps does not.
func (m Model) StepwiseNaps(c uint32) uint32 {
	if m.AtomCycles == 0 {
		return 0
	}
	atom := uint64(m.AtomCycles)
	n0 := ceilDiv(uint64(c), atom)
	covered := m.Loop.Cycles(uint32(n0)) / atom
	if covered >= n0 {
		return 0
	}
	return uint32(n0 - covered)
}
