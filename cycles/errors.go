package cycles

// error definitions
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrOverflow      = Error("duration overflows cycle counter")
	ErrClockTooSlow  = Error("clock below 1 MHz")
	ErrZeroAtom      = Error("atom costs zero cycles")
	ErrAtomTooCheap  = Error("atom does not outweigh per-iteration loop overhead")
	ErrUnknownUnit   = Error("unknown duration unit")
	ErrUnknownSolver = Error("unknown solver")
)
