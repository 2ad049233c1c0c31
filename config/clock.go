package config

// CyclesPerMicrosecond truncates; a clock that is not a whole number of MHz
// loses its fraction.
const CyclesPerMicrosecond = ClockHz / 1_000_000

// Clocks below 1 MHz leave CyclesPerMicrosecond at zero. This refuses to
// compile in that case.
const _ = CyclesPerMicrosecond - 1
