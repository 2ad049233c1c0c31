//go:build !attiny85 && !atmega1284p

package config

// ClockHz is the core clock of Arduino Uno / Nano class boards.
const ClockHz uint32 = 16_000_000
