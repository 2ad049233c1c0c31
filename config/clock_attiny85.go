//go:build attiny85

package config

// internal RC oscillator, CKDIV8 fuse cleared
const ClockHz uint32 = 8_000_000
