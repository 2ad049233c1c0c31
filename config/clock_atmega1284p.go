//go:build atmega1284p

package config

const ClockHz uint32 = 20_000_000
