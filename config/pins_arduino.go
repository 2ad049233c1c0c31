//go:build arduino || arduino_nano

package config

import "machine"

var (
	// Probe is held high for the length of every measured delay.
	Probe = machine.D8
	LED   = machine.LED
)
