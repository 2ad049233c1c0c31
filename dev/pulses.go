//go:build tinygo

package dev

import (
	"machine"
	"time"
)

// PulseTrain plays delays on a pin: even entries wait with the pin low, odd
// entries hold it high.
type PulseTrain struct {
	delays []func()
}

func NewPulseTrain(d ...func()) *PulseTrain {
	return &PulseTrain{delays: d}
}

// Run plays the train once and returns when the first pulse started.
func (pt *PulseTrain) Run(p machine.Pin) (triggerStart time.Duration) {
	for i, delay := range pt.delays {
		if i%2 == 0 {
			delay()
			continue
		}
		if i == 1 {
			triggerStart = Now()
		}
		p.High()
		delay()
		p.Low()
	}
	return triggerStart
}
