package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClock(t *testing.T) {
	assert.Equal(t, uint32(16_000_000), ClockHz)
	assert.Equal(t, uint32(16), uint32(CyclesPerMicrosecond))
}
