//go:build arduino || arduino_nano

package main

import (
	"image/color"
	"machine"
	"time"

	"github.com/itohio/napdelay/config"
	"github.com/itohio/napdelay/dev"
	"tinygo.org/x/drivers/ssd1306"
)

//go:generate go run ./cmd/delaygen -t delays.yaml -o delays_gen.go
//go:generate tinygo flash -target=arduino

var (
	white = color.RGBA{255, 255, 255, 255}
)

// check runs one generated delay with config.Probe held high, so the pulse
// width on a scope is the delay plus two pin writes.
type check struct {
	name      string
	delay     func()
	predicted time.Duration
	measured  time.Duration
}

func (c *check) run() {
	config.Probe.High()
	c.measured = dev.Measure(c.delay)
	config.Probe.Low()
}

func (c *check) String() string {
	return c.name + " " + c.predicted.String() + " " + c.measured.String()
}

var checks = []*check{
	{name: "10us", delay: Pulse, predicted: pulseLength},
	{name: "5ms", delay: Hold, predicted: holdLength},
	{name: "1s", delay: Pause, predicted: pauseLength},
	{name: "100cyc", delay: Spin, predicted: spinLength},
}

func main() {
	config.Probe.Configure(machine.PinConfig{Mode: machine.PinOutput})
	config.LED.Configure(machine.PinConfig{Mode: machine.PinOutput})

	model := dev.Model()

	// Re-verify the hand-counted loop costs: a long run is dominated by the
	// per-nap cost, so predicted and measured should agree to a tick.
	const benchNaps = 44444
	bench := dev.BenchmarkNaps(benchNaps, 4)
	println("calibration " + model.Duration(benchNaps).String() + " " + bench.String())
	// a zero-length delay measures what Measure itself costs
	println("overhead " + settleLength.String() + " " + dev.Measure(Settle).String())

	machine.I2C0.Configure(machine.I2CConfig{Frequency: 400 * machine.KHz})
	// the delay is needed for display start from a cold reboot
	time.Sleep(time.Second)
	display := ssd1306.NewI2C(machine.I2C0)
	display.Configure(ssd1306.Config{Width: 128, Height: 32, Address: 0x3C, VccState: ssd1306.SWITCHCAPVCC})
	display.ClearDisplay()

	// three 10us pulses mark the start of each round on the scope
	marker := dev.NewPulseTrain(Tick, Pulse, Spin, Pulse, Spin, Pulse)

	labels := make([]*Label, len(checks))
	for i, c := range checks {
		labels[i] = NewLabel(0, int16(8*(i+1)), c.String, white)
	}

	for {
		config.LED.High()
		marker.Run(config.Probe)
		Hold()
		for _, c := range checks {
			c.run()
			println(c.String())
		}
		config.LED.Low()

		display.ClearBuffer()
		for _, l := range labels {
			l.Draw(&display)
		}
		display.Display()
		time.Sleep(time.Millisecond * 500)
	}
}
