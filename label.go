//go:build arduino || arduino_nano

package main

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

type Label struct {
	x, y  int16
	text  func() string
	color color.RGBA
}

func NewLabel(x, y int16, text func() string, color color.RGBA) *Label {
	return &Label{
		x:     x,
		y:     y,
		text:  text,
		color: color,
	}
}

func (l *Label) Draw(d drivers.Displayer) {
	tinyfont.WriteLine(d, &proggy.TinySZ8pt7b, l.x, l.y, l.text(), l.color)
}
