// Command delaygen solves a YAML delay table into Go constants for dev.Naps.
//
// Use it from go:generate next to the table:
//
//	//go:generate go run github.com/itohio/napdelay/cmd/delaygen -t delays.yaml -o delays_gen.go
package main

import (
	"os"
)

func main() {
	if err := NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
