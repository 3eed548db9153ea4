//go:build !tinygo

// Command clocksim solves STM32G4 clock plans and replays Freeze against a
// simulated RCC.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
