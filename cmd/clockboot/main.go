//go:build tinygo

package main

import (
	"device/arm"
	"time"

	"clockcode-go/boards"
	"clockcode-go/device"
	"clockcode-go/flash"
	"clockcode-go/rcc"
	"clockcode-go/usb"
)

func main() {
	p := device.MustTake()

	r, err := rcc.Constrain(p.RCC)
	if err != nil {
		halt("rcc", err)
	}
	fp, err := flash.Constrain(p.FLASH)
	if err != nil {
		halt("flash", err)
	}

	cfg := boards.Selected.Apply(r.CFGR).Logger(func(s string) { println(s) })
	clocks, err := cfg.Freeze(fp.ACR)
	if err != nil {
		halt("freeze", err)
	}
	println("board", boards.Selected.Name)
	println(clocks.String())

	if dev, err := usb.New(r.APB1, clocks); err == nil {
		dev.Enable()
		dev.StartupDelay(spin)
		println("usb", dev.Clock().String())
	}

	// Periodic heartbeat.
	tick := time.NewTicker(1 * time.Second)
	defer tick.Stop()
	for t := range tick.C {
		println(t.Format("15:04:05"), "Heartbeat", clocks.SYSCLK.String())
	}
}

func spin(cycles uint32) {
	for i := uint32(0); i < cycles; i++ {
		arm.Asm("nop")
	}
}

func halt(stage string, err error) {
	for {
		println("clockboot:", stage, err.Error())
		time.Sleep(time.Second)
	}
}
