//go:build !stm32f30x

// cmd/clocktree/main.go

// Clocktree plans an STM32F30x clock configuration on the host: it runs the
// same solver and commit sequence the firmware runs, against the simulated
// register blocks, and prints the tree it would program. Useful for checking
// a target before flashing anything.
//
//	clocktree -sysclk 72 -pclk1 36
package main

import (
	"flag"
	"fmt"
	"os"

	"stm32f30x-hal/device/stm32"
	"stm32f30x-hal/flash"
	"stm32f30x-hal/freq"
	"stm32f30x-hal/rcc"
)

func main() {
	sysclk := flag.Uint("sysclk", 0, "sysclk target in MHz (0 = stay on HSI)")
	hclk := flag.Uint("hclk", 0, "hclk ceiling in MHz (0 = follow sysclk)")
	pclk1 := flag.Uint("pclk1", 0, "pclk1 ceiling in MHz (0 = follow hclk)")
	pclk2 := flag.Uint("pclk2", 0, "pclk2 ceiling in MHz (0 = follow hclk)")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "clocktree [options]")
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 0 {
		flag.Usage()
		os.Exit(1)
	}

	// Freeze rejects impossible trees by panicking, same as on the MCU.
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintln(os.Stderr, "clocktree: impossible configuration:", r)
			os.Exit(1)
		}
	}()

	p := stm32.Take()
	rc := rcc.Constrain(p.RCC)
	fl := flash.Constrain(p.FLASH)

	cfg := rc.CFGR
	if *sysclk != 0 {
		cfg = cfg.SysClk(freq.MHz(uint32(*sysclk)))
	}
	if *hclk != 0 {
		cfg = cfg.HClk(freq.MHz(uint32(*hclk)))
	}
	if *pclk1 != 0 {
		cfg = cfg.PClk1(freq.MHz(uint32(*pclk1)))
	}
	if *pclk2 != 0 {
		cfg = cfg.PClk2(freq.MHz(uint32(*pclk2)))
	}
	clocks := cfg.Freeze(&fl.ACR)

	ahbDiv := uint32(clocks.SysClk() / clocks.HClk())
	fmt.Printf("sysclk  %s\n", clocks.SysClk())
	fmt.Printf("hclk    %s  (AHB /%d)\n", clocks.HClk(), ahbDiv)
	fmt.Printf("pclk1   %s  (APB1 /%d)\n", clocks.PClk1(), clocks.PPre1())
	fmt.Printf("pclk2   %s  (APB2 /%d)\n", clocks.PClk2(), clocks.PPre2())
	fmt.Printf("flash   %d wait state(s)\n", fl.ACR.Latency())
	fmt.Println()
	fmt.Printf("RCC_CR    = 0x%08x\n", p.RCC.CR.Get())
	fmt.Printf("RCC_CFGR  = 0x%08x\n", p.RCC.CFGR.Get())
	fmt.Printf("FLASH_ACR = 0x%08x\n", p.FLASH.ACR.Get())
}
