// rcc/cfgr.go

package rcc

import (
	"stm32f30x-hal/device/stm32"
	"stm32f30x-hal/flash"
	"stm32f30x-hal/freq"
	"stm32f30x-hal/x/mathx"
)

// hsi is the internal RC oscillator everything derives from. The PLL input
// is hsi/2 on this part, so PLL outputs step in 4 MHz increments.
const hsi freq.Hertz = 8_000_000

// CFGR accumulates requested clock ceilings until Freeze commits them.
// Setters return a modified copy, so a configuration builds up fluently; a
// zero target means "no request" and setter order does not matter. Each
// request is a ceiling: the derived clock comes out at or below it.
type CFGR struct {
	raw    *stm32.RCC_Type
	hclk   freq.Hertz
	pclk1  freq.Hertz
	pclk2  freq.Hertz
	sysclk freq.Hertz
}

// SysClk requests a system clock of at most f.
func (c CFGR) SysClk(f freq.Hertz) CFGR {
	c.sysclk = f
	return c
}

// HClk requests an AHB clock of at most f.
func (c CFGR) HClk(f freq.Hertz) CFGR {
	c.hclk = f
	return c
}

// PClk1 requests an APB1 clock of at most f.
func (c CFGR) PClk1(f freq.Hertz) CFGR {
	c.pclk1 = f
	return c
}

// PClk2 requests an APB2 clock of at most f.
func (c CFGR) PClk2(f freq.Hertz) CFGR {
	c.pclk2 = f
	return c
}

// Freeze derives the clock tree from the requested ceilings, programs the
// flash wait states and the RCC, and returns the committed tree. The
// hardware is switched at most once and the tree never changes afterwards.
// Requests that cannot be met within the part's limits panic.
func (c CFGR) Freeze(acr *flash.ACR) Clocks {
	target := c.sysclk
	if target == 0 {
		target = hsi
	}
	pllmul := mathx.Clamp(2*uint32(target)/uint32(hsi), 2, 16)

	// A multiplier of 2 cancels the halved PLL input, so the PLL buys
	// nothing and stays off.
	usePLL := pllmul != 2
	pllmulBits := uint32(0)
	if usePLL {
		pllmulBits = pllmul - 2
	}
	sysclk := freq.Hertz(pllmul) * hsi / 2
	if sysclk > freq.MHz(72) {
		panic("rcc: sysclk exceeds 72 MHz")
	}

	hpreBits := uint32(0b0111)
	if c.hclk != 0 {
		hpreBits = hpreBitsFor(uint32(sysclk / c.hclk))
	}
	hclk := sysclk >> (hpreBits - 0b0111)
	if hclk > freq.MHz(72) {
		panic("rcc: hclk exceeds 72 MHz")
	}

	ppre1Bits := uint32(0b011)
	if c.pclk1 != 0 {
		ppre1Bits = ppreBitsFor(uint32(hclk / c.pclk1))
	}
	ppre1 := uint8(1) << (ppre1Bits - 0b011)
	pclk1 := hclk / freq.Hertz(ppre1)
	if pclk1 > freq.MHz(36) {
		panic("rcc: pclk1 exceeds 36 MHz")
	}

	ppre2Bits := uint32(0b011)
	if c.pclk2 != 0 {
		ppre2Bits = ppreBitsFor(uint32(hclk / c.pclk2))
	}
	ppre2 := uint8(1) << (ppre2Bits - 0b011)
	pclk2 := hclk / freq.Hertz(ppre2)
	if pclk2 > freq.MHz(72) {
		panic("rcc: pclk2 exceeds 72 MHz")
	}

	// Wait states first: the flash must be ready before the core speeds up.
	switch {
	case sysclk <= freq.MHz(24):
		acr.SetLatency(0)
	case sysclk <= freq.MHz(48):
		acr.SetLatency(1)
	default:
		acr.SetLatency(2)
	}

	prescalers := ppre2Bits<<stm32.RCC_CFGR_PPRE2_Pos |
		ppre1Bits<<stm32.RCC_CFGR_PPRE1_Pos |
		hpreBits<<stm32.RCC_CFGR_HPRE_Pos

	if usePLL {
		c.raw.CFGR.Set(pllmulBits << stm32.RCC_CFGR_PLLMUL_Pos)
		c.raw.CR.SetBits(stm32.RCC_CR_PLLON)
		for !c.raw.CR.HasBits(stm32.RCC_CR_PLLRDY) {
		}
		// Prescalers and the switch to the PLL go in as one write.
		v := c.raw.CFGR.Get()
		v &^= stm32.RCC_CFGR_PPRE2_Msk | stm32.RCC_CFGR_PPRE1_Msk |
			stm32.RCC_CFGR_HPRE_Msk | stm32.RCC_CFGR_SW_Msk
		c.raw.CFGR.Set(v | prescalers | stm32.RCC_CFGR_SW_PLL)
	} else {
		// Stay on HSI; just install the prescalers.
		c.raw.CFGR.Set(prescalers | stm32.RCC_CFGR_SW_HSI)
	}

	return Clocks{
		hclk:   hclk,
		pclk1:  pclk1,
		pclk2:  pclk2,
		ppre1:  ppre1,
		ppre2:  ppre2,
		sysclk: sysclk,
	}
}

// hpreBitsFor maps the sysclk/hclk ratio onto the AHB prescaler encoding.
// A ratio of zero means the request was above sysclk, which no prescaler
// can deliver.
func hpreBitsFor(ratio uint32) uint32 {
	switch {
	case ratio == 0:
		panic("rcc: hclk target exceeds sysclk")
	case ratio == 1:
		return 0b0111
	case ratio == 2:
		return 0b1000
	case ratio <= 5:
		return 0b1001
	case ratio <= 11:
		return 0b1010
	case ratio <= 39:
		return 0b1011
	case ratio <= 95:
		return 0b1100
	case ratio <= 191:
		return 0b1101
	case ratio <= 383:
		return 0b1110
	default:
		return 0b1111
	}
}

// ppreBitsFor maps an hclk/pclk ratio onto the APB prescaler encoding,
// shared by APB1 and APB2.
func ppreBitsFor(ratio uint32) uint32 {
	switch {
	case ratio == 0:
		panic("rcc: pclk target exceeds hclk")
	case ratio == 1:
		return 0b011
	case ratio == 2:
		return 0b100
	case ratio <= 5:
		return 0b101
	case ratio <= 11:
		return 0b110
	default:
		return 0b111
	}
}

// Clocks is the committed clock tree. Only Freeze builds one, so holding a
// Clocks proves the tree is programmed and final; drivers copy it freely
// and size their own dividers from it.
type Clocks struct {
	hclk   freq.Hertz
	pclk1  freq.Hertz
	pclk2  freq.Hertz
	ppre1  uint8
	ppre2  uint8
	sysclk freq.Hertz
}

// SysClk returns the system clock the core runs at.
func (c Clocks) SysClk() freq.Hertz { return c.sysclk }

// HClk returns the AHB clock.
func (c Clocks) HClk() freq.Hertz { return c.hclk }

// PClk1 returns the APB1 clock.
func (c Clocks) PClk1() freq.Hertz { return c.pclk1 }

// PClk2 returns the APB2 clock.
func (c Clocks) PClk2() freq.Hertz { return c.pclk2 }

// PPre1 returns the APB1 prescaler divisor. Timer drivers feed off twice
// pclk1 whenever this is not 1.
func (c Clocks) PPre1() uint8 { return c.ppre1 }

// PPre2 returns the APB2 prescaler divisor.
func (c Clocks) PPre2() uint8 { return c.ppre2 }
