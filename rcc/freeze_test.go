//go:build !stm32f30x

package rcc

import (
	"testing"

	"stm32f30x-hal/device/stm32"
	"stm32f30x-hal/flash"
	"stm32f30x-hal/freq"
)

func freshRCC(t *testing.T) (*RCC, flash.Flash, *stm32.Peripherals) {
	t.Helper()
	stm32.SimReset()
	p := stm32.Take()
	return Constrain(p.RCC), flash.Constrain(p.FLASH), p
}

func cfgrField(v, msk uint32, pos uint8) uint32 {
	return (v & msk) >> pos
}

func TestFreezeDefaultsToHSI(t *testing.T) {
	rc, fl, p := freshRCC(t)

	clocks := rc.CFGR.Freeze(&fl.ACR)

	if clocks.SysClk() != freq.MHz(8) || clocks.HClk() != freq.MHz(8) ||
		clocks.PClk1() != freq.MHz(8) || clocks.PClk2() != freq.MHz(8) {
		t.Fatalf("default tree = %v/%v/%v/%v, want 8 MHz everywhere",
			clocks.SysClk(), clocks.HClk(), clocks.PClk1(), clocks.PClk2())
	}
	if clocks.PPre1() != 1 || clocks.PPre2() != 1 {
		t.Fatalf("default divisors = %d/%d, want 1/1", clocks.PPre1(), clocks.PPre2())
	}

	cfgr := p.RCC.CFGR.Get()
	if sw := cfgrField(cfgr, stm32.RCC_CFGR_SW_Msk, stm32.RCC_CFGR_SW_Pos); sw != stm32.RCC_CFGR_SW_HSI {
		t.Errorf("SW = %d, want HSI", sw)
	}
	if hpre := cfgrField(cfgr, stm32.RCC_CFGR_HPRE_Msk, stm32.RCC_CFGR_HPRE_Pos); hpre != 0b0111 {
		t.Errorf("HPRE = %04b, want 0111", hpre)
	}
	if ppre1 := cfgrField(cfgr, stm32.RCC_CFGR_PPRE1_Msk, stm32.RCC_CFGR_PPRE1_Pos); ppre1 != 0b011 {
		t.Errorf("PPRE1 = %03b, want 011", ppre1)
	}
	if p.RCC.CR.HasBits(stm32.RCC_CR_PLLON) {
		t.Error("PLL enabled for the 8 MHz default tree")
	}
	if got := fl.ACR.Latency(); got != 0 {
		t.Errorf("latency = %d, want 0", got)
	}
}

func TestFreeze36MHzWith18MHzPClk1(t *testing.T) {
	rc, fl, p := freshRCC(t)

	clocks := rc.CFGR.
		SysClk(freq.MHz(36)).
		PClk1(freq.MHz(18)).
		Freeze(&fl.ACR)

	if clocks.SysClk() != freq.MHz(36) {
		t.Fatalf("sysclk = %v, want 36 MHz", clocks.SysClk())
	}
	if clocks.HClk() != freq.MHz(36) {
		t.Fatalf("hclk = %v, want 36 MHz", clocks.HClk())
	}
	if clocks.PClk1() != freq.MHz(18) || clocks.PPre1() != 2 {
		t.Fatalf("pclk1 = %v (/%d), want 18 MHz (/2)", clocks.PClk1(), clocks.PPre1())
	}
	if clocks.PClk2() != freq.MHz(36) || clocks.PPre2() != 1 {
		t.Fatalf("pclk2 = %v (/%d), want 36 MHz (/1)", clocks.PClk2(), clocks.PPre2())
	}

	cfgr := p.RCC.CFGR.Get()
	// 36 MHz needs pllmul 9, encoded as 7.
	if mul := cfgrField(cfgr, stm32.RCC_CFGR_PLLMUL_Msk, stm32.RCC_CFGR_PLLMUL_Pos); mul != 7 {
		t.Errorf("PLLMUL bits = %d, want 7", mul)
	}
	if sw := cfgrField(cfgr, stm32.RCC_CFGR_SW_Msk, stm32.RCC_CFGR_SW_Pos); sw != stm32.RCC_CFGR_SW_PLL {
		t.Errorf("SW = %d, want PLL", sw)
	}
	if ppre1 := cfgrField(cfgr, stm32.RCC_CFGR_PPRE1_Msk, stm32.RCC_CFGR_PPRE1_Pos); ppre1 != 0b100 {
		t.Errorf("PPRE1 = %03b, want 100", ppre1)
	}
	if !p.RCC.CR.HasBits(stm32.RCC_CR_PLLON) {
		t.Error("PLL not enabled")
	}
	if got := fl.ACR.Latency(); got != 1 {
		t.Errorf("latency = %d, want 1", got)
	}
}

func TestFreeze48MHzDefaultPClk1Panics(t *testing.T) {
	rc, fl, _ := freshRCC(t)

	// 48 MHz sysclk with no APB1 request leaves pclk1 at 48 MHz, over the
	// 36 MHz bus limit.
	expectPanic(t, "pclk1 exceeds 36 MHz", func() {
		rc.CFGR.SysClk(freq.MHz(48)).Freeze(&fl.ACR)
	})
}

func TestFreezeHClkPrescale(t *testing.T) {
	rc, fl, p := freshRCC(t)

	clocks := rc.CFGR.
		SysClk(freq.MHz(64)).
		HClk(freq.MHz(32)).
		PClk1(freq.MHz(32)).
		PClk2(freq.MHz(32)).
		Freeze(&fl.ACR)

	if clocks.SysClk() != freq.MHz(64) || clocks.HClk() != freq.MHz(32) {
		t.Fatalf("sysclk/hclk = %v/%v, want 64/32 MHz", clocks.SysClk(), clocks.HClk())
	}
	if clocks.PClk1() != freq.MHz(32) || clocks.PClk2() != freq.MHz(32) {
		t.Fatalf("pclk1/pclk2 = %v/%v, want 32/32 MHz", clocks.PClk1(), clocks.PClk2())
	}

	cfgr := p.RCC.CFGR.Get()
	if hpre := cfgrField(cfgr, stm32.RCC_CFGR_HPRE_Msk, stm32.RCC_CFGR_HPRE_Pos); hpre != 0b1000 {
		t.Errorf("HPRE = %04b, want 1000 (divide by 2)", hpre)
	}
	// 64 MHz is past the 48 MHz one-wait-state ceiling.
	if got := fl.ACR.Latency(); got != 2 {
		t.Errorf("latency = %d, want 2", got)
	}
}

func TestFreezeHClkAboveSysClkPanics(t *testing.T) {
	rc, fl, _ := freshRCC(t)

	expectPanic(t, "hclk target exceeds sysclk", func() {
		rc.CFGR.SysClk(freq.MHz(24)).HClk(freq.MHz(48)).Freeze(&fl.ACR)
	})
}

func TestFreezePLLMulSelection(t *testing.T) {
	type C struct {
		target  freq.Hertz
		sysclk  freq.Hertz
		pll     bool
		mulBits uint32
	}
	cases := []C{
		{freq.MHz(1), freq.MHz(8), false, 0},  // clamped up to the bypass multiplier
		{freq.MHz(8), freq.MHz(8), false, 0},  // exact bypass
		{freq.MHz(10), freq.MHz(8), false, 0}, // truncates to bypass
		{freq.MHz(12), freq.MHz(12), true, 1},
		{freq.MHz(16), freq.MHz(16), true, 2},
		{freq.MHz(24), freq.MHz(24), true, 4},
		{freq.MHz(36), freq.MHz(36), true, 7},
		{freq.MHz(48), freq.MHz(48), true, 10},
		{freq.MHz(64), freq.MHz(64), true, 14},
		{freq.MHz(72), freq.MHz(64), true, 14}, // clamped down to x16
	}
	for _, c := range cases {
		rc, fl, p := freshRCC(t)

		cfg := rc.CFGR.SysClk(c.target)
		if c.sysclk > freq.MHz(36) {
			// Keep APB1 under its limit so the sweep exercises only the
			// multiplier selection.
			cfg = cfg.PClk1(c.sysclk / 2)
		}
		clocks := cfg.Freeze(&fl.ACR)

		if clocks.SysClk() != c.sysclk {
			t.Errorf("target %v: sysclk = %v, want %v", c.target, clocks.SysClk(), c.sysclk)
		}
		if pllOn := p.RCC.CR.HasBits(stm32.RCC_CR_PLLON); pllOn != c.pll {
			t.Errorf("target %v: PLLON = %t, want %t", c.target, pllOn, c.pll)
		}
		if !c.pll {
			continue
		}
		cfgr := p.RCC.CFGR.Get()
		if mul := cfgrField(cfgr, stm32.RCC_CFGR_PLLMUL_Msk, stm32.RCC_CFGR_PLLMUL_Pos); mul != c.mulBits {
			t.Errorf("target %v: PLLMUL bits = %d, want %d", c.target, mul, c.mulBits)
		}
	}
}

func TestFreezeSetterOrderIrrelevant(t *testing.T) {
	rc, fl, p := freshRCC(t)
	a := rc.CFGR.SysClk(freq.MHz(36)).PClk1(freq.MHz(18)).PClk2(freq.MHz(36)).Freeze(&fl.ACR)
	cfgrA, acrA := p.RCC.CFGR.Get(), p.FLASH.ACR.Get()

	rc, fl, p = freshRCC(t)
	b := rc.CFGR.PClk2(freq.MHz(36)).PClk1(freq.MHz(18)).SysClk(freq.MHz(36)).Freeze(&fl.ACR)
	cfgrB, acrB := p.RCC.CFGR.Get(), p.FLASH.ACR.Get()

	if a != b {
		t.Fatalf("clock trees differ: %+v vs %+v", a, b)
	}
	if cfgrA != cfgrB || acrA != acrB {
		t.Fatalf("register images differ: CFGR %#x/%#x, ACR %#x/%#x", cfgrA, cfgrB, acrA, acrB)
	}
}

func TestFreezeLatencyThresholds(t *testing.T) {
	type C struct {
		sysclk freq.Hertz
		pclk1  freq.Hertz
		want   uint32
	}
	for _, c := range []C{
		{freq.MHz(8), 0, 0},
		{freq.MHz(24), 0, 0},
		{freq.MHz(28), 0, 1},
		{freq.MHz(48), freq.MHz(24), 1},
		{freq.MHz(52), freq.MHz(26), 2},
		{freq.MHz(64), freq.MHz(32), 2},
	} {
		rc, fl, _ := freshRCC(t)
		cfg := rc.CFGR.SysClk(c.sysclk)
		if c.pclk1 != 0 {
			cfg = cfg.PClk1(c.pclk1)
		}
		cfg.Freeze(&fl.ACR)
		if got := fl.ACR.Latency(); got != c.want {
			t.Errorf("sysclk %v: latency = %d, want %d", c.sysclk, got, c.want)
		}
	}
}
