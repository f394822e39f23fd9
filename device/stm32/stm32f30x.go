// device/stm32/stm32f30x.go

// Package stm32 holds the STM32F30x register map this module programs:
// block layouts, bitfield constants and the peripheral singletons. Address
// arithmetic stays inside this package; everything above works through the
// pointers handed out by Take.
//
// MCU builds (-tags stm32f30x) map the blocks at their bus addresses. Host
// builds back them with plain memory so the whole stack runs and tests on a
// dev machine, see blocks_host.go.
package stm32

import (
	"sync/atomic"

	"stm32f30x-hal/internal/volatile"
)

// RCC_Type is the reset and clock control block.
type RCC_Type struct {
	CR       volatile.Register32
	CFGR     volatile.Register32
	CIR      volatile.Register32
	APB2RSTR volatile.Register32
	APB1RSTR volatile.Register32
	AHBENR   volatile.Register32
	APB2ENR  volatile.Register32
	APB1ENR  volatile.Register32
	BDCR     volatile.Register32
	CSR      volatile.Register32
	AHBRSTR  volatile.Register32
	CFGR2    volatile.Register32
	CFGR3    volatile.Register32
}

// FLASH_Type is the flash interface block.
type FLASH_Type struct {
	ACR     volatile.Register32
	KEYR    volatile.Register32
	OPTKEYR volatile.Register32
	SR      volatile.Register32
	CR      volatile.Register32
	AR      volatile.Register32
	_       volatile.Register32
	OBR     volatile.Register32
	WRPR    volatile.Register32
}

// GPIO_Type is one I/O port block. All six ports share the layout.
type GPIO_Type struct {
	MODER   volatile.Register32
	OTYPER  volatile.Register32
	OSPEEDR volatile.Register32
	PUPDR   volatile.Register32
	IDR     volatile.Register32
	ODR     volatile.Register32
	BSRR    volatile.Register32
	LCKR    volatile.Register32
	AFRL    volatile.Register32
	AFRH    volatile.Register32
	BRR     volatile.Register32
}

// RCC_CR: clock control.
const (
	RCC_CR_HSION  = 0x1 << 0
	RCC_CR_HSIRDY = 0x1 << 1
	RCC_CR_PLLON  = 0x1 << 24
	RCC_CR_PLLRDY = 0x1 << 25
)

// RCC_CFGR: clock configuration.
const (
	RCC_CFGR_SW_Pos = 0
	RCC_CFGR_SW_Msk = 0x3 << RCC_CFGR_SW_Pos
	RCC_CFGR_SW_HSI = 0x0
	RCC_CFGR_SW_PLL = 0x2

	RCC_CFGR_SWS_Pos = 2
	RCC_CFGR_SWS_Msk = 0x3 << RCC_CFGR_SWS_Pos

	RCC_CFGR_HPRE_Pos = 4
	RCC_CFGR_HPRE_Msk = 0xF << RCC_CFGR_HPRE_Pos

	RCC_CFGR_PPRE1_Pos = 8
	RCC_CFGR_PPRE1_Msk = 0x7 << RCC_CFGR_PPRE1_Pos

	RCC_CFGR_PPRE2_Pos = 11
	RCC_CFGR_PPRE2_Msk = 0x7 << RCC_CFGR_PPRE2_Pos

	RCC_CFGR_PLLMUL_Pos = 18
	RCC_CFGR_PLLMUL_Msk = 0xF << RCC_CFGR_PLLMUL_Pos
)

// RCC_AHBENR / RCC_AHBRSTR: the I/O port bits share positions in both.
const (
	RCC_AHBENR_IOPAEN = 0x1 << 17
	RCC_AHBENR_IOPBEN = 0x1 << 18
	RCC_AHBENR_IOPCEN = 0x1 << 19
	RCC_AHBENR_IOPDEN = 0x1 << 20
	RCC_AHBENR_IOPEEN = 0x1 << 21
	RCC_AHBENR_IOPFEN = 0x1 << 22
)

// FLASH_ACR.
const (
	FLASH_ACR_LATENCY_Pos = 0
	FLASH_ACR_LATENCY_Msk = 0x7 << FLASH_ACR_LATENCY_Pos
)

// Peripherals is the full set of blocks this layer manages. Whoever holds
// the value owns the hardware.
type Peripherals struct {
	RCC   *RCC_Type
	FLASH *FLASH_Type
	GPIOA *GPIO_Type
	GPIOB *GPIO_Type
	GPIOC *GPIO_Type
	GPIOD *GPIO_Type
	GPIOE *GPIO_Type
	GPIOF *GPIO_Type
}

var taken atomic.Bool

// Take hands out the peripheral singletons. It panics on a second call:
// the returned value is the root ownership token everything else is split
// from, and there must be at most one.
func Take() *Peripherals {
	if !taken.CompareAndSwap(false, true) {
		panic("stm32: peripherals taken twice")
	}
	return &Peripherals{
		RCC:   rcc,
		FLASH: flash,
		GPIOA: gpioa,
		GPIOB: gpiob,
		GPIOC: gpioc,
		GPIOD: gpiod,
		GPIOE: gpioe,
		GPIOF: gpiof,
	}
}
