// rcc/rcc.go

// Package rcc owns the reset and clock control block. Constrain splits the
// raw peripheral into the three bus controllers and the clock
// configuration; Freeze (see cfgr.go) commits a clock tree derived from
// requested ceilings and hands back the immutable result.
package rcc

import "stm32f30x-hal/device/stm32"

// RCC is the reset and clock control peripheral, split into independently
// borrowable pieces.
type RCC struct {
	AHB  AHB
	APB1 APB1
	APB2 APB2
	CFGR CFGR
}

// Constrain takes ownership of the raw RCC block. Call it once, with the
// pointer from stm32.Take; everything clock- and reset-related goes through
// the returned value from then on.
func Constrain(raw *stm32.RCC_Type) *RCC {
	return &RCC{
		AHB:  AHB{raw: raw},
		APB1: APB1{raw: raw},
		APB2: APB2{raw: raw},
		CFGR: CFGR{raw: raw},
	}
}

// AHBPeripheral identifies a peripheral on the AHB bus by its bit, which
// sits at the same position in AHBENR and AHBRSTR.
type AHBPeripheral uint32

const (
	IOPA AHBPeripheral = stm32.RCC_AHBENR_IOPAEN
	IOPB AHBPeripheral = stm32.RCC_AHBENR_IOPBEN
	IOPC AHBPeripheral = stm32.RCC_AHBENR_IOPCEN
	IOPD AHBPeripheral = stm32.RCC_AHBENR_IOPDEN
	IOPE AHBPeripheral = stm32.RCC_AHBENR_IOPEEN
	IOPF AHBPeripheral = stm32.RCC_AHBENR_IOPFEN
)

// APB1Peripheral identifies a peripheral on the slow APB bus (36 MHz
// ceiling) by its APB1ENR/APB1RSTR bit.
type APB1Peripheral uint32

const (
	TIM2   APB1Peripheral = 0x1 << 0
	TIM3   APB1Peripheral = 0x1 << 1
	TIM4   APB1Peripheral = 0x1 << 2
	TIM6   APB1Peripheral = 0x1 << 4
	TIM7   APB1Peripheral = 0x1 << 5
	WWDG   APB1Peripheral = 0x1 << 11
	SPI2   APB1Peripheral = 0x1 << 14
	SPI3   APB1Peripheral = 0x1 << 15
	USART2 APB1Peripheral = 0x1 << 17
	USART3 APB1Peripheral = 0x1 << 18
	UART4  APB1Peripheral = 0x1 << 19
	UART5  APB1Peripheral = 0x1 << 20
	I2C1   APB1Peripheral = 0x1 << 21
	I2C2   APB1Peripheral = 0x1 << 22
	USB    APB1Peripheral = 0x1 << 23
	CAN    APB1Peripheral = 0x1 << 25
	PWR    APB1Peripheral = 0x1 << 28
	DAC    APB1Peripheral = 0x1 << 29
)

// APB2Peripheral identifies a peripheral on the fast APB bus by its
// APB2ENR/APB2RSTR bit.
type APB2Peripheral uint32

const (
	SYSCFG APB2Peripheral = 0x1 << 0
	TIM1   APB2Peripheral = 0x1 << 11
	SPI1   APB2Peripheral = 0x1 << 12
	TIM8   APB2Peripheral = 0x1 << 13
	USART1 APB2Peripheral = 0x1 << 14
	TIM15  APB2Peripheral = 0x1 << 16
	TIM16  APB2Peripheral = 0x1 << 17
	TIM17  APB2Peripheral = 0x1 << 18
)

// AHB gates clocks and pulses resets for peripherals on the AHB bus.
// gpio.Split borrows it to power a bank up.
type AHB struct {
	raw *stm32.RCC_Type
}

// EnableClock ungates the peripheral clock. Safe to call repeatedly.
func (b *AHB) EnableClock(p AHBPeripheral) {
	b.raw.AHBENR.SetBits(uint32(p))
}

// Reset pulses the peripheral reset line: asserted, then released.
func (b *AHB) Reset(p AHBPeripheral) {
	b.raw.AHBRSTR.SetBits(uint32(p))
	b.raw.AHBRSTR.ClearBits(uint32(p))
}

// APB1 gates clocks and pulses resets for peripherals on APB1.
type APB1 struct {
	raw *stm32.RCC_Type
}

// EnableClock ungates the peripheral clock. Safe to call repeatedly.
func (b *APB1) EnableClock(p APB1Peripheral) {
	b.raw.APB1ENR.SetBits(uint32(p))
}

// Reset pulses the peripheral reset line: asserted, then released.
func (b *APB1) Reset(p APB1Peripheral) {
	b.raw.APB1RSTR.SetBits(uint32(p))
	b.raw.APB1RSTR.ClearBits(uint32(p))
}

// APB2 gates clocks and pulses resets for peripherals on APB2.
type APB2 struct {
	raw *stm32.RCC_Type
}

// EnableClock ungates the peripheral clock. Safe to call repeatedly.
func (b *APB2) EnableClock(p APB2Peripheral) {
	b.raw.APB2ENR.SetBits(uint32(p))
}

// Reset pulses the peripheral reset line: asserted, then released.
func (b *APB2) Reset(p APB2Peripheral) {
	b.raw.APB2RSTR.SetBits(uint32(p))
	b.raw.APB2RSTR.ClearBits(uint32(p))
}
