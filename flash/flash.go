// flash/flash.go

// Package flash owns the flash interface block. The clock layer borrows
// its ACR proxy to program wait states before raising the core clock; the
// proxy existing at all is the proof that nobody else touches ACR.
package flash

import "stm32f30x-hal/device/stm32"

// Flash is the flash peripheral split into register proxies.
type Flash struct {
	ACR ACR
}

// Constrain takes ownership of the raw flash block and returns the one
// Flash value. Call it once, with the pointer from stm32.Take.
func Constrain(raw *stm32.FLASH_Type) Flash {
	return Flash{ACR: ACR{raw: raw}}
}

// ACR guards the access control register.
type ACR struct {
	raw *stm32.FLASH_Type
}

// SetLatency programs the number of wait states the flash inserts: 0 holds
// to 24 MHz, 1 to 48 MHz, 2 beyond. Only the LATENCY field is written.
func (a *ACR) SetLatency(ws uint32) {
	a.raw.ACR.ReplaceBits(ws, 0x7, stm32.FLASH_ACR_LATENCY_Pos)
}

// Latency returns the currently programmed wait states.
func (a *ACR) Latency() uint32 {
	return (a.raw.ACR.Get() & stm32.FLASH_ACR_LATENCY_Msk) >> stm32.FLASH_ACR_LATENCY_Pos
}
