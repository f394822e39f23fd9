//go:build stm32f30x

package stm32

import "unsafe"

// STM32F30x memory map: RCC and FLASH sit on AHB1, the I/O ports on AHB2
// with GPIOA first and 0x400 of aperture per port.
const (
	rccBase   uintptr = 0x4002_1000
	flashBase uintptr = 0x4002_2000
	gpioBase  uintptr = 0x4800_0000
	gpioStep  uintptr = 0x400
)

var (
	rcc   = (*RCC_Type)(unsafe.Pointer(rccBase))
	flash = (*FLASH_Type)(unsafe.Pointer(flashBase))
	gpioa = (*GPIO_Type)(unsafe.Pointer(gpioBase + 0*gpioStep))
	gpiob = (*GPIO_Type)(unsafe.Pointer(gpioBase + 1*gpioStep))
	gpioc = (*GPIO_Type)(unsafe.Pointer(gpioBase + 2*gpioStep))
	gpiod = (*GPIO_Type)(unsafe.Pointer(gpioBase + 3*gpioStep))
	gpioe = (*GPIO_Type)(unsafe.Pointer(gpioBase + 4*gpioStep))
	gpiof = (*GPIO_Type)(unsafe.Pointer(gpioBase + 5*gpioStep))
)
