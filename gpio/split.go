// gpio/split.go

package gpio

import (
	"stm32f30x-hal/device/stm32"
	"stm32f30x-hal/rcc"
)

// Each bank splits into the same shape: the four register proxies plus one
// pin value per implemented pin, all starting in the bank's reset mode,
// floating input. Split enables the bank clock and pulses its reset first,
// so the pins really are in that mode.
//
// Split hands every pin out exactly once. Calling a splitter twice mints
// aliasing proxies and duplicate pins; nothing here prevents that, it is
// the caller's contract, same as for stm32.Take.

func splitBank(raw *stm32.GPIO_Type, ahb *rcc.AHB, p rcc.AHBPeripheral) (MODER, OTYPER, PUPDR, AFR) {
	ahb.EnableClock(p)
	ahb.Reset(p)
	return MODER{raw}, OTYPER{raw}, PUPDR{raw}, AFR{raw}
}

func pinAt(raw *stm32.GPIO_Type, bank byte, n uint8) FloatingInput {
	return FloatingInput{inputPin{pin{raw: raw, bank: bank, n: n}}}
}

// PartsA is bank A split into proxies and pins. PA13, PA14 and PA15 carry
// SWD/JTAG out of reset and are not handed out.
type PartsA struct {
	MODER  MODER
	OTYPER OTYPER
	PUPDR  PUPDR
	AFR    AFR

	PA0  FloatingInput
	PA1  FloatingInput
	PA2  FloatingInput
	PA3  FloatingInput
	PA4  FloatingInput
	PA5  FloatingInput
	PA6  FloatingInput
	PA7  FloatingInput
	PA8  FloatingInput
	PA9  FloatingInput
	PA10 FloatingInput
	PA11 FloatingInput
	PA12 FloatingInput
}

// SplitA powers bank A up and splits it. Pass the block pointer from
// stm32.Take and the AHB controller from rcc.Constrain.
func SplitA(raw *stm32.GPIO_Type, ahb *rcc.AHB) *PartsA {
	m, o, pu, a := splitBank(raw, ahb, rcc.IOPA)
	return &PartsA{
		MODER: m, OTYPER: o, PUPDR: pu, AFR: a,
		PA0:  pinAt(raw, 'A', 0),
		PA1:  pinAt(raw, 'A', 1),
		PA2:  pinAt(raw, 'A', 2),
		PA3:  pinAt(raw, 'A', 3),
		PA4:  pinAt(raw, 'A', 4),
		PA5:  pinAt(raw, 'A', 5),
		PA6:  pinAt(raw, 'A', 6),
		PA7:  pinAt(raw, 'A', 7),
		PA8:  pinAt(raw, 'A', 8),
		PA9:  pinAt(raw, 'A', 9),
		PA10: pinAt(raw, 'A', 10),
		PA11: pinAt(raw, 'A', 11),
		PA12: pinAt(raw, 'A', 12),
	}
}

// PartsB is bank B split into proxies and pins. PB3 and PB4 carry JTAG out
// of reset and are not handed out.
type PartsB struct {
	MODER  MODER
	OTYPER OTYPER
	PUPDR  PUPDR
	AFR    AFR

	PB0  FloatingInput
	PB1  FloatingInput
	PB2  FloatingInput
	PB5  FloatingInput
	PB6  FloatingInput
	PB7  FloatingInput
	PB8  FloatingInput
	PB9  FloatingInput
	PB10 FloatingInput
	PB11 FloatingInput
	PB12 FloatingInput
	PB13 FloatingInput
	PB14 FloatingInput
	PB15 FloatingInput
}

// SplitB powers bank B up and splits it.
func SplitB(raw *stm32.GPIO_Type, ahb *rcc.AHB) *PartsB {
	m, o, pu, a := splitBank(raw, ahb, rcc.IOPB)
	return &PartsB{
		MODER: m, OTYPER: o, PUPDR: pu, AFR: a,
		PB0:  pinAt(raw, 'B', 0),
		PB1:  pinAt(raw, 'B', 1),
		PB2:  pinAt(raw, 'B', 2),
		PB5:  pinAt(raw, 'B', 5),
		PB6:  pinAt(raw, 'B', 6),
		PB7:  pinAt(raw, 'B', 7),
		PB8:  pinAt(raw, 'B', 8),
		PB9:  pinAt(raw, 'B', 9),
		PB10: pinAt(raw, 'B', 10),
		PB11: pinAt(raw, 'B', 11),
		PB12: pinAt(raw, 'B', 12),
		PB13: pinAt(raw, 'B', 13),
		PB14: pinAt(raw, 'B', 14),
		PB15: pinAt(raw, 'B', 15),
	}
}

// PartsC is bank C split into proxies and pins.
type PartsC struct {
	MODER  MODER
	OTYPER OTYPER
	PUPDR  PUPDR
	AFR    AFR

	PC0  FloatingInput
	PC1  FloatingInput
	PC2  FloatingInput
	PC3  FloatingInput
	PC4  FloatingInput
	PC5  FloatingInput
	PC6  FloatingInput
	PC7  FloatingInput
	PC8  FloatingInput
	PC9  FloatingInput
	PC10 FloatingInput
	PC11 FloatingInput
	PC12 FloatingInput
	PC13 FloatingInput
	PC14 FloatingInput
	PC15 FloatingInput
}

// SplitC powers bank C up and splits it.
func SplitC(raw *stm32.GPIO_Type, ahb *rcc.AHB) *PartsC {
	m, o, pu, a := splitBank(raw, ahb, rcc.IOPC)
	return &PartsC{
		MODER: m, OTYPER: o, PUPDR: pu, AFR: a,
		PC0:  pinAt(raw, 'C', 0),
		PC1:  pinAt(raw, 'C', 1),
		PC2:  pinAt(raw, 'C', 2),
		PC3:  pinAt(raw, 'C', 3),
		PC4:  pinAt(raw, 'C', 4),
		PC5:  pinAt(raw, 'C', 5),
		PC6:  pinAt(raw, 'C', 6),
		PC7:  pinAt(raw, 'C', 7),
		PC8:  pinAt(raw, 'C', 8),
		PC9:  pinAt(raw, 'C', 9),
		PC10: pinAt(raw, 'C', 10),
		PC11: pinAt(raw, 'C', 11),
		PC12: pinAt(raw, 'C', 12),
		PC13: pinAt(raw, 'C', 13),
		PC14: pinAt(raw, 'C', 14),
		PC15: pinAt(raw, 'C', 15),
	}
}

// PartsD is bank D split into proxies and pins.
type PartsD struct {
	MODER  MODER
	OTYPER OTYPER
	PUPDR  PUPDR
	AFR    AFR

	PD0  FloatingInput
	PD1  FloatingInput
	PD2  FloatingInput
	PD3  FloatingInput
	PD4  FloatingInput
	PD5  FloatingInput
	PD6  FloatingInput
	PD7  FloatingInput
	PD8  FloatingInput
	PD9  FloatingInput
	PD10 FloatingInput
	PD11 FloatingInput
	PD12 FloatingInput
	PD13 FloatingInput
	PD14 FloatingInput
	PD15 FloatingInput
}

// SplitD powers bank D up and splits it.
func SplitD(raw *stm32.GPIO_Type, ahb *rcc.AHB) *PartsD {
	m, o, pu, a := splitBank(raw, ahb, rcc.IOPD)
	return &PartsD{
		MODER: m, OTYPER: o, PUPDR: pu, AFR: a,
		PD0:  pinAt(raw, 'D', 0),
		PD1:  pinAt(raw, 'D', 1),
		PD2:  pinAt(raw, 'D', 2),
		PD3:  pinAt(raw, 'D', 3),
		PD4:  pinAt(raw, 'D', 4),
		PD5:  pinAt(raw, 'D', 5),
		PD6:  pinAt(raw, 'D', 6),
		PD7:  pinAt(raw, 'D', 7),
		PD8:  pinAt(raw, 'D', 8),
		PD9:  pinAt(raw, 'D', 9),
		PD10: pinAt(raw, 'D', 10),
		PD11: pinAt(raw, 'D', 11),
		PD12: pinAt(raw, 'D', 12),
		PD13: pinAt(raw, 'D', 13),
		PD14: pinAt(raw, 'D', 14),
		PD15: pinAt(raw, 'D', 15),
	}
}

// PartsE is bank E split into proxies and pins.
type PartsE struct {
	MODER  MODER
	OTYPER OTYPER
	PUPDR  PUPDR
	AFR    AFR

	PE0  FloatingInput
	PE1  FloatingInput
	PE2  FloatingInput
	PE3  FloatingInput
	PE4  FloatingInput
	PE5  FloatingInput
	PE6  FloatingInput
	PE7  FloatingInput
	PE8  FloatingInput
	PE9  FloatingInput
	PE10 FloatingInput
	PE11 FloatingInput
	PE12 FloatingInput
	PE13 FloatingInput
	PE14 FloatingInput
	PE15 FloatingInput
}

// SplitE powers bank E up and splits it.
func SplitE(raw *stm32.GPIO_Type, ahb *rcc.AHB) *PartsE {
	m, o, pu, a := splitBank(raw, ahb, rcc.IOPE)
	return &PartsE{
		MODER: m, OTYPER: o, PUPDR: pu, AFR: a,
		PE0:  pinAt(raw, 'E', 0),
		PE1:  pinAt(raw, 'E', 1),
		PE2:  pinAt(raw, 'E', 2),
		PE3:  pinAt(raw, 'E', 3),
		PE4:  pinAt(raw, 'E', 4),
		PE5:  pinAt(raw, 'E', 5),
		PE6:  pinAt(raw, 'E', 6),
		PE7:  pinAt(raw, 'E', 7),
		PE8:  pinAt(raw, 'E', 8),
		PE9:  pinAt(raw, 'E', 9),
		PE10: pinAt(raw, 'E', 10),
		PE11: pinAt(raw, 'E', 11),
		PE12: pinAt(raw, 'E', 12),
		PE13: pinAt(raw, 'E', 13),
		PE14: pinAt(raw, 'E', 14),
		PE15: pinAt(raw, 'E', 15),
	}
}

// PartsF is bank F split into proxies and pins. Only the pins bonded out
// in the supported packages are present.
type PartsF struct {
	MODER  MODER
	OTYPER OTYPER
	PUPDR  PUPDR
	AFR    AFR

	PF0  FloatingInput
	PF1  FloatingInput
	PF2  FloatingInput
	PF4  FloatingInput
	PF6  FloatingInput
	PF9  FloatingInput
	PF10 FloatingInput
}

// SplitF powers bank F up and splits it.
func SplitF(raw *stm32.GPIO_Type, ahb *rcc.AHB) *PartsF {
	m, o, pu, a := splitBank(raw, ahb, rcc.IOPF)
	return &PartsF{
		MODER: m, OTYPER: o, PUPDR: pu, AFR: a,
		PF0:  pinAt(raw, 'F', 0),
		PF1:  pinAt(raw, 'F', 1),
		PF2:  pinAt(raw, 'F', 2),
		PF4:  pinAt(raw, 'F', 4),
		PF6:  pinAt(raw, 'F', 6),
		PF9:  pinAt(raw, 'F', 9),
		PF10: pinAt(raw, 'F', 10),
	}
}
