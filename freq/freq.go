// freq/freq.go

// Package freq provides the integer frequency type the clock tree is
// expressed in.
package freq

import "stm32f30x-hal/x/strconvx"

// Hertz is a frequency in cycles per second. Clock arithmetic stays in
// uint32; the fastest clock on this part is 72 MHz, nowhere near overflow.
type Hertz uint32

// Hz, KHz and MHz build a Hertz from the given unit count.
func Hz(n uint32) Hertz  { return Hertz(n) }
func KHz(n uint32) Hertz { return Hertz(n * 1_000) }
func MHz(n uint32) Hertz { return Hertz(n * 1_000_000) }

// String renders with the largest unit that divides exactly: "8 MHz",
// "32768 Hz".
func (f Hertz) String() string {
	switch {
	case f >= 1_000_000 && f%1_000_000 == 0:
		return strconvx.Itoa(int(f/1_000_000)) + " MHz"
	case f >= 1_000 && f%1_000 == 0:
		return strconvx.Itoa(int(f/1_000)) + " kHz"
	}
	return strconvx.Itoa(int(f)) + " Hz"
}
