// gpio/periphio.go

package gpio

import (
	"errors"

	pgpio "periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"

	"stm32f30x-hal/hal"
)

// ErrNoPWM reports that pins on this layer cannot generate PWM; that takes
// a timer peripheral.
var ErrNoPWM = errors.New("gpio: pwm not supported")

// PeriphPin wraps an output pin as a periph.io gpio.PinOut so tooling
// written against periph (reset strobes, LED drivers) can drive it. The
// name and number are reporting-only; pass pin.String() and pin.Number()
// unless the board defines friendlier ones.
func PeriphPin(p hal.OutputPin, name string, number int) pgpio.PinOut {
	return &periphOut{p: p, name: name, number: number}
}

type periphOut struct {
	p      hal.OutputPin
	name   string
	number int
}

var _ pgpio.PinOut = (*periphOut)(nil)

func (o *periphOut) Name() string   { return o.name }
func (o *periphOut) Number() int    { return o.number }
func (o *periphOut) String() string { return o.name }

func (o *periphOut) Function() string {
	if o.p.IsHigh() {
		return "Out/High"
	}
	return "Out/Low"
}

// Halt parks the pin low.
func (o *periphOut) Halt() error {
	o.p.SetLow()
	return nil
}

func (o *periphOut) Out(l pgpio.Level) error {
	if l == pgpio.High {
		o.p.SetHigh()
	} else {
		o.p.SetLow()
	}
	return nil
}

func (o *periphOut) PWM(duty pgpio.Duty, f physic.Frequency) error {
	return ErrNoPWM
}
