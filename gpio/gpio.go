// gpio/gpio.go

// Package gpio models I/O pins as move-style typestate values: a pin's
// electrical mode is part of its Go type, and reconfiguring it consumes the
// old value and returns one of the new type. Level operations exist only on
// the types that can perform them, so driving an input or re-pulling an
// alternate-function pin is a compile error rather than a field corruption.
//
// Transitions take the receiver by value and hand back the successor; the
// value transitioned away from is dead and must not be used again. Go does
// not enforce that the way a move-checking compiler would, so it is part of
// this package's contract, the same way (*sync.Mutex).Unlock-before-Lock
// is.
//
// Mode changes need the bank's register proxies (MODER, and PUPDR or OTYPER
// or AFR depending on the target mode), which only Split hands out; holding
// them is the static proof of exclusive register access. Level set/get on
// output pins goes through BSRR and ODR, which need no proxy: BSRR writes
// are atomic by construction and ODR reads have no side effects.
package gpio

import (
	"stm32f30x-hal/device/stm32"
	"stm32f30x-hal/hal"
	"stm32f30x-hal/x/strconvx"
)

var (
	_ hal.OutputPin = PushPullOutput{}
	_ hal.OutputPin = OpenDrainOutput{}
	_ hal.InputPin  = FloatingInput{}
	_ hal.InputPin  = PullUpInput{}
	_ hal.InputPin  = PullDownInput{}
)

// ---- register proxies ----

// MODER guards a bank's mode register. Every transition borrows it.
type MODER struct {
	raw *stm32.GPIO_Type
}

// OTYPER guards a bank's output type register.
type OTYPER struct {
	raw *stm32.GPIO_Type
}

// PUPDR guards a bank's pull-up/pull-down register.
type PUPDR struct {
	raw *stm32.GPIO_Type
}

// AFR guards a bank's pair of alternate function registers. The low and
// high halves cover pins 0-7 and 8-15; which half a transition writes
// follows from the pin index, so the pair is owned as one unit.
type AFR struct {
	raw *stm32.GPIO_Type
}

// ---- pin core ----

// MODER field values.
const (
	modeInput  = 0b00
	modeOutput = 0b01
	modeAltFn  = 0b10
)

// PUPDR field values.
const (
	pullNone = 0b00
	pullUp   = 0b01
	pullDown = 0b10
)

// pin is the identity every state type wraps: bank block, bank letter,
// index. The state types embed it, which is what promotes the transition
// methods onto all of them.
type pin struct {
	raw  *stm32.GPIO_Type
	bank byte
	n    uint8
}

// String returns the conventional pin name, e.g. "PA5".
func (p pin) String() string {
	return "P" + string(rune(p.bank)) + strconvx.Itoa(int(p.n))
}

// Bank returns the bank letter ('A'..'F').
func (p pin) Bank() byte { return p.bank }

// Number returns the pin index within its bank (0..15).
func (p pin) Number() int { return int(p.n) }

func (p pin) checkBank(raw *stm32.GPIO_Type) {
	if raw != p.raw {
		panic("gpio: register proxy from a different bank")
	}
}

func (p pin) setMode(m *MODER, mode uint32) {
	p.checkBank(m.raw)
	m.raw.MODER.ReplaceBits(mode, 0b11, 2*p.n)
}

func (p pin) setPull(pu *PUPDR, pull uint32) {
	p.checkBank(pu.raw)
	pu.raw.PUPDR.ReplaceBits(pull, 0b11, 2*p.n)
}

func (p pin) setOutputType(o *OTYPER, openDrain bool) {
	p.checkBank(o.raw)
	if openDrain {
		o.raw.OTYPER.SetBits(1 << p.n)
	} else {
		o.raw.OTYPER.ClearBits(1 << p.n)
	}
}

func (p pin) setAltFunc(a *AFR, af uint32) {
	p.checkBank(a.raw)
	reg := &a.raw.AFRL
	if p.n >= 8 {
		reg = &a.raw.AFRH
	}
	reg.ReplaceBits(af, 0b1111, 4*(p.n%8))
}

// ---- transitions ----

// AsFloatingInput reconfigures the pin as a high-impedance input.
func (p pin) AsFloatingInput(m *MODER, pu *PUPDR) FloatingInput {
	p.setMode(m, modeInput)
	p.setPull(pu, pullNone)
	return FloatingInput{inputPin{p}}
}

// AsPullUpInput reconfigures the pin as an input with the weak pull-up on.
func (p pin) AsPullUpInput(m *MODER, pu *PUPDR) PullUpInput {
	p.setMode(m, modeInput)
	p.setPull(pu, pullUp)
	return PullUpInput{inputPin{p}}
}

// AsPullDownInput reconfigures the pin as an input with the weak pull-down
// on.
func (p pin) AsPullDownInput(m *MODER, pu *PUPDR) PullDownInput {
	p.setMode(m, modeInput)
	p.setPull(pu, pullDown)
	return PullDownInput{inputPin{p}}
}

// AsPushPullOutput reconfigures the pin to drive both levels.
func (p pin) AsPushPullOutput(m *MODER, o *OTYPER) PushPullOutput {
	p.setMode(m, modeOutput)
	p.setOutputType(o, false)
	return PushPullOutput{outputPin{p}}
}

// AsOpenDrainOutput reconfigures the pin to drive low and release high.
func (p pin) AsOpenDrainOutput(m *MODER, o *OTYPER) OpenDrainOutput {
	p.setMode(m, modeOutput)
	p.setOutputType(o, true)
	return OpenDrainOutput{outputPin{p}}
}

func (p pin) asAltFunc(m *MODER, a *AFR, af uint32) pin {
	p.setMode(m, modeAltFn)
	p.setAltFunc(a, af)
	return p
}

// AsAF0 through AsAF15 hand the pin to the numbered alternate function;
// the owning peripheral drives it until a later transition takes it back.
func (p pin) AsAF0(m *MODER, a *AFR) AF0   { return AF0{p.asAltFunc(m, a, 0)} }
func (p pin) AsAF1(m *MODER, a *AFR) AF1   { return AF1{p.asAltFunc(m, a, 1)} }
func (p pin) AsAF2(m *MODER, a *AFR) AF2   { return AF2{p.asAltFunc(m, a, 2)} }
func (p pin) AsAF3(m *MODER, a *AFR) AF3   { return AF3{p.asAltFunc(m, a, 3)} }
func (p pin) AsAF4(m *MODER, a *AFR) AF4   { return AF4{p.asAltFunc(m, a, 4)} }
func (p pin) AsAF5(m *MODER, a *AFR) AF5   { return AF5{p.asAltFunc(m, a, 5)} }
func (p pin) AsAF6(m *MODER, a *AFR) AF6   { return AF6{p.asAltFunc(m, a, 6)} }
func (p pin) AsAF7(m *MODER, a *AFR) AF7   { return AF7{p.asAltFunc(m, a, 7)} }
func (p pin) AsAF8(m *MODER, a *AFR) AF8   { return AF8{p.asAltFunc(m, a, 8)} }
func (p pin) AsAF9(m *MODER, a *AFR) AF9   { return AF9{p.asAltFunc(m, a, 9)} }
func (p pin) AsAF10(m *MODER, a *AFR) AF10 { return AF10{p.asAltFunc(m, a, 10)} }
func (p pin) AsAF11(m *MODER, a *AFR) AF11 { return AF11{p.asAltFunc(m, a, 11)} }
func (p pin) AsAF12(m *MODER, a *AFR) AF12 { return AF12{p.asAltFunc(m, a, 12)} }
func (p pin) AsAF13(m *MODER, a *AFR) AF13 { return AF13{p.asAltFunc(m, a, 13)} }
func (p pin) AsAF14(m *MODER, a *AFR) AF14 { return AF14{p.asAltFunc(m, a, 14)} }
func (p pin) AsAF15(m *MODER, a *AFR) AF15 { return AF15{p.asAltFunc(m, a, 15)} }

// ---- level operations ----

// inputPin carries the operations shared by the input states.
type inputPin struct {
	pin
}

// IsHigh samples the input level.
func (p inputPin) IsHigh() bool {
	return p.raw.IDR.HasBits(1 << p.n)
}

// IsLow samples the input level.
func (p inputPin) IsLow() bool {
	return !p.IsHigh()
}

// outputPin carries the operations shared by the output states.
type outputPin struct {
	pin
}

// SetHigh drives the pin high. The BSRR write is atomic, so no proxy and no
// read-modify-write is involved.
func (p outputPin) SetHigh() {
	p.raw.BSRR.Set(1 << p.n)
}

// SetLow drives the pin low.
func (p outputPin) SetLow() {
	p.raw.BSRR.Set(1 << (16 + p.n))
}

// IsHigh reports the driven level from the output latch.
func (p outputPin) IsHigh() bool {
	return p.raw.ODR.HasBits(1 << p.n)
}

// IsLow reports the driven level from the output latch.
func (p outputPin) IsLow() bool {
	return !p.IsHigh()
}

// Set drives the level given as a bool.
func (p outputPin) Set(high bool) {
	if high {
		p.SetHigh()
	} else {
		p.SetLow()
	}
}

// Toggle flips the driven level.
func (p outputPin) Toggle() {
	p.Set(p.IsLow())
}

// ---- pin states ----

// FloatingInput is a high-impedance input pin.
type FloatingInput struct {
	inputPin
}

// PullUpInput is an input pin with the weak pull-up connected.
type PullUpInput struct {
	inputPin
}

// PullDownInput is an input pin with the weak pull-down connected.
type PullDownInput struct {
	inputPin
}

// PushPullOutput is an output pin that actively drives both levels.
type PushPullOutput struct {
	outputPin
}

// OpenDrainOutput is an output pin that drives low and releases high.
type OpenDrainOutput struct {
	outputPin
}

// InternalPullUp connects or releases the weak pull-up while the pin keeps
// driving open-drain. Useful on buses with no external resistor.
func (p OpenDrainOutput) InternalPullUp(pu *PUPDR, on bool) {
	if on {
		p.setPull(pu, pullUp)
	} else {
		p.setPull(pu, pullNone)
	}
}

// AF0 through AF15 are pins handed to the numbered alternate function.
type (
	AF0  struct{ pin }
	AF1  struct{ pin }
	AF2  struct{ pin }
	AF3  struct{ pin }
	AF4  struct{ pin }
	AF5  struct{ pin }
	AF6  struct{ pin }
	AF7  struct{ pin }
	AF8  struct{ pin }
	AF9  struct{ pin }
	AF10 struct{ pin }
	AF11 struct{ pin }
	AF12 struct{ pin }
	AF13 struct{ pin }
	AF14 struct{ pin }
	AF15 struct{ pin }
)
