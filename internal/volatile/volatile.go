// internal/volatile/volatile.go

// Package volatile provides the 32-bit register cell the device layer is
// built from. The method set matches the cell type MCU toolchains ship, so
// register code reads the same on host and target. Host builds back it with
// sync/atomic, which keeps the simulated peripheral blocks clean under the
// race detector; an on-target toolchain lowers the same calls to volatile
// loads and stores.
package volatile

import "sync/atomic"

// Register32 is a single 32-bit hardware register.
type Register32 struct {
	v uint32
}

// Get returns the current register value.
func (r *Register32) Get() uint32 {
	return atomic.LoadUint32(&r.v)
}

// Set stores v into the register.
func (r *Register32) Set(v uint32) {
	atomic.StoreUint32(&r.v, v)
}

// SetBits sets every bit in mask and leaves the rest untouched.
func (r *Register32) SetBits(mask uint32) {
	atomic.OrUint32(&r.v, mask)
}

// ClearBits clears every bit in mask and leaves the rest untouched.
func (r *Register32) ClearBits(mask uint32) {
	atomic.AndUint32(&r.v, ^mask)
}

// HasBits reports whether any bit in mask is set.
func (r *Register32) HasBits(mask uint32) bool {
	return r.Get()&mask != 0
}

// ReplaceBits writes value into the field of width mask at bit position pos.
// The mask is given unshifted.
func (r *Register32) ReplaceBits(value, mask uint32, pos uint8) {
	r.Set(r.Get()&^(mask<<pos) | value<<pos)
}
