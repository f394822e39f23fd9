// hal/hal.go

// Package hal declares the small capability interfaces the pin types in
// this module satisfy. Drivers written against these interfaces work with
// any bank and either output kind, and heterogeneous pins can share a
// slice, which is what index-erased pin types buy in languages that track
// the pin number in the type.
package hal

// OutputPin is a driven digital output. IsHigh and IsLow report the level
// the pin is being driven to, not a sampled input.
type OutputPin interface {
	SetHigh()
	SetLow()
	IsHigh() bool
	IsLow() bool
}

// InputPin is a digital input whose level can be sampled.
type InputPin interface {
	IsHigh() bool
	IsLow() bool
}
