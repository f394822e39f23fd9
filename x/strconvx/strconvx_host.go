//go:build !stm32f30x

package strconvx

import "strconv"

// The goal is signature parity with strconv.
// Delegate straight through.

func Itoa(i int) string                    { return strconv.Itoa(i) }
func FormatUint(u uint64, base int) string { return strconv.FormatUint(u, base) }
