// Package convert turns raw generator output into float64 values in [0, 1).
//
// The conversions are exact bit operations as published by Vigna
// (https://prng.di.unimi.it/) and Doornik (2007). They deliberately produce
// different bit patterns for the same input and are kept side by side so
// that both can be checked independently.
package convert

import (
	stdmath "math"

	"github.com/pkg/errors"

	"github.com/nozzle/refrng/internal/math"
)

const (
	// twoPow53 is 2^-53, the spacing of the multiplicative conversion.
	twoPow53 = 0x1p-53

	// twoPow32 is 2^-32 (Doornik's M_RAN_INVM32).
	twoPow32 = 0x1p-32

	// oneExponent is the biased exponent of 1.0 placed in the exponent field.
	oneExponent = uint64(0x3FF) << 52
)

// ErrUnknownConversion is returned by Lookup for unregistered names.
var ErrUnknownConversion = errors.New("convert: unknown conversion")

// Func converts a 64-bit value to a float64 in [0, 1).
type Func func(x uint64) float64

// Multiplicative uses the top 53 bits of x as a uniformly scaled mantissa:
// (x >> 11) * 2^-53.
func Multiplicative(x uint64) float64 {
	return float64(x>>11) * twoPow53
}

// BitCast places the top 52 bits of x in the mantissa of a double with the
// exponent of 1.0, reinterprets those bits as a value in [1, 2) and
// subtracts 1.
func BitCast(x uint64) float64 {
	return stdmath.Float64frombits(oneExponent|x>>12) - 1.0
}

// Doornik32 is the RANDBL_32 conversion from Doornik, "Conversion of
// high-period random numbers to floating point" (2007). x is read as a signed
// 32-bit integer, scaled by 2^-32 and shifted by one half.
func Doornik32(x uint32) float64 {
	return float64(int32(x))*twoPow32 + 0.5
}

// Concat joins two consecutive 32-bit samples into the 64-bit value fed to
// the conversions. The first drawn sample goes in the high word.
func Concat(first, second uint32) uint64 {
	return math.Concat32(first, second)
}

// Registry maps the fixture type names to the conversions.
var Registry = map[string]Func{
	"mult": Multiplicative,
	"cast": BitCast,
}

// Lookup returns the conversion registered under name.
func Lookup(name string) (Func, error) {
	fn, ok := Registry[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownConversion, "%q", name)
	}
	return fn, nil
}
