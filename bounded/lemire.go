// Package bounded draws unbiased integers in [0, n) from a 32-bit source
// using Lemire's multiply-and-reject method.
//
// Two variants are provided. Lemire computes the rejection threshold with a
// single modulo per call; LemireONeill replaces that modulo with conditional
// subtraction in the common case (O'Neill, "Efficiently Generating a Number
// in a Range", 2018). Both consume the source identically and return the
// same values for every n.
//
// See https://arxiv.org/abs/1805.10941.
package bounded

import (
	"github.com/pkg/errors"

	"github.com/nozzle/refrng/internal/math"
	"github.com/nozzle/refrng/prng"
)

// ErrInvalidRange is returned when the requested range is zero.
var ErrInvalidRange = errors.New("bounded: range must be at least 1")

// Method selects a rejection sampling variant.
type Method int

const (
	// DivisionFree computes the threshold with one modulo per call.
	DivisionFree Method = iota
	// ONeill avoids the modulo unless n is tiny.
	ONeill
)

var methodNames = map[Method]string{
	DivisionFree: "lemire",
	ONeill:       "lemire-neill",
}

// String returns the fixture name of the method.
func (m Method) String() string {
	if s, ok := methodNames[m]; ok {
		return s
	}
	return "unknown"
}

// ParseMethod maps a fixture name back to its Method.
func ParseMethod(name string) (Method, error) {
	for m, s := range methodNames {
		if s == name {
			return m, nil
		}
	}
	return 0, errors.Errorf("bounded: unknown method %q", name)
}

// Draw returns a value in [0, n) using method m.
func (m Method) Draw(src prng.Source32, n uint32) (uint32, error) {
	switch m {
	case DivisionFree:
		return Lemire(src, n)
	case ONeill:
		return LemireONeill(src, n)
	default:
		return 0, errors.Errorf("bounded: unknown method %d", int(m))
	}
}

// Lemire returns a uniformly distributed value in [0, n).
// The source is not touched when n is zero.
func Lemire(src prng.Source32, n uint32) (uint32, error) {
	if n == 0 {
		return 0, ErrInvalidRange
	}
	hi, lo := math.Mul32(src.Uint32(), n)
	if lo < n {
		threshold := math.Neg32(n) % n
		for lo < threshold {
			hi, lo = math.Mul32(src.Uint32(), n)
		}
	}
	return hi, nil
}

// LemireONeill returns a uniformly distributed value in [0, n), producing
// exactly the same values as Lemire for the same source.
func LemireONeill(src prng.Source32, n uint32) (uint32, error) {
	if n == 0 {
		return 0, ErrInvalidRange
	}
	hi, lo := math.Mul32(src.Uint32(), n)
	if lo < n {
		t := math.Neg32(n)
		if t >= n {
			t -= n
			if t >= n {
				t %= n
			}
		}
		for lo < t {
			hi, lo = math.Mul32(src.Uint32(), n)
		}
	}
	return hi, nil
}
