// Package prng implements a family of small, fast pseudo-random number
// generators exactly as published by Marsaglia, Vigna and Blackman.
//
// Every generator is a plain value holding its state. Advance is a pure
// state transition returning the successor state and the sample; Uint32 or
// Uint64 advance a generator in place. Bit-for-bit agreement with the
// published reference code is the only correctness criterion, so none of the
// formulas are tuned or "improved".
//
// None of the generators are safe for concurrent use and none are
// cryptographically secure. Callers that share an instance across goroutines
// must serialise access themselves.
package prng

import "github.com/pkg/errors"

// ErrZeroState is returned by constructors when the seed would put a
// xorshift or xoshiro generator into its all-zero fixed point.
var ErrZeroState = errors.New("prng: state must not be all zero")

// Source32 produces a stream of 32-bit samples.
type Source32 interface {
	Uint32() uint32
}

// Source64 produces a stream of 64-bit samples.
type Source64 interface {
	Uint64() uint64
}

func zeroState(name string) error {
	return errors.Wrapf(ErrZeroState, "%s seed", name)
}
