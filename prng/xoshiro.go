package prng

import "github.com/nozzle/refrng/internal/math"

// Xoshiro128pp is xoshiro128++ 1.0 by Blackman and Vigna.
type Xoshiro128pp struct {
	s [4]uint32
}

// NewXoshiro128pp seeds a Xoshiro128pp. At least one word must be non-zero.
func NewXoshiro128pp(s0, s1, s2, s3 uint32) (Xoshiro128pp, error) {
	if s0|s1|s2|s3 == 0 {
		return Xoshiro128pp{}, zeroState("xoshiro128++")
	}
	return Xoshiro128pp{s: [4]uint32{s0, s1, s2, s3}}, nil
}

// Advance returns the successor state and its output.
func (x Xoshiro128pp) Advance() (Xoshiro128pp, uint32) {
	s := &x.s
	result := math.Rotl32(s[0]+s[3], 7) + s[0]
	t := s[1] << 9

	s[2] ^= s[0]
	s[3] ^= s[1]
	s[1] ^= s[2]
	s[0] ^= s[3]
	s[2] ^= t
	s[3] = math.Rotl32(s[3], 11)

	return x, result
}

// Uint32 advances the generator and returns the next sample.
func (x *Xoshiro128pp) Uint32() uint32 {
	var r uint32
	*x, r = x.Advance()
	return r
}

// Words returns a copy of the state.
func (x Xoshiro128pp) Words() []uint64 {
	return []uint64{uint64(x.s[0]), uint64(x.s[1]), uint64(x.s[2]), uint64(x.s[3])}
}

// Xoshiro256pp is xoshiro256++ 1.0 by Blackman and Vigna.
type Xoshiro256pp struct {
	s [4]uint64
}

// NewXoshiro256pp seeds a Xoshiro256pp. At least one word must be non-zero.
func NewXoshiro256pp(s0, s1, s2, s3 uint64) (Xoshiro256pp, error) {
	if s0|s1|s2|s3 == 0 {
		return Xoshiro256pp{}, zeroState("xoshiro256++")
	}
	return Xoshiro256pp{s: [4]uint64{s0, s1, s2, s3}}, nil
}

// Advance returns the successor state and its output.
func (x Xoshiro256pp) Advance() (Xoshiro256pp, uint64) {
	s := &x.s
	result := math.Rotl64(s[0]+s[3], 23) + s[0]
	t := s[1] << 17

	s[2] ^= s[0]
	s[3] ^= s[1]
	s[1] ^= s[2]
	s[0] ^= s[3]
	s[2] ^= t
	s[3] = math.Rotl64(s[3], 45)

	return x, result
}

// Uint64 advances the generator and returns the next sample.
func (x *Xoshiro256pp) Uint64() uint64 {
	var r uint64
	*x, r = x.Advance()
	return r
}

// Words returns a copy of the state.
func (x Xoshiro256pp) Words() []uint64 {
	return []uint64{x.s[0], x.s[1], x.s[2], x.s[3]}
}
