package prng

// Xorshift32 is Marsaglia's 32-bit xorshift generator ("xor", shifts 13/17/5).
type Xorshift32 struct {
	a uint32
}

// NewXorshift32 seeds a Xorshift32. The seed must be non-zero.
func NewXorshift32(seed uint32) (Xorshift32, error) {
	if seed == 0 {
		return Xorshift32{}, zeroState("xorshift32")
	}
	return Xorshift32{a: seed}, nil
}

// Advance returns the successor state and its output.
func (s Xorshift32) Advance() (Xorshift32, uint32) {
	x := s.a
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	return Xorshift32{a: x}, x
}

// Uint32 advances the generator and returns the next sample.
func (s *Xorshift32) Uint32() uint32 {
	var x uint32
	*s, x = s.Advance()
	return x
}

// Words returns a copy of the state.
func (s Xorshift32) Words() []uint64 {
	return []uint64{uint64(s.a)}
}

// Xorshift64 is Marsaglia's 64-bit xorshift generator (shifts 13/7/17).
type Xorshift64 struct {
	a uint64
}

// NewXorshift64 seeds a Xorshift64. The seed must be non-zero.
func NewXorshift64(seed uint64) (Xorshift64, error) {
	if seed == 0 {
		return Xorshift64{}, zeroState("xorshift64")
	}
	return Xorshift64{a: seed}, nil
}

// Advance returns the successor state and its output.
func (s Xorshift64) Advance() (Xorshift64, uint64) {
	x := s.a
	x ^= x << 13
	x ^= x >> 7
	x ^= x << 17
	return Xorshift64{a: x}, x
}

// Uint64 advances the generator and returns the next sample.
func (s *Xorshift64) Uint64() uint64 {
	var x uint64
	*s, x = s.Advance()
	return x
}

// Words returns a copy of the state.
func (s Xorshift64) Words() []uint64 {
	return []uint64{s.a}
}

// Xorshift128 is Marsaglia's "xor128" generator over four 32-bit words.
type Xorshift128 struct {
	a, b, c, d uint32
}

// NewXorshift128 seeds a Xorshift128. At least one word must be non-zero.
func NewXorshift128(a, b, c, d uint32) (Xorshift128, error) {
	if a|b|c|d == 0 {
		return Xorshift128{}, zeroState("xorshift128")
	}
	return Xorshift128{a: a, b: b, c: c, d: d}, nil
}

// Advance returns the successor state and its output.
func (s Xorshift128) Advance() (Xorshift128, uint32) {
	t := s.d
	x := s.a
	s.d = s.c
	s.c = s.b
	s.b = x
	t ^= t << 11
	t ^= t >> 8
	s.a = t ^ x ^ (x >> 19)
	return s, s.a
}

// Uint32 advances the generator and returns the next sample.
func (s *Xorshift128) Uint32() uint32 {
	var x uint32
	*s, x = s.Advance()
	return x
}

// Words returns a copy of the state in (a, b, c, d) order.
func (s Xorshift128) Words() []uint64 {
	return []uint64{uint64(s.a), uint64(s.b), uint64(s.c), uint64(s.d)}
}

// Xorshift128p is Vigna's xorshift128+ (shifts 23/18/5, arXiv:1404.0390 v2+).
// The output is the sum of the two state words, not their XOR.
type Xorshift128p struct {
	s [2]uint64
}

// NewXorshift128p seeds a Xorshift128p. At least one word must be non-zero.
func NewXorshift128p(s0, s1 uint64) (Xorshift128p, error) {
	if s0|s1 == 0 {
		return Xorshift128p{}, zeroState("xorshift128+")
	}
	return Xorshift128p{s: [2]uint64{s0, s1}}, nil
}

// Advance returns the successor state and its output.
func (s Xorshift128p) Advance() (Xorshift128p, uint64) {
	s1 := s.s[0]
	s0 := s.s[1]
	result := s0 + s1
	s.s[0] = s0
	s1 ^= s1 << 23
	s.s[1] = s1 ^ s0 ^ (s1 >> 18) ^ (s0 >> 5)
	return s, result
}

// Uint64 advances the generator and returns the next sample.
func (s *Xorshift128p) Uint64() uint64 {
	var x uint64
	*s, x = s.Advance()
	return x
}

// Words returns a copy of the state.
func (s Xorshift128p) Words() []uint64 {
	return []uint64{s.s[0], s.s[1]}
}
