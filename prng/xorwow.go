package prng

// xorwowStep is Marsaglia's Weyl sequence increment.
const xorwowStep = 362437

// Xorwow is Marsaglia's "xorwow": a five-word xorshift combined with a
// Weyl counter.
type Xorwow struct {
	a, b, c, d, e uint32
	counter       uint32
}

// NewXorwow seeds a Xorwow with a zero counter. The first four words must not
// all be zero.
func NewXorwow(a, b, c, d, e uint32) (Xorwow, error) {
	return NewXorwowCounter(a, b, c, d, e, 0)
}

// NewXorwowCounter seeds a Xorwow with an explicit starting counter.
func NewXorwowCounter(a, b, c, d, e, counter uint32) (Xorwow, error) {
	if a|b|c|d == 0 {
		return Xorwow{}, zeroState("xorwow")
	}
	return Xorwow{a: a, b: b, c: c, d: d, e: e, counter: counter}, nil
}

// Advance returns the successor state and its output.
func (s Xorwow) Advance() (Xorwow, uint32) {
	t := s.e
	x := s.a
	s.e = s.d
	s.d = s.c
	s.c = s.b
	s.b = x
	t ^= t >> 2
	t ^= t << 1
	t ^= x ^ (x << 4)
	s.a = t
	s.counter += xorwowStep
	return s, t + s.counter
}

// Uint32 advances the generator and returns the next sample.
func (s *Xorwow) Uint32() uint32 {
	var x uint32
	*s, x = s.Advance()
	return x
}

// Words returns a copy of the state: the five words followed by the counter.
func (s Xorwow) Words() []uint64 {
	return []uint64{
		uint64(s.a), uint64(s.b), uint64(s.c), uint64(s.d), uint64(s.e),
		uint64(s.counter),
	}
}
