package prng

const (
	splitmix32Gamma = 0x9e3779b9
	splitmix32Mul1  = 0x85ebca6b
	splitmix32Mul2  = 0xc2b2ae35

	splitmix64Gamma = 0x9e3779b97f4a7c15
	splitmix64Mul1  = 0xbf58476d1ce4e5b9
	splitmix64Mul2  = 0x94d049bb133111eb
)

// Splitmix32 is the 32-bit splitmix variant by Kaito Udagawa.
// Any seed, including zero, is valid.
type Splitmix32 struct {
	x uint32
}

// NewSplitmix32 seeds a Splitmix32.
func NewSplitmix32(seed uint32) Splitmix32 {
	return Splitmix32{x: seed}
}

// Advance returns the successor state and its output.
func (s Splitmix32) Advance() (Splitmix32, uint32) {
	s.x += splitmix32Gamma
	z := s.x
	z = (z ^ (z >> 16)) * splitmix32Mul1
	z = (z ^ (z >> 13)) * splitmix32Mul2
	return s, z ^ (z >> 16)
}

// Uint32 advances the generator and returns the next sample.
func (s *Splitmix32) Uint32() uint32 {
	var z uint32
	*s, z = s.Advance()
	return z
}

// Words returns a copy of the state.
func (s Splitmix32) Words() []uint64 {
	return []uint64{uint64(s.x)}
}

// Splitmix64 is Vigna's splitmix64. Any seed, including zero, is valid.
type Splitmix64 struct {
	x uint64
}

// NewSplitmix64 seeds a Splitmix64.
func NewSplitmix64(seed uint64) Splitmix64 {
	return Splitmix64{x: seed}
}

// Advance returns the successor state and its output.
func (s Splitmix64) Advance() (Splitmix64, uint64) {
	s.x += splitmix64Gamma
	z := s.x
	z = (z ^ (z >> 30)) * splitmix64Mul1
	z = (z ^ (z >> 27)) * splitmix64Mul2
	return s, z ^ (z >> 31)
}

// Uint64 advances the generator and returns the next sample.
func (s *Splitmix64) Uint64() uint64 {
	var z uint64
	*s, z = s.Advance()
	return z
}

// Words returns a copy of the state.
func (s Splitmix64) Words() []uint64 {
	return []uint64{s.x}
}
