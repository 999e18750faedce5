package refrng

import (
	"github.com/pkg/errors"

	"github.com/nozzle/refrng/convert"
	"github.com/nozzle/refrng/internal/math"
	"github.com/nozzle/refrng/prng"
)

// stream is the common shape of the nine generators once their sample width
// has been erased.
type stream interface {
	next() uint64
	words() []uint64
	clone() stream
}

type advancer32[T any] interface {
	Advance() (T, uint32)
	Words() []uint64
}

type advancer64[T any] interface {
	Advance() (T, uint64)
	Words() []uint64
}

type stream32[T advancer32[T]] struct{ s T }

func (g *stream32[T]) next() uint64 {
	var x uint32
	g.s, x = g.s.Advance()
	return uint64(x)
}

func (g *stream32[T]) words() []uint64 { return g.s.Words() }

func (g *stream32[T]) clone() stream {
	c := *g
	return &c
}

type stream64[T advancer64[T]] struct{ s T }

func (g *stream64[T]) next() uint64 {
	var x uint64
	g.s, x = g.s.Advance()
	return x
}

func (g *stream64[T]) words() []uint64 { return g.s.Words() }

func (g *stream64[T]) clone() stream {
	c := *g
	return &c
}

// Generator is a seeded instance of one algorithm.
//
// A Generator is not safe for concurrent use. Use Clone to fork an
// independent stream.
type Generator struct {
	alg Algorithm
	s   stream
}

// New creates a generator for alg from the given seed words. The number of
// words must equal alg.SeedArity() and for 32-bit algorithms every word must
// fit in 32 bits. Seeds that would put a xorshift or xoshiro generator in its
// all-zero state are rejected with prng.ErrZeroState.
func New(alg Algorithm, seeds ...uint64) (*Generator, error) {
	if !alg.Valid() {
		return nil, errors.Wrapf(ErrUnknownAlgorithm, "%d", int(alg))
	}
	if len(seeds) != alg.SeedArity() {
		return nil, errors.Wrapf(ErrSeedArity, "%s takes %d, got %d", alg, alg.SeedArity(), len(seeds))
	}
	if alg.Width() == 32 {
		for i, w := range seeds {
			if w > 0xFFFFFFFF {
				return nil, errors.Wrapf(ErrSeedWidth, "%s seed word %d is %#x", alg, i, w)
			}
		}
	}

	s, err := newStream(alg, seeds)
	if err != nil {
		return nil, err
	}
	return &Generator{alg: alg, s: s}, nil
}

func newStream(alg Algorithm, w []uint64) (stream, error) {
	u := func(i int) uint32 { return uint32(w[i]) }

	switch alg {
	case Xorshift32:
		g, err := prng.NewXorshift32(u(0))
		return &stream32[prng.Xorshift32]{g}, err
	case Xorshift64:
		g, err := prng.NewXorshift64(w[0])
		return &stream64[prng.Xorshift64]{g}, err
	case Xorshift128:
		g, err := prng.NewXorshift128(u(0), u(1), u(2), u(3))
		return &stream32[prng.Xorshift128]{g}, err
	case Xorshift128p:
		g, err := prng.NewXorshift128p(w[0], w[1])
		return &stream64[prng.Xorshift128p]{g}, err
	case Xoshiro128pp:
		g, err := prng.NewXoshiro128pp(u(0), u(1), u(2), u(3))
		return &stream32[prng.Xoshiro128pp]{g}, err
	case Xoshiro256pp:
		g, err := prng.NewXoshiro256pp(w[0], w[1], w[2], w[3])
		return &stream64[prng.Xoshiro256pp]{g}, err
	case Splitmix32:
		return &stream32[prng.Splitmix32]{prng.NewSplitmix32(u(0))}, nil
	case Splitmix64:
		return &stream64[prng.Splitmix64]{prng.NewSplitmix64(w[0])}, nil
	case Xorwow:
		g, err := prng.NewXorwow(u(0), u(1), u(2), u(3), u(4))
		return &stream32[prng.Xorwow]{g}, err
	}
	return nil, errors.Wrapf(ErrUnknownAlgorithm, "%d", int(alg))
}

// Algorithm returns the generator's algorithm.
func (g *Generator) Algorithm() Algorithm {
	return g.alg
}

// Next advances the generator and returns the sample.
func (g *Generator) Next() Sample {
	return Sample{Value: g.s.next(), Width: g.alg.Width()}
}

// Draw64 returns the 64-bit value fed to the double conversions and appends
// the raw samples it was built from to buf. A 64-bit algorithm contributes a
// single sample; a 32-bit algorithm draws two and puts the first in the high
// word.
func (g *Generator) Draw64(buf []Sample) (uint64, []Sample) {
	first := g.Next()
	if first.Width == 64 {
		return first.Value, append(buf, first)
	}
	second := g.Next()
	return math.Concat32(first.Uint32(), second.Uint32()), append(buf, first, second)
}

// Float64 draws the next 64-bit value and converts it with conv.
func (g *Generator) Float64(conv convert.Func) float64 {
	x, _ := g.Draw64(nil)
	return conv(x)
}

// State returns a copy of the generator's state words.
func (g *Generator) State() []uint64 {
	return g.s.words()
}

// Clone returns an independent generator at the same position.
func (g *Generator) Clone() *Generator {
	return &Generator{alg: g.alg, s: g.s.clone()}
}

// Source64 exposes a 64-bit generator as a prng.Source64, e.g. to back a
// bounded.Feeder. The returned source shares g's state.
func (g *Generator) Source64() (prng.Source64, error) {
	if g.alg.Width() != 64 {
		return nil, errors.Wrapf(ErrNot64Bit, "%s", g.alg)
	}
	return source64{g}, nil
}

type source64 struct{ g *Generator }

func (s source64) Uint64() uint64 { return s.g.s.next() }
