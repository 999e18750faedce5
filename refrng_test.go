package refrng

import (
	"testing"

	"github.com/pkg/errors"

	"github.com/nozzle/refrng/bounded"
	"github.com/nozzle/refrng/convert"
	"github.com/nozzle/refrng/prng"
)

// testSeeds are the "a" seeds of the reference fixtures.
var testSeeds = map[Algorithm][]uint64{
	Xorshift32:   {1},
	Xorshift64:   {1},
	Xorshift128:  {1, 2, 3, 4},
	Xorshift128p: {1, 2},
	Xoshiro128pp: {1, 2, 3, 4},
	Xoshiro256pp: {1, 2, 3, 4},
	Splitmix32:   {1},
	Splitmix64:   {1},
	Xorwow:       {1, 2, 3, 4, 5},
}

func TestFirstSamples(t *testing.T) {
	want := map[Algorithm]string{
		Xorshift32:   "00042021",
		Xorshift64:   "0000000040822041",
		Xorshift128:  "00002025",
		Xorshift128p: "0000000000000003",
		Xoshiro128pp: "00000281",
		Xoshiro256pp: "0000000002800001",
		Splitmix32:   "96a0f96b",
		Splitmix64:   "910a2dec89025cc1",
		Xorwow:       "000587e2",
	}

	for _, alg := range Algorithms() {
		g, err := New(alg, testSeeds[alg]...)
		if err != nil {
			t.Fatalf("%s: %v", alg, err)
		}
		s := g.Next()
		if s.Width != alg.Width() {
			t.Errorf("%s: sample width %d, expected %d", alg, s.Width, alg.Width())
		}
		if got := s.Hex(); got != want[alg] {
			t.Errorf("%s: first sample %s, expected %s", alg, got, want[alg])
		}
	}
}

func TestParseAlgorithm(t *testing.T) {
	for _, alg := range Algorithms() {
		got, err := ParseAlgorithm(alg.String())
		if err != nil || got != alg {
			t.Errorf("ParseAlgorithm(%q) = %v, %v", alg.String(), got, err)
		}
	}

	aliases := map[string]Algorithm{
		"xorshift128+": Xorshift128p,
		"Xoshiro128++": Xoshiro128pp,
		" xoshiro256++": Xoshiro256pp,
	}
	for name, exp := range aliases {
		if got, err := ParseAlgorithm(name); err != nil || got != exp {
			t.Errorf("ParseAlgorithm(%q) = %v, %v; expected %v", name, got, err, exp)
		}
	}

	if _, err := ParseAlgorithm("pcg32"); !errors.Is(err, ErrUnknownAlgorithm) {
		t.Errorf("pcg32 should be unknown, got %v", err)
	}
	if s := Algorithm(42).String(); s != "Algorithm(42)" {
		t.Errorf("invalid algorithm String() = %q", s)
	}
}

func TestNewPreconditions(t *testing.T) {
	tests := []struct {
		name  string
		alg   Algorithm
		seeds []uint64
		want  error
	}{
		{"too few words", Xorshift128, []uint64{1, 2, 3}, ErrSeedArity},
		{"too many words", Xorshift32, []uint64{1, 2}, ErrSeedArity},
		{"no words", Splitmix64, nil, ErrSeedArity},
		{"wide 32-bit seed", Xorshift32, []uint64{1 << 32}, ErrSeedWidth},
		{"wide xorwow word", Xorwow, []uint64{1, 2, 3, 4, 0x1_0000_0000}, ErrSeedWidth},
		{"zero xorshift32", Xorshift32, []uint64{0}, prng.ErrZeroState},
		{"zero xorshift128+", Xorshift128p, []uint64{0, 0}, prng.ErrZeroState},
		{"zero xoshiro256++", Xoshiro256pp, []uint64{0, 0, 0, 0}, prng.ErrZeroState},
		{"zero xorwow head", Xorwow, []uint64{0, 0, 0, 0, 7}, prng.ErrZeroState},
		{"unknown", Algorithm(-1), []uint64{1}, ErrUnknownAlgorithm},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := New(tt.alg, tt.seeds...)
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
			if g != nil {
				t.Errorf("expected nil generator on error")
			}
		})
	}

	// splitmix tolerates zero seeds
	for _, alg := range []Algorithm{Splitmix32, Splitmix64} {
		if _, err := New(alg, 0); err != nil {
			t.Errorf("%s with zero seed: %v", alg, err)
		}
	}
}

func TestDraw64(t *testing.T) {
	g, err := New(Xorshift32, 1)
	if err != nil {
		t.Fatal(err)
	}
	x, samples := g.Draw64(nil)
	if x != 0x0004202104080601 {
		t.Errorf("xorshift32 Draw64 = %#016x", x)
	}
	if len(samples) != 2 || samples[0].Hex() != "00042021" || samples[1].Hex() != "04080601" {
		t.Errorf("xorshift32 Draw64 samples = %+v", samples)
	}

	g, err = New(Xorshift64, 1)
	if err != nil {
		t.Fatal(err)
	}
	x, samples = g.Draw64(samples[:0])
	if x != 0x0000000040822041 || len(samples) != 1 {
		t.Errorf("xorshift64 Draw64 = %#016x, %d samples", x, len(samples))
	}
}

func TestFloat64MatchesConversions(t *testing.T) {
	for _, alg := range Algorithms() {
		a, _ := New(alg, testSeeds[alg]...)
		b := a.Clone()
		for i := 0; i < 256; i++ {
			x, _ := b.Draw64(nil)
			if got, exp := a.Float64(convert.Multiplicative), convert.Multiplicative(x); got != exp {
				t.Fatalf("%s draw %d: Float64 = %v, expected %v", alg, i, got, exp)
			}
		}
	}
}

func TestCloneIsIndependent(t *testing.T) {
	g, _ := New(Xoshiro128pp, 5, 23, 42, 777)
	c := g.Clone()

	for i := 0; i < 10; i++ {
		g.Next()
	}
	if c.State()[0] != 5 {
		t.Errorf("clone advanced with its parent: %v", c.State())
	}
	for i := 0; i < 10; i++ {
		c.Next()
	}
	for i, w := range g.State() {
		if c.State()[i] != w {
			t.Fatalf("clone diverged: %v vs %v", c.State(), g.State())
		}
	}
}

func TestSource64(t *testing.T) {
	g, _ := New(Xorshift32, 1)
	if _, err := g.Source64(); !errors.Is(err, ErrNot64Bit) {
		t.Errorf("xorshift32 Source64: expected ErrNot64Bit, got %v", err)
	}

	g, _ = New(Xorshift64, 777)
	src, err := g.Source64()
	if err != nil {
		t.Fatal(err)
	}
	f := bounded.NewFeeder(src)
	got, err := bounded.Lemire(f, 1000)
	if err != nil {
		t.Fatal(err)
	}
	if got != 0 {
		t.Errorf("first lemire draw = %d, expected 0", got)
	}
	if x, _ := bounded.Lemire(f, 1000); x != 0x2f9 {
		t.Errorf("second lemire draw = %#x, expected 0x2f9", x)
	}
}
