// Package fixture writes and checks the reference fixture files: for each
// run of a plan it seeds a generator (or a bounded-draw feeder), draws a fixed
// number of values and stores them, formatted, one JSON file per output type.
package fixture

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/nozzle/refrng"
	"github.com/nozzle/refrng/bounded"
)

// ValuesPerFile is the default number of iterations per run.
const ValuesPerFile = 1024

// FeederSeed seeds the xorshift64 generator behind every bounded run.
const FeederSeed = 777

const (
	pi32 = 314159265
	pi64 = 3141592653589793238
)

// Run is one seeded stream of a plan.
type Run struct {
	// Algorithm is the generator for generator runs.
	Algorithm refrng.Algorithm
	// Seeds are the seed words for generator runs.
	Seeds []uint64

	// Bounded marks a bounded-draw run; Method and Range apply.
	Bounded bool
	Method  bounded.Method
	Range   uint32

	// ID distinguishes runs of the same algorithm ("a", "b", "FFx", ...).
	ID string
}

// Name is the algorithm name used in file names.
func (r Run) Name() string {
	if r.Bounded {
		return r.Method.String()
	}
	return r.Algorithm.String()
}

// hexSeeds lists the algorithms whose seeds are printed in hexadecimal.
var hexSeeds = map[refrng.Algorithm]bool{
	refrng.Xoshiro256pp: true,
	refrng.Splitmix32:   true,
	refrng.Splitmix64:   true,
}

// SeedString renders the seed for the file header.
func (r Run) SeedString() string {
	if r.Bounded {
		return fmt.Sprintf("0x%x", r.Range)
	}
	parts := make([]string, len(r.Seeds))
	for i, s := range r.Seeds {
		if hexSeeds[r.Algorithm] {
			parts[i] = fmt.Sprintf("0x%x", s)
		} else {
			parts[i] = fmt.Sprintf("%d", s)
		}
	}
	return strings.Join(parts, " ")
}

// Description is the free-text header of the run's files.
func (r Run) Description() string {
	if r.Bounded {
		return fmt.Sprintf("Generating uint32s in range. "+
			"Source uint32s are from xorshift64 (seed %d) "+
			"with 64-bit output splitted as upper 32, then lower 32. "+
			"The arg is the range (upper bound).", FeederSeed)
	}
	if r.Algorithm.Width() == 32 {
		return "Each iteration draws two uint32s; the double is made from " +
			"their concatenation, first one in the upper 32 bits."
	}
	return "Each iteration draws one uint64; the double is made from it."
}

func (r Run) String() string {
	return r.Name() + "_" + r.ID
}

// Plan is an ordered list of runs.
type Plan []Run

// Filter keeps the runs whose name is in names. An empty list keeps all runs.
func (p Plan) Filter(names []string) (Plan, error) {
	if len(names) == 0 {
		return p, nil
	}
	keep := make(map[string]bool, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		if alg, err := refrng.ParseAlgorithm(n); err == nil {
			n = alg.String()
		} else if _, err := bounded.ParseMethod(n); err != nil {
			return nil, errors.Wrapf(err, "filter")
		}
		keep[n] = true
	}

	var out Plan
	for _, r := range p {
		if keep[r.Name()] {
			out = append(out, r)
		}
	}
	return out, nil
}

func gen(alg refrng.Algorithm, id string, seeds ...uint64) Run {
	return Run{Algorithm: alg, ID: id, Seeds: seeds}
}

// DefaultPlan returns the runs of the reference fixture set.
func DefaultPlan() Plan {
	p := Plan{
		gen(refrng.Xorshift32, "a", 1),
		gen(refrng.Xorshift32, "b", 42),
		gen(refrng.Xorshift32, "c", pi32),

		gen(refrng.Xorshift64, "a", 1),
		gen(refrng.Xorshift64, "b", 42),
		gen(refrng.Xorshift64, "c", pi64),

		gen(refrng.Xorshift128p, "a", 1, 2),
		gen(refrng.Xorshift128p, "b", 42, 777),
		gen(refrng.Xorshift128p, "c", 8378522730901710845, 1653112583875186020),

		gen(refrng.Xorshift128, "a", 1, 2, 3, 4),
		gen(refrng.Xorshift128, "b", 5, 23, 42, 777),
		gen(refrng.Xorshift128, "c", 1081037251, 1975530394, 2959134556, 1579461830),

		gen(refrng.Xoshiro128pp, "a", 1, 2, 3, 4),
		gen(refrng.Xoshiro128pp, "b", 5, 23, 42, 777),
		gen(refrng.Xoshiro128pp, "c", 1081037251, 1975530394, 2959134556, 1579461830),

		gen(refrng.Xoshiro256pp, "a", 1, 2, 3, 4),
		gen(refrng.Xoshiro256pp, "b", 5, 23, 42, 777),
		gen(refrng.Xoshiro256pp, "c", 0x621b97ff9b08ce44, 0x92974ae633d5ee97, 0x9c7e491e8f081368, 0xf7d3b43bed078fa3),

		gen(refrng.Splitmix64, "a", 1),
		gen(refrng.Splitmix64, "b", 0),
		gen(refrng.Splitmix64, "c", 777),
		gen(refrng.Splitmix64, "d", 0xf7d3b43bed078fa3),

		gen(refrng.Splitmix32, "a", 1),
		gen(refrng.Splitmix32, "b", 0),
		gen(refrng.Splitmix32, "c", 777),
		gen(refrng.Splitmix32, "d", 1081037251),

		gen(refrng.Xorwow, "a", 1, 2, 3, 4, 5),
		gen(refrng.Xorwow, "b", 123456789, 362436069, 521288629, 88675123, 5783321),
	}

	ranges := []struct {
		id string
		n  uint32
	}{
		{"1000", 1000},
		{"1", 1},
		{"FFx", 0xFFFFFFFF},
		{"7Fx", 0x7FFFFFFF},
		{"80x", 0x80000000},
		{"R1", 0x0f419dc8},
		{"R2", 0x32e7aeec},
	}
	for _, m := range []bounded.Method{bounded.DivisionFree, bounded.ONeill} {
		for _, r := range ranges {
			p = append(p, Run{Bounded: true, Method: m, Range: r.n, ID: r.id})
		}
	}
	return p
}
