package bounded

import (
	"github.com/nozzle/refrng/internal/math"
	"github.com/nozzle/refrng/prng"
)

// Feeder turns a 64-bit generator into a 32-bit source by handing out the
// upper half of each draw first and the lower half on the following call.
//
// A Feeder owns its generator exclusively. It is not safe for concurrent use.
type Feeder struct {
	src    prng.Source64
	cached uint32
	full   bool
}

// NewFeeder returns an empty Feeder drawing from src.
func NewFeeder(src prng.Source64) *Feeder {
	return &Feeder{src: src}
}

// Uint32 returns the next 32-bit half.
func (f *Feeder) Uint32() uint32 {
	if f.full {
		f.full = false
		return f.cached
	}
	hi, lo := math.Split64(f.src.Uint64())
	f.cached = lo
	f.full = true
	return hi
}

// Pending reports whether a lower half is waiting to be returned.
func (f *Feeder) Pending() bool {
	return f.full
}

// Reset discards a cached half, if any.
func (f *Feeder) Reset() {
	f.cached = 0
	f.full = false
}
