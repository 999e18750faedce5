package fixture

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/nozzle/refrng"
	"github.com/nozzle/refrng/bounded"
	"github.com/nozzle/refrng/convert"
)

// Output types, as used in file names.
const (
	TypeInt        = "int"
	TypeDoubleMult = "double_mult"
	TypeDoubleCast = "double_cast"
	TypeDoornik    = "doornik_randbl_32"
)

// File is one fixture file.
type File struct {
	Algorithm   string   `json:"algorithm"`
	Description string   `json:"description"`
	Seed        string   `json:"seed"`
	SeedID      string   `json:"seed id"`
	Type        string   `json:"type"`
	Values      []string `json:"values"`
}

// Name returns the file name, <algorithm>_<seed id>_<type>.json.
func (f *File) Name() string {
	return FileName(f.Algorithm, f.SeedID, f.Type)
}

// FileName builds a fixture file name.
func FileName(alg, id, typ string) string {
	return fmt.Sprintf("%s_%s_%s.json", alg, id, typ)
}

// FormatDouble renders a double with 20 significant digits after the point
// in scientific notation, matching C's "%.20e".
func FormatDouble(x float64) string {
	return fmt.Sprintf("%.20e", x)
}

// FormatUint32 renders a 32-bit value as 8 lowercase hex digits.
func FormatUint32(x uint32) string {
	return fmt.Sprintf("%08x", x)
}

func (r Run) newFile(typ string, capacity int) *File {
	return &File{
		Algorithm:   r.Name(),
		Description: r.Description(),
		Seed:        r.SeedString(),
		SeedID:      r.ID,
		Type:        typ,
		Values:      make([]string, 0, capacity),
	}
}

// Types lists the output types a run produces.
func (r Run) Types() []string {
	switch {
	case r.Bounded:
		return []string{TypeInt}
	case r.Algorithm == refrng.Xorshift32:
		return []string{TypeInt, TypeDoubleMult, TypeDoubleCast, TypeDoornik}
	default:
		return []string{TypeInt, TypeDoubleMult, TypeDoubleCast}
	}
}

// Generate runs r for count iterations and returns its files in Types order.
func Generate(r Run, count int) ([]*File, error) {
	if count < 0 {
		return nil, errors.Errorf("negative count %d", count)
	}
	if r.Bounded {
		f, err := generateBounded(r, count)
		if err != nil {
			return nil, err
		}
		return []*File{f}, nil
	}
	return generateStream(r, count)
}

func generateStream(r Run, count int) ([]*File, error) {
	g, err := refrng.New(r.Algorithm, r.Seeds...)
	if err != nil {
		return nil, errors.Wrapf(err, "run %s", r)
	}

	perIter := 1
	if r.Algorithm.Width() == 32 {
		perIter = 2
	}
	ints := r.newFile(TypeInt, count*perIter)
	mult := r.newFile(TypeDoubleMult, count)
	cast := r.newFile(TypeDoubleCast, count)
	files := []*File{ints, mult, cast}

	var doornik *File
	if r.Algorithm == refrng.Xorshift32 {
		doornik = r.newFile(TypeDoornik, count*perIter)
		files = append(files, doornik)
	}

	samples := make([]refrng.Sample, 0, 2)
	for i := 0; i < count; i++ {
		var x uint64
		x, samples = g.Draw64(samples[:0])
		for _, s := range samples {
			ints.Values = append(ints.Values, s.Hex())
			if doornik != nil {
				doornik.Values = append(doornik.Values, FormatDouble(convert.Doornik32(s.Uint32())))
			}
		}
		mult.Values = append(mult.Values, FormatDouble(convert.Multiplicative(x)))
		cast.Values = append(cast.Values, FormatDouble(convert.BitCast(x)))
	}
	return files, nil
}

func generateBounded(r Run, count int) (*File, error) {
	g, err := refrng.New(refrng.Xorshift64, FeederSeed)
	if err != nil {
		return nil, err
	}
	src, err := g.Source64()
	if err != nil {
		return nil, err
	}
	feeder := bounded.NewFeeder(src)

	f := r.newFile(TypeInt, count)
	for i := 0; i < count; i++ {
		x, err := r.Method.Draw(feeder, r.Range)
		if err != nil {
			return nil, errors.Wrapf(err, "run %s", r)
		}
		f.Values = append(f.Values, FormatUint32(x))
	}
	return f, nil
}
