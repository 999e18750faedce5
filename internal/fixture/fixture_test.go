package fixture

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/nozzle/refrng"
	"github.com/nozzle/refrng/bounded"
)

func TestDefaultPlan(t *testing.T) {
	p := DefaultPlan()
	require.Len(t, p, 28+14)

	seen := map[string]bool{}
	for _, r := range p {
		assert.Falsef(t, seen[r.String()], "duplicate run %s", r)
		seen[r.String()] = true
		if !r.Bounded {
			assert.Len(t, r.Seeds, r.Algorithm.SeedArity(), r.String())
		}
	}
	for _, alg := range refrng.Algorithms() {
		assert.Truef(t, seen[alg.String()+"_a"], "no run for %s", alg)
	}
	assert.True(t, seen["lemire_FFx"])
	assert.True(t, seen["lemire-neill_R2"])
}

func TestSeedString(t *testing.T) {
	p := DefaultPlan()
	byName := map[string]Run{}
	for _, r := range p {
		byName[r.String()] = r
	}
	assert.Equal(t, "314159265", byName["xorshift32_c"].SeedString())
	assert.Equal(t, "1 2 3 4", byName["xorshift128_a"].SeedString())
	assert.Equal(t, "0xf7d3b43bed078fa3", byName["splitmix64_d"].SeedString())
	assert.Equal(t, "0x0", byName["splitmix32_b"].SeedString())
	assert.Equal(t, "0xffffffff", byName["lemire_FFx"].SeedString())
}

func TestGenerateXorshift32(t *testing.T) {
	files, err := Generate(Run{Algorithm: refrng.Xorshift32, ID: "a", Seeds: []uint64{1}}, 3)
	require.NoError(t, err)
	require.Len(t, files, 4)

	ints, mult, cast, doornik := files[0], files[1], files[2], files[3]
	assert.Equal(t, "xorshift32_a_int.json", ints.Name())
	assert.Equal(t, "xorshift32_a_doornik_randbl_32.json", doornik.Name())

	assert.Len(t, ints.Values, 6)
	assert.Len(t, doornik.Values, 6)
	assert.Len(t, mult.Values, 3)
	assert.Len(t, cast.Values, 3)

	assert.Equal(t, []string{"00042021", "04080601", "9dcca8c5", "1255994f"}, ints.Values[:4])
	assert.Equal(t, "6.29501919604535942199e-05", mult.Values[0])
	assert.Equal(t, "6.29501919604535942199e-05", cast.Values[0])
	assert.Equal(t, "5.00062950188294053078e-01", doornik.Values[0])
}

func TestGenerate64(t *testing.T) {
	files, err := Generate(Run{Algorithm: refrng.Splitmix64, ID: "b", Seeds: []uint64{0}}, 2)
	require.NoError(t, err)
	require.Len(t, files, 3)
	assert.Equal(t, []string{"e220a8397b1dcdaf", "6e789e6aa1b965f4"}, files[0].Values)
	for _, f := range files[1:] {
		for _, v := range f.Values {
			assert.Regexp(t, `^[0-9]\.[0-9]{20}e[-+][0-9]{2}$`, v)
		}
	}
}

func TestGenerateBounded(t *testing.T) {
	for _, m := range []bounded.Method{bounded.DivisionFree, bounded.ONeill} {
		files, err := Generate(Run{Bounded: true, Method: m, Range: 1000, ID: "1000"}, 4)
		require.NoError(t, err)
		require.Len(t, files, 1)
		assert.Equal(t, m.String()+"_1000_int.json", files[0].Name())
		assert.Equal(t, []string{"00000000", "000002f9", "00000235", "00000168"}, files[0].Values)
	}

	_, err := Generate(Run{Bounded: true, Method: bounded.DivisionFree, Range: 0, ID: "zero"}, 1)
	assert.ErrorIs(t, err, bounded.ErrInvalidRange)
}

func TestGenerateRejectsBadSeed(t *testing.T) {
	_, err := Generate(Run{Algorithm: refrng.Xorshift128p, ID: "z", Seeds: []uint64{0, 0}}, 1)
	assert.Error(t, err)
}

func TestEmitVerify(t *testing.T) {
	dir := t.TempDir()
	opts := Options{Dir: dir, Count: 16, Workers: 4}
	plan := DefaultPlan()

	written, err := Emit(context.Background(), plan, opts)
	require.NoError(t, err)

	expected := 0
	for _, r := range plan {
		expected += len(r.Types())
	}
	assert.Len(t, written, expected)

	data, err := os.ReadFile(filepath.Join(dir, "xorshift64_c_int.json"))
	require.NoError(t, err)
	doc := gjson.ParseBytes(data)
	assert.Equal(t, "3141592653589793238", doc.Get("seed").String())
	assert.Equal(t, "c", doc.Get("seed id").String())
	assert.Equal(t, "366b2d97e95498c5", doc.Get("values.0").String())

	mismatches, err := Verify(context.Background(), plan, opts)
	require.NoError(t, err)
	assert.Empty(t, mismatches)

	// Corrupt one value and drop one file.
	path := filepath.Join(dir, "xoshiro128pp_a_int.json")
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, []byte(strings.Replace(string(data), "00000281", "00000282", 1)), 0o644))
	require.NoError(t, os.Remove(filepath.Join(dir, "lemire_R1_int.json")))

	mismatches, err = Verify(context.Background(), plan, opts)
	require.NoError(t, err)
	require.Len(t, mismatches, 2)

	byFile := map[string]Mismatch{}
	for _, m := range mismatches {
		byFile[m.File] = m
	}
	assert.Equal(t, 0, byFile["xoshiro128pp_a_int.json"].Index)
	assert.Equal(t, "00000282", byFile["xoshiro128pp_a_int.json"].Got)
	assert.Equal(t, "missing", byFile["lemire_R1_int.json"].Reason)
}

func TestVerifyCountMismatch(t *testing.T) {
	dir := t.TempDir()
	plan := Plan{{Algorithm: refrng.Xorwow, ID: "a", Seeds: []uint64{1, 2, 3, 4, 5}}}

	_, err := Emit(context.Background(), plan, Options{Dir: dir, Count: 8, Workers: 1})
	require.NoError(t, err)

	mismatches, err := Verify(context.Background(), plan, Options{Dir: dir, Count: 4, Workers: 1})
	require.NoError(t, err)
	require.Len(t, mismatches, 3)
	for _, m := range mismatches {
		assert.Equal(t, -1, m.Index)
		assert.Contains(t, m.String(), "expected")
	}
}

func TestEmitCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Emit(ctx, DefaultPlan(), Options{Dir: t.TempDir(), Count: 4, Workers: 2})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFilter(t *testing.T) {
	p, err := DefaultPlan().Filter([]string{"xorshift128+", "lemire-neill"})
	require.NoError(t, err)
	require.Len(t, p, 3+7)
	for _, r := range p {
		assert.Contains(t, []string{"xorshift128p", "lemire-neill"}, r.Name())
	}

	all, err := DefaultPlan().Filter(nil)
	require.NoError(t, err)
	assert.Len(t, all, len(DefaultPlan()))

	_, err = DefaultPlan().Filter([]string{"pcg64"})
	assert.Error(t, err)
}
