package main

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/nozzle/refrng"
	"github.com/nozzle/refrng/bounded"
	"github.com/nozzle/refrng/convert"
	"github.com/nozzle/refrng/internal/fixture"
)

var (
	sampleConv   string
	sampleRange  uint32
	sampleMethod string
	sampleLimit  int
)

// sampleCmd represents the sample command
var sampleCmd = &cobra.Command{
	Use:   "sample <algorithm> <seed>...",
	Short: "Print outputs of one generator",
	Long: `Print the first outputs of a generator seeded with the given words.
Seeds accept decimal or 0x-prefixed hex. With --range the generator (64-bit
only) feeds 32-bit halves into a Lemire bounded draw. For example:
  refgen sample xoshiro256pp 1 2 3 4 --conv mult
  refgen sample xorshift64 777 --range 1000 --method lemire-neill`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		alg, err := refrng.ParseAlgorithm(args[0])
		if err != nil {
			return err
		}
		seeds, err := parseSeeds(args[1:])
		if err != nil {
			return err
		}
		g, err := refrng.New(alg, seeds...)
		if err != nil {
			return err
		}

		next, err := sampler(g)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		for i := 0; i < sampleLimit; i++ {
			s, err := next()
			if err != nil {
				return err
			}
			fmt.Fprintln(out, s)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sampleCmd)

	flags := sampleCmd.Flags()
	flags.StringVar(&sampleConv, "conv", "int", "output form: int, mult, cast or doornik (32-bit only)")
	flags.Uint32Var(&sampleRange, "range", 0, "bounded draws in [0, range) instead of raw output")
	flags.StringVar(&sampleMethod, "method", bounded.DivisionFree.String(), "bounded method: lemire or lemire-neill")
	flags.IntVarP(&sampleLimit, "limit", "l", 10, "number of values to print")
}

func parseSeeds(args []string) ([]uint64, error) {
	seeds := make([]uint64, len(args))
	for i, a := range args {
		v, err := strconv.ParseUint(a, 0, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "seed %d", i)
		}
		seeds[i] = v
	}
	return seeds, nil
}

// sampler returns a closure yielding the formatted values selected by the
// command's flags.
func sampler(g *refrng.Generator) (func() (string, error), error) {
	if sampleRange > 0 {
		method, err := bounded.ParseMethod(sampleMethod)
		if err != nil {
			return nil, err
		}
		src, err := g.Source64()
		if err != nil {
			return nil, err
		}
		feeder := bounded.NewFeeder(src)
		return func() (string, error) {
			v, err := method.Draw(feeder, sampleRange)
			return strconv.FormatUint(uint64(v), 10), err
		}, nil
	}

	switch sampleConv {
	case fixture.TypeInt:
		return func() (string, error) { return g.Next().Hex(), nil }, nil
	case "doornik", fixture.TypeDoornik:
		if g.Algorithm().Width() != 32 {
			return nil, errors.Errorf("doornik conversion needs a 32-bit algorithm, %s is %d-bit", g.Algorithm(), g.Algorithm().Width())
		}
		return func() (string, error) {
			return fixture.FormatDouble(convert.Doornik32(g.Next().Uint32())), nil
		}, nil
	}
	conv, err := convert.Lookup(sampleConv)
	if err != nil {
		return nil, err
	}
	return func() (string, error) { return fixture.FormatDouble(g.Float64(conv)), nil }, nil
}
