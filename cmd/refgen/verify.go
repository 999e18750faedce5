package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/nozzle/refrng/internal/fixture"
)

// verifyCmd represents the verify command
var verifyCmd = &cobra.Command{
	Use:   "verify [dir]",
	Short: "Compare fixture files with freshly generated values",
	Long: `Regenerate every run and compare it value by value with the files in dir
(default: --out). Exits non-zero on any mismatch. For example:
  refgen verify testdata`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, plan, err := options()
		if err != nil {
			return err
		}
		if len(args) == 1 {
			opts.Dir = args[0]
		}

		mismatches, err := fixture.Verify(cmd.Context(), plan, opts)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		for _, m := range mismatches {
			fmt.Fprintln(out, m)
		}
		if len(mismatches) > 0 {
			return errors.Errorf("%d mismatches in %s", len(mismatches), opts.Dir)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}
