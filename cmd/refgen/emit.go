package main

import (
	"github.com/spf13/cobra"

	"github.com/nozzle/refrng/internal/fixture"
)

// emitCmd represents the emit command
var emitCmd = &cobra.Command{
	Use:   "emit",
	Short: "Write reference fixture files",
	Long: `Write one JSON file per run and output type into the fixture directory. For example:
  refgen emit --out testdata -a xorshift32,lemire`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, plan, err := options()
		if err != nil {
			return err
		}
		_, err = fixture.Emit(cmd.Context(), plan, opts)
		return err
	},
}

func init() {
	rootCmd.AddCommand(emitCmd)
}
