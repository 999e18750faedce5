package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/nozzle/refrng"
	"github.com/nozzle/refrng/bounded"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List algorithms with their sample width and seed arity",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tBITS\tSEEDS")
		for _, alg := range refrng.Algorithms() {
			fmt.Fprintf(w, "%s\t%d\t%d\n", alg, alg.Width(), alg.SeedArity())
		}
		for _, m := range []bounded.Method{bounded.DivisionFree, bounded.ONeill} {
			fmt.Fprintf(w, "%s\t32\trange\n", m)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
