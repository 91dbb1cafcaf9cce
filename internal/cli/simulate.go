package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/percolate/montecarlo"
	"github.com/katalvlaran/percolate/random"
)

func (a *app) simulateCmd() *cobra.Command {
	var (
		seed int64
		grid bool
	)
	cmd := &cobra.Command{
		Use:   "simulate N",
		Short: "Run one trial on an N-by-N grid and show where it percolated",
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("%w: simulate takes exactly one argument N", ErrUsage)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseInt("N", args[0])
			if err != nil {
				return err
			}
			m, err := montecarlo.Simulate(cmd.Context(), n, random.New(a.seed(seed)))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if grid {
				fmt.Fprint(out, m)
			}
			_, err = fmt.Fprintf(out, "%d/%d sites open, threshold = %f\n",
				m.NumberOfOpenSites(), n*n, montecarlo.Threshold(m))
			return err
		},
	}
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 = from clock)")
	cmd.Flags().BoolVar(&grid, "grid", true, "print the final grid (# closed, . open, o full)")

	return cmd
}
