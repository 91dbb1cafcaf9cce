package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/percolate/internal/config"
	"github.com/katalvlaran/percolate/internal/report"
	"github.com/katalvlaran/percolate/montecarlo"
)

func (a *app) statsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats [N T]",
		Short: "Estimate the percolation threshold of an N-by-N grid over T trials",
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 0 && len(args) != 2 {
				return fmt.Errorf("%w: stats takes N and T together, or neither", ErrUsage)
			}
			return nil
		},
		RunE: a.runStats,
	}

	f := cmd.Flags()
	f.Int("n", 200, "grid side length")
	f.Int("trials", 100, "number of independent trials")
	f.Int64("seed", 0, "base random seed (0 = from clock)")
	f.Int("workers", 1, "trials run concurrently")
	f.Float64("confidence", montecarlo.DefaultConfidence, "confidence level of the interval")
	f.String("format", report.FormatText, "output format: text, json or toml")
	for _, key := range []string{"n", "trials", "seed", "workers", "confidence", "format"} {
		_ = a.v.BindPFlag(key, f.Lookup(key))
	}

	return cmd
}

func (a *app) runStats(cmd *cobra.Command, args []string) error {
	if len(args) == 2 {
		n, err := parseInt("N", args[0])
		if err != nil {
			return err
		}
		trials, err := parseInt("T", args[1])
		if err != nil {
			return err
		}
		a.v.Set("n", n)
		a.v.Set("trials", trials)
	}

	cfg, err := config.LoadFrom(a.v)
	if err != nil {
		return err
	}
	seed := a.seed(cfg.Seed)
	a.log.Printf("running %d trials on a %dx%d grid with %d worker(s)", cfg.Trials, cfg.N, cfg.N, cfg.Workers)

	res, err := montecarlo.Run(cmd.Context(), cfg.N, cfg.Trials,
		montecarlo.WithSeed(seed),
		montecarlo.WithWorkers(cfg.Workers),
		montecarlo.WithConfidence(cfg.Confidence),
		montecarlo.WithObserver(func(trial int, threshold float64) {
			a.log.Printf("trial %d: threshold %.6f", trial, threshold)
		}),
	)
	if err != nil {
		return err
	}

	return report.Write(cmd.OutOrStdout(), cfg.Format, res)
}
