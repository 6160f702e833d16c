package main

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/stochlab/rng"
	"github.com/katalvlaran/stochlab/stats"
	"github.com/katalvlaran/stochlab/trial"
)

func newTrialCmd(root *rootOptions) *cobra.Command {
	var (
		flags profileFlags
		n     int
	)
	cmd := &cobra.Command{
		Use:   "trial",
		Short: "Monte Carlo report for a single input size",
		Long: `Runs k trials at one input size and prints the sample mean, variance,
confidence interval, the theoretical prediction and the mean/theory ratio.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if n <= 0 {
				return fmt.Errorf("--n=%d must be positive: %w", n, trial.ErrInvalidParameter)
			}
			prof, err := flags.resolve(cmd, root)
			if err != nil {
				return err
			}
			cfg, err := prof.Sweep()
			if err != nil {
				return err
			}
			alg, err := cfg.Algorithm()
			if err != nil {
				return err
			}

			r, seed := rng.FromClock()
			if cfg.Seed != 0 {
				r, seed = rng.FromSeed(cfg.Seed), cfg.Seed
			}
			log := root.logger.With(slog.String("run_id", uuid.NewString()))
			log.Info("trial batch started",
				slog.String("algorithm", string(alg.Kind())),
				slog.Int("n", n),
				slog.Int("trials", cfg.Trials),
				slog.Int64("seed", seed),
			)

			runner := &trial.Runner{Algorithm: alg, Metric: cfg.Metric, Rand: r}
			sample, err := trial.Collect(runner, n, cfg.Trials)
			if err != nil {
				return err
			}
			metric := cfg.Metric
			if metric == "" {
				metric = alg.Primary()
			}
			theory := alg.Theory(n)

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "algorithm: %s\nn: %d\ntrials: %d\nmetric: %s\n", alg.Kind(), n, len(sample), metric)
			est, err := stats.AnalyzeLevel(sample, cfg.Level)
			switch {
			case err == nil:
				fmt.Fprintf(w, "mean: %.4f\nvariance: %.4f\n", est.Mean, est.Variance)
				fmt.Fprintf(w, "ci(%.0f%%): [%.4f, %.4f]\n", est.Level*100, est.Lower, est.Upper)
			case len(sample) > 0:
				fmt.Fprintf(w, "mean: %.4f\n", stats.Mean(sample))
			default:
				return err
			}
			fmt.Fprintf(w, "theory: %.4f\nratio: %.4f\n", theory, stats.Ratio(stats.Mean(sample), theory))
			if alg.Kind() == trial.KindQuickSort {
				fmt.Fprintf(w, "2n·ln(n): %.4f\n", trial.QuickExpected(n))
			}

			return nil
		},
	}
	flags.register(cmd.Flags(), false)
	cmd.Flags().IntVarP(&n, "n", "n", 1000, "input size")

	return cmd
}
