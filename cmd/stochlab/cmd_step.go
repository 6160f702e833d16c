package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/stochlab/simulation"
	"github.com/katalvlaran/stochlab/sorting"
	"github.com/katalvlaran/stochlab/trial"
)

func newStepCmd(root *rootOptions) *cobra.Command {
	var (
		flags profileFlags
		n     int
	)
	cmd := &cobra.Command{
		Use:   "step",
		Short: "Print every merge or partition step of one sort",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			prof, err := flags.resolve(cmd, root)
			if err != nil {
				return err
			}
			cfg, err := prof.Sweep()
			if err != nil {
				return err
			}
			opts := []simulation.Option{simulation.WithLogger(root.logger)}
			if cfg.Seed != 0 {
				opts = append(opts, simulation.WithSeed(cfg.Seed))
			}
			sim := simulation.New(opts...)
			if err := sim.Configure(cfg); err != nil {
				return err
			}
			st, err := sim.StepThrough(cfg.Kind, n)
			if err != nil {
				return err
			}
			printSteps(cmd.OutOrStdout(), cfg.Kind, st)

			return nil
		},
	}
	flags.register(cmd.Flags(), false)
	cmd.Flags().IntVarP(&n, "n", "n", 10, "number of keys")

	return cmd
}

func printSteps(w io.Writer, kind trial.Kind, st *sorting.Stepper) {
	i := 0
	for snap := range st.All() {
		fmt.Fprintf(w, "%3d %-9s %-14s cmp=%-4d %s\n",
			i, snap.Phase, fmt.Sprint(snap.Highlight), snap.Step.Comparisons, formatState(snap.State))
		i++
	}
	m := st.Metrics()
	fmt.Fprintf(w, "%s done: %d comparisons, %d array accesses, %d assignments\n",
		kind, m.Comparisons, m.ArrayAccesses, m.Assignments)
}

func formatState(xs []float64) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = fmt.Sprintf("%.3f", x)
	}

	return "[" + strings.Join(parts, " ") + "]"
}
