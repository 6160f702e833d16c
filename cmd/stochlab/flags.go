package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/stochlab/config"
)

// profileFlags are the per-command overrides of a config.Profile. Only flags
// the user actually set are applied.
type profileFlags struct {
	algorithm   string
	minN        int
	maxN        int
	step        int
	trials      int
	p           float64
	seed        int64
	confidence  float64
	strategy    string
	partition   string
	metric      string
	maxAttempts int
}

func (f *profileFlags) register(fs *pflag.FlagSet, withRange bool) {
	d := config.Default()
	fs.StringVarP(&f.algorithm, "algorithm", "a", d.Algorithm, "merge_sort, quicksort or graph_bfs")
	if withRange {
		fs.IntVar(&f.minN, "min-n", d.MinN, "smallest input size")
		fs.IntVar(&f.maxN, "max-n", d.MaxN, "largest input size (inclusive)")
		fs.IntVar(&f.step, "step", d.Step, "input size increment")
	}
	fs.IntVarP(&f.trials, "trials", "k", d.Trials, "trials per input size")
	fs.Float64VarP(&f.p, "p", "p", d.EdgeProbability, "edge probability (graph_bfs)")
	fs.Int64Var(&f.seed, "seed", 0, "random seed (0 = clock)")
	fs.Float64Var(&f.confidence, "confidence", d.Confidence, "confidence level of the t interval")
	fs.StringVar(&f.strategy, "strategy", d.Strategy, "graph connectivity strategy: spanning_tree or rejection")
	fs.StringVar(&f.partition, "partition", d.Partition, "quicksort partition test: le or lt")
	fs.StringVar(&f.metric, "metric", "", "metric to average (default: the algorithm's primary metric)")
	fs.IntVar(&f.maxAttempts, "max-attempts", 0, "rejection sampling budget (0 = default)")
}

// resolve loads the profile for cmd and overlays explicitly set flags.
func (f *profileFlags) resolve(cmd *cobra.Command, root *rootOptions) (config.Profile, error) {
	p, err := config.Load(root.configPath)
	if err != nil {
		return config.Profile{}, err
	}
	fs := cmd.Flags()
	set := func(name string, apply func()) {
		if fs.Changed(name) {
			apply()
		}
	}
	set("algorithm", func() { p.Algorithm = f.algorithm })
	set("min-n", func() { p.MinN = f.minN })
	set("max-n", func() { p.MaxN = f.maxN })
	set("step", func() { p.Step = f.step })
	set("trials", func() { p.Trials = f.trials })
	set("p", func() { p.EdgeProbability = f.p })
	set("seed", func() { p.Seed = f.seed })
	set("confidence", func() { p.Confidence = f.confidence })
	set("strategy", func() { p.Strategy = f.strategy })
	set("partition", func() { p.Partition = f.partition })
	set("metric", func() { p.Metric = f.metric })
	set("max-attempts", func() { p.MaxAttempts = f.maxAttempts })

	if err := p.Validate(); err != nil {
		return config.Profile{}, err
	}

	return p, nil
}
