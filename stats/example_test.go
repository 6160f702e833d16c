package stats_test

import (
	"fmt"

	"github.com/katalvlaran/stochlab/stats"
)

func ExampleAnalyze() {
	est, err := stats.Analyze(stats.Sample{10, 12, 11, 13, 9})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("k=%d mean=%.1f var=%.1f ci=[%.2f, %.2f]\n", est.K, est.Mean, est.Variance, est.Lower, est.Upper)
	// Output: k=5 mean=11.0 var=2.5 ci=[9.04, 12.96]
}
