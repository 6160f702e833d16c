// Command stochlab runs Monte Carlo sweeps over instrumented algorithms and
// prints empirical means next to their asymptotic predictions.
//
//	stochlab sweep --algorithm quicksort --min-n 100 --max-n 2000 --step 100 --trials 50
//	stochlab trial --algorithm graph_bfs --n 500 --p 0.05
//	stochlab step --algorithm merge_sort --n 8
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
