// Package stochlab is a Monte Carlo laboratory for the running time of
// classic algorithms: it counts the work an instrumented algorithm does on
// random inputs, averages it over many trials, and sets the mean next to
// the closed-form prediction.
//
// What is measured?
//
//	• Merge sort          - key comparisons, against n·log2 n
//	• Randomized quicksort - key comparisons, against n·log2 n (and 2n·ln n)
//	• BFS on random connected graphs - edges examined, against p·n(n−1)/2
//
// How the pieces fit
//
//	core/       - thread-safe undirected graph (vertices, edges, neighbors)
//	builder/    - random connected graphs: spanning tree + extras, or rejection sampling
//	bfs/        - breadth-first walker with hooks and operation counts
//	sorting/    - instrumented sorts and a step-through state machine
//	rng/        - seed policy and derived random streams
//	trial/      - Algorithm contract, cancellation Flag, Runner, Collect
//	stats/      - mean, variance and Student-t interval (gonum)
//	sweep/      - lazy, cancellable sweep over input sizes
//	simulation/ - Configure / RequestCancel / Run / StepThrough facade
//	telemetry/  - Prometheus collector for sweep progress
//	config/     - YAML profiles, .env and STOCHLAB_* overrides, validation
//	cmd/stochlab - the command-line front end
//
// Quick start
//
//	sim := simulation.New(simulation.WithSeed(1))
//	_ = sim.Configure(sweep.Config{Kind: trial.KindMergeSort, MinN: 100, MaxN: 1000, Step: 100, Trials: 50})
//	seq, _ := sim.Run()
//	for seq.Next() {
//		p := seq.Point()
//		fmt.Println(p.N, p.Mean, p.Theory, p.Lower, p.Upper)
//	}
//
// Execution is single-threaded and cooperative: the sweep checks its
// cancellation flag before each size and each trial, and never reports a
// size whose batch did not finish.
package stochlab
