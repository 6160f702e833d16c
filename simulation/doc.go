// Package simulation is the facade a presentation layer drives:
//
//	sim := simulation.New(simulation.WithLogger(log))
//	if err := sim.Configure(cfg); err != nil { ... }   // clears any old cancel request
//	seq, err := sim.Run()                                // lazy, single pass
//	for seq.Next() { draw(seq.Point()) }
//	fmt.Println(simulation.Report(seq.Summary()))
//
// RequestCancel may be called from any goroutine (a signal handler, a UI
// button); the running sequence stops at its next checkpoint. A cancel
// requested after Configure and before Run yields an empty series.
//
// StepThrough returns a snapshot stepper for animating a single sort.
package simulation
