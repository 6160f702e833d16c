package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/stochlab/simulation"
	"github.com/katalvlaran/stochlab/sweep"
	"github.com/katalvlaran/stochlab/telemetry"
)

func newSweepCmd(root *rootOptions) *cobra.Command {
	var (
		flags       profileFlags
		metricsAddr string
	)
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Sweep input sizes and compare mean cost with theory",
		Long: `Runs k trials at every n from --min-n to --max-n (step --step) and prints one
row per completed size as soon as it is available.

Sort algorithms report a Student-t confidence interval; graph_bfs reports the
mean number of edges examined against p·n(n−1)/2.

Ctrl-C stops the sweep at the next checkpoint; sizes that did not finish are
not printed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			prof, err := flags.resolve(cmd, root)
			if err != nil {
				return err
			}
			cfg, err := prof.Sweep()
			if err != nil {
				return err
			}

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()
			g, gctx := errgroup.WithContext(ctx)

			reg := prometheus.NewRegistry()
			simOpts := []simulation.Option{
				simulation.WithLogger(root.logger),
				simulation.WithObserver(simulation.LogObserver{Log: root.logger}),
			}
			if metricsAddr != "" {
				reg.MustRegister(collectors.NewGoCollector())
				simOpts = append(simOpts, simulation.WithObserver(telemetry.NewCollector(reg)))
				serveMetrics(gctx, g, metricsAddr, reg, root.logger)
			}
			sim := simulation.New(simOpts...)
			if err := sim.Configure(cfg); err != nil {
				return err
			}

			sigs := make(chan os.Signal, 1)
			signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
			defer func() {
				signal.Stop(sigs)
				close(sigs)
			}()
			go func() {
				if _, ok := <-sigs; ok {
					root.logger.Warn("interrupt received, stopping at next checkpoint")
					sim.RequestCancel()
				}
			}()

			seq, err := sim.Run()
			if err != nil {
				return err
			}
			sweepErr := printSweep(cmd.OutOrStdout(), seq)
			cancel()
			if err := g.Wait(); err != nil && sweepErr == nil {
				return err
			}

			return sweepErr
		},
	}
	flags.register(cmd.Flags(), true)
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "serve Prometheus /metrics on this address while sweeping (e.g. :9090)")

	return cmd
}

// printSweep consumes seq, printing each point as it completes, then the
// completed-versus-requested summary.
func printSweep(w io.Writer, seq *sweep.Sequence) error {
	hasCI := seq.Kind().IsSort()
	if hasCI {
		fmt.Fprintf(w, "%8s %14s %14s %8s %14s %14s\n", "n", "mean", "theory", "ratio", "ci_lower", "ci_upper")
	} else {
		fmt.Fprintf(w, "%8s %14s %14s %8s\n", "n", "mean", "theory", "ratio")
	}
	for seq.Next() {
		p := seq.Point()
		if p.HasCI {
			fmt.Fprintf(w, "%8d %14.2f %14.2f %8.4f %14.2f %14.2f\n", p.N, p.Mean, p.Theory, p.Ratio(), p.Lower, p.Upper)
		} else {
			fmt.Fprintf(w, "%8d %14.2f %14.2f %8.4f\n", p.N, p.Mean, p.Theory, p.Ratio())
		}
	}
	fmt.Fprintln(w, simulation.Report(seq.Summary()))

	return seq.Err()
}

// serveMetrics exposes reg on addr until ctx is done.
func serveMetrics(ctx context.Context, g *errgroup.Group, addr string, reg *prometheus.Registry, log *slog.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	g.Go(func() error {
		log.Info("serving metrics", slog.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("metrics server on %s: %w", addr, err)
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		return srv.Shutdown(sctx)
	})
}
