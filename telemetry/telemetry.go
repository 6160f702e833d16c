// Package telemetry exports sweep progress as Prometheus metrics.
//
// Collector implements sweep.Observer, so attaching it to a Simulator or a
// Sequence is enough:
//
//	reg := prometheus.NewRegistry()
//	col := telemetry.NewCollector(reg)
//	sim := simulation.New(simulation.WithObserver(col))
//
// All metrics live on the supplied registerer; nothing touches the global
// default registry unless the caller passes prometheus.DefaultRegisterer.
package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/stochlab/sweep"
	"github.com/katalvlaran/stochlab/trial"
)

const namespace = "stochlab"

// Collector holds the sweep metrics.
type Collector struct {
	trials      *prometheus.CounterVec
	points      *prometheus.CounterVec
	stops       *prometheus.CounterVec
	observation *prometheus.HistogramVec
	ratio       *prometheus.GaugeVec
	halfWidth   *prometheus.GaugeVec
	lastN       *prometheus.GaugeVec
}

// NewCollector registers the sweep metrics on reg. It panics if they are
// already registered there, as promauto does.
func NewCollector(reg prometheus.Registerer) *Collector {
	f := promauto.With(reg)

	return &Collector{
		trials: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "trials_total",
			Help:      "Completed single trials by algorithm",
		}, []string{"algorithm"}),
		points: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sweep_points_total",
			Help:      "Completed sweep points by algorithm",
		}, []string{"algorithm"}),
		stops: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sweep_stops_total",
			Help:      "Finished sweeps by algorithm and stop reason",
		}, []string{"algorithm", "reason"}),
		observation: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "observation",
			Help:      "Primary metric of each trial (comparisons or edges examined)",
			Buckets:   prometheus.ExponentialBuckets(8, 4, 10),
		}, []string{"algorithm"}),
		ratio: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "mean_theory_ratio",
			Help:      "Empirical mean over theoretical prediction at the last point",
		}, []string{"algorithm"}),
		halfWidth: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "ci_halfwidth",
			Help:      "Confidence interval half-width at the last sort point",
		}, []string{"algorithm"}),
		lastN: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_n",
			Help:      "Input size of the last completed point",
		}, []string{"algorithm"}),
	}
}

// primary maps a kind to the metric recorded in the observation histogram.
func primary(kind trial.Kind) trial.Metric {
	if kind == trial.KindGraphBFS {
		return trial.MetricEdgesExamined
	}

	return trial.MetricComparisons
}

// OnTrial implements sweep.Observer.
func (c *Collector) OnTrial(kind trial.Kind, _ int, m trial.Metrics) {
	c.trials.WithLabelValues(string(kind)).Inc()
	if v, ok := m[primary(kind)]; ok {
		c.observation.WithLabelValues(string(kind)).Observe(v)
	}
}

// OnPoint implements sweep.Observer.
func (c *Collector) OnPoint(kind trial.Kind, p sweep.Point) {
	k := string(kind)
	c.points.WithLabelValues(k).Inc()
	c.lastN.WithLabelValues(k).Set(float64(p.N))
	c.ratio.WithLabelValues(k).Set(p.Ratio())
	if p.HasCI {
		c.halfWidth.WithLabelValues(k).Set(p.Upper - p.Mean)
	}
}

// OnStop implements sweep.Observer.
func (c *Collector) OnStop(s sweep.Summary) {
	c.stops.WithLabelValues(string(s.Kind), string(s.Reason)).Inc()
}

// TrialsFor returns the trials counter for kind.
func (c *Collector) TrialsFor(kind trial.Kind) prometheus.Counter {
	return c.trials.WithLabelValues(string(kind))
}

// PointsFor returns the points counter for kind.
func (c *Collector) PointsFor(kind trial.Kind) prometheus.Counter {
	return c.points.WithLabelValues(string(kind))
}

// StopsFor returns the stop counter for kind and reason.
func (c *Collector) StopsFor(kind trial.Kind, reason sweep.StopReason) prometheus.Counter {
	return c.stops.WithLabelValues(string(kind), string(reason))
}

// HalfWidthFor returns the interval half-width gauge for kind.
func (c *Collector) HalfWidthFor(kind trial.Kind) prometheus.Gauge {
	return c.halfWidth.WithLabelValues(string(kind))
}

// LastNFor returns the last-size gauge for kind.
func (c *Collector) LastNFor(kind trial.Kind) prometheus.Gauge {
	return c.lastN.WithLabelValues(string(kind))
}
