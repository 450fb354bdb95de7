// Package metrics records per-run pipeline metrics in a private Prometheus
// registry and writes them out in the node_exporter text-file format.
package metrics

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "drafty"

type Collector struct {
	StageDuration *prometheus.HistogramVec
	StageFailures *prometheus.CounterVec
	LastRun       prometheus.Gauge
	RunSuccess    prometheus.Gauge

	registry *prometheus.Registry
	mu       sync.Mutex
	failed   bool
}

func New() *Collector {
	c := &Collector{registry: prometheus.NewRegistry()}

	c.StageDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "stage_duration_seconds",
			Help:      "Duration of pipeline stages",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 15, 30, 60, 120},
		},
		[]string{"stage"},
	)
	c.StageFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "stage_failures_total",
			Help:      "Pipeline stages that returned an error",
		},
		[]string{"stage"},
	)
	c.LastRun = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "last_run_timestamp_seconds",
		Help:      "Unix time the last run finished",
	})
	c.RunSuccess = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "last_run_success",
		Help:      "1 if every stage of the last run succeeded",
	})

	c.registry.MustRegister(c.StageDuration, c.StageFailures, c.LastRun, c.RunSuccess)
	return c
}

// ObserveStage records one stage execution.
func (c *Collector) ObserveStage(stage string, elapsed time.Duration, err error) {
	c.StageDuration.WithLabelValues(stage).Observe(elapsed.Seconds())
	if err != nil {
		c.StageFailures.WithLabelValues(stage).Inc()
		c.mu.Lock()
		c.failed = true
		c.mu.Unlock()
	}
}

func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// WriteTextfile stamps the run gauges and writes the registry to path. An
// empty path is a no-op.
func (c *Collector) WriteTextfile(path string, finished time.Time) error {
	if path == "" {
		return nil
	}

	c.mu.Lock()
	success := !c.failed
	c.mu.Unlock()
	c.LastRun.Set(float64(finished.Unix()))
	if success {
		c.RunSuccess.Set(1)
	} else {
		c.RunSuccess.Set(0)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create metrics dir: %w", err)
	}
	if err := prometheus.WriteToTextfile(path, c.registry); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
