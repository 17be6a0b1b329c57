// Package metrics exports sync outcomes to Prometheus.
package metrics

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/YZcontent/yz-ad-club-backend/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "yodeck_sync"

// Batch outcomes reported by [Recorder.ObserveBatch].
const (
	BatchCompleted = "completed"
	BatchRejected  = "rejected"
)

// Recorder captures telemetry of sync batches and item uploads.
type Recorder interface {
	ObserveItem(strategy string, status models.ItemStatus, took time.Duration)
	ObserveBatch(outcome string)
}

// PrometheusRecorder exports sync metrics to Prometheus.
type PrometheusRecorder struct {
	items          *prometheus.CounterVec
	uploadDuration *prometheus.HistogramVec
	batches        *prometheus.CounterVec

	gatherer prometheus.Gatherer
}

// NewPrometheusRecorder registers the sync collectors on reg. A nil reg
// uses a private registry, which keeps repeated construction in tests
// independent. Collectors already registered on reg are reused.
func NewPrometheusRecorder(reg *prometheus.Registry) (*PrometheusRecorder, error) {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}

	r := &PrometheusRecorder{
		items: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "items_total",
			Help:      "Content items processed, by upload strategy and outcome.",
		}, []string{"strategy", "status"}),
		uploadDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "upload_duration_seconds",
			Help:      "Latency of a single item upload, including the source download for proxy-upload.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"strategy"}),
		batches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "batches_total",
			Help:      "Sync batches, by outcome.",
		}, []string{"outcome"}),
		gatherer: reg,
	}

	if err := register(reg, &r.items); err != nil {
		return nil, err
	}
	if err := register(reg, &r.uploadDuration); err != nil {
		return nil, err
	}
	if err := register(reg, &r.batches); err != nil {
		return nil, err
	}

	return r, nil
}

func register[C prometheus.Collector](reg prometheus.Registerer, collector *C) error {
	if err := reg.Register(*collector); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				*collector = existing
				return nil
			}
		}
		return fmt.Errorf("register sync metric: %w", err)
	}
	return nil
}

// ObserveItem implements [Recorder].
func (r *PrometheusRecorder) ObserveItem(strategy string, status models.ItemStatus, took time.Duration) {
	if r == nil {
		return
	}
	r.items.WithLabelValues(strategy, string(status)).Inc()
	r.uploadDuration.WithLabelValues(strategy).Observe(took.Seconds())
}

// ObserveBatch implements [Recorder].
func (r *PrometheusRecorder) ObserveBatch(outcome string) {
	if r == nil {
		return
	}
	r.batches.WithLabelValues(outcome).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (r *PrometheusRecorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.gatherer, promhttp.HandlerOpts{})
}

type nopRecorder struct{}

// Nop returns a [Recorder] that drops every observation.
func Nop() Recorder {
	return nopRecorder{}
}

func (nopRecorder) ObserveItem(string, models.ItemStatus, time.Duration) {}

func (nopRecorder) ObserveBatch(string) {}
