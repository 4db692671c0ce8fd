package scheduler

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/umputun/feedstash/pkg/domain"
)

// Metrics collects ingestion counters. A nil *Metrics is valid and records nothing.
type Metrics struct {
	articlesIngested prometheus.Counter
	refreshErrors    *prometheus.CounterVec
	articlesSwept    prometheus.Counter
	passDuration     prometheus.Gauge
}

// NewMetrics registers ingestion metrics with reg, prometheus.DefaultRegisterer if nil
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	f := promauto.With(reg)
	return &Metrics{
		articlesIngested: f.NewCounter(prometheus.CounterOpts{
			Name: "feedstash_articles_ingested_total",
			Help: "Number of new articles stored by feed refreshes",
		}),
		refreshErrors: f.NewCounterVec(prometheus.CounterOpts{
			Name: "feedstash_feed_refresh_errors_total",
			Help: "Number of failed feed refreshes by kind",
		}, []string{"kind"}),
		articlesSwept: f.NewCounter(prometheus.CounterOpts{
			Name: "feedstash_articles_swept_total",
			Help: "Number of articles removed by retention sweeps",
		}),
		passDuration: f.NewGauge(prometheus.GaugeOpts{
			Name: "feedstash_refresh_pass_duration_seconds",
			Help: "Duration of the last full refresh pass",
		}),
	}
}

func (m *Metrics) ingested(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.articlesIngested.Add(float64(n))
}

func (m *Metrics) refreshFailed(err error) {
	if m == nil || err == nil {
		return
	}
	m.refreshErrors.WithLabelValues(errorKind(err)).Inc()
}

func (m *Metrics) swept(n int64) {
	if m == nil || n <= 0 {
		return
	}
	m.articlesSwept.Add(float64(n))
}

func (m *Metrics) passDone(d time.Duration) {
	if m == nil {
		return
	}
	m.passDuration.Set(d.Seconds())
}

// errorKind maps refresh errors to a metric label
func errorKind(err error) string {
	var fetchErr *domain.FetchError
	var parseErr *domain.ParseError
	switch {
	case errors.As(err, &fetchErr):
		return "fetch"
	case errors.As(err, &parseErr):
		return "parse"
	case errors.Is(err, domain.ErrTransient):
		return "store_transient"
	default:
		return "store"
	}
}
