// Package metrics exposes Prometheus collectors for the viewer server.
package metrics

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector bundles the server metrics. A nil *Collector is valid and
// records nothing.
type Collector struct {
	gatherer prometheus.Gatherer

	Requests      *prometheus.CounterVec
	Durations     *prometheus.HistogramVec
	TileFetches   *prometheus.CounterVec
	DatasetSize   prometheus.Gauge
	VisibleResult prometheus.Histogram
}

// New registers the collectors against reg, defaulting to the global
// registry when reg is nil.
func New(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	c := &Collector{
		gatherer: gatherer,
		Requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "snapmap_http_requests_total",
			Help: "Total number of HTTP requests, labeled by route and status code.",
		}, []string{"route", "code"}),
		Durations: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "snapmap_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds.",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"route"}),
		TileFetches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "snapmap_tile_fetches_total",
			Help: "Tile requests labeled by style and source.",
		}, []string{"style", "source"}),
		DatasetSize: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "snapmap_dataset_features",
			Help: "Number of features in the loaded dataset.",
		}),
		VisibleResult: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "snapmap_visible_features",
			Help:    "Size of filtered feature results.",
			Buckets: []float64{0, 1, 5, 10, 50, 100, 250, 500, 1000},
		}),
	}

	for _, col := range []prometheus.Collector{c.Requests, c.Durations, c.TileFetches, c.DatasetSize, c.VisibleResult} {
		if err := reg.Register(col); err != nil {
			return nil, fmt.Errorf("register metrics: %w", err)
		}
	}

	return c, nil
}

// ObserveRequest records one handled request.
func (c *Collector) ObserveRequest(route, code string, seconds float64) {
	if c == nil {
		return
	}
	c.Requests.WithLabelValues(route, code).Inc()
	c.Durations.WithLabelValues(route).Observe(seconds)
}

// ObserveTile records where a tile was served from.
func (c *Collector) ObserveTile(style, source string) {
	if c == nil {
		return
	}
	c.TileFetches.WithLabelValues(style, source).Inc()
}

// SetDatasetSize records the loaded dataset size.
func (c *Collector) SetDatasetSize(n int) {
	if c == nil {
		return
	}
	c.DatasetSize.Set(float64(n))
}

// ObserveVisible records the size of a filtered result.
func (c *Collector) ObserveVisible(n int) {
	if c == nil {
		return
	}
	c.VisibleResult.Observe(float64(n))
}

// Handler serves the registry in the Prometheus text format.
func (c *Collector) Handler() http.Handler {
	if c == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(c.gatherer, promhttp.HandlerOpts{})
}
