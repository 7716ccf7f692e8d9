// README: Prometheus collectors for the simulation engine and catalog loader.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector bundles the Prometheus metrics exposed on /metrics.
type Collector struct {
	gatherer prometheus.Gatherer

	Simulations        *prometheus.CounterVec
	SimulationDuration prometheus.Histogram
	OptionsRanked      prometheus.Histogram
	CatalogRefreshes   *prometheus.CounterVec
}

// NewCollector registers the collectors against reg, defaulting to the
// global registry when reg is nil.
func NewCollector(reg prometheus.Registerer) *Collector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	c := &Collector{
		gatherer: gatherer,
		Simulations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "roamcost_simulations_total",
			Help: "Total simulation requests, labeled by outcome.",
		}, []string{"outcome"}),
		SimulationDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "roamcost_simulation_duration_seconds",
			Help:    "Simulation latency in seconds.",
			Buckets: []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1},
		}),
		OptionsRanked: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "roamcost_options_ranked",
			Help:    "Number of options returned per simulation.",
			Buckets: prometheus.LinearBuckets(1, 2, 10),
		}),
		CatalogRefreshes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "roamcost_catalog_refresh_total",
			Help: "Catalog CSV refresh runs, labeled by outcome.",
		}, []string{"outcome"}),
	}

	reg.MustRegister(c.Simulations, c.SimulationDuration, c.OptionsRanked, c.CatalogRefreshes)
	return c
}

// Handler returns the HTTP handler serving the /metrics endpoint.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.gatherer, promhttp.HandlerOpts{})
}
