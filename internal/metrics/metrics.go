// Package metrics collects and exposes Prometheus metrics.
package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector records counters for the HTTP surface and the catalog cache.
type Collector struct {
	registry *prometheus.Registry

	httpStatus   *prometheus.CounterVec
	catalogHits  prometheus.Counter
	catalogMiss  prometheus.Counter
	catalogFails prometheus.Counter
	shelfAdds    prometheus.Counter
}

func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		httpStatus: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "bookaholic_http_responses_total",
			Help: "HTTP responses by status code",
		}, []string{"status_code"}),
		catalogHits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "bookaholic_catalog_cache_hits_total",
			Help: "Catalog lookups answered from the local cache",
		}),
		catalogMiss: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "bookaholic_catalog_cache_misses_total",
			Help: "Catalog lookups that reached the external client",
		}),
		catalogFails: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "bookaholic_catalog_failures_total",
			Help: "External catalog calls that failed",
		}),
		shelfAdds: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "bookaholic_shelf_adds_total",
			Help: "Shelf entries created",
		}),
	}

	c.registry.MustRegister(c.httpStatus, c.catalogHits, c.catalogMiss, c.catalogFails, c.shelfAdds)
	return c
}

func (c *Collector) RecordHTTPStatus(statusCode int) {
	c.httpStatus.WithLabelValues(strconv.Itoa(statusCode)).Inc()
}

func (c *Collector) RecordCatalogHit()     { c.catalogHits.Inc() }
func (c *Collector) RecordCatalogMiss()    { c.catalogMiss.Inc() }
func (c *Collector) RecordCatalogFailure() { c.catalogFails.Inc() }
func (c *Collector) RecordShelfAdd()       { c.shelfAdds.Inc() }

// Handler serves the /metrics endpoint for this collector's registry.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
