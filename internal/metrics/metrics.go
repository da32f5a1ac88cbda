// Package metrics exposes prometheus instrumentation for the lookup facade
// and its cache layer.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Lookups counts facade operations by kind
	Lookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "countryflag_lookups_total",
		Help: "Total number of lookup operations, by operation kind.",
	}, []string{"operation"})

	// CacheHits counts cache hits observed by the facade, by operation kind
	CacheHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "countryflag_cache_hits_total",
		Help: "Total number of cache hits, by operation kind.",
	}, []string{"operation"})

	// CacheMisses counts cache misses observed by the facade, by operation kind
	CacheMisses = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "countryflag_cache_misses_total",
		Help: "Total number of cache misses, by operation kind.",
	}, []string{"operation"})
)
