package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	reportsGenerated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "invomate_reports_generated_total",
		Help: "Unified reports computed from the invoice repository.",
	})
	cacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "invomate_report_cache_hits_total",
		Help: "Unified report requests served from the TTL cache.",
	})
	cacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "invomate_report_cache_misses_total",
		Help: "Unified report requests that missed the TTL cache.",
	})
)
