package services

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	analysesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "twse_analyses_total",
		Help: "Number of analysis runs processed.",
	})

	analysisFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "twse_analysis_failures_total",
		Help: "Number of analysis runs aborted by an unhandled failure.",
	})

	schemaErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "twse_schema_errors_total",
		Help: "Schema errors per source table.",
	}, []string{"source"})

	analysisDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "twse_analysis_duration_seconds",
		Help:    "Wall time of one analysis run.",
		Buckets: prometheus.DefBuckets,
	})
)
