package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	transitionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lifecycle_status_transitions_total",
			Help: "Persisted status transitions by entity type and target status.",
		},
		[]string{"entity", "to"},
	)

	importedRowsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lifecycle_import_rows_total",
			Help: "Bulk import rows by entity type and outcome.",
		},
		[]string{"entity", "outcome"},
	)

	aboutGeneratedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lifecycle_about_generated_total",
			Help: "About texts generated by entity type and source.",
		},
		[]string{"entity", "source"},
	)
)
