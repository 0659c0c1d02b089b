package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	SignupsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "jinen_signups_total",
		Help: "Total number of accounts created.",
	})

	NurseriesCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "jinen_nurseries_created_total",
		Help: "Total number of nurseries created.",
	})

	ChildrenRegisteredTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "jinen_children_registered_total",
		Help: "Total number of child registrations filed.",
	})

	ChildUpdatesPostedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "jinen_child_updates_posted_total",
		Help: "Total number of diary updates posted.",
	})

	PaymentsRecordedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "jinen_payments_recorded_total",
		Help: "Total number of payment ledger entries recorded.",
	})

	OperationErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "jinen_operation_errors_total",
		Help: "Total number of errors encountered during specific operations.",
	},
		[]string{"operation"},
	)

	NurseryCacheItems = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "jinen_nursery_cache_items",
		Help: "Current number of nurseries held by the browse cache.",
	})
)
