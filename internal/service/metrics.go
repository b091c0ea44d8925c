package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	instancesMaterialized = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "habit_instances_materialized_total",
		Help: "Number of habit instances created from recurrence rules.",
	}, []string{"source"})

	instancesMarked = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "habit_instances_marked_total",
		Help: "Number of instance status changes.",
	}, []string{"status"})

	instancesSoftDeleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "habit_instances_soft_deleted_total",
		Help: "Number of pending instances soft-deleted after a schedule change.",
	})
)
