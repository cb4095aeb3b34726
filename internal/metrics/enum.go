// SPDX-License-Identifier: MIT

// Package metrics exposes Prometheus collectors for enum declaration and lookup.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	typesDeclared = promauto.NewCounter(prometheus.CounterOpts{
		Name: "enumkit_types_declared_total",
		Help: "Total number of enum types declared across all registries",
	})

	poolLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "enumkit_pool_lookups_total",
		Help: "Instance pool lookups by enum type and outcome",
	}, []string{"type", "result"}) // result=hit|miss

	invalidValues = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "enumkit_invalid_values_total",
		Help: "Lookups rejected because the payload is not declared on the enum type",
	}, []string{"type"})

	setSkipped = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "enumkit_set_skipped_values_total",
		Help: "Entries skipped while building an enum set in silent mode",
	}, []string{"type"})
)

// RecordTypeDeclared counts one successfully declared enum type.
func RecordTypeDeclared() {
	typesDeclared.Inc()
}

// RecordPoolLookup records whether an instance pool lookup found an existing singleton.
func RecordPoolLookup(typeName string, hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	poolLookups.WithLabelValues(typeName, result).Inc()
}

// RecordInvalidValue counts a rejected FromValue lookup.
func RecordInvalidValue(typeName string) {
	invalidValues.WithLabelValues(typeName).Inc()
}

// RecordSetSkip counts an entry dropped by silent set construction.
func RecordSetSkip(typeName string) {
	setSkipped.WithLabelValues(typeName).Inc()
}
