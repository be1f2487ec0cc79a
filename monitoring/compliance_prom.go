// Copyright 2025 the modelward contributors.
// SPDX-License-Identifier: AGPL-3.0-or-later

package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var ComplianceRecalculationDuration = promauto.NewHistogram(prometheus.HistogramOpts{
	Name:    "modelward_compliance_recalculation_duration_seconds",
	Help:    "Duration of a full compliance recalculation across the model inventory in seconds",
	Buckets: prometheus.DefBuckets,
})

var ModelsByComplianceStatus = promauto.NewGaugeVec(prometheus.GaugeOpts{
	Name: "modelward_models_by_compliance_status",
	Help: "Number of active models per compliance status",
}, []string{"status"})

var ModelsByApprovalStatus = promauto.NewGaugeVec(prometheus.GaugeOpts{
	Name: "modelward_models_by_approval_status",
	Help: "Number of active models per approval status",
}, []string{"status"})

var OverdueModels = promauto.NewGauge(prometheus.GaugeOpts{
	Name: "modelward_overdue_models",
	Help: "Number of active models currently past their validation grace period",
})

var StatusTransitionsAmount = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "modelward_status_transitions_amount",
	Help: "The total number of approval status transitions journaled, by trigger",
}, []string{"trigger"})
