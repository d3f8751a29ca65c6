// Package metrics defines and registers all custom Prometheus metrics for
// the complaint API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register with the default Prometheus registry at import time; the
// router exposes them on /metrics alongside the echoprometheus HTTP series.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "civic"

// ComplaintsSubmittedTotal counts accepted complaint submissions.
// Labels:
//   - type: the complaint type (e.g. "Road")
//   - priority: the declared priority (e.g. "Emergency")
var ComplaintsSubmittedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "complaints_submitted_total",
		Help:      "Total number of complaints accepted, by type and priority.",
	},
	[]string{"type", "priority"},
)

// StatusUpdatesTotal counts admin triage actions by resulting status.
var StatusUpdatesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "status_updates_total",
		Help:      "Total number of complaint status updates, by new status.",
	},
	[]string{"status"},
)

// TrackingLookupsTotal counts public tracking lookups.
// Label:
//   - result: "found" or "not_found"
var TrackingLookupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tracking_lookups_total",
		Help:      "Total number of public complaint-number lookups, by result.",
	},
	[]string{"result"},
)

// QRPayloadsGeneratedTotal counts generated location QR payloads.
var QRPayloadsGeneratedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "qr_payloads_generated_total",
		Help:      "Total number of location QR payload URLs generated.",
	},
)

// LoginAttemptsTotal counts admin login attempts.
// Label:
//   - result: "success" or "failure"
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of admin login attempts, by result.",
	},
	[]string{"result"},
)
