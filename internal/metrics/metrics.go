package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Auth flow counters, exposed on /metrics.
var (
	// Signups counts account creation attempts by outcome.
	Signups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "auth_signups_total",
		Help: "Total number of signup attempts",
	}, []string{"outcome"})

	// Logins counts login attempts by outcome.
	Logins = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "auth_logins_total",
		Help: "Total number of login attempts",
	}, []string{"outcome"})

	// GateRejections counts requests the auth gate short-circuited.
	GateRejections = promauto.NewCounter(prometheus.CounterOpts{
		Name: "auth_gate_rejections_total",
		Help: "Total number of requests rejected by the auth gate",
	})
)

const (
	OutcomeOK       = "ok"
	OutcomeConflict = "conflict"
	OutcomeRejected = "rejected"
	OutcomeError    = "error"
)
