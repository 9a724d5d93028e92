// File: utils/metrics.go
package utils

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// SignInAttempts counts sign-in attempts by outcome
	// (approved, pending, invalid_credentials, error).
	SignInAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "niryaat_signin_attempts_total",
		Help: "Number of sign-in attempts by outcome.",
	}, []string{"outcome"})

	// PolicyDecisions counts access policy evaluations by capability and decision.
	PolicyDecisions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "niryaat_policy_decisions_total",
		Help: "Number of access policy decisions by capability and decision.",
	}, []string{"capability", "decision"})

	// Registrations counts completed sign-ups.
	Registrations = promauto.NewCounter(prometheus.CounterOpts{
		Name: "niryaat_registrations_total",
		Help: "Number of completed registrations.",
	})
)
