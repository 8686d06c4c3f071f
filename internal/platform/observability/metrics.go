// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package observability holds the metrics and tracing used by the transport.
package observability

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels for [RequestsTotal].
const (
	OutcomeOK               = "ok"
	OutcomeContractMismatch = "contract_violation"
	OutcomeTransportFailure = "transport_failure"
	OutcomeRejected         = "rejected"
)

var (
	// RequestsTotal counts outbound requests by method and outcome.
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "plusgroup_client_requests_total",
		Help: "Total outbound requests to the plus-group service",
	}, []string{"method", "outcome"})

	// RequestLatency records outbound request latency by method and status.
	RequestLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "plusgroup_client_request_latency_seconds",
		Help:    "Outbound request latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "status"})

	// FallbacksTotal counts operations that returned their fallback value.
	FallbacksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "plusgroup_client_fallbacks_total",
		Help: "Total operations that discarded an error and returned a fallback",
	}, []string{"operation"})
)

// ObserveRequest records one finished request. status is zero when no response arrived.
func ObserveRequest(method, outcome string, status int, start time.Time) {
	RequestsTotal.WithLabelValues(method, outcome).Inc()
	RequestLatency.WithLabelValues(method, strconv.Itoa(status)).Observe(time.Since(start).Seconds())
}

// RecordFallback increments the fallback counter for operation.
func RecordFallback(operation string) {
	FallbacksTotal.WithLabelValues(operation).Inc()
}
