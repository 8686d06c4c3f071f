// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package observability_test

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/plusgroup/internal/platform/observability"
)

/*
TestObserveRequest increments the labelled counter.
*/
func TestObserveRequest(t *testing.T) {
	counter := observability.RequestsTotal.WithLabelValues("PATCH", observability.OutcomeContractMismatch)
	before := testutil.ToFloat64(counter)

	observability.ObserveRequest("PATCH", observability.OutcomeContractMismatch, 404, time.Now())

	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}

/*
TestRecordFallback increments the per-operation fallback counter.
*/
func TestRecordFallback(t *testing.T) {
	counter := observability.FallbacksTotal.WithLabelValues("test_operation")
	before := testutil.ToFloat64(counter)

	observability.RecordFallback("test_operation")
	observability.RecordFallback("test_operation")

	assert.Equal(t, before+2, testutil.ToFloat64(counter))
}

/*
TestInitTracing_Disabled returns a no-op shutdown.
*/
func TestInitTracing_Disabled(t *testing.T) {
	shutdown, err := observability.InitTracing(observability.TracingConfig{ServiceName: "plusgroup-test"})
	assert.NoError(t, err)
	assert.NoError(t, shutdown(t.Context()))
}
