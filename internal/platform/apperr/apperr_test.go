// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package apperr_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/plusgroup/internal/platform/apperr"
)

/*
TestContractViolation_Fields verifies the expected and received statuses are kept.
*/
func TestContractViolation_Fields(t *testing.T) {
	err := apperr.ContractViolation("GET", "/plus-group/groups", 200, 404)

	assert.Equal(t, apperr.CodeContractViolation, err.Code)
	assert.Equal(t, 200, err.Expected)
	assert.Equal(t, 404, err.HTTPStatus)
	assert.Contains(t, err.Error(), "expected status 200, got 404")
	assert.True(t, apperr.IsContractViolation(err))
	assert.False(t, apperr.IsTransportFailure(err))
}

/*
TestTransportFailure_Unwrap verifies the cause chain is traversable.
*/
func TestTransportFailure_Unwrap(t *testing.T) {
	err := apperr.TransportFailure("POST", "/plus-group/groups/1/posts", context.DeadlineExceeded)

	assert.True(t, errors.Is(err, context.DeadlineExceeded))
	assert.True(t, apperr.IsTransportFailure(err))
	assert.Zero(t, err.HTTPStatus)
}

/*
TestAs_Wrapped verifies extraction through fmt wrapping.
*/
func TestAs_Wrapped(t *testing.T) {
	wrapped := fmt.Errorf("outer: %w", apperr.ValidationError("Validation failed", apperr.FieldError{Field: "group_id"}))

	ae := apperr.As(wrapped)
	require.NotNil(t, ae)
	assert.Equal(t, apperr.CodeValidation, ae.Code)
	assert.True(t, apperr.IsValidation(wrapped))

	assert.Nil(t, apperr.As(errors.New("plain")))
}
