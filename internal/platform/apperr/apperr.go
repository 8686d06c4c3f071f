// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package apperr defines the centralized error type for outbound calls to the
plus-group service.

It classifies every way a remote call can end badly so that callers can branch
on a machine-readable code instead of parsing messages.

Kinds:

  - CONTRACT_VIOLATION: a response arrived but its status did not match the
    operation's expected status.
  - TRANSPORT_FAILURE: no response arrived (network error, timeout, cancelled context).
  - MALFORMED_RESPONSE: the status matched but the body could not be decoded.
  - VALIDATION_ERROR: the call was rejected locally before dispatch.
  - UNAUTHORIZED: the configured credentials cannot be used.
*/
package apperr

import (
	"errors"
	"fmt"
)

// # Error Codes

const (
	CodeContractViolation = "CONTRACT_VIOLATION"
	CodeTransportFailure  = "TRANSPORT_FAILURE"
	CodeMalformedResponse = "MALFORMED_RESPONSE"
	CodeValidation        = "VALIDATION_ERROR"
	CodeUnauthorized      = "UNAUTHORIZED"
)

// AppError is the canonical error type returned by the client.
//
// HTTPStatus holds the status that was actually received from the remote
// service, or zero when no response arrived.
type AppError struct {
	// Code is a machine-readable error identifier (e.g. "CONTRACT_VIOLATION").
	Code string `json:"code"`
	// Message is a human-readable description.
	Message string `json:"error"`
	// HTTPStatus is the received HTTP status code, zero if none.
	HTTPStatus int `json:"status,omitempty"`
	// Expected is the status the operation required, zero if not applicable.
	Expected int `json:"expected,omitempty"`
	// Method and Path identify the outbound request.
	Method string `json:"method,omitempty"`
	Path   string `json:"path,omitempty"`
	// Cause is the underlying error.
	Cause error `json:"-"`
	// Details holds per-field validation errors for VALIDATION_ERROR.
	Details []FieldError `json:"details,omitempty"`
}

// FieldError represents a single field-level validation failure.
type FieldError struct {
	// Field is the JSON field name that failed validation.
	Field string `json:"field"`
	// Message is the human-readable description of the failure.
	Message string `json:"message"`
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

// Unwrap allows [errors.Is] and [errors.As] to traverse the cause chain.
func (e *AppError) Unwrap() error { return e.Cause }

// # Remote Outcomes

// ContractViolation creates an [AppError] for a response whose status code
// differs from the one the operation declared. An expected value of zero
// stands for "any 2xx".
//
// Example:
//
//	apperr.ContractViolation("GET", "/plus-group/groups", 200, 404)
func ContractViolation(method, path string, expected, got int) *AppError {
	want := "2xx"
	if expected != 0 {
		want = fmt.Sprintf("%d", expected)
	}

	return &AppError{
		Code:       CodeContractViolation,
		Message:    fmt.Sprintf("%s %s: expected status %s, got %d", method, path, want, got),
		HTTPStatus: got,
		Expected:   expected,
		Method:     method,
		Path:       path,
	}
}

// TransportFailure creates an [AppError] for a request that produced no response.
func TransportFailure(method, path string, cause error) *AppError {
	return &AppError{
		Code:    CodeTransportFailure,
		Message: fmt.Sprintf("%s %s: no response", method, path),
		Method:  method,
		Path:    path,
		Cause:   cause,
	}
}

// MalformedResponse creates an [AppError] for a body that could not be decoded.
func MalformedResponse(cause error) *AppError {
	return &AppError{
		Code:    CodeMalformedResponse,
		Message: "response body could not be decoded",
		Cause:   cause,
	}
}

// # Local Rejections

// ValidationError creates an [AppError] with optional per-field details.
func ValidationError(msg string, details ...FieldError) *AppError {
	return &AppError{
		Code:    CodeValidation,
		Message: msg,
		Details: details,
	}
}

// Unauthorized creates an [AppError] for unusable credentials.
func Unauthorized(msg string) *AppError {
	return &AppError{
		Code:    CodeUnauthorized,
		Message: msg,
	}
}

// # Helpers

// As extracts the [*AppError] from err's chain. It returns nil if not found.
func As(err error) *AppError {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae
	}
	return nil
}

// IsContractViolation reports whether err is a status mismatch.
func IsContractViolation(err error) bool {
	return hasCode(err, CodeContractViolation)
}

// IsTransportFailure reports whether err is a request that never got a response.
func IsTransportFailure(err error) bool {
	return hasCode(err, CodeTransportFailure)
}

// IsValidation reports whether err was raised by local validation.
func IsValidation(err error) bool {
	return hasCode(err, CodeValidation)
}

func hasCode(err error, code string) bool {
	ae := As(err)
	return ae != nil && ae.Code == code
}
