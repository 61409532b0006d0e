/*
Package apierrors - Typed Error Taxonomy

==============================================================================
FILE: internal/apierrors/apierrors.go
==============================================================================

DESCRIPTION:
    Typed error definitions for the pipeline's error conditions: ParseError,
    EmptyInput, and NoDataForPeriod, as AppError values carrying a code, a
    message, an HTTP status, and an optional wrapped cause.

USAGE:
    if errors.Is(err, apierrors.ErrParse) { ... }
    return apierrors.Wrap(err, apierrors.ErrParse)

==============================================================================
*/
package apierrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Re-export standard library functions for convenience.
var (
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
)

// AppError is an application-level error with an HTTP status code, for the
// HTTP transport in cmd/server to translate directly into a response.
type AppError struct {
	Code       string
	Message    string
	HTTPStatus int
	Err        error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

func newAppError(code, message string, status int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: status}
}

// Wrap attaches an underlying cause to a sentinel AppError.
func Wrap(err error, appErr *AppError) *AppError {
	return &AppError{Code: appErr.Code, Message: appErr.Message, HTTPStatus: appErr.HTTPStatus, Err: err}
}

// ============================================================================
// Pipeline errors
// ============================================================================

var (
	// ErrParse: the workbook could not be opened or decoded. Fatal for that
	// file only; a batch ingestion continues with the remaining files.
	ErrParse = newAppError("PARSE_ERROR", "workbook could not be parsed", http.StatusBadRequest)

	// ErrEmptyInput: the workbook parsed successfully but yielded zero
	// snapshots. Advisory; the caller still gets an empty result.
	ErrEmptyInput = newAppError("EMPTY_INPUT", "workbooks parsed but contained no census rows", http.StatusUnprocessableEntity)

	// ErrNoDataForPeriod: the Reporter was asked for a window with no
	// overlapping events. Non-fatal; the Reporter itself signals this case by
	// returning ok=false rather than this error.
	ErrNoDataForPeriod = newAppError("NO_DATA_FOR_PERIOD", "no events overlap the requested period", http.StatusNotFound)

	// ErrInvalidRange: a requested period has an empty or inverted overlap
	// (e.g. RangeReport with endMonth before startMonth).
	ErrInvalidRange = newAppError("INVALID_RANGE", "requested period is empty or invalid", http.StatusBadRequest)
)

// ParseError wraps a workbook decode failure with the offending filename.
type ParseError struct {
	File  string
	Cause error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.File, e.Cause)
}

func (e *ParseError) Unwrap() error { return e.Cause }

// GetHTTPStatus returns the HTTP status code for an error, defaulting to 500.
func GetHTTPStatus(err error) int {
	var appErr *AppError
	if As(err, &appErr) {
		return appErr.HTTPStatus
	}
	var parseErr *ParseError
	if As(err, &parseErr) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
