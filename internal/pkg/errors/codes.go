package errors

import "net/http"

const (
	CodeInvalidArgument = "invalid-argument"
	CodeUnavailable     = "unavailable"
	CodeNotImplemented  = "not-implemented"
	CodeInternal        = "internal"
)

var (
	ErrDataRequired = New(
		CodeInvalidArgument,
		"data is required",
		http.StatusBadRequest,
	)

	ErrInvalidRequest = New(
		CodeInvalidArgument,
		"invalid request body",
		http.StatusBadRequest,
	)

	ErrStoreUnavailable = New(
		CodeUnavailable,
		"Shrine store is unavailable",
		http.StatusServiceUnavailable,
	)

	ErrNotImplemented = New(
		CodeNotImplemented,
		"SNS posting is not implemented yet.",
		http.StatusNotImplemented,
	)

	ErrInternal = New(
		CodeInternal,
		"INTERNAL",
		http.StatusInternalServerError,
	)
)
