package adapter

import "errors"

var (
	ErrUnauthorized = errors.New("client unauthorized")

	// ErrTransport covers everything that kept a request from completing:
	// dial and timeout failures as well as 5xx answers.
	ErrTransport = errors.New("transport failure")

	// ErrMalformedResponse is returned when a 2xx answer cannot be decoded.
	ErrMalformedResponse = errors.New("malformed response")

	ErrBadRequest          = errors.New("bad request")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrPreconditionFailed  = errors.New("precondition failed")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")
)
