package client

import (
	"errors"

	"github.com/MKhiriev/go-task-sync/internal/adapter"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrUsage          = errors.New("invalid arguments")
	ErrSyncFailed     = errors.New("sync failed")

	// ErrLoginFailed is returned when the task service rejected the credentials.
	ErrLoginFailed = errors.New("login failed")
)

const (
	ExitOK           = 0
	ExitError        = 1
	ExitLoginFailure = 2
)

// ExitCode returns the process exit status for err.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrLoginFailed), errors.Is(err, adapter.ErrUnauthorized):
		return ExitLoginFailure
	default:
		return ExitError
	}
}
