package service

import "errors"

var (
	ErrInvalidDataProvided     = errors.New("invalid data provided")
	ErrWrongPassword           = errors.New("wrong password")
	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrPasswordHashingFailed   = errors.New("password hashing failed")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	// ErrInvalidIfMatch is returned for an If-Match value that is not a task version.
	ErrInvalidIfMatch = errors.New("invalid If-Match value")

	ErrRegisterOnServer = errors.New("registration on server failed")

	// ErrLocalStore marks failures of the client database during a sync run.
	ErrLocalStore = errors.New("local store failure")
)
