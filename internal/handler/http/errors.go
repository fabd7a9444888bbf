// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Errors of the auth middleware.
var (
	// ErrEmptyAuthorizationHeader means the request carries no "Authorization" header.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader means the header is not "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken means the scheme is present but the token is not.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")
)

// Errors of query and path parsing.
var (
	ErrInvalidUpdatedMin  = errors.New("updated_min must be an RFC 3339 timestamp")
	ErrInvalidShowDeleted = errors.New("show_deleted must be a boolean")
	ErrNoUserInContext    = errors.New("no authenticated user in request context")
)
