// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks lists and tasks received by the task service
// before they reach storage.
//
// A [Validator] validates a whole value or, when field names are passed,
// only those fields. Unknown field names are an error so typos surface in
// tests instead of silently skipping a rule.
package validators

import "context"

// Validator validates arbitrary input values.
type Validator interface {
	// Validate checks value, restricted to fields when any are given.
	Validate(ctx context.Context, value any, fields ...string) error
}
