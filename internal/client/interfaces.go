// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

// Client is a runnable taskctl command.
type Client interface {
	// Run executes the command and blocks until it finishes or the process
	// is interrupted.
	Run() error
}

var _ Client = (*App)(nil)
