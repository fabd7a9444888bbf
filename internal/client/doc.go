// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements taskctl, the command-line client of the task
// service.
//
// Local commands (lists, add-list, tasks, add-task, done, rm) edit the SQLite
// store only and mark what they touch for upload. Remote commands (register,
// sync, push, daemon) talk to the task service through the client services.
// [ExitCode] maps the error returned by [App.Run] to the process exit status.
package client
