// Package config loads, merges and validates configuration for the task
// service and the sync client.
//
// Configuration is assembled from multiple sources; later sources override
// non-zero fields of earlier ones:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON or YAML config file
//
// [GetServerConfig] and [GetClientConfig] return the validated runtime views.
package config
