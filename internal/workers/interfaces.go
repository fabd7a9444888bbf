// Package workers runs the background jobs of the client.
//
// A [Worker] blocks in Run until its context ends. [Workers] runs a set of
// them side by side and waits for all of them.
package workers

import "context"

// Worker is a long-running background job.
//
// Run must return once ctx is done.
type Worker interface {
	Run(ctx context.Context)
}
