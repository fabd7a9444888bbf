package server

// Server is the lifecycle of the task service listener.
type Server interface {
	// RunServer serves the task API and blocks until a stop signal
	// arrives and the listener has drained.
	RunServer()

	// Shutdown stops accepting connections and waits for in-flight
	// requests up to the configured shutdown timeout.
	Shutdown()
}
