// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that allows
// running and stopping multiple workers in a unified way.
package workers

// Worker is the interface that must be implemented by any background worker.
// Run starts the worker's execution and must not block; implementations
// spawn goroutines internally. Stop shuts the worker down and waits for its
// goroutines to exit.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run() {
//	    // start background processing
//	}
//
//	func (w *MyWorker) Stop() {
//	    // cancel and wait for goroutines
//	}
type Worker interface {
	Run()
	Stop()
}
