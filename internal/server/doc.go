// Package server wires and runs the sync server's HTTP transport.
//
// It owns the listener lifecycle: startup, signal handling and graceful
// shutdown that lets in-flight sync batches finish.
package server
