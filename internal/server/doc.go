// Package server wires and runs the remote store's transport servers.
//
// It runs the HTTP API and the gRPC health endpoint side by side together
// with their background workers, and shuts all of them down when the run
// context is cancelled (see cmd/server, which derives it from SIGINT,
// SIGTERM and SIGQUIT).
package server
