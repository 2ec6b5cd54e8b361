package server

import "context"

// Server defines the common lifecycle contract for transport servers managed
// by this package.
type Server interface {
	// Run serves requests until ctx is cancelled, then shuts down
	// gracefully. It returns the first serving error, if any.
	Run(ctx context.Context) error
}
