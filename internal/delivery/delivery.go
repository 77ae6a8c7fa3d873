// Package delivery defines the contract every transport entry point
// (HTTP server, background worker) implements so main can run them uniformly.
package delivery

import "context"

// Delivery is a long-running transport that serves until its context ends
// or a fatal error occurs.
type Delivery interface {
	Serve(ctx context.Context) error
}
