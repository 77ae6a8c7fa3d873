// Package lifecycle holds shared constants for application startup and shutdown.
package lifecycle

import "time"

// DefaultTimeout bounds lifecycle transitions (server shutdown, startup pings)
// and background work that runs detached from any request context.
const DefaultTimeout = 30 * time.Second
