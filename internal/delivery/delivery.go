// Package delivery holds the servers that expose the use cases.
package delivery

import "context"

// Delivery is a long-running server started by the fx application.
type Delivery interface {
	// Serve blocks until the server stops.
	Serve(ctx context.Context) error
}
