// Package delivery holds the servers that expose the reminder engine.
package delivery

import "context"

// Delivery is a long-running server started by the cmd entrypoints
type Delivery interface {
	Serve(ctx context.Context) error
}
