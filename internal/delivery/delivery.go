// Package delivery defines the contract every inbound adapter implements.
package delivery

import "context"

// Delivery is a long-running inbound adapter (HTTP server, event worker).
// Serve blocks until the delivery stops or the context is canceled.
type Delivery interface {
	Serve(ctx context.Context) error
}
