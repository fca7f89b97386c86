// Package delivery defines the contract shared by every transport the service exposes.
package delivery

import "context"

// Delivery is a long-running transport started by fx.
type Delivery interface {
	Serve(ctx context.Context) error
}
