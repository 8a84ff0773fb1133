// Package delivery defines the contract every transport server implements.
package delivery

import "context"

// Delivery is implemented by each server the application runs.
type Delivery interface {
	// Serve blocks serving requests until the application stops.
	Serve(ctx context.Context) error
}
