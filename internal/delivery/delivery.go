// Package delivery defines the contract every transport adapter satisfies.
package delivery

import "context"

// Delivery is a transport serving the application until its context ends or
// the process shuts down.
type Delivery interface {
	Serve(ctx context.Context) error
}
