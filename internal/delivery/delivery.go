// Package delivery defines the inbound transport abstraction.
package delivery

import "context"

// Delivery is a serving surface (HTTP today) started by the application
// runner. Serve blocks until the server stops.
type Delivery interface {
	Serve(ctx context.Context) error
}
