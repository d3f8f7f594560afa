// Package delivery defines the servers started by the binaries.
package delivery

import "context"

// Delivery is a long-running server collected through the "deliveries" fx group.
type Delivery interface {
	Serve(ctx context.Context) error
}
