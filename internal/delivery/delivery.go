// Package delivery defines the contract shared by all transport servers.
package delivery

import "context"

// Delivery is implemented by every server the application can expose.
type Delivery interface {
	Serve(ctx context.Context) error
}
