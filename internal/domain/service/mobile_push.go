package service

import "context"

// MobilePush sends push notifications to resident mobile devices. The
// implementation is optional; a nil MobilePush disables mobile delivery.
type MobilePush interface {
	// SendMulticast pushes to up to 500 device tokens in one call and
	// reports per-token outcomes. Tokens rejected as invalid or
	// unregistered are returned for cleanup.
	SendMulticast(ctx context.Context, tokens []string, title, body string, data map[string]string) (successCount, failureCount int, invalidTokens []string, err error)
}
