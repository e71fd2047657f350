package repository

import (
	"context"
	"time"
)

const defaultOpTimeout = 5 * time.Second

// opCtx bounds a single collection call with the configured operation
// timeout, stacking on any deadline already carried by the request.
func opCtx(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		timeout = defaultOpTimeout
	}
	return context.WithTimeout(ctx, timeout)
}
