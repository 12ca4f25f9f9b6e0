package limiter

import (
	"context"
	"time"
)

// Store counts requests per key inside fixed windows.
type Store interface {
	// Hit records one request for key and returns how many requests the key has
	// made in the current window, including this one.
	Hit(ctx context.Context, key string, window time.Duration) (int64, error)
}
