package cache

import (
	"context"
	"time"
)

// Cache is the caching interface used by services for enrichment reads
// (catalog, customer directory). Summaries are never cached: every dashboard
// invocation re-fetches orders and re-aggregates.
type Cache interface {
	// Get retrieves a value by key, reporting whether it was present
	Get(ctx context.Context, key string) (interface{}, bool)

	// Set stores a value with an expiration; zero expiration uses the default
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration)

	// Delete removes a key
	Delete(ctx context.Context, key string)

	// DeleteByPrefix removes all keys sharing a prefix
	DeleteByPrefix(ctx context.Context, prefix string)

	// Flush removes everything
	Flush(ctx context.Context)
}
