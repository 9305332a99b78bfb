package cache

import "time"

const (
	ExpiryDefaultInMemory = 30 * time.Minute
	ExpiryCleanupInterval = 10 * time.Minute

	// ExpiryEnrichment bounds how stale catalog/customer enrichment data may
	// be on a dashboard; orders themselves are never cached
	ExpiryEnrichment = 5 * time.Minute
)
