package cache

import (
	"github.com/sellora/sellora/internal/config"
	"github.com/sellora/sellora/internal/logger"
)

// CacheType represents the type of cache to use
type CacheType string

const (
	// CacheTypeInMemory represents an in-memory cache
	CacheTypeInMemory CacheType = "inmemory"
)

// Initialize initializes the cache system based on the specified type
func Initialize(cfg *config.Configuration, log *logger.Logger) Cache {
	log.Infow("Initializing cache system", "type", cfg.Cache.Type)

	if CacheType(cfg.Cache.Type) != CacheTypeInMemory && cfg.Cache.Type != "" {
		log.Warnw("unsupported cache type, falling back to inmemory", "type", cfg.Cache.Type)
	}

	InitializeInMemoryCache()
	return GetInMemoryCache()
}
