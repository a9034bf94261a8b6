package config

import (
	"fmt"

	"github.com/lgbarn/mailbox-chess/internal/errors"
)

// CacheConfig holds settings for the subtree node-count cache.
type CacheConfig struct {
	// Enabled turns the cache on
	Enabled bool

	// Capacity limits stored entries; 0 means unlimited
	Capacity int
}

// NewCacheConfig creates a CacheConfig with default values.
// The cache is disabled by default.
func NewCacheConfig() *CacheConfig {
	return &CacheConfig{}
}

// Validate checks that the cache settings are usable.
func (c *CacheConfig) Validate() error {
	if c.Capacity < 0 {
		return fmt.Errorf("negative cache capacity %d: %w", c.Capacity, errors.ErrInvalidConfig)
	}
	return nil
}
