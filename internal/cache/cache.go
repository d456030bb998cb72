// Package cache stores fetched page bodies so repeated scans of the same
// document do not refetch it.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache is the page-cache interface.
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Key derives a cache key from a source URL.
func Key(url string) string {
	hash := sha256.Sum256([]byte(url))
	return "stecheck:v1:" + hex.EncodeToString(hash[:])
}
