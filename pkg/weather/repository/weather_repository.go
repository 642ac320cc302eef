package repository

import (
	"time"

	"cropsense/entities"
)

// CacheRepository stores raw provider payloads keyed by kind + location.
type CacheRepository interface {
	// Get returns nil when the key is missing or fetched before notBefore.
	Get(key string, notBefore time.Time) (*entities.WeatherCache, error)
	Put(key, payload string, fetchedAt time.Time) error
}
