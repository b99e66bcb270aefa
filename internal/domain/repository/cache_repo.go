package repository

import "time"

// CacheRepository defines cache operations used for read-heavy projections.
type CacheRepository interface {
	Delete(key string) error

	// SetJSON marshals value to JSON and stores it.
	SetJSON(key string, value interface{}, expiration time.Duration) error

	// GetJSON unmarshals the cached JSON into dest or returns
	// apperrors.ErrNotFound on a miss.
	GetJSON(key string, dest interface{}) error
}
