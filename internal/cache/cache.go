// Package cache provides the extraction result cache: a memory layer
// for the current run and a disk layer so re-validating an unchanged
// document set skips text extraction entirely.
package cache

import "time"

// Cache is a byte-oriented cache with per-entry TTLs
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Key namespaces a caller-built identity (document type + content
// hash) under the current cache schema version.
func Key(identity string) string {
	return "credvet:v1:" + identity
}
