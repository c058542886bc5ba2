// Package cache stores computed results so repeated runs over the same input
// return immediately.
//
// Enumerations such as all partitions of a large group list are pure
// functions of their request, so the request itself (hashed) is the key.
// Backends:
//   - [NewFileCache]: one JSON file per entry, for CLI use
//   - [NewRedisCache]: shared cache for the HTTP server
//   - [NewNullCache]: caching disabled
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"
)

// Cache is a byte-oriented key/value store with optional expiry.
//
// Get reports a miss with ok == false and a nil error; errors are reserved
// for backend failures.
type Cache interface {
	Get(ctx context.Context, key string) (data []byte, ok bool, err error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Keyer derives cache keys from requests.
type Keyer interface {
	// ResultKey returns the key for the result of a kind of computation
	// (e.g. "islands") run on request. Equal requests yield equal keys.
	ResultKey(kind string, request any) string
}

// DefaultKeyer hashes the JSON form of the request. Keys look like
// "permutations/<sha256 hex>".
type DefaultKeyer struct{}

// NewDefaultKeyer returns the standard keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// ResultKey implements [Keyer]. Requests that cannot be encoded all share
// the key of a null request.
func (DefaultKeyer) ResultKey(kind string, request any) string {
	data, _ := json.Marshal(request)
	return kind + "/" + digest(data)
}

// Prefixed namespaces every key produced by k, so several deployments can
// share one backend. A nil k means [DefaultKeyer].
func Prefixed(k Keyer, prefix string) Keyer {
	if k == nil {
		k = DefaultKeyer{}
	}
	return prefixKeyer{inner: k, prefix: prefix}
}

type prefixKeyer struct {
	inner  Keyer
	prefix string
}

func (p prefixKeyer) ResultKey(kind string, request any) string {
	return p.prefix + p.inner.ResultKey(kind, request)
}

func digest(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// NewNullCache returns a cache that stores nothing, used when caching is
// disabled.
func NewNullCache() Cache { return nullCache{} }

type nullCache struct{}

func (nullCache) Get(context.Context, string) ([]byte, bool, error)        { return nil, false, nil }
func (nullCache) Set(context.Context, string, []byte, time.Duration) error { return nil }
func (nullCache) Delete(context.Context, string) error                     { return nil }
func (nullCache) Close() error                                             { return nil }
