// Package pipeline runs combikit's computations with caching, limits,
// logging and observability hooks.
//
// The CLI and the HTTP API both go through a [Runner] so that the two entry
// points enforce the same limits, share cache entries and report errors with
// the same codes.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	res, err := runner.Permutations(ctx, pipeline.PermutationsRequest{N: 4})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(len(res.Value), res.CacheHit)
//
// Every request type is a plain JSON document. The cache key is derived from
// its encoding together with the effective row limit, so equal requests
// share a cache entry only when the same limits applied. Size limits are
// checked before the cache is consulted.
package pipeline

import (
	"time"

	"github.com/matzehuels/combikit/pkg/chain"
	"github.com/matzehuels/combikit/pkg/islands"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

const (
	// DefaultMaxPermutationSize caps the odometer width. 10! is 3.6M rows.
	DefaultMaxPermutationSize = 10

	// DefaultMaxSubsetSize caps the subset universe. 2^20 - 1 subsets.
	DefaultMaxSubsetSize = 20

	// DefaultMaxResults caps how many rows one enumeration may return.
	DefaultMaxResults = 100_000

	// DefaultMaxUniverse caps the partition universe 0..max. Every row holds
	// up to that many singletons.
	DefaultMaxUniverse = 1024

	// DefaultTTL is how long results stay cached.
	DefaultTTL = 7 * 24 * time.Hour
)

// Computation kinds, used in cache keys, logs and hooks.
const (
	KindPermutations = "permutations"
	KindSubsets      = "subsets"
	KindPartitions   = "partitions"
	KindIslands      = "islands"
	KindChains       = "chains"
)

// Limits bounds the size of a single run. Zero fields disable a bound.
type Limits struct {
	MaxPermutationSize int `json:"max_permutation_size" toml:"max_permutation_size"`
	MaxSubsetSize      int `json:"max_subset_size" toml:"max_subset_size"`
	MaxResults         int `json:"max_results" toml:"max_results"`
	MaxUniverse        int `json:"max_universe" toml:"max_universe"`
}

// DefaultLimits returns the limits used when none are configured.
func DefaultLimits() Limits {
	return Limits{
		MaxPermutationSize: DefaultMaxPermutationSize,
		MaxSubsetSize:      DefaultMaxSubsetSize,
		MaxResults:         DefaultMaxResults,
		MaxUniverse:        DefaultMaxUniverse,
	}
}

// rowLimit returns the effective row limit for a request asking for limit rows.
func (l Limits) rowLimit(limit int) int {
	switch {
	case l.MaxResults <= 0:
		return limit
	case limit <= 0:
		return l.MaxResults
	default:
		return min(limit, l.MaxResults)
	}
}

// =============================================================================
// Requests
// =============================================================================

// PermutationsRequest asks for the permutations of 0..N-1. Each set in
// Together must occupy consecutive positions in every returned row.
type PermutationsRequest struct {
	N        int     `json:"n"`
	Limit    int     `json:"limit,omitempty"`
	Together [][]int `json:"together,omitempty"`
}

// SubsetsRequest asks for the non-empty subsets of 0..Size-1.
type SubsetsRequest struct {
	Size  int `json:"size"`
	Limit int `json:"limit,omitempty"`
}

// PartitionsRequest asks for the group partitions of Groups over the
// universe 0..MaxValue (or 0..highest index when MaxValue is nil).
type PartitionsRequest struct {
	Groups   [][]int `json:"groups"`
	MaxValue *int    `json:"max_value,omitempty"`
	Limit    int     `json:"limit,omitempty"`
}

// IslandsRequest asks for the connected components of Items under Links.
// Items and link payloads are opaque JSON values.
type IslandsRequest struct {
	Items       []any               `json:"items"`
	Links       []islands.Link[any] `json:"links"`
	Consolidate int                 `json:"consolidate,omitempty"`
}

// ChainsRequest asks for Segments merged into chains and loops. Vertices
// are opaque JSON values compared by value.
type ChainsRequest struct {
	Segments []chain.Segment[any] `json:"segments"`
}

// =============================================================================
// Results
// =============================================================================

// Rows is a materialised enumeration.
type Rows[T any] struct {
	Rows []T `json:"rows"`
	// Total is the full size of the enumeration when it is known up front,
	// zero otherwise.
	Total int `json:"total,omitempty"`
	// Truncated is set when a limit stopped the enumeration early.
	Truncated bool `json:"truncated,omitempty"`
}

// Result wraps a computed value with run metadata.
type Result[T any] struct {
	Value    T             `json:"value"`
	RunID    string        `json:"run_id"`
	CacheHit bool          `json:"cache_hit"`
	Duration time.Duration `json:"duration"`
}
