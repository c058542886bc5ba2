package pipeline

import (
	"context"
	"encoding/json"
	"reflect"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/combikit/pkg/cache"
	"github.com/matzehuels/combikit/pkg/chain"
	"github.com/matzehuels/combikit/pkg/combo"
	cerrors "github.com/matzehuels/combikit/pkg/errors"
	"github.com/matzehuels/combikit/pkg/islands"
	"github.com/matzehuels/combikit/pkg/observability"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store results itself. Multiple goroutines can safely share a Runner.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
	Limits Limits
	TTL    time.Duration

	// Refresh skips cache reads; results are still written.
	Refresh bool
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, caching is disabled.
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
		Limits: DefaultLimits(),
		TTL:    DefaultTTL,
	}
}

// Permutations enumerates permutations of 0..N-1 in lexicographic order,
// keeping only those that satisfy req.Together.
func (r *Runner) Permutations(ctx context.Context, req PermutationsRequest) (*Result[Rows[[]int]], error) {
	limit := r.Limits.rowLimit(req.Limit)
	return run(ctx, r, job[Rows[[]int]]{
		kind:     KindPermutations,
		request:  req,
		rowLimit: limit,
		check: func() error {
			if err := cerrors.ValidateSize("n", req.N, r.Limits.MaxPermutationSize); err != nil {
				return err
			}
			return cerrors.ValidateLimit(req.Limit)
		},
		compute: func() (Rows[[]int], int, error) {
			seq := combo.AllPermutations(req.N)
			total := 0
			if len(req.Together) > 0 {
				var err error
				if seq, err = combo.Constrained(req.N, req.Together); err != nil {
					return Rows[[]int]{}, 0, err
				}
			} else if req.N <= maxExactFactorial {
				total = combo.Factorial(req.N)
			}
			rows, truncated, err := collect(ctx, seq, limit)
			if err != nil {
				return Rows[[]int]{}, 0, err
			}
			return Rows[[]int]{Rows: rows, Total: total, Truncated: truncated}, len(rows), nil
		},
	})
}

// maxExactFactorial is the largest n whose factorial fits in an int.
const maxExactFactorial = 20

// Subsets enumerates the non-empty subsets of 0..Size-1, largest first.
func (r *Runner) Subsets(ctx context.Context, req SubsetsRequest) (*Result[Rows[[]int]], error) {
	limit := r.Limits.rowLimit(req.Limit)
	return run(ctx, r, job[Rows[[]int]]{
		kind:     KindSubsets,
		request:  req,
		rowLimit: limit,
		check: func() error {
			if err := cerrors.ValidateSize("size", req.Size, r.Limits.MaxSubsetSize); err != nil {
				return err
			}
			return cerrors.ValidateLimit(req.Limit)
		},
		compute: func() (Rows[[]int], int, error) {
			rows, truncated, err := collect(ctx, combo.AllSubsets(req.Size), limit)
			if err != nil {
				return Rows[[]int]{}, 0, err
			}
			return Rows[[]int]{Rows: rows, Total: combo.SubsetCount(req.Size), Truncated: truncated}, len(rows), nil
		},
	})
}

// Partitions enumerates the ways whole groups combine into partitions.
func (r *Runner) Partitions(ctx context.Context, req PartitionsRequest) (*Result[Rows[[][]int]], error) {
	limit := r.Limits.rowLimit(req.Limit)
	return run(ctx, r, job[Rows[[][]int]]{
		kind:     KindPartitions,
		request:  req,
		rowLimit: limit,
		check: func() error {
			if err := cerrors.ValidateLimit(req.Limit); err != nil {
				return err
			}
			if hi := highestIndex(req); r.Limits.MaxUniverse > 0 && hi >= r.Limits.MaxUniverse {
				return cerrors.New(cerrors.ErrCodeTooLarge, "universe 0..%d exceeds the configured limit of %d values", hi, r.Limits.MaxUniverse)
			}
			return nil
		},
		compute: func() (Rows[[][]int], int, error) {
			seq, err := combo.AllGroupCombos(req.Groups, req.MaxValue)
			if err != nil {
				return Rows[[][]int]{}, 0, err
			}
			rows, truncated, err := collect(ctx, seq, limit)
			if err != nil {
				return Rows[[][]int]{}, 0, err
			}
			return Rows[[][]int]{Rows: rows, Truncated: truncated}, len(rows), nil
		},
	})
}

// highestIndex is the top of the partition universe req asks for.
func highestIndex(req PartitionsRequest) int {
	hi := -1
	if req.MaxValue != nil {
		hi = *req.MaxValue
	}
	for _, g := range req.Groups {
		for _, v := range g {
			hi = max(hi, v)
		}
	}
	return hi
}

// Islands splits linked items into connected components.
func (r *Runner) Islands(ctx context.Context, req IslandsRequest) (*Result[[]islands.Island[any, any]], error) {
	return run(ctx, r, job[[]islands.Island[any, any]]{
		kind:    KindIslands,
		request: req,
		compute: func() ([]islands.Island[any, any], int, error) {
			var opts []islands.Option
			if req.Consolidate > 1 {
				opts = append(opts, islands.WithConsolidate(req.Consolidate))
			}
			parts, err := islands.Islands(req.Items, req.Links, opts...)
			if err != nil {
				return nil, 0, err
			}
			return parts, len(parts), nil
		},
	})
}

// Chains merges segments sharing endpoints into chains and loops.
func (r *Runner) Chains(ctx context.Context, req ChainsRequest) (*Result[[]chain.Chain[any]], error) {
	return run(ctx, r, job[[]chain.Chain[any]]{
		kind:    KindChains,
		request: req,
		compute: func() ([]chain.Chain[any], int, error) {
			chains := chain.MergeFunc(req.Segments, func(a, b any) bool { return reflect.DeepEqual(a, b) })
			return chains, len(chains), nil
		},
	})
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// job is one computation handed to run. check runs before the cache is
// consulted; compute returns the value and the number of results for logs
// and hooks.
type job[T any] struct {
	kind     string
	request  any
	rowLimit int
	check    func() error
	compute  func() (T, int, error)
}

// cacheKey is what a result is stored under. A result truncated by one
// row limit must not answer a request run under another.
type cacheKey struct {
	Request  any `json:"request"`
	RowLimit int `json:"row_limit,omitempty"`
}

// run is the shared validate, cache-or-compute path.
func run[T any](ctx context.Context, r *Runner, j job[T]) (*Result[T], error) {
	start := time.Now()
	runID := uuid.NewString()
	logger := r.Logger.With("run", runID[:8], "kind", j.kind)

	fail := func(err error) error {
		err = Classify(err)
		d := time.Since(start)
		observability.Pipeline().OnRunComplete(ctx, j.kind, 0, d, err)
		logger.Debug("run failed", "error", err, "duration", d)
		return err
	}

	if j.check != nil {
		if err := j.check(); err != nil {
			observability.Pipeline().OnRunStart(ctx, j.kind)
			return nil, fail(err)
		}
	}

	key := r.Keyer.ResultKey(j.kind, cacheKey{Request: j.request, RowLimit: j.rowLimit})
	if !r.Refresh {
		if v, ok := r.cached(ctx, j.kind, key, logger); ok {
			var value T
			if err := json.Unmarshal(v, &value); err == nil {
				d := time.Since(start)
				logger.Debug("cache hit", "duration", d)
				return &Result[T]{Value: value, RunID: runID, CacheHit: true, Duration: d}, nil
			}
			logger.Warn("discarding unreadable cache entry", "key", key)
		}
	}

	observability.Pipeline().OnRunStart(ctx, j.kind)
	value, n, err := j.compute()
	if err != nil {
		return nil, fail(err)
	}
	d := time.Since(start)
	observability.Pipeline().OnRunComplete(ctx, j.kind, n, d, nil)
	logger.Info("computed", "results", n, "duration", d)

	if data, err := json.Marshal(value); err == nil {
		if err := r.Cache.Set(ctx, key, data, r.TTL); err != nil {
			logger.Warn("cache write failed", "error", err)
		} else {
			observability.Cache().OnCacheSet(ctx, j.kind, len(data))
		}
	}
	return &Result[T]{Value: value, RunID: runID, Duration: d}, nil
}

func (r *Runner) cached(ctx context.Context, kind, key string, logger *log.Logger) ([]byte, bool) {
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil {
		logger.Warn("cache read failed", "error", err)
		return nil, false
	}
	if !hit {
		observability.Cache().OnCacheMiss(ctx, kind)
		return nil, false
	}
	observability.Cache().OnCacheHit(ctx, kind)
	return data, true
}
