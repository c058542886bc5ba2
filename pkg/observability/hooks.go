// Package observability lets callers observe enumeration runs, cache
// traffic and API requests without tying combikit to a metrics backend.
//
// Hooks are process-wide. Until [Register] is called every accessor returns
// [Noop], so instrumented code never checks for nil:
//
//	observability.Register(observability.Hooks{Pipeline: myMetrics})
//
//	observability.Pipeline().OnRunStart(ctx, "islands")
//	// ... decompose ...
//	observability.Pipeline().OnRunComplete(ctx, "islands", len(parts), d, err)
package observability

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// PipelineHooks receives events from pipeline runs. kind names the
// computation ("permutations", "subsets", "partitions", "islands", "chains").
type PipelineHooks interface {
	OnRunStart(ctx context.Context, kind string)
	OnRunComplete(ctx context.Context, kind string, results int, duration time.Duration, err error)
}

// CacheHooks receives events from result-cache lookups and writes.
type CacheHooks interface {
	OnCacheHit(ctx context.Context, kind string)
	OnCacheMiss(ctx context.Context, kind string)
	// OnCacheSet reports the encoded size of the stored result in bytes.
	OnCacheSet(ctx context.Context, kind string, size int)
}

// HTTPHooks receives events from the HTTP API.
type HTTPHooks interface {
	OnRequest(ctx context.Context, method, path string)
	OnResponse(ctx context.Context, method, path string, status int, duration time.Duration)
}

// Noop implements every hook interface and discards all events.
type Noop struct{}

func (Noop) OnRunStart(context.Context, string)                               {}
func (Noop) OnRunComplete(context.Context, string, int, time.Duration, error) {}
func (Noop) OnCacheHit(context.Context, string)                               {}
func (Noop) OnCacheMiss(context.Context, string)                              {}
func (Noop) OnCacheSet(context.Context, string, int)                          {}
func (Noop) OnRequest(context.Context, string, string)                        {}
func (Noop) OnResponse(context.Context, string, string, int, time.Duration)   {}

// Hooks groups the hook sets passed to [Register]. Nil fields leave the
// current registration in place.
type Hooks struct {
	Pipeline PipelineHooks
	Cache    CacheHooks
	HTTP     HTTPHooks
}

var defaults = Hooks{Pipeline: Noop{}, Cache: Noop{}, HTTP: Noop{}}

var (
	registerMu sync.Mutex
	current    atomic.Pointer[Hooks]
)

func init() { Reset() }

// Register installs h, keeping earlier registrations for nil fields.
// Call it at startup, before runs begin.
func Register(h Hooks) {
	registerMu.Lock()
	defer registerMu.Unlock()
	next := *current.Load()
	if h.Pipeline != nil {
		next.Pipeline = h.Pipeline
	}
	if h.Cache != nil {
		next.Cache = h.Cache
	}
	if h.HTTP != nil {
		next.HTTP = h.HTTP
	}
	current.Store(&next)
}

// Reset restores the no-op defaults.
func Reset() {
	registerMu.Lock()
	defer registerMu.Unlock()
	h := defaults
	current.Store(&h)
}

// Pipeline returns the registered pipeline hooks.
func Pipeline() PipelineHooks { return current.Load().Pipeline }

// Cache returns the registered cache hooks.
func Cache() CacheHooks { return current.Load().Cache }

// HTTP returns the registered HTTP hooks.
func HTTP() HTTPHooks { return current.Load().HTTP }
