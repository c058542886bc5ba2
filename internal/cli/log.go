// Package cli implements the combikit command-line interface.
//
// This package provides commands that run the enumeration and graph
// engines over flags or JSON documents, an interactive browser, the HTTP
// server and cache management. The CLI is built using cobra and supports
// verbose logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - perms, subsets, partitions: Enumerate combinatorial objects
//   - islands, chains: Decompose graphs and merge segments from JSON files
//   - distribute: Assign categories to slots at random
//   - browse: Step through an enumeration interactively
//   - serve: Run the HTTP API
//   - cache, config: Manage the result cache and the config file
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking.
//
// # Example
//
//	import "github.com/matzehuels/combikit/internal/cli"
//
//	func main() {
//	    c := cli.New(os.Stderr, cli.LogInfo)
//	    if err := c.RootCommand().Execute(); err != nil {
//	        os.Exit(1)
//	    }
//	}
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger builds the CLI logger. Timestamps read like "14:32:01.45".
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// stopwatch logs a summary line once a command finishes, e.g.
// "Decomposed 12 items into 3 islands (4ms)".
type stopwatch struct {
	logger *log.Logger
	start  time.Time
}

func startStopwatch(l *log.Logger) stopwatch {
	return stopwatch{logger: l, start: time.Now()}
}

func (s stopwatch) done(format string, args ...any) {
	elapsed := time.Since(s.start).Round(time.Millisecond)
	s.logger.Infof(format+" (%s)", append(args, elapsed)...)
}

type loggerKey struct{}

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

// loggerFromContext falls back to log.Default when ctx carries no logger.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// logHooks reports pipeline and cache events at debug level. It is
// registered when --verbose is set.
type logHooks struct {
	logger *log.Logger
}

func (h logHooks) OnRunStart(_ context.Context, kind string) {
	h.logger.Debug("run started", "kind", kind)
}

func (h logHooks) OnRunComplete(_ context.Context, kind string, results int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("run failed", "kind", kind, "error", err, "duration", d)
		return
	}
	h.logger.Debug("run complete", "kind", kind, "results", results, "duration", d)
}

func (h logHooks) OnCacheHit(_ context.Context, kind string) {
	h.logger.Debug("cache hit", "kind", kind)
}

func (h logHooks) OnCacheMiss(_ context.Context, kind string) {
	h.logger.Debug("cache miss", "kind", kind)
}

func (h logHooks) OnCacheSet(_ context.Context, kind string, size int) {
	h.logger.Debug("cache set", "kind", kind, "bytes", size)
}
