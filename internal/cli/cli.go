package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/combikit/pkg/buildinfo"
	"github.com/matzehuels/combikit/pkg/cache"
	"github.com/matzehuels/combikit/pkg/observability"
	"github.com/matzehuels/combikit/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "combikit"
)

// Log levels accepted by New.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config Config

	configFile string
	verbose    bool
	noCache    bool
	refresh    bool
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: defaultConfig(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
	if level <= log.DebugLevel {
		hooks := logHooks{c.Logger}
		observability.Register(observability.Hooks{Pipeline: hooks, Cache: hooks})
	}
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "combikit enumerates permutations, subsets and partitions and splits linked data",
		Long:         `combikit is a toolkit of small combinatorial engines: a permutation odometer, subset and group-partition enumerators, a graph island decomposer and a segment chain merger.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if c.verbose {
				c.SetLogLevel(LogDebug)
			}
			if err := c.loadConfig(); err != nil {
				return err
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().StringVar(&c.configFile, "config", "", "config file (default ~/.config/combikit/config.toml)")
	root.PersistentFlags().BoolVar(&c.noCache, "no-cache", false, "disable result caching")
	root.PersistentFlags().BoolVar(&c.refresh, "refresh", false, "recompute even when a cached result exists")

	// Register all subcommands
	root.AddCommand(c.permsCommand())
	root.AddCommand(c.subsetsCommand())
	root.AddCommand(c.partitionsCommand())
	root.AddCommand(c.islandsCommand())
	root.AddCommand(c.chainsCommand())
	root.AddCommand(c.distributeCommand())
	root.AddCommand(c.browseCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.configCommand())

	return root
}

// loadConfig reads the config file named by --config, or the default one.
// The config's log level applies unless --verbose is set.
func (c *CLI) loadConfig() error {
	path := c.configFile
	if path == "" {
		p, err := configPath()
		if err != nil {
			c.Logger.Debug("no config path", "error", err)
			return nil
		}
		path = p
	}
	cfg, err := loadConfig(path)
	if err != nil {
		return err
	}
	c.Config = cfg
	if lvl, err := log.ParseLevel(cfg.LogLevel); err == nil && !c.verbose {
		c.SetLogLevel(lvl)
	}
	return nil
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(ctx context.Context) (*pipeline.Runner, error) {
	store, err := c.newCache(ctx)
	if err != nil {
		return nil, err
	}
	var keyer cache.Keyer
	if _, shared := store.(*cache.RedisCache); shared {
		keyer = cache.Prefixed(nil, appName+":")
	}
	r := pipeline.NewRunner(store, keyer, c.Logger)
	r.Limits = c.Config.Limits
	if ttl := c.Config.Cache.TTL.Duration; ttl > 0 {
		r.TTL = ttl
	}
	r.Refresh = c.refresh
	return r, nil
}

// newCache opens the configured cache backend. A file cache that cannot be
// created degrades to no caching.
func (c *CLI) newCache(ctx context.Context) (cache.Cache, error) {
	if c.noCache {
		return cache.NewNullCache(), nil
	}
	switch c.Config.Cache.Backend {
	case backendNone:
		return cache.NewNullCache(), nil
	case backendRedis:
		return cache.NewRedisCache(ctx, cache.RedisConfig{
			Addr: c.Config.Cache.RedisAddr,
			DB:   c.Config.Cache.RedisDB,
		})
	}
	dir, err := c.cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		c.Logger.Warn("file cache unavailable, caching disabled", "dir", dir, "error", err)
		return cache.NewNullCache(), nil
	}
	return fc, nil
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the configured cache directory, or the XDG default.
func (c *CLI) cacheDir() (string, error) {
	if c.Config.Cache.Dir != "" {
		return c.Config.Cache.Dir, nil
	}
	return cacheDir()
}

// cacheDir returns $XDG_CACHE_HOME/combikit, or ~/.cache/combikit.
func cacheDir() (string, error) {
	return appDir("XDG_CACHE_HOME", ".cache")
}
