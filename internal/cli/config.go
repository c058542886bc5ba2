package cli

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	cerrors "github.com/matzehuels/combikit/pkg/errors"
	"github.com/matzehuels/combikit/pkg/pipeline"
)

// Cache backends accepted in [cache] backend.
const (
	backendFile  = "file"
	backendRedis = "redis"
	backendNone  = "none"
)

// Config is the on-disk configuration, read from config.toml.
type Config struct {
	LogLevel string          `toml:"log_level"`
	Cache    CacheConfig     `toml:"cache"`
	Server   ServerConfig    `toml:"server"`
	Limits   pipeline.Limits `toml:"limits"`
	Islands  IslandsConfig   `toml:"islands"`
}

// CacheConfig selects and configures the result cache.
type CacheConfig struct {
	Backend   string   `toml:"backend"`
	Dir       string   `toml:"dir"`
	TTL       duration `toml:"ttl"`
	RedisAddr string   `toml:"redis_addr"`
	RedisDB   int      `toml:"redis_db"`
}

// ServerConfig configures "combikit serve".
type ServerConfig struct {
	Addr string `toml:"addr"`
}

// IslandsConfig holds defaults for the islands command.
type IslandsConfig struct {
	Consolidate int `toml:"consolidate"`
}

// duration decodes TOML strings such as "24h".
type duration struct{ time.Duration }

func (d *duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func (d duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// defaultConfig returns the configuration used when no file exists.
func defaultConfig() Config {
	return Config{
		LogLevel: "info",
		Cache: CacheConfig{
			Backend:   backendFile,
			TTL:       duration{pipeline.DefaultTTL},
			RedisAddr: "localhost:6379",
		},
		Server: ServerConfig{Addr: ":8080"},
		Limits: pipeline.DefaultLimits(),
	}
}

// configPath returns the config file location using XDG standard
// (~/.config/combikit/config.toml).
func configPath() (string, error) {
	dir, err := appDir("XDG_CONFIG_HOME", ".config")
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// appDir resolves $env/combikit, falling back to ~/<dotdir>/combikit.
func appDir(env, dotdir string) (string, error) {
	if base := os.Getenv(env); base != "" {
		return filepath.Join(base, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, dotdir, appName), nil
}

// loadConfig reads path over the defaults. A missing file is not an error.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	md, err := toml.DecodeFile(path, &cfg)
	if errors.Is(err, fs.ErrNotExist) {
		return defaultConfig(), nil
	}
	if err != nil {
		return Config{}, cerrors.Wrap(cerrors.ErrCodeInvalidFormat, err, "read config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, cerrors.New(cerrors.ErrCodeInvalidInput, "config %s: unknown key %s", path, undecoded[0])
	}
	return cfg, cfg.validate()
}

func (c Config) validate() error {
	switch c.Cache.Backend {
	case backendFile, backendRedis, backendNone:
	default:
		return cerrors.New(cerrors.ErrCodeInvalidInput, "cache backend %q: want file, redis or none", c.Cache.Backend)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return cerrors.New(cerrors.ErrCodeInvalidInput, "log_level %q: want debug, info, warn or error", c.LogLevel)
	}
	if c.Cache.TTL.Duration < 0 {
		return cerrors.New(cerrors.ErrCodeInvalidInput, "cache ttl must not be negative")
	}
	if c.Limits.MaxPermutationSize < 0 || c.Limits.MaxSubsetSize < 0 || c.Limits.MaxResults < 0 || c.Limits.MaxUniverse < 0 {
		return cerrors.New(cerrors.ErrCodeInvalidInput, "limits must not be negative")
	}
	return nil
}

// writeConfig encodes cfg as TOML, used by "config init".
func writeConfig(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(cfg)
}
