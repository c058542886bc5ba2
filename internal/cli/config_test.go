package cli

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	cerrors "github.com/matzehuels/combikit/pkg/errors"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := loadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(defaultConfig(), cfg); diff != "" {
		t.Errorf("missing file should yield defaults (-want +got):\n%s", diff)
	}
}

func TestLoadConfig(t *testing.T) {
	path := writeFile(t, `
log_level = "debug"

[cache]
backend = "redis"
ttl = "2h"
redis_addr = "cache:6379"
redis_db = 2

[limits]
max_permutation_size = 8

[islands]
consolidate = 3
`)
	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.LogLevel != "debug" || cfg.Cache.Backend != backendRedis {
		t.Errorf("log_level=%q backend=%q", cfg.LogLevel, cfg.Cache.Backend)
	}
	if cfg.Cache.TTL.Duration != 2*time.Hour {
		t.Errorf("ttl = %v, want 2h", cfg.Cache.TTL.Duration)
	}
	if cfg.Cache.RedisAddr != "cache:6379" || cfg.Cache.RedisDB != 2 {
		t.Errorf("redis = %s/%d", cfg.Cache.RedisAddr, cfg.Cache.RedisDB)
	}
	if cfg.Limits.MaxPermutationSize != 8 {
		t.Errorf("max_permutation_size = %d, want 8", cfg.Limits.MaxPermutationSize)
	}
	// Unset keys keep their defaults.
	if cfg.Limits.MaxSubsetSize != defaultConfig().Limits.MaxSubsetSize {
		t.Errorf("max_subset_size = %d, want default", cfg.Limits.MaxSubsetSize)
	}
	if cfg.Islands.Consolidate != 3 {
		t.Errorf("consolidate = %d, want 3", cfg.Islands.Consolidate)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		code    cerrors.Code
	}{
		{"syntax", `log_level = `, cerrors.ErrCodeInvalidFormat},
		{"bad duration", "[cache]\nttl = \"soon\"", cerrors.ErrCodeInvalidFormat},
		{"unknown key", `colour = "blue"`, cerrors.ErrCodeInvalidInput},
		{"bad backend", "[cache]\nbackend = \"memcached\"", cerrors.ErrCodeInvalidInput},
		{"bad level", `log_level = "loud"`, cerrors.ErrCodeInvalidInput},
		{"negative limit", "[limits]\nmax_results = -1", cerrors.ErrCodeInvalidInput},
		{"negative universe", "[limits]\nmax_universe = -1", cerrors.ErrCodeInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loadConfig(writeFile(t, tt.content))
			if got := cerrors.GetCode(err); got != tt.code {
				t.Errorf("code = %q (err %v), want %q", got, err, tt.code)
			}
		})
	}
}

func TestWriteConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := writeConfig(path, defaultConfig()); err != nil {
		t.Fatal(err)
	}
	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(defaultConfig(), cfg); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestAppDirs(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	tests := []struct {
		name   string
		env    map[string]string
		lookup func() (string, error)
		want   string
	}{
		{
			name:   "config from XDG",
			env:    map[string]string{"XDG_CONFIG_HOME": "/tmp/xdg"},
			lookup: configPath,
			want:   filepath.Join("/tmp/xdg", appName, "config.toml"),
		},
		{
			name:   "config under home",
			env:    map[string]string{"XDG_CONFIG_HOME": ""},
			lookup: configPath,
			want:   filepath.Join(home, ".config", appName, "config.toml"),
		},
		{
			name:   "cache from XDG",
			env:    map[string]string{"XDG_CACHE_HOME": "/tmp/custom-cache"},
			lookup: cacheDir,
			want:   filepath.Join("/tmp/custom-cache", appName),
		},
		{
			name:   "cache under home",
			env:    map[string]string{"XDG_CACHE_HOME": ""},
			lookup: cacheDir,
			want:   filepath.Join(home, ".cache", appName),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			got, err := tt.lookup()
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCLICacheDirOverride(t *testing.T) {
	c := New(io.Discard, LogInfo)
	c.Config.Cache.Dir = "/srv/combikit-cache"
	got, err := c.cacheDir()
	if err != nil {
		t.Fatal(err)
	}
	if got != "/srv/combikit-cache" {
		t.Errorf("cacheDir() = %q, want configured dir", got)
	}
}
