package cache

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

const entryExt = ".entry"

// FileCache stores each entry in its own file under dir. Files are grouped
// into 256 shard directories by the first byte of the hashed key.
//
// An entry file starts with a line holding the expiry as Unix nanoseconds
// (0 for none), followed by the raw value.
type FileCache struct {
	dir string
}

// NewFileCache opens a cache rooted at dir, creating it if needed.
func NewFileCache(dir string) (*FileCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileCache{dir: dir}, nil
}

// Dir returns the cache directory.
func (c *FileCache) Dir() string { return c.dir }

// Get returns the value for key. Expired or corrupt entries are removed
// and reported as misses.
func (c *FileCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	name := c.path(key)
	raw, err := os.ReadFile(name)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return nil, false, nil
	case err != nil:
		return nil, false, err
	}

	data, expires, ok := splitEntry(raw)
	if !ok || (!expires.IsZero() && !time.Now().Before(expires)) {
		os.Remove(name)
		return nil, false, nil
	}
	return data, true, nil
}

// Set writes data under key, replacing any previous value. The file is
// renamed into place so readers never see a partial entry.
func (c *FileCache) Set(_ context.Context, key string, data []byte, ttl time.Duration) error {
	var expires int64
	if ttl > 0 {
		expires = time.Now().Add(ttl).UnixNano()
	}

	name := c.path(key)
	if err := os.MkdirAll(filepath.Dir(name), 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(name), "tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	buf := strconv.AppendInt(nil, expires, 10)
	buf = append(buf, '\n')
	if _, err := tmp.Write(append(buf, data...)); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), name)
}

// Delete removes key. Missing keys are ignored.
func (c *FileCache) Delete(_ context.Context, key string) error {
	if err := os.Remove(c.path(key)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// Clear empties the cache and reports how many entries it removed. The
// root directory itself is kept.
func (c *FileCache) Clear() (int, error) {
	n := 0
	err := filepath.WalkDir(c.dir, func(name string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil
			}
			return err
		}
		if !d.IsDir() && filepath.Ext(name) == entryExt {
			n++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	shards, err := os.ReadDir(c.dir)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return 0, err
	}
	for _, s := range shards {
		if err := os.RemoveAll(filepath.Join(c.dir, s.Name())); err != nil {
			return 0, err
		}
	}
	return n, nil
}

func (c *FileCache) Close() error { return nil }

func (c *FileCache) path(key string) string {
	h := digest([]byte(key))
	return filepath.Join(c.dir, h[:2], h[2:]+entryExt)
}

func splitEntry(raw []byte) (data []byte, expires time.Time, ok bool) {
	head, data, found := bytes.Cut(raw, []byte{'\n'})
	if !found {
		return nil, time.Time{}, false
	}
	ns, err := strconv.ParseInt(string(head), 10, 64)
	if err != nil {
		return nil, time.Time{}, false
	}
	if ns > 0 {
		expires = time.Unix(0, ns)
	}
	return data, expires, true
}

var _ Cache = (*FileCache)(nil)
