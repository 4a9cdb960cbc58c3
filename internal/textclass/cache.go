package textclass

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"
)

// cacheSchemaVersion is bumped whenever modelPayload changes shape; older
// blobs then read as cache misses instead of decode errors.
const cacheSchemaVersion uint16 = 1

// Digest identifies a training corpus by content hash.
type Digest [sha256.Size]byte

// DigestOf hashes a corpus canonically: document order matters, text and
// label both count.
func DigestOf(docs []Document) Digest {
	h := sha256.New()
	for _, d := range docs {
		h.Write([]byte(d.Text))
		h.Write([]byte{0x1f})
		h.Write([]byte(d.Label))
		h.Write([]byte{0x1e})
	}
	var out Digest
	copy(out[:], h.Sum(nil))
	return out
}

// modelPayload is the on-disk shape of a trained model.
type modelPayload struct {
	Schema uint16
	Labels []string
	Counts map[string]map[string]int
	Totals map[string]int
}

// Cache persists trained models under the user cache directory so later
// runs skip retraining. Safe for concurrent use.
type Cache struct {
	mu  sync.Mutex
	dir string
}

// OpenCache initializes the model cache at $XDG_CACHE_HOME/<app>/models
// (falling back to ~/.cache), creating the directory if needed.
func OpenCache(app string) (*Cache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("locate cache dir: %w", err)
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app, "models")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create cache dir: %w", err)
	}
	return &Cache{dir: dir}, nil
}

// Dir returns the cache directory.
func (c *Cache) Dir() string {
	return c.dir
}

func (c *Cache) pathFor(key Digest) string {
	return filepath.Join(c.dir, hex.EncodeToString(key[:])+".mp")
}

// Save writes the model blob for the given corpus digest. The write goes
// through a temp file and an atomic rename so readers never see a partial
// blob.
func (c *Cache) Save(key Digest, m *Model) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	payload := &modelPayload{
		Schema: cacheSchemaVersion,
		Labels: m.labels,
		Counts: m.counts,
		Totals: m.totals,
	}

	f, err := os.CreateTemp(c.dir, "model-*")
	if err != nil {
		return fmt.Errorf("create temp blob: %w", err)
	}
	tmp := f.Name()
	if err := msgpack.NewEncoder(f).Encode(payload); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("encode model blob: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("flush model blob: %w", err)
	}
	if err := os.Rename(tmp, c.pathFor(key)); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("store model blob: %w", err)
	}
	return nil
}

// Load reads the model blob for the given corpus digest. A missing blob
// or a schema-version mismatch is a plain miss (nil, false, nil); a blob
// that exists but cannot be decoded reports an error alongside the miss
// so callers can log before rebuilding.
func (c *Cache) Load(key Digest) (*Model, bool, error) {
	if c == nil {
		return nil, false, nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("open model blob: %w", err)
	}
	defer f.Close()

	var payload modelPayload
	if err := msgpack.NewDecoder(f).Decode(&payload); err != nil {
		return nil, false, fmt.Errorf("decode model blob: %w", err)
	}
	if payload.Schema != cacheSchemaVersion {
		return nil, false, nil
	}

	m := &Model{
		labels: payload.Labels,
		counts: payload.Counts,
		totals: payload.Totals,
	}
	if m.counts == nil {
		m.counts = map[string]map[string]int{}
	}
	if m.totals == nil {
		m.totals = map[string]int{}
	}
	return m, true, nil
}

// DropAll removes every cached model blob.
func (c *Cache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return os.RemoveAll(c.dir)
}
