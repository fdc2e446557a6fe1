package driver

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"tstrip/internal/classify"
	"tstrip/internal/diag"
)

// diskCacheSchemaVersion invalidates old payloads when the format changes.
const diskCacheSchemaVersion uint16 = 1

// Digest is a SHA-256 content hash.
type Digest = [32]byte

// DiskCache stores finished per-file results keyed by content hash.
// Safe for concurrent use.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// DiskPayload is the cached shape of one Result. Failures are cached too:
// a rejected file stays rejected until its content changes.
type DiskPayload struct {
	Schema uint16
	Mode   uint8

	Code   []byte
	Failed bool

	// Failure fields, valid when Failed.
	FailKind    uint8
	FailLine    uint32
	FailColumn  uint32
	FailMessage string
	FailSnippet string
}

// OpenDiskCache initializes a disk cache at the standard user location.
func OpenDiskCache(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

func (c *DiskCache) pathFor(key Digest) string {
	hexKey := hex.EncodeToString(key[:])
	return filepath.Join(c.dir, "files", hexKey+".mp")
}

// Put serializes and writes a payload, replacing atomically.
func (c *DiskCache) Put(key Digest, payload *DiskPayload) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(f.Name())

	if err := msgpack.NewEncoder(f).Encode(payload); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), p)
}

// Get reads a payload. A missing entry is (false, nil).
func (c *DiskCache) Get(key Digest, out *DiskPayload) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer f.Close()

	if err := msgpack.NewDecoder(f).Decode(out); err != nil {
		return false, err
	}
	return true, nil
}

// DropAll invalidates the whole cache.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		return err
	}
	return os.RemoveAll(old)
}

// cacheKey mixes the mode into the content hash so strip and transform
// results of the same file never collide.
func cacheKey(mode classify.Mode, contentHash Digest) Digest {
	h := sha256.New()
	h.Write([]byte{byte(diskCacheSchemaVersion), byte(mode)})
	h.Write(contentHash[:])
	var key Digest
	copy(key[:], h.Sum(nil))
	return key
}

func payloadFrom(res *Result) *DiskPayload {
	p := &DiskPayload{
		Schema: diskCacheSchemaVersion,
		Mode:   uint8(res.Mode),
		Code:   res.Code,
	}
	if res.Failure != nil {
		p.Failed = true
		p.FailKind = uint8(res.Failure.Kind)
		p.FailLine = res.Failure.Line
		p.FailColumn = res.Failure.Column
		p.FailMessage = res.Failure.Message
		p.FailSnippet = res.Failure.Snippet
	}
	return p
}

// toResult rebuilds a Result from a cached payload. A schema or mode
// mismatch invalidates the entry.
func (p *DiskPayload) toResult(path string, mode classify.Mode) (*Result, bool) {
	if p.Schema != diskCacheSchemaVersion || p.Mode != uint8(mode) {
		return nil, false
	}
	res := &Result{Path: path, Mode: mode, Code: p.Code}
	if p.Failed {
		res.Failure = &diag.Failure{
			Kind:     diag.FailureKind(p.FailKind),
			Filename: path,
			Line:     p.FailLine,
			Column:   p.FailColumn,
			Message:  p.FailMessage,
			Snippet:  p.FailSnippet,
		}
	}
	return res, true
}
