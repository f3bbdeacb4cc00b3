// Package dedupe tracks which article fingerprints were already seen so the
// same story is not scored twice for one entity.
package dedupe

import (
	"context"
	"hash/fnv"
	"strconv"
	"strings"
	"sync"
)

// Deduper records seen ids to ensure each one is processed at most once.
type Deduper interface {
	// SeenAndRecord atomically checks if id was seen and records it if not.
	// Returns true if id was already seen, false if it was newly recorded.
	SeenAndRecord(ctx context.Context, id string) bool

	Size() int64
}

// inMemoryDeduper is a map-backed Deduper. In bounded mode (maxSize > 0) the
// oldest id is evicted first once the bound is reached.
type inMemoryDeduper struct {
	mu      sync.Mutex
	seen    map[string]struct{}
	order   []string // insertion order, only maintained in bounded mode
	maxSize int
}

// NewInMemoryDeduper creates a new in-memory deduper with configuration options.
func NewInMemoryDeduper(opts ...Option) Deduper {
	d := &inMemoryDeduper{}
	for _, opt := range opts {
		opt(d)
	}
	d.seen = make(map[string]struct{})
	return d
}

// SeenAndRecord implements Deduper.
func (d *inMemoryDeduper) SeenAndRecord(_ context.Context, id string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.seen[id]; ok {
		return true
	}
	if d.maxSize > 0 {
		if len(d.seen) >= d.maxSize {
			d.evictOldest()
		}
		d.order = append(d.order, id)
	}
	d.seen[id] = struct{}{}
	return false
}

// evictOldest drops the first recorded id. Must be called with d.mu held.
func (d *inMemoryDeduper) evictOldest() {
	if len(d.order) == 0 {
		return
	}
	delete(d.seen, d.order[0])
	d.order = d.order[1:]
}

// Size returns the current number of recorded ids.
func (d *inMemoryDeduper) Size() int64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return int64(len(d.seen))
}

// Fingerprint identifies an article: by URL when present, otherwise by a
// hash of its whitespace-normalised lowercase text. The URL keeps its case
// and its query; only the fragment and "&"-appended tracking parameters of
// search result links are dropped.
func Fingerprint(url, text string) string {
	if u := strings.TrimSpace(url); u != "" {
		if i := strings.IndexByte(u, '#'); i >= 0 {
			u = u[:i]
		}
		if i := strings.IndexByte(u, '&'); i >= 0 && !strings.Contains(u[:i], "?") {
			u = u[:i]
		}
		return "url:" + u
	}
	h := fnv.New64a()
	_, _ = h.Write([]byte(strings.Join(strings.Fields(strings.ToLower(text)), " ")))
	return "text:" + strconv.FormatUint(h.Sum64(), 16)
}
