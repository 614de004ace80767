package domain

import (
	"slices"
	"strings"
	"sync"

	"github.com/cespare/xxhash/v2"
)

// stripeCount is the number of locks guarding reference updates.
const stripeCount = 64

type catalogEntry struct {
	origin string
	refs   map[string]int
}

// Catalog is the set of known resources for one analysis run.
//
// Populate is expected to complete before RecordUsage is called concurrently.
// RecordUsage serialises updates for the same key through a striped lock chosen by
// the hash of the key, so updates to different keys rarely contend.
type Catalog struct {
	mu      sync.RWMutex
	entries map[ResourceKey]*catalogEntry
	order   []ResourceKey
	stripes [stripeCount]sync.Mutex
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		entries: make(map[ResourceKey]*catalogEntry),
	}
}

// Populate inserts the given entries with zero references.
// A key that is already present is overwritten and returned in duplicates.
func (c *Catalog) Populate(entries []ResourceEntry) (duplicates []ResourceKey) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, e := range entries {
		if existing, ok := c.entries[e.Key]; ok {
			existing.origin = e.Origin
			clear(existing.refs)
			duplicates = append(duplicates, e.Key)
			continue
		}
		c.entries[e.Key] = &catalogEntry{
			origin: e.Origin,
			refs:   make(map[string]int),
		}
		c.order = append(c.order, e.Key)
	}
	return duplicates
}

// RecordUsage adds count references from fileName to key.
// Unknown keys and non-positive counts are ignored.
func (c *Catalog) RecordUsage(fileName string, key ResourceKey, count int) {
	if count <= 0 {
		return
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[key]
	if !ok {
		return
	}

	stripe := &c.stripes[stripeFor(key)]
	stripe.Lock()
	e.refs[fileName] += count
	stripe.Unlock()
}

// Has reports whether key is known.
func (c *Catalog) Has(key ResourceKey) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.entries[key]
	return ok
}

// Len returns the number of known resources.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.order)
}

// Keys returns the known keys in insertion order.
func (c *Catalog) Keys() []ResourceKey {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.order)
}

// Snapshot returns a consistent copy of all entries in insertion order.
// References within an entry are sorted by file name.
func (c *Catalog) Snapshot() []ResourceEntry {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]ResourceEntry, 0, len(c.order))
	for _, key := range c.order {
		e := c.entries[key]
		entry := ResourceEntry{Key: key, Origin: e.origin}
		if len(e.refs) > 0 {
			entry.References = make([]ReferenceRecord, 0, len(e.refs))
			for file, n := range e.refs {
				entry.References = append(entry.References, ReferenceRecord{FileName: file, Count: n})
			}
			slices.SortFunc(entry.References, func(a, b ReferenceRecord) int {
				return strings.Compare(a.FileName, b.FileName)
			})
		}
		out = append(out, entry)
	}
	return out
}

func stripeFor(key ResourceKey) uint64 {
	d := xxhash.New()
	_, _ = d.WriteString(key.ClassName)
	_, _ = d.WriteString(".")
	_, _ = d.WriteString(key.Name)
	return d.Sum64() % stripeCount
}
