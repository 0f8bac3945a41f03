// Package catalog implements a fixed-capacity, in-memory table of file metadata
// with soft deletion, recovery, space accounting and compaction.
//
// A Catalog is not safe for concurrent use. Wrap it with NewSyncCatalog when it
// is shared between goroutines.
package catalog

import (
	"fmt"
	"iter"
	"strings"

	"github.com/xyzaryan12-jpg/filesytemrecovery1/internal/activity"
)

// Catalog holds the entry table and the space counters.
// usedSpace always equals the summed size of the entries that are not deleted.
type Catalog struct {
	entries    []Entry
	totalSpace uint64
	usedSpace  uint64
	opts       Options
}

// New creates a catalog with totalSpace bytes of capacity and runs Init.
func New(totalSpace uint64, opts ...OptionFunc) *Catalog {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	c := &Catalog{opts: o}
	c.Init(totalSpace)
	return c
}

// Init drops every entry and resets the capacity to totalSpace.
func (c *Catalog) Init(totalSpace uint64) {
	c.entries = make([]Entry, 0, c.opts.MaxFiles)
	c.totalSpace = totalSpace
	c.usedSpace = 0

	c.opts.Logger.Record(activity.OpInit, "File system initialized")
}

// Create appends a new active entry. The slot limit is checked before the space limit.
// Name and path are truncated to their buffer sizes.
func (c *Catalog) Create(name, path string, size uint64) error {
	if len(c.entries) >= c.opts.MaxFiles {
		c.opts.Logger.Record(activity.OpError, "Maximum file limit reached")
		return fmt.Errorf("%w: %d entries", ErrCapacityExceeded, c.opts.MaxFiles)
	}

	if c.FreeSpace() < size {
		c.opts.Logger.Record(activity.OpError, "Insufficient space")
		return fmt.Errorf("%w: requested %d bytes, %d free", ErrInsufficientSpace, size, c.FreeSpace())
	}

	name = truncate(name, c.opts.MaxNameLength)
	path = truncate(path, c.opts.MaxPathLength)

	if c.opts.UniquePaths && c.indexOf(path, false) >= 0 {
		c.opts.Logger.Record(activity.OpError, "Path already in use")
		return fmt.Errorf("%w: %s", ErrDuplicatePath, path)
	}

	now := c.opts.Clock()
	c.entries = append(c.entries, Entry{
		ID:         c.opts.NewID(),
		Name:       name,
		Path:       path,
		Size:       size,
		CreatedAt:  now,
		ModifiedAt: now,
	})
	c.usedSpace += size

	c.opts.Logger.Record(activity.OpCreate, name)
	return nil
}

// Delete tombstones the first active entry whose path equals path and releases its space.
// The slot stays occupied until Compact.
func (c *Catalog) Delete(path string) error {
	i := c.indexOf(path, false)
	if i < 0 {
		c.opts.Logger.Record(activity.OpError, "File not found")
		return fmt.Errorf("%w: %s", ErrNotFound, path)
	}

	c.entries[i].IsDeleted = true
	c.usedSpace -= c.entries[i].Size

	c.opts.Logger.Record(activity.OpDelete, path)
	return nil
}

// Recover clears the tombstone of the first deleted entry whose path equals path
// and charges its size again. It fails with ErrInsufficientSpace rather than let
// the used space exceed the total.
func (c *Catalog) Recover(path string) error {
	i := c.indexOf(path, true)
	if i < 0 {
		c.opts.Logger.Record(activity.OpError, "File not found for recovery")
		return fmt.Errorf("%w: %s", ErrNotFound, path)
	}

	size := c.entries[i].Size
	if c.FreeSpace() < size {
		c.opts.Logger.Record(activity.OpError, "Insufficient space for recovery")
		return fmt.Errorf("%w: recovering %s needs %d bytes, %d free", ErrInsufficientSpace, path, size, c.FreeSpace())
	}

	c.entries[i].IsDeleted = false
	c.usedSpace += size

	c.opts.Logger.Record(activity.OpRecover, path)
	return nil
}

// List yields the active entries matching filter, in storage order.
//
// RootPath matches everything. Any other filter matches the entries whose path
// does NOT contain it. This exclusion rule is the historical behaviour of the
// catalog listing and is kept as-is; use ListPrefix for "files under a path".
func (c *Catalog) List(filter string) iter.Seq[FileSummary] {
	return c.list(func(e *Entry) bool {
		return filter == RootPath || !strings.Contains(e.Path, filter)
	})
}

// ListPrefix yields the active entries whose path starts with prefix, in storage order.
func (c *Catalog) ListPrefix(prefix string) iter.Seq[FileSummary] {
	return c.list(func(e *Entry) bool {
		return strings.HasPrefix(e.Path, prefix)
	})
}

func (c *Catalog) list(match func(*Entry) bool) iter.Seq[FileSummary] {
	return func(yield func(FileSummary) bool) {
		for i := range c.entries {
			e := &c.entries[i]
			if e.IsDeleted || !match(e) {
				continue
			}
			if !yield(FileSummary{Name: e.Name, Size: e.Size}) {
				return
			}
		}
	}
}

// Compact drops every tombstoned entry, moving survivors to the front in their
// original relative order. It returns the number of entries removed.
// Removed entries can no longer be recovered.
func (c *Catalog) Compact() int {
	write := 0
	for read := range c.entries {
		if c.entries[read].IsDeleted {
			continue
		}
		if write != read {
			c.entries[write] = c.entries[read]
		}
		write++
	}

	removed := len(c.entries) - write
	clear(c.entries[write:])
	c.entries = c.entries[:write]
	return removed
}

// Optimize compacts the table and records an OPTIMIZE event.
func (c *Catalog) Optimize() int {
	removed := c.Compact()
	c.opts.Logger.Record(activity.OpOptimize, "File system optimized")
	return removed
}

// FreeSpace is recomputed from the counters on every call.
func (c *Catalog) FreeSpace() uint64 {
	return c.totalSpace - c.usedSpace
}

func (c *Catalog) TotalSpace() uint64 { return c.totalSpace }
func (c *Catalog) UsedSpace() uint64  { return c.usedSpace }
func (c *Catalog) Len() int           { return len(c.entries) }
func (c *Catalog) MaxFiles() int      { return c.opts.MaxFiles }

// Entries yields a copy of every occupied slot, tombstones included, with its index.
func (c *Catalog) Entries() iter.Seq2[int, Entry] {
	return func(yield func(int, Entry) bool) {
		for i, e := range c.entries {
			if !yield(i, e) {
				return
			}
		}
	}
}

// Usage returns the counters along with active and deleted slot counts.
func (c *Catalog) Usage() Usage {
	u := Usage{
		TotalSpace: c.totalSpace,
		UsedSpace:  c.usedSpace,
		FreeSpace:  c.FreeSpace(),
		MaxFiles:   c.opts.MaxFiles,
		Entries:    len(c.entries),
	}
	for i := range c.entries {
		if c.entries[i].IsDeleted {
			u.Deleted++
		} else {
			u.Active++
		}
	}
	return u
}

// Do runs fn against the catalog. It lets callers treat a Catalog and a
// SyncCatalog the same way.
func (c *Catalog) Do(fn func(*Catalog)) {
	fn(c)
}

// indexOf returns the first slot whose path equals path and whose tombstone equals deleted.
func (c *Catalog) indexOf(path string, deleted bool) int {
	for i := range c.entries {
		if c.entries[i].IsDeleted == deleted && c.entries[i].Path == path {
			return i
		}
	}
	return -1
}
