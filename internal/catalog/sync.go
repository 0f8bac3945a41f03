package catalog

import (
	"iter"
	"slices"
	"sync"
)

// Store is the catalog surface shared by Catalog and SyncCatalog.
type Store interface {
	Create(name, path string, size uint64) error
	Delete(path string) error
	Recover(path string) error
	List(filter string) iter.Seq[FileSummary]
	ListPrefix(prefix string) iter.Seq[FileSummary]
	Compact() int
	Optimize() int
	FreeSpace() uint64
	Usage() Usage
	Entries() iter.Seq2[int, Entry]
	Do(fn func(*Catalog))
}

var (
	_ Store = (*Catalog)(nil)
	_ Store = (*SyncCatalog)(nil)
)

// SyncCatalog serializes every operation on a Catalog behind one mutex.
// Iterators take a snapshot under the lock and yield after releasing it.
type SyncCatalog struct {
	mu sync.Mutex
	c  *Catalog
}

func NewSyncCatalog(c *Catalog) *SyncCatalog {
	return &SyncCatalog{c: c}
}

func (s *SyncCatalog) Create(name, path string, size uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.c.Create(name, path, size)
}

func (s *SyncCatalog) Delete(path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.c.Delete(path)
}

func (s *SyncCatalog) Recover(path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.c.Recover(path)
}

func (s *SyncCatalog) List(filter string) iter.Seq[FileSummary] {
	return snapshot(&s.mu, func() []FileSummary { return slices.Collect(s.c.List(filter)) })
}

func (s *SyncCatalog) ListPrefix(prefix string) iter.Seq[FileSummary] {
	return snapshot(&s.mu, func() []FileSummary { return slices.Collect(s.c.ListPrefix(prefix)) })
}

func (s *SyncCatalog) Compact() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.c.Compact()
}

func (s *SyncCatalog) Optimize() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.c.Optimize()
}

func (s *SyncCatalog) FreeSpace() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.c.FreeSpace()
}

func (s *SyncCatalog) Usage() Usage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.c.Usage()
}

func (s *SyncCatalog) Entries() iter.Seq2[int, Entry] {
	return func(yield func(int, Entry) bool) {
		s.mu.Lock()
		entries := slices.Clone(s.c.entries)
		s.mu.Unlock()

		for i, e := range entries {
			if !yield(i, e) {
				return
			}
		}
	}
}

// Do runs fn while holding the lock, so a multi-step pass sees a consistent table.
// fn must not call back into s.
func (s *SyncCatalog) Do(fn func(*Catalog)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.c)
}

func snapshot[T any](mu *sync.Mutex, collect func() []T) iter.Seq[T] {
	return func(yield func(T) bool) {
		mu.Lock()
		items := collect()
		mu.Unlock()

		for _, item := range items {
			if !yield(item) {
				return
			}
		}
	}
}
