package catalog

import (
	"time"
	"unicode/utf8"
)

const (
	// MaxNameLength and MaxPathLength are buffer sizes: a stored name keeps at most
	// MaxNameLength-1 bytes, a stored path at most MaxPathLength-1 bytes.
	MaxNameLength = 256
	MaxPathLength = 1024

	// DefaultMaxFiles is the number of slots in a catalog built without WithMaxFiles.
	DefaultMaxFiles = 1000

	// RootPath lists every active entry.
	RootPath = "/"
)

// Entry is the metadata record for one simulated file.
type Entry struct {
	ID          string
	Name        string
	Path        string
	Size        uint64
	CreatedAt   time.Time
	ModifiedAt  time.Time
	IsDirectory bool
	IsDeleted   bool
}

// FileSummary is what List yields for each matching entry.
type FileSummary struct {
	Name string
	Size uint64
}

// Usage is a point-in-time view of the space and slot counters.
type Usage struct {
	TotalSpace uint64
	UsedSpace  uint64
	FreeSpace  uint64
	MaxFiles   int
	Entries    int // occupied slots, tombstones included
	Active     int
	Deleted    int
}

// truncate cuts s to what a NUL-terminated buffer of limit bytes would hold.
// Over-long text is dropped silently; the cut backs off to a rune boundary.
func truncate(s string, limit int) string {
	max := limit - 1
	if max < 0 {
		max = 0
	}
	if len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}
