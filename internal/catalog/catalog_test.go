package catalog

import (
	"fmt"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xyzaryan12-jpg/filesytemrecovery1/internal/activity"
)

var testTime = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func newTestCatalog(total uint64, opts ...OptionFunc) *Catalog {
	opts = append([]OptionFunc{WithClock(func() time.Time { return testTime })}, opts...)
	return New(total, opts...)
}

// assertSpaceInvariants checks that the counters agree with the table.
func assertSpaceInvariants(t *testing.T, c *Catalog) {
	t.Helper()

	var sum uint64
	for _, e := range c.Entries() {
		if !e.IsDeleted {
			sum += e.Size
		}
	}
	assert.Equal(t, sum, c.UsedSpace(), "used space must equal the sum of active sizes")
	assert.Equal(t, c.TotalSpace(), c.UsedSpace()+c.FreeSpace())
	assert.LessOrEqual(t, c.UsedSpace(), c.TotalSpace())
	assert.LessOrEqual(t, c.Len(), c.MaxFiles())
}

func names(c *Catalog) []string {
	var out []string
	for _, e := range c.Entries() {
		out = append(out, e.Name)
	}
	return out
}

func TestCatalog_Scenario(t *testing.T) {
	c := newTestCatalog(1024)

	require.NoError(t, c.Create("a", "/d/a", 100))
	assert.Equal(t, uint64(924), c.FreeSpace())

	require.NoError(t, c.Delete("/d/a"))
	assert.Equal(t, uint64(1024), c.FreeSpace())

	require.NoError(t, c.Recover("/d/a"))
	assert.Equal(t, uint64(924), c.FreeSpace())

	err := c.Delete("/missing")
	assert.ErrorIs(t, err, ErrNotFound)
	assertSpaceInvariants(t, c)
}

func TestCatalog_Create(t *testing.T) {
	testCases := []struct {
		name        string
		setup       func(*Catalog)
		opts        []OptionFunc
		createName  string
		createPath  string
		size        uint64
		expectedErr error
	}{
		{
			name:       "success",
			setup:      func(c *Catalog) {},
			createName: "test1.txt",
			createPath: "/documents/test1.txt",
			size:       100,
		},
		{
			name:       "success: exactly fills free space",
			setup:      func(c *Catalog) { c.Create("a", "/a", 24) },
			createName: "b",
			createPath: "/b",
			size:       1000,
		},
		{
			name:        "error: insufficient space",
			setup:       func(c *Catalog) { c.Create("a", "/a", 1000) },
			createName:  "b",
			createPath:  "/b",
			size:        25,
			expectedErr: ErrInsufficientSpace,
		},
		{
			name: "error: capacity checked before space",
			setup: func(c *Catalog) {
				c.Create("a", "/a", 0)
				c.Create("b", "/b", 0)
			},
			opts:        []OptionFunc{WithMaxFiles(2)},
			createName:  "c",
			createPath:  "/c",
			size:        1 << 20,
			expectedErr: ErrCapacityExceeded,
		},
		{
			name: "error: tombstones still occupy slots",
			setup: func(c *Catalog) {
				c.Create("a", "/a", 0)
				c.Delete("/a")
			},
			opts:        []OptionFunc{WithMaxFiles(1)},
			createName:  "b",
			createPath:  "/b",
			size:        0,
			expectedErr: ErrCapacityExceeded,
		},
		{
			name:        "error: duplicate path when unique paths are enforced",
			setup:       func(c *Catalog) { c.Create("x", "/p", 10) },
			opts:        []OptionFunc{WithUniquePaths()},
			createName:  "x",
			createPath:  "/p",
			size:        10,
			expectedErr: ErrDuplicatePath,
		},
		{
			name: "success: unique paths ignores tombstones",
			setup: func(c *Catalog) {
				c.Create("x", "/p", 10)
				c.Delete("/p")
			},
			opts:       []OptionFunc{WithUniquePaths()},
			createName: "x",
			createPath: "/p",
			size:       10,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := newTestCatalog(1024, tc.opts...)
			tc.setup(c)
			before := c.Usage()

			err := c.Create(tc.createName, tc.createPath, tc.size)

			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
				assert.Equal(t, before, c.Usage(), "failed create must not mutate the catalog")
			} else {
				require.NoError(t, err)
				assert.Equal(t, before.Entries+1, c.Len())
				assert.Equal(t, before.UsedSpace+tc.size, c.UsedSpace())
			}
			assertSpaceInvariants(t, c)
		})
	}
}

func TestCatalog_CreateSetsEntryFields(t *testing.T) {
	c := newTestCatalog(1024, WithIDFunc(func() string { return "id-1" }))
	require.NoError(t, c.Create("a.txt", "/docs/a.txt", 42))

	var got []Entry
	for _, e := range c.Entries() {
		got = append(got, e)
	}
	require.Len(t, got, 1)
	assert.Equal(t, Entry{
		ID:         "id-1",
		Name:       "a.txt",
		Path:       "/docs/a.txt",
		Size:       42,
		CreatedAt:  testTime,
		ModifiedAt: testTime,
	}, got[0])
}

func TestCatalog_FullTable(t *testing.T) {
	c := newTestCatalog(1024)
	for i := range DefaultMaxFiles {
		require.NoError(t, c.Create(fmt.Sprintf("f%d", i), fmt.Sprintf("/f%d", i), 0))
	}
	assert.Equal(t, DefaultMaxFiles, c.Len())

	err := c.Create("one-more", "/one-more", 0)
	assert.ErrorIs(t, err, ErrCapacityExceeded)
	assert.Equal(t, DefaultMaxFiles, c.Len())
	assertSpaceInvariants(t, c)
}

func TestCatalog_Truncation(t *testing.T) {
	c := newTestCatalog(1024)
	longName := strings.Repeat("n", MaxNameLength+10)
	longPath := "/" + strings.Repeat("p", MaxPathLength+10)

	require.NoError(t, c.Create(longName, longPath, 1))

	for _, e := range c.Entries() {
		assert.Len(t, e.Name, MaxNameLength-1)
		assert.Len(t, e.Path, MaxPathLength-1)
		assert.Equal(t, longName[:MaxNameLength-1], e.Name)
	}

	// Delete matches the stored, truncated path.
	assert.ErrorIs(t, c.Delete(longPath), ErrNotFound)
	assert.NoError(t, c.Delete(longPath[:MaxPathLength-1]))
}

func TestTruncate(t *testing.T) {
	testCases := []struct {
		name     string
		in       string
		limit    int
		expected string
	}{
		{name: "short", in: "abc", limit: 8, expected: "abc"},
		{name: "exactly fits", in: "abcdefg", limit: 8, expected: "abcdefg"},
		{name: "one over", in: "abcdefgh", limit: 8, expected: "abcdefg"},
		{name: "keeps rune boundary", in: "abécd", limit: 4, expected: "ab"},
		{name: "empty", in: "", limit: 8, expected: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, truncate(tc.in, tc.limit))
		})
	}
}

func TestCatalog_DeleteDuplicatePath(t *testing.T) {
	c := newTestCatalog(1024, WithIDFunc(sequentialIDs()))
	require.NoError(t, c.Create("x", "/p", 10))
	require.NoError(t, c.Create("x", "/p", 10))

	require.NoError(t, c.Delete("/p"))

	var deleted []bool
	for _, e := range c.Entries() {
		deleted = append(deleted, e.IsDeleted)
	}
	assert.Equal(t, []bool{true, false}, deleted, "only the first entry in storage order is tombstoned")
	assert.Equal(t, uint64(10), c.UsedSpace())

	// The second delete reaches the remaining active duplicate.
	require.NoError(t, c.Delete("/p"))
	assert.ErrorIs(t, c.Delete("/p"), ErrNotFound)
	assertSpaceInvariants(t, c)
}

func TestCatalog_Recover(t *testing.T) {
	testCases := []struct {
		name        string
		setup       func(*Catalog)
		path        string
		expectedErr error
	}{
		{
			name: "success",
			setup: func(c *Catalog) {
				c.Create("a", "/a", 100)
				c.Delete("/a")
			},
			path: "/a",
		},
		{
			name:        "error: entry is active",
			setup:       func(c *Catalog) { c.Create("a", "/a", 100) },
			path:        "/a",
			expectedErr: ErrNotFound,
		},
		{
			name:        "error: unknown path",
			setup:       func(c *Catalog) {},
			path:        "/missing",
			expectedErr: ErrNotFound,
		},
		{
			name: "error: compacted entries cannot be recovered",
			setup: func(c *Catalog) {
				c.Create("a", "/a", 100)
				c.Delete("/a")
				c.Compact()
			},
			path:        "/a",
			expectedErr: ErrNotFound,
		},
		{
			name: "error: freed space was reused",
			setup: func(c *Catalog) {
				c.Create("a", "/a", 600)
				c.Delete("/a")
				c.Create("b", "/b", 600)
			},
			path:        "/a",
			expectedErr: ErrInsufficientSpace,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := newTestCatalog(1024)
			tc.setup(c)
			before := c.Usage()

			err := c.Recover(tc.path)

			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
				assert.Equal(t, before, c.Usage())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, before.Active+1, c.Usage().Active)
			}
			assertSpaceInvariants(t, c)
		})
	}
}

func TestCatalog_DeleteRecoverRoundTrip(t *testing.T) {
	c := newTestCatalog(1 << 20)
	require.NoError(t, c.Create("keep", "/keep", 300))
	require.NoError(t, c.Create("n", "/p", 512))
	used := c.UsedSpace()

	require.NoError(t, c.Delete("/p"))
	require.NoError(t, c.Recover("/p"))

	assert.Equal(t, used, c.UsedSpace())
	for _, e := range c.Entries() {
		assert.False(t, e.IsDeleted)
	}
}

func TestCatalog_List(t *testing.T) {
	setup := func() *Catalog {
		c := newTestCatalog(1 << 20)
		c.Create("test1.txt", "/documents/test1.txt", 1024)
		c.Create("test2.txt", "/documents/test2.txt", 2048)
		c.Create("test3.txt", "/downloads/test3.txt", 4096)
		c.Create("gone.txt", "/downloads/gone.txt", 1)
		c.Delete("/downloads/gone.txt")
		return c
	}

	testCases := []struct {
		name     string
		list     func(*Catalog) []FileSummary
		expected []FileSummary
	}{
		{
			name: "root lists every active entry",
			list: func(c *Catalog) []FileSummary { return slices.Collect(c.List(RootPath)) },
			expected: []FileSummary{
				{Name: "test1.txt", Size: 1024},
				{Name: "test2.txt", Size: 2048},
				{Name: "test3.txt", Size: 4096},
			},
		},
		{
			name:     "filter excludes paths containing it",
			list:     func(c *Catalog) []FileSummary { return slices.Collect(c.List("/documents")) },
			expected: []FileSummary{{Name: "test3.txt", Size: 4096}},
		},
		{
			name: "filter with no occurrence lists everything",
			list: func(c *Catalog) []FileSummary { return slices.Collect(c.List("/music")) },
			expected: []FileSummary{
				{Name: "test1.txt", Size: 1024},
				{Name: "test2.txt", Size: 2048},
				{Name: "test3.txt", Size: 4096},
			},
		},
		{
			name:     "empty filter is contained in every path",
			list:     func(c *Catalog) []FileSummary { return slices.Collect(c.List("")) },
			expected: nil,
		},
		{
			name: "prefix lists files under the path",
			list: func(c *Catalog) []FileSummary { return slices.Collect(c.ListPrefix("/documents/")) },
			expected: []FileSummary{
				{Name: "test1.txt", Size: 1024},
				{Name: "test2.txt", Size: 2048},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.list(setup()))
		})
	}
}

func TestCatalog_ListIsRestartable(t *testing.T) {
	c := newTestCatalog(1024)
	c.Create("a", "/a", 1)
	c.Create("b", "/b", 2)

	seq := c.List(RootPath)
	first := slices.Collect(seq)
	second := slices.Collect(seq)
	assert.Equal(t, first, second)

	// Early break stops the iteration.
	var seen int
	for range seq {
		seen++
		break
	}
	assert.Equal(t, 1, seen)
}

func TestCatalog_Compact(t *testing.T) {
	c := newTestCatalog(1024)
	for _, n := range []string{"a", "b", "c", "d", "e"} {
		require.NoError(t, c.Create(n, "/"+n, 10))
	}
	require.NoError(t, c.Delete("/b"))
	require.NoError(t, c.Delete("/d"))
	used := c.UsedSpace()

	removed := c.Compact()

	assert.Equal(t, 2, removed)
	assert.Equal(t, []string{"a", "c", "e"}, names(c), "survivors keep their relative order")
	assert.Equal(t, used, c.UsedSpace())
	assertSpaceInvariants(t, c)

	// Idempotent
	snapshot := slices.Collect(c.List(RootPath))
	assert.Equal(t, 0, c.Compact())
	assert.Equal(t, snapshot, slices.Collect(c.List(RootPath)))
	assert.Equal(t, []string{"a", "c", "e"}, names(c))
}

func TestCatalog_CompactFreesSlots(t *testing.T) {
	c := newTestCatalog(1024, WithMaxFiles(2))
	require.NoError(t, c.Create("a", "/a", 1))
	require.NoError(t, c.Create("b", "/b", 1))
	require.NoError(t, c.Delete("/a"))
	assert.ErrorIs(t, c.Create("c", "/c", 1), ErrCapacityExceeded)

	c.Compact()
	assert.NoError(t, c.Create("c", "/c", 1))
	assert.Equal(t, []string{"b", "c"}, names(c))
}

func TestCatalog_Init(t *testing.T) {
	c := newTestCatalog(1024)
	c.Create("a", "/a", 100)

	c.Init(2048)

	assert.Equal(t, 0, c.Len())
	assert.Equal(t, uint64(0), c.UsedSpace())
	assert.Equal(t, uint64(2048), c.FreeSpace())
}

func TestCatalog_ActivityRecords(t *testing.T) {
	logger := new(activity.MockLogger)
	logger.On("Record", activity.OpInit, "File system initialized").Once()
	logger.On("Record", activity.OpCreate, "a").Once()
	logger.On("Record", activity.OpDelete, "/a").Once()
	logger.On("Record", activity.OpRecover, "/a").Once()
	logger.On("Record", activity.OpOptimize, "File system optimized").Once()
	logger.On("Record", activity.OpError, "File not found").Once()
	logger.On("Record", activity.OpError, "File not found for recovery").Once()
	logger.On("Record", activity.OpError, "Insufficient space").Once()

	c := newTestCatalog(100, WithLogger(logger))
	require.NoError(t, c.Create("a", "/a", 10))
	require.NoError(t, c.Delete("/a"))
	require.NoError(t, c.Recover("/a"))
	c.Optimize()
	assert.Error(t, c.Delete("/missing"))
	assert.Error(t, c.Recover("/a"))
	assert.Error(t, c.Create("big", "/big", 1000))

	logger.AssertExpectations(t)
	logger.AssertNumberOfCalls(t, "Record", 8)
}

func TestCatalog_RandomOperationsKeepInvariants(t *testing.T) {
	c := newTestCatalog(10_000, WithMaxFiles(50), WithLogger(activity.Nop{}))
	// Deterministic sequence touching every operation.
	for i := range 400 {
		path := fmt.Sprintf("/f%d", i%37)
		switch i % 7 {
		case 0, 1, 2:
			c.Create(path, path, uint64(i%13)*97)
		case 3, 4:
			c.Delete(path)
		case 5:
			c.Recover(path)
		case 6:
			if i%21 == 6 {
				c.Compact()
			}
		}
		assertSpaceInvariants(t, c)
	}
}

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}
