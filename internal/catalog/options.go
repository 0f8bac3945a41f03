package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/xyzaryan12-jpg/filesytemrecovery1/internal/activity"
)

// Options configures a Catalog.
type Options struct {
	MaxFiles      int             // Number of entry slots
	MaxNameLength int             // Name buffer size, see MaxNameLength
	MaxPathLength int             // Path buffer size, see MaxPathLength
	UniquePaths   bool            // Reject creating a second active entry with the same path
	Logger        activity.Logger // Activity sink, never nil
	Clock         func() time.Time
	NewID         func() string
}

// OptionFunc is a functional option for configuring a Catalog.
type OptionFunc func(opts *Options)

func defaultOptions() Options {
	return Options{
		MaxFiles:      DefaultMaxFiles,
		MaxNameLength: MaxNameLength,
		MaxPathLength: MaxPathLength,
		Logger:        activity.Nop{},
		Clock:         time.Now,
		NewID:         uuid.NewString,
	}
}

// WithMaxFiles sets the number of entry slots. Values below 1 are ignored.
func WithMaxFiles(n int) OptionFunc {
	return func(opts *Options) {
		if n > 0 {
			opts.MaxFiles = n
		}
	}
}

// WithNameLimits overrides the name and path buffer sizes. Values below 2 are ignored.
func WithNameLimits(nameLength, pathLength int) OptionFunc {
	return func(opts *Options) {
		if nameLength > 1 {
			opts.MaxNameLength = nameLength
		}
		if pathLength > 1 {
			opts.MaxPathLength = pathLength
		}
	}
}

// WithUniquePaths makes Create fail with ErrDuplicatePath when an active entry
// already uses the path.
func WithUniquePaths() OptionFunc {
	return func(opts *Options) {
		opts.UniquePaths = true
	}
}

// WithLogger sets the activity sink. A nil logger disables activity logging.
func WithLogger(logger activity.Logger) OptionFunc {
	return func(opts *Options) {
		if logger == nil {
			logger = activity.Nop{}
		}
		opts.Logger = logger
	}
}

// WithClock replaces time.Now for entry timestamps.
func WithClock(clock func() time.Time) OptionFunc {
	return func(opts *Options) {
		if clock != nil {
			opts.Clock = clock
		}
	}
}

// WithIDFunc replaces the uuid generator used for entry IDs.
func WithIDFunc(fn func() string) OptionFunc {
	return func(opts *Options) {
		if fn != nil {
			opts.NewID = fn
		}
	}
}
