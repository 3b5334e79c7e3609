package walker

import "listcontents/internal/logger"

// Options configures the behavior of Walk.
type Options struct {
	Logger logger.Logger

	// MaxDepth limits descent, measured in path separators below the scan
	// root. Negative means unlimited.
	MaxDepth int

	// FollowLinks descends into symlinked directories.
	FollowLinks bool
}

func defaultOptions() Options {
	return Options{
		Logger:   logger.Noop{},
		MaxDepth: -1,
	}
}

// Option is a functional option for configuring Walk.
type Option func(*Options)

// WithLogger sets a custom logger for the walker.
func WithLogger(log logger.Logger) Option {
	return func(opts *Options) {
		if log != nil {
			opts.Logger = log
		}
	}
}

// WithMaxDepth sets the maximum traversal depth.
func WithMaxDepth(depth int) Option {
	return func(opts *Options) {
		opts.MaxDepth = depth
	}
}

// WithFollowLinks enables following symbolic links to directories.
func WithFollowLinks(follow bool) Option {
	return func(opts *Options) {
		opts.FollowLinks = follow
	}
}
