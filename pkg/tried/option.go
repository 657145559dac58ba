package tried

import (
	"io"
	"log/slog"
)

// Options holds the tunables of a Container.
type Options struct {
	MaxNodes int          // upper bound on non-root nodes, 0 means unbounded
	Logger   *slog.Logger // receives debug events, discarded by default
}

type Option func(*Options) *Options

func DefaultOptions() *Options {
	return &Options{
		MaxNodes: 0,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithNodeLimit caps the number of nodes the container may allocate.
// Inserts that would go past the limit fail with ErrOutOfMemory.
func WithNodeLimit(maxNodes int) Option {
	return func(o *Options) *Options {
		if maxNodes < 0 {
			maxNodes = 0
		}
		o.MaxNodes = maxNodes
		return o
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(o *Options) *Options {
		if logger != nil {
			o.Logger = logger
		}
		return o
	}
}
