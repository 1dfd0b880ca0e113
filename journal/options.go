package journal

import (
	"os"

	"github.com/rs/zerolog"
)

type options struct {
	Logger   zerolog.Logger
	Launcher Launcher
	FileMode os.FileMode
}

func newOptions(opts ...Option) *options {
	o := &options{
		Logger:   zerolog.Nop(),
		FileMode: 0o644,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

type Option func(o *options)

func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) {
		o.Logger = logger
	}
}

// WithLauncher opens the file with launcher after every save that wrote it.
func WithLauncher(launcher Launcher) Option {
	return func(o *options) {
		o.Launcher = launcher
	}
}

// WithFileMode sets the permission bits of newly created journal files.
func WithFileMode(mode os.FileMode) Option {
	return func(o *options) {
		o.FileMode = mode
	}
}
