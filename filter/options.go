package filter

import (
	"github.com/go-leo/gox/syncx/gopher"
	"github.com/go-leo/gox/syncx/gopher/sample"
)

const defaultChunkSize = 1024

type option struct {
	Pool      gopher.Gopher
	ChunkSize int
}

func newOption(opts ...Option) *option {
	o := &option{}
	for _, opt := range opts {
		opt(o)
	}
	if o.Pool == nil {
		o.Pool = sample.Gopher{}
	}
	if o.ChunkSize <= 0 {
		o.ChunkSize = defaultChunkSize
	}
	return o
}

type Option func(*option)

// Pool sets the goroutine pool chunks are evaluated on.
func Pool(pool gopher.Gopher) Option {
	return func(o *option) {
		o.Pool = pool
	}
}

// ChunkSize sets how many items a single task evaluates.
func ChunkSize(size int) Option {
	return func(o *option) {
		o.ChunkSize = size
	}
}
