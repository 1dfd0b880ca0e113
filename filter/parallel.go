package filter

import (
	"sync"

	"github.com/go-leo/specfilter/specification"
)

var _ Filter[any] = (*parallel[any])(nil)

type parallel[T any] struct {
	options *option
}

// NewParallel returns a Filter that evaluates chunks of the input concurrently
// and joins the chunk results in input order.
func NewParallel[T any](opts ...Option) Filter[T] {
	return &parallel[T]{options: newOption(opts...)}
}

func (p *parallel[T]) Filter(items []T, spec specification.Specification[T]) []T {
	size := p.options.ChunkSize
	if len(items) <= size {
		return Apply(items, spec)
	}
	chunks := (len(items) + size - 1) / size
	results := make([][]T, chunks)
	var wg sync.WaitGroup
	for i := 0; i < chunks; i++ {
		lo := i * size
		hi := min(lo+size, len(items))
		part := items[lo:hi:hi]
		wg.Add(1)
		err := p.options.Pool.Go(func() {
			defer wg.Done()
			results[i] = Apply(part, spec)
		})
		if err != nil {
			// the pool refused the task, evaluate it here
			results[i] = Apply(part, spec)
			wg.Done()
		}
	}
	wg.Wait()

	total := 0
	for _, r := range results {
		total += len(r)
	}
	out := make([]T, 0, total)
	for _, r := range results {
		out = append(out, r...)
	}
	return out
}
