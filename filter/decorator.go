package filter

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/go-leo/specfilter/specification"
)

// Decorator allows us to write something like decorators to Filter.
// It can execute something before Filter or after.
type Decorator[T any] interface {
	// Decorate wraps the underlying Filter, adding some functionality.
	Decorate(f Filter[T]) Filter[T]
}

// The DecoratorFunc type is an adapter to allow the use of ordinary functions as Decorator.
type DecoratorFunc[T any] func(f Filter[T]) Filter[T]

// Decorate call f(filter).
func (f DecoratorFunc[T]) Decorate(filter Filter[T]) Filter[T] {
	return f(filter)
}

// Chain decorates the given Filter with all decorators.
// The first decorator is the outermost.
func Chain[T any](f Filter[T], decorators ...Decorator[T]) Filter[T] {
	for i := len(decorators) - 1; i >= 0; i-- {
		f = decorators[i].Decorate(f)
	}
	return f
}

// Logging logs the size of the input and the output of every call at debug level.
func Logging[T any](logger zerolog.Logger) Decorator[T] {
	return DecoratorFunc[T](func(next Filter[T]) Filter[T] {
		return FilterFunc[T](func(items []T, spec specification.Specification[T]) []T {
			start := time.Now()
			result := next.Filter(items, spec)
			logger.Debug().
				Int("in", len(items)).
				Int("out", len(result)).
				Dur("elapsed", time.Since(start)).
				Msg("filter applied")
			return result
		})
	})
}
