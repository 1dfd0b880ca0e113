package filter

import (
	"iter"

	"github.com/go-leo/specfilter/specification"
)

// Filter applies a Specification to a sequence of items.
type Filter[T any] interface {
	// Filter returns the items satisfied by spec, preserving their original order.
	// items is never modified.
	Filter(items []T, spec specification.Specification[T]) []T
}

// The FilterFunc type is an adapter to allow the use of ordinary functions as Filter.
// If f is a function with the appropriate signature, FilterFunc(f) is a Filter that calls f.
type FilterFunc[T any] func(items []T, spec specification.Specification[T]) []T

// Filter calls f(items, spec).
func (f FilterFunc[T]) Filter(items []T, spec specification.Specification[T]) []T {
	return f(items, spec)
}

// New returns a Filter that evaluates spec sequentially.
func New[T any]() Filter[T] {
	return FilterFunc[T](Apply[T])
}

// Apply returns a new slice holding the items satisfied by spec, in order.
// The result is never nil.
func Apply[T any](items []T, spec specification.Specification[T]) []T {
	result := make([]T, 0)
	for _, item := range items {
		if spec.IsSatisfiedBy(item) {
			result = append(result, item)
		}
	}
	return result
}

// Seq lazily yields the items of items satisfied by spec.
// items is ranged over once per iteration of the returned sequence.
func Seq[T any](items iter.Seq[T], spec specification.Specification[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range items {
			if !spec.IsSatisfiedBy(item) {
				continue
			}
			if !yield(item) {
				return
			}
		}
	}
}
