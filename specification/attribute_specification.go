package specification

import "golang.org/x/exp/constraints"

// equal is satisfied when the attribute read by Attr equals Value.
type equal[T any, V comparable] struct {
	fluent[T]
	Attr  func(t T) V
	Value V
}

func (spec *equal[T, V]) IsSatisfiedBy(t T) bool {
	return spec.Attr(t) == spec.Value
}

// Equal returns a specification satisfied by items whose attribute equals v.
func Equal[T any, V comparable](attr func(t T) V, v V) Specification[T] {
	if attr == nil {
		panic("specification: nil attribute")
	}
	spec := &equal[T, V]{Attr: attr, Value: v}
	spec.self = spec
	return spec
}

// between is satisfied when Min <= Attr(t) <= Max. A nil bound is open.
type between[T any, V constraints.Ordered] struct {
	fluent[T]
	Attr func(t T) V
	Min  *V
	Max  *V
}

func (spec *between[T, V]) IsSatisfiedBy(t T) bool {
	v := spec.Attr(t)
	if spec.Min != nil && v < *spec.Min {
		return false
	}
	if spec.Max != nil && v > *spec.Max {
		return false
	}
	return true
}

func newBetween[T any, V constraints.Ordered](attr func(t T) V, lo *V, hi *V) Specification[T] {
	if attr == nil {
		panic("specification: nil attribute")
	}
	spec := &between[T, V]{Attr: attr, Min: lo, Max: hi}
	spec.self = spec
	return spec
}

// GreaterOrEqual returns a specification satisfied by items whose attribute is at least lo.
func GreaterOrEqual[T any, V constraints.Ordered](attr func(t T) V, lo V) Specification[T] {
	return newBetween[T, V](attr, &lo, nil)
}

// LessOrEqual returns a specification satisfied by items whose attribute is at most hi.
func LessOrEqual[T any, V constraints.Ordered](attr func(t T) V, hi V) Specification[T] {
	return newBetween[T, V](attr, nil, &hi)
}

// Between returns a specification satisfied by items whose attribute lies in [lo, hi].
func Between[T any, V constraints.Ordered](attr func(t T) V, lo V, hi V) Specification[T] {
	return newBetween[T, V](attr, &lo, &hi)
}
