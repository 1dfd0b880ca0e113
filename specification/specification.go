package specification

// Specification interface.
// Use New as base for creating specifications, and
// only the predicate must be implemented.
//
// A Specification must be pure: evaluating it twice on the same value
// yields the same result and has no side effects.
type Specification[T any] interface {

	// IsSatisfiedBy check if t is satisfied by the specification.
	IsSatisfiedBy(t T) bool

	// And create a new specification that is the AND operation of the current specification and
	// another specification.
	And(another Specification[T]) Specification[T]

	// Or create a new specification that is the OR operation of the current specification and
	// another specification.
	Or(another Specification[T]) Specification[T]

	// Not create a new specification that is the NOT operation of the current specification.
	Not() Specification[T]

	// Conjunction create a new specification that is satisfied when the current specification
	// and all others are satisfied.
	Conjunction(others ...Specification[T]) Specification[T]

	// Disjunction create a new specification that is satisfied when the current specification
	// or any of the others is satisfied.
	Disjunction(others ...Specification[T]) Specification[T]
}

// New returns a specification backed by predicate.
func New[T any](predicate func(t T) bool) Specification[T] {
	if predicate == nil {
		panic("specification: nil predicate")
	}
	spec := &base[T]{Predicate: predicate}
	spec.self = spec
	return spec
}

// And returns a specification that is the AND of left and right.
// Right is not evaluated when left is not satisfied.
func And[T any](left Specification[T], right Specification[T]) Specification[T] {
	mustNotNil(left, "left")
	mustNotNil(right, "right")
	spec := &and[T]{Left: left, Right: right}
	spec.self = spec
	return spec
}

// Or returns a specification that is the OR of left and right.
func Or[T any](left Specification[T], right Specification[T]) Specification[T] {
	mustNotNil(left, "left")
	mustNotNil(right, "right")
	spec := &or[T]{Left: left, Right: right}
	spec.self = spec
	return spec
}

// Not returns the inverse of spec.
func Not[T any](spec Specification[T]) Specification[T] {
	mustNotNil(spec, "spec")
	n := &not[T]{Spec: spec}
	n.self = n
	return n
}

// Conjunction returns a specification satisfied when every spec is satisfied.
// An empty conjunction is always satisfied.
func Conjunction[T any](specs ...Specification[T]) Specification[T] {
	for _, s := range specs {
		mustNotNil(s, "conjunction member")
	}
	spec := &conjunction[T]{Specs: append([]Specification[T](nil), specs...)}
	spec.self = spec
	return spec
}

// Disjunction returns a specification satisfied when at least one spec is satisfied.
// An empty disjunction is never satisfied.
func Disjunction[T any](specs ...Specification[T]) Specification[T] {
	for _, s := range specs {
		mustNotNil(s, "disjunction member")
	}
	spec := &disjunction[T]{Specs: append([]Specification[T](nil), specs...)}
	spec.self = spec
	return spec
}

func mustNotNil[T any](spec Specification[T], name string) {
	if spec == nil {
		panic("specification: nil " + name)
	}
}
