package specification

// fluent implements the combinator methods for the specification stored in self,
// so that a.And(b) composes a itself rather than an embedded value.
type fluent[T any] struct {
	self Specification[T]
}

func (f fluent[T]) And(another Specification[T]) Specification[T] {
	return And[T](f.self, another)
}

func (f fluent[T]) Or(another Specification[T]) Specification[T] {
	return Or[T](f.self, another)
}

func (f fluent[T]) Not() Specification[T] {
	return Not[T](f.self)
}

func (f fluent[T]) Conjunction(others ...Specification[T]) Specification[T] {
	return Conjunction[T](append([]Specification[T]{f.self}, others...)...)
}

func (f fluent[T]) Disjunction(others ...Specification[T]) Specification[T] {
	return Disjunction[T](append([]Specification[T]{f.self}, others...)...)
}

type base[T any] struct {
	fluent[T]
	Predicate func(t T) bool
}

func (spec *base[T]) IsSatisfiedBy(t T) bool {
	return spec.Predicate(t)
}
