package specification

// disjunction used to create a new specification that is the OR of any number of specifications.
type disjunction[T any] struct {
	fluent[T]
	Specs []Specification[T]
}

func (spec *disjunction[T]) IsSatisfiedBy(t T) bool {
	for _, s := range spec.Specs {
		if s.IsSatisfiedBy(t) {
			return true
		}
	}
	return false
}
