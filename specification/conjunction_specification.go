package specification

// conjunction used to create a new specification that is the AND of any number of specifications.
type conjunction[T any] struct {
	fluent[T]
	Specs []Specification[T]
}

func (spec *conjunction[T]) IsSatisfiedBy(t T) bool {
	for _, s := range spec.Specs {
		if !s.IsSatisfiedBy(t) {
			return false
		}
	}
	return true
}
