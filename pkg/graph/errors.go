package graph

import "fmt"

// CyclicDependencyError returns a new ErrCyclicDependency for the given step.
func CyclicDependencyError(step *Step) error {
	return ErrCyclicDependency{step}
}

// ErrCyclicDependency is the error returned by Sort when the declared
// dependencies do not admit any topological order. The whole pipeline
// definition must be considered invalid; no partial ordering exists.
type ErrCyclicDependency struct {
	step *Step
}

// Step returns a step known to lie on a dependency cycle.
func (err ErrCyclicDependency) Step() *Step {
	return err.step
}

func (err ErrCyclicDependency) Error() string {
	if err.step == nil {
		return "cyclic dependency"
	}
	return fmt.Sprintf("cyclic dependency involving step %s", err.step.Name)
}
