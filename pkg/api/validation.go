package api

import "github.com/pkg/errors"

// Validate validates the structure of the pipeline specification.
// Rules are:
// - Pipeline name is required
// - Step names are required and unique
// A dependency referencing an unknown step name is not an error: the resolver
// absorbs it as an implicit step.
func (p PipelineSpec) Validate() error {
	if p.Name == "" {
		return errors.New("pipeline name is required")
	}
	seen := make(map[string]struct{}, len(p.Steps))
	for i, s := range p.Steps {
		if s.Name == "" {
			return errors.Errorf("step at index %d has no name", i)
		}
		if _, dup := seen[s.Name]; dup {
			return errors.Errorf("duplicate step name %s", s.Name)
		}
		seen[s.Name] = struct{}{}
	}
	return nil
}
