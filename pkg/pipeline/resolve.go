package pipeline

import (
	"proteus/pkg/api"
	"proteus/pkg/graph"

	"github.com/pkg/errors"
)

// Resolve converts a pipeline specification into a linear execution plan:
// steps are topologically sorted and wait barriers are interleaved wherever a
// batch-oriented engine needs to synchronize before starting a dependent
// step. Dependencies on step names without a declaration of their own are
// absorbed as implicit no-op steps.
//
// Resolve fails when the specification is structurally invalid or when the
// declared dependencies form a cycle (graph.ErrCyclicDependency as cause).
func Resolve(spec api.PipelineSpec) (api.ResolvedPipeline, error) {
	if err := spec.Validate(); err != nil {
		return api.ResolvedPipeline{}, errors.Wrapf(err, "pipeline %s is not valid", spec.Name)
	}

	steps := make(map[string]*graph.Step, len(spec.Steps))
	for i := range spec.Steps {
		s := spec.Steps[i]
		gs := graph.NewStep(s.Name)
		gs.AlwaysRun = s.AlwaysRun
		gs.Payload = s
		steps[s.Name] = gs
	}

	g := graph.New()
	for _, s := range spec.Steps {
		for _, dep := range s.DependsOn {
			target, declared := steps[dep]
			if !declared {
				// Implicit step: referenced as a dependency but
				// never declared. The graph absorbs it during
				// the sort; we only give it a payload to render.
				target = graph.NewStep(dep)
				target.Payload = api.StepSpec{Name: dep}
				steps[dep] = target
			}
			steps[s.Name].DependOn(target)
		}
	}
	for _, s := range spec.Steps {
		g.Add(steps[s.Name])
	}

	sorted, err := g.Sort()
	if err != nil {
		return api.ResolvedPipeline{}, errors.Wrapf(err, "cannot order steps of pipeline %s", spec.Name)
	}

	plan := api.ResolvedPipeline{
		Name:     spec.Name,
		Elements: make([]api.Element, 0, len(sorted)),
	}
	for _, el := range graph.InsertBarriers(sorted) {
		switch v := el.(type) {
		case *graph.Step:
			s := v.Payload.(api.StepSpec)
			plan.Elements = append(plan.Elements, api.Element{Kind: api.KindStep, Step: &s})
		case *graph.Barrier:
			plan.Elements = append(plan.Elements, api.Element{Kind: api.KindWait, ContinueOnFailure: v.ContinueOnFailure})
		}
	}
	return plan, nil
}

// Batches folds a resolved plan into its barrier-delimited batches, in
// execution order. The continue-on-failure flag of a batch comes from the
// barrier opening it; the first batch is never gated.
func Batches(plan api.ResolvedPipeline) []api.Batch {
	var batches []api.Batch
	current := api.Batch{Seq: 1}
	for _, el := range plan.Elements {
		switch el.Kind {
		case api.KindStep:
			current.Steps = append(current.Steps, *el.Step)
		case api.KindWait:
			if len(current.Steps) > 0 {
				batches = append(batches, current)
			}
			current = api.Batch{
				Seq:               len(batches) + 1,
				ContinueOnFailure: el.ContinueOnFailure,
			}
		}
	}
	if len(current.Steps) > 0 {
		batches = append(batches, current)
	}
	return batches
}
