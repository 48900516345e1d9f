package pipeline

import (
	"testing"

	"proteus/pkg/api"
	"proteus/pkg/graph"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(elements []api.Element) []string {
	out := make([]string, 0, len(elements))
	for _, el := range elements {
		switch el.Kind {
		case api.KindStep:
			out = append(out, el.Step.Name)
		case api.KindWait:
			if el.ContinueOnFailure {
				out = append(out, "wait!")
			} else {
				out = append(out, "wait")
			}
		}
	}
	return out
}

func TestResolve(t *testing.T) {
	spec := api.PipelineSpec{
		Name: "release",
		Steps: []api.StepSpec{
			{Name: "build", Command: "make build"},
			{Name: "lint", Command: "make lint"},
			{Name: "test", Command: "make test", DependsOn: []string{"build"}},
			{Name: "publish", Command: "make publish", DependsOn: []string{"test", "lint"}},
		},
	}
	plan, err := Resolve(spec)
	require.NoError(t, err)
	assert.Equal(t, "release", plan.Name)
	assert.Equal(t, []string{"build", "lint", "wait", "test", "wait", "publish"}, names(plan.Elements))
}

func TestResolveNoDependencies(t *testing.T) {
	spec := api.PipelineSpec{
		Name: "fanout",
		Steps: []api.StepSpec{
			{Name: "a"}, {Name: "b"}, {Name: "c"},
		},
	}
	plan, err := Resolve(spec)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, names(plan.Elements))
}

func TestResolveImplicitStep(t *testing.T) {
	// "sign" is referenced but never declared: it is absorbed as an
	// implicit step and ordered before its dependent.
	spec := api.PipelineSpec{
		Name: "release",
		Steps: []api.StepSpec{
			{Name: "build"},
			{Name: "publish", DependsOn: []string{"build", "sign"}},
		},
	}
	plan, err := Resolve(spec)
	require.NoError(t, err)
	assert.Equal(t, []string{"build", "sign", "wait", "publish"}, names(plan.Elements))
}

func TestResolveAlwaysRun(t *testing.T) {
	spec := api.PipelineSpec{
		Name: "deploy",
		Steps: []api.StepSpec{
			{Name: "deploy"},
			{Name: "cleanup", DependsOn: []string{"deploy"}, AlwaysRun: true},
			{Name: "announce", DependsOn: []string{"deploy"}},
		},
	}
	plan, err := Resolve(spec)
	require.NoError(t, err)
	// The barrier guarding cleanup continues on failure; announce gets a
	// fresh gating barrier.
	assert.Equal(t, []string{"deploy", "wait!", "cleanup", "wait", "announce"}, names(plan.Elements))
}

func TestResolveCycle(t *testing.T) {
	spec := api.PipelineSpec{
		Name: "broken",
		Steps: []api.StepSpec{
			{Name: "a", DependsOn: []string{"b"}},
			{Name: "b", DependsOn: []string{"c"}},
			{Name: "c", DependsOn: []string{"a"}},
		},
	}
	_, err := Resolve(spec)
	require.Error(t, err)
	var cErr graph.ErrCyclicDependency
	assert.True(t, errors.As(err, &cErr))
}

func TestResolveInvalidSpec(t *testing.T) {
	_, err := Resolve(api.PipelineSpec{Steps: []api.StepSpec{{Name: "a"}}})
	require.Error(t, err)
}

func TestBatches(t *testing.T) {
	spec := api.PipelineSpec{
		Name: "release",
		Steps: []api.StepSpec{
			{Name: "build"},
			{Name: "lint"},
			{Name: "test", DependsOn: []string{"build"}},
			{Name: "report", DependsOn: []string{"build"}, AlwaysRun: true},
		},
	}
	plan, err := Resolve(spec)
	require.NoError(t, err)

	batches := Batches(plan)
	require.Equal(t, 2, len(batches))

	assert.Equal(t, 1, batches[0].Seq)
	assert.False(t, batches[0].ContinueOnFailure)
	require.Equal(t, 2, len(batches[0].Steps))
	assert.Equal(t, "build", batches[0].Steps[0].Name)
	assert.Equal(t, "lint", batches[0].Steps[1].Name)

	assert.Equal(t, 2, batches[1].Seq)
	assert.True(t, batches[1].ContinueOnFailure)
	require.Equal(t, 2, len(batches[1].Steps))
	assert.Equal(t, "test", batches[1].Steps[0].Name)
	assert.Equal(t, "report", batches[1].Steps[1].Name)
}

func TestBatchesEmptyPlan(t *testing.T) {
	assert.Equal(t, 0, len(Batches(api.ResolvedPipeline{Name: "empty"})))
}
