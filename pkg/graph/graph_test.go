package graph

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func indexOf(t *testing.T, steps []*Step, s *Step) int {
	t.Helper()
	for i := range steps {
		if steps[i] == s {
			return i
		}
	}
	t.Fatalf("step %s not found in order", s.Name)
	return -1
}

func TestSortTopologicalValidity(t *testing.T) {
	build := NewStep("build")
	lint := NewStep("lint")
	test := NewStep("test").DependOn(build)
	pkg := NewStep("package").DependOn(build, test)
	publish := NewStep("publish").DependOn(pkg, lint)

	g := New()
	g.Add(build, lint, test, pkg, publish)
	order, err := g.Sort()
	require.NoError(t, err)
	require.Equal(t, 5, len(order))

	for _, s := range order {
		for _, d := range s.Dependencies() {
			assert.Less(t, indexOf(t, order, d), indexOf(t, order, s), "dependency %s must come before %s", d.Name, s.Name)
		}
	}
}

func TestSortStability(t *testing.T) {
	// Independent steps keep their insertion order.
	a := NewStep("a")
	b := NewStep("b")
	c := NewStep("c")

	g := New()
	g.Add(a, b, c)
	order, err := g.Sort()
	require.NoError(t, err)
	assert.Equal(t, []*Step{a, b, c}, order)

	// And repeated invocations return the same ordering.
	again, err := g.Sort()
	require.NoError(t, err)
	assert.Equal(t, order, again)
}

func TestSortCompleteness(t *testing.T) {
	a := NewStep("a")
	b := NewStep("b").DependOn(a)
	c := NewStep("c").DependOn(a, b)

	g := New()
	g.Add(a, b, c)
	order, err := g.Sort()
	require.NoError(t, err)
	require.Equal(t, 3, len(order))

	seen := make(map[*Step]int)
	for _, s := range order {
		seen[s]++
	}
	for _, s := range []*Step{a, b, c} {
		assert.Equal(t, 1, seen[s], "step %s must appear exactly once", s.Name)
	}
}

func TestSortAbsorbsUnknownDependencies(t *testing.T) {
	// A dependency on a step that was never registered is not an error:
	// the step is folded into the graph and sorted like any other.
	setup := NewStep("setup")
	upload := NewStep("upload")
	deploy := NewStep("deploy").DependOn(setup, upload)

	g := New()
	g.Add(deploy) // setup and upload are only reachable through deploy

	order, err := g.Sort()
	require.NoError(t, err)
	require.Equal(t, 3, len(order))
	assert.Contains(t, g.Steps(), setup)
	assert.Contains(t, g.Steps(), upload)
	assert.Less(t, indexOf(t, order, setup), indexOf(t, order, deploy))
	assert.Less(t, indexOf(t, order, upload), indexOf(t, order, deploy))
}

func TestSortAbsorbsTransitiveDependencies(t *testing.T) {
	base := NewStep("base")
	mid := NewStep("mid").DependOn(base)
	top := NewStep("top").DependOn(mid)

	g := New()
	g.Add(top)

	order, err := g.Sort()
	require.NoError(t, err)
	assert.Equal(t, []*Step{base, mid, top}, order)
}

func TestSortCycle(t *testing.T) {
	a := NewStep("a")
	b := NewStep("b")
	c := NewStep("c")
	a.DependOn(b)
	b.DependOn(c)
	c.DependOn(a)

	g := New()
	g.Add(a, b, c)
	order, err := g.Sort()
	require.Error(t, err)
	assert.Nil(t, order)

	var cErr ErrCyclicDependency
	require.True(t, errors.As(err, &cErr))
	assert.Contains(t, []*Step{a, b, c}, cErr.Step())
}

func TestSortSelfCycle(t *testing.T) {
	a := NewStep("a")
	a.DependOn(a)

	g := New()
	g.Add(a)
	_, err := g.Sort()
	require.Error(t, err)

	var cErr ErrCyclicDependency
	require.True(t, errors.As(err, &cErr))
	assert.Equal(t, a, cErr.Step())
}

func TestSortCycleBehindChain(t *testing.T) {
	// The reported step must be on the cycle itself, not merely downstream
	// of it.
	a := NewStep("a")
	b := NewStep("b").DependOn(a)
	c := NewStep("c").DependOn(b)
	a.DependOn(c)
	entry := NewStep("entry").DependOn(c)

	g := New()
	g.Add(entry, a, b, c)
	_, err := g.Sort()
	require.Error(t, err)

	var cErr ErrCyclicDependency
	require.True(t, errors.As(err, &cErr))
	assert.Contains(t, []*Step{a, b, c}, cErr.Step())
}

func TestSortEmptyGraph(t *testing.T) {
	g := New()
	order, err := g.Sort()
	require.NoError(t, err)
	assert.Equal(t, 0, len(order))
}

func TestAddTwiceIsNoop(t *testing.T) {
	a := NewStep("a")
	g := New()
	g.Add(a, a)
	g.Add(a)
	assert.Equal(t, 1, len(g.Steps()))
}
