package graph

// Step is a single unit of work within a pipeline.
// A step is identified by its pointer: two steps are the same step only if
// they are the same *Step, whatever their name or payload.
type Step struct {
	// Name is used when rendering the step and when reporting errors.
	Name string

	// AlwaysRun marks a step to be executed even if a step before it failed.
	AlwaysRun bool

	// Payload is opaque caller data carried along with the step.
	Payload interface{}

	deps []*Step
}

// NewStep returns a new step with the given name and no dependencies.
func NewStep(name string) *Step {
	return &Step{Name: name}
}

// DependOn declares steps that must have completed before this step starts.
// It returns the step itself so declarations can be chained.
func (s *Step) DependOn(deps ...*Step) *Step {
	s.deps = append(s.deps, deps...)
	return s
}

// Dependencies returns the declared dependencies of the step.
func (s *Step) Dependencies() []*Step {
	return s.deps
}

// Graph holds the steps of a pipeline in insertion order.
// A Graph must not be used from multiple goroutines at the same time; distinct
// Graphs need no coordination.
type Graph struct {
	steps []*Step
	index map[*Step]int
}

// New returns an empty graph.
func New() *Graph {
	return &Graph{
		index: make(map[*Step]int),
	}
}

// Add registers the given steps. Insertion order is the tie-break order used
// by Sort. Adding a step twice is a no-op.
func (g *Graph) Add(steps ...*Step) {
	for _, s := range steps {
		g.add(s)
	}
}

func (g *Graph) add(s *Step) {
	if _, exists := g.index[s]; exists {
		return
	}
	g.index[s] = len(g.steps)
	g.steps = append(g.steps, s)
}

// Steps returns the registered steps in insertion order. After a call to
// Sort, this includes the steps discovered as dependency targets.
func (g *Graph) Steps() []*Step {
	return g.steps
}

// Sort returns a topological ordering of the graph: every step comes after
// all of its dependencies, and steps without ordering constraints between
// them keep their insertion order, so repeated calls yield the same result.
//
// A dependency on a step that was never registered is not an error: the step
// is absorbed into the graph (side effect visible through Steps) and sorted
// like any other. If the dependencies contain a cycle, Sort returns an
// ErrCyclicDependency and no ordering.
func (g *Graph) Sort() ([]*Step, error) {
	g.grow()

	n := len(g.steps)
	indegree := make([]int, n)
	dependents := make([][]int, n)
	for i, s := range g.steps {
		for _, d := range s.deps {
			di := g.index[d]
			dependents[di] = append(dependents[di], i)
			indegree[i]++
		}
	}

	order := make([]*Step, 0, n)
	done := make([]bool, n)
	for len(order) < n {
		// Pick the lowest-index ready step so that independent steps
		// keep their insertion order.
		next := -1
		for i := 0; i < n; i++ {
			if !done[i] && indegree[i] == 0 {
				next = i
				break
			}
		}
		if next == -1 {
			return nil, CyclicDependencyError(g.cycleStep(done))
		}
		done[next] = true
		order = append(order, g.steps[next])
		for _, dependent := range dependents[next] {
			indegree[dependent]--
		}
	}
	return order, nil
}

// grow closes the step set before sorting: every step referenced only as a
// dependency target is appended to the graph, and the newly appended steps
// are scanned for dependencies of their own. Growing first keeps the sort
// itself free of mutation.
func (g *Graph) grow() {
	for i := 0; i < len(g.steps); i++ {
		for _, d := range g.steps[i].deps {
			g.add(d)
		}
	}
}

// cycleStep returns a step that lies on a dependency cycle. Every unfinished
// step has at least one unfinished dependency (otherwise the sort would have
// emitted it), so walking unfinished dependencies must revisit a step, and
// the revisited step is on a cycle.
func (g *Graph) cycleStep(done []bool) *Step {
	cur := -1
	for i := range g.steps {
		if !done[i] {
			cur = i
			break
		}
	}
	if cur == -1 {
		return nil
	}
	visited := make(map[int]bool)
	for !visited[cur] {
		visited[cur] = true
		for _, d := range g.steps[cur].deps {
			if di := g.index[d]; !done[di] {
				cur = di
				break
			}
		}
	}
	return g.steps[cur]
}
