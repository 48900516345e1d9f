package graph

// Element is one entry of a resolved sequence: either a *Step or a *Barrier.
type Element interface {
	element()
}

func (s *Step) element() {}

// Barrier is a synchronization point. An engine executing the sequence left
// to right must wait for every step before the barrier to finish before
// starting any step after it.
type Barrier struct {
	// ContinueOnFailure lets the steps after the barrier run even if a
	// step before it failed.
	ContinueOnFailure bool
}

func (b *Barrier) element() {}

// InsertBarriers interleaves barriers into a topologically sorted sequence so
// that an engine treating the sequence as ordered batches (steps between two
// barriers may run concurrently) never starts a step before its dependencies
// completed. A barrier is inserted only when a dependency of the current step
// is not yet separated from it by one, so a sequence without any dependency
// edges comes back untouched.
//
// Barrier flags are then adjusted for AlwaysRun steps: a barrier guarding an
// AlwaysRun step is switched to ContinueOnFailure so that an upstream failure
// does not block it, and a plain barrier is re-inserted in front of the next
// step that must still be gated on upstream success. Each step is reconciled
// with the most recent barrier, one at a time, left to right.
func InsertBarriers(sorted []*Step) []Element {
	return refineBarriers(insertBarriers(sorted))
}

func insertBarriers(sorted []*Step) []Element {
	elements := make([]Element, 0, len(sorted))
	placed := make(map[*Step]int, len(sorted))
	lastBarrier := -1
	for _, s := range sorted {
		for _, d := range s.deps {
			at, ok := placed[d]
			if !ok {
				continue
			}
			if at > lastBarrier {
				// No barrier between the dependency and this step:
				// insert one. A single barrier covers the remaining
				// dependencies as well.
				lastBarrier = len(elements)
				elements = append(elements, &Barrier{})
				break
			}
		}
		placed[s] = len(elements)
		elements = append(elements, s)
	}
	return elements
}

// refineBarriers walks the barrier-interleaved sequence and reconciles each
// step with the most recent barrier:
//
//	barrier.ContinueOnFailure  step.AlwaysRun  action
//	false                      true            set ContinueOnFailure
//	false                      false           none
//	true                       true            none
//	true                       false           insert plain barrier before step
func refineBarriers(elements []Element) []Element {
	refined := make([]Element, 0, len(elements))
	var current *Barrier
	for _, el := range elements {
		switch v := el.(type) {
		case *Barrier:
			current = v
		case *Step:
			if current != nil {
				if v.AlwaysRun && !current.ContinueOnFailure {
					current.ContinueOnFailure = true
				} else if !v.AlwaysRun && current.ContinueOnFailure {
					current = &Barrier{}
					refined = append(refined, current)
				}
			}
		}
		refined = append(refined, el)
	}
	return refined
}
