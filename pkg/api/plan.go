package api

// ElementKind discriminates the entries of a resolved plan.
type ElementKind string

const (
	// KindStep is a plain step entry.
	KindStep ElementKind = "step"

	// KindWait is a synchronization barrier: every step before it must
	// have finished before any step after it starts.
	KindWait ElementKind = "wait"
)

// Element is one entry of a resolved plan, either a step or a wait barrier.
type Element struct {
	Kind ElementKind `json:"kind" yaml:"kind"`

	// Step is set when Kind is KindStep.
	Step *StepSpec `json:"step,omitempty" yaml:"step,omitempty"`

	// ContinueOnFailure is meaningful when Kind is KindWait: the steps
	// after the barrier run even if a step before it failed.
	ContinueOnFailure bool `json:"continue_on_failure,omitempty" yaml:"continue_on_failure,omitempty"`
}

// ResolvedPipeline is the linear execution plan built from a PipelineSpec:
// a sequence of steps and wait barriers that an engine executing ordered
// batches can run left to right.
type ResolvedPipeline struct {
	Name     string    `json:"name" yaml:"name"`
	Elements []Element `json:"elements" yaml:"elements"`
}

// Batch is a run of steps between two barriers. The steps of a batch have no
// ordering constraints between them and may execute concurrently.
type Batch struct {
	// Seq is the 1-based position of the batch in the plan.
	Seq int `json:"seq" yaml:"seq"`

	// ContinueOnFailure is inherited from the barrier opening the batch.
	// The first batch of a plan is never gated.
	ContinueOnFailure bool `json:"continue_on_failure" yaml:"continue_on_failure"`

	Steps []StepSpec `json:"steps" yaml:"steps"`
}

// PipelineInfo is summary information of a stored pipeline.
type PipelineInfo struct {
	ProcessID string `json:"processID" yaml:"processID"`
	Name      string `json:"name" yaml:"name"`
	Status    Status `json:"status" yaml:"status"`
}
