package api

// PipelineSpec is the specification of a Pipeline.
type PipelineSpec struct {
	Name  string     `json:"name" yaml:"name"` // Pipeline name.
	Steps []StepSpec `json:"steps" yaml:"steps"`
}

// StepSpec is the specification of a Step.
type StepSpec struct {
	Name    string            `json:"name" yaml:"name"`
	Command string            `json:"command,omitempty" yaml:"command,omitempty"`
	Env     map[string]string `json:"env,omitempty" yaml:"env,omitempty"`

	// DependsOn lists the names of steps that must have completed before
	// this one starts. A name without a matching step declaration is
	// absorbed by the resolver as an implicit step.
	DependsOn []string `json:"depends_on,omitempty" yaml:"depends_on,omitempty"`

	// AlwaysRun marks the step to be executed even if a step before it
	// failed.
	AlwaysRun bool `json:"always_run,omitempty" yaml:"always_run,omitempty"`
}
