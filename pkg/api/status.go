package api

// Status is the lifecycle status of a stored pipeline.
type Status string

const (
	// StatusCreated default status, the pipeline is resolved and stored
	StatusCreated Status = "CREATED"

	// StatusDispatched status for pipelines whose plan has been published
	// to the broker for execution
	StatusDispatched Status = "DISPATCHED"
)
