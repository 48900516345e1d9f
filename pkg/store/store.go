package store

import (
	"context"
	"proteus/pkg/api"
)

// Store interface defines access to the pipeline store backend
type Store interface {
	// CreatePipeline stores a freshly resolved pipeline with its spec and plan.
	CreatePipeline(ctx context.Context, processID string, spec api.PipelineSpec, plan api.ResolvedPipeline) error

	// GetPipelineSpec returns the specification the pipeline was built from.
	GetPipelineSpec(ctx context.Context, processID string) (api.PipelineSpec, error)

	// GetPlan returns the resolved execution plan of the pipeline.
	GetPlan(ctx context.Context, processID string) (api.ResolvedPipeline, error)

	// GetPipelineStatus returns the pipeline's status.
	GetPipelineStatus(ctx context.Context, processID string) (api.Status, error)

	// SetPipelineStatus sets the given status to the pipeline.
	SetPipelineStatus(ctx context.Context, processID string, status api.Status) error

	// ListPipelines returns summary information for the stored pipelines.
	ListPipelines(ctx context.Context) ([]api.PipelineInfo, error)
}
