package client

import (
	"context"
	"strings"

	"proteus/pkg/api"

	"github.com/hashicorp/go-retryablehttp"
)

const (
	// ProcessIDParam is the param definition for ProcessID
	ProcessIDParam = "processID"
)

// Client is the API client that performs all operations to a proteus server
type Client interface {
	// Submit submits a new pipeline with the given spec.
	// It returns a process identifier along with the resolved plan.
	Submit(ctx context.Context, spec api.PipelineSpec) (SubmitResponse, error)

	// Plan returns the resolved plan of a pipeline.
	Plan(ctx context.Context, processID string) (api.ResolvedPipeline, error)

	// ListPipelines lists the submitted pipelines.
	ListPipelines(ctx context.Context) ([]api.PipelineInfo, error)

	// Dispatch publishes the plan of a pipeline to the configured broker.
	Dispatch(ctx context.Context, processID string) error
}

// NewClient creates a Proteus client
func NewClient(uri string) (Client, error) {
	httpcli := retryablehttp.NewClient()
	httpcli.Logger = nil
	u := strings.TrimRight(uri, "/")
	return client{
		httpcli: httpcli,
		uri:     u,
	}, nil
}

type client struct {
	httpcli *retryablehttp.Client
	uri     string
}
