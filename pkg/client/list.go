package client

import (
	"context"
	"encoding/json"
	"net/http"

	"proteus/pkg/api"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/pkg/errors"
)

const (
	// ListPipelinesMethod is http method used for endpoint ListPipelines
	ListPipelinesMethod = http.MethodGet
	// ListPipelinesPath is the path definition of the endpoint ListPipelines.
	ListPipelinesPath = "/pipelines"
)

// ListPipelinesResponse is the response structure for the ListPipelines endpoint
type ListPipelinesResponse struct {
	Pipelines []api.PipelineInfo `json:"pipelines"`
}

func (cli client) ListPipelines(ctx context.Context) ([]api.PipelineInfo, error) {
	req, err := retryablehttp.NewRequest(ListPipelinesMethod, cli.uri+ListPipelinesPath, nil)
	if err != nil {
		return nil, errors.Wrap(err, "cannot create request")
	}
	resp, err := cli.httpcli.Do(req.WithContext(ctx))
	if err != nil {
		return nil, errors.Wrap(err, "cannot do request")
	}
	defer resp.Body.Close()

	var res ListPipelinesResponse
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return nil, errors.Wrap(err, "cannot decode response")
	}
	return res.Pipelines, nil
}
