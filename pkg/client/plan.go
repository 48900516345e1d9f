package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"proteus/pkg/api"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/pkg/errors"
)

const (
	// PlanMethod is http method used for endpoint Plan
	PlanMethod     = http.MethodGet
	planPathFormat = "/pipelines/%s/plan"
)

var (
	// PlanPath is the path definition of the endpoint Plan.
	PlanPath = fmt.Sprintf(planPathFormat, fmt.Sprintf(":%s", ProcessIDParam))
)

func (cli client) Plan(ctx context.Context, pid string) (api.ResolvedPipeline, error) {
	req, err := retryablehttp.NewRequest(PlanMethod, fmt.Sprintf(cli.uri+planPathFormat, pid), nil)
	if err != nil {
		return api.ResolvedPipeline{}, errors.Wrap(err, "cannot create request")
	}
	resp, err := cli.httpcli.Do(req.WithContext(ctx))
	if err != nil {
		return api.ResolvedPipeline{}, errors.Wrap(err, "cannot do request")
	}
	defer resp.Body.Close()

	if resp.StatusCode == 404 {
		return api.ResolvedPipeline{}, ErrNotFound{fmt.Sprintf("process %s", pid)}
	}

	var res api.ResolvedPipeline
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return api.ResolvedPipeline{}, errors.Wrap(err, "cannot decode response")
	}
	return res, nil
}
