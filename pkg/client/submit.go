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
	// SubmitMethod is http method used for endpoint Submit
	SubmitMethod = http.MethodPost
	// SubmitPath is the path definition of the endpoint Submit.
	SubmitPath = "/pipelines"
)

// SubmitRequest is the request structure for the Submit endpoint
type SubmitRequest struct {
	api.PipelineSpec
}

// SubmitResponse is the response structure for the Submit endpoint
type SubmitResponse struct {
	ProcessID string               `json:"processID"`
	Plan      api.ResolvedPipeline `json:"plan"`
}

func (cli client) Submit(ctx context.Context, spec api.PipelineSpec) (SubmitResponse, error) {
	body, err := json.Marshal(SubmitRequest{
		PipelineSpec: spec,
	})
	if err != nil {
		return SubmitResponse{}, errors.Wrap(err, "cannot marshal request")
	}

	req, err := retryablehttp.NewRequest(SubmitMethod, cli.uri+SubmitPath, body)
	if err != nil {
		return SubmitResponse{}, errors.Wrap(err, "cannot create request")
	}
	req.Header.Set("content-type", "application/json")

	resp, err := cli.httpcli.Do(req.WithContext(ctx))
	if err != nil {
		return SubmitResponse{}, errors.Wrap(err, "cannot do request")
	}
	defer resp.Body.Close()
	dec := json.NewDecoder(resp.Body)

	if resp.StatusCode == 400 {
		var httpErr HTTPError
		if err := dec.Decode(&httpErr); err != nil {
			//Cannot decode error
			return SubmitResponse{}, ErrBadRequest{errors.New("bad request")}
		}
		return SubmitResponse{}, ErrBadRequest{errors.Wrap(httpErr, "pipeline is not valid")}
	}
	var res SubmitResponse
	if err := dec.Decode(&res); err != nil {
		return SubmitResponse{}, errors.Wrap(err, "cannot decode response")
	}
	return res, nil
}
