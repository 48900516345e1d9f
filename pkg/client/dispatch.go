package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/pkg/errors"
)

const (
	// DispatchMethod is http method used for endpoint Dispatch
	DispatchMethod     = http.MethodPost
	dispatchPathFormat = "/pipelines/%s/dispatch"
)

var (
	// DispatchPath is the path definition of the endpoint Dispatch.
	DispatchPath = fmt.Sprintf(dispatchPathFormat, fmt.Sprintf(":%s", ProcessIDParam))
)

func (cli client) Dispatch(ctx context.Context, pid string) error {
	req, err := retryablehttp.NewRequest(DispatchMethod, fmt.Sprintf(cli.uri+dispatchPathFormat, pid), nil)
	if err != nil {
		return errors.Wrap(err, "cannot create request")
	}
	resp, err := cli.httpcli.Do(req.WithContext(ctx))
	if err != nil {
		return errors.Wrap(err, "cannot do request")
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == 404:
		return ErrNotFound{fmt.Sprintf("process %s", pid)}
	case resp.StatusCode >= 400:
		var httpErr HTTPError
		if err := json.NewDecoder(resp.Body).Decode(&httpErr); err != nil {
			return errors.Errorf("dispatch failed with status %d", resp.StatusCode)
		}
		return errors.Wrapf(httpErr, "cannot dispatch process %s", pid)
	}
	return nil
}
