package main

import (
	"net/http"

	"proteus/pkg/client"
	"proteus/pkg/graph"
	"proteus/pkg/util/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

func (h handlers) Submit(c echo.Context) error {
	ctx := context.FromContext(c.Request().Context())
	ctx = context.WithProcessID(ctx, uuid.New().String())
	ctx = context.WithCorrelationID(ctx, uuid.New().String())

	var req client.SubmitRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := req.PipelineSpec.Validate(); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	plan, err := h.p.Submit(ctx, req.PipelineSpec)
	if err != nil {
		var cyclic graph.ErrCyclicDependency
		if errors.As(errors.Cause(err), &cyclic) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, client.SubmitResponse{
		ProcessID: ctx.ProcessID(),
		Plan:      plan,
	})
}
