package main

import (
	"net/http"

	"proteus/pkg/client"
	"proteus/pkg/util/context"

	"github.com/labstack/echo/v4"
)

func (h handlers) ListPipelines(c echo.Context) error {
	ctx := context.FromContext(c.Request().Context())
	pipelines, err := h.p.List(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, client.ListPipelinesResponse{
		Pipelines: pipelines,
	})
}
