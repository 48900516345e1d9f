package main

import (
	"net/http"

	"proteus/pkg/client"
	"proteus/pkg/store"
	"proteus/pkg/util/context"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

func (h handlers) Plan(c echo.Context) error {
	ctx := context.FromContext(c.Request().Context())

	pid := c.Param(client.ProcessIDParam)
	plan, err := h.p.Plan(ctx, pid)
	if err != nil {
		if errors.As(errors.Cause(err), &store.ErrNotFound{}) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, plan)
}
