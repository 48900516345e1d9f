package main

import (
	"net/http"

	"proteus/pkg/client"
	"proteus/pkg/store"
	"proteus/pkg/util/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

func (h handlers) Dispatch(c echo.Context) error {
	ctx := context.FromContext(c.Request().Context())
	ctx = context.WithCorrelationID(ctx, uuid.New().String())

	pid := c.Param(client.ProcessIDParam)
	ctx = context.WithProcessID(ctx, pid)

	if err := h.p.Dispatch(ctx, pid); err != nil {
		if errors.As(errors.Cause(err), &store.ErrNotFound{}) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.NoContent(http.StatusAccepted)
}
