package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// bindRequest binds path and query parameters into req and validates the
// result. Both failures surface as 400 before any service call.
func bindRequest(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query parameters")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}
