package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/clientpulse/dashboard/internal/core/domain"
	"github.com/clientpulse/dashboard/internal/core/ports"
)

// AnalyticsHandler serves the aggregate views of the dashboard: KPI cards,
// chart breakdowns and the metadata that drives the filter controls.
type AnalyticsHandler struct {
	service ports.ClientService
}

func NewAnalyticsHandler(service ports.ClientService) *AnalyticsHandler {
	return &AnalyticsHandler{service: service}
}

// KPIs handles GET /v1/kpis.
//
// @Summary      Aggregate KPIs over the filtered client set
// @Description  Revenue and monthly jobs are scaled by the date-range multiplier when both bounds are set.
// @Tags         analytics
// @Produce      json
// @Param        search    query     string  false  "Free-text search"
// @Param        industry  query     string  false  "Industry filter"
// @Param        status    query     string  false  "Status filter"
// @Param        health    query     string  false  "Health category filter"
// @Param        from      query     string  false  "Join date lower bound"
// @Param        to        query     string  false  "Join date upper bound"
// @Success      200       {object}  kpiResponse
// @Failure      400       {object}  errorResponse
// @Failure      422       {object}  errorResponse
// @Router       /v1/kpis [get]
func (h *AnalyticsHandler) KPIs(c echo.Context) error {
	var q filterQuery
	if err := bindRequest(c, &q); err != nil {
		return err
	}
	fs, err := toFilterState(q)
	if err != nil {
		return err
	}

	summary, err := h.service.GetKPIs(c.Request().Context(), fs)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toKPIResponse(summary))
}

// Breakdown handles GET /v1/breakdown/:dimension.
//
// @Summary      Count filtered clients by industry, status or health category
// @Tags         analytics
// @Produce      json
// @Param        dimension  path      string  true   "industry, status or health"
// @Param        search     query     string  false  "Free-text search"
// @Param        industry   query     string  false  "Industry filter"
// @Param        status     query     string  false  "Status filter"
// @Param        health     query     string  false  "Health category filter"
// @Param        from       query     string  false  "Join date lower bound"
// @Param        to         query     string  false  "Join date upper bound"
// @Success      200        {object}  breakdownResponse
// @Failure      400        {object}  errorResponse
// @Failure      422        {object}  errorResponse
// @Router       /v1/breakdown/{dimension} [get]
func (h *AnalyticsHandler) Breakdown(c echo.Context) error {
	var q breakdownQuery
	if err := bindRequest(c, &q); err != nil {
		return err
	}
	dim, err := domain.ParseBreakdownDimension(q.Dimension)
	if err != nil {
		return err
	}
	fs, err := toFilterState(q.Filter)
	if err != nil {
		return err
	}

	items, err := h.service.GetBreakdown(c.Request().Context(), dim, fs)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toBreakdownResponse(dim, items))
}

// FilterMetadata handles GET /v1/filters/metadata.
//
// @Summary      Values available to the filter and sort controls
// @Tags         analytics
// @Produce      json
// @Success      200  {object}  filterMetadataResponse
// @Failure      500  {object}  errorResponse
// @Router       /v1/filters/metadata [get]
func (h *AnalyticsHandler) FilterMetadata(c echo.Context) error {
	meta, err := h.service.FilterMetadata(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toMetadataResponse(meta))
}
