package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/clientpulse/dashboard/internal/core/ports"
)

// ClientHandler handles HTTP requests for client records.
type ClientHandler struct {
	service ports.ClientService
}

func NewClientHandler(service ports.ClientService) *ClientHandler {
	return &ClientHandler{service: service}
}

// List handles GET /v1/clients.
//
// @Summary      List clients with filters, sorting and pagination
// @Tags         clients
// @Produce      json
// @Param        search    query     string  false  "Case-insensitive match on name, industry, id or contact email"
// @Param        industry  query     string  false  "Industry, repeatable or comma-separated"
// @Param        status    query     string  false  "Paid, Trial or FreeTier, repeatable or comma-separated"
// @Param        health    query     string  false  "Good, Warning or Critical, repeatable or comma-separated"
// @Param        from      query     string  false  "Join date lower bound (YYYY-MM-DD or RFC 3339)"
// @Param        to        query     string  false  "Join date upper bound (YYYY-MM-DD or RFC 3339)"
// @Param        sort      query     string  false  "Sort key, e.g. healthScore"
// @Param        order     query     string  false  "asc or desc"
// @Param        page      query     int     false  "Page number (default 1)"
// @Param        limit     query     int     false  "Items per page (default 20, max 100)"
// @Success      200       {object}  listClientsResponse
// @Failure      400       {object}  errorResponse
// @Failure      422       {object}  errorResponse
// @Failure      500       {object}  errorResponse
// @Router       /v1/clients [get]
func (h *ClientHandler) List(c echo.Context) error {
	var q listClientsQuery
	if err := bindRequest(c, &q); err != nil {
		return err
	}
	input, err := toListInput(q)
	if err != nil {
		return err
	}

	result, err := h.service.ListClients(c.Request().Context(), input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toListResponse(result))
}

// Get handles GET /v1/clients/:id.
//
// @Summary      Get a client with its live health report
// @Tags         clients
// @Produce      json
// @Param        id   path      string  true  "Client ID (e.g. cl-001)"
// @Success      200  {object}  clientDetailResponse
// @Failure      404  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /v1/clients/{id} [get]
func (h *ClientHandler) Get(c echo.Context) error {
	var p clientIDParam
	if err := bindRequest(c, &p); err != nil {
		return err
	}

	detail, err := h.service.GetClient(c.Request().Context(), p.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toDetailResponse(detail))
}

// Health handles GET /v1/clients/:id/health.
//
// @Summary      Get the health breakdown and recommendations for a client
// @Tags         clients
// @Produce      json
// @Param        id   path      string  true  "Client ID (e.g. cl-001)"
// @Success      200  {object}  healthReportResponse
// @Failure      404  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /v1/clients/{id}/health [get]
func (h *ClientHandler) Health(c echo.Context) error {
	var p clientIDParam
	if err := bindRequest(c, &p); err != nil {
		return err
	}

	detail, err := h.service.GetClient(c.Request().Context(), p.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toHealthResponse(detail.Health))
}
