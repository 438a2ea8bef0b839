package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/clientpulse/dashboard/internal/core/domain"
	"github.com/clientpulse/dashboard/internal/core/ports"
)

const defaultFeedLimit = 50

// FeedHandler exposes the live-ops activity feed.
type FeedHandler struct {
	feed ports.FeedService
}

// NewFeedHandler creates a FeedHandler reading from the given feed.
func NewFeedHandler(feed ports.FeedService) *FeedHandler {
	return &FeedHandler{feed: feed}
}

// Recent handles GET /v1/feed, returning the newest events first.
//
// @Summary      Recent live-ops activity
// @Tags         feed
// @Produce      json
// @Param        limit  query     int  false  "Maximum events (default 50, max 200)"
// @Success      200    {object}  feedResponse
// @Failure      400    {object}  errorResponse
// @Router       /v1/feed [get]
func (h *FeedHandler) Recent(c echo.Context) error {
	var q feedQuery
	if err := bindRequest(c, &q); err != nil {
		return err
	}
	limit := q.Limit
	if limit == 0 {
		limit = defaultFeedLimit
	}

	events := h.feed.Recent(limit)
	data := make([]feedEventResponse, len(events))
	for i, ev := range events {
		data[i] = toFeedEventResponse(ev)
	}
	return c.JSON(http.StatusOK, feedResponse{Data: data, Count: len(data)})
}

func toFeedEventResponse(ev domain.FeedEvent) feedEventResponse {
	return feedEventResponse{
		ID:         ev.ID,
		Type:       string(ev.Type),
		ClientID:   ev.ClientID,
		ClientName: ev.ClientName,
		Message:    ev.Message,
		Amount:     ev.Amount,
		OccurredAt: ev.OccurredAt.UTC(),
		ClientLink: "/v1/clients/" + ev.ClientID,
	}
}
