package ports

import (
	"context"

	"github.com/clientpulse/dashboard/internal/core/domain"
)

// FeedService keeps the most recent live-ops events.
type FeedService interface {
	Record(ctx context.Context, event domain.FeedEvent) error
	// Recent returns up to limit events, newest first.
	Recent(limit int) []domain.FeedEvent
}
