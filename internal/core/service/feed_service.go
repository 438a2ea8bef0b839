package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/clientpulse/dashboard/internal/core/domain"
	"github.com/clientpulse/dashboard/internal/core/ports"
	"github.com/clientpulse/dashboard/internal/pkg/metrics"
)

// DefaultFeedCapacity is the number of events kept when no capacity is given.
const DefaultFeedCapacity = 200

type feedService struct {
	mu     sync.RWMutex
	events []domain.FeedEvent // ring buffer
	next   int
	size   int
	log    zerolog.Logger
}

// NewFeedService returns a FeedService keeping the last capacity events.
// If capacity <= 0, DefaultFeedCapacity is used.
func NewFeedService(capacity int, log zerolog.Logger) ports.FeedService {
	if capacity <= 0 {
		capacity = DefaultFeedCapacity
	}
	return &feedService{
		events: make([]domain.FeedEvent, capacity),
		log:    log,
	}
}

// Record appends an event, overwriting the oldest once the buffer is full.
func (s *feedService) Record(ctx context.Context, event domain.FeedEvent) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("record feed event: %w", err)
	}
	if event.ID == "" || event.ClientID == "" {
		return fmt.Errorf("record feed event: %w", domain.ErrInvalidFeedEvent)
	}

	s.mu.Lock()
	s.events[s.next] = event
	s.next = (s.next + 1) % len(s.events)
	if s.size < len(s.events) {
		s.size++
	}
	s.mu.Unlock()

	metrics.FeedEventsTotal.WithLabelValues(string(event.Type)).Inc()
	s.log.Debug().
		Str("event_id", event.ID).
		Str("type", string(event.Type)).
		Str("client_id", event.ClientID).
		Msg("feed event recorded")
	return nil
}

// Recent returns up to limit events, newest first. A non-positive limit
// returns everything buffered.
func (s *feedService) Recent(limit int) []domain.FeedEvent {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 || limit > s.size {
		limit = s.size
	}
	out := make([]domain.FeedEvent, 0, limit)
	for i := 1; i <= limit; i++ {
		idx := (s.next - i + len(s.events)) % len(s.events)
		out = append(out, s.events[idx])
	}
	return out
}
