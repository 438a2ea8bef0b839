package ports

import (
	"context"
	"time"

	"github.com/clientpulse/dashboard/internal/core/domain"
)

// ListClientsInput carries all query parameters for the client list.
type ListClientsInput struct {
	Filters domain.FilterState
	Sort    domain.SortConfig
	Page    int // 1-based
	Limit   int // max rows per page (capped at 100 by service)
}

// ClientSummary is a list row: the client plus its live health.
type ClientSummary struct {
	Client         domain.Client
	HealthScore    int
	HealthCategory domain.HealthCategory
}

// ListClientsResult is returned by ListClients.
type ListClientsResult struct {
	Items      []ClientSummary
	Total      int
	Page       int
	Limit      int
	TotalPages int
}

// ClientDetail is the full client view returned by GetClient.
type ClientDetail struct {
	Client domain.Client
	Health domain.HealthReport
	// StaleHealthScore is true when the stored score falls in a different
	// category than the live one.
	StaleHealthScore bool
}

// FilterMetadata describes the values the filter controls can offer.
type FilterMetadata struct {
	Industries       []string
	Statuses         []domain.SubscriptionStatus
	HealthCategories []domain.HealthCategory
	SortKeys         []domain.SortKey
	EarliestJoin     *time.Time
	LatestJoin       *time.Time
	TotalClients     int
}

// ClientService defines the read-only dashboard use cases.
type ClientService interface {
	ListClients(ctx context.Context, input ListClientsInput) (*ListClientsResult, error)
	GetClient(ctx context.Context, id string) (*ClientDetail, error)
	GetKPIs(ctx context.Context, filters domain.FilterState) (*domain.KPISummary, error)
	GetBreakdown(ctx context.Context, dim domain.BreakdownDimension, filters domain.FilterState) ([]domain.BreakdownItem, error)
	FilterMetadata(ctx context.Context) (*FilterMetadata, error)
}
