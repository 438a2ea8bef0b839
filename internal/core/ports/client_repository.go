package ports

import (
	"context"

	"github.com/clientpulse/dashboard/internal/core/domain"
)

// ClientRepository is the read-only source of client records.
type ClientRepository interface {
	// List returns every client, ordered by id.
	List(ctx context.Context) ([]domain.Client, error)
	// FindByID returns domain.ErrClientNotFound when id is unknown.
	FindByID(ctx context.Context, id string) (*domain.Client, error)
}

// KPICache stores computed KPI summaries shared across instances.
type KPICache interface {
	// Get reports ok=false on a miss.
	Get(ctx context.Context, key string) (*domain.KPISummary, bool, error)
	Set(ctx context.Context, key string, summary *domain.KPISummary) error
}
