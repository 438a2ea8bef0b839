// Package memory serves clients from an in-process slice.
package memory

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"github.com/clientpulse/dashboard/internal/core/domain"
)

type ClientRepository struct {
	mu      sync.RWMutex
	clients []domain.Client
	byID    map[string]int
}

// NewClientRepository copies clients and orders them by id.
func NewClientRepository(clients []domain.Client) *ClientRepository {
	r := &ClientRepository{}
	r.Replace(clients)
	return r
}

// Replace swaps the whole dataset atomically.
func (r *ClientRepository) Replace(clients []domain.Client) {
	sorted := slices.Clone(clients)
	slices.SortFunc(sorted, func(a, b domain.Client) int { return cmp.Compare(a.ID, b.ID) })

	byID := make(map[string]int, len(sorted))
	for i, c := range sorted {
		byID[c.ID] = i
	}

	r.mu.Lock()
	r.clients = sorted
	r.byID = byID
	r.mu.Unlock()
}

// List returns a copy of every client.
func (r *ClientRepository) List(ctx context.Context) ([]domain.Client, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.clients), nil
}

// FindByID returns domain.ErrClientNotFound for unknown ids.
func (r *ClientRepository) FindByID(ctx context.Context, id string) (*domain.Client, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrClientNotFound
	}
	c := r.clients[i]
	return &c, nil
}

// Ping always succeeds; it satisfies the readiness probe.
func (r *ClientRepository) Ping(context.Context) error { return nil }
