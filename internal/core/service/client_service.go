package service

import (
	"context"
	"fmt"
	"hash/fnv"
	"slices"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/clientpulse/dashboard/internal/core/domain"
	"github.com/clientpulse/dashboard/internal/core/engine"
	"github.com/clientpulse/dashboard/internal/core/ports"
	"github.com/clientpulse/dashboard/internal/pkg/metrics"
)

const (
	defaultLimit = 20
	maxLimit     = 100
)

type ClientService struct {
	repo   ports.ClientRepository
	engine *engine.Engine
	kpis   ports.KPICache // optional
	logger zerolog.Logger

	mu      sync.Mutex
	version uint64
}

// NewClientService wires the read-only dashboard use cases. kpis may be nil
// when no shared cache is configured.
func NewClientService(repo ports.ClientRepository, eng *engine.Engine, kpis ports.KPICache, logger zerolog.Logger) *ClientService {
	return &ClientService{repo: repo, engine: eng, kpis: kpis, logger: logger}
}

// load fetches the dataset and purges memoized filter results when it has
// changed since the previous call.
func (s *ClientService) load(ctx context.Context) ([]domain.Client, uint64, error) {
	clients, err := s.repo.List(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("load clients: %w", err)
	}

	v := datasetVersion(clients)
	s.mu.Lock()
	if v != s.version {
		if s.version != 0 {
			s.logger.Info().Int("clients", len(clients)).Msg("client dataset changed, purging filter cache")
		}
		s.engine.Purge()
		s.version = v
	}
	s.mu.Unlock()

	return clients, v, nil
}

// ListClients filters, sorts and paginates the client list.
func (s *ClientService) ListClients(ctx context.Context, input ports.ListClientsInput) (*ports.ListClientsResult, error) {
	if err := input.Filters.DateRange.Validate(); err != nil {
		return nil, err
	}
	defer prometheus.NewTimer(metrics.QueryDuration.WithLabelValues("list")).ObserveDuration()

	limit := input.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	page := input.Page
	if page <= 0 {
		page = 1
	}

	clients, _, err := s.load(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list clients")
		return nil, err
	}

	rows := s.engine.Sort(s.engine.Filter(clients, input.Filters), input.Sort)
	total := len(rows)

	start := min((page-1)*limit, total)
	end := min(start+limit, total)

	scorer := s.engine.Scorer()
	items := make([]ports.ClientSummary, 0, end-start)
	for _, c := range rows[start:end] {
		score := scorer.Value(c)
		items = append(items, ports.ClientSummary{
			Client:         c,
			HealthScore:    score,
			HealthCategory: engine.Classify(score),
		})
	}

	return &ports.ListClientsResult{
		Items:      items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: (total + limit - 1) / limit,
	}, nil
}

// GetClient returns a client with its live health report. A stored score in
// a different category than the live one is flagged, never rewritten.
func (s *ClientService) GetClient(ctx context.Context, id string) (*ports.ClientDetail, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get client: %w", err)
	}

	report := s.engine.Scorer().Score(*c)
	stale := engine.Classify(c.HealthScore) != report.Category
	if stale {
		metrics.StaleHealthScoresTotal.Inc()
		s.logger.Warn().
			Str("client_id", c.ID).
			Int("stored", c.HealthScore).
			Int("live", report.Score).
			Msg("stored health score is stale")
	}

	return &ports.ClientDetail{
		Client:           *c,
		Health:           report,
		StaleHealthScore: stale,
	}, nil
}

// GetKPIs aggregates the filtered clients, consulting the shared cache first.
// Cache failures are logged and never fail the request.
func (s *ClientService) GetKPIs(ctx context.Context, filters domain.FilterState) (*domain.KPISummary, error) {
	if err := filters.DateRange.Validate(); err != nil {
		return nil, err
	}
	defer prometheus.NewTimer(metrics.QueryDuration.WithLabelValues("kpis")).ObserveDuration()

	clients, version, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("%016x|%s", version, engine.CacheKey(len(clients), filters))
	if s.kpis != nil {
		cached, ok, err := s.kpis.Get(ctx, key)
		switch {
		case err != nil:
			metrics.KPICacheTotal.WithLabelValues("error").Inc()
			s.logger.Warn().Err(err).Msg("kpi cache lookup failed, computing")
		case ok:
			metrics.KPICacheTotal.WithLabelValues("hit").Inc()
			return cached, nil
		default:
			metrics.KPICacheTotal.WithLabelValues("miss").Inc()
		}
	}

	sum := s.engine.Aggregate(clients, filters)

	if s.kpis != nil {
		if err := s.kpis.Set(ctx, key, &sum); err != nil {
			s.logger.Warn().Err(err).Msg("failed to store kpi summary")
		}
	}
	return &sum, nil
}

// GetBreakdown groups the filtered clients by dim.
func (s *ClientService) GetBreakdown(ctx context.Context, dim domain.BreakdownDimension, filters domain.FilterState) ([]domain.BreakdownItem, error) {
	if err := filters.DateRange.Validate(); err != nil {
		return nil, err
	}
	defer prometheus.NewTimer(metrics.QueryDuration.WithLabelValues("breakdown")).ObserveDuration()

	clients, _, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return s.engine.Breakdown(s.engine.Filter(clients, filters), dim), nil
}

// FilterMetadata lists the values present in the dataset for the filter
// controls.
func (s *ClientService) FilterMetadata(ctx context.Context) (*ports.FilterMetadata, error) {
	clients, _, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	meta := &ports.FilterMetadata{
		Industries:       []string{},
		Statuses:         domain.Statuses,
		HealthCategories: domain.HealthCategories,
		SortKeys:         domain.SortKeys,
		TotalClients:     len(clients),
	}

	seen := make(map[string]struct{})
	for _, c := range clients {
		if _, ok := seen[c.Industry]; !ok && c.Industry != "" {
			seen[c.Industry] = struct{}{}
			meta.Industries = append(meta.Industries, c.Industry)
		}
		if meta.EarliestJoin == nil || c.JoinDate.Before(*meta.EarliestJoin) {
			meta.EarliestJoin = ptr(c.JoinDate)
		}
		if meta.LatestJoin == nil || c.JoinDate.After(*meta.LatestJoin) {
			meta.LatestJoin = ptr(c.JoinDate)
		}
	}
	slices.Sort(meta.Industries)
	return meta, nil
}

func ptr(t time.Time) *time.Time { return &t }

// datasetVersion fingerprints every field of every client record.
func datasetVersion(clients []domain.Client) uint64 {
	h := fnv.New64a()
	enc := json.NewEncoder(h)
	for i := range clients {
		if err := enc.Encode(&clients[i]); err != nil {
			// NaN and Inf floats do not encode.
			_, _ = fmt.Fprintf(h, "%+v\n", clients[i])
		}
	}
	return h.Sum64()
}
