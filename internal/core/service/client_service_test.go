package service

import (
	"context"
	"errors"
	"slices"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/clientpulse/dashboard/internal/core/domain"
	"github.com/clientpulse/dashboard/internal/core/engine"
	"github.com/clientpulse/dashboard/internal/core/ports"
)

// ---------------------------------------------------------------------------
// Stubs
// ---------------------------------------------------------------------------

type stubClientRepo struct {
	clients []domain.Client
	listErr error
	lists   int // number of List calls
}

func (r *stubClientRepo) List(_ context.Context) ([]domain.Client, error) {
	r.lists++
	if r.listErr != nil {
		return nil, r.listErr
	}
	return slices.Clone(r.clients), nil
}

func (r *stubClientRepo) FindByID(_ context.Context, id string) (*domain.Client, error) {
	for _, c := range r.clients {
		if c.ID == id {
			clone := c
			return &clone, nil
		}
	}
	return nil, domain.ErrClientNotFound
}

type stubKPICache struct {
	entries map[string]domain.KPISummary
	getErr  error
	setErr  error
	gets    int
}

func newStubKPICache() *stubKPICache {
	return &stubKPICache{entries: make(map[string]domain.KPISummary)}
}

func (c *stubKPICache) Get(_ context.Context, key string) (*domain.KPISummary, bool, error) {
	c.gets++
	if c.getErr != nil {
		return nil, false, c.getErr
	}
	v, ok := c.entries[key]
	if !ok {
		return nil, false, nil
	}
	return &v, true, nil
}

func (c *stubKPICache) Set(_ context.Context, key string, s *domain.KPISummary) error {
	if c.setErr != nil {
		return c.setErr
	}
	c.entries[key] = *s
	return nil
}

// ---------------------------------------------------------------------------
// Fixtures
// ---------------------------------------------------------------------------

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func testDaysAgo(n int) time.Time { return testNow.AddDate(0, 0, -n) }

// testClients: alpha scores 90 (Good), beta 21 (Critical, stored as Good),
// cobalt 64 (Warning).
func testClients() []domain.Client {
	return []domain.Client{
		{
			ID: "alpha", Name: "Alpha Bakery", Industry: "Food", Status: domain.StatusPaid,
			MonthlyJobs: 250, TotalRevenue: 25000, HealthScore: 90,
			JoinDate: testDaysAgo(400), LastActivity: testNow,
		},
		{
			ID: "beta", Name: "Beta Barbers", Industry: "Grooming", Status: domain.StatusTrial,
			MonthlyJobs: 10, HealthScore: 85,
			JoinDate: testDaysAgo(5), LastActivity: testDaysAgo(20),
		},
		{
			ID: "cobalt", Name: "Cobalt Cleaning", Industry: "Cleaning", Status: domain.StatusFreeTier,
			MonthlyJobs: 100, HealthScore: 60,
			JoinDate: testDaysAgo(100), LastActivity: testDaysAgo(1),
		},
	}
}

func newTestEngine() *engine.Engine {
	return engine.New(
		engine.WithScorer(engine.NewScorer(func() time.Time { return testNow })),
		engine.WithCache(16),
	)
}

func newClientSvc(repo *stubClientRepo, cache ports.KPICache) *ClientService {
	return NewClientService(repo, newTestEngine(), cache, zerolog.Nop())
}

func itemIDs(res *ports.ListClientsResult) []string {
	out := make([]string, len(res.Items))
	for i, it := range res.Items {
		out[i] = it.Client.ID
	}
	return out
}

// ---------------------------------------------------------------------------
// ListClients
// ---------------------------------------------------------------------------

func TestListClients_DefaultLimit(t *testing.T) {
	svc := newClientSvc(&stubClientRepo{clients: testClients()}, nil)

	res, err := svc.ListClients(context.Background(), ports.ListClientsInput{})
	if err != nil {
		t.Fatal(err)
	}
	if res.Limit != 20 {
		t.Errorf("expected default limit 20, got %d", res.Limit)
	}
	if res.Page != 1 {
		t.Errorf("expected page 1, got %d", res.Page)
	}
	if res.Total != 3 || len(res.Items) != 3 {
		t.Errorf("expected 3 items, got total=%d items=%d", res.Total, len(res.Items))
	}
}

func TestListClients_LimitCappedAt100(t *testing.T) {
	svc := newClientSvc(&stubClientRepo{clients: testClients()}, nil)

	res, err := svc.ListClients(context.Background(), ports.ListClientsInput{Limit: 999})
	if err != nil {
		t.Fatal(err)
	}
	if res.Limit != 100 {
		t.Errorf("expected limit 100, got %d", res.Limit)
	}
}

func TestListClients_PaginationMath(t *testing.T) {
	svc := newClientSvc(&stubClientRepo{clients: testClients()}, nil)

	res, err := svc.ListClients(context.Background(), ports.ListClientsInput{Limit: 2, Page: 2})
	if err != nil {
		t.Fatal(err)
	}
	if res.TotalPages != 2 {
		t.Errorf("total_pages: expected 2, got %d", res.TotalPages)
	}
	if got := itemIDs(res); !slices.Equal(got, []string{"cobalt"}) {
		t.Errorf("page 2: expected [cobalt], got %v", got)
	}
}

func TestListClients_PageBeyondEnd(t *testing.T) {
	svc := newClientSvc(&stubClientRepo{clients: testClients()}, nil)

	res, err := svc.ListClients(context.Background(), ports.ListClientsInput{Limit: 2, Page: 9})
	if err != nil {
		t.Fatal(err)
	}
	if res.Total != 3 || len(res.Items) != 0 {
		t.Errorf("expected total 3 and no items, got total=%d items=%d", res.Total, len(res.Items))
	}
}

func TestListClients_FilterThenSort(t *testing.T) {
	svc := newClientSvc(&stubClientRepo{clients: testClients()}, nil)

	res, err := svc.ListClients(context.Background(), ports.ListClientsInput{
		Filters: domain.FilterState{Statuses: []domain.SubscriptionStatus{domain.StatusPaid, domain.StatusFreeTier}},
		Sort:    domain.SortConfig{Key: domain.SortByName, Direction: domain.SortDesc},
	})
	if err != nil {
		t.Fatal(err)
	}
	if got := itemIDs(res); !slices.Equal(got, []string{"cobalt", "alpha"}) {
		t.Errorf("expected [cobalt alpha], got %v", got)
	}
}

func TestListClients_RowsCarryLiveHealth(t *testing.T) {
	svc := newClientSvc(&stubClientRepo{clients: testClients()}, nil)

	res, err := svc.ListClients(context.Background(), ports.ListClientsInput{
		Sort: domain.SortConfig{Key: domain.SortByHealthScore, Direction: domain.SortAsc},
	})
	if err != nil {
		t.Fatal(err)
	}
	want := []struct {
		id    string
		score int
		cat   domain.HealthCategory
	}{
		{"beta", 21, domain.HealthCritical},
		{"cobalt", 64, domain.HealthWarning},
		{"alpha", 90, domain.HealthGood},
	}
	for i, w := range want {
		it := res.Items[i]
		if it.Client.ID != w.id || it.HealthScore != w.score || it.HealthCategory != w.cat {
			t.Errorf("row %d: expected %s/%d/%s, got %s/%d/%s",
				i, w.id, w.score, w.cat, it.Client.ID, it.HealthScore, it.HealthCategory)
		}
	}
}

func TestListClients_InvalidDateRange(t *testing.T) {
	repo := &stubClientRepo{clients: testClients()}
	svc := newClientSvc(repo, nil)

	start, end := testNow, testDaysAgo(10)
	_, err := svc.ListClients(context.Background(), ports.ListClientsInput{
		Filters: domain.FilterState{DateRange: domain.DateRange{Start: &start, End: &end}},
	})
	if !errors.Is(err, domain.ErrInvalidDateRange) {
		t.Fatalf("expected ErrInvalidDateRange, got %v", err)
	}
	if repo.lists != 0 {
		t.Error("repository should not be queried for an invalid range")
	}
}

func TestListClients_RepoError(t *testing.T) {
	boom := errors.New("connection refused")
	svc := newClientSvc(&stubClientRepo{listErr: boom}, nil)

	_, err := svc.ListClients(context.Background(), ports.ListClientsInput{})
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped repo error, got %v", err)
	}
}

func TestListClients_DatasetChangePurgesFilterCache(t *testing.T) {
	repo := &stubClientRepo{clients: testClients()}
	svc := newClientSvc(repo, nil)
	in := ports.ListClientsInput{Filters: domain.FilterState{Industries: []string{"Cleaning"}}}

	res, err := svc.ListClients(context.Background(), in)
	if err != nil {
		t.Fatal(err)
	}
	if res.Total != 1 {
		t.Fatalf("expected 1 cleaning client, got %d", res.Total)
	}

	// Same size, different contents.
	repo.clients[2] = domain.Client{ID: "delta", Name: "Delta Diner", Industry: "Food", Status: domain.StatusPaid}

	res, err = svc.ListClients(context.Background(), in)
	if err != nil {
		t.Fatal(err)
	}
	if res.Total != 0 {
		t.Errorf("expected stale cached result to be purged, got %v", itemIDs(res))
	}
}

func TestListClients_FieldChangePurgesFilterCache(t *testing.T) {
	repo := &stubClientRepo{clients: testClients()}
	svc := newClientSvc(repo, nil)
	in := ports.ListClientsInput{Filters: domain.FilterState{Statuses: []domain.SubscriptionStatus{domain.StatusPaid}}}

	res, err := svc.ListClients(context.Background(), in)
	if err != nil {
		t.Fatal(err)
	}
	if got := itemIDs(res); !slices.Equal(got, []string{"alpha"}) {
		t.Fatalf("expected only alpha on Paid, got %v", got)
	}

	// Same ids, activity and job counts; only the status moves.
	repo.clients[1].Status = domain.StatusPaid

	res, err = svc.ListClients(context.Background(), in)
	if err != nil {
		t.Fatal(err)
	}
	if got := itemIDs(res); !slices.Equal(got, []string{"alpha", "beta"}) {
		t.Errorf("expected beta after upgrade, got %v", got)
	}
}

func TestListClients_HealthFilterFollowsClock(t *testing.T) {
	now := testNow
	eng := engine.New(
		engine.WithScorer(engine.NewScorer(func() time.Time { return now })),
		engine.WithCache(16),
	)
	svc := NewClientService(&stubClientRepo{clients: testClients()}, eng, nil, zerolog.Nop())
	in := ports.ListClientsInput{Filters: domain.FilterState{HealthCategories: []domain.HealthCategory{domain.HealthGood}}}

	res, err := svc.ListClients(context.Background(), in)
	if err != nil {
		t.Fatal(err)
	}
	if got := itemIDs(res); !slices.Equal(got, []string{"alpha"}) {
		t.Fatalf("expected alpha to be Good, got %v", got)
	}

	// Sixty idle days drop alpha to Critical.
	now = testNow.AddDate(0, 0, 60)

	res, err = svc.ListClients(context.Background(), in)
	if err != nil {
		t.Fatal(err)
	}
	if res.Total != 0 {
		t.Errorf("expected no Good clients, got %v", itemIDs(res))
	}
	for _, it := range res.Items {
		if it.HealthCategory != domain.HealthGood {
			t.Errorf("%s listed under Good but labelled %s", it.Client.ID, it.HealthCategory)
		}
	}
}

// ---------------------------------------------------------------------------
// GetClient
// ---------------------------------------------------------------------------

func TestGetClient_ReturnsHealthReport(t *testing.T) {
	svc := newClientSvc(&stubClientRepo{clients: testClients()}, nil)

	d, err := svc.GetClient(context.Background(), "alpha")
	if err != nil {
		t.Fatal(err)
	}
	if d.Health.Score != 90 || d.Health.Category != domain.HealthGood {
		t.Errorf("expected 90/Good, got %d/%s", d.Health.Score, d.Health.Category)
	}
	if d.StaleHealthScore {
		t.Error("stored score 90 should not be flagged")
	}
	if d.Client.Name != "Alpha Bakery" {
		t.Errorf("unexpected client: %+v", d.Client)
	}
}

func TestGetClient_FlagsStaleStoredScore(t *testing.T) {
	svc := newClientSvc(&stubClientRepo{clients: testClients()}, nil)

	d, err := svc.GetClient(context.Background(), "beta")
	if err != nil {
		t.Fatal(err)
	}
	if !d.StaleHealthScore {
		t.Error("expected stored Good score against live Critical to be flagged")
	}
	if d.Client.HealthScore != 85 {
		t.Errorf("stored score must not be rewritten, got %d", d.Client.HealthScore)
	}
}

func TestGetClient_NotFound(t *testing.T) {
	svc := newClientSvc(&stubClientRepo{clients: testClients()}, nil)

	_, err := svc.GetClient(context.Background(), "nope")
	if !errors.Is(err, domain.ErrClientNotFound) {
		t.Fatalf("expected ErrClientNotFound, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// GetKPIs
// ---------------------------------------------------------------------------

func TestGetKPIs_NoCache(t *testing.T) {
	svc := newClientSvc(&stubClientRepo{clients: testClients()}, nil)

	sum, err := svc.GetKPIs(context.Background(), domain.FilterState{})
	if err != nil {
		t.Fatal(err)
	}
	if sum.TotalClients != 3 || sum.ActiveSubscriptions != 1 {
		t.Errorf("expected 3 clients / 1 active, got %d / %d", sum.TotalClients, sum.ActiveSubscriptions)
	}
	if sum.TotalRevenue != 25000 {
		t.Errorf("expected revenue 25000, got %v", sum.TotalRevenue)
	}
	if sum.MonthlyJobs != 360 {
		t.Errorf("expected 360 jobs, got %v", sum.MonthlyJobs)
	}
	if want := float64(90+21+64) / 3; sum.AverageHealthScore != want {
		t.Errorf("expected average %v, got %v", want, sum.AverageHealthScore)
	}
}

func TestGetKPIs_UsesSharedCache(t *testing.T) {
	cache := newStubKPICache()
	svc := newClientSvc(&stubClientRepo{clients: testClients()}, cache)

	if _, err := svc.GetKPIs(context.Background(), domain.FilterState{}); err != nil {
		t.Fatal(err)
	}
	if len(cache.entries) != 1 {
		t.Fatalf("expected summary stored in cache, got %d entries", len(cache.entries))
	}

	for k, v := range cache.entries {
		v.TotalClients = 99
		cache.entries[k] = v
	}

	sum, err := svc.GetKPIs(context.Background(), domain.FilterState{})
	if err != nil {
		t.Fatal(err)
	}
	if sum.TotalClients != 99 {
		t.Errorf("expected cached summary, got %+v", sum)
	}
}

func TestGetKPIs_CacheErrorFallsBack(t *testing.T) {
	cache := newStubKPICache()
	cache.getErr = errors.New("redis down")
	cache.setErr = errors.New("redis down")
	svc := newClientSvc(&stubClientRepo{clients: testClients()}, cache)

	sum, err := svc.GetKPIs(context.Background(), domain.FilterState{Search: "bakery"})
	if err != nil {
		t.Fatalf("cache failures must not fail the request: %v", err)
	}
	if sum.TotalClients != 1 {
		t.Errorf("expected 1 client, got %d", sum.TotalClients)
	}
}

func TestGetKPIs_InvalidDateRange(t *testing.T) {
	svc := newClientSvc(&stubClientRepo{clients: testClients()}, nil)

	start, end := testNow, testDaysAgo(1)
	_, err := svc.GetKPIs(context.Background(), domain.FilterState{DateRange: domain.DateRange{Start: &start, End: &end}})
	if !errors.Is(err, domain.ErrInvalidDateRange) {
		t.Fatalf("expected ErrInvalidDateRange, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// GetBreakdown / FilterMetadata
// ---------------------------------------------------------------------------

func TestGetBreakdown_ByStatus(t *testing.T) {
	svc := newClientSvc(&stubClientRepo{clients: testClients()}, nil)

	items, err := svc.GetBreakdown(context.Background(), domain.BreakdownStatus, domain.FilterState{})
	if err != nil {
		t.Fatal(err)
	}
	want := []domain.BreakdownItem{{Name: "FreeTier", Value: 1}, {Name: "Paid", Value: 1}, {Name: "Trial", Value: 1}}
	if !slices.Equal(items, want) {
		t.Errorf("expected %v, got %v", want, items)
	}
}

func TestGetBreakdown_AppliesFilters(t *testing.T) {
	svc := newClientSvc(&stubClientRepo{clients: testClients()}, nil)

	items, err := svc.GetBreakdown(context.Background(), domain.BreakdownHealth, domain.FilterState{
		Statuses: []domain.SubscriptionStatus{domain.StatusPaid},
	})
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(items, []domain.BreakdownItem{{Name: "Good", Value: 1}}) {
		t.Errorf("unexpected breakdown: %v", items)
	}
}

func TestFilterMetadata(t *testing.T) {
	svc := newClientSvc(&stubClientRepo{clients: testClients()}, nil)

	meta, err := svc.FilterMetadata(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(meta.Industries, []string{"Cleaning", "Food", "Grooming"}) {
		t.Errorf("unexpected industries: %v", meta.Industries)
	}
	if meta.TotalClients != 3 {
		t.Errorf("expected 3 clients, got %d", meta.TotalClients)
	}
	if meta.EarliestJoin == nil || !meta.EarliestJoin.Equal(testDaysAgo(400)) {
		t.Errorf("unexpected earliest join: %v", meta.EarliestJoin)
	}
	if meta.LatestJoin == nil || !meta.LatestJoin.Equal(testDaysAgo(5)) {
		t.Errorf("unexpected latest join: %v", meta.LatestJoin)
	}
	if len(meta.SortKeys) != len(domain.SortKeys) {
		t.Errorf("expected every sort key, got %v", meta.SortKeys)
	}
}

func TestFilterMetadata_EmptyDataset(t *testing.T) {
	svc := newClientSvc(&stubClientRepo{}, nil)

	meta, err := svc.FilterMetadata(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if meta.Industries == nil || len(meta.Industries) != 0 {
		t.Errorf("expected empty non-nil industries, got %v", meta.Industries)
	}
	if meta.EarliestJoin != nil {
		t.Error("expected no join bounds for an empty dataset")
	}
}
