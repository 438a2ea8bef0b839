package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/clientpulse/dashboard/internal/api/handler"
	"github.com/clientpulse/dashboard/internal/core/domain"
	"github.com/clientpulse/dashboard/internal/core/engine"
	"github.com/clientpulse/dashboard/internal/core/service"
	"github.com/clientpulse/dashboard/internal/infrastructure/db/memory"
)

var routerNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func routerClients() []domain.Client {
	return []domain.Client{
		{
			ID: "cl-001", Name: "Sparkle Spa", Industry: "Beauty", Status: domain.StatusPaid,
			MonthlyJobs: 200, TotalRevenue: 24000, HealthScore: 90,
			JoinDate:        routerNow.AddDate(-1, 0, 0),
			LastActivity:    routerNow.AddDate(0, 0, -1),
			SubscriptionEnd: routerNow.AddDate(0, 6, 0),
		},
		{
			ID: "cl-002", Name: "Iron Gym", Industry: "Fitness", Status: domain.StatusTrial,
			MonthlyJobs: 10, TotalRevenue: 300, HealthScore: 30,
			JoinDate:     routerNow.AddDate(0, -1, 0),
			LastActivity: routerNow.AddDate(0, 0, -40),
		},
	}
}

func newTestRouter(t *testing.T, rateLimit float64) http.Handler {
	t.Helper()
	repo := memory.NewClientRepository(routerClients())
	eng := engine.New(engine.WithScorer(engine.NewScorer(func() time.Time { return routerNow })))
	clients := service.NewClientService(repo, eng, nil, zerolog.Nop())
	feed := service.NewFeedService(10, zerolog.Nop())
	_ = feed.Record(context.Background(), domain.FeedEvent{
		ID: "ev-1", Type: domain.FeedJobCompleted, ClientID: "cl-001", ClientName: "Sparkle Spa", OccurredAt: routerNow,
	})

	return NewRouter(Deps{
		Clients:   clients,
		Feed:      feed,
		Readiness: map[string]handler.Pinger{"clients": repo},
		Logger:    zerolog.Nop(),
		RateLimit: rateLimit,
		Registry:  prometheus.NewRegistry(),
	})
}

func do(t *testing.T, h http.Handler, method, target string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	var body map[string]any
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("%s %s: invalid json: %v", method, target, err)
		}
	}
	return rec, body
}

func TestRouter_ListClients(t *testing.T) {
	r := newTestRouter(t, 0)

	rec, body := do(t, r, http.MethodGet, "/v1/clients?sort=healthScore&order=desc")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	data := body["data"].([]any)
	if len(data) != 2 || data[0].(map[string]any)["id"] != "cl-001" {
		t.Errorf("expected cl-001 first, got %v", data)
	}
	if rec.Header().Get("X-Request-Id") == "" {
		t.Error("expected a request id header")
	}
}

func TestRouter_StatusCodes(t *testing.T) {
	r := newTestRouter(t, 0)

	tests := []struct {
		method  string
		target  string
		code    int
		message string
	}{
		{http.MethodGet, "/v1/clients/cl-404", http.StatusNotFound, "client not found"},
		{http.MethodGet, "/v1/clients?sort=colour", http.StatusBadRequest, "invalid sort key"},
		{http.MethodGet, "/v1/clients?status=gold", http.StatusBadRequest, "invalid filter"},
		{http.MethodGet, "/v1/kpis?from=2026-02-01&to=2026-01-01", http.StatusUnprocessableEntity, "date range"},
		{http.MethodGet, "/v1/breakdown/region", http.StatusBadRequest, "breakdown dimension"},
		{http.MethodPost, "/v1/clients", http.StatusMethodNotAllowed, "read-only"},
		{http.MethodDelete, "/v1/clients/cl-001", http.StatusMethodNotAllowed, "read-only"},
		{http.MethodGet, "/v1/nothing", http.StatusNotFound, "Not Found"},
	}
	for _, tt := range tests {
		rec, body := do(t, r, tt.method, tt.target)
		if rec.Code != tt.code {
			t.Errorf("%s %s: expected %d, got %d", tt.method, tt.target, tt.code, rec.Code)
			continue
		}
		if msg, _ := body["error"].(string); !strings.Contains(msg, tt.message) {
			t.Errorf("%s %s: expected error containing %q, got %q", tt.method, tt.target, tt.message, msg)
		}
	}
}

func TestRouter_ClientDetailAndHealth(t *testing.T) {
	r := newTestRouter(t, 0)

	rec, body := do(t, r, http.MethodGet, "/v1/clients/cl-002")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if body["health_category"] != "Critical" {
		t.Errorf("expected Critical, got %v", body["health_category"])
	}

	rec, body = do(t, r, http.MethodGet, "/v1/clients/cl-002/health")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if recs := body["recommendations"].([]any); len(recs) == 0 {
		t.Error("expected recommendations for a critical client")
	}
}

func TestRouter_AnalyticsAndFeed(t *testing.T) {
	r := newTestRouter(t, 0)

	_, kpis := do(t, r, http.MethodGet, "/v1/kpis?status=Paid")
	if kpis["total_clients"].(float64) != 1 || kpis["total_revenue"].(float64) != 24000 {
		t.Errorf("unexpected kpis %v", kpis)
	}

	_, breakdown := do(t, r, http.MethodGet, "/v1/breakdown/status")
	if len(breakdown["data"].([]any)) != 2 {
		t.Errorf("expected one group per present status, got %v", breakdown)
	}

	_, meta := do(t, r, http.MethodGet, "/v1/filters/metadata")
	if meta["total_clients"].(float64) != 2 {
		t.Errorf("unexpected metadata %v", meta)
	}

	_, feed := do(t, r, http.MethodGet, "/v1/feed")
	if feed["count"].(float64) != 1 {
		t.Errorf("unexpected feed %v", feed)
	}
}

func TestRouter_InfraRoutes(t *testing.T) {
	r := newTestRouter(t, 0)

	if rec, _ := do(t, r, http.MethodGet, "/health"); rec.Code != http.StatusOK {
		t.Errorf("liveness: expected 200, got %d", rec.Code)
	}
	if rec, body := do(t, r, http.MethodGet, "/health/ready"); rec.Code != http.StatusOK || body["status"] != "ok" {
		t.Errorf("readiness: expected ok, got %d %v", rec.Code, body)
	}

	do(t, r, http.MethodGet, "/v1/clients")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	metrics, _ := io.ReadAll(rec.Body)
	if !strings.Contains(string(metrics), "dashboard_http_requests_total") {
		t.Errorf("expected http metrics, got %s", metrics)
	}

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "/v1/clients") {
		t.Errorf("swagger: expected doc, got %d", rec.Code)
	}
}

func TestRouter_RateLimit(t *testing.T) {
	r := newTestRouter(t, 1) // burst of 2

	var last int
	for i := 0; i < 3; i++ {
		rec, _ := do(t, r, http.MethodGet, "/v1/filters/metadata")
		last = rec.Code
	}
	if last != http.StatusTooManyRequests {
		t.Fatalf("expected 429 on third request, got %d", last)
	}
	if rec, _ := do(t, r, http.MethodGet, "/health"); rec.Code != http.StatusOK {
		t.Errorf("probes must bypass the limiter, got %d", rec.Code)
	}
}

func TestResolveError_Unexpected(t *testing.T) {
	h := NewHTTPErrorHandler(zerolog.Nop())

	rec := httptest.NewRecorder()
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/x", nil), rec)
	h(errors.New("mongo exploded"), c)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "mongo") {
		t.Errorf("internal details leaked: %s", rec.Body.String())
	}
}
