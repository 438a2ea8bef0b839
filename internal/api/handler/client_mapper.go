package handler

import (
	"fmt"
	"strings"
	"time"

	"github.com/clientpulse/dashboard/internal/core/domain"
	"github.com/clientpulse/dashboard/internal/core/ports"
)

const dateLayout = "2006-01-02"

// --- Request → Service input ---

func toFilterState(q filterQuery) (domain.FilterState, error) {
	fs := domain.FilterState{
		Search:     strings.TrimSpace(q.Search),
		Industries: splitValues(q.Industries),
	}

	for _, s := range splitValues(q.Statuses) {
		st, err := domain.ParseStatus(s)
		if err != nil {
			return domain.FilterState{}, err
		}
		fs.Statuses = append(fs.Statuses, st)
	}
	for _, s := range splitValues(q.Health) {
		hc, err := domain.ParseHealthCategory(s)
		if err != nil {
			return domain.FilterState{}, err
		}
		fs.HealthCategories = append(fs.HealthCategories, hc)
	}

	start, err := parseDate(q.From, false)
	if err != nil {
		return domain.FilterState{}, err
	}
	end, err := parseDate(q.To, true)
	if err != nil {
		return domain.FilterState{}, err
	}
	fs.DateRange = domain.DateRange{Start: start, End: end}

	return fs, nil
}

func toListInput(q listClientsQuery) (ports.ListClientsInput, error) {
	fs, err := toFilterState(q.Filter)
	if err != nil {
		return ports.ListClientsInput{}, err
	}
	key, err := domain.ParseSortKey(q.Sort)
	if err != nil {
		return ports.ListClientsInput{}, fmt.Errorf("%w: %q", err, q.Sort)
	}
	dir, err := domain.ParseSortDirection(q.Order)
	if err != nil {
		return ports.ListClientsInput{}, fmt.Errorf("%w: %q", err, q.Order)
	}
	return ports.ListClientsInput{
		Filters: fs,
		Sort:    domain.SortConfig{Key: key, Direction: dir},
		Page:    q.Page,
		Limit:   q.Limit,
	}, nil
}

// splitValues flattens repeated and comma-separated values, dropping blanks.
func splitValues(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// parseDate accepts YYYY-MM-DD or RFC 3339. A bare date used as an upper
// bound covers the whole day.
func parseDate(s string, endOfDay bool) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	if t, err := time.Parse(dateLayout, s); err == nil {
		if endOfDay {
			t = t.Add(24*time.Hour - time.Nanosecond)
		}
		return &t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil, fmt.Errorf("%w: date %q", domain.ErrInvalidFilter, s)
	}
	t = t.UTC()
	return &t, nil
}

// --- Service result → HTTP response ---

func clientLinksFor(id string) clientLinks {
	return clientLinks{
		Self:   "/v1/clients/" + id,
		Health: "/v1/clients/" + id + "/health",
	}
}

func toSummaryResponse(c domain.Client, score int, category domain.HealthCategory) clientSummaryResponse {
	resp := clientSummaryResponse{
		ID:                c.ID,
		Name:              c.Name,
		Industry:          c.Industry,
		Status:            string(c.Status),
		MonthlyJobs:       c.MonthlyJobs,
		TotalRevenue:      c.TotalRevenue,
		HealthScore:       score,
		HealthCategory:    string(category),
		StoredHealthScore: c.HealthScore,
		JoinDate:          c.JoinDate.UTC(),
		LastActivity:      c.LastActivity.UTC(),
		ContactEmail:      c.ContactEmail,
		Links:             clientLinksFor(c.ID),
	}
	if !c.SubscriptionEnd.IsZero() {
		end := c.SubscriptionEnd.UTC()
		resp.SubscriptionEnd = &end
	}
	return resp
}

func toListResponse(r *ports.ListClientsResult) listClientsResponse {
	items := make([]clientSummaryResponse, len(r.Items))
	for i, s := range r.Items {
		items[i] = toSummaryResponse(s.Client, s.HealthScore, s.HealthCategory)
	}
	return listClientsResponse{
		Data: items,
		Pagination: paginationResponse{
			Total:      r.Total,
			Page:       r.Page,
			Limit:      r.Limit,
			TotalPages: r.TotalPages,
		},
	}
}

func toHealthResponse(h domain.HealthReport) healthReportResponse {
	recs := h.Recommendations
	if recs == nil {
		recs = []string{}
	}
	return healthReportResponse{
		ClientID: h.ClientID,
		Score:    h.Score,
		Category: string(h.Category),
		Factors: healthFactorsResponse{
			Activity:         h.Factors.Activity,
			Revenue:          h.Factors.Revenue,
			FeatureAdoption:  h.Factors.FeatureAdoption,
			StaffPerformance: h.Factors.StaffPerformance,
			Retention:        h.Factors.Retention,
		},
		Recommendations: recs,
	}
}

func toDetailResponse(d *ports.ClientDetail) clientDetailResponse {
	features := make([]featureUsageResponse, len(d.Client.FeatureUsage))
	for i, f := range d.Client.FeatureUsage {
		features[i] = featureUsageResponse{
			Name:         f.Name,
			UsageCount:   f.UsageCount,
			LastUsed:     f.LastUsed.UTC(),
			AdoptionRate: f.AdoptionRate,
			Category:     string(f.Category),
		}
	}
	staff := make([]staffStatResponse, len(d.Client.StaffStats))
	for i, s := range d.Client.StaffStats {
		staff[i] = staffStatResponse{
			ID:             s.ID,
			Name:           s.Name,
			Role:           s.Role,
			JobsCompleted:  s.JobsCompleted,
			Efficiency:     s.Efficiency,
			CustomerRating: s.CustomerRating,
		}
	}
	return clientDetailResponse{
		clientSummaryResponse: toSummaryResponse(d.Client, d.Health.Score, d.Health.Category),
		ContactPhone:          d.Client.ContactPhone,
		Notes:                 d.Client.Notes,
		FeatureUsage:          features,
		StaffStats:            staff,
		Health:                toHealthResponse(d.Health),
		StaleHealthScore:      d.StaleHealthScore,
	}
}

func toKPIResponse(k *domain.KPISummary) kpiResponse {
	return kpiResponse{
		TotalClients:        k.TotalClients,
		ActiveSubscriptions: k.ActiveSubscriptions,
		TotalRevenue:        k.TotalRevenue,
		AverageHealthScore:  k.AverageHealthScore,
		MonthlyJobs:         k.MonthlyJobs,
		Multiplier:          k.Multiplier,
	}
}

func toBreakdownResponse(dim domain.BreakdownDimension, items []domain.BreakdownItem) breakdownResponse {
	data := make([]breakdownItemResponse, len(items))
	for i, it := range items {
		data[i] = breakdownItemResponse{Name: it.Name, Value: it.Value}
	}
	return breakdownResponse{Dimension: string(dim), Data: data}
}

func toMetadataResponse(m *ports.FilterMetadata) filterMetadataResponse {
	statuses := make([]string, len(m.Statuses))
	for i, s := range m.Statuses {
		statuses[i] = string(s)
	}
	categories := make([]string, len(m.HealthCategories))
	for i, c := range m.HealthCategories {
		categories[i] = string(c)
	}
	keys := make([]string, len(m.SortKeys))
	for i, k := range m.SortKeys {
		keys[i] = string(k)
	}
	industries := m.Industries
	if industries == nil {
		industries = []string{}
	}
	return filterMetadataResponse{
		Industries:       industries,
		Statuses:         statuses,
		HealthCategories: categories,
		SortKeys:         keys,
		EarliestJoin:     m.EarliestJoin,
		LatestJoin:       m.LatestJoin,
		TotalClients:     m.TotalClients,
	}
}
