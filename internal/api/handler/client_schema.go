package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---

// filterQuery carries the filter controls shared by the list, KPI and
// breakdown endpoints. Multi-value fields accept repeated keys or
// comma-separated values.
type filterQuery struct {
	Search     string   `query:"search"   validate:"max=100"`
	Industries []string `query:"industry" validate:"max=50,dive,max=100"`
	Statuses   []string `query:"status"   validate:"max=10"`
	Health     []string `query:"health"   validate:"max=10"`
	From       string   `query:"from"`
	To         string   `query:"to"`
}

type listClientsQuery struct {
	Filter filterQuery
	Sort   string `query:"sort"`
	Order  string `query:"order" validate:"omitempty,oneof=asc desc ASC DESC ascending descending"`
	Page   int    `query:"page"  validate:"min=0"`
	Limit  int    `query:"limit" validate:"min=0"`
}

type breakdownQuery struct {
	Dimension string `param:"dimension" validate:"required"`
	Filter    filterQuery
}

type clientIDParam struct {
	ID string `param:"id" validate:"required,max=64"`
}

// --- Response types ---
// Response-only types owned by the transport layer, kept apart from domain
// types so the JSON contract does not follow internal changes.

type clientLinks struct {
	Self   string `json:"self"`
	Health string `json:"health"`
}

// clientSummaryResponse is the lightweight item used in list responses.
// health_score is the live score; stored_health_score is the persisted value.
type clientSummaryResponse struct {
	ID                string      `json:"id"`
	Name              string      `json:"name"`
	Industry          string      `json:"industry"`
	Status            string      `json:"status"`
	MonthlyJobs       int         `json:"monthly_jobs"`
	TotalRevenue      float64     `json:"total_revenue"`
	HealthScore       int         `json:"health_score"`
	HealthCategory    string      `json:"health_category"`
	StoredHealthScore int         `json:"stored_health_score"`
	JoinDate          time.Time   `json:"join_date"`
	LastActivity      time.Time   `json:"last_activity"`
	SubscriptionEnd   *time.Time  `json:"subscription_end,omitempty"`
	ContactEmail      string      `json:"contact_email,omitempty"`
	Links             clientLinks `json:"_links"`
}

type paginationResponse struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"total_pages"`
}

type listClientsResponse struct {
	Data       []clientSummaryResponse `json:"data"`
	Pagination paginationResponse      `json:"pagination"`
}

type featureUsageResponse struct {
	Name         string    `json:"name"`
	UsageCount   int       `json:"usage_count"`
	LastUsed     time.Time `json:"last_used"`
	AdoptionRate float64   `json:"adoption_rate"`
	Category     string    `json:"category"`
}

type staffStatResponse struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Role           string  `json:"role"`
	JobsCompleted  int     `json:"jobs_completed"`
	Efficiency     float64 `json:"efficiency"`
	CustomerRating float64 `json:"customer_rating"`
}

type healthFactorsResponse struct {
	Activity         int `json:"activity"`
	Revenue          int `json:"revenue"`
	FeatureAdoption  int `json:"feature_adoption"`
	StaffPerformance int `json:"staff_performance"`
	Retention        int `json:"retention"`
}

type healthReportResponse struct {
	ClientID        string                `json:"client_id"`
	Score           int                   `json:"score"`
	Category        string                `json:"category"`
	Factors         healthFactorsResponse `json:"factors"`
	Recommendations []string              `json:"recommendations"`
}

type clientDetailResponse struct {
	clientSummaryResponse
	ContactPhone     string                 `json:"contact_phone,omitempty"`
	Notes            string                 `json:"notes,omitempty"`
	FeatureUsage     []featureUsageResponse `json:"feature_usage"`
	StaffStats       []staffStatResponse    `json:"staff_stats"`
	Health           healthReportResponse   `json:"health"`
	StaleHealthScore bool                   `json:"stale_health_score"`
}

type kpiResponse struct {
	TotalClients        int     `json:"total_clients"`
	ActiveSubscriptions int     `json:"active_subscriptions"`
	TotalRevenue        float64 `json:"total_revenue"`
	AverageHealthScore  float64 `json:"average_health_score"`
	MonthlyJobs         float64 `json:"monthly_jobs"`
	Multiplier          float64 `json:"multiplier"`
}

type breakdownItemResponse struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

type breakdownResponse struct {
	Dimension string                  `json:"dimension"`
	Data      []breakdownItemResponse `json:"data"`
}

type filterMetadataResponse struct {
	Industries       []string   `json:"industries"`
	Statuses         []string   `json:"statuses"`
	HealthCategories []string   `json:"health_categories"`
	SortKeys         []string   `json:"sort_keys"`
	EarliestJoin     *time.Time `json:"earliest_join,omitempty"`
	LatestJoin       *time.Time `json:"latest_join,omitempty"`
	TotalClients     int        `json:"total_clients"`
}
