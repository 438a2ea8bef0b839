package domain

import (
	"fmt"
	"strings"
)

// HealthCategory buckets a health score.
type HealthCategory string

const (
	HealthGood     HealthCategory = "Good"
	HealthWarning  HealthCategory = "Warning"
	HealthCritical HealthCategory = "Critical"
)

// HealthCategories lists every category from best to worst.
var HealthCategories = []HealthCategory{HealthGood, HealthWarning, HealthCritical}

// HealthFactors holds the five bounded sub-scores behind a health score.
type HealthFactors struct {
	Activity         int `json:"activity"`          // 0-50
	Revenue          int `json:"revenue"`           // 0-30
	FeatureAdoption  int `json:"feature_adoption"`  // 0-20
	StaffPerformance int `json:"staff_performance"` // 0-20
	Retention        int `json:"retention"`         // 0-10
}

// Total sums the sub-scores without clamping.
func (f HealthFactors) Total() int {
	return f.Activity + f.Revenue + f.FeatureAdoption + f.StaffPerformance + f.Retention
}

// HealthReport is the scored view of a single client.
type HealthReport struct {
	ClientID        string         `json:"client_id"`
	Score           int            `json:"score"`
	Category        HealthCategory `json:"category"`
	Factors         HealthFactors  `json:"factors"`
	Recommendations []string       `json:"recommendations"`
}

// KPISummary aggregates a filtered client set for the dashboard cards.
type KPISummary struct {
	TotalClients        int     `json:"total_clients"`
	ActiveSubscriptions int     `json:"active_subscriptions"`
	TotalRevenue        float64 `json:"total_revenue"`
	AverageHealthScore  float64 `json:"average_health_score"`
	MonthlyJobs         float64 `json:"monthly_jobs"`
	Multiplier          float64 `json:"multiplier"`
}

// BreakdownItem is a single named count in a chart series.
type BreakdownItem struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// BreakdownDimension selects how clients are grouped in a breakdown.
type BreakdownDimension string

const (
	BreakdownIndustry BreakdownDimension = "industry"
	BreakdownStatus   BreakdownDimension = "status"
	BreakdownHealth   BreakdownDimension = "health"
)

// ParseHealthCategory resolves a case-insensitive category name.
func ParseHealthCategory(s string) (HealthCategory, error) {
	for _, c := range HealthCategories {
		if strings.EqualFold(strings.TrimSpace(s), string(c)) {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: health category %q", ErrInvalidFilter, s)
}

// ParseBreakdownDimension resolves a case-insensitive dimension name.
func ParseBreakdownDimension(s string) (BreakdownDimension, error) {
	switch d := BreakdownDimension(strings.ToLower(strings.TrimSpace(s))); d {
	case BreakdownIndustry, BreakdownStatus, BreakdownHealth:
		return d, nil
	}
	return "", fmt.Errorf("%w: breakdown dimension %q", ErrInvalidFilter, s)
}
