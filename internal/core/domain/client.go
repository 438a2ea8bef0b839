package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// SubscriptionStatus represents the billing state of a client account.
type SubscriptionStatus string

const (
	StatusPaid     SubscriptionStatus = "Paid"
	StatusTrial    SubscriptionStatus = "Trial"
	StatusFreeTier SubscriptionStatus = "FreeTier"
)

// Statuses lists every subscription status in display order.
var Statuses = []SubscriptionStatus{StatusPaid, StatusTrial, StatusFreeTier}

// FeatureCategory groups product features by pricing tier.
type FeatureCategory string

const (
	FeatureCore     FeatureCategory = "Core"
	FeatureAdvanced FeatureCategory = "Advanced"
	FeaturePremium  FeatureCategory = "Premium"
)

var (
	ErrClientNotFound = errors.New("client not found")
	ErrInvalidFilter  = errors.New("invalid filter")
)

// ParseStatus resolves a case-insensitive status name. "free" and
// "free_tier" are accepted for FreeTier.
func ParseStatus(s string) (SubscriptionStatus, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "paid":
		return StatusPaid, nil
	case "trial":
		return StatusTrial, nil
	case "freetier", "free_tier", "free":
		return StatusFreeTier, nil
	}
	return "", fmt.Errorf("%w: status %q", ErrInvalidFilter, s)
}

// FeatureUsage records how a client uses a single product feature.
type FeatureUsage struct {
	Name         string          `json:"name" bson:"name"`
	UsageCount   int             `json:"usage_count" bson:"usage_count"`
	LastUsed     time.Time       `json:"last_used" bson:"last_used"`
	AdoptionRate float64         `json:"adoption_rate" bson:"adoption_rate"`
	Category     FeatureCategory `json:"category" bson:"category"`
}

// StaffStat summarises the performance of one member of a client's staff.
type StaffStat struct {
	ID             string  `json:"id" bson:"id"`
	Name           string  `json:"name" bson:"name"`
	Role           string  `json:"role" bson:"role"`
	JobsCompleted  int     `json:"jobs_completed" bson:"jobs_completed"`
	Efficiency     float64 `json:"efficiency" bson:"efficiency"`
	CustomerRating float64 `json:"customer_rating" bson:"customer_rating"`
}

// Client is a tenant business tracked by the dashboard.
//
// HealthScore is a stored, possibly stale value. The scorer output is the
// source of truth for classification and ranking.
type Client struct {
	ID              string             `json:"id" bson:"_id"`
	Name            string             `json:"name" bson:"name"`
	Industry        string             `json:"industry" bson:"industry"`
	Status          SubscriptionStatus `json:"status" bson:"status"`
	MonthlyJobs     int                `json:"monthly_jobs" bson:"monthly_jobs"`
	TotalRevenue    float64            `json:"total_revenue" bson:"total_revenue"`
	HealthScore     int                `json:"health_score" bson:"health_score"`
	JoinDate        time.Time          `json:"join_date" bson:"join_date"`
	LastActivity    time.Time          `json:"last_activity" bson:"last_activity"`
	SubscriptionEnd time.Time          `json:"subscription_end" bson:"subscription_end"`
	FeatureUsage    []FeatureUsage     `json:"feature_usage" bson:"feature_usage"`
	StaffStats      []StaffStat        `json:"staff_stats" bson:"staff_stats"`
	ContactEmail    string             `json:"contact_email,omitempty" bson:"contact_email,omitempty"`
	ContactPhone    string             `json:"contact_phone,omitempty" bson:"contact_phone,omitempty"`
	Notes           string             `json:"notes,omitempty" bson:"notes,omitempty"`
}
