// Package engine holds the pure client analytics used by the dashboard:
// health scoring, filtering, sorting and KPI aggregation. Nothing in this
// package performs I/O; every function is deterministic given its inputs and
// the scorer clock.
package engine

import (
	"time"

	"github.com/clientpulse/dashboard/internal/core/domain"
)

const (
	maxActivity         = 50
	maxRevenue          = 30
	maxFeatureAdoption  = 20
	maxStaffPerformance = 20

	// assumedFeatureCount is the catalogue size adoption is measured against.
	assumedFeatureCount = 5

	goodThreshold    = 80
	warningThreshold = 60
)

// step is one rung of a threshold ladder: values >= min earn points.
type step struct {
	min    float64
	points int
}

// ladder returns the points of the first step whose min is <= v.
// Steps must be ordered from the highest min down.
func ladder(v float64, steps []step) int {
	for _, s := range steps {
		if v >= s.min {
			return s.points
		}
	}
	return 0
}

var (
	jobVolumeSteps = []step{{200, 10}, {100, 8}, {50, 6}, {20, 4}, {5, 2}}
	paidTierSteps  = []step{{20000, 10}, {10000, 8}, {5000, 6}, {2000, 4}, {1000, 2}}
	engagementStep = []step{{100, 5}, {50, 4}, {20, 3}, {10, 2}, {5, 1}}
	usageSteps     = []step{{200, 5}, {100, 4}, {50, 3}, {20, 2}, {5, 1}}
	efficiencyStep = []step{{95, 10}, {90, 8}, {85, 6}, {80, 4}, {75, 2}}
	ratingSteps    = []step{{4.8, 10}, {4.5, 8}, {4.0, 6}, {3.5, 4}, {3.0, 2}}
	retentionSteps = []step{{12, 10}, {6, 8}, {3, 6}, {1, 4}}
)

// Recommendation messages, in evaluation order.
const (
	RecReengage       = "Low recent activity: schedule a re-engagement call"
	RecConvertTrial   = "Trial account with low revenue: book a conversion call"
	RecFeatureTrain   = "Low feature adoption: offer product training"
	RecStaffTraining  = "Staff performance below target: recommend staff training"
	RecOnboarding     = "New account: schedule onboarding check-ins"
	RecUpgrade        = "Highly active free tier account: flag as upgrade candidate"
	RecPerformingWell = "Client is performing well: keep regular check-ins"
)

// Scorer computes composite health scores. The zero value uses time.Now.
type Scorer struct {
	now func() time.Time
}

// NewScorer returns a Scorer reading the current time from now.
// A nil now falls back to time.Now.
func NewScorer(now func() time.Time) *Scorer {
	return &Scorer{now: now}
}

func (s *Scorer) clock() time.Time {
	if s == nil || s.now == nil {
		return time.Now()
	}
	return s.now()
}

// Score computes the health report for c. The total is the plain sum of the
// five capped factors and may exceed 100.
func (s *Scorer) Score(c domain.Client) domain.HealthReport {
	now := s.clock()

	f := domain.HealthFactors{
		Activity:         activityScore(c, now),
		Revenue:          revenueScore(c),
		FeatureAdoption:  featureAdoptionScore(c.FeatureUsage),
		StaffPerformance: staffPerformanceScore(c.StaffStats),
		Retention:        retentionScore(c.JoinDate, now),
	}

	total := f.Total()
	return domain.HealthReport{
		ClientID:        c.ID,
		Score:           total,
		Category:        Classify(total),
		Factors:         f,
		Recommendations: recommendations(c, f),
	}
}

// Value returns only the total score for c.
func (s *Scorer) Value(c domain.Client) int {
	now := s.clock()
	return activityScore(c, now) +
		revenueScore(c) +
		featureAdoptionScore(c.FeatureUsage) +
		staffPerformanceScore(c.StaffStats) +
		retentionScore(c.JoinDate, now)
}

// Classify buckets a total score.
//
//	>= 80 → Good
//	>= 60 → Warning
//	else  → Critical
func Classify(score int) domain.HealthCategory {
	switch {
	case score >= goodThreshold:
		return domain.HealthGood
	case score >= warningThreshold:
		return domain.HealthWarning
	default:
		return domain.HealthCritical
	}
}

// wholeDays counts full days between from and to, never negative.
func wholeDays(from, to time.Time) int {
	d := int(to.Sub(from).Hours() / 24)
	if d < 0 {
		return 0
	}
	return d
}

func activityScore(c domain.Client, now time.Time) int {
	var recency int
	switch days := wholeDays(c.LastActivity, now); {
	case days <= 1:
		recency = 40
	case days <= 3:
		recency = 35
	case days <= 7:
		recency = 25
	case days <= 14:
		recency = 15
	case days <= 30:
		recency = 5
	}
	return min(recency+ladder(float64(c.MonthlyJobs), jobVolumeSteps), maxActivity)
}

func revenueScore(c domain.Client) int {
	var base, bonus int
	switch c.Status {
	case domain.StatusPaid:
		base = 20
		bonus = ladder(c.TotalRevenue, paidTierSteps)
	case domain.StatusTrial:
		base = 10
		bonus = ladder(float64(c.MonthlyJobs), engagementStep)
	case domain.StatusFreeTier:
		base = 5
		bonus = ladder(float64(c.MonthlyJobs), engagementStep)
	}
	return min(base+bonus, maxRevenue)
}

func featureAdoptionScore(features []domain.FeatureUsage) int {
	var adopted, premium, usage int
	for _, f := range features {
		if f.UsageCount <= 0 {
			continue
		}
		adopted++
		usage += f.UsageCount
		if f.Category == domain.FeaturePremium {
			premium++
		}
	}
	if adopted == 0 {
		return 0
	}

	base := adopted * 10 / assumedFeatureCount
	intensity := ladder(float64(usage)/float64(adopted), usageSteps)
	return min(base+intensity+2*premium, maxFeatureAdoption)
}

func staffPerformanceScore(staff []domain.StaffStat) int {
	if len(staff) == 0 {
		return 0
	}
	var eff, rating float64
	for _, s := range staff {
		eff += s.Efficiency
		rating += s.CustomerRating
	}
	n := float64(len(staff))
	score := ladder(eff/n, efficiencyStep) + ladder(rating/n, ratingSteps)
	return min(score, maxStaffPerformance)
}

func retentionScore(joined, now time.Time) int {
	months := wholeDays(joined, now) / 30
	if pts := ladder(float64(months), retentionSteps); pts > 0 {
		return pts
	}
	return 2
}

func recommendations(c domain.Client, f domain.HealthFactors) []string {
	rules := []struct {
		fires bool
		msg   string
	}{
		{f.Activity < 20, RecReengage},
		{c.Status == domain.StatusTrial && f.Revenue < 15, RecConvertTrial},
		{f.FeatureAdoption < 10, RecFeatureTrain},
		{f.StaffPerformance < 10 && len(c.StaffStats) > 0, RecStaffTraining},
		{f.Retention < 5, RecOnboarding},
		{c.Status == domain.StatusFreeTier && f.Activity > 30, RecUpgrade},
	}

	var out []string
	for _, r := range rules {
		if r.fires {
			out = append(out, r.msg)
		}
	}
	if len(out) == 0 {
		out = append(out, RecPerformingWell)
	}
	return out
}
