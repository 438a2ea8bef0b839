package engine

import (
	"time"

	"github.com/clientpulse/dashboard/internal/core/domain"
)

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

func daysAgo(n int) time.Time { return fixedNow.AddDate(0, 0, -n) }

func ptrTime(t time.Time) *time.Time { return &t }

func coreFeatures(n, usage int) []domain.FeatureUsage {
	out := make([]domain.FeatureUsage, n)
	for i := range out {
		out[i] = domain.FeatureUsage{
			Name:       "feature-" + string(rune('a'+i)),
			UsageCount: usage,
			LastUsed:   fixedNow,
			Category:   domain.FeatureCore,
		}
	}
	return out
}

func staff(n int, efficiency, rating float64) []domain.StaffStat {
	out := make([]domain.StaffStat, n)
	for i := range out {
		out[i] = domain.StaffStat{
			ID:             "s" + string(rune('1'+i)),
			Name:           "Staff",
			Role:           "Technician",
			JobsCompleted:  40,
			Efficiency:     efficiency,
			CustomerRating: rating,
		}
	}
	return out
}

// thrivingClient scores 125: every factor maxed except feature adoption (15).
func thrivingClient() domain.Client {
	return domain.Client{
		ID:           "cl-001",
		Name:         "Serenity Spa",
		Industry:     "Wellness",
		Status:       domain.StatusPaid,
		MonthlyJobs:  250,
		TotalRevenue: 25000,
		HealthScore:  92,
		JoinDate:     fixedNow.AddDate(0, -13, 0),
		LastActivity: fixedNow,
		FeatureUsage: coreFeatures(5, 250),
		StaffStats:   staff(3, 96, 4.9),
		ContactEmail: "owner@serenity.example",
	}
}

// dormantClient scores 7: free tier, no features, no staff, brand new.
func dormantClient() domain.Client {
	return domain.Client{
		ID:           "cl-002",
		Name:         "Quiet Plumbing",
		Industry:     "Plumbing",
		Status:       domain.StatusFreeTier,
		MonthlyJobs:  2,
		HealthScore:  40,
		JoinDate:     daysAgo(10),
		LastActivity: daysAgo(45),
	}
}

// sampleClients is a small mixed book of business, ordered by id.
func sampleClients() []domain.Client {
	return []domain.Client{
		thrivingClient(),
		dormantClient(),
		{
			ID:           "cl-003",
			Name:         "Spark Electric",
			Industry:     "Electrical",
			Status:       domain.StatusTrial,
			MonthlyJobs:  60,
			TotalRevenue: 0,
			HealthScore:  55,
			JoinDate:     daysAgo(20),
			LastActivity: daysAgo(2),
			FeatureUsage: coreFeatures(2, 30),
			ContactEmail: "ops@sparkelectric.example",
		},
		{
			ID:           "cl-004",
			Name:         "Green Lawns",
			Industry:     "Landscaping",
			Status:       domain.StatusPaid,
			MonthlyJobs:  120,
			TotalRevenue: 8000,
			HealthScore:  70,
			JoinDate:     daysAgo(200),
			LastActivity: daysAgo(5),
			FeatureUsage: coreFeatures(3, 60),
			StaffStats:   staff(2, 86, 4.1),
		},
		{
			ID:           "cl-005",
			Name:         "day spa collective",
			Industry:     "Wellness",
			Status:       domain.StatusPaid,
			MonthlyJobs:  30,
			TotalRevenue: 1200,
			HealthScore:  61,
			JoinDate:     daysAgo(100),
			LastActivity: daysAgo(12),
			FeatureUsage: coreFeatures(1, 10),
			StaffStats:   staff(1, 70, 2.5),
		},
		{
			ID:           "cl-006",
			Name:         "Arctic HVAC",
			Industry:     "HVAC",
			Status:       domain.StatusFreeTier,
			MonthlyJobs:  110,
			HealthScore:  48,
			JoinDate:     daysAgo(40),
			LastActivity: fixedNow,
			ContactEmail: "hello@arctic-hvac.example",
		},
	}
}

func ids(clients []domain.Client) []string {
	out := make([]string, len(clients))
	for i, c := range clients {
		out[i] = c.ID
	}
	return out
}
