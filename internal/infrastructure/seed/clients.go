// Package seed provides the built-in sample book of business used when no
// external client source is configured.
package seed

import (
	"time"

	"github.com/clientpulse/dashboard/internal/core/domain"
)

// profile is the compact form of a sample client; dates are offsets in days
// from the reference time so the sample never ages out.
type profile struct {
	id, name, industry string
	status             domain.SubscriptionStatus
	jobs               int
	revenue            float64
	stored             int
	joined, active     int // days ago
	subscriptionDays   int // days until renewal, negative if lapsed
	features           []feature
	staff              []domain.StaffStat
	email, phone       string
	notes              string
}

type feature struct {
	name     string
	usage    int
	category domain.FeatureCategory
}

var catalogue = map[string]domain.FeatureCategory{
	"Scheduling":     domain.FeatureCore,
	"Invoicing":      domain.FeatureCore,
	"Customer CRM":   domain.FeatureCore,
	"Route Planning": domain.FeatureAdvanced,
	"Inventory":      domain.FeatureAdvanced,
	"Marketing":      domain.FeaturePremium,
	"Payroll":        domain.FeaturePremium,
}

func use(pairs ...any) []feature {
	out := make([]feature, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		name := pairs[i].(string)
		out = append(out, feature{name: name, usage: pairs[i+1].(int), category: catalogue[name]})
	}
	return out
}

func crew(prefix string, stats ...[3]float64) []domain.StaffStat {
	roles := []string{"Technician", "Dispatcher", "Manager", "Apprentice"}
	out := make([]domain.StaffStat, len(stats))
	for i, s := range stats {
		out[i] = domain.StaffStat{
			ID:             prefix + "-s" + string(rune('1'+i)),
			Name:           prefix + " staff " + string(rune('A'+i)),
			Role:           roles[i%len(roles)],
			JobsCompleted:  int(s[0]),
			Efficiency:     s[1],
			CustomerRating: s[2],
		}
	}
	return out
}

var profiles = []profile{
	{
		id: "cl-001", name: "Serenity Day Spa", industry: "Wellness", status: domain.StatusPaid,
		jobs: 240, revenue: 24500, stored: 95, joined: 540, active: 0, subscriptionDays: 200,
		features: use("Scheduling", 320, "Invoicing", 210, "Customer CRM", 180, "Marketing", 90),
		staff:    crew("cl-001", [3]float64{120, 96, 4.9}, [3]float64{98, 93, 4.8}, [3]float64{77, 91, 4.7}),
		email:    "owner@serenityspa.example", phone: "+1 555 0101",
		notes: "Flagship account, renewed annually.",
	},
	{
		id: "cl-002", name: "Brightline Electrical", industry: "Electrical", status: domain.StatusPaid,
		jobs: 130, revenue: 11800, stored: 82, joined: 300, active: 2, subscriptionDays: 65,
		features: use("Scheduling", 140, "Invoicing", 120, "Route Planning", 60),
		staff:    crew("cl-002", [3]float64{64, 88, 4.4}, [3]float64{51, 84, 4.2}),
		email:    "accounts@brightline.example", phone: "+1 555 0102",
	},
	{
		id: "cl-003", name: "Green Acre Landscaping", industry: "Landscaping", status: domain.StatusPaid,
		jobs: 85, revenue: 6400, stored: 74, joined: 210, active: 4, subscriptionDays: 30,
		features: use("Scheduling", 70, "Route Planning", 45, "Invoicing", 30),
		staff:    crew("cl-003", [3]float64{40, 82, 4.1}),
		email:    "hello@greenacre.example",
	},
	{
		id: "cl-004", name: "Polar Air HVAC", industry: "HVAC", status: domain.StatusFreeTier,
		jobs: 115, revenue: 0, stored: 55, joined: 45, active: 0, subscriptionDays: 0,
		features: use("Scheduling", 60),
		email:    "dispatch@polarair.example",
		notes:    "Heavy free-tier usage, upgrade conversation pending.",
	},
	{
		id: "cl-005", name: "Spark & Wire", industry: "Electrical", status: domain.StatusTrial,
		jobs: 40, revenue: 0, stored: 58, joined: 12, active: 1, subscriptionDays: 18,
		features: use("Scheduling", 25, "Invoicing", 10),
		email:    "ops@sparkwire.example",
	},
	{
		id: "cl-006", name: "Quiet Pipes Plumbing", industry: "Plumbing", status: domain.StatusFreeTier,
		jobs: 3, revenue: 0, stored: 35, joined: 20, active: 40, subscriptionDays: 0,
		email: "contact@quietpipes.example",
	},
	{
		id: "cl-007", name: "Harbor Cleaning Co", industry: "Cleaning", status: domain.StatusPaid,
		jobs: 25, revenue: 1500, stored: 62, joined: 120, active: 13, subscriptionDays: -5,
		features: use("Scheduling", 8),
		staff:    crew("cl-007", [3]float64{12, 68, 3.1}, [3]float64{9, 72, 2.9}),
		email:    "admin@harborclean.example", phone: "+1 555 0107",
		notes:    "Payment failed last cycle.",
	},
	{
		id: "cl-008", name: "Lumen Beauty Studio", industry: "Wellness", status: domain.StatusTrial,
		jobs: 70, revenue: 0, stored: 66, joined: 25, active: 3, subscriptionDays: 5,
		features: use("Scheduling", 90, "Customer CRM", 40, "Marketing", 15),
		staff:    crew("cl-008", [3]float64{30, 90, 4.6}),
		email:    "studio@lumenbeauty.example",
	},
	{
		id: "cl-009", name: "Summit Roofing", industry: "Roofing", status: domain.StatusPaid,
		jobs: 55, revenue: 9200, stored: 79, joined: 400, active: 6, subscriptionDays: 120,
		features: use("Scheduling", 50, "Invoicing", 60, "Inventory", 30, "Payroll", 22),
		staff:    crew("cl-009", [3]float64{28, 86, 4.3}, [3]float64{27, 80, 4.0}),
		email:    "office@summitroofing.example",
	},
	{
		id: "cl-010", name: "Fresh Paws Grooming", industry: "Pet Care", status: domain.StatusPaid,
		jobs: 160, revenue: 14200, stored: 88, joined: 700, active: 1, subscriptionDays: 300,
		features: use("Scheduling", 230, "Customer CRM", 150, "Invoicing", 140, "Marketing", 60, "Inventory", 40),
		staff:    crew("cl-010", [3]float64{80, 94, 4.8}, [3]float64{76, 92, 4.7}),
		email:    "bookings@freshpaws.example", phone: "+1 555 0110",
	},
	{
		id: "cl-011", name: "Oakline Carpentry", industry: "Carpentry", status: domain.StatusFreeTier,
		jobs: 12, revenue: 0, stored: 41, joined: 95, active: 18, subscriptionDays: 0,
		features: use("Invoicing", 6),
		email:    "oakline@carpentry.example",
	},
	{
		id: "cl-012", name: "Metro Pest Control", industry: "Pest Control", status: domain.StatusPaid,
		jobs: 95, revenue: 4300, stored: 70, joined: 180, active: 8, subscriptionDays: 45,
		features: use("Scheduling", 110, "Route Planning", 75),
		staff:    crew("cl-012", [3]float64{50, 79, 3.8}),
		email:    "service@metropest.example",
	},
}

// Clients returns the sample clients with dates anchored to now, ordered by id.
// Each call returns fresh values.
func Clients(now time.Time) []domain.Client {
	now = now.UTC().Truncate(time.Second)
	days := func(n int) time.Time { return now.AddDate(0, 0, -n) }

	out := make([]domain.Client, len(profiles))
	for i, p := range profiles {
		c := domain.Client{
			ID:           p.id,
			Name:         p.name,
			Industry:     p.industry,
			Status:       p.status,
			MonthlyJobs:  p.jobs,
			TotalRevenue: p.revenue,
			HealthScore:  p.stored,
			JoinDate:     days(p.joined),
			LastActivity: days(p.active),
			ContactEmail: p.email,
			ContactPhone: p.phone,
			Notes:        p.notes,
			StaffStats:   append([]domain.StaffStat(nil), p.staff...),
		}
		if p.subscriptionDays != 0 {
			c.SubscriptionEnd = now.AddDate(0, 0, p.subscriptionDays)
		}
		for _, f := range p.features {
			c.FeatureUsage = append(c.FeatureUsage, domain.FeatureUsage{
				Name:         f.name,
				UsageCount:   f.usage,
				LastUsed:     days(p.active),
				AdoptionRate: adoption(f.usage, p.jobs),
				Category:     f.category,
			})
		}
		out[i] = c
	}
	return out
}

// adoption approximates the share of jobs that touched a feature, capped at 1.
func adoption(usage, jobs int) float64 {
	if jobs == 0 {
		return 0
	}
	return min(float64(usage)/float64(jobs), 1)
}
