package engine

import (
	"math"

	"github.com/clientpulse/dashboard/internal/core/domain"
)

// baselineDays is the period the stored revenue and job figures represent.
const baselineDays = 30

// DateRangeMultiplier scales flow metrics to the selected window length,
// treating the stored figures as a 30-day baseline. It is 1 when either
// bound is missing and 0 for inverted ranges.
func DateRangeMultiplier(r domain.DateRange) float64 {
	if !r.Bounded() {
		return 1
	}
	days := math.Ceil(r.End.Sub(*r.Start).Hours() / 24)
	if days <= 0 {
		return 0
	}
	return days / baselineDays
}

// Aggregate filters clients and summarises the matches for the KPI cards.
// Revenue and jobs are scaled by DateRangeMultiplier; the average health is
// taken from the live scorer.
func (e *Engine) Aggregate(clients []domain.Client, filters domain.FilterState) domain.KPISummary {
	matched := e.Filter(clients, filters)
	mult := DateRangeMultiplier(filters.DateRange)

	sum := domain.KPISummary{
		TotalClients: len(matched),
		Multiplier:   mult,
	}
	if len(matched) == 0 {
		return sum
	}

	var revenue float64
	var jobs, health int
	for _, c := range matched {
		if c.Status == domain.StatusPaid {
			sum.ActiveSubscriptions++
		}
		revenue += c.TotalRevenue
		jobs += c.MonthlyJobs
		health += e.scorer.Value(c)
	}

	sum.TotalRevenue = revenue * mult
	sum.MonthlyJobs = float64(jobs) * mult
	sum.AverageHealthScore = float64(health) / float64(len(matched))
	return sum
}
