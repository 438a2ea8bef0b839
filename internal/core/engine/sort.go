package engine

import (
	"cmp"
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/clientpulse/dashboard/internal/core/domain"
)

// ranked carries a client with its live health score so the comparator
// does not rescore on every comparison.
type ranked struct {
	client domain.Client
	health int
}

// Sort returns a sorted copy of clients. Ties keep their input order.
// An empty or unknown key returns the copy unchanged.
//
// healthScore orders by the live scorer value, not the stored field.
func (e *Engine) Sort(clients []domain.Client, cfg domain.SortConfig) []domain.Client {
	out := make([]domain.Client, len(clients))
	copy(out, clients)

	compare := e.comparator(cfg.Key)
	if compare == nil || len(out) < 2 {
		return out
	}
	if cfg.Direction == domain.SortDesc {
		asc := compare
		compare = func(a, b ranked) int { return asc(b, a) }
	}

	rows := make([]ranked, len(out))
	for i, c := range out {
		rows[i] = ranked{client: c}
		if cfg.Key == domain.SortByHealthScore {
			rows[i].health = e.scorer.Value(c)
		}
	}
	slices.SortStableFunc(rows, compare)

	for i, r := range rows {
		out[i] = r.client
	}
	return out
}

func (e *Engine) comparator(key domain.SortKey) func(a, b ranked) int {
	switch key {
	case domain.SortByName:
		return byText(func(c domain.Client) string { return c.Name })
	case domain.SortByID:
		return byText(func(c domain.Client) string { return c.ID })
	case domain.SortByIndustry:
		return byText(func(c domain.Client) string { return c.Industry })
	case domain.SortByStatus:
		return byText(func(c domain.Client) string { return string(c.Status) })
	case domain.SortByMonthlyJobs:
		return func(a, b ranked) int { return cmp.Compare(a.client.MonthlyJobs, b.client.MonthlyJobs) }
	case domain.SortByTotalRevenue:
		return func(a, b ranked) int { return cmp.Compare(a.client.TotalRevenue, b.client.TotalRevenue) }
	case domain.SortByHealthScore:
		return func(a, b ranked) int { return cmp.Compare(a.health, b.health) }
	case domain.SortByJoinDate:
		return func(a, b ranked) int { return a.client.JoinDate.Compare(b.client.JoinDate) }
	case domain.SortByLastActivity:
		return func(a, b ranked) int { return a.client.LastActivity.Compare(b.client.LastActivity) }
	case domain.SortBySubscriptionEnd:
		return func(a, b ranked) int { return a.client.SubscriptionEnd.Compare(b.client.SubscriptionEnd) }
	default:
		return nil
	}
}

// byText compares with a case-insensitive English collator. Collators keep
// internal buffers, so each sort gets its own.
func byText(field func(domain.Client) string) func(a, b ranked) int {
	col := collate.New(language.English, collate.IgnoreCase)
	return func(a, b ranked) int {
		return col.CompareString(field(a.client), field(b.client))
	}
}
