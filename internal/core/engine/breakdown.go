package engine

import (
	"cmp"
	"slices"

	"github.com/clientpulse/dashboard/internal/core/domain"
)

// Breakdown counts clients per value of dimension, largest group first and
// ties by name. Unknown dimensions yield an empty series.
func (e *Engine) Breakdown(clients []domain.Client, dim domain.BreakdownDimension) []domain.BreakdownItem {
	var label func(domain.Client) string
	switch dim {
	case domain.BreakdownIndustry:
		label = func(c domain.Client) string { return c.Industry }
	case domain.BreakdownStatus:
		label = func(c domain.Client) string { return string(c.Status) }
	case domain.BreakdownHealth:
		label = func(c domain.Client) string { return string(Classify(e.scorer.Value(c))) }
	default:
		return []domain.BreakdownItem{}
	}

	counts := make(map[string]int)
	for _, c := range clients {
		counts[label(c)]++
	}

	items := make([]domain.BreakdownItem, 0, len(counts))
	for name, n := range counts {
		items = append(items, domain.BreakdownItem{Name: name, Value: n})
	}
	slices.SortFunc(items, func(a, b domain.BreakdownItem) int {
		if c := cmp.Compare(b.Value, a.Value); c != 0 {
			return c
		}
		return cmp.Compare(a.Name, b.Name)
	})
	return items
}
