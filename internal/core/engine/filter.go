package engine

import (
	"slices"
	"strings"

	"github.com/clientpulse/dashboard/internal/core/domain"
)

// Predicate reports whether a client passes one filter dimension.
type Predicate func(domain.Client) bool

// Engine runs filter, sort and aggregate queries over in-memory client
// collections. It never mutates its inputs.
type Engine struct {
	scorer *Scorer
	cache  *ResultCache
}

// Option configures an Engine.
type Option func(*Engine)

// WithScorer sets the scorer used for health predicates, sorting and KPIs.
func WithScorer(s *Scorer) Option {
	return func(e *Engine) { e.scorer = s }
}

// WithCache enables filter result memoization bounded to size entries,
// each served for at most DefaultCacheTTL.
func WithCache(size int) Option {
	return func(e *Engine) { e.cache = NewResultCache(size, DefaultCacheTTL) }
}

// New builds an Engine. Without options it scores against time.Now and
// does not cache.
func New(opts ...Option) *Engine {
	e := &Engine{}
	for _, opt := range opts {
		opt(e)
	}
	if e.scorer == nil {
		e.scorer = NewScorer(nil)
	}
	return e
}

// Scorer exposes the engine's scorer.
func (e *Engine) Scorer() *Scorer {
	return e.scorer
}

// Purge drops memoized results. Call it whenever the client dataset changes,
// since cache keys only track the collection size.
func (e *Engine) Purge() {
	if e.cache != nil {
		e.cache.Purge()
	}
}

// Filter returns the clients matching every active predicate, in input order.
func (e *Engine) Filter(clients []domain.Client, filters domain.FilterState) []domain.Client {
	if len(clients) == 0 {
		return []domain.Client{}
	}

	// Health categories move with the scorer clock, so those results are
	// never memoized.
	cacheable := e.cache != nil && len(filters.HealthCategories) == 0

	var key string
	if cacheable {
		key = CacheKey(len(clients), filters)
		if hit, ok := e.cache.Get(key); ok {
			return hit
		}
	}

	preds := e.Predicates(filters)
	out := make([]domain.Client, 0, len(clients))
	for _, c := range clients {
		if matchAll(preds, c) {
			out = append(out, c)
		}
	}

	if cacheable {
		e.cache.Add(key, out)
	}
	return out
}

// Predicates builds the active predicates for filters, cheapest and most
// selective first. Inactive dimensions contribute nothing.
func (e *Engine) Predicates(filters domain.FilterState) []Predicate {
	candidates := []Predicate{
		SearchPredicate(filters.Search),
		IndustryPredicate(filters.Industries),
		StatusPredicate(filters.Statuses),
		HealthPredicate(e.scorer, filters.HealthCategories),
		DateRangePredicate(filters.DateRange),
	}
	return slices.DeleteFunc(candidates, func(p Predicate) bool { return p == nil })
}

func matchAll(preds []Predicate, c domain.Client) bool {
	for _, p := range preds {
		if !p(c) {
			return false
		}
	}
	return true
}

func normalizeTerm(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// SearchPredicate matches a case-insensitive substring of the name, id,
// contact email or industry. A blank term is inactive.
func SearchPredicate(term string) Predicate {
	term = normalizeTerm(term)
	if term == "" {
		return nil
	}
	return func(c domain.Client) bool {
		for _, field := range [...]string{c.Name, c.ID, c.ContactEmail, c.Industry} {
			if strings.Contains(strings.ToLower(field), term) {
				return true
			}
		}
		return false
	}
}

// IndustryPredicate requires membership in industries. Empty is inactive.
func IndustryPredicate(industries []string) Predicate {
	return memberOf(industries, func(c domain.Client) string { return c.Industry })
}

// StatusPredicate requires membership in statuses. Empty is inactive.
func StatusPredicate(statuses []domain.SubscriptionStatus) Predicate {
	return memberOf(statuses, func(c domain.Client) domain.SubscriptionStatus { return c.Status })
}

// HealthPredicate requires the scored category to be one of cats.
// Empty is inactive.
func HealthPredicate(s *Scorer, cats []domain.HealthCategory) Predicate {
	return memberOf(cats, func(c domain.Client) domain.HealthCategory { return Classify(s.Value(c)) })
}

// DateRangePredicate requires the join date to fall inside r, bounds
// inclusive. A range with no bounds is inactive.
func DateRangePredicate(r domain.DateRange) Predicate {
	if r.Start == nil && r.End == nil {
		return nil
	}
	return func(c domain.Client) bool {
		if r.Start != nil && c.JoinDate.Before(*r.Start) {
			return false
		}
		if r.End != nil && c.JoinDate.After(*r.End) {
			return false
		}
		return true
	}
}

func memberOf[T comparable](set []T, field func(domain.Client) T) Predicate {
	if len(set) == 0 {
		return nil
	}
	allowed := make(map[T]struct{}, len(set))
	for _, v := range set {
		allowed[v] = struct{}{}
	}
	return func(c domain.Client) bool {
		_, ok := allowed[field(c)]
		return ok
	}
}
