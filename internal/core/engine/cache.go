package engine

import (
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/clientpulse/dashboard/internal/core/domain"
)

const (
	// DefaultCacheSize bounds the number of memoized filter results.
	DefaultCacheSize = 100
	// DefaultCacheTTL bounds how long a memoized result is served.
	DefaultCacheTTL = time.Minute
)

// ResultCache memoizes filter results keyed by CacheKey. It is safe for
// concurrent use.
type ResultCache struct {
	entries *expirable.LRU[string, []domain.Client]
}

// NewResultCache returns a cache holding at most size results for at most
// ttl each. Non-positive values fall back to the defaults.
func NewResultCache(size int, ttl time.Duration) *ResultCache {
	if size <= 0 {
		size = DefaultCacheSize
	}
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &ResultCache{entries: expirable.NewLRU[string, []domain.Client](size, nil, ttl)}
}

// Get returns a copy of the cached result for key.
func (c *ResultCache) Get(key string) ([]domain.Client, bool) {
	v, ok := c.entries.Get(key)
	if !ok {
		return nil, false
	}
	return slices.Clone(v), true
}

// Add stores a copy of result under key, evicting the least recently used
// entry when full.
func (c *ResultCache) Add(key string, result []domain.Client) {
	c.entries.Add(key, slices.Clone(result))
}

// Len reports the number of cached results.
func (c *ResultCache) Len() int {
	return c.entries.Len()
}

// Purge drops every cached result.
func (c *ResultCache) Purge() {
	c.entries.Purge()
}

// CacheKey normalizes the input size and filter fields into a stable key.
// Multi-value fields are sorted so selection order does not matter.
func CacheKey(n int, f domain.FilterState) string {
	var b strings.Builder
	b.WriteString("n=")
	b.WriteString(strconv.Itoa(n))
	b.WriteString("|q=")
	b.WriteString(normalizeTerm(f.Search))

	writeSorted(&b, "|ind=", f.Industries)
	writeSorted(&b, "|st=", f.Statuses)
	writeSorted(&b, "|hc=", f.HealthCategories)

	b.WriteString("|from=")
	writeTime(&b, f.DateRange.Start)
	b.WriteString("|to=")
	writeTime(&b, f.DateRange.End)
	return b.String()
}

func writeSorted[T ~string](b *strings.Builder, label string, vals []T) {
	b.WriteString(label)
	sorted := slices.Clone(vals)
	slices.Sort(sorted)
	for i, v := range sorted {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(string(v))
	}
}

func writeTime(b *strings.Builder, t *time.Time) {
	if t == nil {
		return
	}
	b.WriteString(strconv.FormatInt(t.UnixNano(), 10))
}
