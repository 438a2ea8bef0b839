package domain

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrInvalidSortKey       = errors.New("invalid sort key")
	ErrInvalidSortDirection = errors.New("invalid sort direction")
	ErrInvalidDateRange     = errors.New("invalid date range")
)

// DateRange bounds a join-date window. A nil bound is open on that side.
type DateRange struct {
	Start *time.Time `json:"start,omitempty"`
	End   *time.Time `json:"end,omitempty"`
}

// Bounded reports whether both ends of the range are set.
func (r DateRange) Bounded() bool {
	return r.Start != nil && r.End != nil
}

// Validate rejects ranges whose start is after their end.
func (r DateRange) Validate() error {
	if r.Bounded() && r.Start.After(*r.End) {
		return ErrInvalidDateRange
	}
	return nil
}

// FilterState is the set of user-selected constraints over a client list.
// An empty slice on any dimension means "no filter" on that dimension.
type FilterState struct {
	Search           string               `json:"search"`
	Industries       []string             `json:"industries"`
	Statuses         []SubscriptionStatus `json:"statuses"`
	HealthCategories []HealthCategory     `json:"health_categories"`
	DateRange        DateRange            `json:"date_range"`
}

// SortKey names a client field the list can be ordered by.
type SortKey string

const (
	SortByName            SortKey = "name"
	SortByID              SortKey = "id"
	SortByIndustry        SortKey = "industry"
	SortByStatus          SortKey = "status"
	SortByMonthlyJobs     SortKey = "monthlyJobs"
	SortByTotalRevenue    SortKey = "totalRevenue"
	SortByHealthScore     SortKey = "healthScore"
	SortByJoinDate        SortKey = "joinDate"
	SortByLastActivity    SortKey = "lastActivity"
	SortBySubscriptionEnd SortKey = "subscriptionEnd"
)

// SortKeys lists every sortable field.
var SortKeys = []SortKey{
	SortByName, SortByID, SortByIndustry, SortByStatus, SortByMonthlyJobs,
	SortByTotalRevenue, SortByHealthScore, SortByJoinDate, SortByLastActivity,
	SortBySubscriptionEnd,
}

var sortKeys = map[string]SortKey{}

func init() {
	for _, k := range SortKeys {
		sortKeys[strings.ToLower(string(k))] = k
	}
}

// ParseSortKey resolves a case-insensitive field name. The empty string
// yields the empty key, meaning "keep input order".
func ParseSortKey(s string) (SortKey, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", nil
	}
	k, ok := sortKeys[strings.ToLower(s)]
	if !ok {
		return "", ErrInvalidSortKey
	}
	return k, nil
}

// SortDirection is ascending or descending.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// ParseSortDirection defaults to ascending when s is empty.
func ParseSortDirection(s string) (SortDirection, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "asc", "ascending":
		return SortAsc, nil
	case "desc", "descending":
		return SortDesc, nil
	default:
		return "", ErrInvalidSortDirection
	}
}

// SortConfig pairs a field with a direction. An empty Key leaves order untouched.
type SortConfig struct {
	Key       SortKey       `json:"key"`
	Direction SortDirection `json:"direction"`
}
