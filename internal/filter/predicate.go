package filter

import (
	"math"
	"strconv"
	"strings"

	"github.com/ougirez/solarscope/internal/domain"
)

// MatchStrategy decides whether rec satisfies the active value of one category.
// It is only consulted when the category has a non-empty value.
type MatchStrategy interface {
	Match(rec domain.FacilityRecord, value any) bool
}

type MatchFunc func(rec domain.FacilityRecord, value any) bool

func (f MatchFunc) Match(rec domain.FacilityRecord, value any) bool {
	return f(rec, value)
}

// Query is everything the predicate looks at besides the record itself.
type Query struct {
	// Scraped gates the whole listing: nothing passes until the first search or scrape.
	Scraped    bool
	SearchTerm string
	Filters    State
}

// Predicate is a conjunction of per-category match strategies.
type Predicate struct {
	strategies map[Category]MatchStrategy
}

// NewPredicate returns the listing predicate with its default strategies. Facility size and
// job title have no strategy: they are surfaced as chips but never narrow the result.
func NewPredicate() *Predicate {
	return &Predicate{strategies: map[Category]MatchStrategy{
		CategoryFacilityType:  FacilityTypeByID{Types: FacilityTypes},
		CategoryVerified:      flag(func(r domain.FacilityRecord) bool { return r.Verified }),
		CategoryLocation:      contains(func(r domain.FacilityRecord) string { return r.Location }),
		CategoryIndustry:      contains(func(r domain.FacilityRecord) string { return r.Company }),
		CategoryEmployeeCount: EmployeeBucketByID{Buckets: EmployeeBuckets},
		CategoryCompanyName:   containsFold(func(r domain.FacilityRecord) string { return r.Company }),
		CategoryVerifiedEmail: flag(func(r domain.FacilityRecord) bool { return r.Emails }),
		CategoryVerifiedPhone: flag(func(r domain.FacilityRecord) bool { return r.PhoneNumbers }),
	}}
}

// With returns a copy of p using s for category c. A nil s detaches the category.
func (p *Predicate) With(c Category, s MatchStrategy) *Predicate {
	strategies := make(map[Category]MatchStrategy, len(p.strategies)+1)
	for k, v := range p.strategies {
		strategies[k] = v
	}
	if s == nil {
		delete(strategies, c)
	} else {
		strategies[c] = s
	}
	return &Predicate{strategies: strategies}
}

func (p *Predicate) Matches(rec domain.FacilityRecord, q Query) bool {
	if !q.Scraped {
		return false
	}

	if q.SearchTerm != "" {
		term := strings.ToLower(q.SearchTerm)
		if !strings.Contains(strings.ToLower(rec.Name), term) &&
			!strings.Contains(strings.ToLower(rec.Company), term) {
			return false
		}
	}

	for c, v := range q.Filters.values {
		s, ok := p.strategies[c]
		if !ok {
			continue
		}
		if !s.Match(rec, v) {
			return false
		}
	}

	return true
}

// Filter returns the records of records that match q, in order.
func (p *Predicate) Filter(records []domain.FacilityRecord, q Query) []domain.FacilityRecord {
	out := make([]domain.FacilityRecord, 0, len(records))
	for _, rec := range records {
		if p.Matches(rec, q) {
			out = append(out, rec)
		}
	}
	return out
}

func flag(field func(domain.FacilityRecord) bool) MatchFunc {
	return func(rec domain.FacilityRecord, value any) bool {
		if on, _ := value.(bool); !on {
			return true
		}
		return field(rec)
	}
}

func contains(field func(domain.FacilityRecord) string) MatchFunc {
	return func(rec domain.FacilityRecord, value any) bool {
		needle, _ := value.(string)
		return strings.Contains(field(rec), needle)
	}
}

func containsFold(field func(domain.FacilityRecord) string) MatchFunc {
	return func(rec domain.FacilityRecord, value any) bool {
		needle, _ := value.(string)
		return strings.Contains(strings.ToLower(field(rec)), strings.ToLower(needle))
	}
}

// FacilityTypes are the selectable facility categories, in selector order.
var FacilityTypes = []string{
	"Manufacturing",
	"Warehouse",
	"Office Building",
	"Retail",
	"Healthcare",
	"Education",
	"Data Center",
	"Hospitality",
	"Distribution Center",
	"Cold Storage",
}

// FacilityTypeByID is a placeholder matcher that buckets records by id instead of reading
// FacilityRecord.FacilityType: a record matches when id mod len(Types) equals the selector
// index mod len(Types). Unknown types have index -1 and never match.
// TODO: replace with a comparison against FacilityRecord.FacilityType once the catalog carries a
// normalized taxonomy.
type FacilityTypeByID struct {
	Types []string
}

func (m FacilityTypeByID) Match(rec domain.FacilityRecord, value any) bool {
	total := len(m.Types)
	if total == 0 {
		return false
	}
	selected, _ := value.(string)
	index := -1
	for i, t := range m.Types {
		if t == selected {
			index = i
			break
		}
	}
	return rec.ID%total == index%total
}

type EmployeeBucket struct {
	Label string
	Min   int
	Max   int // inclusive; negative means unbounded
}

func (b EmployeeBucket) Contains(n int) bool {
	return n >= b.Min && (b.Max < 0 || n <= b.Max)
}

var EmployeeBuckets = []EmployeeBucket{
	{Label: "1-50", Min: 1, Max: 50},
	{Label: "51-200", Min: 51, Max: 200},
	{Label: "201-500", Min: 201, Max: 500},
	{Label: "501-1000", Min: 501, Max: 1000},
	{Label: "1001-5000", Min: 1001, Max: 5000},
	{Label: "5001-10000", Min: 5001, Max: 10000},
	{Label: "10000+", Min: 10001, Max: -1},
}

// SyntheticEmployeeCount is the stand-in head count used by EmployeeBucketByID.
func SyntheticEmployeeCount(id int) int {
	return (id * 10) % 12000
}

// EmployeeBucketByID is a placeholder matcher over SyntheticEmployeeCount rather than
// FacilityRecord.EmployeeCount. Unknown bucket labels never match.
type EmployeeBucketByID struct {
	Buckets []EmployeeBucket
}

func (m EmployeeBucketByID) Match(rec domain.FacilityRecord, value any) bool {
	label, _ := value.(string)
	for _, b := range m.Buckets {
		if b.Label == label {
			return b.Contains(SyntheticEmployeeCount(rec.ID))
		}
	}
	return false
}

// ParseEmployeeCount reads magnitude strings such as "36K", "1.2M" or "850".
func ParseEmployeeCount(s string) (int, bool) {
	s = strings.TrimSuffix(strings.TrimSpace(strings.ReplaceAll(s, ",", "")), "+")
	if s == "" {
		return 0, false
	}
	mult := 1.0
	switch strings.ToUpper(s[len(s)-1:]) {
	case "K":
		mult, s = 1e3, s[:len(s)-1]
	case "M":
		mult, s = 1e6, s[:len(s)-1]
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return int(math.Round(f * mult)), true
}

// EmployeeBucketByCount matches on FacilityRecord.EmployeeCount. It can replace
// EmployeeBucketByID through Predicate.With.
type EmployeeBucketByCount struct {
	Buckets []EmployeeBucket
}

func (m EmployeeBucketByCount) Match(rec domain.FacilityRecord, value any) bool {
	n, ok := ParseEmployeeCount(rec.EmployeeCount)
	if !ok {
		return false
	}
	label, _ := value.(string)
	for _, b := range m.Buckets {
		if b.Label == label {
			return b.Contains(n)
		}
	}
	return false
}
