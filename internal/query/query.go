package query

import (
	"sort"
	"strings"
	"time"

	"github.com/coursespeak/coursespeak/internal/model"
)

// Sort keys accepted by Params.Sort.
const (
	SortNewest   = "newest"  // updatedAt, falling back to createdAt, then expiresAt, descending
	SortUpdated  = "updated" // updatedAt descending, missing treated as epoch
	SortRating   = "rating"
	SortStudents = "students"
	SortPrice    = "price"
)

// MaxPageSize caps pageSize on every listing surface.
const MaxPageSize = 100

// Params are the recognized filter/sort/page options for one listing request.
type Params struct {
	Q        string
	Category string
	Provider string
	Sort     string
	FreeOnly bool
	Page     int
	PageSize int
}

// Result is one bounded page of the filtered and sorted collection.
type Result struct {
	Items      []model.Deal `json:"items"`
	Total      int          `json:"total"`
	Page       int          `json:"page"`
	PageSize   int          `json:"pageSize"`
	TotalPages int          `json:"totalPages"`
}

// Apply runs the full pipeline over the in-memory collection: filter, stable
// sort, page slice. It is a pure function of its inputs; an empty result is a
// valid outcome, never an error.
func Apply(all []model.Deal, p Params) Result {
	p = p.clamped()

	list := Filter(all, p)
	Sort(list, p.Sort)

	total := len(list)
	totalPages := (total + p.PageSize - 1) / p.PageSize
	if totalPages < 1 {
		totalPages = 1
	}
	start := (p.Page - 1) * p.PageSize
	if start > total {
		start = total
	}
	end := start + p.PageSize
	if end > total {
		end = total
	}

	return Result{
		Items:      list[start:end],
		Total:      total,
		Page:       p.Page,
		PageSize:   p.PageSize,
		TotalPages: totalPages,
	}
}

func (p Params) clamped() Params {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = 1
	}
	if p.PageSize > MaxPageSize {
		p.PageSize = MaxPageSize
	}
	return p
}

// Filter returns the deals matching every active filter. The combined
// category+q rule is deliberately loose: a subcategory containment match (in
// either direction) admits a deal even when its category does not match the
// requested one. Category browsing relies on that to surface subcategory
// chips; do not tighten it.
func Filter(all []model.Deal, p Params) []model.Deal {
	term := strings.ToLower(strings.TrimSpace(p.Q))
	wantCat := ""
	if strings.TrimSpace(p.Category) != "" {
		wantCat = NormalizeCategory(p.Category)
	}
	wantProv := strings.ToLower(strings.TrimSpace(p.Provider))

	out := make([]model.Deal, 0, len(all))
	for _, d := range all {
		if term != "" && !matchesTerm(d, term) {
			continue
		}
		if !matchesCategory(d, wantCat, term) {
			continue
		}
		if wantProv != "" && strings.ToLower(d.Provider) != wantProv {
			continue
		}
		if p.FreeOnly && d.Price != 0 {
			continue
		}
		out = append(out, d)
	}
	return out
}

func matchesTerm(d model.Deal, term string) bool {
	return strings.Contains(strings.ToLower(d.Title), term) ||
		strings.Contains(strings.ToLower(d.Provider), term) ||
		strings.Contains(strings.ToLower(d.Category), term) ||
		strings.Contains(strings.ToLower(d.Subcategory), term)
}

func matchesCategory(d model.Deal, wantCat, term string) bool {
	if wantCat == "" {
		return true
	}
	if NormalizeCategory(d.Category) == wantCat {
		return true
	}
	if term != "" {
		sub := normalizeName(d.Subcategory)
		if sub != "" && (strings.Contains(sub, term) || strings.Contains(term, sub) || sub == term) {
			return true
		}
	}
	return false
}

// Sort orders the list in place by the given key using a stable sort, so
// repeated calls over unchanged data keep ties in the same relative order.
func Sort(items []model.Deal, key string) {
	switch key {
	case SortUpdated:
		sort.SliceStable(items, func(i, j int) bool {
			return parseTime(items[i].UpdatedAt).After(parseTime(items[j].UpdatedAt))
		})
	case SortRating:
		sort.SliceStable(items, func(i, j int) bool {
			return floatOrZero(items[i].Rating) > floatOrZero(items[j].Rating)
		})
	case SortStudents:
		sort.SliceStable(items, func(i, j int) bool {
			return intOrZero(items[i].Students) > intOrZero(items[j].Students)
		})
	case SortPrice:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].Price < items[j].Price
		})
	case SortNewest:
		fallthrough
	default:
		sort.SliceStable(items, func(i, j int) bool {
			return newestKey(items[i]).After(newestKey(items[j]))
		})
	}
}

// newestKey is the one canonical freshness rule: updatedAt, falling back to
// createdAt, falling back to expiresAt. Missing everything sorts as the epoch.
func newestKey(d model.Deal) time.Time {
	if t := parseTime(d.UpdatedAt); !t.IsZero() {
		return t
	}
	if t := parseTime(d.CreatedAt); !t.IsZero() {
		return t
	}
	return parseTime(d.ExpiresAt)
}

func parseTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t
	}
	// Date-only values ("2025-01-03") appear in older records.
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t
	}
	return time.Time{}
}

func floatOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

func intOrZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}
