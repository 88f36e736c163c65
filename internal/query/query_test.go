package query

import (
	"testing"

	"github.com/coursespeak/coursespeak/internal/model"
)

func f(v float64) *float64 { return &v }

func i(v int) *int { return &v }

func sampleDeals() []model.Deal {
	return []model.Deal{
		{ID: "1", Title: "JS Basics", Provider: "Udemy", Price: 0, Category: "Web Development", UpdatedAt: "2025-01-03"},
		{ID: "2", Title: "Python Pro", Provider: "Udemy", Price: 0, Category: "Data Science", UpdatedAt: "2025-01-02"},
		{ID: "3", Title: "Design 101", Provider: "Coursera", Price: 49, Category: "Design", UpdatedAt: "2025-01-01"},
	}
}

func TestApplyProviderFreeOnlyNewest(t *testing.T) {
	res := Apply(sampleDeals(), Params{
		Provider: "udemy",
		FreeOnly: true,
		Sort:     SortNewest,
		Page:     1,
		PageSize: 10,
	})

	if res.Total != 2 {
		t.Fatalf("Total = %d, want 2", res.Total)
	}
	if res.TotalPages != 1 {
		t.Errorf("TotalPages = %d, want 1", res.TotalPages)
	}
	if len(res.Items) != 2 {
		t.Fatalf("len(Items) = %d, want 2", len(res.Items))
	}
	if res.Items[0].ID != "1" || res.Items[1].ID != "2" {
		t.Errorf("item order = [%s %s], want [1 2]", res.Items[0].ID, res.Items[1].ID)
	}
}

func TestFilterFreeOnly(t *testing.T) {
	got := Filter(sampleDeals(), Params{FreeOnly: true})
	for _, d := range got {
		if d.Price != 0 {
			t.Errorf("freeOnly result contains deal %s with price %v", d.ID, d.Price)
		}
	}
	if len(got) != 2 {
		t.Errorf("len = %d, want 2", len(got))
	}
}

func TestFilterProviderCaseInsensitive(t *testing.T) {
	got := Filter(sampleDeals(), Params{Provider: "COURSERA"})
	if len(got) != 1 || got[0].ID != "3" {
		t.Fatalf("provider filter got %v, want single deal 3", got)
	}
}

func TestFilterFreeTextFields(t *testing.T) {
	deals := []model.Deal{
		{ID: "a", Title: "Advanced Go", Provider: "Udemy", Category: "Programming"},
		{ID: "b", Title: "Cooking", Provider: "GoSchool", Category: "Lifestyle"},
		{ID: "c", Title: "Knitting", Provider: "Udemy", Category: "Crafts", Subcategory: "Golang"},
		{ID: "d", Title: "Painting", Provider: "Coursera", Category: "Art"},
	}
	got := Filter(deals, Params{Q: "go"})
	if len(got) != 3 {
		t.Fatalf("q=go matched %d deals, want 3 (title, provider, subcategory)", len(got))
	}
}

func TestFilterCategoryNormalized(t *testing.T) {
	deals := []model.Deal{
		{ID: "a", Title: "A", Provider: "Udemy", Category: "IT &amp; Software"},
		{ID: "b", Title: "B", Provider: "Udemy", Category: "Design"},
		{ID: "c", Title: "C", Provider: "Udemy"}, // no category
	}

	got := Filter(deals, Params{Category: "it-and-software"})
	if len(got) != 1 || got[0].ID != "a" {
		t.Fatalf("slug category filter got %v, want deal a", got)
	}

	got = Filter(deals, Params{Category: "Uncategorized"})
	if len(got) != 1 || got[0].ID != "c" {
		t.Fatalf("uncategorized filter got %v, want deal c", got)
	}
}

func TestFilterLooseSubcategoryMatch(t *testing.T) {
	deals := []model.Deal{
		{ID: "a", Title: "React Deep Dive", Provider: "Udemy", Category: "Web Development", Subcategory: "React"},
		{ID: "b", Title: "React Native", Provider: "Udemy", Category: "Mobile Development", Subcategory: "React"},
		{ID: "c", Title: "SQL Bootcamp", Provider: "Udemy", Category: "Data Science", Subcategory: "Databases"},
	}

	// Category + q: the subcategory containment match admits deal b even
	// though its category does not match the requested one.
	got := Filter(deals, Params{Category: "web-development", Q: "react"})
	ids := map[string]bool{}
	for _, d := range got {
		ids[d.ID] = true
	}
	if !ids["a"] || !ids["b"] {
		t.Fatalf("loose match got %v, want deals a and b", ids)
	}
	if ids["c"] {
		t.Fatalf("loose match unexpectedly admitted deal c")
	}
}

func TestSortPriceAscending(t *testing.T) {
	deals := []model.Deal{
		{ID: "a", Price: 20},
		{ID: "b", Price: 0},
		{ID: "c", Price: 5},
	}
	Sort(deals, SortPrice)
	for idx := 1; idx < len(deals); idx++ {
		if deals[idx-1].Price > deals[idx].Price {
			t.Fatalf("price sort not non-decreasing: %v", deals)
		}
	}
}

func TestSortRatingMissingAsZero(t *testing.T) {
	deals := []model.Deal{
		{ID: "a"},
		{ID: "b", Rating: f(4.8)},
		{ID: "c", Rating: f(4.2)},
	}
	Sort(deals, SortRating)
	if deals[0].ID != "b" || deals[1].ID != "c" || deals[2].ID != "a" {
		t.Fatalf("rating sort order = %s %s %s, want b c a", deals[0].ID, deals[1].ID, deals[2].ID)
	}
}

func TestSortStudentsDescending(t *testing.T) {
	deals := []model.Deal{
		{ID: "a", Students: i(10)},
		{ID: "b"},
		{ID: "c", Students: i(5000)},
	}
	Sort(deals, SortStudents)
	if deals[0].ID != "c" || deals[1].ID != "a" || deals[2].ID != "b" {
		t.Fatalf("students sort order = %s %s %s, want c a b", deals[0].ID, deals[1].ID, deals[2].ID)
	}
}

func TestSortNewestFallsBackToCreatedAt(t *testing.T) {
	deals := []model.Deal{
		{ID: "old", CreatedAt: "2024-06-01T00:00:00Z"},
		{ID: "new", UpdatedAt: "2025-05-01T00:00:00Z"},
		{ID: "mid", CreatedAt: "2025-01-01T00:00:00Z"},
	}
	Sort(deals, SortNewest)
	if deals[0].ID != "new" || deals[1].ID != "mid" || deals[2].ID != "old" {
		t.Fatalf("newest sort order = %s %s %s, want new mid old", deals[0].ID, deals[1].ID, deals[2].ID)
	}
}

func TestSortStable(t *testing.T) {
	deals := []model.Deal{
		{ID: "a", Price: 10},
		{ID: "b", Price: 10},
		{ID: "c", Price: 10},
	}
	Sort(deals, SortPrice)
	if deals[0].ID != "a" || deals[1].ID != "b" || deals[2].ID != "c" {
		t.Fatalf("equal-key sort reordered items: %s %s %s", deals[0].ID, deals[1].ID, deals[2].ID)
	}
}

func TestPaginationInvariant(t *testing.T) {
	var deals []model.Deal
	for n := 0; n < 23; n++ {
		deals = append(deals, model.Deal{ID: string(rune('a' + n)), Price: float64(n)})
	}

	pageSize := 5
	var collected []string
	seen := map[string]bool{}
	page := 1
	for {
		res := Apply(deals, Params{Sort: SortPrice, Page: page, PageSize: pageSize})
		if res.Total != len(deals) {
			t.Fatalf("Total = %d, want %d", res.Total, len(deals))
		}
		if len(res.Items) > pageSize {
			t.Fatalf("page %d has %d items, want <= %d", page, len(res.Items), pageSize)
		}
		if len(res.Items) == 0 {
			break
		}
		for _, d := range res.Items {
			if seen[d.ID] {
				t.Fatalf("duplicate item %s across pages", d.ID)
			}
			seen[d.ID] = true
			collected = append(collected, d.ID)
		}
		if page >= res.TotalPages {
			break
		}
		page++
	}
	if len(collected) != len(deals) {
		t.Fatalf("concatenated pages have %d items, want %d", len(collected), len(deals))
	}
}

func TestApplyClampsPageAndPageSize(t *testing.T) {
	deals := sampleDeals()

	res := Apply(deals, Params{Page: 0, PageSize: 0})
	if res.Page != 1 {
		t.Errorf("Page = %d, want 1", res.Page)
	}
	if res.PageSize != 1 {
		t.Errorf("PageSize = %d, want clamp to 1", res.PageSize)
	}

	res = Apply(deals, Params{Page: 1, PageSize: 100000})
	if res.PageSize != MaxPageSize {
		t.Errorf("PageSize = %d, want cap %d", res.PageSize, MaxPageSize)
	}
}

func TestApplyEmptyResultIsValid(t *testing.T) {
	res := Apply(sampleDeals(), Params{Q: "no such course", Page: 1, PageSize: 10})
	if res.Total != 0 || len(res.Items) != 0 {
		t.Fatalf("expected empty result, got total=%d items=%d", res.Total, len(res.Items))
	}
	if res.TotalPages != 1 {
		t.Errorf("TotalPages = %d, want 1 for empty result", res.TotalPages)
	}
}

func TestApplyPageBeyondEnd(t *testing.T) {
	res := Apply(sampleDeals(), Params{Page: 50, PageSize: 10})
	if len(res.Items) != 0 {
		t.Fatalf("page beyond end returned %d items", len(res.Items))
	}
	if res.Total != 3 {
		t.Errorf("Total = %d, want 3", res.Total)
	}
}
