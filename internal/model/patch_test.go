package model

import "testing"

func strp(s string) *string { return &s }

func floatp(v float64) *float64 { return &v }

func TestDealPatchApply(t *testing.T) {
	deal := Deal{
		ID:        "1",
		Slug:      "old-slug",
		Title:     "Old Title",
		Provider:  "Udemy",
		Price:     25,
		URL:       "https://example.com/old",
		Category:  "Design",
		Learn:     StringList{"a", "b"},
		CreatedAt: "2025-01-01T00:00:00Z",
		UpdatedAt: "2025-01-01T00:00:00Z",
	}

	patch := DealPatch{
		Title: strp("New Title"),
		Price: floatp(0),
		Learn: &StringList{"c"},
	}
	patch.Apply(&deal)

	if deal.Title != "New Title" {
		t.Errorf("Title = %q, want New Title", deal.Title)
	}
	if deal.Price != 0 {
		t.Errorf("Price = %v, explicit zero was not applied", deal.Price)
	}
	if len(deal.Learn) != 1 || deal.Learn[0] != "c" {
		t.Errorf("Learn = %v, list field should be replaced wholesale", deal.Learn)
	}

	// Absent fields stay untouched.
	if deal.Slug != "old-slug" || deal.Provider != "Udemy" || deal.Category != "Design" {
		t.Errorf("untouched fields changed: %+v", deal)
	}
	if deal.ID != "1" || deal.CreatedAt != "2025-01-01T00:00:00Z" {
		t.Errorf("id or createdAt changed: %+v", deal)
	}
}

func TestDealPatchApplyEmpty(t *testing.T) {
	deal := Deal{ID: "1", Title: "Keep", Price: 10}
	DealPatch{}.Apply(&deal)
	if deal.Title != "Keep" || deal.Price != 10 {
		t.Errorf("empty patch changed the record: %+v", deal)
	}
}

func TestDerivedStatsDeterministic(t *testing.T) {
	seeds := []string{"go-course", "python-bootcamp", "x", ""}
	for _, seed := range seeds {
		r1, r2 := DerivedRating(seed), DerivedRating(seed)
		if r1 != r2 {
			t.Errorf("DerivedRating(%q) not deterministic: %v vs %v", seed, r1, r2)
		}
		if r1 < 4.2 || r1 > 4.9 {
			t.Errorf("DerivedRating(%q) = %v, want within [4.2, 4.9]", seed, r1)
		}
		s1, s2 := DerivedStudents(seed), DerivedStudents(seed)
		if s1 != s2 {
			t.Errorf("DerivedStudents(%q) not deterministic: %d vs %d", seed, s1, s2)
		}
		if s1 < 1200 || s1 >= 1200+87000 {
			t.Errorf("DerivedStudents(%q) = %d, out of range", seed, s1)
		}
	}
}

func TestDisplaySeed(t *testing.T) {
	if got := (Deal{ID: "9", Slug: "my-slug"}).DisplaySeed(); got != "my-slug" {
		t.Errorf("DisplaySeed with slug = %q, want my-slug", got)
	}
	if got := (Deal{ID: "9"}).DisplaySeed(); got != "9" {
		t.Errorf("DisplaySeed without slug = %q, want 9", got)
	}
}
