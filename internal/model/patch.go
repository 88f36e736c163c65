package model

// DealPatch carries a partial update for a deal. Every field is a pointer so
// that "not present in the request body" is distinguishable from a zero value.
// Applying a patch is a shallow merge: a list field replaces the whole list.
type DealPatch struct {
	Slug     *string  `json:"slug"`
	Title    *string  `json:"title"`
	Provider *string  `json:"provider"`
	Price    *float64 `json:"price"`

	OriginalPrice *float64 `json:"originalPrice"`
	Rating        *float64 `json:"rating"`
	Students      *int     `json:"students"`
	Coupon        *string  `json:"coupon"`

	URL         *string `json:"url"`
	Category    *string `json:"category"`
	Subcategory *string `json:"subcategory"`
	ExpiresAt   *string `json:"expiresAt"`

	Image        *string         `json:"image"`
	Description  *string         `json:"description"`
	Content      *string         `json:"content"`
	FAQs         *FAQList        `json:"faqs"`
	Learn        *StringList     `json:"learn"`
	Requirements *StringList     `json:"requirements"`
	Curriculum   *CurriculumList `json:"curriculum"`
	Instructor   *string         `json:"instructor"`
	Duration     *string         `json:"duration"`
	Language     *string         `json:"language"`

	SEOTitle       *string `json:"seoTitle"`
	SEODescription *string `json:"seoDescription"`
	SEOOgImage     *string `json:"seoOgImage"`
	SEOCanonical   *string `json:"seoCanonical"`
	SEONoindex     *bool   `json:"seoNoindex"`
	SEONofollow    *bool   `json:"seoNofollow"`
}

// Apply merges the set fields of the patch into d. The id and lifecycle
// timestamps are owned by the store and cannot be patched.
func (p DealPatch) Apply(d *Deal) {
	if p.Slug != nil {
		d.Slug = *p.Slug
	}
	if p.Title != nil {
		d.Title = *p.Title
	}
	if p.Provider != nil {
		d.Provider = *p.Provider
	}
	if p.Price != nil {
		d.Price = *p.Price
	}
	if p.OriginalPrice != nil {
		d.OriginalPrice = p.OriginalPrice
	}
	if p.Rating != nil {
		d.Rating = p.Rating
	}
	if p.Students != nil {
		d.Students = p.Students
	}
	if p.Coupon != nil {
		d.Coupon = p.Coupon
	}
	if p.URL != nil {
		d.URL = *p.URL
	}
	if p.Category != nil {
		d.Category = *p.Category
	}
	if p.Subcategory != nil {
		d.Subcategory = *p.Subcategory
	}
	if p.ExpiresAt != nil {
		d.ExpiresAt = *p.ExpiresAt
	}
	if p.Image != nil {
		d.Image = *p.Image
	}
	if p.Description != nil {
		d.Description = *p.Description
	}
	if p.Content != nil {
		d.Content = *p.Content
	}
	if p.FAQs != nil {
		d.FAQs = *p.FAQs
	}
	if p.Learn != nil {
		d.Learn = *p.Learn
	}
	if p.Requirements != nil {
		d.Requirements = *p.Requirements
	}
	if p.Curriculum != nil {
		d.Curriculum = *p.Curriculum
	}
	if p.Instructor != nil {
		d.Instructor = *p.Instructor
	}
	if p.Duration != nil {
		d.Duration = *p.Duration
	}
	if p.Language != nil {
		d.Language = *p.Language
	}
	if p.SEOTitle != nil {
		d.SEOTitle = *p.SEOTitle
	}
	if p.SEODescription != nil {
		d.SEODescription = *p.SEODescription
	}
	if p.SEOOgImage != nil {
		d.SEOOgImage = *p.SEOOgImage
	}
	if p.SEOCanonical != nil {
		d.SEOCanonical = *p.SEOCanonical
	}
	if p.SEONoindex != nil {
		d.SEONoindex = *p.SEONoindex
	}
	if p.SEONofollow != nil {
		d.SEONofollow = *p.SEONofollow
	}
}
