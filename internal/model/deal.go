package model

// Deal represents a single course-coupon listing.
//
// JSON field names mirror the public API payload (camelCase); db tags map to
// the deals table columns (snake_case). Optional numeric fields are pointers
// so an absent value survives a round-trip instead of collapsing to zero.
type Deal struct {
	ID       string  `db:"id" json:"id" validate:"required_without=Slug"`
	Slug     string  `db:"slug" json:"slug,omitempty"`
	Title    string  `db:"title" json:"title" validate:"required"`
	Provider string  `db:"provider" json:"provider"`
	Price    float64 `db:"price" json:"price" validate:"gte=0"`

	OriginalPrice *float64 `db:"original_price" json:"originalPrice,omitempty" validate:"omitempty,gte=0"`
	Rating        *float64 `db:"rating" json:"rating,omitempty"`
	Students      *int     `db:"students" json:"students,omitempty"`
	Coupon        *string  `db:"coupon" json:"coupon"`

	URL         string `db:"url" json:"url" validate:"required"`
	Category    string `db:"category" json:"category,omitempty"`
	Subcategory string `db:"subcategory" json:"subcategory,omitempty"`
	ExpiresAt   string `db:"expires_at" json:"expiresAt,omitempty"`

	Image        string         `db:"image" json:"image,omitempty"`
	Description  string         `db:"description" json:"description,omitempty"`
	Content      string         `db:"content" json:"content,omitempty"`
	FAQs         FAQList        `db:"faqs" json:"faqs,omitempty"`
	Learn        StringList     `db:"learn" json:"learn,omitempty"`
	Requirements StringList     `db:"requirements" json:"requirements,omitempty"`
	Curriculum   CurriculumList `db:"curriculum" json:"curriculum,omitempty"`
	Instructor   string         `db:"instructor" json:"instructor,omitempty"`
	Duration     string         `db:"duration" json:"duration,omitempty"`
	Language     string         `db:"language" json:"language,omitempty"`

	CreatedAt string `db:"created_at" json:"createdAt,omitempty"`
	UpdatedAt string `db:"updated_at" json:"updatedAt,omitempty"`

	SEOTitle       string `db:"seo_title" json:"seoTitle,omitempty"`
	SEODescription string `db:"seo_description" json:"seoDescription,omitempty"`
	SEOOgImage     string `db:"seo_og_image" json:"seoOgImage,omitempty"`
	SEOCanonical   string `db:"seo_canonical" json:"seoCanonical,omitempty"`
	SEONoindex     bool   `db:"seo_noindex" json:"seoNoindex,omitempty"`
	SEONofollow    bool   `db:"seo_nofollow" json:"seoNofollow,omitempty"`
}

// FAQ is a question/answer pair attached to a deal page.
type FAQ struct {
	Q string `json:"q"`
	A string `json:"a"`
}

// Lecture is a single entry inside a curriculum section.
type Lecture struct {
	Title    string `json:"title"`
	Duration string `json:"duration,omitempty"`
}

// CurriculumSection groups lectures under a section heading.
type CurriculumSection struct {
	Section  string    `json:"section"`
	Lectures []Lecture `json:"lectures"`
}
