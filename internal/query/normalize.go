package query

import (
	"html"
	"regexp"
	"strings"
)

// Category names arrive as free text from several sources (admin input,
// upstream sync, URL slugs) and the same normalization has to be applied
// wherever categories are grouped, filtered or slugified, or category pages
// and counts drift apart.

// Uncategorized is the bucket for deals without a category value.
const Uncategorized = "uncategorized"

var (
	nonWordRe = regexp.MustCompile(`[^\w\s-]`)
	spaceRe   = regexp.MustCompile(`\s+`)
	multiDash = regexp.MustCompile(`-+`)
)

// NormalizeCategory maps a raw category value to its canonical comparison
// form: HTML entities decoded, "&" replaced by " and ", punctuation stripped,
// hyphens treated as spaces, whitespace collapsed, lowercased. The function is
// idempotent and accepts both display names ("IT & Software") and URL slugs
// ("it-and-software"), normalizing both to "it and software". Empty input
// buckets under Uncategorized.
func NormalizeCategory(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return Uncategorized
	}
	v := html.UnescapeString(raw)
	v = strings.ReplaceAll(v, "&", " and ")
	v = nonWordRe.ReplaceAllString(v, "")
	v = strings.ReplaceAll(v, "-", " ")
	v = spaceRe.ReplaceAllString(v, " ")
	return strings.ToLower(strings.TrimSpace(v))
}

// CategorySlug turns a raw category value into its URL slug form
// ("IT & Software" -> "it-and-software").
func CategorySlug(raw string) string {
	norm := NormalizeCategory(raw)
	slug := strings.ReplaceAll(norm, " ", "-")
	return multiDash.ReplaceAllString(slug, "-")
}

// normalizeName is the lighter normalization used for subcategory matching:
// entities decoded, whitespace collapsed, lowercased, but "&" and punctuation
// left alone.
func normalizeName(raw string) string {
	v := html.UnescapeString(raw)
	v = spaceRe.ReplaceAllString(v, " ")
	return strings.ToLower(strings.TrimSpace(v))
}
