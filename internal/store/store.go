package store

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/coursespeak/coursespeak/internal/model"
)

// ErrNotFound is returned when the requested deal id is absent.
var ErrNotFound = errors.New("deal not found")

// ErrExists is returned when creating a deal whose id is already taken.
// Creating must never silently overwrite a different record.
var ErrExists = errors.New("deal already exists")

// Store is the single source of truth for the deal collection. Two backends
// implement it: a JSON document on disk and a Postgres table. The backend is
// chosen once at startup from configuration.
type Store interface {
	// ReadAll returns the full collection. Order is whatever the backend
	// returns; callers needing a specific order sort explicitly.
	ReadAll(ctx context.Context) ([]model.Deal, error)
	// GetByID returns the deal with the exact id, or ErrNotFound.
	GetByID(ctx context.Context, id string) (*model.Deal, error)
	// Create fills defaults for missing fields, persists and returns the
	// stored record. Returns ErrExists when the id is already taken.
	Create(ctx context.Context, deal model.Deal) (*model.Deal, error)
	// Update shallow-merges the patch into the existing record, bumps
	// updatedAt, persists and returns the merged record.
	Update(ctx context.Context, id string, patch model.DealPatch) (*model.Deal, error)
	// Delete removes the record, or returns ErrNotFound.
	Delete(ctx context.Context, id string) error
}

// timeLayout is the ISO-8601 format used for createdAt/updatedAt. Nanosecond
// precision keeps updatedAt strictly increasing across back-to-back updates.
const timeLayout = time.RFC3339Nano

// Now returns the current timestamp in the store's wire format.
func Now() string {
	return time.Now().UTC().Format(timeLayout)
}

// applyCreateDefaults fills the defaults shared by both backends: id from the
// current unix-millis, slug from the title, category "General", price left at
// its zero value, and both lifecycle timestamps set to now.
func applyCreateDefaults(d *model.Deal) {
	if d.ID == "" {
		d.ID = strconv.FormatInt(time.Now().UnixMilli(), 10)
	}
	if d.Title == "" {
		d.Title = "Untitled Deal"
	}
	if d.Slug == "" {
		d.Slug = SlugifyTitle(d.Title)
	}
	if d.Provider == "" {
		d.Provider = "Unknown"
	}
	if d.URL == "" {
		d.URL = "#"
	}
	if d.Category == "" {
		d.Category = "General"
	}
	now := Now()
	d.CreatedAt = now
	d.UpdatedAt = now
}

// SlugifyTitle derives a URL slug from a deal title: lowercase, whitespace to
// hyphens, everything outside [a-z0-9-] dropped. Falls back to "deal" when
// nothing survives.
func SlugifyTitle(title string) string {
	v := strings.ToLower(strings.TrimSpace(title))
	var b strings.Builder
	lastHyphen := false
	for _, r := range v {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		case r == ' ' || r == '\t' || r == '\n' || r == '-':
			if !lastHyphen && b.Len() > 0 {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	slug := strings.Trim(b.String(), "-")
	if slug == "" {
		return "deal"
	}
	return slug
}

// FindByIDOrSlug resolves a route key that may be either a deal id or a slug:
// exact id lookup first, then a case-insensitive exact slug scan over the full
// collection. First slug match wins.
func FindByIDOrSlug(ctx context.Context, s Store, key string) (*model.Deal, error) {
	deal, err := s.GetByID(ctx, key)
	if err == nil {
		return deal, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}
	all, err := s.ReadAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range all {
		if all[i].Slug != "" && strings.EqualFold(all[i].Slug, key) {
			return &all[i], nil
		}
	}
	return nil, ErrNotFound
}
