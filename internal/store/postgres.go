package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/coursespeak/coursespeak/internal/model"
)

// PostgresStore keeps one row per deal in the deals table. Unlike the file
// backend every mutation touches a single row, so concurrent admin writes do
// not race against a whole-collection rewrite.
type PostgresStore struct {
	db *sqlx.DB
}

// NewPostgresStore creates a table-backed store on the given connection.
func NewPostgresStore(db *sqlx.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

const dealsSchema = `
CREATE TABLE IF NOT EXISTS deals (
	id              TEXT PRIMARY KEY,
	slug            TEXT NOT NULL DEFAULT '',
	title           TEXT NOT NULL DEFAULT '',
	provider        TEXT NOT NULL DEFAULT '',
	price           DOUBLE PRECISION NOT NULL DEFAULT 0,
	original_price  DOUBLE PRECISION,
	rating          DOUBLE PRECISION,
	students        INTEGER,
	coupon          TEXT,
	url             TEXT NOT NULL DEFAULT '',
	category        TEXT NOT NULL DEFAULT '',
	subcategory     TEXT NOT NULL DEFAULT '',
	expires_at      TEXT NOT NULL DEFAULT '',
	image           TEXT NOT NULL DEFAULT '',
	description     TEXT NOT NULL DEFAULT '',
	content         TEXT NOT NULL DEFAULT '',
	faqs            JSONB,
	learn           JSONB,
	requirements    JSONB,
	curriculum      JSONB,
	instructor      TEXT NOT NULL DEFAULT '',
	duration        TEXT NOT NULL DEFAULT '',
	language        TEXT NOT NULL DEFAULT '',
	created_at      TEXT NOT NULL DEFAULT '',
	updated_at      TEXT NOT NULL DEFAULT '',
	seo_title       TEXT NOT NULL DEFAULT '',
	seo_description TEXT NOT NULL DEFAULT '',
	seo_og_image    TEXT NOT NULL DEFAULT '',
	seo_canonical   TEXT NOT NULL DEFAULT '',
	seo_noindex     BOOLEAN NOT NULL DEFAULT FALSE,
	seo_nofollow    BOOLEAN NOT NULL DEFAULT FALSE
)`

const dealColumns = `id, slug, title, provider, price, original_price, rating, students, coupon,
	url, category, subcategory, expires_at, image, description, content,
	faqs, learn, requirements, curriculum, instructor, duration, language,
	created_at, updated_at,
	seo_title, seo_description, seo_og_image, seo_canonical, seo_noindex, seo_nofollow`

const dealValues = `:id, :slug, :title, :provider, :price, :original_price, :rating, :students, :coupon,
	:url, :category, :subcategory, :expires_at, :image, :description, :content,
	:faqs, :learn, :requirements, :curriculum, :instructor, :duration, :language,
	:created_at, :updated_at,
	:seo_title, :seo_description, :seo_og_image, :seo_canonical, :seo_noindex, :seo_nofollow`

// EnsureSchema creates the deals table when it does not exist yet.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, dealsSchema); err != nil {
		return fmt.Errorf("failed to ensure deals schema: %w", err)
	}
	return nil
}

// ReadAll implements Store.
func (s *PostgresStore) ReadAll(ctx context.Context) ([]model.Deal, error) {
	deals := []model.Deal{}
	query := fmt.Sprintf(`SELECT %s FROM deals`, dealColumns)
	if err := s.db.SelectContext(ctx, &deals, query); err != nil {
		return nil, fmt.Errorf("failed to read deals: %w", err)
	}
	return deals, nil
}

// GetByID implements Store.
func (s *PostgresStore) GetByID(ctx context.Context, id string) (*model.Deal, error) {
	var deal model.Deal
	query := fmt.Sprintf(`SELECT %s FROM deals WHERE id = $1`, dealColumns)
	if err := s.db.GetContext(ctx, &deal, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get deal %s: %w", id, err)
	}
	return &deal, nil
}

// Create implements Store. ON CONFLICT DO NOTHING keeps an id collision from
// overwriting an existing record; zero rows written means the id was taken.
func (s *PostgresStore) Create(ctx context.Context, deal model.Deal) (*model.Deal, error) {
	applyCreateDefaults(&deal)

	query := fmt.Sprintf(`INSERT INTO deals (%s) VALUES (%s) ON CONFLICT (id) DO NOTHING`, dealColumns, dealValues)
	res, err := s.db.NamedExecContext(ctx, query, deal)
	if err != nil {
		return nil, fmt.Errorf("failed to create deal: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return nil, ErrExists
	}
	return &deal, nil
}

// Update implements Store. The merge happens in memory against the current
// row, then the full row is written back.
func (s *PostgresStore) Update(ctx context.Context, id string, patch model.DealPatch) (*model.Deal, error) {
	deal, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	patch.Apply(deal)
	deal.UpdatedAt = Now()

	query := `UPDATE deals SET
		slug = :slug, title = :title, provider = :provider, price = :price,
		original_price = :original_price, rating = :rating, students = :students, coupon = :coupon,
		url = :url, category = :category, subcategory = :subcategory, expires_at = :expires_at,
		image = :image, description = :description, content = :content,
		faqs = :faqs, learn = :learn, requirements = :requirements, curriculum = :curriculum,
		instructor = :instructor, duration = :duration, language = :language,
		updated_at = :updated_at,
		seo_title = :seo_title, seo_description = :seo_description, seo_og_image = :seo_og_image,
		seo_canonical = :seo_canonical, seo_noindex = :seo_noindex, seo_nofollow = :seo_nofollow
	WHERE id = :id`
	res, err := s.db.NamedExecContext(ctx, query, deal)
	if err != nil {
		return nil, fmt.Errorf("failed to update deal %s: %w", id, err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return nil, ErrNotFound
	}
	return deal, nil
}

// Delete implements Store.
func (s *PostgresStore) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM deals WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete deal %s: %w", id, err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}
