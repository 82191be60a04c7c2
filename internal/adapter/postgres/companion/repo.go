// Package companion implements the Companion repository using PostgreSQL.
// Simple operations use raw SQL constants; the library search uses squirrel
// because its predicate set is assembled dynamically from the filter.
package companion

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/companions-backend/internal/adapter/postgres"
	"github.com/heartmarshall/companions-backend/internal/domain"
)

// Repo provides companion persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new companion repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const companionColumns = `id, name, subject, topic, voice, style, duration_minutes, author_id, created_at`

const createSQL = `
INSERT INTO companions (id, name, subject, topic, voice, style, duration_minutes, author_id, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING ` + companionColumns

const getByIDSQL = `
SELECT ` + companionColumns + `
FROM companions
WHERE id = $1`

const listByAuthorSQL = `
SELECT ` + companionColumns + `
FROM companions
WHERE author_id = $1
ORDER BY created_at DESC, id DESC`

const countByAuthorSQL = `
SELECT count(*) FROM companions WHERE author_id = $1`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a companion by primary key.
// Returns domain.ErrNotFound if no such companion exists.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Companion, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, getByIDSQL, id)

	c, err := scanCompanion(row)
	if err != nil {
		return nil, postgres.MapError(err, "companion", id)
	}

	return c, nil
}

// Find returns one page of companions matching the search filter.
// Ordering is created_at DESC with id DESC as a deterministic tiebreaker so
// pagination stays stable across concurrent inserts.
func (r *Repo) Find(ctx context.Context, filter domain.CompanionFilter) ([]domain.Companion, error) {
	f := newSearchFilter(filter)

	b := squirrel.StatementBuilder.
		PlaceholderFormat(squirrel.Dollar).
		Select(companionColumns).
		From("companions")

	b = f.apply(b).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(f.limit)).
		Offset(uint64(f.offset))

	sql, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build companion search query: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("find companions: %w", err)
	}
	defer rows.Close()

	companions, err := scanCompanions(rows)
	if err != nil {
		return nil, fmt.Errorf("find companions: %w", err)
	}

	return companions, nil
}

// ListByAuthor returns all companions authored by the given user, newest first.
func (r *Repo) ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]domain.Companion, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listByAuthorSQL, authorID)
	if err != nil {
		return nil, fmt.Errorf("list companions by author: %w", err)
	}
	defer rows.Close()

	companions, err := scanCompanions(rows)
	if err != nil {
		return nil, fmt.Errorf("list companions by author: %w", err)
	}

	return companions, nil
}

// CountByAuthor returns the number of companions authored by the given user.
func (r *Repo) CountByAuthor(ctx context.Context, authorID uuid.UUID) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	if err := querier.QueryRow(ctx, countByAuthorSQL, authorID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count companions by author: %w", err)
	}

	return count, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new companion and returns the persisted record.
func (r *Repo) Create(ctx context.Context, c *domain.Companion) (*domain.Companion, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	createdAt := c.CreatedAt.UTC().Truncate(time.Microsecond)

	row := querier.QueryRow(ctx, createSQL,
		c.ID,
		c.Name,
		string(c.Subject),
		c.Topic,
		string(c.Voice),
		string(c.Style),
		c.DurationMinutes,
		c.AuthorID,
		createdAt,
	)

	created, err := scanCompanion(row)
	if err != nil {
		return nil, postgres.MapError(err, "companion", c.ID)
	}

	return created, nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

// scanCompanion scans a single companion row from pgx.Row.
func scanCompanion(row pgx.Row) (*domain.Companion, error) {
	var (
		id              uuid.UUID
		name            string
		subject         string
		topic           string
		voice           string
		style           string
		durationMinutes int32
		authorID        uuid.UUID
		createdAt       time.Time
	)

	if err := row.Scan(&id, &name, &subject, &topic, &voice, &style,
		&durationMinutes, &authorID, &createdAt); err != nil {
		return nil, err
	}

	return &domain.Companion{
		ID:              id,
		Name:            name,
		Subject:         domain.Subject(subject),
		Topic:           topic,
		Voice:           domain.Voice(voice),
		Style:           domain.Style(style),
		DurationMinutes: int(durationMinutes),
		AuthorID:        authorID,
		CreatedAt:       createdAt,
	}, nil
}

// scanCompanions scans multiple companion rows into a slice.
// Returns an empty (non-nil) slice when no rows match.
func scanCompanions(rows pgx.Rows) ([]domain.Companion, error) {
	var companions []domain.Companion
	for rows.Next() {
		c, err := scanCompanion(rows)
		if err != nil {
			return nil, err
		}
		companions = append(companions, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if companions == nil {
		companions = []domain.Companion{}
	}

	return companions, nil
}
