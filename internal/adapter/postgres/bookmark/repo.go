// Package bookmark implements the bookmark repository using PostgreSQL.
package bookmark

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/companions-backend/internal/adapter/postgres"
	"github.com/heartmarshall/companions-backend/internal/domain"
)

// Repo provides bookmark persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new bookmark repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const addSQL = `
INSERT INTO bookmarks (id, companion_id, user_id, created_at)
VALUES ($1, $2, $3, $4)`

const removeSQL = `
DELETE FROM bookmarks
WHERE companion_id = $1 AND user_id = $2`

const listCompanionsSQL = `
SELECT c.id, c.name, c.subject, c.topic, c.voice, c.style, c.duration_minutes, c.author_id, c.created_at
FROM bookmarks b
JOIN companions c ON c.id = b.companion_id
WHERE b.user_id = $1
ORDER BY b.created_at DESC, b.id DESC`

// Add records a bookmark linking the user to the companion.
// The companion must exist; a missing companion maps to domain.ErrNotFound
// via the foreign key.
func (r *Repo) Add(ctx context.Context, b *domain.Bookmark) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	createdAt := b.CreatedAt.UTC().Truncate(time.Microsecond)

	if _, err := querier.Exec(ctx, addSQL, b.ID, b.CompanionID, b.UserID, createdAt); err != nil {
		return postgres.MapError(err, "bookmark", b.CompanionID)
	}

	return nil
}

// Remove deletes every bookmark the user holds for the companion.
// Both companion_id and user_id must match; removing a bookmark that does not
// exist is not an error.
func (r *Repo) Remove(ctx context.Context, companionID, userID uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := querier.Exec(ctx, removeSQL, companionID, userID); err != nil {
		return postgres.MapError(err, "bookmark", companionID)
	}

	return nil
}

// ListCompanions returns the companions the user has bookmarked, most
// recently bookmarked first.
func (r *Repo) ListCompanions(ctx context.Context, userID uuid.UUID) ([]domain.Companion, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listCompanionsSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("list bookmarked companions: %w", err)
	}
	defer rows.Close()

	companions, err := scanCompanions(rows)
	if err != nil {
		return nil, fmt.Errorf("list bookmarked companions: %w", err)
	}

	return companions, nil
}

func scanCompanions(rows pgx.Rows) ([]domain.Companion, error) {
	var companions []domain.Companion
	for rows.Next() {
		var (
			c               domain.Companion
			subject         string
			voice           string
			style           string
			durationMinutes int32
		)
		if err := rows.Scan(&c.ID, &c.Name, &subject, &c.Topic, &voice, &style,
			&durationMinutes, &c.AuthorID, &c.CreatedAt); err != nil {
			return nil, err
		}
		c.Subject = domain.Subject(subject)
		c.Voice = domain.Voice(voice)
		c.Style = domain.Style(style)
		c.DurationMinutes = int(durationMinutes)
		companions = append(companions, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if companions == nil {
		companions = []domain.Companion{}
	}

	return companions, nil
}
