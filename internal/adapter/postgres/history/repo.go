// Package history implements the session history repository using PostgreSQL.
package history

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

// Repo provides session history persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new session history repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const appendSQL = `
INSERT INTO session_history (id, companion_id, user_id, created_at)
VALUES ($1, $2, $3, $4)`

const companionColumns = `c.id, c.name, c.subject, c.topic, c.voice, c.style, c.duration_minutes, c.author_id, c.created_at`

// Duplicate companion rows are expected: a companion appears once per session.
const recentSQL = `
SELECT ` + companionColumns + `
FROM session_history sh
JOIN companions c ON c.id = sh.companion_id
ORDER BY sh.created_at DESC, sh.id DESC
LIMIT $1`

const recentByUserSQL = `
SELECT ` + companionColumns + `
FROM session_history sh
JOIN companions c ON c.id = sh.companion_id
WHERE sh.user_id = $1
ORDER BY sh.created_at DESC, sh.id DESC
LIMIT $2`

// Append records a completed session.
// A missing companion maps to domain.ErrNotFound via the foreign key.
func (r *Repo) Append(ctx context.Context, s *domain.SessionRecord) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	createdAt := s.CreatedAt.UTC().Truncate(time.Microsecond)

	if _, err := querier.Exec(ctx, appendSQL, s.ID, s.CompanionID, s.UserID, createdAt); err != nil {
		return postgres.MapError(err, "session", s.CompanionID)
	}

	return nil
}

// Recent returns the companions from the newest sessions across all users,
// one row per session.
func (r *Repo) Recent(ctx context.Context, limit int) ([]domain.Companion, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, recentSQL, limit)
	if err != nil {
		return nil, fmt.Errorf("recent sessions: %w", err)
	}
	defer rows.Close()

	companions, err := scanCompanions(rows)
	if err != nil {
		return nil, fmt.Errorf("recent sessions: %w", err)
	}

	return companions, nil
}

// RecentByUser returns the companions from the user's newest sessions,
// one row per session.
func (r *Repo) RecentByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Companion, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, recentByUserSQL, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("recent sessions by user: %w", err)
	}
	defer rows.Close()

	companions, err := scanCompanions(rows)
	if err != nil {
		return nil, fmt.Errorf("recent sessions by user: %w", err)
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
