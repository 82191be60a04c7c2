package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/companions-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// Now returns the current time in the precision the database stores.
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// SeedCompanion inserts a companion authored by the given user and returns it.
// Optional mutators adjust the record before insertion.
func SeedCompanion(t *testing.T, pool *pgxpool.Pool, authorID uuid.UUID, opts ...func(*domain.Companion)) domain.Companion {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	c := domain.Companion{
		ID:              uuid.New(),
		Name:            "Companion " + suffix,
		Subject:         domain.SubjectMaths,
		Topic:           "Topic " + suffix,
		Voice:           domain.VoiceFemale,
		Style:           domain.StyleCasual,
		DurationMinutes: 15,
		AuthorID:        authorID,
		CreatedAt:       Now(),
	}

	for _, opt := range opts {
		opt(&c)
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO companions (id, name, subject, topic, voice, style, duration_minutes, author_id, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		c.ID, c.Name, string(c.Subject), c.Topic, string(c.Voice), string(c.Style),
		c.DurationMinutes, c.AuthorID, c.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCompanion insert: %v", err)
	}

	return c
}

// SeedBookmark inserts a bookmark row and returns it.
func SeedBookmark(t *testing.T, pool *pgxpool.Pool, companionID, userID uuid.UUID) domain.Bookmark {
	t.Helper()
	ctx := context.Background()

	b := domain.Bookmark{
		ID:          uuid.New(),
		CompanionID: companionID,
		UserID:      userID,
		CreatedAt:   Now(),
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO bookmarks (id, companion_id, user_id, created_at)
		 VALUES ($1, $2, $3, $4)`,
		b.ID, b.CompanionID, b.UserID, b.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedBookmark insert: %v", err)
	}

	return b
}

// SeedSession inserts a session history row and returns it.
func SeedSession(t *testing.T, pool *pgxpool.Pool, companionID, userID uuid.UUID, createdAt time.Time) domain.SessionRecord {
	t.Helper()
	ctx := context.Background()

	s := domain.SessionRecord{
		ID:          uuid.New(),
		CompanionID: companionID,
		UserID:      userID,
		CreatedAt:   createdAt.UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO session_history (id, companion_id, user_id, created_at)
		 VALUES ($1, $2, $3, $4)`,
		s.ID, s.CompanionID, s.UserID, s.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedSession insert: %v", err)
	}

	return s
}

// SeedSubscription inserts a subscription row for the given user.
func SeedSubscription(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, plan domain.Plan, features []domain.Feature) domain.Subscription {
	t.Helper()
	ctx := context.Background()

	featureStrs := make([]string, 0, len(features))
	for _, f := range features {
		featureStrs = append(featureStrs, string(f))
	}

	sub := domain.Subscription{
		UserID:    userID,
		Plan:      plan,
		Features:  features,
		UpdatedAt: Now(),
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO subscriptions (user_id, plan, features, updated_at)
		 VALUES ($1, $2, $3, $4)`,
		sub.UserID, string(sub.Plan), featureStrs, sub.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedSubscription insert: %v", err)
	}

	return sub
}
