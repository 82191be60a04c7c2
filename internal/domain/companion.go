package domain

import (
	"time"

	"github.com/google/uuid"
)

// Companion is a configurable conversational tutor persona.
// AuthorID is set exactly once at creation from the caller's resolved
// identity and is never client-supplied. Companions are immutable after
// creation.
type Companion struct {
	ID              uuid.UUID
	Name            string
	Subject         Subject
	Topic           string
	Voice           Voice
	Style           Style
	DurationMinutes int
	AuthorID        uuid.UUID
	CreatedAt       time.Time
}

// SessionRecord is one completed voice conversation between a user and a
// companion. Rows are append-only; CreatedAt orders history listings.
type SessionRecord struct {
	ID          uuid.UUID
	CompanionID uuid.UUID
	UserID      uuid.UUID
	CreatedAt   time.Time
}

// Bookmark is a saved (companion, user) association.
// Uniqueness per pair is not enforced at the store level; repeated adds
// create duplicate rows.
type Bookmark struct {
	ID          uuid.UUID
	CompanionID uuid.UUID
	UserID      uuid.UUID
	CreatedAt   time.Time
}
