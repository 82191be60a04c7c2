package companion

import (
	"strings"

	"github.com/heartmarshall/companions-backend/internal/domain"
)

// CreateInput holds the parameters for creating a companion.
// The author is never part of the input; it always comes from the caller's
// resolved identity.
type CreateInput struct {
	Name            string
	Subject         domain.Subject
	Topic           string
	Voice           domain.Voice
	Style           domain.Style
	DurationMinutes int
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len(name) > 100 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 100 characters"})
	}

	if !i.Subject.IsValid() {
		errs = append(errs, domain.FieldError{Field: "subject", Message: "unknown subject"})
	}

	topic := strings.TrimSpace(i.Topic)
	if topic == "" {
		errs = append(errs, domain.FieldError{Field: "topic", Message: "required"})
	}
	if len(topic) > 200 {
		errs = append(errs, domain.FieldError{Field: "topic", Message: "max 200 characters"})
	}

	if !i.Voice.IsValid() {
		errs = append(errs, domain.FieldError{Field: "voice", Message: "unknown voice"})
	}
	if !i.Style.IsValid() {
		errs = append(errs, domain.FieldError{Field: "style", Message: "unknown style"})
	}
	if i.DurationMinutes < 1 {
		errs = append(errs, domain.FieldError{Field: "duration", Message: "must be at least 1 minute"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// SearchInput holds the parameters for searching the companion library.
// Empty terms widen the search; out-of-range page and limit fall back to
// their defaults.
type SearchInput struct {
	Subject string
	Topic   string
	Page    int
	Limit   int
}
