package companion

import (
	"strings"

	"github.com/Masterminds/squirrel"

	"github.com/heartmarshall/companions-backend/internal/domain"
)

const (
	defaultLimit = 10
	maxLimit     = 100
)

// searchFilter is the normalized form of a domain.CompanionFilter, ready to
// be turned into SQL predicates.
type searchFilter struct {
	subject string
	topic   string
	limit   int
	offset  int
}

// newSearchFilter applies defaults and clamps values.
// Page and limit below 1 fall back to their defaults; the result window is
// records at zero-based offset (page-1)*limit through page*limit-1.
func newSearchFilter(f domain.CompanionFilter) searchFilter {
	page := f.Page
	if page < 1 {
		page = 1
	}

	limit := f.Limit
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	return searchFilter{
		subject: strings.TrimSpace(f.Subject),
		topic:   strings.TrimSpace(f.Topic),
		limit:   limit,
		offset:  (page - 1) * limit,
	}
}

// apply attaches the four-branch search predicate to the select builder:
//
//	subject + topic  → subject ILIKE ? AND (topic ILIKE ? OR name ILIKE ?)
//	subject only     → subject ILIKE ?
//	topic only       → topic ILIKE ? OR name ILIKE ?
//	neither          → no predicate (full listing)
//
// Matching is case-insensitive substring containment.
func (f searchFilter) apply(b squirrel.SelectBuilder) squirrel.SelectBuilder {
	subjectPattern := likeContains(f.subject)
	topicPattern := likeContains(f.topic)

	switch {
	case f.subject != "" && f.topic != "":
		b = b.Where(squirrel.ILike{"subject": subjectPattern}).
			Where(squirrel.Or{
				squirrel.ILike{"topic": topicPattern},
				squirrel.ILike{"name": topicPattern},
			})
	case f.subject != "":
		b = b.Where(squirrel.ILike{"subject": subjectPattern})
	case f.topic != "":
		b = b.Where(squirrel.Or{
			squirrel.ILike{"topic": topicPattern},
			squirrel.ILike{"name": topicPattern},
		})
	}

	return b
}

// likeContains wraps a term into a '%term%' pattern, escaping LIKE
// metacharacters so user input is matched literally.
func likeContains(term string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(term) + "%"
}
