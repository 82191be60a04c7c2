package domain

// CompanionFilter contains search and pagination parameters for library
// listings. Subject and Topic are case-insensitive substring patterns;
// empty strings disable the corresponding predicate.
type CompanionFilter struct {
	Subject string
	Topic   string
	Page    int
	Limit   int
}
