package domain

import (
	"time"

	"github.com/google/uuid"
)

// Plan is a subscription tier name.
type Plan string

const (
	// PlanFree carries no quota of its own; creation rights come from
	// feature grants.
	PlanFree Plan = "free"
	// PlanPro grants an unlimited companion creation quota.
	PlanPro Plan = "pro"
)

// Feature is a named feature grant attached to a subscription.
type Feature string

const (
	FeatureCompanionLimit3  Feature = "3_companion_limit"
	FeatureCompanionLimit10 Feature = "10_companion_limit"
)

// Subscription is a user's entitlement state as resolved from the billing
// provider. It is read at request time and never cached in-process.
type Subscription struct {
	UserID    uuid.UUID
	Plan      Plan
	Features  []Feature
	UpdatedAt time.Time
}

// HasFeature reports whether the subscription carries the given feature grant.
func (s Subscription) HasFeature(f Feature) bool {
	for _, have := range s.Features {
		if have == f {
			return true
		}
	}
	return false
}

// CreationCap resolves the companion creation quota for this subscription.
// The pro plan is unlimited. A subscription with no recognized entitlement
// yields a cap of zero: absence of entitlement never defaults to allow.
func (s Subscription) CreationCap() (cap int, unlimited bool) {
	if s.Plan == PlanPro {
		return 0, true
	}
	if s.HasFeature(FeatureCompanionLimit3) {
		return 3, false
	}
	if s.HasFeature(FeatureCompanionLimit10) {
		return 10, false
	}
	return 0, false
}
