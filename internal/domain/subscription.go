package domain

import "time"

// SubscriptionStatus enumerates billing lifecycle states.
type SubscriptionStatus string

const (
	SubscriptionTrialing SubscriptionStatus = "trialing"
	SubscriptionActive   SubscriptionStatus = "active"
	SubscriptionPastDue  SubscriptionStatus = "past_due"
	SubscriptionCanceled SubscriptionStatus = "canceled"
)

// ValidSubscriptionStatus reports whether s is one of the four lifecycle
// states.
func ValidSubscriptionStatus(s SubscriptionStatus) bool {
	switch s {
	case SubscriptionTrialing, SubscriptionActive, SubscriptionPastDue, SubscriptionCanceled:
		return true
	}
	return false
}

// Subscription is the billing state of an account. There is at most one row
// per account; rows are superseded by status/plan updates, never deleted.
type Subscription struct {
	ID                     int64
	AccountID              int64
	Status                 SubscriptionStatus
	PlanName               Plan
	Provider               string
	ProviderCustomerID     *string
	ProviderSubscriptionID *string
	CurrentPeriodEnd       *time.Time
	CancelAtPeriodEnd      bool
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

// IsActive reports whether the subscription grants paid features.
func (s Subscription) IsActive() bool {
	return s.Status == SubscriptionActive || s.Status == SubscriptionTrialing
}

// IsPastDue reports whether payment is required to restore the plan.
func (s Subscription) IsPastDue() bool {
	return s.Status == SubscriptionPastDue
}

// IsCanceled reports whether the subscription has been canceled.
func (s Subscription) IsCanceled() bool {
	return s.Status == SubscriptionCanceled
}

// DefaultSubscription is the value synthesized for accounts without a stored
// subscription row. Every account has entitlements even before billing
// materializes one.
func DefaultSubscription(accountID int64) Subscription {
	return Subscription{
		ID:        0,
		AccountID: accountID,
		Status:    SubscriptionActive,
		PlanName:  PlanFree,
		Provider:  "manual",
	}
}

// EffectivePlan is the plan tier actually honored right now. Active and
// trialing subscriptions keep their plan; past_due and canceled (or any
// unknown status) downgrade to free immediately, with no cache to invalidate.
func EffectivePlan(s Subscription) Plan {
	if s.IsActive() {
		return s.PlanName
	}
	return PlanFree
}
