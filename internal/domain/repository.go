package domain

import "context"

// SubscriptionRepository resolves and mutates per-account subscription state.
type SubscriptionRepository interface {
	// GetByAccount returns the account's subscription, synthesizing the
	// default free/active value when no row exists. It never returns an
	// absent subscription.
	GetByAccount(ctx context.Context, accountID int64) (Subscription, error)
	// SetStatus updates the subscription status. Idempotent; the change is
	// visible to the next GetByAccount call.
	SetStatus(ctx context.Context, accountID int64, status SubscriptionStatus) error
	// SetPlan updates the subscription plan and resets status to active —
	// an upgrade always re-activates. Idempotent.
	SetPlan(ctx context.Context, accountID int64, plan Plan) error
}

// UsageRepository counts tenant-owned entities compared against plan limits.
type UsageRepository interface {
	GetUsage(ctx context.Context, accountID int64) (Usage, error)
}

// SavedPropertyRepository lists tenant-owned saved deals.
type SavedPropertyRepository interface {
	ListByAccount(ctx context.Context, accountID int64, limit int) ([]SavedProperty, error)
}

// AuthzEventRepository records authorization decisions for auditing.
type AuthzEventRepository interface {
	Record(ctx context.Context, event AuthzEvent) error
}
