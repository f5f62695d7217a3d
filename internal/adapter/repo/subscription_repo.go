package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/brinkadata/brinkadata-platform/internal/domain"
	"github.com/brinkadata/brinkadata-platform/internal/infra"
	"github.com/brinkadata/brinkadata-platform/internal/sqlinline"
)

// SubscriptionRepositoryPG implements domain.SubscriptionRepository backed by
// PostgreSQL. The subscriptions table holds at most one row per account,
// enforced by a unique index on account_id.
type SubscriptionRepositoryPG struct {
	db infra.SQLExecutor
}

// NewSubscriptionRepository creates a new SubscriptionRepositoryPG.
func NewSubscriptionRepository(db infra.SQLExecutor) *SubscriptionRepositoryPG {
	return &SubscriptionRepositoryPG{db: db}
}

// GetByAccount fetches the account's subscription. When no row exists it
// synthesizes the free/active default so every account has entitlements
// before billing materializes a row.
func (r *SubscriptionRepositoryPG) GetByAccount(ctx context.Context, accountID int64) (domain.Subscription, error) {
	row := r.db.QueryRow(ctx, sqlinline.QSelectSubscriptionByAccount, accountID)

	var (
		sub    domain.Subscription
		status string
		plan   string
	)
	err := row.Scan(
		&sub.ID,
		&sub.AccountID,
		&status,
		&plan,
		&sub.Provider,
		&sub.ProviderCustomerID,
		&sub.ProviderSubscriptionID,
		&sub.CurrentPeriodEnd,
		&sub.CancelAtPeriodEnd,
		&sub.CreatedAt,
		&sub.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.DefaultSubscription(accountID), nil
		}
		return domain.Subscription{}, fmt.Errorf("get subscription: %w", err)
	}

	sub.Status = domain.SubscriptionStatus(status)
	sub.PlanName = domain.ParsePlan(plan)
	return sub, nil
}

// SetStatus upserts the subscription status. The write commits before
// returning, so the change is visible to the very next GetByAccount call.
func (r *SubscriptionRepositoryPG) SetStatus(ctx context.Context, accountID int64, status domain.SubscriptionStatus) error {
	if !domain.ValidSubscriptionStatus(status) {
		return fmt.Errorf("%w: %q", domain.ErrUnknownStatus, status)
	}
	if _, err := r.db.Exec(ctx, sqlinline.QUpsertSubscriptionStatus, accountID, string(status)); err != nil {
		return fmt.Errorf("set subscription status: %w", err)
	}
	return nil
}

// SetPlan upserts the subscription plan and resets status to active; an
// upgrade always re-activates. Repeating the call leaves the row unchanged.
func (r *SubscriptionRepositoryPG) SetPlan(ctx context.Context, accountID int64, plan domain.Plan) error {
	if plan.Rank() == 0 {
		return fmt.Errorf("%w: %q", domain.ErrUnknownPlan, plan)
	}
	if _, err := r.db.Exec(ctx, sqlinline.QUpsertSubscriptionPlan, accountID, string(plan)); err != nil {
		return fmt.Errorf("set subscription plan: %w", err)
	}
	return nil
}

var _ domain.SubscriptionRepository = (*SubscriptionRepositoryPG)(nil)
