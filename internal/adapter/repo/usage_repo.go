package repo

import (
	"context"
	"fmt"

	"github.com/brinkadata/brinkadata-platform/internal/domain"
	"github.com/brinkadata/brinkadata-platform/internal/infra"
	"github.com/brinkadata/brinkadata-platform/internal/sqlinline"
)

// UsageRepositoryPG counts tenant-owned entities for plan-limit checks.
type UsageRepositoryPG struct {
	db infra.SQLExecutor
}

// NewUsageRepository creates a new UsageRepositoryPG.
func NewUsageRepository(db infra.SQLExecutor) *UsageRepositoryPG {
	return &UsageRepositoryPG{db: db}
}

// GetUsage returns the account's current saved-property and scenario counts.
func (r *UsageRepositoryPG) GetUsage(ctx context.Context, accountID int64) (domain.Usage, error) {
	var usage domain.Usage

	row := r.db.QueryRow(ctx, sqlinline.QCountSavedProperties, accountID)
	if err := row.Scan(&usage.SavedProperties); err != nil {
		return domain.Usage{}, fmt.Errorf("count saved properties: %w", err)
	}

	row = r.db.QueryRow(ctx, sqlinline.QCountScenarios, accountID)
	if err := row.Scan(&usage.Scenarios); err != nil {
		return domain.Usage{}, fmt.Errorf("count scenarios: %w", err)
	}

	return usage, nil
}

var _ domain.UsageRepository = (*UsageRepositoryPG)(nil)
