package repo

import (
	"context"
	"fmt"

	"github.com/brinkadata/brinkadata-platform/internal/domain"
	"github.com/brinkadata/brinkadata-platform/internal/infra"
	"github.com/brinkadata/brinkadata-platform/internal/sqlinline"
	"github.com/brinkadata/brinkadata-platform/internal/tenant"
)

// SavedPropertyRepositoryPG lists tenant-owned saved deals. Every query path
// runs through the tenant guard: the query text is vetted before execution
// and the returned rows are asserted to belong to the requesting account.
type SavedPropertyRepositoryPG struct {
	db    infra.SQLExecutor
	guard *tenant.Guard
}

// NewSavedPropertyRepository creates a new SavedPropertyRepositoryPG.
func NewSavedPropertyRepository(db infra.SQLExecutor, guard *tenant.Guard) *SavedPropertyRepositoryPG {
	return &SavedPropertyRepositoryPG{db: db, guard: guard}
}

// ListByAccount returns the account's most recent saved properties.
func (r *SavedPropertyRepositoryPG) ListByAccount(ctx context.Context, accountID int64, limit int) ([]domain.SavedProperty, error) {
	const label = "saved_properties.list"

	rows, err := r.guard.ExecuteScoped(ctx, r.db, accountID, label, sqlinline.QListSavedPropertiesByAccount, accountID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var properties []domain.SavedProperty
	for rows.Next() {
		var p domain.SavedProperty
		if err := rows.Scan(&p.ID, &p.AccountID, &p.UserID, &p.PropertyName, &p.City, &p.State, &p.Strategy, &p.DealGrade, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan saved property: %w", err)
		}
		properties = append(properties, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list saved properties: %w", err)
	}

	if err := tenant.AssertRowsScoped(r.guard, properties, accountID, label); err != nil {
		return nil, err
	}
	return properties, nil
}

var _ domain.SavedPropertyRepository = (*SavedPropertyRepositoryPG)(nil)
