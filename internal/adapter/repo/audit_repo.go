package repo

import (
	"context"
	"fmt"

	"github.com/brinkadata/brinkadata-platform/internal/domain"
	"github.com/brinkadata/brinkadata-platform/internal/infra"
	"github.com/brinkadata/brinkadata-platform/internal/sqlinline"
)

// AuthzEventRepositoryPG persists authorization decisions for auditing.
type AuthzEventRepositoryPG struct {
	db infra.SQLExecutor
}

// NewAuthzEventRepository creates a new AuthzEventRepositoryPG.
func NewAuthzEventRepository(db infra.SQLExecutor) *AuthzEventRepositoryPG {
	return &AuthzEventRepositoryPG{db: db}
}

// Record inserts one decision event.
func (r *AuthzEventRepositoryPG) Record(ctx context.Context, event domain.AuthzEvent) error {
	_, err := r.db.Exec(ctx, sqlinline.QInsertAuthzEvent,
		event.AccountID,
		event.UserID,
		event.RequestID,
		string(event.Capability),
		event.Allowed,
		string(event.Reason),
		event.Country,
	)
	if err != nil {
		return fmt.Errorf("record authz event: %w", err)
	}
	return nil
}

var _ domain.AuthzEventRepository = (*AuthzEventRepositoryPG)(nil)
