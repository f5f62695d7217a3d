package tenant

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/brinkadata/brinkadata-platform/internal/domain"
	"github.com/brinkadata/brinkadata-platform/internal/infra"
)

// TenantTables is the closed list of tables holding tenant-owned rows. Any
// select, update, or delete against them must carry an account_id predicate.
var TenantTables = []string{
	"saved_properties",
	"trashed_properties",
	"scenarios",
	"account_memberships",
	"subscriptions",
}

// VetQuery is a best-effort static check that a query touching a tenant table
// mentions account_id. It catches queries written without a tenant predicate
// before they run; same dev-warn, staging/prod-fail split as the row checks.
func (g *Guard) VetQuery(query, label string) error {
	lower := strings.ToLower(query)

	isRead := strings.Contains(lower, "select")
	isWrite := strings.Contains(lower, "update") || strings.Contains(lower, "delete")
	if !isRead && !isWrite {
		return nil
	}

	tenantOwned := false
	for _, table := range TenantTables {
		if strings.Contains(lower, table) {
			tenantOwned = true
			break
		}
	}
	if !tenantOwned {
		return nil
	}

	if strings.Contains(lower, "account_id") {
		return nil
	}

	if g.env.IsDev() {
		g.logger.Warn().Str("label", label).Msg("tenant query missing account_id predicate, continuing in dev")
		return nil
	}
	g.logger.Error().Str("label", label).Msg("tenant query missing account_id predicate")
	return fmt.Errorf("%w (%s): missing account_id predicate", domain.ErrUnsafeQuery, label)
}

// ExecuteScoped runs a tenant-owned query through the guard: the account id
// must be present and the query text must pass VetQuery before it reaches the
// database.
func (g *Guard) ExecuteScoped(ctx context.Context, db infra.SQLExecutor, accountID int64, label, query string, args ...any) (pgx.Rows, error) {
	if _, err := g.RequireAccountID(accountID); err != nil {
		return nil, err
	}
	if err := g.VetQuery(query, label); err != nil {
		return nil, err
	}
	return db.Query(ctx, query, args...)
}
