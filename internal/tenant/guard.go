package tenant

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/brinkadata/brinkadata-platform/internal/domain"
	"github.com/brinkadata/brinkadata-platform/internal/infra"
)

// Scoped is implemented by tenant-owned rows that expose their owning
// account.
type Scoped interface {
	TenantAccountID() int64
}

// Guard enforces tenant isolation on every tenant-data access path. In dev it
// logs violations and lets the request continue so partially-seeded local
// data stays usable; in staging and prod every violation is a hard failure.
type Guard struct {
	env    infra.Environment
	logger zerolog.Logger
}

// NewGuard builds a guard for the given environment. The environment is
// passed explicitly rather than read from ambient state so guard behavior is
// deterministic under test.
func NewGuard(env infra.Environment, logger zerolog.Logger) *Guard {
	return &Guard{env: env, logger: logger}
}

// RequireAccountID validates that a tenant-scoped operation carries an
// account id. In dev a missing id logs a warning and returns the sentinel 0
// so the caller continues into a visibly broken path; elsewhere it fails.
func (g *Guard) RequireAccountID(accountID int64) (int64, error) {
	if accountID >= 1 {
		return accountID, nil
	}
	if g.env.IsDev() {
		g.logger.Warn().Int64("account_id", accountID).Msg("tenant scope missing, continuing in dev")
		return 0, nil
	}
	g.logger.Error().Int64("account_id", accountID).Msg("tenant scope missing")
	return 0, fmt.Errorf("%w: account_id=%d", domain.ErrTenantScopeMissing, accountID)
}

// AssertRowScoped verifies a fetched row belongs to the expected account.
// A row that does not expose account_id at all is a query bug and fails in
// every environment; a mismatched account id warns in dev and fails
// elsewhere.
func (g *Guard) AssertRowScoped(row any, accountID int64, label string) error {
	if row == nil {
		return nil
	}
	rowAccountID, ok := extractAccountID(row)
	if !ok {
		g.logger.Error().Str("label", label).Msg("row does not expose account_id")
		return fmt.Errorf("%w (%s)", domain.ErrRowUnscoped, label)
	}
	if rowAccountID == accountID {
		return nil
	}
	if g.env.IsDev() {
		g.logger.Warn().
			Str("label", label).
			Int64("expected", accountID).
			Int64("found", rowAccountID).
			Msg("tenant isolation violation, continuing in dev")
		return nil
	}
	g.logger.Error().
		Str("label", label).
		Int64("expected", accountID).
		Int64("found", rowAccountID).
		Msg("tenant isolation violation")
	return fmt.Errorf("%w (%s): expected account_id=%d found=%d", domain.ErrTenantIsolation, label, accountID, rowAccountID)
}

// AssertRowsScoped applies AssertRowScoped to every row of a result set.
// Empty result sets pass.
func AssertRowsScoped[T any](g *Guard, rows []T, accountID int64, label string) error {
	for i, row := range rows {
		if err := g.AssertRowScoped(row, accountID, fmt.Sprintf("%s[%d]", label, i)); err != nil {
			return err
		}
	}
	return nil
}

func extractAccountID(row any) (int64, bool) {
	switch r := row.(type) {
	case Scoped:
		return r.TenantAccountID(), true
	case map[string]any:
		v, ok := r["account_id"]
		if !ok {
			return 0, false
		}
		switch id := v.(type) {
		case int64:
			return id, true
		case int:
			return int64(id), true
		case int32:
			return int64(id), true
		}
		return 0, false
	default:
		return 0, false
	}
}
