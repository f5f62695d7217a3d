package tenant

import (
	"fmt"

	"github.com/brinkadata/brinkadata-platform/internal/domain"
)

// Context is the immutable tenant scope of one request, built once from
// verified identity. An invalid account id is a construction-time error, not
// something detected later.
type Context struct {
	AccountID int64
	UserID    *int64
}

// NewContext validates and builds a tenant context.
func NewContext(accountID int64, userID *int64) (Context, error) {
	if accountID < 1 {
		return Context{}, fmt.Errorf("%w: account_id=%d", domain.ErrInvalidTenant, accountID)
	}
	return Context{AccountID: accountID, UserID: userID}, nil
}
