package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/brinkadata/brinkadata-platform/internal/domain"
	"github.com/brinkadata/brinkadata-platform/internal/tenant"
)

// Identity header names. Token verification happens upstream; by the time a
// request reaches this service the gateway has replaced the bearer token with
// these verified identity headers.
const (
	HeaderAccountID = "X-Account-ID"
	HeaderUserID    = "X-User-ID"
	HeaderRole      = "X-Role"
)

type identityKey string

const (
	tenantContextKey identityKey = "tenant_context"
	roleKey          identityKey = "role"
)

// Identity builds the per-request tenant context and role from the verified
// identity headers. Requests without a valid account id never reach the
// handlers.
func Identity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		accountID, err := strconv.ParseInt(r.Header.Get(HeaderAccountID), 10, 64)
		if err != nil {
			http.Error(w, "missing identity", http.StatusUnauthorized)
			return
		}

		var userID *int64
		if raw := r.Header.Get(HeaderUserID); raw != "" {
			if id, err := strconv.ParseInt(raw, 10, 64); err == nil {
				userID = &id
			}
		}

		tc, err := tenant.NewContext(accountID, userID)
		if err != nil {
			http.Error(w, "invalid identity", http.StatusUnauthorized)
			return
		}

		role := domain.ParseRole(r.Header.Get(HeaderRole))

		ctx := context.WithValue(r.Context(), tenantContextKey, tc)
		ctx = context.WithValue(ctx, roleKey, role)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// TenantFromContext returns the request's tenant context.
func TenantFromContext(ctx context.Context) (tenant.Context, bool) {
	tc, ok := ctx.Value(tenantContextKey).(tenant.Context)
	return tc, ok
}

// RoleFromContext returns the request's caller role, empty when absent.
func RoleFromContext(ctx context.Context) domain.Role {
	if r, ok := ctx.Value(roleKey).(domain.Role); ok {
		return r
	}
	return ""
}
