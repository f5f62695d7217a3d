package domain

import "errors"

var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidTenant      = errors.New("invalid tenant context")
	ErrTenantScopeMissing = errors.New("tenant scope missing")
	ErrTenantIsolation    = errors.New("tenant isolation violation")
	ErrRowUnscoped        = errors.New("row missing account_id column")
	ErrUnsafeQuery        = errors.New("unsafe tenant query")
	ErrUnknownStatus      = errors.New("unknown subscription status")
	ErrUnknownPlan        = errors.New("unknown plan")
	ErrQuotaExceeded      = errors.New("quota exceeded")
)
