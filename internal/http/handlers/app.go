package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/brinkadata/brinkadata-platform/internal/authz"
	"github.com/brinkadata/brinkadata-platform/internal/domain"
	"github.com/brinkadata/brinkadata-platform/internal/infra"
	"github.com/brinkadata/brinkadata-platform/internal/middleware"
	"github.com/brinkadata/brinkadata-platform/internal/tenant"
)

// App is the handler container: repositories, the policy decision point, and
// the tenant guard, injected once at startup.
type App struct {
	Logger        infra.Logger
	Cfg           *infra.Config
	Auth          *authz.Authorizer
	Subscriptions domain.SubscriptionRepository
	Usage         domain.UsageRepository
	Properties    domain.SavedPropertyRepository
	Audit         domain.AuthzEventRepository
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

type errorBody struct {
	Error string `json:"error"`
}

func (a *App) error(w http.ResponseWriter, code int, msg string) {
	a.json(w, code, errorBody{Error: msg})
}

// identity pulls the tenant context and role installed by the identity
// middleware. Handlers are never routed without it, so absence is a wiring
// defect.
func (a *App) identity(w http.ResponseWriter, r *http.Request) (tenant.Context, domain.Role, bool) {
	tc, ok := middleware.TenantFromContext(r.Context())
	if !ok {
		a.Logger.Error().Str("path", r.URL.Path).Msg("handler reached without tenant context")
		a.error(w, http.StatusInternalServerError, string(domain.ReasonTenantViolation))
		return tenant.Context{}, "", false
	}
	return tc, middleware.RoleFromContext(r.Context()), true
}

// subscription resolves the caller's subscription; the resolver synthesizes a
// default, so failures here are storage faults.
func (a *App) subscription(w http.ResponseWriter, r *http.Request, tc tenant.Context) (domain.Subscription, bool) {
	sub, err := a.Subscriptions.GetByAccount(r.Context(), tc.AccountID)
	if err != nil {
		a.Logger.Error().Err(err).Int64("account_id", tc.AccountID).Msg("resolve subscription")
		a.error(w, http.StatusInternalServerError, "subscription unavailable")
		return domain.Subscription{}, false
	}
	return sub, true
}

// decisionStatus maps denial reasons to their HTTP classes.
func decisionStatus(reason domain.DecisionReason) int {
	switch reason {
	case domain.ReasonPaymentRequired:
		return http.StatusPaymentRequired
	case domain.ReasonMissingCapability, domain.ReasonInsufficientRole:
		return http.StatusForbidden
	case domain.ReasonTenantViolation:
		return http.StatusInternalServerError
	default:
		return http.StatusForbidden
	}
}

// deny writes a denial decision to the client.
func (a *App) deny(w http.ResponseWriter, d domain.Decision) {
	a.error(w, decisionStatus(d.Reason), string(d.Reason))
}

// requireCapability is the PDP gate for capability-protected endpoints. It
// resolves the subscription, evaluates the decision, records the audit event,
// and writes the denial when access is refused.
func (a *App) requireCapability(w http.ResponseWriter, r *http.Request, capability domain.Capability) (tenant.Context, domain.Subscription, bool) {
	tc, role, ok := a.identity(w, r)
	if !ok {
		return tenant.Context{}, domain.Subscription{}, false
	}
	sub, ok := a.subscription(w, r, tc)
	if !ok {
		return tenant.Context{}, domain.Subscription{}, false
	}

	d := a.Auth.Authorize(tc, role, sub, capability)
	a.recordDecision(r, tc, capability, d)
	if !d.Allowed {
		a.deny(w, d)
		return tenant.Context{}, domain.Subscription{}, false
	}
	return tc, sub, true
}

// recordDecision persists an audit event; audit failures are logged, never
// surfaced to the client.
func (a *App) recordDecision(r *http.Request, tc tenant.Context, capability domain.Capability, d domain.Decision) {
	if a.Audit == nil {
		return
	}
	event := domain.AuthzEvent{
		AccountID:  tc.AccountID,
		UserID:     tc.UserID,
		RequestID:  middleware.RequestIDFromContext(r.Context()),
		Capability: capability,
		Allowed:    d.Allowed,
		Reason:     d.Reason,
		Country:    middleware.CountryFromContext(r.Context()),
	}
	if err := a.Audit.Record(r.Context(), event); err != nil {
		a.Logger.Error().Err(err).Int64("account_id", tc.AccountID).Msg("record authz event")
	}
}

// tenantError renders guard failures: isolation faults abort the request as
// server errors, the response must not complete with leaked data.
func (a *App) tenantError(w http.ResponseWriter, err error) bool {
	if err == nil {
		return false
	}
	switch {
	case errors.Is(err, domain.ErrTenantIsolation),
		errors.Is(err, domain.ErrTenantScopeMissing),
		errors.Is(err, domain.ErrRowUnscoped),
		errors.Is(err, domain.ErrUnsafeQuery):
		a.error(w, http.StatusInternalServerError, string(domain.ReasonTenantViolation))
	default:
		a.error(w, http.StatusInternalServerError, "internal error")
	}
	return true
}
