package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/brinkadata/brinkadata-platform/internal/domain"
)

type subscriptionStatusRequest struct {
	Status string `json:"status"`
}

type subscriptionPlanRequest struct {
	Plan string `json:"plan"`
}

// pathAccountID parses the accountID path parameter and rejects any value
// that does not match the caller's own account. Admin mutators operate only
// within the caller's tenant; cross-account paths are a tenant violation.
func (a *App) pathAccountID(w http.ResponseWriter, r *http.Request, callerAccount int64) (int64, bool) {
	raw := chi.URLParam(r, "accountID")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		a.error(w, http.StatusBadRequest, "invalid account id")
		return 0, false
	}
	if id != callerAccount {
		a.Logger.Warn().
			Int64("account_id", callerAccount).
			Int64("path_account_id", id).
			Msg("cross-account subscription mutation rejected")
		a.error(w, http.StatusForbidden, string(domain.ReasonTenantViolation))
		return 0, false
	}
	return id, true
}

// SetSubscriptionStatus updates the billing status for the caller's account.
// Requires the admin role.
func (a *App) SetSubscriptionStatus(w http.ResponseWriter, r *http.Request) {
	tc, role, ok := a.identity(w, r)
	if !ok {
		return
	}
	if d := a.Auth.RequireRole(role, domain.RoleAdmin); !d.Allowed {
		a.deny(w, d)
		return
	}
	accountID, ok := a.pathAccountID(w, r, tc.AccountID)
	if !ok {
		return
	}

	var req subscriptionStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	status := domain.SubscriptionStatus(req.Status)
	if !domain.ValidSubscriptionStatus(status) {
		a.error(w, http.StatusBadRequest, "unknown subscription status")
		return
	}

	if err := a.Subscriptions.SetStatus(r.Context(), accountID, status); err != nil {
		a.Logger.Error().Err(err).Int64("account_id", accountID).Msg("set subscription status")
		a.error(w, http.StatusInternalServerError, "internal error")
		return
	}
	a.Logger.Info().
		Int64("account_id", accountID).
		Str("status", string(status)).
		Msg("subscription status updated")
	a.json(w, http.StatusOK, map[string]any{"account_id": accountID, "status": status})
}

// SetSubscriptionPlan changes the plan for the caller's account and
// reactivates the subscription. Requires the owner role.
func (a *App) SetSubscriptionPlan(w http.ResponseWriter, r *http.Request) {
	tc, role, ok := a.identity(w, r)
	if !ok {
		return
	}
	if d := a.Auth.RequireRole(role, domain.RoleOwner); !d.Allowed {
		a.deny(w, d)
		return
	}
	accountID, ok := a.pathAccountID(w, r, tc.AccountID)
	if !ok {
		return
	}

	var req subscriptionPlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	plan := domain.Plan(req.Plan)
	if plan.Rank() == 0 {
		a.error(w, http.StatusBadRequest, "unknown plan")
		return
	}

	if err := a.Subscriptions.SetPlan(r.Context(), accountID, plan); err != nil {
		a.Logger.Error().Err(err).Int64("account_id", accountID).Msg("set subscription plan")
		a.error(w, http.StatusInternalServerError, "internal error")
		return
	}
	a.Logger.Info().
		Int64("account_id", accountID).
		Str("plan", string(plan)).
		Msg("subscription plan updated")
	a.json(w, http.StatusOK, map[string]any{"account_id": accountID, "plan": plan})
}
