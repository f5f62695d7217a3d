package handlers

import (
	"net/http"

	"github.com/brinkadata/brinkadata-platform/internal/domain"
)

// Entitlements returns the caller's effective capability snapshot for
// client-side feature gating. The snapshot is advisory: every protected
// endpoint re-evaluates the decision server-side.
func (a *App) Entitlements(w http.ResponseWriter, r *http.Request) {
	tc, role, ok := a.identity(w, r)
	if !ok {
		return
	}
	sub, ok := a.subscription(w, r, tc)
	if !ok {
		return
	}
	a.json(w, http.StatusOK, a.Auth.Entitlements(role, sub))
}

type limitUsage struct {
	Used int `json:"used"`
	Max  int `json:"max"`
}

type usageResponse struct {
	Plan            string     `json:"plan"`
	SavedProperties limitUsage `json:"saved_properties"`
	Scenarios       limitUsage `json:"scenarios"`
	CanExport       bool       `json:"can_export"`
	CanUseIRRNPV    bool       `json:"can_use_irr_npv"`
	CanUseAPI       bool       `json:"can_use_api"`
}

// UsageSummary reports current usage against the effective plan's limits.
// A past_due or canceled subscription reports the free tier's ceilings, so
// the UI shows the downgrade immediately.
func (a *App) UsageSummary(w http.ResponseWriter, r *http.Request) {
	tc, _, ok := a.identity(w, r)
	if !ok {
		return
	}
	sub, ok := a.subscription(w, r, tc)
	if !ok {
		return
	}

	usage, err := a.Usage.GetUsage(r.Context(), tc.AccountID)
	if err != nil {
		a.Logger.Error().Err(err).Int64("account_id", tc.AccountID).Msg("load usage")
		a.error(w, http.StatusInternalServerError, "usage unavailable")
		return
	}

	effectivePlan := domain.EffectivePlan(sub)
	limits := domain.LimitsFor(effectivePlan)
	a.json(w, http.StatusOK, usageResponse{
		Plan:            string(effectivePlan),
		SavedProperties: limitUsage{Used: usage.SavedProperties, Max: limits.MaxSavedProperties},
		Scenarios:       limitUsage{Used: usage.Scenarios, Max: limits.MaxScenarios},
		CanExport:       limits.ExportsEnabled,
		CanUseIRRNPV:    limits.IRRNPVEnabled,
		CanUseAPI:       limits.APIAccessEnabled,
	})
}
