package handlers

import (
	"net/http"
	"time"

	"github.com/brinkadata/brinkadata-platform/internal/domain"
)

type savedPropertyResponse struct {
	ID           int64     `json:"id"`
	PropertyName string    `json:"property_name"`
	City         string    `json:"city"`
	State        string    `json:"state"`
	Strategy     string    `json:"strategy"`
	DealGrade    string    `json:"deal_grade"`
	CreatedAt    time.Time `json:"created_at"`
}

// ListProperties returns the caller's saved deals. The repository runs every
// query through the tenant guard; a guard failure here means a query bug or
// cross-tenant leak and surfaces as a server error, never as data.
func (a *App) ListProperties(w http.ResponseWriter, r *http.Request) {
	tc, _, ok := a.requireCapability(w, r, domain.CapabilityProjectView)
	if !ok {
		return
	}

	properties, err := a.Properties.ListByAccount(r.Context(), tc.AccountID, a.Cfg.PropertyListMax)
	if err != nil {
		a.Logger.Error().Err(err).Int64("account_id", tc.AccountID).Msg("list properties")
		a.tenantError(w, err)
		return
	}

	out := make([]savedPropertyResponse, 0, len(properties))
	for _, p := range properties {
		out = append(out, savedPropertyResponse{
			ID:           p.ID,
			PropertyName: p.PropertyName,
			City:         p.City,
			State:        p.State,
			Strategy:     p.Strategy,
			DealGrade:    p.DealGrade,
			CreatedAt:    p.CreatedAt,
		})
	}
	a.json(w, http.StatusOK, map[string]any{"properties": out})
}
