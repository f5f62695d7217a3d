package authz

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/brinkadata/brinkadata-platform/internal/domain"
)

var titleCaser = cases.Title(language.English)

// Entitlements is the introspection snapshot consumed by UI layers for
// feature gating. It is advisory only; the server re-evaluates Authorize on
// every request.
type Entitlements struct {
	Plan         string   `json:"plan"`
	PlanLabel    string   `json:"plan_label"`
	Role         string   `json:"role"`
	Capabilities []string `json:"capabilities"`
}

// Entitlements computes the caller's effective capability snapshot. The
// capability list is sorted for a stable wire format.
func (a *Authorizer) Entitlements(role domain.Role, sub domain.Subscription) Entitlements {
	effectivePlan := domain.EffectivePlan(sub)
	return Entitlements{
		Plan:         string(effectivePlan),
		PlanLabel:    titleCaser.String(string(effectivePlan)),
		Role:         string(role),
		Capabilities: a.rules.EffectiveCapabilities(effectivePlan, role).Sorted(),
	}
}
