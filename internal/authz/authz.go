// Package authz is the policy decision point: it turns (identity,
// subscription, requested capability) into an allow/deny outcome. It never
// touches storage; subscriptions are resolved by the caller.
package authz

import (
	"github.com/rs/zerolog"

	"github.com/brinkadata/brinkadata-platform/internal/domain"
	"github.com/brinkadata/brinkadata-platform/internal/tenant"
)

// Authorizer evaluates capability, role, and plan gates against an immutable
// ruleset. All methods are pure over their inputs and safe for concurrent use.
type Authorizer struct {
	rules  domain.Ruleset
	logger zerolog.Logger
}

// New builds an authorizer over the given ruleset.
func New(rules domain.Ruleset, logger zerolog.Logger) *Authorizer {
	return &Authorizer{rules: rules, logger: logger}
}

// Authorize decides whether the caller holds the required capability.
//
// A capability absent from the effective set while the subscription is
// past_due is reported as payment_required rather than missing_capability:
// the caller can recover by paying, without admin help.
func (a *Authorizer) Authorize(tc tenant.Context, role domain.Role, sub domain.Subscription, capability domain.Capability) domain.Decision {
	effectivePlan := domain.EffectivePlan(sub)

	if a.rules.HasCapability(effectivePlan, role, capability) {
		a.logger.Debug().
			Int64("account_id", tc.AccountID).
			Str("capability", string(capability)).
			Str("role", string(role)).
			Str("effective_plan", string(effectivePlan)).
			Msg("capability granted")
		return domain.Allow()
	}

	if sub.IsPastDue() {
		a.logger.Info().
			Int64("account_id", tc.AccountID).
			Str("capability", string(capability)).
			Str("role", string(role)).
			Msg("capability denied, payment required")
		return domain.Deny(domain.ReasonPaymentRequired)
	}

	a.logger.Info().
		Int64("account_id", tc.AccountID).
		Str("capability", string(capability)).
		Str("role", string(role)).
		Str("plan", string(sub.PlanName)).
		Str("effective_plan", string(effectivePlan)).
		Msg("capability denied")
	return domain.Deny(domain.ReasonMissingCapability)
}

// RequireRole gates on the role hierarchy alone.
func (a *Authorizer) RequireRole(role, min domain.Role) domain.Decision {
	if role.AtLeast(min) {
		return domain.Allow()
	}
	a.logger.Info().
		Str("role", string(role)).
		Str("required", string(min)).
		Msg("insufficient role")
	return domain.Deny(domain.ReasonInsufficientRole)
}

// RequirePlan gates on the effective plan hierarchy alone. An insufficient
// plan is a payment_required denial: the feature exists one tier up.
func (a *Authorizer) RequirePlan(sub domain.Subscription, min domain.Plan) domain.Decision {
	if domain.EffectivePlan(sub).AtLeast(min) {
		return domain.Allow()
	}
	a.logger.Info().
		Str("plan", string(sub.PlanName)).
		Str("status", string(sub.Status)).
		Str("required", string(min)).
		Msg("insufficient plan")
	return domain.Deny(domain.ReasonPaymentRequired)
}

// RequireEntitlement combines the role and plan gates: the main entry point
// for endpoints gated on a minimum role/plan rather than a single capability.
func (a *Authorizer) RequireEntitlement(role domain.Role, sub domain.Subscription, minRole domain.Role, minPlan domain.Plan) domain.Decision {
	if d := a.RequireRole(role, minRole); !d.Allowed {
		return d
	}
	return a.RequirePlan(sub, minPlan)
}

// LimitKind names a countable plan ceiling.
type LimitKind string

const (
	LimitSavedProperties LimitKind = "saved_properties"
	LimitScenarios       LimitKind = "scenarios"
)

// WithinLimit checks a current usage count against the effective plan's
// ceiling. The count and the subsequent write are not one atomic step, so two
// concurrent requests at the boundary can both pass; transient overshoot is
// tolerated.
func (a *Authorizer) WithinLimit(sub domain.Subscription, kind LimitKind, current int) domain.Decision {
	limits := domain.LimitsFor(domain.EffectivePlan(sub))

	var max int
	switch kind {
	case LimitSavedProperties:
		max = limits.MaxSavedProperties
	case LimitScenarios:
		max = limits.MaxScenarios
	default:
		// Unknown limits do not block; only configured ceilings gate.
		return domain.Allow()
	}

	if current < max {
		return domain.Allow()
	}
	a.logger.Info().
		Str("limit", string(kind)).
		Int("current", current).
		Int("max", max).
		Str("plan", string(sub.PlanName)).
		Msg("plan limit reached")
	return domain.Deny(domain.ReasonPaymentRequired)
}
