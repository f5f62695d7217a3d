package domain

// Limits are the per-plan usage ceilings and feature switches. The server is
// the source of truth; clients only mirror these for display.
type Limits struct {
	MaxSavedProperties int
	MaxScenarios       int
	ExportsEnabled     bool
	IRRNPVEnabled      bool
	APIAccessEnabled   bool
}

var planLimits = map[Plan]Limits{
	PlanFree:       {MaxSavedProperties: 25, MaxScenarios: 3},
	PlanPro:        {MaxSavedProperties: 250, MaxScenarios: 25, ExportsEnabled: true, IRRNPVEnabled: true},
	PlanTeam:       {MaxSavedProperties: 1000, MaxScenarios: 100, ExportsEnabled: true, IRRNPVEnabled: true, APIAccessEnabled: true},
	PlanEnterprise: {MaxSavedProperties: 10000, MaxScenarios: 500, ExportsEnabled: true, IRRNPVEnabled: true, APIAccessEnabled: true},
}

// LimitsFor returns the limits for a plan. Unknown plans get the free tier's
// limits, the most restrictive configuration.
func LimitsFor(plan Plan) Limits {
	if l, ok := planLimits[plan]; ok {
		return l
	}
	return planLimits[PlanFree]
}
