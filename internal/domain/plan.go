package domain

import "strings"

// Plan enumerates subscription tiers, ordered free < pro < team < enterprise.
type Plan string

const (
	PlanFree       Plan = "free"
	PlanPro        Plan = "pro"
	PlanTeam       Plan = "team"
	PlanEnterprise Plan = "enterprise"
)

var planRanks = map[Plan]int{
	PlanFree:       1,
	PlanPro:        2,
	PlanTeam:       3,
	PlanEnterprise: 4,
}

// ParsePlan normalizes a plan token to lowercase. Unknown tokens are kept
// verbatim; they rank 0 and carry no capabilities.
func ParsePlan(s string) Plan {
	return Plan(strings.ToLower(strings.TrimSpace(s)))
}

// Rank returns the numeric level of the plan, 0 for unknown tiers.
func (p Plan) Rank() int {
	return planRanks[p]
}

// AtLeast reports whether p meets or exceeds min in the plan hierarchy.
func (p Plan) AtLeast(min Plan) bool {
	return p.Rank() >= min.Rank()
}
