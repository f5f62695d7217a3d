package domain

// Ruleset holds the static plan and role capability grants. It is built once
// at startup and injected into the authorizer; nothing mutates it afterwards.
type Ruleset struct {
	planCapabilities map[Plan]CapabilitySet
	roleCapabilities map[Role]CapabilitySet
}

// DefaultRuleset returns the reference capability configuration.
//
// The plan map is monotonically non-decreasing with plan rank: every
// capability granted to free is also granted to pro, and so on. Editing the
// grants must preserve that property.
func DefaultRuleset() Ruleset {
	fullCatalog := NewCapabilitySet(Catalog()...)

	return Ruleset{
		planCapabilities: map[Plan]CapabilitySet{
			PlanFree: NewCapabilitySet(
				CapabilityProjectView,
				CapabilityAssetView,
				CapabilitySearchBasic,
				CapabilityAnalysisSingleProperty,
			),
			PlanPro:        fullCatalog,
			PlanTeam:       fullCatalog,
			PlanEnterprise: fullCatalog,
		},
		roleCapabilities: map[Role]CapabilitySet{
			// Roles only ever remove capabilities; the plan is the ceiling.
			RoleOwner:  fullCatalog,
			RoleAdmin:  fullCatalog,
			RoleMember: fullCatalog,
			RoleReadOnly: NewCapabilitySet(
				CapabilityProjectView,
				CapabilityAssetView,
				CapabilitySearchBasic,
				CapabilityAnalysisSingleProperty,
			),
		},
	}
}

// PlanCapabilities returns the grants for a plan, empty for unknown tiers.
func (rs Ruleset) PlanCapabilities(plan Plan) CapabilitySet {
	return rs.planCapabilities[plan]
}

// RoleCapabilities returns the grants for a role, empty for unknown roles.
func (rs Ruleset) RoleCapabilities(role Role) CapabilitySet {
	return rs.roleCapabilities[role]
}

// EffectiveCapabilities intersects plan and role grants. A role can never
// exceed what the plan allows, and a plan can never exceed what the role
// allows. Unknown plans or roles yield the empty set.
func (rs Ruleset) EffectiveCapabilities(plan Plan, role Role) CapabilitySet {
	return rs.planCapabilities[plan].Intersect(rs.roleCapabilities[role])
}

// HasCapability reports whether both the plan and the role grant the
// capability.
func (rs Ruleset) HasCapability(plan Plan, role Role, capability Capability) bool {
	return rs.EffectiveCapabilities(plan, role).Has(capability)
}
