package domain

import "strings"

// Role enumerates user roles within an account, ordered
// owner > admin > member > read_only.
type Role string

const (
	RoleOwner    Role = "owner"
	RoleAdmin    Role = "admin"
	RoleMember   Role = "member"
	RoleReadOnly Role = "read_only"
)

var roleRanks = map[Role]int{
	RoleOwner:    4,
	RoleAdmin:    3,
	RoleMember:   2,
	RoleReadOnly: 1,
}

// ParseRole normalizes a role token to lowercase. Unknown tokens are kept
// verbatim; they rank 0 and carry no capabilities.
func ParseRole(s string) Role {
	return Role(strings.ToLower(strings.TrimSpace(s)))
}

// Rank returns the numeric level of the role. Unknown roles rank 0, below
// every defined tier, so comparisons against them always fail.
func (r Role) Rank() int {
	return roleRanks[r]
}

// AtLeast reports whether r meets or exceeds min in the role hierarchy.
func (r Role) AtLeast(min Role) bool {
	return r.Rank() >= min.Rank()
}
