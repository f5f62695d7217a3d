package domain

import "time"

// SavedProperty is a tenant-owned saved deal. Only the fields the listing and
// usage paths need are modeled here; the full analysis payload stays with the
// calculator service.
type SavedProperty struct {
	ID           int64
	AccountID    int64
	UserID       *int64
	PropertyName string
	City         string
	State        string
	Strategy     string
	DealGrade    string
	CreatedAt    time.Time
}

// TenantAccountID implements tenant row scoping.
func (p SavedProperty) TenantAccountID() int64 {
	return p.AccountID
}

// Usage holds the current tenant-scoped counts compared against plan limits.
type Usage struct {
	SavedProperties int
	Scenarios       int
}

// AuthzEvent records one authorization decision for auditing.
type AuthzEvent struct {
	AccountID  int64
	UserID     *int64
	RequestID  string
	Capability Capability
	Allowed    bool
	Reason     DecisionReason
	Country    string
}
