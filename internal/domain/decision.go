package domain

// DecisionReason classifies the outcome of an authorization check.
type DecisionReason string

const (
	ReasonOK                DecisionReason = "ok"
	ReasonMissingCapability DecisionReason = "missing_capability"
	ReasonPaymentRequired   DecisionReason = "payment_required"
	ReasonInsufficientRole  DecisionReason = "insufficient_role"
	ReasonTenantViolation   DecisionReason = "tenant_violation"
)

// Decision is the result of an authorization check. Denial is an ordinary
// returned value, never an error or a panic.
type Decision struct {
	Allowed bool
	Reason  DecisionReason
}

// Allow is the single granting decision.
func Allow() Decision {
	return Decision{Allowed: true, Reason: ReasonOK}
}

// Deny builds a denying decision with the given reason.
func Deny(reason DecisionReason) Decision {
	return Decision{Allowed: false, Reason: reason}
}
