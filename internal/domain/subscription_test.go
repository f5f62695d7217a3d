package domain

import "testing"

func TestEffectivePlan(t *testing.T) {
	tests := []struct {
		name   string
		status SubscriptionStatus
		plan   Plan
		want   Plan
	}{
		{name: "active keeps plan", status: SubscriptionActive, plan: PlanPro, want: PlanPro},
		{name: "trialing keeps plan", status: SubscriptionTrialing, plan: PlanTeam, want: PlanTeam},
		{name: "past_due downgrades", status: SubscriptionPastDue, plan: PlanPro, want: PlanFree},
		{name: "canceled downgrades", status: SubscriptionCanceled, plan: PlanEnterprise, want: PlanFree},
		{name: "unknown status downgrades", status: SubscriptionStatus("paused"), plan: PlanPro, want: PlanFree},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			sub := Subscription{AccountID: 1, Status: tc.status, PlanName: tc.plan}
			if got := EffectivePlan(sub); got != tc.want {
				t.Fatalf("EffectivePlan = %q, want %q", got, tc.want)
			}
			// The downgrade is derived, the stored plan never changes.
			if sub.PlanName != tc.plan {
				t.Fatalf("PlanName mutated to %q", sub.PlanName)
			}
		})
	}
}

func TestDefaultSubscription(t *testing.T) {
	sub := DefaultSubscription(42)
	if sub.AccountID != 42 {
		t.Fatalf("AccountID = %d, want 42", sub.AccountID)
	}
	if sub.Status != SubscriptionActive || sub.PlanName != PlanFree {
		t.Fatalf("default subscription = %s/%s, want active/free", sub.Status, sub.PlanName)
	}
	if sub.Provider != "manual" {
		t.Fatalf("Provider = %q, want manual", sub.Provider)
	}
	if !sub.IsActive() || sub.IsPastDue() || sub.IsCanceled() {
		t.Fatal("default subscription predicates wrong")
	}
}

func TestValidSubscriptionStatus(t *testing.T) {
	for _, s := range []SubscriptionStatus{SubscriptionTrialing, SubscriptionActive, SubscriptionPastDue, SubscriptionCanceled} {
		if !ValidSubscriptionStatus(s) {
			t.Fatalf("%s should be valid", s)
		}
	}
	if ValidSubscriptionStatus("paused") {
		t.Fatal("paused should not be valid")
	}
}

func TestLimitsForUnknownPlanFallsBackToFree(t *testing.T) {
	if got := LimitsFor(Plan("platinum")); got != LimitsFor(PlanFree) {
		t.Fatalf("unknown plan limits = %+v, want free tier", got)
	}
	if !LimitsFor(PlanPro).ExportsEnabled {
		t.Fatal("pro plan should enable exports")
	}
	if LimitsFor(PlanPro).APIAccessEnabled {
		t.Fatal("pro plan should not enable API access")
	}
}
