package tenant

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/brinkadata/brinkadata-platform/internal/domain"
	"github.com/brinkadata/brinkadata-platform/internal/infra"
)

type scopedRow struct {
	accountID int64
}

func (r scopedRow) TenantAccountID() int64 { return r.accountID }

type unscopedRow struct{}

func newGuard(env infra.Environment) *Guard {
	return NewGuard(env, zerolog.Nop())
}

func TestNewContextRejectsInvalidAccountID(t *testing.T) {
	if _, err := NewContext(0, nil); !errors.Is(err, domain.ErrInvalidTenant) {
		t.Fatalf("NewContext(0) err = %v, want ErrInvalidTenant", err)
	}
	if _, err := NewContext(-3, nil); !errors.Is(err, domain.ErrInvalidTenant) {
		t.Fatalf("NewContext(-3) err = %v, want ErrInvalidTenant", err)
	}
	ctx, err := NewContext(7, nil)
	if err != nil {
		t.Fatalf("NewContext(7) err = %v", err)
	}
	if ctx.AccountID != 7 {
		t.Fatalf("AccountID = %d, want 7", ctx.AccountID)
	}
}

func TestRequireAccountID(t *testing.T) {
	tests := []struct {
		name      string
		env       infra.Environment
		accountID int64
		want      int64
		wantErr   bool
	}{
		{name: "valid id passes in prod", env: infra.EnvProd, accountID: 7, want: 7},
		{name: "valid id passes in dev", env: infra.EnvDev, accountID: 7, want: 7},
		{name: "missing id warns in dev", env: infra.EnvDev, accountID: 0, want: 0},
		{name: "negative id warns in dev", env: infra.EnvDev, accountID: -1, want: 0},
		{name: "missing id fails in staging", env: infra.EnvStaging, accountID: 0, wantErr: true},
		{name: "missing id fails in prod", env: infra.EnvProd, accountID: 0, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := newGuard(tc.env).RequireAccountID(tc.accountID)
			if tc.wantErr {
				if !errors.Is(err, domain.ErrTenantScopeMissing) {
					t.Fatalf("err = %v, want ErrTenantScopeMissing", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("account id = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestAssertRowScoped(t *testing.T) {
	t.Run("match passes everywhere", func(t *testing.T) {
		for _, env := range []infra.Environment{infra.EnvDev, infra.EnvStaging, infra.EnvProd} {
			if err := newGuard(env).AssertRowScoped(scopedRow{accountID: 7}, 7, "t"); err != nil {
				t.Fatalf("env=%s err = %v", env, err)
			}
		}
	})

	t.Run("mismatch fails in prod", func(t *testing.T) {
		err := newGuard(infra.EnvProd).AssertRowScoped(scopedRow{accountID: 9}, 7, "t")
		if !errors.Is(err, domain.ErrTenantIsolation) {
			t.Fatalf("err = %v, want ErrTenantIsolation", err)
		}
	})

	t.Run("mismatch warns in dev", func(t *testing.T) {
		if err := newGuard(infra.EnvDev).AssertRowScoped(scopedRow{accountID: 9}, 7, "t"); err != nil {
			t.Fatalf("dev mismatch should continue, got %v", err)
		}
	})

	t.Run("missing column fatal in every environment", func(t *testing.T) {
		for _, env := range []infra.Environment{infra.EnvDev, infra.EnvStaging, infra.EnvProd} {
			err := newGuard(env).AssertRowScoped(unscopedRow{}, 7, "t")
			if !errors.Is(err, domain.ErrRowUnscoped) {
				t.Fatalf("env=%s err = %v, want ErrRowUnscoped", env, err)
			}
		}
	})

	t.Run("nil row passes", func(t *testing.T) {
		if err := newGuard(infra.EnvProd).AssertRowScoped(nil, 7, "t"); err != nil {
			t.Fatalf("nil row err = %v", err)
		}
	})

	t.Run("map rows", func(t *testing.T) {
		g := newGuard(infra.EnvProd)
		if err := g.AssertRowScoped(map[string]any{"account_id": int64(7)}, 7, "t"); err != nil {
			t.Fatalf("matching map row err = %v", err)
		}
		if err := g.AssertRowScoped(map[string]any{"name": "x"}, 7, "t"); !errors.Is(err, domain.ErrRowUnscoped) {
			t.Fatalf("map without account_id err = %v, want ErrRowUnscoped", err)
		}
	})
}

func TestAssertRowsScoped(t *testing.T) {
	rows := []scopedRow{{accountID: 7}, {accountID: 9}}

	err := AssertRowsScoped(newGuard(infra.EnvProd), rows, 7, "list")
	if !errors.Is(err, domain.ErrTenantIsolation) {
		t.Fatalf("prod err = %v, want ErrTenantIsolation", err)
	}

	if err := AssertRowsScoped(newGuard(infra.EnvDev), rows, 7, "list"); err != nil {
		t.Fatalf("dev should continue with warning, got %v", err)
	}

	if err := AssertRowsScoped(newGuard(infra.EnvProd), []scopedRow{}, 7, "list"); err != nil {
		t.Fatalf("empty result set err = %v", err)
	}
}

func TestVetQuery(t *testing.T) {
	scoped := "select id, account_id from saved_properties where account_id = $1"
	unscoped := "select id from saved_properties"
	unowned := "select id from plans"

	g := newGuard(infra.EnvProd)
	if err := g.VetQuery(scoped, "t"); err != nil {
		t.Fatalf("scoped query err = %v", err)
	}
	if err := g.VetQuery(unowned, "t"); err != nil {
		t.Fatalf("non-tenant table err = %v", err)
	}
	if err := g.VetQuery(unscoped, "t"); !errors.Is(err, domain.ErrUnsafeQuery) {
		t.Fatalf("unscoped query err = %v, want ErrUnsafeQuery", err)
	}
	if err := g.VetQuery("delete from scenarios", "t"); !errors.Is(err, domain.ErrUnsafeQuery) {
		t.Fatalf("unscoped delete err = %v, want ErrUnsafeQuery", err)
	}

	if err := newGuard(infra.EnvDev).VetQuery(unscoped, "t"); err != nil {
		t.Fatalf("dev should warn and continue, got %v", err)
	}
}
