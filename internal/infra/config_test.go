package infra

import "testing"

func TestParseEnvironment(t *testing.T) {
	tests := []struct {
		in   string
		want Environment
	}{
		{in: "dev", want: EnvDev},
		{in: "staging", want: EnvStaging},
		{in: "prod", want: EnvProd},
		{in: "", want: EnvProd},
		{in: "production", want: EnvProd},
		{in: "local", want: EnvProd},
	}
	for _, tc := range tests {
		if got := ParseEnvironment(tc.in); got != tc.want {
			t.Fatalf("ParseEnvironment(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://example")
	t.Setenv("APP_ENV", "")
	t.Setenv("PORT", "")
	t.Setenv("PROPERTY_LIST_MAX", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.AppEnv != EnvDev {
		t.Fatalf("AppEnv = %q, want dev default", cfg.AppEnv)
	}
	if cfg.Port != "8080" {
		t.Fatalf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.PropertyListMax != 100 {
		t.Fatalf("PropertyListMax = %d, want 100", cfg.PropertyListMax)
	}
	if cfg.DBMaxConns != 10 {
		t.Fatalf("DBMaxConns = %d, want 10", cfg.DBMaxConns)
	}
	if cfg.RatePerMinute != 120 {
		t.Fatalf("RatePerMinute = %d, want 120", cfg.RatePerMinute)
	}
	if len(cfg.CORSOrigins) != 0 {
		t.Fatalf("CORSOrigins = %v, want empty", cfg.CORSOrigins)
	}
}

func TestLoadConfigSplitsCORSOrigins(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://example")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://app.brinkadata.com, https://staging.brinkadata.com")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[0] != "https://app.brinkadata.com" {
		t.Fatalf("CORSOrigins = %v", cfg.CORSOrigins)
	}
}

func TestLoadConfigRequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected error for missing DATABASE_URL")
	}
}

func TestLoadConfigStrictEnvForUnknownValue(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://example")
	t.Setenv("APP_ENV", "qa")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.AppEnv != EnvProd {
		t.Fatalf("AppEnv = %q, unknown environments must fail closed to prod", cfg.AppEnv)
	}
}
