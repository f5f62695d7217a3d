package infra

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Environment selects the deployment environment. It is read once at process
// start and controls tenant-guard severity; there is no dynamic
// reconfiguration.
type Environment string

const (
	EnvDev     Environment = "dev"
	EnvStaging Environment = "staging"
	EnvProd    Environment = "prod"
)

// ParseEnvironment maps an APP_ENV value to an Environment. Anything that is
// not dev or staging is treated as prod, the strictest setting.
func ParseEnvironment(s string) Environment {
	switch Environment(s) {
	case EnvDev:
		return EnvDev
	case EnvStaging:
		return EnvStaging
	default:
		return EnvProd
	}
}

// IsDev reports whether guard violations should warn instead of fail.
func (e Environment) IsDev() bool {
	return e == EnvDev
}

// Config represents application configuration loaded from environment variables.
type Config struct {
	AppEnv           Environment
	Port             string
	DatabaseURL      string
	GeoIPDBPath      string
	HTTPReadTimeout  time.Duration
	HTTPWriteTimeout time.Duration
	HTTPIdleTimeout  time.Duration
	PropertyListMax  int
	DBMaxConns       int
	RatePerMinute    int
	CORSOrigins      []string
}

// LoadConfig loads configuration from environment variables and applies defaults where needed.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		AppEnv:           ParseEnvironment(getEnv("APP_ENV", string(EnvDev))),
		Port:             getEnv("PORT", "8080"),
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		GeoIPDBPath:      os.Getenv("GEOIP_DB_PATH"),
		HTTPReadTimeout:  time.Second * time.Duration(getEnvInt("HTTP_READ_TIMEOUT_SECONDS", 15)),
		HTTPWriteTimeout: time.Second * time.Duration(getEnvInt("HTTP_WRITE_TIMEOUT_SECONDS", 30)),
		HTTPIdleTimeout:  time.Second * time.Duration(getEnvInt("HTTP_IDLE_TIMEOUT_SECONDS", 60)),
		PropertyListMax:  getEnvInt("PROPERTY_LIST_MAX", 100),
		DBMaxConns:       getEnvInt("DB_MAX_CONNS", 10),
		RatePerMinute:    getEnvInt("RATE_LIMIT_PER_MINUTE", 120),
		CORSOrigins:      splitList(os.Getenv("CORS_ALLOWED_ORIGINS")),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	return cfg, nil
}

func splitList(v string) []string {
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}
