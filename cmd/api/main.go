package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/brinkadata/brinkadata-platform/internal/adapter/repo"
	"github.com/brinkadata/brinkadata-platform/internal/authz"
	"github.com/brinkadata/brinkadata-platform/internal/domain"
	"github.com/brinkadata/brinkadata-platform/internal/http/handlers"
	"github.com/brinkadata/brinkadata-platform/internal/http/httpapi"
	"github.com/brinkadata/brinkadata-platform/internal/infra"
	"github.com/brinkadata/brinkadata-platform/internal/infra/geoip"
	"github.com/brinkadata/brinkadata-platform/internal/middleware"
	"github.com/brinkadata/brinkadata-platform/internal/tenant"
)

func main() {
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	ctx := context.Background()
	dbpool, err := infra.NewDBPool(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect database")
	}
	defer dbpool.Close()

	runner := infra.NewSQLRunner(dbpool, logger)
	guard := tenant.NewGuard(cfg.AppEnv, logger)

	var country middleware.CountryLookup
	resolver, err := geoip.NewResolver(cfg.GeoIPDBPath)
	if err != nil {
		logger.Warn().Err(err).Msg("geoip disabled")
	} else if resolver != nil {
		country = resolver.CountryCode
	}

	app := &handlers.App{
		Logger:        logger,
		Cfg:           cfg,
		Auth:          authz.New(domain.DefaultRuleset(), logger),
		Subscriptions: repo.NewSubscriptionRepository(runner),
		Usage:         repo.NewUsageRepository(runner),
		Properties:    repo.NewSavedPropertyRepository(runner, guard),
		Audit:         repo.NewAuthzEventRepository(runner),
	}

	router := httpapi.NewRouter(app, logger, country)
	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().
			Str("env", string(cfg.AppEnv)).
			Msgf("API listening on %s", server.Addr())
		if err := server.Start(); err != nil && err != os.ErrClosed {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPIdleTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	logger.Info().Msg("server stopped")
}
