package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/brinkadata/brinkadata-platform/internal/adapter/repo"
	"github.com/brinkadata/brinkadata-platform/internal/domain"
	"github.com/brinkadata/brinkadata-platform/internal/infra"
)

// accountplan is the operator escape hatch for billing state: it writes the
// subscription row directly, bypassing the HTTP role gates.
func main() {
	var (
		accountFlag int64
		planFlag    string
		statusFlag  string
	)

	flag.Int64Var(&accountFlag, "account", 0, "account ID to update")
	flag.StringVar(&planFlag, "plan", "", "plan to assign (free, pro, team, enterprise); reactivates the subscription")
	flag.StringVar(&statusFlag, "status", "", "billing status to set (trialing, active, past_due, canceled)")
	flag.Parse()

	if accountFlag < 1 {
		exitWithError(errors.New("-account is required and must be positive"))
	}
	plan := domain.Plan(strings.TrimSpace(strings.ToLower(planFlag)))
	status := domain.SubscriptionStatus(strings.TrimSpace(strings.ToLower(statusFlag)))
	if plan == "" && status == "" {
		exitWithError(errors.New("either -plan or -status must be provided"))
	}
	if plan != "" && plan.Rank() == 0 {
		exitWithError(fmt.Errorf("unsupported plan %q", plan))
	}
	if status != "" && !domain.ValidSubscriptionStatus(status) {
		exitWithError(fmt.Errorf("unsupported status %q", status))
	}

	dbURL := strings.TrimSpace(os.Getenv("DATABASE_URL"))
	if dbURL == "" {
		exitWithError(errors.New("DATABASE_URL is required"))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		exitWithError(fmt.Errorf("failed to connect database: %w", err))
	}
	defer pool.Close()

	logger := infra.NewLogger(infra.EnvDev).With().Str("cmd", "accountplan").Logger()
	runner := infra.NewSQLRunner(pool, logger)
	subscriptions := repo.NewSubscriptionRepository(runner)

	if plan != "" {
		if err := subscriptions.SetPlan(ctx, accountFlag, plan); err != nil {
			exitWithError(fmt.Errorf("failed to set plan: %w", err))
		}
	}
	if status != "" {
		if err := subscriptions.SetStatus(ctx, accountFlag, status); err != nil {
			exitWithError(fmt.Errorf("failed to set status: %w", err))
		}
	}

	sub, err := subscriptions.GetByAccount(ctx, accountFlag)
	if err != nil {
		exitWithError(fmt.Errorf("failed to load subscription: %w", err))
	}

	fmt.Printf("Account %d: plan=%s status=%s effective_plan=%s\n",
		sub.AccountID, sub.PlanName, sub.Status, domain.EffectivePlan(sub))
}

func exitWithError(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
