package main

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	_ "github.com/lib/pq"
)

// Schema statements are idempotent and run in order on every deploy.
var statements = []string{
	`CREATE TABLE IF NOT EXISTS accounts (
		id SERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		plan TEXT DEFAULT 'free',
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,

	`CREATE TABLE IF NOT EXISTS account_memberships (
		id SERIAL PRIMARY KEY,
		account_id INTEGER NOT NULL REFERENCES accounts(id),
		user_id INTEGER NOT NULL,
		role TEXT DEFAULT 'member',
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		UNIQUE(account_id, user_id)
	)`,

	`CREATE TABLE IF NOT EXISTS subscriptions (
		id SERIAL PRIMARY KEY,
		account_id INTEGER NOT NULL REFERENCES accounts(id),
		status TEXT DEFAULT 'active',
		plan_name TEXT DEFAULT 'free',
		provider TEXT DEFAULT 'manual',
		provider_customer_id TEXT,
		provider_subscription_id TEXT,
		current_period_end TIMESTAMP,
		cancel_at_period_end BOOLEAN DEFAULT FALSE,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_subscriptions_account_unique ON subscriptions(account_id)`,

	`CREATE TABLE IF NOT EXISTS saved_properties (
		id SERIAL PRIMARY KEY,
		account_id INTEGER NOT NULL,
		user_id INTEGER,
		property_name TEXT,
		city TEXT,
		state TEXT,
		zip_code TEXT,
		strategy TEXT,
		purchase_price REAL,
		monthly_rent REAL,
		estimated_roi REAL,
		cashflow_per_month REAL,
		cap_rate REAL,
		deal_grade TEXT,
		risk_level TEXT,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE INDEX IF NOT EXISTS idx_saved_properties_account_id ON saved_properties(account_id)`,
	`CREATE INDEX IF NOT EXISTS idx_saved_properties_account_created ON saved_properties(account_id, created_at)`,

	`CREATE TABLE IF NOT EXISTS trashed_properties (
		trash_id SERIAL PRIMARY KEY,
		account_id INTEGER NOT NULL,
		saved_row_json TEXT,
		deleted_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE INDEX IF NOT EXISTS idx_trashed_properties_account_id ON trashed_properties(account_id)`,

	`CREATE TABLE IF NOT EXISTS scenarios (
		id SERIAL PRIMARY KEY,
		account_id INTEGER NOT NULL,
		property_id INTEGER NOT NULL,
		slot TEXT NOT NULL CHECK (slot IN ('A', 'B', 'C')),
		label TEXT,
		metrics_json TEXT NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		UNIQUE(account_id, property_id, slot)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_scenarios_account_property ON scenarios(account_id, property_id)`,

	`CREATE TABLE IF NOT EXISTS authz_events (
		id SERIAL PRIMARY KEY,
		account_id INTEGER NOT NULL,
		user_id INTEGER,
		request_id TEXT,
		capability TEXT NOT NULL,
		allowed BOOLEAN NOT NULL,
		reason TEXT NOT NULL,
		country TEXT,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE INDEX IF NOT EXISTS idx_authz_events_account_created ON authz_events(account_id, created_at)`,
}

func main() {
	dbURL := strings.TrimSpace(os.Getenv("DATABASE_URL"))
	if dbURL == "" {
		exitWithError(errors.New("DATABASE_URL is required"))
	}

	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		exitWithError(fmt.Errorf("failed to open database: %w", err))
	}
	defer db.Close()
	db.SetConnMaxLifetime(time.Minute)

	if err := db.Ping(); err != nil {
		exitWithError(fmt.Errorf("failed to reach database: %w", err))
	}

	for i, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			exitWithError(fmt.Errorf("migration statement %d failed: %w", i+1, err))
		}
	}

	fmt.Printf("migrations applied: %d statements\n", len(statements))
}

func exitWithError(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
