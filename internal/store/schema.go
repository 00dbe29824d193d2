package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Table names for the per-domain operation logs and the metrics sink.
const (
	TableFinancialOperations = "financial_operations"
	TableHROperations        = "hr_operations"
	TableSupportTickets      = "support_tickets"
	TableAPIIntegrations     = "api_integrations"
	TableSystemMetrics       = "system_metrics"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS financial_operations (
		operation_id        TEXT PRIMARY KEY,
		operation_type      TEXT NOT NULL,
		status              TEXT NOT NULL,
		amount              DOUBLE PRECISION,
		description         TEXT,
		category            TEXT,
		processed_by        TEXT NOT NULL,
		accuracy_confidence DOUBLE PRECISION,
		created_at          TIMESTAMPTZ NOT NULL DEFAULT now(),
		metadata            JSONB
	)`,
	`CREATE TABLE IF NOT EXISTS hr_operations (
		operation_id        TEXT PRIMARY KEY,
		operation_type      TEXT NOT NULL,
		status              TEXT NOT NULL,
		employee_id         TEXT,
		position            TEXT,
		department          TEXT,
		processed_by        TEXT NOT NULL,
		accuracy_confidence DOUBLE PRECISION,
		created_at          TIMESTAMPTZ NOT NULL DEFAULT now(),
		metadata            JSONB
	)`,
	`CREATE TABLE IF NOT EXISTS support_tickets (
		ticket_id       TEXT PRIMARY KEY,
		customer_id     TEXT NOT NULL,
		issue_type      TEXT NOT NULL,
		priority        TEXT NOT NULL,
		status          TEXT NOT NULL,
		urgency_level   TEXT,
		sentiment_score DOUBLE PRECISION,
		processed_by    TEXT NOT NULL,
		created_at      TIMESTAMPTZ NOT NULL DEFAULT now(),
		metadata        JSONB
	)`,
	`CREATE TABLE IF NOT EXISTS api_integrations (
		integration_id       TEXT PRIMARY KEY,
		system_name          TEXT NOT NULL,
		api_base_url         TEXT NOT NULL,
		authentication_type  TEXT NOT NULL,
		status               TEXT NOT NULL,
		sync_frequency       TEXT NOT NULL,
		last_sync            TIMESTAMPTZ,
		total_records_synced BIGINT NOT NULL DEFAULT 0,
		setup_time           TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at           TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS system_metrics (
		id                  BIGSERIAL PRIMARY KEY,
		captured_at         TIMESTAMPTZ NOT NULL DEFAULT now(),
		uptime_seconds      DOUBLE PRECISION NOT NULL,
		total_agents        INT NOT NULL,
		active_agents       INT NOT NULL,
		total_operations    BIGINT NOT NULL,
		operations_by_agent JSONB,
		average_accuracy    DOUBLE PRECISION NOT NULL
	)`,
}

// EnsureSchema creates the five tables if they do not exist. It is safe to
// call on every startup; there is no migration or versioning story beyond
// CREATE TABLE IF NOT EXISTS.
func EnsureSchema(ctx context.Context, db *pgxpool.Pool) error {
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("schema bootstrap: %w", err)
		}
	}
	return nil
}
