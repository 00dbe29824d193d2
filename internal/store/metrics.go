package store

import (
	"context"
	"encoding/json"

	"github.com/calebmori/opsdesk/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

// MetricsStore appends snapshots to the system_metrics table. Rows are never
// updated or deleted.
type MetricsStore struct {
	db *pgxpool.Pool
}

func NewMetricsStore(db *pgxpool.Pool) *MetricsStore {
	return &MetricsStore{db: db}
}

func (s *MetricsStore) Insert(ctx context.Context, snap *domain.MetricsSnapshot) error {
	byAgent, err := json.Marshal(snap.OperationsByAgent)
	if err != nil {
		return err
	}

	_, err = s.db.Exec(ctx,
		`INSERT INTO system_metrics
		   (captured_at, uptime_seconds, total_agents, active_agents,
		    total_operations, operations_by_agent, average_accuracy)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		snap.Timestamp, snap.UptimeSeconds, snap.TotalAgents, snap.ActiveAgents,
		snap.TotalOperations, byAgent, snap.AverageAccuracy,
	)
	return err
}
