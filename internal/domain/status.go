package domain

import "time"

// SystemStatus is a point-in-time view of the process-wide aggregate state.
type SystemStatus struct {
	Status                   string     `json:"status"`
	StartTime                time.Time  `json:"start_time"`
	AgentsActive             int        `json:"agents_active"`
	TotalOperationsProcessed int64      `json:"total_operations_processed"`
	LastHealthCheck          *time.Time `json:"last_health_check"`
	UptimePercentage         float64    `json:"uptime_percentage"`
}

// MetricsSnapshot is the durable copy of the aggregate counters appended to
// the metrics table on every reporter tick. Snapshots are never mutated.
type MetricsSnapshot struct {
	Timestamp         time.Time      `json:"timestamp"`
	UptimeSeconds     float64        `json:"uptime_seconds"`
	TotalAgents       int            `json:"total_agents"`
	ActiveAgents      int            `json:"active_agents"`
	TotalOperations   int64          `json:"total_operations"`
	OperationsByAgent map[string]int `json:"operations_by_agent"`
	AverageAccuracy   float64        `json:"average_accuracy"`
}
