package domain

import "time"

// AgentHealth is the per-agent section of a health report.
type AgentHealth struct {
	Status          string   `json:"status"`
	Name            string   `json:"name"`
	Capabilities    []string `json:"capabilities"`
	WowFactor       string   `json:"wow_factor"`
	OperationsToday int      `json:"operations_today"`
	AccuracyRate    float64  `json:"accuracy_rate"`
}

// HealthReport is the full health-check result. An agent below the accuracy
// threshold is flagged in Issues but keeps its operational status.
type HealthReport struct {
	Status    string                 `json:"status"`
	Timestamp time.Time              `json:"timestamp"`
	System    SystemStatus           `json:"system"`
	Agents    map[string]AgentHealth `json:"agents"`
	Issues    []string               `json:"issues"`
}
