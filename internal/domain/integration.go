package domain

import "time"

// Integration describes a configured third-party API connection. The ID is
// derived from the normalized system name, so setting up the same system
// twice replaces the earlier config (create-or-replace semantics).
type Integration struct {
	IntegrationID      string     `json:"integration_id"`
	SystemName         string     `json:"system_name"`
	APIBaseURL         string     `json:"api_base_url"`
	AuthenticationType string     `json:"authentication_type"`
	Status             string     `json:"status"`
	SetupTime          time.Time  `json:"setup_time"`
	HealthCheckPassed  bool       `json:"health_check_passed"`
	SyncFrequency      string     `json:"sync_frequency"`
	LastSync           *time.Time `json:"last_sync"`
	TotalRecordsSynced int64      `json:"total_records_synced"`
}
