package store

import (
	"context"

	"github.com/calebmori/opsdesk/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

type IntegrationStore struct {
	db *pgxpool.Pool
}

func NewIntegrationStore(db *pgxpool.Pool) *IntegrationStore {
	return &IntegrationStore{db: db}
}

// Upsert stores an integration config, replacing any earlier config with the
// same integration_id. Setup is create-or-replace: the ID is derived from the
// system name, so repeating a setup call overwrites the previous config
// instead of raising a duplicate-key error.
func (s *IntegrationStore) Upsert(ctx context.Context, in *domain.Integration) error {
	_, err := s.db.Exec(ctx,
		`INSERT INTO api_integrations
		   (integration_id, system_name, api_base_url, authentication_type,
		    status, sync_frequency, last_sync, total_records_synced, setup_time)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 ON CONFLICT (integration_id) DO UPDATE SET
		   system_name = EXCLUDED.system_name,
		   api_base_url = EXCLUDED.api_base_url,
		   authentication_type = EXCLUDED.authentication_type,
		   status = EXCLUDED.status,
		   sync_frequency = EXCLUDED.sync_frequency,
		   setup_time = EXCLUDED.setup_time,
		   updated_at = now()`,
		in.IntegrationID, in.SystemName, in.APIBaseURL, in.AuthenticationType,
		in.Status, in.SyncFrequency, in.LastSync, in.TotalRecordsSynced, in.SetupTime,
	)
	return err
}

func (s *IntegrationStore) List(ctx context.Context) ([]domain.Integration, error) {
	rows, err := s.db.Query(ctx,
		`SELECT integration_id, system_name, api_base_url, authentication_type,
		        status, sync_frequency, last_sync, total_records_synced, setup_time
		 FROM api_integrations
		 ORDER BY setup_time`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Integration
	for rows.Next() {
		var in domain.Integration
		if err := rows.Scan(
			&in.IntegrationID, &in.SystemName, &in.APIBaseURL, &in.AuthenticationType,
			&in.Status, &in.SyncFrequency, &in.LastSync, &in.TotalRecordsSynced, &in.SetupTime,
		); err != nil {
			return nil, err
		}
		out = append(out, in)
	}
	return out, rows.Err()
}
