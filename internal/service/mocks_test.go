package service

import (
	"context"
	"errors"
	"sync"

	"github.com/calebmori/opsdesk/internal/domain"
)

// mockOpLogStore implements domain.OperationLogStore for testing.
type mockOpLogStore struct {
	mu      sync.Mutex
	inserts []insertCall
	err     error
}

type insertCall struct {
	table  string
	fields []domain.OperationField
}

func (m *mockOpLogStore) Insert(ctx context.Context, table string, fields []domain.OperationField) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.inserts = append(m.inserts, insertCall{table: table, fields: fields})
	return nil
}

func (m *mockOpLogStore) calls() []insertCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]insertCall, len(m.inserts))
	copy(out, m.inserts)
	return out
}

// fieldValue returns the value logged for a column, or nil.
func (c insertCall) fieldValue(column string) any {
	for _, f := range c.fields {
		if f.Column == column {
			return f.Value
		}
	}
	return nil
}

// mockIntegrationStore implements domain.IntegrationStore for testing.
type mockIntegrationStore struct {
	mu      sync.Mutex
	rows    map[string]domain.Integration
	upserts int
	err     error
}

func newMockIntegrationStore() *mockIntegrationStore {
	return &mockIntegrationStore{rows: make(map[string]domain.Integration)}
}

func (m *mockIntegrationStore) Upsert(ctx context.Context, in *domain.Integration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.upserts++
	m.rows[in.IntegrationID] = *in
	return nil
}

func (m *mockIntegrationStore) List(ctx context.Context) ([]domain.Integration, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	out := make([]domain.Integration, 0, len(m.rows))
	for _, in := range m.rows {
		out = append(out, in)
	}
	return out, nil
}

// mockMetricsStore implements domain.MetricsStore for testing.
type mockMetricsStore struct {
	mu    sync.Mutex
	snaps []domain.MetricsSnapshot
	fail  bool
}

var errMockMetrics = errors.New("metrics store down")

func (m *mockMetricsStore) Insert(ctx context.Context, snap *domain.MetricsSnapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.snaps = append(m.snaps, *snap)
	if m.fail {
		return errMockMetrics
	}
	return nil
}

func (m *mockMetricsStore) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.snaps)
}
