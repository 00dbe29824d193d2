package service

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/calebmori/opsdesk/internal/domain"
	"go.uber.org/zap"
)

var (
	ErrSystemNameMissing = errors.New("system_name is required")
	ErrBaseURLMissing    = errors.New("api_base_url is required")
	ErrAuthTypeMissing   = errors.New("authentication_type is required")

	ErrIntegrationStoreFailed = errors.New("failed to persist integration config")
)

const defaultSyncFrequency = "hourly"

type IntegrationRequest struct {
	SystemName         string
	APIBaseURL         string
	AuthenticationType string
	Credentials        map[string]any
	Endpoints          map[string]string
	SyncSettings       map[string]any
}

// IntegrationService manages third-party API integration configs. Configs
// live in memory for the process lifetime and are persisted when a store is
// available. Setup is create-or-replace: the ID is a pure function of the
// system name, so repeating a setup overwrites the previous config in both
// places.
type IntegrationService struct {
	mu      sync.Mutex
	configs map[string]domain.Integration

	store  domain.IntegrationStore
	logger *zap.Logger
}

// NewIntegrationService creates the service. A nil store keeps configs
// in-memory only.
func NewIntegrationService(store domain.IntegrationStore, logger *zap.Logger) *IntegrationService {
	return &IntegrationService{
		configs: make(map[string]domain.Integration),
		store:   store,
		logger:  logger,
	}
}

// IntegrationID derives the config ID from the system name: lowercased, with
// spaces replaced by underscores. Two setups naming the same system collide
// on purpose.
func IntegrationID(systemName string) string {
	return "api_" + strings.ReplaceAll(strings.ToLower(systemName), " ", "_")
}

// Setup validates the request, builds the config and stores it. When a
// persistence store is configured, a store failure fails the whole setup and
// the in-memory state stays untouched.
func (s *IntegrationService) Setup(ctx context.Context, req IntegrationRequest) (*domain.Integration, error) {
	if req.SystemName == "" {
		return nil, ErrSystemNameMissing
	}
	if req.APIBaseURL == "" {
		return nil, ErrBaseURLMissing
	}
	if req.AuthenticationType == "" {
		return nil, ErrAuthTypeMissing
	}

	freq := defaultSyncFrequency
	if f, ok := req.SyncSettings["frequency"].(string); ok && f != "" {
		freq = f
	}

	cfg := domain.Integration{
		IntegrationID:      IntegrationID(req.SystemName),
		SystemName:         req.SystemName,
		APIBaseURL:         req.APIBaseURL,
		AuthenticationType: req.AuthenticationType,
		Status:             "active",
		SetupTime:          time.Now().UTC(),
		HealthCheckPassed:  true,
		SyncFrequency:      freq,
	}

	if s.store != nil {
		if err := s.store.Upsert(ctx, &cfg); err != nil {
			s.logger.Error("integration upsert failed",
				zap.String("integration_id", cfg.IntegrationID),
				zap.Error(err))
			return nil, ErrIntegrationStoreFailed
		}
	}

	s.mu.Lock()
	s.configs[cfg.IntegrationID] = cfg
	s.mu.Unlock()

	s.logger.Info("integration configured",
		zap.String("integration_id", cfg.IntegrationID),
		zap.String("system_name", cfg.SystemName),
		zap.String("sync_frequency", cfg.SyncFrequency))

	return &cfg, nil
}

// List returns every known integration config, persisted rows first (they
// may predate this process), overlaid with the in-memory set, in stable
// order by integration ID.
func (s *IntegrationService) List(ctx context.Context) ([]domain.Integration, error) {
	merged := make(map[string]domain.Integration)

	if s.store != nil {
		stored, err := s.store.List(ctx)
		if err != nil {
			return nil, err
		}
		for _, in := range stored {
			merged[in.IntegrationID] = in
		}
	}

	s.mu.Lock()
	for id, in := range s.configs {
		merged[id] = in
	}
	s.mu.Unlock()

	out := make([]domain.Integration, 0, len(merged))
	for _, in := range merged {
		out = append(out, in)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].IntegrationID < out[j].IntegrationID })
	return out, nil
}

// Count returns the number of configs known to this process.
func (s *IntegrationService) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.configs)
}
