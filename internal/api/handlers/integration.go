package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/calebmori/opsdesk/internal/domain"
	"github.com/calebmori/opsdesk/internal/service"
)

type IntegrationHandler struct {
	svc *service.IntegrationService
}

func NewIntegrationHandler(svc *service.IntegrationService) *IntegrationHandler {
	return &IntegrationHandler{svc: svc}
}

type integrationRequest struct {
	SystemName         string            `json:"system_name"`
	APIBaseURL         string            `json:"api_base_url"`
	AuthenticationType string            `json:"authentication_type"`
	Credentials        map[string]any    `json:"credentials"`
	Endpoints          map[string]string `json:"endpoints"`
	SyncSettings       map[string]any    `json:"sync_settings"`
}

type setupResponse struct {
	Status      string              `json:"status"`
	Message     string              `json:"message"`
	Integration *domain.Integration `json:"integration"`
	NextSteps   []string            `json:"next_steps"`
}

func (h *IntegrationHandler) Setup(w http.ResponseWriter, r *http.Request) {
	var req integrationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	cfg, err := h.svc.Setup(r.Context(), service.IntegrationRequest{
		SystemName:         req.SystemName,
		APIBaseURL:         req.APIBaseURL,
		AuthenticationType: req.AuthenticationType,
		Credentials:        req.Credentials,
		Endpoints:          req.Endpoints,
		SyncSettings:       req.SyncSettings,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSystemNameMissing),
			errors.Is(err, service.ErrBaseURLMissing),
			errors.Is(err, service.ErrAuthTypeMissing):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, "failed to set up integration")
		}
		return
	}

	writeJSON(w, http.StatusOK, setupResponse{
		Status:      "success",
		Message:     fmt.Sprintf("API integration for %s configured successfully", cfg.SystemName),
		Integration: cfg,
		NextSteps: []string{
			"Test connection established",
			"Data mapping configured",
			"Sync schedule activated",
			"Monitoring enabled",
		},
	})
}

type listIntegrationsResponse struct {
	Integrations      map[string]domain.Integration `json:"integrations"`
	TotalIntegrations int                           `json:"total_integrations"`
}

func (h *IntegrationHandler) List(w http.ResponseWriter, r *http.Request) {
	configs, err := h.svc.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list integrations")
		return
	}

	byID := make(map[string]domain.Integration, len(configs))
	for _, cfg := range configs {
		byID[cfg.IntegrationID] = cfg
	}

	writeJSON(w, http.StatusOK, listIntegrationsResponse{
		Integrations:      byID,
		TotalIntegrations: len(byID),
	})
}
