package handlers

import (
	"net/http"

	"github.com/calebmori/opsdesk/internal/buildconfig"
	"github.com/calebmori/opsdesk/internal/domain"
	"github.com/calebmori/opsdesk/internal/service"
)

// SystemHandler serves the read-only system surface: root greeting, health,
// status and the agent listing.
type SystemHandler struct {
	registry     *service.Registry
	integrations *service.IntegrationService
}

func NewSystemHandler(registry *service.Registry, integrations *service.IntegrationService) *SystemHandler {
	return &SystemHandler{registry: registry, integrations: integrations}
}

type rootResponse struct {
	Message          string   `json:"message"`
	Version          string   `json:"version"`
	Status           string   `json:"status"`
	AgentsActive     int      `json:"agents_active"`
	WowFactors       []string `json:"wow_factors"`
	UptimePercentage float64  `json:"uptime_percentage"`
}

func (h *SystemHandler) Root(w http.ResponseWriter, r *http.Request) {
	status := h.registry.Status()

	agents := h.registry.Agents()
	wowFactors := make([]string, 0, len(agents))
	for _, a := range agents {
		wowFactors = append(wowFactors, a.WowFactor)
	}

	writeJSON(w, http.StatusOK, rootResponse{
		Message:          "AI Back Office System",
		Version:          buildconfig.Version(),
		Status:           status.Status,
		AgentsActive:     status.AgentsActive,
		WowFactors:       wowFactors,
		UptimePercentage: status.UptimePercentage,
	})
}

func (h *SystemHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.registry.HealthCheck())
}

type statusSystem struct {
	domain.SystemStatus
	UptimeSeconds float64 `json:"uptime_seconds"`
	UptimeHours   float64 `json:"uptime_hours"`
}

type statusPerformance struct {
	TotalAgents              int     `json:"total_agents"`
	ActiveAgents             int     `json:"active_agents"`
	OperationsProcessedToday int64   `json:"operations_processed_today"`
	AverageAccuracy          float64 `json:"average_accuracy"`
}

type statusResponse struct {
	System          statusSystem            `json:"system"`
	Agents          map[string]domain.Agent `json:"agents"`
	Performance     statusPerformance       `json:"performance"`
	APIIntegrations int                     `json:"api_integrations"`
}

func (h *SystemHandler) Status(w http.ResponseWriter, r *http.Request) {
	uptime := h.registry.Uptime()

	agents := h.registry.Agents()
	byID := make(map[string]domain.Agent, len(agents))
	for _, a := range agents {
		byID[a.ID] = a
	}

	writeJSON(w, http.StatusOK, statusResponse{
		System: statusSystem{
			SystemStatus:  h.registry.Status(),
			UptimeSeconds: uptime.Seconds(),
			UptimeHours:   uptime.Hours(),
		},
		Agents: byID,
		Performance: statusPerformance{
			TotalAgents:              h.registry.TotalAgents(),
			ActiveAgents:             h.registry.ActiveAgents(),
			OperationsProcessedToday: h.registry.TotalOperations(),
			AverageAccuracy:          h.registry.AverageAccuracy(),
		},
		APIIntegrations: h.integrations.Count(),
	})
}

type agentsResponse struct {
	Agents []domain.Agent `json:"agents"`
}

func (h *SystemHandler) Agents(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, agentsResponse{Agents: h.registry.Agents()})
}
