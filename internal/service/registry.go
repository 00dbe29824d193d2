package service

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/calebmori/opsdesk/internal/domain"
)

// accuracyWarnThreshold is the accuracy below which a health check flags an
// agent. The shipped agent set sits entirely above it.
const accuracyWarnThreshold = 0.90

// uptimePercentage is a fixed marketing constant, not a measurement.
const uptimePercentage = 99.9

var ErrUnknownAgent = errors.New("unknown agent")

// Registry owns the process-wide mutable aggregate state: the fixed agent
// set, the cumulative operation counter, and the last health-check time.
// It is injected into every service that records operations, so tests get an
// isolated instance instead of sharing a package-level singleton.
type Registry struct {
	mu              sync.Mutex
	agents          []*domain.Agent
	byID            map[string]*domain.Agent
	startTime       time.Time
	totalOperations int64
	lastHealthCheck *time.Time

	// optional hook invoked on every recorded operation, outside any
	// response path (used for the Prometheus operations counter)
	onOperation func(agentID string)
}

func NewRegistry() *Registry {
	agents := domain.DefaultAgents()
	byID := make(map[string]*domain.Agent, len(agents))
	for _, a := range agents {
		byID[a.ID] = a
	}
	return &Registry{
		agents:    agents,
		byID:      byID,
		startTime: time.Now().UTC(),
	}
}

// SetOperationHook registers a callback fired after each successful
// RecordOperation. Must be called before the registry is shared.
func (r *Registry) SetOperationHook(fn func(agentID string)) {
	r.onOperation = fn
}

// RecordOperation increments the named agent's daily counter and the global
// counter by exactly one. Counters only ever grow for the process lifetime.
func (r *Registry) RecordOperation(agentID string) error {
	r.mu.Lock()
	agent, ok := r.byID[agentID]
	if !ok {
		r.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrUnknownAgent, agentID)
	}
	agent.OperationsToday++
	r.totalOperations++
	r.mu.Unlock()

	if r.onOperation != nil {
		r.onOperation(agentID)
	}
	return nil
}

// Agents returns the agent set in canonical order. The returned descriptors
// are copies; callers cannot mutate registry state through them.
func (r *Registry) Agents() []domain.Agent {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]domain.Agent, 0, len(r.agents))
	for _, a := range r.agents {
		out = append(out, *a)
	}
	return out
}

func (r *Registry) StartTime() time.Time {
	return r.startTime
}

func (r *Registry) Uptime() time.Duration {
	return time.Since(r.startTime)
}

func (r *Registry) TotalOperations() int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.totalOperations
}

func (r *Registry) TotalAgents() int {
	return len(r.agents)
}

func (r *Registry) ActiveAgents() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := 0
	for _, a := range r.agents {
		if a.Status == "active" {
			n++
		}
	}
	return n
}

func (r *Registry) AverageAccuracy() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	var sum float64
	for _, a := range r.agents {
		sum += a.AccuracyRate
	}
	return sum / float64(len(r.agents))
}

// OperationsByAgent returns today's operation count per agent ID.
func (r *Registry) OperationsByAgent() map[string]int {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make(map[string]int, len(r.agents))
	for _, a := range r.agents {
		out[a.ID] = a.OperationsToday
	}
	return out
}

// Status returns a point-in-time view of the aggregate system state.
func (r *Registry) Status() domain.SystemStatus {
	r.mu.Lock()
	defer r.mu.Unlock()

	active := 0
	for _, a := range r.agents {
		if a.Status == "active" {
			active++
		}
	}
	return domain.SystemStatus{
		Status:                   "running",
		StartTime:                r.startTime,
		AgentsActive:             active,
		TotalOperationsProcessed: r.totalOperations,
		LastHealthCheck:          r.lastHealthCheck,
		UptimePercentage:         uptimePercentage,
	}
}

// HealthCheck builds the full health report and records the check time.
// Agents with accuracy below the warning threshold are reported as issues
// without being taken out of rotation.
func (r *Registry) HealthCheck() domain.HealthReport {
	now := time.Now().UTC()

	r.mu.Lock()
	agents := make(map[string]domain.AgentHealth, len(r.agents))
	issues := []string{}
	for _, a := range r.agents {
		h := domain.AgentHealth{
			Status:          "healthy",
			Name:            a.Name,
			Capabilities:    a.Capabilities,
			WowFactor:       a.WowFactor,
			OperationsToday: a.OperationsToday,
			AccuracyRate:    a.AccuracyRate,
		}
		if a.AccuracyRate < accuracyWarnThreshold {
			h.Status = "warning"
			issues = append(issues, fmt.Sprintf("%s accuracy below 90%%", a.Name))
		}
		agents[a.ID] = h
	}
	r.lastHealthCheck = &now
	r.mu.Unlock()

	return domain.HealthReport{
		Status:    "healthy",
		Timestamp: now,
		System:    r.Status(),
		Agents:    agents,
		Issues:    issues,
	}
}

// MetricsSnapshot captures the counters for the periodic reporter.
func (r *Registry) MetricsSnapshot() domain.MetricsSnapshot {
	return domain.MetricsSnapshot{
		Timestamp:         time.Now().UTC(),
		UptimeSeconds:     r.Uptime().Seconds(),
		TotalAgents:       r.TotalAgents(),
		ActiveAgents:      r.ActiveAgents(),
		TotalOperations:   r.TotalOperations(),
		OperationsByAgent: r.OperationsByAgent(),
		AverageAccuracy:   r.AverageAccuracy(),
	}
}
