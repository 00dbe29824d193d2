package service

// Fixed "business impact" figures reported by the analytics endpoint. These
// are marketing constants, not computed from recorded data.
var (
	performanceMetrics = map[string]string{
		"administrative_overhead_reduction": "80%",
		"operational_accuracy_improvement":  "95%",
		"response_time_improvement":         "70%",
		"cost_reduction":                    "60%",
	}

	costSavings = map[string]int{
		"monthly_savings":          125000,
		"annual_projected_savings": 1500000,
		"roi_percentage":           2156,
	}
)

// OperationsAnalytics is the aggregate view served by /analytics/operations.
type OperationsAnalytics struct {
	SystemUptime             float64           `json:"system_uptime"`
	TotalAgents              int               `json:"total_agents"`
	ActiveAgents             int               `json:"active_agents"`
	TotalOperationsProcessed int64             `json:"total_operations_processed"`
	OperationsByAgent        map[string]int    `json:"operations_by_agent"`
	AverageAccuracy          float64           `json:"average_accuracy"`
	PerformanceMetrics       map[string]string `json:"performance_metrics"`
	CostSavings              map[string]int    `json:"cost_savings"`
}

type AnalyticsService struct {
	registry *Registry
}

func NewAnalyticsService(registry *Registry) *AnalyticsService {
	return &AnalyticsService{registry: registry}
}

func (s *AnalyticsService) Operations() OperationsAnalytics {
	return OperationsAnalytics{
		SystemUptime:             s.registry.Uptime().Seconds(),
		TotalAgents:              s.registry.TotalAgents(),
		ActiveAgents:             s.registry.ActiveAgents(),
		TotalOperationsProcessed: s.registry.TotalOperations(),
		OperationsByAgent:        s.registry.OperationsByAgent(),
		AverageAccuracy:          s.registry.AverageAccuracy(),
		PerformanceMetrics:       performanceMetrics,
		CostSavings:              costSavings,
	}
}
