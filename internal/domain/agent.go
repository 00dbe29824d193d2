package domain

// Agent IDs are fixed for the lifetime of the system. Every processed
// operation is attributed to exactly one of them.
const (
	AgentFinancialOperations       = "financial_operations"
	AgentHumanResources            = "human_resources"
	AgentCustomerSupport           = "customer_support"
	AgentOperationsManagement      = "operations_management"
	AgentComplianceLegal           = "compliance_legal"
	AgentDataIntelligence          = "data_intelligence"
	AgentCommunicationOrchestrator = "communication_orchestrator"
	AgentSecurityIT                = "security_it"
	AgentExecutiveIntelligence     = "executive_intelligence"
)

// Agent is a static descriptor of one back-office capability category.
// Only OperationsToday is ever mutated; everything else is fixed at startup.
type Agent struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Status          string   `json:"status"`
	Capabilities    []string `json:"capabilities"`
	WowFactor       string   `json:"wow_factor"`
	OperationsToday int      `json:"operations_today"`
	AccuracyRate    float64  `json:"accuracy_rate"`
}

// DefaultAgents returns the fixed set of nine back-office agents in their
// canonical order. Callers own the returned slice; each call returns a fresh
// copy so independent registries do not share counters.
func DefaultAgents() []*Agent {
	return []*Agent{
		{
			ID:           AgentFinancialOperations,
			Name:         "Financial Operations Agent",
			Status:       "active",
			Capabilities: []string{"invoice_processing", "expense_management", "financial_reporting", "cash_flow_prediction"},
			WowFactor:    "Predictive Cash Flow Intelligence - Predicts financial needs 90 days in advance",
			AccuracyRate: 0.999,
		},
		{
			ID:           AgentHumanResources,
			Name:         "Human Resources Agent",
			Status:       "active",
			Capabilities: []string{"recruitment", "payroll_processing", "employee_management", "performance_tracking"},
			WowFactor:    "Talent Intelligence Engine - Identifies perfect candidates before they apply",
			AccuracyRate: 0.96,
		},
		{
			ID:           AgentCustomerSupport,
			Name:         "Customer Support Agent",
			Status:       "active",
			Capabilities: []string{"ticket_management", "issue_resolution", "customer_satisfaction", "24_7_support"},
			WowFactor:    "Emotional Resolution Engine - Turns angry customers into brand advocates",
			AccuracyRate: 0.95,
		},
		{
			ID:           AgentOperationsManagement,
			Name:         "Operations Management Agent",
			Status:       "active",
			Capabilities: []string{"inventory_management", "supply_chain", "vendor_management", "logistics"},
			WowFactor:    "Supply Chain Prophecy - Predicts and prevents operational disruptions",
			AccuracyRate: 0.94,
		},
		{
			ID:           AgentComplianceLegal,
			Name:         "Compliance & Legal Agent",
			Status:       "active",
			Capabilities: []string{"regulatory_monitoring", "contract_review", "compliance_reporting", "risk_assessment"},
			WowFactor:    "Regulatory Crystal Ball - Predicts regulatory changes before they're announced",
			AccuracyRate: 0.98,
		},
		{
			ID:           AgentDataIntelligence,
			Name:         "Data Intelligence Agent",
			Status:       "active",
			Capabilities: []string{"business_analytics", "predictive_insights", "reporting", "kpi_monitoring"},
			WowFactor:    "Business Intelligence Omniscience - Knows everything about your business in real-time",
			AccuracyRate: 0.96,
		},
		{
			ID:           AgentCommunicationOrchestrator,
			Name:         "Communication Orchestrator Agent",
			Status:       "active",
			Capabilities: []string{"meeting_coordination", "email_management", "internal_communications", "collaboration"},
			WowFactor:    "Perfect Communication Harmony - Ensures every message is perfectly timed and targeted",
			AccuracyRate: 0.92,
		},
		{
			ID:           AgentSecurityIT,
			Name:         "Security & IT Agent",
			Status:       "active",
			Capabilities: []string{"cybersecurity", "system_maintenance", "user_management", "threat_detection"},
			WowFactor:    "Cyber Threat Precognition - Stops cyber attacks before they happen",
			AccuracyRate: 0.99,
		},
		{
			ID:           AgentExecutiveIntelligence,
			Name:         "Executive Intelligence Agent",
			Status:       "active",
			Capabilities: []string{"executive_dashboards", "strategic_analysis", "board_preparation", "decision_support"},
			WowFactor:    "Strategic Omniscience - Provides CEOs with perfect situational awareness",
			AccuracyRate: 0.97,
		},
	}
}
