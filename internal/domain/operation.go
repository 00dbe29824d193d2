package domain

import "time"

// FinancialOpType enumerates the financial operations the system understands.
// Unknown values still produce a result with only the common fields set.
type FinancialOpType string

const (
	FinancialInvoiceProcessing  FinancialOpType = "invoice_processing"
	FinancialExpenseReport      FinancialOpType = "expense_report"
	FinancialCashFlowPrediction FinancialOpType = "cash_flow_prediction"
)

// HROpType enumerates the HR operations the system understands.
type HROpType string

const (
	HRCandidateScreening HROpType = "candidate_screening"
	HRPayrollProcessing  HROpType = "payroll_processing"
	HRPerformanceReview  HROpType = "performance_review"
)

// FinancialOperation is the full result of one financial request. The common
// fields are always set; the per-subtype fields are populated only for the
// matching operation type, so unsupported types serialize the common fields
// alone.
type FinancialOperation struct {
	OperationID        string    `json:"operation_id"`
	OperationType      string    `json:"operation_type"`
	Status             string    `json:"status"`
	ProcessedBy        string    `json:"processed_by"`
	ProcessingTime     string    `json:"processing_time"`
	AccuracyConfidence float64   `json:"accuracy_confidence"`
	Timestamp          time.Time `json:"timestamp"`

	// invoice_processing
	InvoiceNumber     string `json:"invoice_number,omitempty"`
	DueDate           string `json:"due_date,omitempty"`
	PaymentTerms      string `json:"payment_terms,omitempty"`
	TaxCalculated     bool   `json:"tax_calculated,omitempty"`
	ComplianceChecked bool   `json:"compliance_checked,omitempty"`

	// expense_report
	ExpenseID              string `json:"expense_id,omitempty"`
	Category               string `json:"category,omitempty"`
	ApprovalStatus         string `json:"approval_status,omitempty"`
	ReimbursementScheduled bool   `json:"reimbursement_scheduled,omitempty"`

	// shared by invoice_processing and expense_report
	Amount float64 `json:"amount,omitempty"`

	// cash_flow_prediction
	PredictionPeriod  string   `json:"prediction_period,omitempty"`
	PredictedCashFlow int64    `json:"predicted_cash_flow,omitempty"`
	ConfidenceLevel   float64  `json:"confidence_level,omitempty"`
	KeyFactors        []string `json:"key_factors,omitempty"`
	Recommendations   []string `json:"recommendations,omitempty"`
}

// HROperation is the full result of one HR request.
type HROperation struct {
	OperationID        string    `json:"operation_id"`
	OperationType      string    `json:"operation_type"`
	Status             string    `json:"status"`
	ProcessedBy        string    `json:"processed_by"`
	ProcessingTime     string    `json:"processing_time"`
	AccuracyConfidence float64   `json:"accuracy_confidence"`
	Timestamp          time.Time `json:"timestamp"`

	// candidate_screening
	CandidateID          string  `json:"candidate_id,omitempty"`
	Position             string  `json:"position,omitempty"`
	ScreeningScore       float64 `json:"screening_score,omitempty"`
	QualificationMatch   float64 `json:"qualification_match,omitempty"`
	CulturalFitScore     float64 `json:"cultural_fit_score,omitempty"`
	Recommendation       string  `json:"recommendation,omitempty"`
	PredictedSuccessRate float64 `json:"predicted_success_rate,omitempty"`

	// payroll_processing
	PayrollPeriod      string `json:"payroll_period,omitempty"`
	EmployeesProcessed int    `json:"employees_processed,omitempty"`
	TotalPayroll       int64  `json:"total_payroll,omitempty"`
	TaxCalculations    string `json:"tax_calculations,omitempty"`
	DirectDeposits     string `json:"direct_deposits,omitempty"`
	ComplianceVerified bool   `json:"compliance_verified,omitempty"`

	// performance_review
	EmployeeID                 string   `json:"employee_id,omitempty"`
	ReviewPeriod               string   `json:"review_period,omitempty"`
	PerformanceScore           float64  `json:"performance_score,omitempty"`
	GoalAchievement            float64  `json:"goal_achievement,omitempty"`
	DevelopmentRecommendations []string `json:"development_recommendations,omitempty"`
	RetentionRisk              string   `json:"retention_risk,omitempty"`
}

// EmotionAnalysis is the synthetic emotional-intelligence readout attached to
// every support ticket. Only UrgencyLevel varies; it is derived from the
// ticket priority, not the request text.
type EmotionAnalysis struct {
	DetectedEmotion    string  `json:"detected_emotion"`
	SentimentScore     float64 `json:"sentiment_score"`
	UrgencyLevel       string  `json:"urgency_level"`
	ResolutionStrategy string  `json:"resolution_strategy"`
}

// SupportTicket is the full result of one support request.
type SupportTicket struct {
	TicketID                      string          `json:"ticket_id"`
	CustomerID                    string          `json:"customer_id"`
	IssueType                     string          `json:"issue_type"`
	Priority                      string          `json:"priority"`
	Status                        string          `json:"status"`
	ProcessedBy                   string          `json:"processed_by"`
	ProcessingTime                string          `json:"processing_time"`
	ResolutionTime                string          `json:"resolution_time"`
	CustomerSatisfactionPredicted float64         `json:"customer_satisfaction_predicted"`
	EmotionAnalysis               EmotionAnalysis `json:"emotion_analysis"`
	ResolutionSummary             string          `json:"resolution_summary"`
	FollowUpScheduled             bool            `json:"follow_up_scheduled"`
	Timestamp                     time.Time       `json:"timestamp"`
}
